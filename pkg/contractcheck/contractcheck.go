// Package contractcheck validates that a Game adapter upholds the
// invariants the search packages assume, collecting every violation
// it finds instead of stopping at the first one.
package contractcheck

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/signalnine/mcts-core/pkg/game"
	"github.com/signalnine/mcts-core/pkg/xrand"
)

// Validate runs g and its determinizations through the invariants the
// search packages depend on and returns every violation found, or nil
// if g satisfies all of them. rng is used only to sample a
// determinization for the equality check below.
func Validate[P comparable, A comparable](g game.Game[P, A], rng *xrand.Rand) error {
	var result *multierror.Error

	actions := g.Actions()
	_, hasOutcome := g.Outcome()

	if len(actions) == 0 && !hasOutcome {
		result = multierror.Append(result, fmt.Errorf("contractcheck: zero legal actions but no outcome reported"))
	}
	if len(actions) > 0 && hasOutcome {
		result = multierror.Append(result, fmt.Errorf("contractcheck: %d legal actions but an outcome is already reported", len(actions)))
	}

	players := g.Players()
	if len(players) == 0 {
		result = multierror.Append(result, fmt.Errorf("contractcheck: Players() returned no players"))
	}

	current := g.CurrentPlayer()
	found := false
	for _, p := range players {
		if p == current {
			found = true
			break
		}
	}
	if !found {
		result = multierror.Append(result, fmt.Errorf("contractcheck: CurrentPlayer() %v is not a member of Players()", current))
	}

	determinized := g.Determine(rng, current)
	if determinized == nil {
		result = multierror.Append(result, fmt.Errorf("contractcheck: Determine() returned a nil state"))
	} else if !determinized.Equal(determinized) {
		result = multierror.Append(result, fmt.Errorf("contractcheck: Equal() is not reflexive for a determinized state"))
	}

	return result.ErrorOrNil()
}
