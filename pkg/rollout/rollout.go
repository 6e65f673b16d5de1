// Package rollout implements the uniform-random playout policy used
// by both the MCTS engine and IS-MCTS to evaluate a position it has
// not searched any deeper than.
package rollout

import (
	"github.com/signalnine/mcts-core/pkg/game"
	"github.com/signalnine/mcts-core/pkg/xrand"
)

// RandomRollout plays uniformly random legal actions from g until the
// game reports an outcome, and returns that outcome. If g itself
// already has no legal actions and no outcome, it returns an Escape
// rather than looping forever or panicking.
func RandomRollout[P comparable, A comparable](g game.Game[P, A], rng *xrand.Rand) game.Outcome[P] {
	state := g
	for {
		if outcome, done := state.Outcome(); done {
			return outcome
		}

		actions := state.Actions()
		if len(actions) == 0 {
			return game.EscapeOutcome[P]("no actions available")
		}

		action := actions[rng.Intn(len(actions))]
		next, err := state.Apply(action, rng)
		if err != nil {
			return game.EscapeOutcome[P]("rollout action failed: " + err.Error())
		}
		state = next
	}
}
