package ismcts

import (
	"testing"

	"github.com/signalnine/mcts-core/examples/numbergame"
	"github.com/signalnine/mcts-core/examples/tictactoe"
	"github.com/signalnine/mcts-core/pkg/xrand"
)

func TestSearchReturnsLegalAction(t *testing.T) {
	rng := xrand.New(9)
	start := tictactoe.New()

	params := PlayerParams{NumDeterminizations: 4, NumSimulationsPerAction: 10}
	action := Search[tictactoe.Mark, int](start, rng, params)

	legal := false
	for _, a := range start.Actions() {
		if a == action {
			legal = true
			break
		}
	}
	if !legal {
		t.Fatalf("Search returned action %d which is not among the legal actions %v", action, start.Actions())
	}
}

func TestSearchIsDeterministicForSameSeed(t *testing.T) {
	params := PlayerParams{NumDeterminizations: 8, NumSimulationsPerAction: 20}

	run := func(seed int64) numbergame.Action {
		rng := xrand.New(seed)
		state := numbergame.New(3, 1, 6)
		// Everyone selects a number first so the current player is
		// facing a real guessing decision.
		for i := 0; i < 3; i++ {
			actions := state.Actions()
			applied, err := state.Apply(actions[0], rng)
			if err != nil {
				t.Fatalf("setup selection %d failed: %v", i, err)
			}
			state = applied.(*numbergame.State)
		}
		return Search[int, numbergame.Action](state, rng, params)
	}

	a := run(123)
	b := run(123)

	if a != b {
		t.Fatalf("same-seed searches diverged: %+v != %+v", a, b)
	}
}
