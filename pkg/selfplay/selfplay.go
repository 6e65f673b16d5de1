// Package selfplay drives a game against itself using IS-MCTS for
// every decision and records every state and transition visited into
// a deduplicated graph.
package selfplay

import (
	"fmt"

	"github.com/signalnine/mcts-core/pkg/game"
	"github.com/signalnine/mcts-core/pkg/ismcts"
	"github.com/signalnine/mcts-core/pkg/xrand"
)

// Initializer produces a fresh starting state for one simulation. rng
// lets the initial state itself be randomized (a shuffled deck, a
// scrambled board) while staying reproducible for a given seed.
type Initializer[P comparable, A comparable] interface {
	Initialize(rng *xrand.Rand) game.Game[P, A]
}

// Params configures one call to Generate.
type Params struct {
	// Seed is the base seed. Every simulation draws its initial state
	// from a generator seeded with Seed, and simulation n draws its
	// move decisions from one seeded with Seed+n, so every simulation
	// is independently reproducible.
	Seed int64
	// NumSims is how many self-play games to run.
	NumSims int
	// SimPlayers holds one ismcts.PlayerParams per player, indexed in
	// the same order Game.Players() returns.
	SimPlayers []ismcts.PlayerParams
}

// Generate plays Params.NumSims games of init's game against itself,
// picking every move with IS-MCTS, and returns the resulting graph.
// The driver itself is single-threaded; only the per-decision IS-MCTS
// search inside it is parallel.
func Generate[P comparable, A comparable](init Initializer[P, A], params Params) *Graph[P, A] {
	graph := &Graph[P, A]{}

	for simN := 0; simN < params.NumSims; simN++ {
		initRng := xrand.New(params.Seed)
		simRng := xrand.New(params.Seed + int64(simN))

		state := init.Initialize(initRng)
		players := state.Players()

		step := 0
		nodeIdx := graph.findOrAddNode(state, simN, step)

		for {
			outcome, done := state.Outcome()
			if done {
				graph.outcomes = append(graph.outcomes, outcome)
				break
			}

			playerIdx := indexOf(players, state.CurrentPlayer())
			if playerIdx < 0 || playerIdx >= len(params.SimPlayers) {
				panic(fmt.Sprintf("selfplay: no PlayerParams configured for player at index %d", playerIdx))
			}

			action := ismcts.Search[P, A](state, simRng, params.SimPlayers[playerIdx])

			next, err := state.Apply(action, simRng)
			if err != nil {
				panic(fmt.Sprintf("selfplay: apply failed: %v", err))
			}

			step++
			nextIdx := graph.findOrAddNode(next, simN, step)
			graph.findOrAddEdge(nodeIdx, nextIdx, action)

			state = next
			nodeIdx = nextIdx
		}
	}

	return graph
}

func indexOf[P comparable](players []P, p P) int {
	for i, candidate := range players {
		if candidate == p {
			return i
		}
	}
	return -1
}
