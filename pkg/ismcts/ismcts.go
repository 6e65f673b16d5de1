// Package ismcts implements information-set MCTS: a determinization
// search that handles imperfect-information games by sampling several
// fully-observable worlds consistent with what the acting player has
// seen, searching each independently, and combining the results.
package ismcts

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/signalnine/mcts-core/pkg/game"
	"github.com/signalnine/mcts-core/pkg/rollout"
	"github.com/signalnine/mcts-core/pkg/xrand"
)

// PlayerParams controls how much search one player's decision gets:
// how many determinizations to sample and how many rollouts to run
// per candidate action within each determinization.
type PlayerParams struct {
	NumDeterminizations     int
	NumSimulationsPerAction int
}

// Search picks an action for g's current player by sampling
// params.NumDeterminizations fully-observable worlds in parallel, one
// goroutine each, and ranking actions by the acting player's own
// normalized rollout score minus the mean of its opponents' scores.
//
// rng is never shared across goroutines: each worker clones it and
// advances the clone by its own determinization index worth of draws
// before using it, so the result is reproducible for a given seed
// regardless of how the goroutines happen to be scheduled.
func Search[P comparable, A comparable](g game.Game[P, A], rng *xrand.Rand, params PlayerParams) A {
	actions := g.Actions()
	if len(actions) == 0 {
		var zero A
		return zero
	}

	rootPlayer := g.CurrentPlayer()
	players := g.Players()

	// scores[d][a] holds the per-player normalized rollout tally
	// produced by determinization d for action a, keyed by action
	// index to avoid requiring A to be usable as a map key in a hot
	// path (it is comparable, but indexing by position is cheaper).
	scores := make([][]map[P]float32, params.NumDeterminizations)

	var wg sync.WaitGroup
	var mu sync.Mutex

	for d := 0; d < params.NumDeterminizations; d++ {
		wg.Add(1)
		go func(detIdx int) {
			defer wg.Done()

			workerRng := rng.CloneAndAdvance(detIdx)
			determinized := g.Determine(workerRng, rootPlayer)

			result := make([]map[P]float32, len(actions))
			for i, action := range actions {
				result[i] = scoreAction(determinized, action, players, workerRng, params.NumSimulationsPerAction)
			}

			mu.Lock()
			scores[detIdx] = result
			mu.Unlock()
		}(d)
	}
	wg.Wait()

	avg := averageScores(scores, len(actions), players, params.NumDeterminizations)

	best := actions[0]
	bestDiff := float32(math32.Inf(-1))
	for i, action := range actions {
		diff := scoreDiff(avg[i], rootPlayer, players)
		if diff > bestDiff {
			bestDiff = diff
			best = action
		}
	}
	return best
}

func scoreAction[P comparable, A comparable](determinized game.Game[P, A], action A, players []P, rng *xrand.Rand, numSimulations int) map[P]float32 {
	// An action listed by Actions() should always apply cleanly; if it
	// doesn't, score it as a dead end rather than aborting the search.
	next, err := determinized.Apply(action, rng)
	if err != nil {
		return make(map[P]float32, len(players))
	}

	tally := make(map[P]float32, len(players))
	for i := 0; i < numSimulations; i++ {
		outcome := rollout.RandomRollout[P, A](next, rng)
		for _, w := range outcome.WinningPlayers() {
			tally[w]++
		}
	}

	var max float32
	for _, v := range tally {
		if v > max {
			max = v
		}
	}

	normalized := make(map[P]float32, len(players))
	if max > 0 {
		for _, p := range players {
			normalized[p] = tally[p] / max
		}
	}
	return normalized
}

func averageScores[P comparable](scores [][]map[P]float32, numActions int, players []P, numDeterminizations int) []map[P]float32 {
	avg := make([]map[P]float32, numActions)
	for a := 0; a < numActions; a++ {
		sum := make(map[P]float32, len(players))
		for _, det := range scores {
			for p, v := range det[a] {
				sum[p] += v
			}
		}
		for _, p := range players {
			sum[p] /= float32(numDeterminizations)
		}
		avg[a] = sum
	}
	return avg
}

// scoreDiff is the acting player's own normalized score minus the
// mean of its opponents' normalized scores for the same action.
func scoreDiff[P comparable](scores map[P]float32, rootPlayer P, players []P) float32 {
	var oppSum float32
	var oppCount int
	for _, p := range players {
		if p == rootPlayer {
			continue
		}
		oppSum += scores[p]
		oppCount++
	}

	var oppMean float32
	if oppCount > 0 {
		oppMean = oppSum / float32(oppCount)
	}

	return scores[rootPlayer] - oppMean
}
