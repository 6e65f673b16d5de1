package selfplay

import (
	"testing"

	"github.com/signalnine/mcts-core/examples/tictactoe"
	"github.com/signalnine/mcts-core/pkg/ismcts"
)

func weakParams() []ismcts.PlayerParams {
	p := ismcts.PlayerParams{NumDeterminizations: 2, NumSimulationsPerAction: 4}
	return []ismcts.PlayerParams{p, p}
}

func TestGenerateProducesNoDuplicateNodes(t *testing.T) {
	graph := Generate[tictactoe.Mark, int](tictactoe.Initializer{}, Params{
		Seed:       1,
		NumSims:    4,
		SimPlayers: weakParams(),
	})

	nodes := graph.Nodes()
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].State.Equal(nodes[j].State) {
				t.Fatalf("nodes %d and %d are equal states but were recorded as separate nodes", i, j)
			}
		}
	}
}

func TestGenerateRecordsOneOutcomePerSimulation(t *testing.T) {
	const numSims = 5
	graph := Generate[tictactoe.Mark, int](tictactoe.Initializer{}, Params{
		Seed:       2,
		NumSims:    numSims,
		SimPlayers: weakParams(),
	})

	if len(graph.Outcomes()) != numSims {
		t.Fatalf("expected %d recorded outcomes, got %d", numSims, len(graph.Outcomes()))
	}
}

func TestEdgeCountsArePositive(t *testing.T) {
	graph := Generate[tictactoe.Mark, int](tictactoe.Initializer{}, Params{
		Seed:       3,
		NumSims:    6,
		SimPlayers: weakParams(),
	})

	for _, e := range graph.Edges() {
		if e.Count < 1 {
			t.Fatalf("edge %+v has a non-positive count", e)
		}
	}
}

func TestWinRateStatsCoverAllOutcomePlayers(t *testing.T) {
	graph := Generate[tictactoe.Mark, int](tictactoe.Initializer{}, Params{
		Seed:       4,
		NumSims:    8,
		SimPlayers: weakParams(),
	})

	tally := graph.OutcomeTally()
	stats := graph.WinRateStats()

	for p := range tally {
		if _, ok := stats[p]; !ok {
			t.Fatalf("player %v appears in the outcome tally but not in WinRateStats", p)
		}
	}
}
