// Package main provides the mcts-core-selfplay CLI for self-playing
// one of the bundled demo games and reporting per-player outcomes.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flag"

	"github.com/notnil/chess"

	"github.com/signalnine/mcts-core/examples/chessdemo"
	"github.com/signalnine/mcts-core/examples/numbergame"
	"github.com/signalnine/mcts-core/examples/tictactoe"
	"github.com/signalnine/mcts-core/pkg/ismcts"
	"github.com/signalnine/mcts-core/pkg/selfplay"
)

// Version information (set by build flags).
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	gameName       string
	numSims        int
	determinations int
	simsPerAction  int
	seed           int64
	outputPath     string
	verbose        bool
	showVersion    bool
)

func init() {
	flag.StringVar(&gameName, "game", "tictactoe", "Demo game to self-play (tictactoe, numbergame, chess)")
	flag.IntVar(&numSims, "sims", 20, "Number of self-play games to run")
	flag.IntVar(&determinations, "determinizations", 12, "IS-MCTS determinizations per decision")
	flag.IntVar(&simsPerAction, "simulations-per-action", 50, "Rollouts per candidate action within a determinization")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.StringVar(&outputPath, "out", "", "Output file for the JSON summary (default: stdout)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose progress output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("mcts-core-selfplay %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\ninterrupted before self-play completed")
		os.Exit(130)
	}()

	if verbose {
		fmt.Printf("self-playing %s: %d games, seed=%d, determinizations=%d, sims/action=%d\n",
			gameName, numSims, seed, determinations, simsPerAction)
	}

	startTime := time.Now()

	var (
		result summary
		err    error
	)
	switch gameName {
	case "tictactoe":
		result, err = runTicTacToe()
	case "numbergame":
		result, err = runNumberGame()
	case "chess":
		result, err = runChess()
	default:
		err = fmt.Errorf("unknown -game %q (want tictactoe, numbergame, or chess)", gameName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "self-play failed: %v\n", err)
		os.Exit(1)
	}

	result.Elapsed = time.Since(startTime).String()

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding summary: %v\n", err)
		os.Exit(1)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("summary written to %s\n", outputPath)
	}
}

type playerSummary struct {
	Player  string  `json:"player"`
	Games   int     `json:"games"`
	WinRate float64 `json:"win_rate"`
	StdDev  float64 `json:"std_dev"`
}

type summary struct {
	Game    string          `json:"game"`
	Seed    int64           `json:"seed"`
	NumSims int             `json:"num_sims"`
	Nodes   int             `json:"nodes"`
	Edges   int             `json:"edges"`
	Players []playerSummary `json:"players"`
	Elapsed string          `json:"elapsed"`
}

func playerParamsFor(numPlayers int) []ismcts.PlayerParams {
	params := make([]ismcts.PlayerParams, numPlayers)
	for i := range params {
		params[i] = ismcts.PlayerParams{
			NumDeterminizations:     determinations,
			NumSimulationsPerAction: simsPerAction,
		}
	}
	return params
}

func runTicTacToe() (summary, error) {
	graph := selfplay.Generate[tictactoe.Mark, int](tictactoe.Initializer{}, selfplay.Params{
		Seed:       seed,
		NumSims:    numSims,
		SimPlayers: playerParamsFor(2),
	})
	return summary{
		Game:    "tictactoe",
		Seed:    seed,
		NumSims: numSims,
		Nodes:   len(graph.Nodes()),
		Edges:   len(graph.Edges()),
		Players: playerSummaries(graph),
	}, nil
}

func runNumberGame() (summary, error) {
	ngInit := numbergame.Initializer{NumPlayers: 3, Lo: 1, Hi: 20}
	graph := selfplay.Generate[int, numbergame.Action](ngInit, selfplay.Params{
		Seed:       seed,
		NumSims:    numSims,
		SimPlayers: playerParamsFor(3),
	})
	return summary{
		Game:    "numbergame",
		Seed:    seed,
		NumSims: numSims,
		Nodes:   len(graph.Nodes()),
		Edges:   len(graph.Edges()),
		Players: playerSummaries(graph),
	}, nil
}

func runChess() (summary, error) {
	graph := selfplay.Generate[chess.Color, string](chessdemo.Initializer{}, selfplay.Params{
		Seed:       seed,
		NumSims:    numSims,
		SimPlayers: playerParamsFor(2),
	})
	return summary{
		Game:    "chess",
		Seed:    seed,
		NumSims: numSims,
		Nodes:   len(graph.Nodes()),
		Edges:   len(graph.Edges()),
		Players: playerSummaries(graph),
	}, nil
}

func playerSummaries[P comparable, A comparable](graph *selfplay.Graph[P, A]) []playerSummary {
	stats := graph.WinRateStats()
	out := make([]playerSummary, 0, len(stats))
	for p, st := range stats {
		out = append(out, playerSummary{
			Player:  fmt.Sprintf("%v", p),
			Games:   st.Games,
			WinRate: st.WinRate,
			StdDev:  st.StdDev,
		})
	}
	return out
}
