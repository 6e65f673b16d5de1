package selfplay

import "gonum.org/v1/gonum/stat"

// WinRateStat summarizes one player's outcomes across every completed
// simulation in a Graph.
type WinRateStat struct {
	Games   int
	WinRate float64
	StdDev  float64
}

// WinRateStats computes, for every player that ever won or lost a
// recorded simulation, its win rate and the standard deviation of
// that per-simulation win indicator - the proper statistical form of
// the raw winner count the self-play driver's outcomes imply.
func (g *Graph[P, A]) WinRateStats() map[P]WinRateStat {
	players := make(map[P]struct{})
	if len(g.outcomes) > 0 && len(g.nodes) > 0 {
		for _, p := range g.nodes[0].State.Players() {
			players[p] = struct{}{}
		}
	}
	for _, outcome := range g.outcomes {
		for _, w := range outcome.WinningPlayers() {
			players[w] = struct{}{}
		}
	}

	stats := make(map[P]WinRateStat, len(players))
	for p := range players {
		indicator := make([]float64, len(g.outcomes))
		for i, outcome := range g.outcomes {
			for _, w := range outcome.WinningPlayers() {
				if w == p {
					indicator[i] = 1
					break
				}
			}
		}
		stats[p] = WinRateStat{
			Games:   len(indicator),
			WinRate: stat.Mean(indicator, nil),
			StdDev:  stat.StdDev(indicator, nil),
		}
	}
	return stats
}
