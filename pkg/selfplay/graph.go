package selfplay

import "github.com/signalnine/mcts-core/pkg/game"

// NodeRecord is one deduplicated state visited during self-play.
type NodeRecord[P comparable, A comparable] struct {
	State    game.Game[P, A]
	SimIndex int
	Step     int
}

type edgeRecord[A comparable] struct {
	src, dst int
	action   A
	count    int
}

// EdgeRecord is one deduplicated action transition between two nodes.
type EdgeRecord[A comparable] struct {
	Src, Dst int
	Action   A
	Count    int
}

// Graph is the deduplicated state/action multigraph self-play
// produces: nodes are distinct game states, compared with Game.Equal
// rather than Go's ==; edges are distinct (source, action,
// destination) triples, each carrying the number of times that exact
// transition occurred across every simulation.
//
// It is intentionally minimal - this is the structure this package's
// own dedup/merge rules require, not a general-purpose graph type.
type Graph[P comparable, A comparable] struct {
	nodes []NodeRecord[P, A]
	edges []edgeRecord[A]

	// outcomes holds one entry per completed simulation, independent
	// of node dedup - two simulations that happen to end on an equal
	// state still each contribute their own outcome here, which is
	// what WinRateStats needs to compute a meaningful per-sim rate.
	outcomes []game.Outcome[P]
}

// Nodes returns every distinct state recorded, in discovery order.
func (g *Graph[P, A]) Nodes() []NodeRecord[P, A] {
	return g.nodes
}

// Edges returns every distinct transition recorded, in discovery
// order, along with the source/destination node indices into Nodes.
func (g *Graph[P, A]) Edges() []EdgeRecord[A] {
	out := make([]EdgeRecord[A], len(g.edges))
	for i, e := range g.edges {
		out[i] = EdgeRecord[A]{Src: e.src, Dst: e.dst, Action: e.action, Count: e.count}
	}
	return out
}

// findOrAddNode returns the index of an existing node equal to state,
// or appends a new one and returns its index. Dedup is a linear scan,
// the same approach the pre-distillation reference uses, since the
// game contract only guarantees Equal, not a stable hash.
func (g *Graph[P, A]) findOrAddNode(state game.Game[P, A], simIndex, step int) int {
	for i := range g.nodes {
		if g.nodes[i].State.Equal(state) {
			return i
		}
	}
	g.nodes = append(g.nodes, NodeRecord[P, A]{State: state, SimIndex: simIndex, Step: step})
	return len(g.nodes) - 1
}

// findOrAddEdge increments the count of the existing (src, action,
// dst) edge, or appends a new edge with count 1.
func (g *Graph[P, A]) findOrAddEdge(src, dst int, action A) {
	for i := range g.edges {
		e := &g.edges[i]
		if e.src == src && e.dst == dst && e.action == action {
			e.count++
			return
		}
	}
	g.edges = append(g.edges, edgeRecord[A]{src: src, dst: dst, action: action, count: 1})
}

// Outcomes returns the terminal outcome of every completed simulation,
// in the order the simulations ran.
func (g *Graph[P, A]) Outcomes() []game.Outcome[P] {
	return g.outcomes
}

// OutcomeTally counts, for each player, the distinct terminal nodes
// whose outcome credits that player as a winner. Nodes are
// deduplicated, so a terminal state reached by several simulations is
// counted once.
func (g *Graph[P, A]) OutcomeTally() map[P]int {
	tally := make(map[P]int)
	for _, n := range g.nodes {
		outcome, done := n.State.Outcome()
		if !done {
			continue
		}
		for _, w := range outcome.WinningPlayers() {
			tally[w]++
		}
	}
	return tally
}
