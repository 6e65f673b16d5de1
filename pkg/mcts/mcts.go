// Package mcts implements a single-threaded Monte Carlo tree search
// over an arena-indexed tree: every node lives in one contiguous
// slice and is referenced by its index, never by an individually
// heap-allocated pointer chased one at a time.
package mcts

import (
	"math"

	"github.com/signalnine/mcts-core/pkg/game"
	"github.com/signalnine/mcts-core/pkg/rollout"
	"github.com/signalnine/mcts-core/pkg/xrand"
)

// DefaultExplorationParam is the usual sqrt(2) UCB1 constant.
const DefaultExplorationParam = 1.414

const noParent = -1

type node[P comparable, A comparable] struct {
	state    game.Game[P, A]
	mover    P
	parent   int
	children []int
	actions  []A
	expanded bool
	visits   float64
	reward   map[P]float64
}

// Tree is an arena-indexed MCTS search tree rooted at a single game
// state. Its zero value is not usable; construct one with New.
type Tree[P comparable, A comparable] struct {
	nodes            []node[P, A]
	rng              *xrand.Rand
	explorationParam float64
}

// New builds a one-node tree rooted at root.
func New[P comparable, A comparable](root game.Game[P, A], rng *xrand.Rand) *Tree[P, A] {
	t := &Tree[P, A]{
		rng:              rng,
		explorationParam: DefaultExplorationParam,
	}
	t.nodes = append(t.nodes, t.newNode(root, noParent))
	return t
}

func (t *Tree[P, A]) newNode(state game.Game[P, A], parent int) node[P, A] {
	return node[P, A]{
		state:  state,
		mover:  state.CurrentPlayer(),
		parent: parent,
		reward: make(map[P]float64),
	}
}

// SetExplorationParam overrides the UCB1 exploration constant.
func (t *Tree[P, A]) SetExplorationParam(c float64) {
	t.explorationParam = c
}

// Search runs iterations rounds of select/expand/rollout/backpropagate
// from the root and returns its best action per BestAction.
func (t *Tree[P, A]) Search(iterations int) A {
	for i := 0; i < iterations; i++ {
		t.iterate()
	}
	return t.BestAction()
}

func (t *Tree[P, A]) iterate() {
	idx := 0

	// 1. Selection - descend via UCB1 while idx has already been fully
	// expanded (every legal action has a child) and is not terminal.
	for {
		if _, done := t.nodes[idx].state.Outcome(); done {
			break
		}
		if !t.nodes[idx].expanded {
			break
		}
		if len(t.nodes[idx].children) == 0 {
			break
		}
		idx = t.selectChild(idx)
	}

	// 2. Expansion - create one child per legal action from idx, in
	// action order, all at once. Then pick one of the freshly added
	// children via UCB1 to roll out from.
	if _, done := t.nodes[idx].state.Outcome(); !done && !t.nodes[idx].expanded {
		t.expand(idx)
		if len(t.nodes[idx].children) > 0 {
			idx = t.selectChild(idx)
		}
	}

	// 3. Rollout.
	outcome := rollout.RandomRollout[P, A](t.nodes[idx].state, t.rng)

	// 4. Backpropagation.
	t.backpropagate(idx, outcome)
}

func (t *Tree[P, A]) selectChild(idx int) int {
	children := t.nodes[idx].children
	best := children[0]
	bestValue := t.ucb1(idx, best)
	for _, c := range children[1:] {
		v := t.ucb1(idx, c)
		if v > bestValue {
			bestValue = v
			best = c
		}
	}
	return best
}

// unvisitedChildValue stands in for a child's UCB1 score before it has
// any visits of its own - large enough to dominate any visited
// sibling's exploitation+exploration terms, but finite so the noise
// term below still breaks ties between several unvisited children.
const unvisitedChildValue = 1e6

// ucb1 scores childIdx from parentIdx's mover's perspective: the
// player about to act at the parent is the one whose accumulated
// reward at the child decides which branch it prefers to explore. A
// small RNG-derived perturbation is added so ties - most often among
// several just-expanded, still-unvisited children - resolve
// nondeterministically instead of always favoring the lowest index.
func (t *Tree[P, A]) ucb1(parentIdx, childIdx int) float64 {
	parent := &t.nodes[parentIdx]
	child := &t.nodes[childIdx]

	noise := (t.rng.Float64()*2 - 1) * 1e-6

	if child.visits == 0 {
		return unvisitedChildValue + noise
	}

	exploitation := child.reward[parent.mover] / child.visits
	exploration := t.explorationParam * math.Sqrt(math.Log(parent.visits+1)/child.visits)

	return exploitation + exploration + noise
}

// expand creates one child per legal action from idx's state, in
// action order, applying each in turn.
func (t *Tree[P, A]) expand(idx int) {
	actions := t.nodes[idx].state.Actions()
	for _, action := range actions {
		childState, err := t.nodes[idx].state.Apply(action, t.rng)
		if err != nil {
			panic("mcts: apply failed during expansion: " + err.Error())
		}

		t.nodes = append(t.nodes, t.newNode(childState, idx))
		childIdx := len(t.nodes) - 1

		t.nodes[idx].children = append(t.nodes[idx].children, childIdx)
		t.nodes[idx].actions = append(t.nodes[idx].actions, action)
	}
	t.nodes[idx].expanded = true
}

func (t *Tree[P, A]) backpropagate(idx int, outcome game.Outcome[P]) {
	winners := outcome.WinningPlayers()
	for idx != noParent {
		t.nodes[idx].visits++
		for _, w := range winners {
			t.nodes[idx].reward[w]++
		}
		idx = t.nodes[idx].parent
	}
}

// BestAction returns the action whose child maximizes the root
// player's average reward (reward[rootPlayer]/visits), not raw visit
// count.
func (t *Tree[P, A]) BestAction() A {
	root := &t.nodes[0]

	var zero A
	if len(root.children) == 0 {
		return zero
	}

	rootPlayer := root.mover

	bestValue := math.Inf(-1)
	best := root.actions[0]

	for i, c := range root.children {
		child := &t.nodes[c]

		value := math.Inf(-1)
		if child.visits > 0 {
			value = child.reward[rootPlayer] / child.visits
		}

		if value > bestValue {
			bestValue = value
			best = root.actions[i]
		}
	}

	return best
}

// Stats reports the root's visit count and, for each player, the
// total reward accumulated at the root - mostly useful for tests and
// diagnostics.
func (t *Tree[P, A]) Stats() (visits float64, reward map[P]float64) {
	root := &t.nodes[0]
	cp := make(map[P]float64, len(root.reward))
	for p, v := range root.reward {
		cp[p] = v
	}
	return root.visits, cp
}

// SearchParams bundles the knobs Search exposes as a single value,
// following the same shape as a plain (iterations, explorationParam)
// call.
type SearchParams struct {
	Iterations       int
	ExplorationParam float64
}

// SearchWithParams runs a fresh search rooted at root with the given
// parameters and returns the best action found.
func SearchWithParams[P comparable, A comparable](root game.Game[P, A], rng *xrand.Rand, params SearchParams) A {
	t := New[P, A](root, rng)
	if params.ExplorationParam != 0 {
		t.SetExplorationParam(params.ExplorationParam)
	}
	return t.Search(params.Iterations)
}

// Search is the common-case entry point: build a tree rooted at root,
// run iterations rounds of search, and return the best action.
func Search[P comparable, A comparable](root game.Game[P, A], rng *xrand.Rand, iterations int) A {
	return New[P, A](root, rng).Search(iterations)
}
