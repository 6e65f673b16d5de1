// Package game defines the contract every adapter implements so the
// search packages (rollout, mcts, ismcts, selfplay) can operate on any
// turn-based, possibly imperfect-information, multi-player game
// without knowing anything about its rules.
package game

import "github.com/signalnine/mcts-core/pkg/xrand"

// Game is the narrow capability set a concrete game state must
// support. P is the player identity type, A the action type; both are
// expected to be small, comparable, cheaply-copied values (an enum, an
// index, a short struct of primitives) rather than anything holding a
// pointer the caller might mutate out from under the search.
type Game[P comparable, A comparable] interface {
	// Actions lists the legal actions from this state for the
	// current player. An empty slice with no outcome means the
	// position is stuck; callers treat that as Outcome's Escape case.
	Actions() []A

	// Apply returns the state that results from the current player
	// taking action. rng is threaded through for games whose
	// transition itself is randomized (e.g. a shuffle); deterministic
	// games ignore it.
	Apply(action A, rng *xrand.Rand) (Game[P, A], error)

	// Outcome reports the game's result if it has ended.
	Outcome() (Outcome[P], bool)

	// CurrentPlayer is whoever must act next.
	CurrentPlayer() P

	// Players lists every player in the game, in a stable order.
	Players() []P

	// Determine returns a fully-observable state consistent with
	// everything perspective has legitimately observed so far. A
	// perfect-information game returns itself; an imperfect-information
	// game samples its hidden information (e.g. an opponent's unseen
	// hand) using rng.
	Determine(rng *xrand.Rand, perspective P) Game[P, A]

	// Equal reports whether other represents the same game state.
	// Used by the self-play graph generator to deduplicate nodes; a
	// plain == over Game values is unsafe once the concrete state
	// holds a slice or map field.
	Equal(other Game[P, A]) bool
}

// OutcomeKind distinguishes the variants of Outcome.
type OutcomeKind int

const (
	// OutcomeNone means the game has not ended.
	OutcomeNone OutcomeKind = iota
	// OutcomeWinner means exactly one player won.
	OutcomeWinner
	// OutcomeWinners means every named player shares the win.
	OutcomeWinners
	// OutcomeEscape means the game terminated abnormally rather than
	// through a win — a stuck position, a forced forfeit, and so on.
	OutcomeEscape
)

// Outcome is a closed result variant: a single winner, a shared win
// among several players, or an escape with a reason. The zero value
// (OutcomeNone) is never itself a valid Outcome to construct by hand;
// use the constructors below.
type Outcome[P comparable] struct {
	Kind    OutcomeKind
	Winner  P
	Winners []P
	Reason  string
}

// WinnerOutcome reports a single winning player.
func WinnerOutcome[P comparable](p P) Outcome[P] {
	return Outcome[P]{Kind: OutcomeWinner, Winner: p}
}

// WinnersOutcome reports a shared win among the given players, each
// credited equally by any consumer that scores the outcome.
func WinnersOutcome[P comparable](ps []P) Outcome[P] {
	return Outcome[P]{Kind: OutcomeWinners, Winners: ps}
}

// EscapeOutcome reports an abnormal termination with no winner.
func EscapeOutcome[P comparable](reason string) Outcome[P] {
	return Outcome[P]{Kind: OutcomeEscape, Reason: reason}
}

// WinningPlayers returns every player credited by this outcome: zero
// players for OutcomeEscape, one for OutcomeWinner, all named players
// for OutcomeWinners.
func (o Outcome[P]) WinningPlayers() []P {
	switch o.Kind {
	case OutcomeWinner:
		return []P{o.Winner}
	case OutcomeWinners:
		return o.Winners
	default:
		return nil
	}
}
