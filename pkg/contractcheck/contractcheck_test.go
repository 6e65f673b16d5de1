package contractcheck

import (
	"testing"

	"github.com/signalnine/mcts-core/examples/numbergame"
	"github.com/signalnine/mcts-core/examples/tictactoe"
	"github.com/signalnine/mcts-core/pkg/game"
	"github.com/signalnine/mcts-core/pkg/xrand"
)

func TestValidateAcceptsWellFormedAdapters(t *testing.T) {
	rng := xrand.New(1)

	if err := Validate[tictactoe.Mark, int](tictactoe.New(), rng); err != nil {
		t.Fatalf("expected tictactoe's starting position to pass validation, got: %v", err)
	}
	if err := Validate[int, numbergame.Action](numbergame.New(3, 1, 10), rng); err != nil {
		t.Fatalf("expected numbergame's starting position to pass validation, got: %v", err)
	}
}

type badCurrentPlayer struct{ *tictactoe.State }

func (badCurrentPlayer) CurrentPlayer() tictactoe.Mark { return tictactoe.Mark(99) }

func (b badCurrentPlayer) Determine(rng *xrand.Rand, p tictactoe.Mark) game.Game[tictactoe.Mark, int] {
	return b
}

func (b badCurrentPlayer) Equal(other game.Game[tictactoe.Mark, int]) bool {
	o, ok := other.(badCurrentPlayer)
	return ok && b.State.Equal(o.State)
}

func TestValidateRejectsUnknownCurrentPlayer(t *testing.T) {
	rng := xrand.New(2)
	bad := badCurrentPlayer{State: tictactoe.New()}

	if err := Validate[tictactoe.Mark, int](bad, rng); err == nil {
		t.Fatalf("expected validation to reject a current player absent from Players()")
	}
}
