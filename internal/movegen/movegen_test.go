package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestGenerateLegalMovesStartPositionCount(t *testing.T) {
	p := position.NewPosition()
	gen := NewGenerator()
	moves := gen.GenerateLegalMoves(p, GenAll)
	assert.Equal(t, 20, moves.Len())
}

func TestGenerateLegalMovesRespectsPin(t *testing.T) {
	// White rook on e1 pins the black knight on e6 to the black king on e8;
	// the knight has no legal move that keeps the king out of check.
	fen := "4k3/8/4n3/8/8/8/8/4R1K1 b - - 0 1"
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)

	gen := NewGenerator()
	moves := gen.GenerateLegalMoves(p, GenAll)
	moves.ForEach(func(_ int, m Move) {
		assert.NotEqual(t, SqE6, m.From(), "pinned knight must not move off the e-file")
	})
}

func TestGenerateLegalMovesOnlyKingMovesWhenInCheck(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1"
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)

	gen := NewGenerator()
	moves := gen.GenerateLegalMoves(p, GenAll)
	assert.True(t, moves.Len() > 0)
	moves.ForEach(func(_ int, m Move) {
		assert.Equal(t, SqE1, m.From())
	})
}

func TestGenerateLegalMovesCheckmateHasNoMoves(t *testing.T) {
	mateFen := "R5k1/5ppp/8/8/8/8/8/7K b - - 0 1"
	mp, err := position.NewPositionFen(mateFen)
	assert.NoError(t, err)

	gen := NewGenerator()
	moves := gen.GenerateLegalMoves(mp, GenAll)
	assert.Equal(t, 0, moves.Len())
	assert.True(t, mp.HasCheck())
}

func TestGenCapturesOnlyReturnsCaptures(t *testing.T) {
	fen := "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)

	gen := NewGenerator()
	moves := gen.GenerateLegalMoves(p, GenCaptures)
	assert.Equal(t, 1, moves.Len())
	assert.Equal(t, "e4d5", moves.At(0).StringUci())
}

func TestMoveFromUciResolvesCastling(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)

	gen := NewGenerator()
	m := gen.MoveFromUci(p, "e1g1")
	assert.True(t, m.IsValid())
	assert.Equal(t, Castling, m.MoveType())
}

func TestMoveFromUciReturnsNoneForIllegalMove(t *testing.T) {
	p := position.NewPosition()
	gen := NewGenerator()
	m := gen.MoveFromUci(p, "e2e5")
	assert.Equal(t, MoveNone, m)
}
