package position

import (
	"testing"

	. "github.com/corvidchess/corvid/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestStartPositionSetup(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	assert.NoError(t, err)
	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), p.piecesBb[White][Rook]|p.piecesBb[Black][Rook])
	assert.Equal(t, SqB1.Bb()|SqG1.Bb()|SqB8.Bb()|SqG8.Bb(), p.piecesBb[White][Knight]|p.piecesBb[Black][Knight])
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, StartFen, p.StringFen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.StringFen())
	}
}

func TestDoUndoMoveRestoresState(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	beforeHash := p.ZobristKey()
	beforeFen := p.StringFen()

	m := NewMove(SqE2, SqE4)
	p.DoMove(m)
	assert.NotEqual(t, beforeHash, p.ZobristKey())
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, SqE3, p.EnPassantSquare())

	p.UndoMove()
	assert.Equal(t, beforeHash, p.ZobristKey())
	assert.Equal(t, beforeFen, p.StringFen())
}

func TestDoUndoCapture(t *testing.T) {
	p, _ := NewPositionFen("rnbqkbnr/ppp2ppp/8/3pp3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq d6 0 3")
	beforeHash := p.ZobristKey()
	beforeFen := p.StringFen()

	capture := NewMove(SqE4, SqD5)
	p.DoMove(capture)
	assert.Equal(t, WhitePawn, p.GetPiece(SqD5))
	assert.True(t, p.WasCapturingMove())

	p.UndoMove()
	assert.Equal(t, beforeFen, p.StringFen())
	assert.Equal(t, beforeHash, p.ZobristKey())
}

func TestDoUndoEnPassant(t *testing.T) {
	p, _ := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	beforeHash := p.ZobristKey()
	beforeFen := p.StringFen()

	m := NewEnPassantMove(SqE5, SqD6)
	p.DoMove(m)
	assert.Equal(t, PieceNone, p.GetPiece(SqD5))
	assert.Equal(t, WhitePawn, p.GetPiece(SqD6))

	p.UndoMove()
	assert.Equal(t, beforeFen, p.StringFen())
	assert.Equal(t, beforeHash, p.ZobristKey())
}

func TestDoUndoCastling(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	beforeHash := p.ZobristKey()
	beforeFen := p.StringFen()

	p.DoMove(NewCastlingMove(SqE1, SqG1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqF1))
	assert.Equal(t, WhiteKing, p.GetPiece(SqG1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))

	p.UndoMove()
	assert.Equal(t, beforeFen, p.StringFen())
	assert.Equal(t, beforeHash, p.ZobristKey())
}

func TestDoUndoPromotion(t *testing.T) {
	p, _ := NewPositionFen("8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	beforeHash := p.ZobristKey()
	beforeFen := p.StringFen()

	p.DoMove(NewPromotionMove(SqA7, SqA8, Queen))
	assert.Equal(t, WhiteQueen, p.GetPiece(SqA8))

	p.UndoMove()
	assert.Equal(t, beforeFen, p.StringFen())
	assert.Equal(t, beforeHash, p.ZobristKey())
}

func TestDoUndoNullMove(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	beforeHash := p.ZobristKey()

	p.DoNullMove()
	assert.Equal(t, Black, p.NextPlayer())

	p.UndoNullMove()
	assert.Equal(t, beforeHash, p.ZobristKey())
	assert.Equal(t, White, p.NextPlayer())
}

func TestHasCheck(t *testing.T) {
	p, _ := NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, p.HasCheck())

	p2, _ := NewPositionFen(StartFen)
	assert.False(t, p2.HasCheck())
}

func TestHasInsufficientMaterial(t *testing.T) {
	p, _ := NewPositionFen("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())

	p2, _ := NewPositionFen(StartFen)
	assert.False(t, p2.HasInsufficientMaterial())
}

func TestCheckRepetitions(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	moves := []Move{
		NewMove(SqG1, SqF3), NewMove(SqG8, SqF6),
		NewMove(SqF3, SqG1), NewMove(SqF6, SqG8),
		NewMove(SqG1, SqF3), NewMove(SqG8, SqF6),
		NewMove(SqF3, SqG1), NewMove(SqF6, SqG8),
	}
	for _, m := range moves {
		p.DoMove(m)
	}
	assert.True(t, p.CheckRepetitions(2))
}
