package position

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// Key is the 64-bit Zobrist hash used by the transposition table and
// repetition detection.
type Key uint64

// zobristTable holds the process-wide immutable random keys used to build
// a Position's incremental hash: one per piece-square pair, one per
// castling-rights bit combination, one per en-passant file, and one for
// side to move.
type zobristTable struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingLength]Key
	enPassantFile  [FileLength]Key
	nextPlayer     Key
}

var zobristBase zobristTable

// initZobrist fills the Zobrist tables with a fixed seed so keys are
// reproducible across runs (and therefore across test assertions).
func initZobrist() {
	r := newXorshiftRandom(1070372)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := CastlingNone; int(cr) < CastlingLength; cr++ {
		zobristBase.castlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		zobristBase.enPassantFile[f] = Key(r.rand64())
	}
	zobristBase.nextPlayer = Key(r.rand64())
}
