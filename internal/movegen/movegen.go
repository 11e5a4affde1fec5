// Package movegen generates strictly legal moves directly off the
// checkers/pinned/attacked-square primitives Position already maintains,
// rather than generating pseudo-legal moves and filtering them with a
// make/unmake legality probe.
package movegen

import (
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"

	. "github.com/corvidchess/corvid/internal/types"
)

// GenMode selects which subset of the legal moves Generate produces.
type GenMode int

const (
	// GenAll generates every legal move.
	GenAll GenMode = iota
	// GenCaptures generates captures, en passant and promotions only —
	// the move set quiescence search wants.
	GenCaptures
)

// Sink receives generated moves. A quiet pawn push to the back rank always
// promotes, so AddPromotions is its own method rather than four AddMove
// calls the caller would otherwise have to spell out at every call site.
type Sink interface {
	AddMove(m Move)
	AddPromotions(from, to Square)
}

// sliceSink adapts a moveslice.MoveSlice to the Sink interface.
type sliceSink struct {
	moves *moveslice.MoveSlice
}

func (s sliceSink) AddMove(m Move) {
	s.moves.PushBack(m)
}

func (s sliceSink) AddPromotions(from, to Square) {
	s.moves.PushBack(NewPromotionMove(from, to, Queen))
	s.moves.PushBack(NewPromotionMove(from, to, Rook))
	s.moves.PushBack(NewPromotionMove(from, to, Bishop))
	s.moves.PushBack(NewPromotionMove(from, to, Knight))
}

// Generator generates legal moves. It carries no state of its own; the
// zero value is ready to use.
type Generator struct{}

// NewGenerator returns a ready-to-use Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateLegalMoves is a convenience wrapper over Generate that collects
// into a freshly allocated MoveSlice.
func (g *Generator) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(64)
	g.Generate(p, mode, sliceSink{moves: moves})
	return moves
}

// pins records, per pinned piece, the line it is confined to — the full ray
// through the king and the pinning slider, which for an unpinned piece is
// every square (handled by simply not appearing in the pins map).
type pins map[Square]Bitboard

// Generate writes every legal move available to the side to move into sink,
// restricted to mode.
func (g *Generator) Generate(p *position.Position, mode GenMode, sink Sink) {
	us := p.NextPlayer()
	them := us.Flip()
	king := p.KingSquare(us)
	ownOcc := p.OccupiedBb(us)
	theirOcc := p.OccupiedBb(them)
	occ := p.OccupiedAll()
	captureOnly := mode == GenCaptures

	checkers := p.Checkers()
	numCheckers := checkers.PopCount()
	attacked := p.AttackedByWithoutKing(them, king)

	g.genKingMoves(sink, king, ownOcc, attacked, theirOcc, captureOnly)
	if numCheckers >= 2 {
		// Double check: only the king can move.
		return
	}

	targetMask := ^ownOcc
	if numCheckers == 1 {
		checkerSq := checkers.Lsb()
		targetMask &= checkers | Between(king, checkerSq)
	}

	pinned := computePins(p, us, king)

	g.genKnightMoves(p, sink, us, targetMask, pinned, captureOnly, theirOcc)
	g.genSliderMoves(p, sink, us, Bishop, occ, targetMask, pinned, captureOnly, theirOcc)
	g.genSliderMoves(p, sink, us, Rook, occ, targetMask, pinned, captureOnly, theirOcc)
	g.genSliderMoves(p, sink, us, Queen, occ, targetMask, pinned, captureOnly, theirOcc)
	g.genPawnMoves(p, sink, us, occ, theirOcc, targetMask, pinned, captureOnly)
	g.genEnPassant(p, sink, us, them, king, checkers, numCheckers)

	if !captureOnly && numCheckers == 0 {
		g.genCastling(p, sink, us, occ, attacked)
	}
}

func (g *Generator) genKingMoves(sink Sink, king Square, ownOcc, attacked, theirOcc Bitboard, captureOnly bool) {
	dests := GetPseudoAttacks(King, king) &^ ownOcc &^ attacked
	if captureOnly {
		dests &= theirOcc
	}
	for dests != 0 {
		sink.AddMove(NewMove(king, dests.PopLsb()))
	}
}

func (g *Generator) genKnightMoves(p *position.Position, sink Sink, us Color, targetMask Bitboard, pinned pins, captureOnly bool, theirOcc Bitboard) {
	knights := p.PiecesBb(us, Knight)
	for knights != 0 {
		from := knights.PopLsb()
		if _, isPinned := pinned[from]; isPinned {
			// A knight can never stay on the pin line while moving, so a
			// pinned knight has no legal moves at all.
			continue
		}
		dests := GetPseudoAttacks(Knight, from) & targetMask
		if captureOnly {
			dests &= theirOcc
		}
		for dests != 0 {
			sink.AddMove(NewMove(from, dests.PopLsb()))
		}
	}
}

func (g *Generator) genSliderMoves(p *position.Position, sink Sink, us Color, pt PieceType, occ, targetMask Bitboard, pinned pins, captureOnly bool, theirOcc Bitboard) {
	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		dests := GetAttacksBb(pt, from, occ) & targetMask
		if allowed, isPinned := pinned[from]; isPinned {
			dests &= allowed
		}
		if captureOnly {
			dests &= theirOcc
		}
		for dests != 0 {
			sink.AddMove(NewMove(from, dests.PopLsb()))
		}
	}
}

func (g *Generator) genPawnMoves(p *position.Position, sink Sink, us Color, occ, theirOcc, targetMask Bitboard, pinned pins, captureOnly bool) {
	dir := us.MoveDirection()
	promoRank := us.PromotionRankBb()
	startRank := Rank2.ForColor(us)

	pawns := p.PiecesBb(us, Pawn)
	for pawns != 0 {
		from := pawns.PopLsb()
		allowed, isPinned := pinned[from]

		to1 := from.To(dir)
		if to1.IsValid() && !occ.Has(to1) {
			if !isPinned || allowed.Has(to1) {
				addPawnPush(sink, from, to1, targetMask, captureOnly, promoRank)
			}
			if from.RankOf() == startRank {
				to2 := to1.To(dir)
				if !occ.Has(to2) && (!isPinned || allowed.Has(to2)) {
					addPawnPush(sink, from, to2, targetMask, captureOnly, promoRank)
				}
			}
		}

		captures := GetPawnAttacks(us, from) & theirOcc
		if isPinned {
			captures &= allowed
		}
		for captures != 0 {
			to := captures.PopLsb()
			addPawnCapture(sink, from, to, targetMask, promoRank)
		}
	}
}

func addPawnPush(sink Sink, from, to Square, targetMask Bitboard, captureOnly bool, promoRank Bitboard) {
	if !targetMask.Has(to) {
		return
	}
	if promoRank.Has(to) {
		sink.AddPromotions(from, to)
		return
	}
	if !captureOnly {
		sink.AddMove(NewMove(from, to))
	}
}

func addPawnCapture(sink Sink, from, to Square, targetMask Bitboard, promoRank Bitboard) {
	if !targetMask.Has(to) {
		return
	}
	if promoRank.Has(to) {
		sink.AddPromotions(from, to)
		return
	}
	sink.AddMove(NewMove(from, to))
}

func (g *Generator) genEnPassant(p *position.Position, sink Sink, us, them Color, king Square, checkers Bitboard, numCheckers int) {
	epSq := p.EnPassantSquare()
	if epSq == SqNone {
		return
	}
	capSq := epSq.To(them.MoveDirection())

	candidates := GetPawnAttacks(them, epSq) & p.PiecesBb(us, Pawn)
	for candidates != 0 {
		from := candidates.PopLsb()
		if p.EnPassantDiscoveredCheck(from, us) {
			continue
		}
		if numCheckers == 1 {
			checkerSq := checkers.Lsb()
			if checkerSq != capSq && !Between(king, checkerSq).Has(epSq) {
				continue
			}
		}
		sink.AddMove(NewEnPassantMove(from, epSq))
	}
}

func (g *Generator) genCastling(p *position.Position, sink Sink, us Color, occ, attacked Bitboard) {
	king := p.KingSquare(us)
	rights := p.CastlingRights()

	if rights.Has(OOFlag(us)) && occ&KingSideCastleMask(us) == 0 {
		dest := king.To(East).To(East)
		transit := Intermediate(king, dest) | dest.Bb()
		if transit&attacked == 0 {
			sink.AddMove(NewCastlingMove(king, dest))
		}
	}
	if rights.Has(OOOFlag(us)) && occ&QueenSideCastleMask(us) == 0 {
		dest := king.To(West).To(West)
		transit := Intermediate(king, dest) | dest.Bb()
		if transit&attacked == 0 {
			sink.AddMove(NewCastlingMove(king, dest))
		}
	}
}

// computePins finds, for each of us's pieces pinned against its own king,
// the ray (through the king and the pinning slider) the piece may still
// move along.
func computePins(p *position.Position, us Color, king Square) pins {
	them := us.Flip()
	occ := p.OccupiedAll()
	ownOcc := p.OccupiedBb(us)

	result := make(pins, 4)

	bishopPinners := (p.PiecesBb(them, Bishop) | p.PiecesBb(them, Queen)) & GetPseudoAttacks(Bishop, king)
	rookPinners := (p.PiecesBb(them, Rook) | p.PiecesBb(them, Queen)) & GetPseudoAttacks(Rook, king)
	pinners := bishopPinners | rookPinners

	for pinners != 0 {
		pinnerSq := pinners.PopLsb()
		between := Between(king, pinnerSq) & occ
		if between.PopCount() != 1 {
			continue
		}
		if between&ownOcc == 0 {
			continue
		}
		result[between.Lsb()] = Line(king, pinnerSq)
	}
	return result
}

// MoveFromUci generates every legal move in p and returns the one whose
// StringUci matches uciMove, or MoveNone if there is no such move. This is
// the only safe way to turn a UCI long-algebraic string into a Move: the
// string alone can't tell a normal king step from castling or a normal
// pawn capture from en passant.
func (g *Generator) MoveFromUci(p *position.Position, uciMove string) Move {
	legal := g.GenerateLegalMoves(p, GenAll)
	found := MoveNone
	legal.ForEach(func(_ int, m Move) {
		if found == MoveNone && m.StringUci() == uciMove {
			found = m
		}
	})
	return found
}
