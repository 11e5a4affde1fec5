package movegen

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// attackersTo returns every piece of either color attacking sq given a
// (possibly virtual) occupancy bitboard, so sliding attacks can be
// re-derived as pieces are peeled off the board during SEE.
func attackersTo(p *position.Position, sq Square, occupied Bitboard) Bitboard {
	var attackers Bitboard
	attackers |= GetPawnAttacks(Black, sq) & p.PiecesBb(White, Pawn) & occupied
	attackers |= GetPawnAttacks(White, sq) & p.PiecesBb(Black, Pawn) & occupied
	attackers |= GetPseudoAttacks(Knight, sq) & (p.PiecesBb(White, Knight) | p.PiecesBb(Black, Knight)) & occupied

	diagSliders := (p.PiecesBb(White, Bishop) | p.PiecesBb(Black, Bishop) |
		p.PiecesBb(White, Queen) | p.PiecesBb(Black, Queen)) & occupied
	attackers |= GetAttacksBb(Bishop, sq, occupied) & diagSliders

	orthoSliders := (p.PiecesBb(White, Rook) | p.PiecesBb(Black, Rook) |
		p.PiecesBb(White, Queen) | p.PiecesBb(Black, Queen)) & occupied
	attackers |= GetAttacksBb(Rook, sq, occupied) & orthoSliders

	attackers |= GetPseudoAttacks(King, sq) & (p.PiecesBb(White, King) | p.PiecesBb(Black, King)) & occupied
	return attackers
}

// leastValuableAttacker returns the lowest-value piece of color c among
// attackers, its square, and whether one exists. Enumeration order is
// pawn, knight, bishop, rook, queen, king.
func leastValuableAttacker(p *position.Position, attackers Bitboard, c Color) (Square, PieceType, bool) {
	order := [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, pt := range order {
		bb := attackers & p.PiecesBb(c, pt)
		if bb != 0 {
			return bb.Lsb(), pt, true
		}
	}
	return SqNone, PtNone, false
}

// see estimates the material won or lost on move's destination square if
// both sides trade there optimally, per the standard swap-off algorithm:
// repeatedly replace the occupant with the least valuable attacker,
// tracking a gain stack, then minimax-unwind it from the final attacker
// back to the first.
func see(p *position.Position, move Move) Value {
	from := move.From()
	to := move.To()

	movingPt := p.GetPiece(from).TypeOf()
	var gain [32]Value
	depth := 0

	occupied := p.OccupiedAll() &^ from.Bb()

	var captured Value
	if move.MoveType() == EnPassant {
		captured = Pawn.Value()
		capSq := to.To(p.NextPlayer().Flip().MoveDirection())
		occupied &^= capSq.Bb()
	} else if target := p.GetPiece(to); target != PieceNone {
		captured = target.Value()
	}
	gain[depth] = captured

	attacker := movingPt
	side := p.NextPlayer().Flip()
	occupied &^= to.Bb()
	attackers := attackersTo(p, to, occupied)

	for {
		sq, pt, ok := leastValuableAttacker(p, attackers, side)
		if !ok {
			break
		}
		depth++
		gain[depth] = attacker.Value() - gain[depth-1]
		occupied &^= sq.Bb()
		attackers = attackersTo(p, to, occupied) &^ sq.Bb()
		attacker = pt
		side = side.Flip()
	}

	for depth > 0 {
		if -gain[depth] < gain[depth-1] {
			gain[depth-1] = -gain[depth]
		}
		depth--
	}
	return gain[0]
}
