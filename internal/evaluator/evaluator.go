// Package evaluator scores a Position in centipawns from the side to
// move's perspective: material and piece-square values are tracked
// incrementally on Position itself; this package adds the terms that need
// a fresh pass over the board each call — pawn structure, slider
// mobility, the bishop pair and a king-pawn endgame rule-of-the-square
// bonus.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Phase buckets a position by total non-king material, used only to gate
// the king-pawn endgame term; the continuous midgame/endgame taper used
// for material and piece-square values is Position.GamePhaseFactor.
type Phase int

const (
	Opening Phase = iota
	Middlegame
	Endgame
)

func classifyPhase(totalMaterial Value) Phase {
	switch {
	case totalMaterial >= 3700:
		return Opening
	case totalMaterial >= 1700:
		return Middlegame
	default:
		return Endgame
	}
}

// Evaluator holds the pawn-structure cache across calls; everything else
// it computes is read fresh from the Position each time. The zero value is
// not ready to use — create with NewEvaluator.
type Evaluator struct {
	log       *logging.Logger
	pawnCache *pawnCache
}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	e := &Evaluator{log: myLogging.GetLog()}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache(config.Settings.Eval.PawnCacheSize)
	}
	return e
}

// Evaluate returns the static evaluation of p in centipawns from the
// perspective of the side to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	var score Score
	score.MidGameValue = int(p.Material(White) - p.Material(Black))
	score.EndGameValue = score.MidGameValue
	score.MidGameValue += int(p.PsqMidValue(White) - p.PsqMidValue(Black))
	score.EndGameValue += int(p.PsqEndValue(White) - p.PsqEndValue(Black))

	if config.Settings.Eval.UsePawnEval {
		white := e.pawnScore(p, White)
		black := e.pawnScore(p, Black)
		score.Add(white)
		score.Sub(black)
	}

	if config.Settings.Eval.UseMobility {
		white := mobilityScore(p, White)
		black := mobilityScore(p, Black)
		score.Add(white)
		score.Sub(black)
	}

	if config.Settings.Eval.UseBishopPair {
		if p.PiecesBb(White, Bishop).PopCount() == 2 {
			score.MidGameValue += int(config.Settings.Eval.BishopPairBonus)
			score.EndGameValue += int(config.Settings.Eval.BishopPairBonus)
		}
		if p.PiecesBb(Black, Bishop).PopCount() == 2 {
			score.MidGameValue -= int(config.Settings.Eval.BishopPairBonus)
			score.EndGameValue -= int(config.Settings.Eval.BishopPairBonus)
		}
	}

	if config.Settings.Eval.UseRuleOfTheSquare {
		phase := classifyPhase(p.Material(White) + p.Material(Black))
		if phase == Endgame && p.MaterialNonPawn(White) == 0 && p.MaterialNonPawn(Black) == 0 {
			white := ruleOfTheSquareScore(p, White)
			black := ruleOfTheSquareScore(p, Black)
			score.Add(white)
			score.Sub(black)
		}
	}

	value := score.ValueFromScore(p.GamePhaseFactor())
	return value * Value(p.NextPlayer().Direction())
}

// mobilityScore returns color c's slider-mobility and battery bonus: +2 per
// bishop/queen diagonal attack, +3 per rook/queen orthogonal attack, +5 per
// bishop-battery square (a diagonal attack reaching another own diagonal
// slider) and +10 per rook-battery square (the orthogonal analogue).
func mobilityScore(p *position.Position, c Color) Score {
	var sc Score
	occ := p.OccupiedAll()

	diagSliders := p.PiecesBb(c, Bishop) | p.PiecesBb(c, Queen)
	diag := config.Settings.Eval.BishopQueenDiagBonus
	battery := config.Settings.Eval.BishopBatteryBonus
	bb := diagSliders
	for bb != 0 {
		sq := bb.PopLsb()
		attacks := GetAttacksBb(Bishop, sq, occ)
		sc.MidGameValue += int(diag) * attacks.PopCount()
		sc.EndGameValue += int(diag) * attacks.PopCount()
		batterySquares := (attacks & diagSliders &^ sq.Bb()).PopCount()
		sc.MidGameValue += int(battery) * batterySquares
		sc.EndGameValue += int(battery) * batterySquares
	}

	orthoSliders := p.PiecesBb(c, Rook) | p.PiecesBb(c, Queen)
	ortho := config.Settings.Eval.RookQueenOrthoBonus
	rookBattery := config.Settings.Eval.RookBatteryBonus
	bb = orthoSliders
	for bb != 0 {
		sq := bb.PopLsb()
		attacks := GetAttacksBb(Rook, sq, occ)
		sc.MidGameValue += int(ortho) * attacks.PopCount()
		sc.EndGameValue += int(ortho) * attacks.PopCount()
		batterySquares := (attacks & orthoSliders &^ sq.Bb()).PopCount()
		sc.MidGameValue += int(rookBattery) * batterySquares
		sc.EndGameValue += int(rookBattery) * batterySquares
	}
	return sc
}

// floodKing expands bb by one king step in every direction from every
// square it contains, used to simulate a king racing toward a pawn.
func floodKing(bb Bitboard) Bitboard {
	out := bb
	b := bb
	for b != 0 {
		out |= GetPseudoAttacks(King, b.PopLsb())
	}
	return out
}

// ruleOfTheSquareScore awards config.Settings.Eval.RuleOfTheSquareBonus for
// each of c's pawns that reaches its promotion rank within 5 simulated
// rounds of the pawn advancing one square and the opposing king flooding
// outward by one king-step, without the flooded king ever catching the
// pawn's square.
func ruleOfTheSquareScore(p *position.Position, c Color) Score {
	var sc Score
	us := c
	promoRank := us.PromotionRankBb()
	bonus := int(config.Settings.Eval.RuleOfTheSquareBonus)

	pawns := p.PiecesBb(us, Pawn)
	for pawns != 0 {
		sq := pawns.PopLsb()
		pawnBb := sq.Bb()
		kingBb := p.KingSquare(us.Flip()).Bb()
		caught := false
		promoted := pawnBb&promoRank != 0
		for i := 0; i < 5 && !promoted; i++ {
			pawnBb = ShiftBitboard(pawnBb, us.MoveDirection())
			kingBb = floodKing(kingBb)
			if kingBb&pawnBb != 0 {
				caught = true
				break
			}
			promoted = pawnBb&promoRank != 0
		}
		if promoted && !caught {
			sc.MidGameValue += bonus
			sc.EndGameValue += bonus
		}
	}
	return sc
}
