package evaluator

import (
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// pawnScore returns color c's pawn-structure term plus +10 for each own
// non-king piece defended by a pawn. The pawn-only part is cached on
// p.PawnKey() since the pawn skeleton changes far less often than the rest
// of the board; the defended-piece bonus depends on the other pieces too,
// so it is computed on every call.
func (e *Evaluator) pawnScore(p *position.Position, c Color) Score {
	pawns := p.PiecesBb(c, Pawn)
	defended := p.OccupiedBb(c) &^ pawns &^ p.PiecesBb(c, King) & pawnAttackSpan(c, pawns)
	supported := int(config.Settings.Eval.PawnSupportedBonus) * defended.PopCount()
	support := Score{MidGameValue: supported, EndGameValue: supported}
	if e.pawnCache != nil {
		if sc, ok := e.pawnCache.get(p.PawnKey(), c); ok {
			sc.Add(support)
			return sc
		}
	}
	sc := computePawnScore(p, c)
	if e.pawnCache != nil {
		e.pawnCache.put(p.PawnKey(), c, sc)
	}
	sc.Add(support)
	return sc
}

// computePawnScore scores the pawns alone: -20 per doubled pawn, -20 per
// isolated pawn and +20*rank for each passed pawn (rank measured from c's
// own side, 0-based from the first rank, so a pawn on its second rank
// counts 1).
func computePawnScore(p *position.Position, c Color) Score {
	var sc Score
	us := c
	pawns := p.PiecesBb(us, Pawn)
	theirPawns := p.PiecesBb(us.Flip(), Pawn)

	var fileCount [FileLength]int
	bb := pawns
	for bb != 0 {
		fileCount[bb.PopLsb().FileOf()]++
	}
	doubledMalus := int(config.Settings.Eval.PawnDoubledMalus)
	for f := FileA; f <= FileH; f++ {
		if fileCount[f] > 1 {
			malus := doubledMalus * (fileCount[f] - 1)
			sc.MidGameValue -= malus
			sc.EndGameValue -= malus
		}
	}

	isolatedMalus := int(config.Settings.Eval.PawnIsolatedMalus)
	passedBonus := int(config.Settings.Eval.PawnPassedRankBonus)
	bb = pawns
	for bb != 0 {
		sq := bb.PopLsb()
		f := sq.FileOf()
		var adjacent Bitboard
		if f > FileA {
			adjacent |= (f - 1).Bb()
		}
		if f < FileH {
			adjacent |= (f + 1).Bb()
		}
		if pawns&adjacent == 0 {
			sc.MidGameValue -= isolatedMalus
			sc.EndGameValue -= isolatedMalus
		}
		if theirPawns&sq.PassedPawnMask(us) == 0 {
			rank := int(sq.RankOf().ForColor(us))
			sc.MidGameValue += passedBonus * rank
			sc.EndGameValue += passedBonus * rank
		}
	}

	return sc
}

// pawnAttackSpan returns the union of attacks of every pawn in bb.
func pawnAttackSpan(c Color, bb Bitboard) Bitboard {
	var out Bitboard
	for bb != 0 {
		out |= GetPawnAttacks(c, bb.PopLsb())
	}
	return out
}
