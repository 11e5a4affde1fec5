package movegen

import (
	"sort"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// pickerStage tracks which bucket Next is currently draining.
type pickerStage int

const (
	stageTT pickerStage = iota
	stageKiller
	stageCaptures
	stageQuiets
	stageDone
)

// Picker is a staged move picker: it generates a position's legal moves
// once and hands them back in search order (TT move, killer move, then
// captures and quiets each sorted descending by a SEE/piece-square score)
// without ever re-running generation. Sorting is deferred until a bucket
// is first drained, since many nodes cut off before exhausting either one.
type Picker struct {
	position *position.Position

	ttMove     Move
	killerMove Move

	captures      []Move
	captureScores []int
	quiets        []Move
	quietScores   []int

	attacked Bitboard

	stage                pickerStage
	idx                  int
	capturesSorted       bool
	quietsSorted         bool
	ttEmitted, ttLegal   bool
	killerEmitted, kLegal bool
}

// NewPicker constructs a Picker for p. ttMove and killerMove may be
// MoveNone; each is only emitted if it is actually legal in p.
func NewPicker(gen *Generator, p *position.Position, ttMove, killerMove Move) *Picker {
	pk := &Picker{
		position: p,
		ttMove:   ttMove,
	}

	them := p.NextPlayer().Flip()
	pk.attacked = p.AttackedByWithoutKing(them, p.KingSquare(p.NextPlayer()))

	all := gen.GenerateLegalMoves(p, GenAll)
	pk.captures = make([]Move, 0, all.Len())
	pk.quiets = make([]Move, 0, all.Len())

	all.ForEach(func(_ int, m Move) {
		if ttMove != MoveNone && m == ttMove {
			pk.ttLegal = true
			return
		}
		if killerMove != MoveNone && m != ttMove && m == killerMove {
			pk.kLegal = true
			pk.killerMove = killerMove
			return
		}
		if p.IsCapturingMove(m) {
			pk.captures = append(pk.captures, m)
		} else {
			pk.quiets = append(pk.quiets, m)
		}
	})

	return pk
}

// Next returns the next move in search order, or MoveNone once exhausted.
func (pk *Picker) Next() Move {
	for {
		switch pk.stage {
		case stageTT:
			pk.stage = stageKiller
			if pk.ttLegal && !pk.ttEmitted {
				pk.ttEmitted = true
				return pk.ttMove
			}
		case stageKiller:
			pk.stage = stageCaptures
			if pk.kLegal && !pk.killerEmitted {
				pk.killerEmitted = true
				return pk.killerMove
			}
		case stageCaptures:
			if !pk.capturesSorted {
				pk.sortCaptures()
			}
			if pk.idx < len(pk.captures) {
				m := pk.captures[pk.idx]
				pk.idx++
				return m
			}
			pk.stage = stageQuiets
			pk.idx = 0
		case stageQuiets:
			if !pk.quietsSorted {
				pk.sortQuiets()
			}
			if pk.idx < len(pk.quiets) {
				m := pk.quiets[pk.idx]
				pk.idx++
				return m
			}
			pk.stage = stageDone
		case stageDone:
			return MoveNone
		}
	}
}

func (pk *Picker) sortCaptures() {
	pk.captureScores = make([]int, len(pk.captures))
	for i, m := range pk.captures {
		pk.captureScores[i] = pk.moveScore(m)
	}
	pairSortDescending(pk.captures, pk.captureScores)
	pk.capturesSorted = true
}

func (pk *Picker) sortQuiets() {
	pk.quietScores = make([]int, len(pk.quiets))
	for i, m := range pk.quiets {
		pk.quietScores[i] = pk.moveScore(m)
	}
	pairSortDescending(pk.quiets, pk.quietScores)
	pk.quietsSorted = true
}

// moveScore scores a single move per the picker's ordering rule: SEE when
// the move touches the precomputed attacked mask, otherwise the captured
// piece's material (0 for quiets); plus the piece-square delta of the
// moving piece, with promotions scored as the promoted piece.
func (pk *Picker) moveScore(m Move) int {
	p := pk.position
	from, to := m.From(), m.To()

	var captureScore Value
	touchesAttacked := pk.attacked&(from.Bb()|to.Bb()) != 0
	if touchesAttacked {
		captureScore = see(p, m)
	} else if target := p.GetPiece(to); target != PieceNone {
		captureScore = target.Value()
	} else if m.MoveType() == EnPassant {
		captureScore = Pawn.Value()
	}

	movingPiece := p.GetPiece(from)
	toPiece := movingPiece
	if m.MoveType() == Promotion {
		toPiece = MakePiece(movingPiece.ColorOf(), m.PromotionType())
	}
	pstDelta := PosMidValue(toPiece, to) - PosMidValue(movingPiece, from)

	return int(captureScore) + int(pstDelta)
}

// pairSortDescending sorts moves and their parallel scores together,
// descending by score.
func pairSortDescending(moves []Move, scores []int) {
	sort.Sort(&movesByScore{moves: moves, scores: scores})
}

type movesByScore struct {
	moves  []Move
	scores []int
}

func (s *movesByScore) Len() int { return len(s.moves) }
func (s *movesByScore) Less(i, j int) bool {
	return s.scores[i] > s.scores[j]
}
func (s *movesByScore) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
