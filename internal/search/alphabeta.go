package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tt"
	. "github.com/corvidchess/corvid/internal/types"
)

// rootSearch runs one root-level alphaBeta call and reports the move it
// settled on alongside the score.
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) (Value, Move, bool) {
	value, move, aborted := s.alphaBeta(p, alpha, beta, depth, 0, true)
	return value, move, aborted
}

// alphaBeta is a negamax alpha-beta search with TT cutoffs, null-move
// pruning and late-move reductions, fed by the staged move picker. depth
// counts plies left to search; ply counts plies from the root (used for
// mate-distance scoring and the killer table).
func (s *Search) alphaBeta(p *position.Position, alpha, beta Value, depth, ply int, root bool) (Value, Move, bool) {
	s.stats.Nodes++

	if depth <= 0 {
		if !config.Settings.Search.UseQuiescence {
			return s.eval.Evaluate(p), MoveNone, false
		}
		value, aborted := s.quiesce(p, alpha, beta, ply)
		return value, MoveNone, aborted
	}

	if depth >= 4 && (s.stopped() || time.Now().After(s.end)) {
		return 0, MoveNone, true
	}

	if !root && p.IsTechnicalDraw() {
		return ValueDraw, MoveNone, false
	}

	var entry tt.Entry
	found := false
	if s.tt != nil && config.Settings.Search.UseTT {
		entry, found = s.tt.Probe(p.ZobristKey())
	}
	ttMove := MoveNone
	if found && config.Settings.Search.UseTTMove {
		ttMove = entry.Move
	}
	killerMove := MoveNone
	if config.Settings.Search.UseKiller {
		killerMove = s.killers[ply]
	}

	picker := movegen.NewPicker(s.gen, p, ttMove, killerMove)
	first := picker.Next()
	if first == MoveNone {
		if p.HasCheck() {
			return ValueMin + Value(ply) + 1, MoveNone, false
		}
		return ValueDraw, MoveNone, false
	}

	if found && config.Settings.Search.UseTTValue && int(entry.Depth) >= depth {
		compatible := entry.Bound == Exact ||
			(entry.Bound == LowerBound && entry.Score >= beta) ||
			(entry.Bound == UpperBound && entry.Score < alpha)
		if compatible {
			return entry.Score, entry.Move, false
		}
	}

	if !root && config.Settings.Search.UseNullMove && !p.HasCheck() &&
		depth >= config.Settings.Search.NmpMinDepth && p.MaterialNonPawn(p.NextPlayer()) > 0 {
		p.DoNullMove()
		score, _, aborted := s.alphaBeta(p, -beta, -(beta - 1), depth-config.Settings.Search.NmpReduction, ply+1, false)
		p.UndoNullMove()
		score = -score
		if aborted {
			return 0, MoveNone, true
		}
		if score >= beta {
			s.stats.NullMoveCuts++
			return score, MoveNone, false
		}
	}

	origAlpha := alpha
	bestMove := MoveNone
	bestValue := ValueMin
	betaCut := false

	moveIndex := 0
	for m := first; m != MoveNone; m = picker.Next() {
		p.DoMove(m)

		var value Value
		var aborted bool
		useLmr := config.Settings.Search.UseLmr &&
			moveIndex >= config.Settings.Search.LmrMovesSearched-1 &&
			depth >= 2 && !p.HasCheck()
		if useLmr {
			value, _, aborted = s.alphaBeta(p, -(alpha + 1), -alpha, depth-2, ply+1, false)
			value = -value
			if !aborted && value > alpha {
				value, _, aborted = s.alphaBeta(p, -beta, -alpha, depth-1, ply+1, false)
				value = -value
			}
		} else {
			value, _, aborted = s.alphaBeta(p, -beta, -alpha, depth-1, ply+1, false)
			value = -value
		}

		p.UndoMove()
		if aborted {
			return 0, MoveNone, true
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.stats.BetaCuts++
			betaCut = true
			if config.Settings.Search.UseKiller && !p.IsCapturingMove(m) && bestValue > s.killerScores[ply] {
				s.killers[ply] = m
				s.killerScores[ply] = bestValue
			}
			break
		}
		moveIndex++
	}

	if s.tt != nil && config.Settings.Search.UseTT {
		bound := UpperBound
		switch {
		case betaCut:
			bound = LowerBound
		case alpha > origAlpha:
			bound = Exact
		}
		s.tt.Insert(tt.Entry{
			Hash:  p.ZobristKey(),
			Move:  bestMove,
			Depth: int16(depth),
			Score: bestValue,
			Bound: bound,
		})
	}

	return bestValue, bestMove, false
}

// quiesce extends search through capture sequences (and, while in check,
// through all legal replies) until the position is quiet, so alphaBeta's
// static evaluation is never taken mid-exchange.
func (s *Search) quiesce(p *position.Position, alpha, beta Value, ply int) (Value, bool) {
	s.stats.QNodes++

	inCheck := p.HasCheck()
	bestValue := ValueMin

	if inCheck {
		all := s.gen.GenerateLegalMoves(p, movegen.GenAll)
		if all.Len() == 0 {
			return ValueMin + Value(ply) + 1, false
		}
		return s.quiesceMoves(p, all, alpha, beta, ply, bestValue)
	}

	standPat := s.eval.Evaluate(p)
	if config.Settings.Search.UseQSStandpat {
		if standPat >= beta {
			return standPat, false
		}
		if standPat > alpha {
			alpha = standPat
		}
	}
	bestValue = standPat
	captures := s.gen.GenerateLegalMoves(p, movegen.GenCaptures)
	return s.quiesceMoves(p, captures, alpha, beta, ply, bestValue)
}

func (s *Search) quiesceMoves(p *position.Position, moves *moveslice.MoveSlice, alpha, beta Value, ply int, bestValue Value) (Value, bool) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		value, aborted := s.quiesce(p, -beta, -alpha, ply+1)
		value = -value
		p.UndoMove()
		if aborted {
			return 0, true
		}
		if value > bestValue {
			bestValue = value
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}

	if s.tt != nil && config.Settings.Search.UseQSTT {
		bound := UpperBound
		if bestValue >= beta {
			bound = LowerBound
		}
		s.tt.Insert(tt.Entry{Hash: p.ZobristKey(), Move: MoveNone, Depth: 0, Score: bestValue, Bound: bound})
	}

	return bestValue, false
}
