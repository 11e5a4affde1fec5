package search

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/openingbook"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tt"
	. "github.com/corvidchess/corvid/internal/types"
)

// InfoFunc receives one UCI "info ..." line per completed iteration.
type InfoFunc func(line string)

// Search holds everything that lives across a single StartSearch call:
// the transposition table, evaluator, opening book and per-ply killer
// table. It owns the Position it is given for the duration of the search
// and mutates it in place via DoMove/UndoMove.
type Search struct {
	log *logging.Logger

	tt   *tt.Table
	eval *evaluator.Evaluator
	book *openingbook.Book
	gen  *movegen.Generator

	onInfo InfoFunc

	stopFlag  int32
	startTime time.Time
	end       time.Time
	depthLimit int

	killers      [MaxDepth + 2]Move
	killerScores [MaxDepth + 2]Value

	stats Statistics
}

// NewSearch returns a ready-to-use Search with its own transposition table
// sized per config.Settings.Search.TTSizeMb.
func NewSearch() *Search {
	s := &Search{
		log:  myLogging.GetLog(),
		eval: evaluator.NewEvaluator(),
		gen:  movegen.NewGenerator(),
	}
	if config.Settings.Search.UseTT {
		s.tt = tt.NewTable(config.Settings.Search.TTSizeMb)
	}
	return s
}

// SetBook attaches an opening book; nil disables book moves.
func (s *Search) SetBook(b *openingbook.Book) { s.book = b }

// SetInfoListener registers the callback used to report iteration info
// lines. A nil listener (the default) sends nowhere.
func (s *Search) SetInfoListener(f InfoFunc) { s.onInfo = f }

// NewGame resets state that must not leak across games: TT contents and
// any in-flight stop request.
func (s *Search) NewGame() {
	atomic.StoreInt32(&s.stopFlag, 0)
	if s.tt != nil {
		s.tt.Clear()
	}
}

// Stop requests that a running search return as soon as it next checks
// the clock. Safe to call from another goroutine.
func (s *Search) Stop() {
	atomic.StoreInt32(&s.stopFlag, 1)
}

func (s *Search) stopped() bool {
	return atomic.LoadInt32(&s.stopFlag) == 1
}

// StartSearch runs a full iterative-deepening search on p under limits and
// returns once a result is available: either a book move, a detected
// terminal position, or the last completed iteration's best move after
// the deadline or depth limit is reached. It blocks the calling goroutine;
// callers that need StartSearch to be interruptible from the outside
// should call it from its own goroutine and use Stop.
func (s *Search) StartSearch(p *position.Position, limits Limits) Result {
	atomic.StoreInt32(&s.stopFlag, 0)
	s.startTime = time.Now()
	s.stats = Statistics{}
	for i := range s.killers {
		s.killers[i] = MoveNone
		s.killerScores[i] = ValueMin
	}

	s.depthLimit = MaxDepth
	if limits.Depth > 0 && limits.Depth < MaxDepth {
		s.depthLimit = limits.Depth
	}
	if limits.TimeControl {
		s.end = s.startTime.Add(computeTimeBudget(p, limits))
	} else {
		s.end = s.startTime.Add(365 * 24 * time.Hour)
	}

	if s.tt != nil {
		s.tt.NewSearch()
	}

	if config.Settings.Search.UseBook && s.book != nil && limits.TimeControl {
		if m, ok := s.book.Next(p); ok {
			return Result{BestMove: m, BookMove: true, SearchTime: time.Since(s.startTime)}
		}
	}

	return s.iterativeDeepening(p)
}

// computeTimeBudget implements the UCI time-allocation rule: with an
// explicit movetime, the deadline is 90% of it; otherwise it is the
// increment plus max(100ms, remaining/50).
func computeTimeBudget(p *position.Position, limits Limits) time.Duration {
	if limits.MoveTime > 0 {
		return time.Duration(float64(limits.MoveTime) * 0.9)
	}
	var remaining, inc time.Duration
	if p.NextPlayer() == White {
		remaining, inc = limits.WhiteTime, limits.WhiteInc
	} else {
		remaining, inc = limits.BlackTime, limits.BlackInc
	}
	share := remaining / 50
	if share < 100*time.Millisecond {
		share = 100 * time.Millisecond
	}
	return inc + share
}

// iterativeDeepening runs alphaBeta at depth 1..depthLimit, widening an
// aspiration window around each iteration's score, until the clock or
// depth limit stops it. It returns the last fully completed iteration.
func (s *Search) iterativeDeepening(p *position.Position) Result {
	rootMoves := s.gen.GenerateLegalMoves(p, movegen.GenAll)
	if rootMoves.Len() == 0 {
		if p.HasCheck() {
			s.stats.Checkmates++
			return Result{BestValue: ValueMin + 1}
		}
		s.stats.Stalemates++
		return Result{BestValue: ValueDraw}
	}

	var result Result
	alpha, beta := ValueMin, ValueMax
	bestValue := ValueZero

	for depth := 1; depth <= s.depthLimit; depth++ {
		window := Value(config.Settings.Search.AspirationWindow)
		if depth > 3 && window > 0 {
			alpha = bestValue - window
			beta = bestValue + window
		} else {
			alpha, beta = ValueMin, ValueMax
		}

		value, move, aborted := s.rootSearch(p, depth, alpha, beta)
		if aborted {
			break
		}
		if value <= alpha || value >= beta {
			value, move, aborted = s.rootSearch(p, depth, ValueMin, ValueMax)
			if aborted {
				break
			}
		}

		bestValue = value
		s.stats.CurrentDepth = depth
		pv := s.extractPV(p, depth)
		result = Result{
			BestMove:   move,
			BestValue:  bestValue,
			Pv:         pv,
			Depth:      depth,
			SearchTime: time.Since(s.startTime),
		}
		s.reportInfo(result)

		if bestValue.IsMateScore() || rootMoves.Len() == 1 {
			break
		}
	}

	return result
}

func (s *Search) reportInfo(r Result) {
	if s.onInfo == nil {
		return
	}
	scoreStr := fmt.Sprintf("cp %d", r.BestValue)
	if r.BestValue.IsMateScore() {
		plies := int(ValueInf) - absValue(r.BestValue)
		moves := (plies + 1) / 2
		if r.BestValue < 0 {
			moves = -moves
		}
		scoreStr = fmt.Sprintf("mate %d", moves)
	}
	s.onInfo(fmt.Sprintf("info depth %d time %d score %s pv %s",
		r.Depth, r.SearchTime.Milliseconds(), scoreStr, r.Pv.StringUci()))
}

func absValue(v Value) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

// extractPV walks TT entries from p, replaying the stored best move at
// each step, until depth moves are collected, an entry is missing, or a
// position repeats (a cycle through the TT, which would otherwise loop
// forever).
func (s *Search) extractPV(p *position.Position, depth int) moveslice.MoveSlice {
	pv := make(moveslice.MoveSlice, 0, depth)
	if s.tt == nil {
		return pv
	}
	seen := make(map[position.Key]bool)
	made := 0
	for len(pv) < depth {
		key := p.ZobristKey()
		if seen[key] {
			break
		}
		seen[key] = true
		entry, ok := s.tt.Probe(key)
		if !ok || entry.Move == MoveNone {
			break
		}
		pv.PushBack(entry.Move)
		p.DoMove(entry.Move)
		made++
	}
	for ; made > 0; made-- {
		p.UndoMove()
	}
	return pv
}
