// Package search implements iterative-deepening alpha-beta search over a
// Position: quiescence, a transposition table, null-move pruning, late-move
// reductions, aspiration windows and killer moves, fed by the staged move
// picker in internal/movegen.
package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
)

// Limits describes how a single search is bounded. TimeControl selects
// between clock-based and depth/infinite search; MoveTime, if set,
// overrides the wtime/btime/winc/binc based budget.
type Limits struct {
	Infinite bool
	Depth    int
	Perft    int
	Moves    moveslice.MoveSlice

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
}

// NewLimits returns an empty, depth/time-unbounded Limits.
func NewLimits() *Limits {
	return &Limits{}
}
