package search

import (
	"fmt"
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
	. "github.com/corvidchess/corvid/internal/types"
)

// Result is what one StartSearch call returns: the move to play, its
// score, the principal variation behind it, and bookkeeping for UCI
// output and tests.
type Result struct {
	BestMove   Move
	BestValue  Value
	Pv         moveslice.MoveSlice
	SearchTime time.Duration
	Depth      int
	BookMove   bool
}

func (r Result) String() string {
	return fmt.Sprintf("bestmove=%s value=%d depth=%d time=%s book=%t pv=%s",
		r.BestMove.StringUci(), r.BestValue, r.Depth, r.SearchTime, r.BookMove, r.Pv.StringUci())
}
