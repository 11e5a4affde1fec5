package movegen

import (
	"golang.org/x/sync/errgroup"

	"github.com/corvidchess/corvid/internal/position"

	. "github.com/corvidchess/corvid/internal/types"
)

// Perft counts leaf nodes of the legal move tree below a position, plus a
// breakdown by move kind, as a correctness harness for the generator. It
// is a diagnostic utility, not part of the playing core: search never
// calls it.
type Perft struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

// NewPerft returns a zeroed Perft ready for Run.
func NewPerft() *Perft {
	return &Perft{}
}

// Run walks every legal move to depth below p, accumulating counters, and
// returns the leaf count. The first ply is split across goroutines (one
// per root move, each on its own cloned Position) since Position carries
// no pointers or slices and is cheap to copy by value.
func (perft *Perft) Run(p *position.Position, depth int) uint64 {
	*perft = Perft{}
	if depth <= 0 {
		perft.Nodes = 1
		return 1
	}

	gen := NewGenerator()
	root := gen.GenerateLegalMoves(p, GenAll)
	if root.Len() == 0 {
		return 0
	}

	partials := make([]Perft, root.Len())
	var g errgroup.Group
	for i := 0; i < root.Len(); i++ {
		i, m := i, root.At(i)
		g.Go(func() error {
			clone := *p
			clone.DoMove(m)
			partials[i].walk(&clone, depth-1, m)
			clone.UndoMove()
			return nil
		})
	}
	_ = g.Wait()

	for i := range partials {
		perft.merge(&partials[i])
	}
	return perft.Nodes
}

// walk accumulates counters for the subtree below p (already having played
// rootMove into it) to the given remaining depth.
func (perft *Perft) walk(p *position.Position, depth int, rootMove Move) {
	if depth == 0 {
		perft.tally(p, rootMove)
		return
	}
	gen := NewGenerator()
	moves := gen.GenerateLegalMoves(p, GenAll)
	moves.ForEach(func(_ int, m Move) {
		p.DoMove(m)
		perft.walk(p, depth-1, m)
		p.UndoMove()
	})
}

func (perft *Perft) tally(p *position.Position, move Move) {
	perft.Nodes++
	switch move.MoveType() {
	case EnPassant:
		perft.EnPassants++
		perft.Captures++
	case Castling:
		perft.Castles++
	case Promotion:
		perft.Promotions++
	}
	if p.WasCapturingMove() && move.MoveType() != EnPassant {
		perft.Captures++
	}
	if p.HasCheck() {
		perft.Checks++
		gen := NewGenerator()
		if gen.GenerateLegalMoves(p, GenAll).Len() == 0 {
			perft.Checkmates++
		}
	}
}

func (perft *Perft) merge(other *Perft) {
	perft.Nodes += other.Nodes
	perft.Captures += other.Captures
	perft.EnPassants += other.EnPassants
	perft.Castles += other.Castles
	perft.Promotions += other.Promotions
	perft.Checks += other.Checks
	perft.Checkmates += other.Checkmates
}
