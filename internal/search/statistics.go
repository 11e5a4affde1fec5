package search

import "fmt"

// Statistics accumulates counters over one search run, reported in log
// output and available to tests asserting on node counts.
type Statistics struct {
	Nodes           uint64
	QNodes          uint64
	TTHits          uint64
	TTMisses        uint64
	NullMoveCuts    uint64
	BetaCuts        uint64
	CurrentDepth    int
	CurrentSeldepth int
	Checkmates      uint64
	Stalemates      uint64
}

func (st Statistics) String() string {
	return fmt.Sprintf("nodes=%d qnodes=%d tthits=%d ttmisses=%d nullcuts=%d betacuts=%d depth=%d seldepth=%d",
		st.Nodes, st.QNodes, st.TTHits, st.TTMisses, st.NullMoveCuts, st.BetaCuts, st.CurrentDepth, st.CurrentSeldepth)
}
