package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestNewTableSizesToPowerOfTwo(t *testing.T) {
	table := NewTable(1)
	assert.True(t, table.Len() > 0)
	assert.Equal(t, table.Len(), table.Len()&-table.Len(), "capacity should be a power of two")
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := NewTable(1)
	_, found := table.Probe(position.Key(12345))
	assert.False(t, found)
}

func TestInsertThenProbeHits(t *testing.T) {
	table := NewTable(1)
	entry := Entry{Hash: position.Key(42), Move: NewMove(SqE2, SqE4), Depth: 4, Score: 120, Bound: Exact}
	table.Insert(entry)

	got, found := table.Probe(position.Key(42))
	assert.True(t, found)
	assert.Equal(t, entry.Move, got.Move)
	assert.Equal(t, entry.Depth, got.Depth)
	assert.Equal(t, entry.Score, got.Score)
}

func TestInsertDoesNotOverwriteDeeperEntryAtSameSlot(t *testing.T) {
	table := NewTable(1)
	deep := Entry{Hash: position.Key(1), Depth: 10}
	table.Insert(deep)
	table.NewSearch()

	shallow := Entry{Hash: position.Key(1 + uint64(table.Len())), Depth: 1}
	table.Insert(shallow)

	got, found := table.Probe(position.Key(1))
	assert.True(t, found)
	assert.Equal(t, int16(10), got.Depth)
}

func TestClearResetsOccupancy(t *testing.T) {
	table := NewTable(1)
	table.Insert(Entry{Hash: position.Key(7), Depth: 3})
	assert.True(t, table.Hashfull() > 0)

	table.Clear()
	assert.Equal(t, 0, table.Hashfull())
}

func TestResizeAboveMaxIsClamped(t *testing.T) {
	table := NewTable(1)
	table.Resize(MaxSizeInMB + 1)
	assert.True(t, table.Len() > 0)
}
