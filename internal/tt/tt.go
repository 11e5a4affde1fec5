// Package tt implements the search's transposition table: a fixed-size,
// direct-mapped (bucket-free) cache of prior search results keyed by
// Zobrist hash, with an age+depth weighted replacement policy.
package tt

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// MaxSizeInMB bounds how large a table callers may request.
const MaxSizeInMB = 65_536

// Entry is one transposition table slot. A zero-value Entry (Hash == 0) is
// the table's "empty" sentinel; a genuine position hashing to 0 is handled
// by the hash-equality recheck on Probe, not specially.
type Entry struct {
	Hash  position.Key
	Move  Move
	Depth int16
	Score Value
	Bound ValueType
	Age   uint32
}

// value is the replacement-policy weight: deeper and newer entries win
// ties against shallower, older ones.
func (e *Entry) value() int64 {
	return int64(e.Age)*2 + int64(e.Depth)
}

// Table is a power-of-two-sized, direct-mapped transposition table.
// Not safe for concurrent use; the search owns it exclusively.
type Table struct {
	log  *logging.Logger
	data []Entry
	mask uint64
	age  uint32

	puts   uint64
	hits   uint64
	misses uint64
}

// NewTable returns a Table sized to the largest power-of-two entry count
// that fits within sizeInMB megabytes.
func NewTable(sizeInMB int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table, discarding all entries.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		t.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB))
		sizeInMB = MaxSizeInMB
	}
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	sizeInBytes := uint64(sizeInMB) * MB
	count := uint64(0)
	if sizeInBytes >= entrySize {
		count = 1 << uint64(math.Floor(math.Log2(float64(sizeInBytes/entrySize))))
	}
	t.mask = 0
	if count > 0 {
		t.mask = count - 1
	}
	t.data = make([]Entry, count)
	t.log.Info(out.Sprintf("TT resized to %d MB, %d entries of %d bytes", sizeInMB, count, entrySize))
}

// Clear discards every entry without resizing.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.puts, t.hits, t.misses = 0, 0, 0
}

func (t *Table) index(hash position.Key) uint64 {
	return uint64(hash) & t.mask
}

// Probe returns the stored entry for hash and true, or a zero Entry and
// false if the slot is empty or holds a different position's hash.
func (t *Table) Probe(hash position.Key) (Entry, bool) {
	if len(t.data) == 0 {
		return Entry{}, false
	}
	e := t.data[t.index(hash)]
	if e.Hash != hash {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Insert overwrites the slot for entry.Hash iff entry's replacement value
// exceeds (or ties, for a same-hash update) the slot's current occupant.
func (t *Table) Insert(entry Entry) {
	if len(t.data) == 0 {
		return
	}
	entry.Age = t.age
	slot := &t.data[t.index(entry.Hash)]
	t.puts++
	if entry.value() > slot.value() || (slot.Hash == entry.Hash && entry.value() == slot.value()) {
		*slot = entry
	}
}

// NewSearch increments the age counter so entries written by prior root
// searches decay relative to ones written by the next search.
func (t *Table) NewSearch() {
	t.age++
}

// Hashfull reports occupancy in permill, sampling the first 1000 slots as
// is conventional for the UCI "hashfull" field.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	n := 1000
	if n > len(t.data) {
		n = len(t.data)
	}
	used := 0
	for i := 0; i < n; i++ {
		if t.data[i].Hash != 0 {
			used++
		}
	}
	return used * 1000 / n
}

// Len returns the table's entry capacity.
func (t *Table) Len() int { return len(t.data) }
