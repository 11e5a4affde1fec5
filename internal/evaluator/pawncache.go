package evaluator

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

// pawnCacheEntry stores both colors' pawn scores for one pawn-only
// position; the pawn key covers both colors' pawns, so one key lookup
// serves either color.
type pawnCacheEntry struct {
	key          position.Key
	white, black Score
	hasWhite     bool
	hasBlack     bool
}

// pawnCache is a direct-mapped cache of pawn-structure scores keyed by
// Position.PawnKey, independent of the rest of the board.
type pawnCache struct {
	log  *logging.Logger
	data []pawnCacheEntry
	mask uint64
}

func newPawnCache(sizeInMB int) *pawnCache {
	pc := &pawnCache{log: myLogging.GetLog()}
	entrySize := uint64(unsafe.Sizeof(pawnCacheEntry{}))
	sizeInBytes := uint64(sizeInMB) * MB
	count := uint64(0)
	if sizeInBytes >= entrySize {
		count = 1 << uint64(math.Floor(math.Log2(float64(sizeInBytes/entrySize))))
	}
	if count > 0 {
		pc.mask = count - 1
	}
	pc.data = make([]pawnCacheEntry, count)
	pc.log.Info(out.Sprintf("pawn cache sized to %d MB, %d entries", sizeInMB, count))
	return pc
}

func (pc *pawnCache) index(key position.Key) uint64 {
	return uint64(key) & pc.mask
}

func (pc *pawnCache) get(key position.Key, c Color) (Score, bool) {
	if len(pc.data) == 0 {
		return Score{}, false
	}
	e := &pc.data[pc.index(key)]
	if e.key != key {
		return Score{}, false
	}
	if c == White {
		return e.white, e.hasWhite
	}
	return e.black, e.hasBlack
}

func (pc *pawnCache) put(key position.Key, c Color, sc Score) {
	if len(pc.data) == 0 {
		return
	}
	e := &pc.data[pc.index(key)]
	if e.key != key {
		*e = pawnCacheEntry{key: key}
	}
	if c == White {
		e.white = sc
		e.hasWhite = true
	} else {
		e.black = sc
		e.hasBlack = true
	}
}

func (pc *pawnCache) clear() {
	for i := range pc.data {
		pc.data[i] = pawnCacheEntry{}
	}
}
