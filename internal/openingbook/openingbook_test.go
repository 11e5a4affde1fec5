package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
)

func writeBook(t *testing.T, contents string) (dir, file string) {
	t.Helper()
	dir = t.TempDir()
	file = "book.txt"
	err := os.WriteFile(filepath.Join(dir, file), []byte(contents), 0o644)
	assert.NoError(t, err)
	return dir, file
}

func TestInitializeLoadsStanzas(t *testing.T) {
	dir, file := writeBook(t, "pos "+position.StartFen+"\ne2e4 3\nd2d4 1\n")

	b := NewBook()
	err := b.Initialize(dir, file)
	assert.NoError(t, err)
	assert.Equal(t, 1, b.NumberOfEntries())
}

func TestGetEntryReturnsParsedMoves(t *testing.T) {
	dir, file := writeBook(t, "pos "+position.StartFen+"\ne2e4 3\nd2d4 1\n")

	b := NewBook()
	assert.NoError(t, b.Initialize(dir, file))

	p := position.NewPosition()
	moves, weights, found := b.GetEntry(p.ZobristKey())
	assert.True(t, found)
	assert.Len(t, moves, 2)
	assert.Equal(t, []int{3, 1}, weights)
}

func TestNextReturnsFalseForUnknownPosition(t *testing.T) {
	dir, file := writeBook(t, "pos "+position.StartFen+"\ne2e4 1\n")
	b := NewBook()
	assert.NoError(t, b.Initialize(dir, file))

	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	_, found := b.Next(p)
	assert.False(t, found)
}

func TestNextAlwaysReturnsABookMove(t *testing.T) {
	dir, file := writeBook(t, "pos "+position.StartFen+"\ne2e4 1\nd2d4 1\n")
	b := NewBook()
	assert.NoError(t, b.Initialize(dir, file))

	p := position.NewPosition()
	move, found := b.Next(p)
	assert.True(t, found)
	assert.Contains(t, []string{"e2e4", "d2d4"}, move.StringUci())
}

func TestInitializeReturnsErrorForMissingFile(t *testing.T) {
	b := NewBook()
	err := b.Initialize(t.TempDir(), "does-not-exist.txt")
	assert.Error(t, err)
}
