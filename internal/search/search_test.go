package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func init() {
	config.Setup()
}

func TestStartSearchFindsMateInOne(t *testing.T) {
	// White to move; Ra1-a8 is a back-rank mate.
	fen := "6k1/5ppp/8/8/8/8/8/R6K w - - 0 1"
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)

	s := NewSearch()
	limits := Limits{Depth: 3}
	result := s.StartSearch(p, limits)

	assert.Equal(t, "a1a8", result.BestMove.StringUci())
	assert.True(t, result.BestValue.IsMateScore())
}

func TestReportInfoFormatsMateInOneCorrectly(t *testing.T) {
	fen := "6k1/5ppp/8/8/8/8/8/R6K w - - 0 1"
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)

	var lines []string
	s := NewSearch()
	s.SetInfoListener(func(line string) { lines = append(lines, line) })
	s.StartSearch(p, Limits{Depth: 3})

	assert.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "score mate 1")
}

func TestStartSearchReturnsStalemateDraw(t *testing.T) {
	fen := "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)

	s := NewSearch()
	result := s.StartSearch(p, Limits{Depth: 1})
	assert.Equal(t, ValueDraw, result.BestValue)
	assert.Equal(t, MoveNone, result.BestMove)
}

func TestStartSearchRespectsDepthLimit(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch()
	result := s.StartSearch(p, Limits{Depth: 2})
	assert.Equal(t, 2, result.Depth)
	assert.True(t, result.BestMove.IsValid())
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch()
	s.StartSearch(p, Limits{Depth: 2})
	_, found := s.tt.Probe(p.ZobristKey())
	assert.True(t, found)

	s.NewGame()
	_, found = s.tt.Probe(p.ZobristKey())
	assert.False(t, found)
}

func TestStopSetsFlagAndNewGameClearsIt(t *testing.T) {
	s := NewSearch()
	s.Stop()
	assert.True(t, s.stopped())
	s.NewGame()
	assert.False(t, s.stopped())
}
