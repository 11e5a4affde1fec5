package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
)

func TestUciCommand(t *testing.T) {
	h := NewHandler()
	result := h.Command("uci")
	assert.Contains(t, result, "id name "+EngineName)
	assert.Contains(t, result, "id author")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	h := NewHandler()
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestPositionStartpos(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	assert.Equal(t, position.StartFen, h.pos.StringFen())
}

func TestPositionFen(t *testing.T) {
	h := NewHandler()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.StringFen())
}

func TestPositionStartposWithMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5 g1f3")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", h.pos.StringFen())
}

func TestPositionIllegalMoveReported(t *testing.T) {
	h := NewHandler()
	result := h.Command("position startpos moves e2e5")
	assert.Contains(t, result, "info string")
	assert.Contains(t, result, "illegal move")
}

func TestSetOptionOwnBook(t *testing.T) {
	h := NewHandler()
	h.Command("setoption name OwnBook value false")
	assert.False(t, config.Settings.Search.UseBook)

	h.Command("setoption name OwnBook value true")
	assert.True(t, config.Settings.Search.UseBook)
}

func TestSetOptionMalformed(t *testing.T) {
	h := NewHandler()
	result := h.Command("setoption")
	assert.Contains(t, result, "info string")
}

func TestUciNewGameResetsPosition(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4")
	h.Command("ucinewgame")
	assert.Equal(t, position.StartFen, h.pos.StringFen())
}

func TestPerftStartPosition(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	result := h.Command("perft 3")
	assert.Contains(t, result, "nodes 8902")
}

func TestGoDepthProducesBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	result := h.Command("go depth 2")
	assert.Contains(t, result, "bestmove")
}

func TestGoPerftRunsPerftNotSearch(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	result := h.Command("go perft 3")
	assert.Contains(t, result, "nodes 8902")
	assert.NotContains(t, result, "bestmove")
}

func TestLoopStopsOnQuit(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestParseGoLimitsDepth(t *testing.T) {
	limits, err := parseGoLimits(strings.Fields("go depth 6"))
	assert.NoError(t, err)
	assert.Equal(t, 6, limits.Depth)
	assert.False(t, limits.TimeControl)
}

func TestParseGoLimitsMoveTime(t *testing.T) {
	limits, err := parseGoLimits(strings.Fields("go movetime 5000"))
	assert.NoError(t, err)
	assert.True(t, limits.TimeControl)
	assert.Equal(t, 5*time.Second, limits.MoveTime)
}

func TestParseGoLimitsClock(t *testing.T) {
	limits, err := parseGoLimits(strings.Fields("go wtime 60000 btime 60000 winc 2000 binc 2000"))
	assert.NoError(t, err)
	assert.True(t, limits.TimeControl)
	assert.Equal(t, 60*time.Second, limits.WhiteTime)
	assert.Equal(t, 2*time.Second, limits.BlackInc)
}

func TestParseGoLimitsNoArgsIsInfinite(t *testing.T) {
	limits, err := parseGoLimits(strings.Fields("go"))
	assert.NoError(t, err)
	assert.True(t, limits.Infinite)
}

func TestParseGoLimitsPerftIsNotInfiniteAndNotDepth(t *testing.T) {
	limits, err := parseGoLimits(strings.Fields("go perft 5"))
	assert.NoError(t, err)
	assert.Equal(t, 5, limits.Perft)
	assert.Equal(t, 0, limits.Depth)
	assert.False(t, limits.Infinite)
}

func TestParseGoLimitsUnknownSubcommand(t *testing.T) {
	_, err := parseGoLimits(strings.Fields("go banana"))
	assert.Error(t, err)
}

func TestParseGoLimitsMissingValue(t *testing.T) {
	_, err := parseGoLimits(strings.Fields("go depth"))
	assert.Error(t, err)
}

func TestParseSetOptionMultiWordName(t *testing.T) {
	name, value, ok := parseSetOption(strings.Fields("setoption name Own Book value true"))
	assert.True(t, ok)
	assert.Equal(t, "Own Book", name)
	assert.Equal(t, "true", value)
}

func TestParseSetOptionMalformed(t *testing.T) {
	_, _, ok := parseSetOption([]string{"setoption"})
	assert.False(t, ok)
}
