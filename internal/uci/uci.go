// Package uci implements the text protocol loop that sits between a chess
// GUI and the search/position core: it parses UCI commands off an input
// stream, drives Position and Search accordingly, and writes UCI responses
// to an output stream.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/openingbook"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
)

// EngineName and EngineAuthor are reported in response to the "uci" command.
const (
	EngineName   = "Corvid 1.0"
	EngineAuthor = "corvidchess contributors"
)

// Handler owns one engine session: the current Position, the Search engine,
// and the opening book, wired to an input/output stream pair. Create one
// with NewHandler and run it with Loop, or feed it commands one at a time
// with Command for testing.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	gen  *movegen.Generator
	srch *search.Search
	pos  *position.Position
	book *openingbook.Book

	log    *logging.Logger
	uciLog *logging.Logger
}

// NewHandler returns a Handler reading from stdin and writing to stdout,
// with a fresh start position and a new Search instance.
func NewHandler() *Handler {
	h := &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		gen:    movegen.NewGenerator(),
		srch:   search.NewSearch(),
		pos:    position.NewPosition(),
		book:   openingbook.NewBook(),
		log:    myLogging.GetLog(),
		uciLog: myLogging.GetUciLog(),
	}
	if config.Settings.Search.BookPath != "" && config.Settings.Search.BookFile != "" {
		if err := h.book.Initialize(config.Settings.Search.BookPath, config.Settings.Search.BookFile); err != nil {
			h.log.Infof("opening book not loaded: %v", err)
		}
	}
	h.srch.SetBook(h.book)
	h.srch.SetInfoListener(h.send)
	return h
}

// Loop reads lines from InIo until "quit" is received or the stream ends.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote to
// OutIo as a string. Mainly useful for tests and scripted drivers.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (h *Handler) handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.uciLog.Infof("<< %s", line)
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.cmdUci()
	case "isready":
		h.cmdIsReady()
	case "ucinewgame":
		h.cmdNewGame()
	case "setoption":
		h.cmdSetOption(tokens)
	case "position":
		h.cmdPosition(tokens)
	case "go":
		h.cmdGo(tokens)
	case "stop":
		// StartSearch blocks the command loop for its whole duration, so a
		// "stop" sent from this same loop can only be observed by a search
		// already running on another goroutine (an embedder driving Search
		// directly); accepted here for GUI compatibility.
		h.srch.Stop()
	case "debug":
		// accepted, not implemented: the core has no separate debug-mode output
	case "perft":
		h.cmdPerft(tokens)
	default:
		h.log.Warningf("unknown uci command: %s", line)
	}
	return false
}

func (h *Handler) cmdUci() {
	h.send("id name " + EngineName)
	h.send("id author " + EngineAuthor)
	h.send("option name OwnBook type check default true")
	h.send("uciok")
}

func (h *Handler) cmdIsReady() {
	h.send("readyok")
}

func (h *Handler) cmdNewGame() {
	h.pos = position.NewPosition()
	h.srch.NewGame()
}

func (h *Handler) cmdSetOption(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		h.sendInfoString(fmt.Sprintf("malformed setoption command: %s", strings.Join(tokens, " ")))
		return
	}
	switch name {
	case "OwnBook":
		config.Settings.Search.UseBook = strings.EqualFold(value, "true")
	default:
		h.sendInfoString(fmt.Sprintf("unrecognized option: %s", name))
	}
}

// parseSetOption splits "setoption name <n...> value <v>" into name and
// value; the name may itself contain spaces, so both spans are collected
// token by token rather than with a fixed index.
func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 3 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	if len(nameParts) == 0 {
		return "", "", false
	}
	if i < len(tokens) && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	return strings.Join(nameParts, " "), value, true
}

func (h *Handler) cmdPosition(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("malformed position command")
		return
	}
	i := 1
	fen := position.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
	default:
		h.sendInfoString(fmt.Sprintf("malformed position command: %s", strings.Join(tokens, " ")))
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		h.sendInfoString(fmt.Sprintf("bad fen %q: %v", fen, err))
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := h.gen.MoveFromUci(h.pos, tokens[i])
			if !m.IsValid() {
				h.sendInfoString(fmt.Sprintf("illegal move in position command: %s", tokens[i]))
				return
			}
			h.pos.DoMove(m)
		}
	}
}

func (h *Handler) cmdGo(tokens []string) {
	limits, err := parseGoLimits(tokens)
	if err != nil {
		h.sendInfoString(err.Error())
		return
	}
	if limits.Perft > 0 {
		h.runPerft(limits.Perft)
		return
	}
	result := h.srch.StartSearch(h.pos, *limits)
	h.send("bestmove " + result.BestMove.StringUci())
}

func parseGoLimits(tokens []string) (*search.Limits, error) {
	limits := search.NewLimits()
	i := 1
	next := func(name string) (string, error) {
		i++
		if i >= len(tokens) {
			return "", fmt.Errorf("go command malformed: missing value for %s", name)
		}
		return tokens[i], nil
	}
	nextDuration := func(name string) (time.Duration, error) {
		s, err := next(name)
		if err != nil {
			return 0, err
		}
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("go command malformed: %s value %q is not a number", name, s)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
		case "depth":
			s, err := next("depth")
			if err != nil {
				return nil, err
			}
			limits.Depth, err = strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("go command malformed: depth value %q is not a number", s)
			}
		case "perft":
			s, err := next("perft")
			if err != nil {
				return nil, err
			}
			limits.Perft, err = strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("go command malformed: perft value %q is not a number", s)
			}
		case "movetime":
			d, err := nextDuration("movetime")
			if err != nil {
				return nil, err
			}
			limits.MoveTime = d
			limits.TimeControl = true
		case "wtime":
			d, err := nextDuration("wtime")
			if err != nil {
				return nil, err
			}
			limits.WhiteTime = d
			limits.TimeControl = true
		case "btime":
			d, err := nextDuration("btime")
			if err != nil {
				return nil, err
			}
			limits.BlackTime = d
			limits.TimeControl = true
		case "winc":
			d, err := nextDuration("winc")
			if err != nil {
				return nil, err
			}
			limits.WhiteInc = d
		case "binc":
			d, err := nextDuration("binc")
			if err != nil {
				return nil, err
			}
			limits.BlackInc = d
		default:
			return nil, fmt.Errorf("go command malformed: unknown subcommand %q", tokens[i])
		}
		i++
	}
	if !limits.Infinite && limits.Depth == 0 && limits.Perft == 0 && !limits.TimeControl {
		limits.Infinite = true
	}
	return limits, nil
}

func (h *Handler) cmdPerft(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	h.runPerft(depth)
}

// runPerft drives internal/movegen.Perft over h.pos and reports the node
// count, matching the standalone "perft" command and "go perft D" alike so
// neither one runs a normal search by mistake.
func (h *Handler) runPerft(depth int) {
	start := time.Now()
	nodes := movegen.NewPerft().Run(h.pos, depth)
	elapsed := time.Since(start)
	h.send(fmt.Sprintf("info string perft depth %d nodes %d time %d nps %d",
		depth, nodes, elapsed.Milliseconds(), nps(nodes, elapsed)))
}

func nps(nodes uint64, elapsed time.Duration) uint64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return uint64(float64(nodes) / seconds)
}

func (h *Handler) sendInfoString(msg string) {
	h.send("info string " + msg)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
