// Package openingbook loads a text opening book and samples a move for a
// known position, weighted by how often the book's author played each
// move from there.
package openingbook

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// entry is one book position: the moves known from it and their relative
// weights, kept parallel so sampling needs no extra allocation.
type entry struct {
	zobristKey position.Key
	moves      []Move
	weights    []int
}

// Book maps a position's Zobrist key to the moves known from it. Safe for
// concurrent reads; Initialize must complete before Next is called.
type Book struct {
	log *logging.Logger
	mu  sync.RWMutex
	byKey map[position.Key]entry
}

// NewBook returns an empty, unloaded Book.
func NewBook() *Book {
	return &Book{
		log:   myLogging.GetLog(),
		byKey: make(map[position.Key]entry),
	}
}

// NumberOfEntries reports how many distinct positions were loaded.
func (b *Book) NumberOfEntries() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byKey)
}

// Initialize loads the book text file at filepath.Join(dir, file). The
// format is one stanza per known position: a "pos <FEN>" header followed
// by one or more "<uci-move> [weight]" lines (weight defaults to 1),
// terminated by a blank line or end of file.
func (b *Book) Initialize(dir, file string) error {
	path := filepath.Join(dir, file)
	entries, err := b.readFile(path)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.byKey = entries
	b.mu.Unlock()
	b.log.Info(out.Sprintf("opening book loaded: %d positions from %s", len(entries), path))
	return nil
}

func (b *Book) readFile(path string) (map[position.Key]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[position.Key]entry)
	var cur *entry
	var curPos *position.Position

	flush := func() {
		if cur != nil && len(cur.moves) > 0 {
			entries[cur.zobristKey] = *cur
		}
		cur = nil
		curPos = nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "pos "):
			flush()
			fen := strings.TrimSpace(strings.TrimPrefix(line, "pos "))
			p, err := position.NewPositionFen(fen)
			if err != nil {
				return nil, fmt.Errorf("openingbook: bad FEN %q: %w", fen, err)
			}
			curPos = p
			cur = &entry{zobristKey: p.ZobristKey()}
		default:
			if cur == nil || curPos == nil {
				continue
			}
			fields := strings.Fields(line)
			uciMove := fields[0]
			weight := 1
			if len(fields) > 1 {
				if w, err := strconv.Atoi(fields[1]); err == nil {
					weight = w
				}
			}
			m := parseUciMove(curPos, uciMove)
			if m == MoveNone {
				continue
			}
			cur.moves = append(cur.moves, m)
			cur.weights = append(cur.weights, weight)
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseUciMove decodes a long-algebraic move string for p, inferring the
// MoveType (normal/promotion/en-passant/castling) from the piece on the
// from square and p's en passant square, since it isn't recoverable from
// the UCI string alone. It does not check that the move is legal.
func parseUciMove(p *position.Position, uci string) Move {
	if len(uci) < 4 {
		return MoveNone
	}
	from := SquareFromString(uci[0:2])
	to := SquareFromString(uci[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone
	}
	var promo PieceType
	if len(uci) >= 5 {
		switch uci[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		}
	}
	switch {
	case promo != PtNone:
		return NewPromotionMove(from, to, promo)
	case p.GetPiece(from).TypeOf() == Pawn && to == p.EnPassantSquare() && p.EnPassantSquare() != SqNone:
		return NewEnPassantMove(from, to)
	case p.GetPiece(from).TypeOf() == King && abs(int(from)-int(to)) == 2:
		return NewCastlingMove(from, to)
	default:
		return NewMove(from, to)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GetEntry exposes the raw book entry for a Zobrist key, mainly for tests.
func (b *Book) GetEntry(key position.Key) (moves []Move, weights []int, found bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.byKey[key]
	return e.moves, e.weights, ok
}

// Next samples a move for p's current position proportionally to its
// recorded weight, or reports false if p isn't in the book.
func (b *Book) Next(p *position.Position) (Move, bool) {
	moves, weights, found := b.GetEntry(p.ZobristKey())
	if !found || len(moves) == 0 {
		return MoveNone, false
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return moves[rand.Intn(len(moves))], true
	}
	r := rand.Intn(total)
	for i, w := range weights {
		if r < w {
			return moves[i], true
		}
		r -= w
	}
	return moves[len(moves)-1], true
}
