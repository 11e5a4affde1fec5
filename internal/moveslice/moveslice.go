// Package moveslice provides a thin, allocation-friendly wrapper around a
// slice of moves, used for move lists, principal variations and the
// per-ply list of moves searched so far.
package moveslice

import (
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// MoveSlice is a list of moves in search order (not scored — scoring, where
// needed, lives alongside the move in a parallel slice owned by the caller,
// since Move itself carries no embedded value).
type MoveSlice []Move

// NewMoveSlice returns an empty MoveSlice with capacity cap.
func NewMoveSlice(cap int) *MoveSlice {
	s := make(MoveSlice, 0, cap)
	return &s
}

func (l *MoveSlice) Len() int { return len(*l) }

func (l *MoveSlice) PushBack(m Move) {
	*l = append(*l, m)
}

func (l *MoveSlice) PopBack() Move {
	m := (*l)[len(*l)-1]
	*l = (*l)[:len(*l)-1]
	return m
}

func (l *MoveSlice) PushFront(m Move) {
	*l = append(*l, MoveNone)
	copy((*l)[1:], (*l)[:len(*l)-1])
	(*l)[0] = m
}

func (l *MoveSlice) PopFront() Move {
	m := (*l)[0]
	*l = (*l)[1:]
	return m
}

func (l *MoveSlice) Front() Move { return (*l)[0] }
func (l *MoveSlice) Back() Move  { return (*l)[len(*l)-1] }
func (l *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*l) {
		return MoveNone
	}
	return (*l)[i]
}
func (l *MoveSlice) Set(i int, m Move) { (*l)[i] = m }

func (l *MoveSlice) Clear() { *l = (*l)[:0] }

// Clone returns an independent copy of l.
func (l *MoveSlice) Clone() MoveSlice {
	c := make(MoveSlice, len(*l))
	copy(c, *l)
	return c
}

// Equals reports whether l and other contain the same moves in the same order.
func (l *MoveSlice) Equals(other MoveSlice) bool {
	if len(*l) != len(other) {
		return false
	}
	for i, m := range *l {
		if m != other[i] {
			return false
		}
	}
	return true
}

// Filter removes every move for which keep returns false, in place.
func (l *MoveSlice) Filter(keep func(Move) bool) {
	out := (*l)[:0]
	for _, m := range *l {
		if keep(m) {
			out = append(out, m)
		}
	}
	*l = out
}

func (l *MoveSlice) ForEach(f func(int, Move)) {
	for i, m := range *l {
		f(i, m)
	}
}

// Contains reports whether m is present in l.
func (l *MoveSlice) Contains(m Move) bool {
	for _, x := range *l {
		if x == m {
			return true
		}
	}
	return false
}

func (l MoveSlice) String() string {
	var sb strings.Builder
	for i, m := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

// StringUci renders the list as a space-separated sequence of long
// algebraic moves, the form a "pv"/"currline" UCI info line wants.
func (l MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
