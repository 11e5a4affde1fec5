package types

import "fmt"

// Square is a 6-bit board index 0..63, square = file | (rank << 3). White's
// first rank occupies squares 0..7.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = 64
)

// SquareOf builds a Square from a file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(int(f) | int(r)<<3)
}

func (sq Square) FileOf() File {
	return File(sq & 7)
}

func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// To steps one square in the given direction without bounds checking;
// callers validate via IsValid/SquareDistance after stepping.
func (sq Square) To(d Direction) Square {
	return sq + Square(d)
}

// ForColor mirrors a square across the board for Black, used to query
// White-framed piece-square tables and passed-pawn masks symmetrically.
// This flips bits 3-5 of the square (all three rank bits), mapping rank r
// to rank 7-r.
func (sq Square) ForColor(c Color) Square {
	if c == White {
		return sq
	}
	return sq ^ 0b111000
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// SquareFromString parses algebraic square notation, e.g. "e4".
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := FileFromChar(s[0])
	r := RankFromChar(s[1])
	if f == FileNone || r == RankNone {
		return SqNone
	}
	return SquareOf(f, r)
}

func (sq Square) GoString() string {
	return fmt.Sprintf("Square(%s)", sq.String())
}
