package types

import "strings"

// Move packs from(6) + to(6) + promotion-kind(2) + move-type(2) into 16
// bits. MoveNone (zero value) is that sentinel: no legal move ever has
// From()==To()==SqA1 with a Normal type and Knight promotion slot, which
// is exactly what an all-zero Move decodes to, so the zero value is safe
// to use as "no move".
type Move uint16

// MoveType distinguishes the four move-making code paths in Position.DoMove.
type MoveType uint16

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

const (
	MoveNone Move = 0

	fromMask  Move = 0x3F
	toShift        = 6
	toMask    Move = 0x3F << toShift
	promoShift     = 12
	promoMask Move = 0x3 << promoShift
	typeShift      = 14
	typeMask  Move = 0x3 << typeShift
)

// promotion piece types are stored as a 2-bit index: 0=Knight..3=Queen.
var promoPieceTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

func promoIndex(pt PieceType) Move {
	switch pt {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0 // Knight
	}
}

// NewMove creates a Normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<toShift
}

// NewPromotionMove creates a promotion move to the given piece type.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<toShift | promoIndex(promo)<<promoShift | Move(Promotion)<<typeShift
}

// NewEnPassantMove creates an en-passant capture move.
func NewEnPassantMove(from, to Square) Move {
	return Move(from) | Move(to)<<toShift | Move(EnPassant)<<typeShift
}

// NewCastlingMove creates a castling move, encoded as the king's two-step move.
func NewCastlingMove(from, to Square) Move {
	return Move(from) | Move(to)<<toShift | Move(Castling)<<typeShift
}

func (m Move) From() Square {
	return Square(m & fromMask)
}

func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

func (m Move) PromotionType() PieceType {
	return promoPieceTypes[(m&promoMask)>>promoShift]
}

func (m Move) MoveType() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// IsValid reports whether m is a usable move value (i.e. not MoveNone).
// A real move always has From() != To(); MoveNone happens to decode to
// From()==To()==SqA1, which is the discriminator used here.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// StringUci renders the move in long algebraic ("e2e4", "e7e8q").
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "-"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().String()))
	}
	return b.String()
}

func (m Move) String() string {
	return m.StringUci()
}
