package types

// Piece packs a Color and a PieceType into one value: color | (kind << 1).
// There are 12 valid values (2 colors x 6 kinds); PieceNone is the 13th.
type Piece int8

const (
	PieceNone Piece = 0

	WhitePawn   Piece = Piece(Pawn)<<1 | Piece(White)
	WhiteKnight Piece = Piece(Knight)<<1 | Piece(White)
	WhiteBishop Piece = Piece(Bishop)<<1 | Piece(White)
	WhiteRook   Piece = Piece(Rook)<<1 | Piece(White)
	WhiteQueen  Piece = Piece(Queen)<<1 | Piece(White)
	WhiteKing   Piece = Piece(King)<<1 | Piece(White)

	BlackPawn   Piece = Piece(Pawn)<<1 | Piece(Black)
	BlackKnight Piece = Piece(Knight)<<1 | Piece(Black)
	BlackBishop Piece = Piece(Bishop)<<1 | Piece(Black)
	BlackRook   Piece = Piece(Rook)<<1 | Piece(Black)
	BlackQueen  Piece = Piece(Queen)<<1 | Piece(Black)
	BlackKing   Piece = Piece(King)<<1 | Piece(Black)

	PieceLength = 14
)

// MakePiece packs a color and piece type into a Piece value.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c) | Piece(pt)<<1
}

func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

func (p Piece) TypeOf() PieceType {
	return PieceType(p >> 1)
}

func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

func (p Piece) Value() Value {
	return p.TypeOf().Value()
}

var pieceChars = [PieceLength + 1]byte{
	PieceNone:   '.',
	WhitePawn:   'P', WhiteKnight: 'N', WhiteBishop: 'B',
	WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b',
	BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

func (p Piece) String() string {
	if p < PieceNone || int(p) >= len(pieceChars) {
		return "."
	}
	return string(pieceChars[p])
}

// PieceFromChar parses a single FEN piece letter.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return PieceNone
	}
}
