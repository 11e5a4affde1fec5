package types

// CastlingRights is a 4-bit flag set: WK, WQ, BK, BQ.
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
	CastlingWhite                  = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                  = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                    = CastlingWhite | CastlingBlack
	CastlingLength   int           = 16
)

func (cr CastlingRights) Has(flag CastlingRights) bool {
	return cr&flag != 0
}

func (cr *CastlingRights) Remove(flag CastlingRights) {
	*cr &^= flag
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// CastlingRightsFromString parses the FEN castling field ("KQkq" or "-").
func CastlingRightsFromString(s string) CastlingRights {
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= CastlingWhiteOO
		case 'Q':
			cr |= CastlingWhiteOOO
		case 'k':
			cr |= CastlingBlackOO
		case 'q':
			cr |= CastlingBlackOOO
		}
	}
	return cr
}

// OOFlag and OOOFlag return the short/long castling flag for a color.
func OOFlag(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOO
	}
	return CastlingBlackOO
}

func OOOFlag(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOOO
	}
	return CastlingBlackOOO
}
