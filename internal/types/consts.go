package types

const (
	// MaxDepth is the largest search depth the engine will ever request.
	MaxDepth = 128

	// MaxMoves bounds the per-game history stack (and, generously, the
	// longest single move list a position can produce).
	MaxMoves = 512

	KB uint64 = 1024
	MB uint64 = KB * KB

	// GamePhaseMax is the game-phase counter's value with every officer
	// still on the board: per side 2 knights + 2 bishops (1 each) + 2
	// rooks (2 each) + 1 queen (4) = 12, times two sides. Used to scale
	// PST interpolation.
	GamePhaseMax = 24
)
