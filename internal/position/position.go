// Package position represents a chess position: a mailbox + bitboard
// board representation, a LIFO stack of per-ply State for make/unmake, and
// an incrementally maintained Zobrist hash, material count and
// piece-square value. Create one with NewPosition (start position) or
// NewPositionFen.
package position

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/assert"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger

var initOnce sync.Once

func init() {
	initOnce.Do(func() {
		Init()
		initZobrist()
	})
}

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// cachedFlag caches a lazily computed boolean (e.g. HasCheck) that must be
// invalidated whenever the position changes.
type cachedFlag int8

const (
	flagTBD cachedFlag = iota
	flagFalse
	flagTrue
)

// state is the per-ply snapshot pushed by DoMove/DoNullMove and popped by
// UndoMove/UndoNullMove.
type state struct {
	hash            Key
	pawnHash        Key
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	hasCheckFlag    cachedFlag
}

// Position owns the board, the side-to-move-derived ply counter, and the
// State history stack. Every DoMove pushes one state; every UndoMove pops
// one; the two must always be called in strict LIFO pairs.
type Position struct {
	hash     Key
	pawnHash Key

	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	kingSquare  [ColorLength]Square
	ply         int
	piecesBb    [ColorLength][PtLength + 1]Bitboard
	occupiedBb  [ColorLength]Bitboard
	gamePhase   int
	material    [ColorLength]Value
	materialNP  [ColorLength]Value
	psqMidValue [ColorLength]Value
	psqEndValue [ColorLength]Value

	hasCheckFlag cachedFlag

	historyLen int
	history    [MaxMoves]state
}

// NewPosition creates the standard start position, or the position
// described by fen if given. Additional arguments beyond the first are
// ignored.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen parses fen and returns the resulting Position, or nil and
// an error if fen is malformed.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("invalid fen %q: %s", fen, err)
		return nil, err
	}
	return p, nil
}

// DoMove commits m to the board. m is assumed legal (and usually pseudo-
// legal at least) — the caller is responsible for generating only legal
// moves; Position performs no legality check here.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position.DoMove: invalid move")
		assert.Assert(fromPc != PieceNone, "Position.DoMove: no piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(myColor == p.nextPlayer, "Position.DoMove: piece to move does not belong to next player")
		assert.Assert(targetPc.TypeOf() != King, "Position.DoMove: king cannot be captured")
	}

	h := &p.history[p.historyLen]
	h.hash = p.hash
	h.pawnHash = p.pawnHash
	h.move = m
	h.capturedPiece = targetPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.hasCheckFlag = p.hasCheckFlag
	p.historyLen++

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case Promotion:
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromSq)
	case Castling:
		p.doCastlingMove(myColor, toSq, fromSq)
	}

	p.hasCheckFlag = flagTBD
	p.ply++
	p.nextPlayer = p.nextPlayer.Flip()
	p.hash ^= zobristBase.nextPlayer
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyLen > 0, "Position.UndoMove: no move to undo")
	}
	p.historyLen--
	p.ply--
	p.nextPlayer = p.nextPlayer.Flip()
	h := &p.history[p.historyLen]
	move := h.move

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, move.To())
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().MoveDirection()))
	case Castling:
		p.movePiece(move.To(), move.From())
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.hash = h.hash
	p.pawnHash = h.pawnHash
}

// DoNullMove passes the turn without moving any piece, used only by
// null-move pruning in search. DoNullMove/UndoNullMove must be paired just
// like DoMove/UndoMove and never interleaved with a real move.
func (p *Position) DoNullMove() {
	h := &p.history[p.historyLen]
	h.hash = p.hash
	h.pawnHash = p.pawnHash
	h.move = MoveNone
	h.capturedPiece = PieceNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.hasCheckFlag = p.hasCheckFlag
	p.historyLen++

	p.hasCheckFlag = flagTBD
	p.clearEnPassant()
	p.ply++
	p.nextPlayer = p.nextPlayer.Flip()
	p.hash ^= zobristBase.nextPlayer
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyLen--
	p.ply--
	p.nextPlayer = p.nextPlayer.Flip()
	h := &p.history[p.historyLen]
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.hash = h.hash
	p.pawnHash = h.pawnHash
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 ||
		GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0 ||
		GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0 {
		return true
	}
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	if GetAttacksBb(Rook, sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	return false
}

// EnPassantDiscoveredCheck reports whether capturing en passant on
// p.enPassantSquare with a pawn from fromSq would leave the moving side's
// king attacked by an enemy rook, bishop or queen. It rebuilds occupancy
// with both pawns removed and the capturer on the en passant square, so it
// covers a pin of the capturing pawn as well as a line opened by the
// captured pawn or by the two pawns leaving one rank together — cases a
// per-square pin mask cannot express, since en passant removes a pawn that
// is not on the destination square.
func (p *Position) EnPassantDiscoveredCheck(fromSq Square, us Color) bool {
	epSq := p.enPassantSquare
	capSq := epSq.To(us.Flip().MoveDirection())
	king := p.kingSquare[us]
	them := us.Flip()
	occ := (p.OccupiedAll() &^ fromSq.Bb() &^ capSq.Bb()) | epSq.Bb()
	if GetAttacksBb(Rook, king, occ)&(p.piecesBb[them][Rook]|p.piecesBb[them][Queen]) != 0 {
		return true
	}
	return GetAttacksBb(Bishop, king, occ)&(p.piecesBb[them][Bishop]|p.piecesBb[them][Queen]) != 0
}

// AttackedByWithoutKing returns the union of every attack by color, as if
// the opposing king (whose square is excluded from occupancy) were absent
// — used by the move generator so a king cannot step backward along a ray
// that a slider would still attack through the king's old square.
func (p *Position) AttackedByWithoutKing(by Color, excludeKingSq Square) Bitboard {
	occ := p.OccupiedAll() &^ excludeKingSq.Bb()
	var attacked Bitboard

	pawns := p.piecesBb[by][Pawn]
	for pawns != 0 {
		attacked |= GetPawnAttacks(by, pawns.PopLsb())
	}
	knights := p.piecesBb[by][Knight]
	for knights != 0 {
		attacked |= GetPseudoAttacks(Knight, knights.PopLsb())
	}
	bishops := p.piecesBb[by][Bishop] | p.piecesBb[by][Queen]
	for bishops != 0 {
		attacked |= GetAttacksBb(Bishop, bishops.PopLsb(), occ)
	}
	rooks := p.piecesBb[by][Rook] | p.piecesBb[by][Queen]
	for rooks != 0 {
		attacked |= GetAttacksBb(Rook, rooks.PopLsb(), occ)
	}
	attacked |= GetPseudoAttacks(King, p.kingSquare[by])
	return attacked
}

// Checkers returns the opponent pieces currently giving check to the side
// to move's king.
func (p *Position) Checkers() Bitboard {
	us, them := p.nextPlayer, p.nextPlayer.Flip()
	king := p.kingSquare[us]
	occ := p.OccupiedAll()
	var checkers Bitboard
	checkers |= GetPawnAttacks(us, king) & p.piecesBb[them][Pawn]
	checkers |= GetPseudoAttacks(Knight, king) & p.piecesBb[them][Knight]
	checkers |= GetAttacksBb(Bishop, king, occ) & (p.piecesBb[them][Bishop] | p.piecesBb[them][Queen])
	checkers |= GetAttacksBb(Rook, king, occ) & (p.piecesBb[them][Rook] | p.piecesBb[them][Queen])
	return checkers
}

// HasCheck reports whether the side to move's king is in check. Cached on
// the position and invalidated by DoMove/UndoMove/DoNullMove/UndoNullMove.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCapturingMove reports whether move captures a piece on the current
// position, including en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// IsTechnicalDraw reports whether the position is a draw by the fifty-move
// rule or threefold repetition — the only draws the search itself detects
// (insufficient material is exposed separately via HasInsufficientMaterial
// for the UCI/eval boundary to use as it sees fit).
func (p *Position) IsTechnicalDraw() bool {
	return p.halfMoveClock >= 100 || p.CheckRepetitions(2)
}

// CheckRepetitions reports whether the current position has occurred reps
// times before in this Position's history (so reps==2 detects a
// soon-to-be-threefold repetition: the current occurrence is the third).
func (p *Position) CheckRepetitions(reps int) bool {
	count := 0
	end := p.halfMoveClock
	if end > p.historyLen {
		end = p.historyLen
	}
	for i := 4; i <= end; i += 2 {
		idx := p.historyLen - i
		if idx < 0 {
			break
		}
		if p.history[idx].hash == p.hash {
			count++
			if count >= reps {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough material
// to force a mate (a helpmate is still theoretically possible; this is not
// excluded).
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn].PopCount() == 0 && p.piecesBb[Black][Pawn].PopCount() == 0 {
		if p.materialNP[White] < 400 && p.materialNP[Black] < 400 {
			return true
		}
		if (p.materialNP[White] == 2*Knight.Value() && p.materialNP[Black] <= Bishop.Value()) ||
			(p.materialNP[Black] == 2*Knight.Value() && p.materialNP[White] <= Bishop.Value()) {
			return true
		}
		if (p.materialNP[White] == 2*Bishop.Value() && p.materialNP[Black] == Bishop.Value()) ||
			(p.materialNP[Black] == 2*Bishop.Value() && p.materialNP[White] == Bishop.Value()) {
			return true
		}
		if p.materialNP[White] == 2*Bishop.Value() || p.materialNP[Black] == 2*Bishop.Value() {
			return false
		}
		majors := p.piecesBb[White][Rook] | p.piecesBb[White][Queen] | p.piecesBb[Black][Rook] | p.piecesBb[Black][Queen]
		if majors == 0 && ((p.materialNP[White] < 2*Bishop.Value() && p.materialNP[Black] <= Bishop.Value()) ||
			(p.materialNP[White] <= Bishop.Value() && p.materialNP[Black] < 2*Bishop.Value())) {
			return true
		}
	}
	return false
}

// String renders the FEN, an ASCII board diagram, and the incremental
// counters for diagnostic logging.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.StringFen())
	sb.WriteString("\n")
	sb.WriteString(p.StringBoard())
	fmt.Fprintf(&sb, "Next Player    : %s\n", p.nextPlayer.String())
	fmt.Fprintf(&sb, "Game Phase     : %d\n", p.gamePhase)
	fmt.Fprintf(&sb, "Material W/B   : %d/%d\n", p.material[White], p.material[Black])
	return sb.String()
}

// StringFen returns the FEN of the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns an 8x8 ASCII board diagram, rank 8 first.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			fmt.Fprintf(&sb, "| %s ", p.board[SquareOf(f, r)].String())
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

func (p *Position) doNormalMove(fromSq, toSq Square, targetPc, fromPc Piece, myColor Color) {
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.hash ^= zobristBase.castlingRights[p.castlingRights]
			p.castlingRights.Remove(cr)
			p.hash ^= zobristBase.castlingRights[p.castlingRights]
		}
	}
	p.clearEnPassant()
	switch {
	case targetPc != PieceNone:
		p.removePiece(toSq)
		p.halfMoveClock = 0
	case fromPc.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
			p.hash ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

var castlingRookMove = map[Square][2]Square{
	SqG1: {SqH1, SqF1}, SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8}, SqC8: {SqA8, SqD8},
}

func (p *Position) doCastlingMove(myColor Color, toSq, fromSq Square) {
	rook := castlingRookMove[toSq]
	p.movePiece(fromSq, toSq)
	p.movePiece(rook[0], rook[1])
	p.hash ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights.Remove(castlingSideMask(myColor))
	p.hash ^= zobristBase.castlingRights[p.castlingRights]
	p.clearEnPassant()
	p.halfMoveClock++
}

func castlingSideMask(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromSq Square) {
	capSq := toSq.To(myColor.Flip().MoveDirection())
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.hash ^= zobristBase.castlingRights[p.castlingRights]
			p.castlingRights.Remove(cr)
			p.hash ^= zobristBase.castlingRights[p.castlingRights]
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
	_ = fromPc
}

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "putPiece: square %s occupied", square.String())
	}

	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.hash ^= zobristBase.pieces[piece][square]
	if pieceType == Pawn {
		p.pawnHash ^= zobristBase.pieces[piece][square]
	}

	p.gamePhase += pieceType.GamePhaseValue()
	if p.gamePhase > GamePhaseMax {
		p.gamePhase = GamePhaseMax
	}
	if pieceType != King {
		p.material[color] += pieceType.Value()
		if pieceType > Pawn {
			p.materialNP[color] += pieceType.Value()
		}
	}
	p.psqMidValue[color] += PosMidValue(piece, square)
	p.psqEndValue[color] += PosEndValue(piece, square)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "removePiece: square %s empty", square.String())
	}

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.hash ^= zobristBase.pieces[removed][square]
	if pieceType == Pawn {
		p.pawnHash ^= zobristBase.pieces[removed][square]
	}

	p.gamePhase -= pieceType.GamePhaseValue()
	if p.gamePhase < 0 {
		p.gamePhase = 0
	}
	if pieceType != King {
		p.material[color] -= pieceType.Value()
		if pieceType > Pawn {
			p.materialNP[color] -= pieceType.Value()
		}
	}
	p.psqMidValue[color] -= PosMidValue(removed, square)
	p.psqEndValue[color] -= PosEndValue(removed, square)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.hash ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

func (p *Position) fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(p.nextPlayer.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	fmt.Fprintf(&sb, " %d %d", p.halfMoveClock, (p.ply/2)+1)
	return sb.String()
}

// setupBoard parses fen and fully (re)initializes the receiver.
func (p *Position) setupBoard(fen string) error {
	*p = Position{}
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fmt.Errorf("fen must not be empty")
	}

	f, r := FileA, Rank8
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			f += File(int(c - '0'))
		case c == '/':
			if f != FileNone {
				return fmt.Errorf("fen rank did not cover all 8 files")
			}
			r--
			f = FileA
		default:
			piece := PieceFromChar(byte(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character %q", c)
			}
			p.putPiece(piece, SquareOf(f, r))
			f++
		}
	}
	if f != FileNone || r != Rank1 {
		return fmt.Errorf("fen piece placement did not cover the whole board")
	}

	p.enPassantSquare = SqNone
	p.nextPlayer = White

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
			p.hash ^= zobristBase.nextPlayer
		default:
			return fmt.Errorf("invalid side to move %q", fields[1])
		}
	}

	if len(fields) >= 3 {
		if fields[2] != "-" {
			p.castlingRights = CastlingRightsFromString(fields[2])
		}
		p.hash ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(fields) >= 4 && fields[3] != "-" {
		p.enPassantSquare = SquareFromString(fields[3])
		if p.enPassantSquare != SqNone {
			p.hash ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return err
		}
		p.halfMoveClock = n
	}

	fullMove := 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return err
		}
		if n > 0 {
			fullMove = n
		}
	}
	p.ply = 2*(fullMove-1) + int(p.nextPlayer)

	return nil
}

// ZobristKey returns the current incremental Zobrist hash.
func (p *Position) ZobristKey() Key { return p.hash }

// PawnKey returns the incremental Zobrist hash of the pawn structure only
// (pawn pieces and squares, no other piece, no side-to-move or castling/en
// passant state). Used to key the pawn-structure evaluation cache.
func (p *Position) PawnKey() Key { return p.pawnHash }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// GetPiece returns the piece on sq, or PieceNone if empty.
func (p *Position) GetPiece(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of kind pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedAll returns every occupied square on the board.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// OccupiedBb returns every square occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupiedBb[c] }

// GamePhase returns the current game-phase counter (GamePhaseMax at the
// start of the game, 0 with no officers left on the board).
func (p *Position) GamePhase() int { return p.gamePhase }

// GamePhaseFactor returns GamePhase()/GamePhaseMax, clamped to [0,1].
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.gamePhase) / float64(GamePhaseMax)
}

// EnPassantSquare returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the plies since the last pawn move or capture.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Ply returns the number of half-moves played since the game start.
func (p *Position) Ply() int { return p.ply }

// Material returns color c's total piece value.
func (p *Position) Material(c Color) Value { return p.material[c] }

// MaterialNonPawn returns color c's total piece value excluding pawns.
func (p *Position) MaterialNonPawn(c Color) Value { return p.materialNP[c] }

// PsqMidValue returns color c's midgame piece-square sum.
func (p *Position) PsqMidValue(c Color) Value { return p.psqMidValue[c] }

// PsqEndValue returns color c's endgame piece-square sum.
func (p *Position) PsqEndValue(c Color) Value { return p.psqEndValue[c] }

// LastMove returns the most recently played move, or MoveNone if none.
func (p *Position) LastMove() Move {
	if p.historyLen == 0 {
		return MoveNone
	}
	return p.history[p.historyLen-1].move
}

// LastCapturedPiece returns the piece captured by the last move, or
// PieceNone if the last move was not a capture (or there is no history).
func (p *Position) LastCapturedPiece() Piece {
	if p.historyLen == 0 {
		return PieceNone
	}
	return p.history[p.historyLen-1].capturedPiece
}

// WasCapturingMove reports whether the last move made was a capture.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}
