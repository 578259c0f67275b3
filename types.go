// types.go contains the core value types: squares, colors, piece kinds, the
// packed move representation, and the move list.

package chego

// Color is one of the two sides.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Piece is a piece kind, independent of color.
type Piece = int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// PieceNone marks an empty square.
	PieceNone Piece = -1
)

// PieceSymbols maps (color, piece kind) pairs to their FEN letters, White
// uppercase first, Black lowercase second, in Piece order.
var PieceSymbols = [2][6]byte{
	{'P', 'N', 'B', 'R', 'Q', 'K'},
	{'p', 'n', 'b', 'r', 'q', 'k'},
}

// Square2String maps each board square to its algebraic representation.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Square index constants, LSB=a1, MSB=h8.
const (
	SA1 int = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// NoSquare marks the absence of an en-passant target.
const NoSquare = -1

// MoveFlag is the 4-bit move-kind tag packed into a Move. The set is fixed at
// fourteen members; nothing about chess requires a fifteenth.
type MoveFlag = int

const (
	Quiet MoveFlag = iota
	Capture
	DoublePush
	EnPassant
	CastleShort
	CastleLong
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
	PromoCaptureKnight
	PromoCaptureBishop
	PromoCaptureRook
	PromoCaptureQueen
)

/*
Move is a chess move packed into 16 bits:
  - 0-5:   from square.
  - 6-11:  to square.
  - 12-15: flag (see MoveFlag).
*/
type Move uint16

// NewMove packs a move from its three fields.
func NewMove(from, to int, flag MoveFlag) Move {
	return Move(from) | Move(to)<<6 | Move(flag)<<12
}

func (m Move) From() int     { return int(m & 0x3F) }
func (m Move) To() int       { return int((m >> 6) & 0x3F) }
func (m Move) Flag() MoveFlag { return int(m>>12) & 0xF }

// IsCapture reports whether the move removes an enemy piece from the board:
// ordinary captures, en-passant, and capturing promotions.
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == Capture || f == EnPassant || f >= PromoCaptureKnight
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= PromoKnight
}

// PromotionPiece returns the piece kind a promotion move turns the pawn into.
// The result is meaningless unless IsPromotion() is true.
func (m Move) PromotionPiece() Piece {
	switch m.Flag() {
	case PromoKnight, PromoCaptureKnight:
		return Knight
	case PromoBishop, PromoCaptureBishop:
		return Bishop
	case PromoRook, PromoCaptureRook:
		return Rook
	default:
		return Queen
	}
}

/*
MoveList stores moves in a fixed-capacity array sized to the proven maximum
number of legal moves in any chess position (218), so enumeration never
allocates.
*/
type MoveList struct {
	Moves [218]Move
	Count int
}

// Add appends a single move built from its fields.
func (l *MoveList) Add(from, to int, flag MoveFlag) {
	l.Moves[l.Count] = NewMove(from, to, flag)
	l.Count++
}

// AddRaw appends an already-packed move.
func (l *MoveList) AddRaw(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Extend emits one move per set bit of targets, all sharing the same origin
// square and flag.
func (l *MoveList) Extend(from int, targets uint64, flag MoveFlag) {
	for targets != 0 {
		to := popLSB(&targets)
		l.Add(from, to, flag)
	}
}

// AddPromotions emits all four promotion flags for a single from/to pair,
// non-capturing or capturing depending on capture.
func (l *MoveList) AddPromotions(from, to int, capture bool) {
	base := PromoKnight
	if capture {
		base = PromoCaptureKnight
	}
	l.Add(from, to, base)
	l.Add(from, to, base+1)
	l.Add(from, to, base+2)
	l.Add(from, to, base+3)
}

// ExtendPromotions emits promotions for every set bit of targets.
func (l *MoveList) ExtendPromotions(from int, targets uint64, capture bool) {
	for targets != 0 {
		to := popLSB(&targets)
		l.AddPromotions(from, to, capture)
	}
}

// CountCaptures returns the number of capturing moves in the list, including
// en-passant and capturing promotions.
func (l *MoveList) CountCaptures() (n int) {
	for i := range l.Count {
		if l.Moves[i].IsCapture() {
			n++
		}
	}
	return n
}

// CountEnPassants returns the number of en-passant moves in the list.
func (l *MoveList) CountEnPassants() (n int) {
	for i := range l.Count {
		if l.Moves[i].Flag() == EnPassant {
			n++
		}
	}
	return n
}

// CountCastles returns the number of castling moves in the list.
func (l *MoveList) CountCastles() (n int) {
	for i := range l.Count {
		f := l.Moves[i].Flag()
		if f == CastleShort || f == CastleLong {
			n++
		}
	}
	return n
}

// CountPromotions returns the number of promotion moves in the list.
func (l *MoveList) CountPromotions() (n int) {
	for i := range l.Count {
		if l.Moves[i].IsPromotion() {
			n++
		}
	}
	return n
}

// CastlingRights is a 4-bit field: WK=1, WQ=2, BK=4, BQ=8.
type CastlingRights = int

const (
	CastleRightWK CastlingRights = 1 << iota
	CastleRightWQ
	CastleRightBK
	CastleRightBQ
)
