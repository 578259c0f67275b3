/*
position.go defines the Position aggregate and its ply-indexed history stack.
A Position is a small, copy-friendly value: all piece bitboards fit in a
couple of cache lines, so a caller that wants speculative search may duplicate
it wholesale instead of relying on MakeMove/UndoMove.
*/

package chego

// historyCapacity bounds the ply-indexed state stack. 216 plies comfortably
// covers tournament-depth search; exceeding it is a programmer error.
const historyCapacity = 216

// stateFrame captures everything about a ply that MakeMove can't recompute
// from the board alone, and that UndoMove needs to reverse a move exactly.
type stateFrame struct {
	turn        Color
	castling    CastlingRights
	ep          int // NoSquare if not set
	captured    Piece
	halfmoveCnt int
	fullmoveCnt int
}

/*
Position represents a chessboard state: piece bitboards, ply-indexed history,
the incremental piece-placement Zobrist hash, and the cached check/pin/danger
masks refreshed after every board edit.
*/
type Position struct {
	// pieces[color][kind] bitboards. Pairwise disjoint; their union is the
	// occupancy.
	pieces [2][6]uint64

	ply     int
	history [historyCapacity]stateFrame

	// hash is the Zobrist key of piece placement only. EP and castling
	// contributions are XOR-composed on demand -- see Hash().
	hash uint64

	// Cached by refreshMasks, consumed by Legal.
	checkmask uint64
	pinHV     uint64
	pinD12    uint64
	danger    uint64
}

func (p *Position) state() *stateFrame       { return &p.history[p.ply] }
func (p *Position) Turn() Color              { return p.state().turn }
func (p *Position) Castling() CastlingRights { return p.state().castling }
func (p *Position) EPTarget() int            { return p.state().ep }
func (p *Position) HalfmoveClock() int       { return p.state().halfmoveCnt }
func (p *Position) FullmoveNumber() int      { return p.state().fullmoveCnt }
func (p *Position) Ply() int                 { return p.ply }

// Occupancy is the union of every piece bitboard.
func (p *Position) Occupancy() uint64 {
	return p.ColorBB(ColorWhite) | p.ColorBB(ColorBlack)
}

// ColorBB returns the union of all pieces of the given color.
func (p *Position) ColorBB(c Color) uint64 {
	var bb uint64
	for k := range 6 {
		bb |= p.pieces[c][k]
	}
	return bb
}

// PieceBB returns the bitboard of a single (color, kind) pair.
func (p *Position) PieceBB(c Color, k Piece) uint64 { return p.pieces[c][k] }

// KingSquare returns the square of the color's king. A well-formed Position
// always has exactly one.
func (p *Position) KingSquare(c Color) int {
	return bitScan(p.pieces[c][King])
}

// PieceOn reports the color and kind of the piece standing on sq, or
// (_, PieceNone, false) if the square is empty.
func (p *Position) PieceOn(sq int) (Color, Piece, bool) {
	bb := uint64(1) << sq
	for c := range 2 {
		for k := range 6 {
			if p.pieces[c][k]&bb != 0 {
				return c, k, true
			}
		}
	}
	return ColorWhite, PieceNone, false
}

func (p *Position) setPiece(c Color, k Piece, sq int) {
	p.pieces[c][k] |= uint64(1) << sq
	p.hash ^= pieceKeys[c][k][sq]
}

func (p *Position) clearPiece(c Color, k Piece, sq int) {
	p.pieces[c][k] &^= uint64(1) << sq
	p.hash ^= pieceKeys[c][k][sq]
}

// Hash returns the Zobrist key of the position. EP and castling contributions
// are composed on demand; includeEP controls whether the current en-passant
// target contributes (callers building transposition keys that should ignore
// a non-capturable EP square pass false).
func (p *Position) Hash(includeEP bool) uint64 {
	h := p.hash
	st := p.state()
	if includeEP && st.ep != NoSquare {
		h ^= epKeys[st.ep]
	}
	h ^= castlingKeys[st.castling]
	if st.turn == ColorBlack {
		h ^= sideKey
	}
	return h
}

// Checkers returns the number of opponent pieces currently checking our
// king -- 0, 1, or 2 (double check).
func (p *Position) Checkers() int {
	switch p.checkmask {
	case ^uint64(0):
		return 0
	case 0:
		return 2
	default:
		return 1
	}
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.checkmask != ^uint64(0) }
