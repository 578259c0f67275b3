/*
makemove.go implements the reversible make/undo engine: MakeMove pushes a new
state frame and mutates the board; UndoMove pops the frame and reverses the
edits in exact inverse order. Both re-run the pin/check analyzer, since the
legal generator depends on it reflecting the position as it stands now.
*/

package chego

// castlingIndex maps a king destination square to its entry in the castling
// geometry tables (0: white O-O, 1: white O-O-O, 2: black O-O, 3: black O-O-O).
func castlingIndex(to int) int {
	switch to {
	case SG1:
		return 0
	case SC1:
		return 1
	case SG8:
		return 2
	default:
		return 3
	}
}

func rookHomeSquare(c Color, short bool) int {
	switch {
	case c == ColorWhite && short:
		return SH1
	case c == ColorWhite && !short:
		return SA1
	case c == ColorBlack && short:
		return SH8
	default:
		return SA8
	}
}

// clearCastlingRightsFor drops the rights implicated by a king/rook move or a
// rook being captured on its home square.
func (p *Position) clearCastlingRightsFor(c Color, moved Piece, from int, capturedKind Piece, to int) {
	st := p.state()
	switch moved {
	case King:
		if c == ColorWhite {
			st.castling &^= CastleRightWK | CastleRightWQ
		} else {
			st.castling &^= CastleRightBK | CastleRightBQ
		}
	case Rook:
		if from == rookHomeSquare(c, true) {
			st.castling &^= rightFor(c, true)
		} else if from == rookHomeSquare(c, false) {
			st.castling &^= rightFor(c, false)
		}
	}
	if capturedKind == Rook {
		them := 1 ^ c
		if to == rookHomeSquare(them, true) {
			st.castling &^= rightFor(them, true)
		} else if to == rookHomeSquare(them, false) {
			st.castling &^= rightFor(them, false)
		}
	}
}

func rightFor(c Color, short bool) CastlingRights {
	switch {
	case c == ColorWhite && short:
		return CastleRightWK
	case c == ColorWhite && !short:
		return CastleRightWQ
	case c == ColorBlack && short:
		return CastleRightBK
	default:
		return CastleRightBQ
	}
}

/*
MakeMove applies m to the position: it advances the ply, mutates bitboards
and the incremental hash, updates castling rights / EP target / halfmove and
fullmove counters, and recomputes the checkmask/pin/danger masks. The caller
must supply a move that is at least pseudo-legal; MakeMove trusts it.
*/
func (p *Position) MakeMove(m Move) {
	us := p.Turn()
	them := 1 ^ us
	from, to := m.From(), m.To()
	flag := m.Flag()

	_, moved, ok := p.PieceOn(from)
	if !ok {
		panic("chego: MakeMove: no piece on origin square")
	}

	var capturedKind Piece = PieceNone
	if flag == Capture || flag >= PromoCaptureKnight {
		_, capturedKind, _ = p.PieceOn(to)
	}

	prev := *p.state()
	if p.ply+1 >= historyCapacity {
		panic("chego: MakeMove: history capacity exceeded")
	}
	p.ply++
	next := stateFrame{
		turn:        them,
		castling:    prev.castling,
		ep:          NoSquare,
		captured:    capturedKind,
		halfmoveCnt: prev.halfmoveCnt + 1,
		fullmoveCnt: prev.fullmoveCnt,
	}
	if us == ColorBlack {
		next.fullmoveCnt++
	}
	p.history[p.ply] = next

	switch flag {
	case Quiet:
		p.clearPiece(us, moved, from)
		p.setPiece(us, moved, to)

	case DoublePush:
		p.clearPiece(us, moved, from)
		p.setPiece(us, moved, to)
		p.state().ep = from + relativeDir(8, us)
		p.state().halfmoveCnt = 0

	case EnPassant:
		p.clearPiece(us, moved, from)
		p.setPiece(us, moved, to)
		capturedSq := to - relativeDir(8, us)
		p.clearPiece(them, Pawn, capturedSq)
		p.state().captured = Pawn
		p.state().halfmoveCnt = 0

	case CastleShort, CastleLong:
		idx := castlingIndex(to)
		p.clearPiece(us, King, from)
		p.setPiece(us, King, to)
		rookFrom, rookTo := castlingRookSquares[idx][0], castlingRookSquares[idx][1]
		p.clearPiece(us, Rook, rookFrom)
		p.setPiece(us, Rook, rookTo)
		if us == ColorWhite {
			p.state().castling &^= CastleRightWK | CastleRightWQ
		} else {
			p.state().castling &^= CastleRightBK | CastleRightBQ
		}

	case Capture:
		p.clearPiece(them, capturedKind, to)
		p.clearPiece(us, moved, from)
		p.setPiece(us, moved, to)
		p.state().halfmoveCnt = 0

	default: // promotions, capturing or not
		if flag >= PromoCaptureKnight {
			p.clearPiece(them, capturedKind, to)
		}
		p.clearPiece(us, Pawn, from)
		p.setPiece(us, m.PromotionPiece(), to)
		p.state().halfmoveCnt = 0
	}

	if flag != CastleShort && flag != CastleLong {
		p.clearCastlingRightsFor(us, moved, from, capturedKind, to)
	}
	if moved == Pawn {
		p.state().halfmoveCnt = 0
	}

	p.refreshMasks()
}

// UndoMove reverses the most recent MakeMove. m must be the same move that
// was just made.
func (p *Position) UndoMove(m Move) {
	us := p.history[p.ply-1].turn
	them := 1 ^ us
	from, to := m.From(), m.To()
	flag := m.Flag()
	captured := p.state().captured

	switch flag {
	case Quiet, DoublePush:
		_, moved, _ := p.PieceOn(to)
		p.clearPiece(us, moved, to)
		p.setPiece(us, moved, from)

	case Capture:
		_, moved, _ := p.PieceOn(to)
		p.clearPiece(us, moved, to)
		p.setPiece(us, moved, from)
		p.setPiece(them, captured, to)

	case EnPassant:
		_, moved, _ := p.PieceOn(to)
		p.clearPiece(us, moved, to)
		p.setPiece(us, moved, from)
		capturedSq := to - relativeDir(8, us)
		p.setPiece(them, Pawn, capturedSq)

	case CastleShort, CastleLong:
		idx := castlingIndex(to)
		p.clearPiece(us, King, to)
		p.setPiece(us, King, from)
		rookFrom, rookTo := castlingRookSquares[idx][0], castlingRookSquares[idx][1]
		p.clearPiece(us, Rook, rookTo)
		p.setPiece(us, Rook, rookFrom)

	default: // promotions
		promoted := m.PromotionPiece()
		p.clearPiece(us, promoted, to)
		p.setPiece(us, Pawn, from)
		if flag >= PromoCaptureKnight {
			p.setPiece(them, captured, to)
		}
	}

	p.history[p.ply] = stateFrame{}
	p.ply--
	p.refreshMasks()
}
