/*
san.go implements serialization of moves into Standard Algebraic Notation.
See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt
Section 8.2.3. SAN is not part of the external-interface contract of this
package (only UCI is), but it is carried over from the teacher repo as a pure,
I/O-free function of (Move, Position, MoveList).
*/

package chego

import "strings"

var fileLetters = "abcdefgh"

/*
MoveToSAN encodes m to its SAN representation. legal is the full legal move
list of the position the move was drawn from, used to resolve disambiguation.
isCheck/isCheckmate are supplied by the caller, since they require making the
move and re-running the analyzer -- outside this function's scope.
*/
func MoveToSAN(m Move, pos *Position, legal MoveList, isCheck, isCheckmate bool) string {
	flag := m.Flag()
	if flag == CastleShort {
		return sanSuffix("O-O", isCheck, isCheckmate)
	}
	if flag == CastleLong {
		return sanSuffix("O-O-O", isCheck, isCheckmate)
	}

	_, piece, _ := pos.PieceOn(m.From())

	var b strings.Builder
	switch piece {
	case Knight:
		b.WriteByte('N')
	case Bishop:
		b.WriteByte('B')
	case Rook:
		b.WriteByte('R')
	case Queen:
		b.WriteByte('Q')
	case King:
		b.WriteByte('K')
	}

	if piece != Pawn {
		sameFile, sameRank := false, false
		ambiguous := false
		for i := range legal.Count {
			other := legal.Moves[i]
			if other.From() == m.From() || other.To() != m.To() {
				continue
			}
			_, otherPiece, _ := pos.PieceOn(other.From())
			if otherPiece != piece {
				continue
			}
			ambiguous = true
			if other.From()%8 == m.From()%8 {
				sameFile = true
			}
			if other.From()/8 == m.From()/8 {
				sameRank = true
			}
		}
		if ambiguous {
			switch {
			case !sameFile:
				b.WriteByte(fileLetters[m.From()%8])
			case !sameRank:
				b.WriteByte(byte('1' + m.From()/8))
			default:
				b.WriteByte(fileLetters[m.From()%8])
				b.WriteByte(byte('1' + m.From()/8))
			}
		}
	}

	if m.IsCapture() {
		if piece == Pawn {
			b.WriteByte(fileLetters[m.From()%8])
		}
		b.WriteByte('x')
	}

	b.WriteString(Square2String[m.To()])

	if m.IsPromotion() {
		b.WriteByte('=')
		switch m.PromotionPiece() {
		case Knight:
			b.WriteByte('N')
		case Bishop:
			b.WriteByte('B')
		case Rook:
			b.WriteByte('R')
		default:
			b.WriteByte('Q')
		}
	}

	return sanSuffix(b.String(), isCheck, isCheckmate)
}

func sanSuffix(s string, isCheck, isCheckmate bool) string {
	switch {
	case isCheckmate:
		return s + "#"
	case isCheck:
		return s + "+"
	default:
		return s
	}
}
