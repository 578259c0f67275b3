/*
fen.go implements FEN parsing and serialization. Parse failures are returned
as an error, never a panic: a malformed FEN string is bad input, not a
programmer error.
*/

package chego

import (
	"fmt"
	"strconv"
	"strings"
)

// FENError reports a malformed FEN field.
type FENError struct {
	Field  string
	Reason string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("chego: invalid FEN %s field: %s", e.Field, e.Reason)
}

var pieceLetters = "PNBRQKpnbrqk"

// ParseFEN builds a Position from a standard six-field FEN string.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, &FENError{"structure", "expected at least 4 space-separated fields"}
	}

	p := &Position{}
	for c := range 2 {
		for k := range 6 {
			p.pieces[c][k] = 0
		}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &FENError{"placement", "expected 8 ranks separated by '/'"}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			idx := strings.IndexRune(pieceLetters, ch)
			if idx < 0 {
				return nil, &FENError{"placement", fmt.Sprintf("unknown piece letter %q", ch)}
			}
			if file >= 8 {
				return nil, &FENError{"placement", "rank overflows 8 files"}
			}
			c, k := ColorWhite, idx
			if idx >= 6 {
				c, k = ColorBlack, idx-6
			}
			sq := rank*8 + file
			p.pieces[c][k] |= uint64(1) << sq
			file++
		}
		if file != 8 {
			return nil, &FENError{"placement", "rank does not account for all 8 files"}
		}
	}

	if CountBits(p.pieces[ColorWhite][King]) != 1 || CountBits(p.pieces[ColorBlack][King]) != 1 {
		return nil, &FENError{"placement", "each side must have exactly one king"}
	}

	turn := ColorWhite
	switch fields[1] {
	case "w":
		turn = ColorWhite
	case "b":
		turn = ColorBlack
	default:
		return nil, &FENError{"side to move", fmt.Sprintf("expected 'w' or 'b', got %q", fields[1])}
	}

	castling := CastlingRights(0)
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= CastleRightWK
			case 'Q':
				castling |= CastleRightWQ
			case 'k':
				castling |= CastleRightBK
			case 'q':
				castling |= CastleRightBQ
			default:
				return nil, &FENError{"castling", fmt.Sprintf("unknown right %q", ch)}
			}
		}
	}

	ep := NoSquare
	if fields[3] != "-" {
		sq, err := squareFromString(fields[3])
		if err != nil {
			return nil, &FENError{"en passant", err.Error()}
		}
		ep = sq
	}

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, &FENError{"halfmove clock", err.Error()}
		}
		halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, &FENError{"fullmove number", err.Error()}
		}
		fullmove = n
	}

	p.history[0] = stateFrame{
		turn:        turn,
		castling:    castling,
		ep:          ep,
		captured:    PieceNone,
		halfmoveCnt: halfmove,
		fullmoveCnt: fullmove,
	}
	p.ply = 0
	p.recomputeHash()
	p.refreshMasks()

	return p, nil
}

// recomputeHash rebuilds the piece-placement hash from scratch. Used only at
// construction time; every later edit maintains it incrementally.
func (p *Position) recomputeHash() {
	p.hash = 0
	for c := range 2 {
		for k := range 6 {
			bb := p.pieces[c][k]
			for bb != 0 {
				sq := popLSB(&bb)
				p.hash ^= pieceKeys[c][k][sq]
			}
		}
	}
}

func squareFromString(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("square %q is not two characters", s)
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return 0, fmt.Errorf("square %q out of range", s)
	}
	return int(rank)*8 + int(file), nil
}

// SerializeFEN is the inverse of ParseFEN.
func (p *Position) SerializeFEN() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := range 8 {
			sq := rank*8 + file
			c, k, ok := p.PieceOn(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(PieceSymbols[c][k])
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	st := p.state()
	b.WriteByte(' ')
	if st.turn == ColorWhite {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	if st.castling == 0 {
		b.WriteByte('-')
	} else {
		if st.castling&CastleRightWK != 0 {
			b.WriteByte('K')
		}
		if st.castling&CastleRightWQ != 0 {
			b.WriteByte('Q')
		}
		if st.castling&CastleRightBK != 0 {
			b.WriteByte('k')
		}
		if st.castling&CastleRightBQ != 0 {
			b.WriteByte('q')
		}
	}

	b.WriteByte(' ')
	if st.ep == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(Square2String[st.ep])
	}

	fmt.Fprintf(&b, " %d %d", st.halfmoveCnt, st.fullmoveCnt)

	return b.String()
}

// InitialPositionFEN is the standard starting position.
const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
