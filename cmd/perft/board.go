package main

import (
	"strings"

	"github.com/fatih/color"

	chego "github.com/turbochess/chego"
)

var pieceSymbols = [2][6]rune{
	{'P', 'N', 'B', 'R', 'Q', 'K'},
	{'p', 'n', 'b', 'r', 'q', 'k'},
}

// FormatPosition renders the position as an 8x8 grid, White pieces in cyan
// and Black pieces in yellow, rank 8 on top -- generalized from the teacher
// repo's board-printing helper to this package's two-dimensional
// [color][kind] bitboard layout.
func FormatPosition(p *chego.Position) string {
	var b strings.Builder

	white := color.New(color.FgCyan).SprintFunc()
	black := color.New(color.FgYellow).SprintFunc()

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteString("  ")
		for file := range 8 {
			sq := rank*8 + file
			c, k, ok := p.PieceOn(sq)
			symbol := "."
			if ok {
				symbol = string(pieceSymbols[c][k])
				if c == chego.ColorWhite {
					symbol = white(symbol)
				} else {
					symbol = black(symbol)
				}
			}
			b.WriteString(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}
