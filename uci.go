// uci.go implements the long algebraic move notation used by the Universal
// Chess Interface protocol.

package chego

import "strings"

// MoveToUCI converts m into long algebraic notation: <from><to>[promo].
// Castling is emitted as the king's from/to squares (e1g1), not as "O-O".
func MoveToUCI(m Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(Square2String[m.From()])
	b.WriteString(Square2String[m.To()])

	if m.IsPromotion() {
		switch m.PromotionPiece() {
		case Knight:
			b.WriteByte('n')
		case Bishop:
			b.WriteByte('b')
		case Rook:
			b.WriteByte('r')
		default:
			b.WriteByte('q')
		}
	}

	return b.String()
}
