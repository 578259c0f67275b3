/*
perft.go implements the perft node-counting contract: Perft(pos, 0) = 1;
Perft(pos, d) sums Perft(make(m), d-1) over every legal move, undoing after
each recursion. PerftComplete additionally classifies every move in the tree
down to the target depth by move kind and check status, for the divide-style
diagnostics a driver wants.
This file has no I/O -- it only composes Legal/MakeMove/UndoMove, same as the
driver the distilled spec treats as an external collaborator.
*/

package chego

// Perft recursively counts the leaves of the move tree to the given depth.
func Perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal := pos.Legal()
	if depth == 1 {
		return uint64(legal.Count)
	}
	var nodes uint64
	for i := range legal.Count {
		m := legal.Moves[i]
		pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UndoMove(m)
	}
	return nodes
}

// PerftResult is the "complete" perft breakdown: total nodes plus per-kind
// counters and check/mate classification.
type PerftResult struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

// PerftComplete is PerftResult's driver: it classifies every move in the
// tree down to the target depth, not just the final ply's.
func PerftComplete(pos *Position, depth int) PerftResult {
	var r PerftResult
	r.Nodes = perftCompleteRec(pos, depth, &r)
	return r
}

// perftCompleteRec mirrors Perft's recursion, but additionally folds the
// current node's legal move list into r's counters at every level (not just
// the last one before a leaf) and classifies the position reached by each
// move by check/mate status right after making it -- so every move in the
// tree, including those of the final ply, is classified exactly once.
func perftCompleteRec(pos *Position, depth int, r *PerftResult) uint64 {
	if depth == 0 {
		return 1
	}

	legal := pos.Legal()
	r.Captures += uint64(legal.CountCaptures())
	r.EnPassants += uint64(legal.CountEnPassants())
	r.Castles += uint64(legal.CountCastles())
	r.Promotions += uint64(legal.CountPromotions())

	var nodes uint64
	for i := range legal.Count {
		m := legal.Moves[i]
		pos.MakeMove(m)
		if pos.InCheck() {
			r.Checks++
			if pos.Legal().Count == 0 {
				r.Checkmates++
			}
		}
		nodes += perftCompleteRec(pos, depth-1, r)
		pos.UndoMove(m)
	}
	return nodes
}

// DividePerft returns, for each legal root move, the subtree node count at
// depth-1 -- the standard debugging aid for comparing against a reference
// engine move-by-move.
func DividePerft(pos *Position, depth int) []struct {
	Move  Move
	Nodes uint64
} {
	legal := pos.Legal()
	out := make([]struct {
		Move  Move
		Nodes uint64
	}, 0, legal.Count)
	for i := range legal.Count {
		m := legal.Moves[i]
		pos.MakeMove(m)
		nodes := Perft(pos, depth-1)
		pos.UndoMove(m)
		out = append(out, struct {
			Move  Move
			Nodes uint64
		}{m, nodes})
	}
	return out
}
