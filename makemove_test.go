package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// snapshot captures everything MakeMove/UndoMove is expected to restore
// byte-for-byte.
type snapshot struct {
	pieces  [2][6]uint64
	ply     int
	history [historyCapacity]stateFrame
	hash    uint64
}

func snapshotOf(p *Position) snapshot {
	return snapshot{
		pieces:  p.pieces,
		ply:     p.ply,
		history: p.history,
		hash:    p.hash,
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	fens := []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err)

		legal := pos.Legal()
		for i := range legal.Count {
			m := legal.Moves[i]
			before := snapshotOf(pos)
			pos.MakeMove(m)
			pos.UndoMove(m)
			after := snapshotOf(pos)
			require.Equalf(t, before, after, "%q: make/undo of %s did not round trip", fen, MoveToUCI(m))
		}
	}
}

func TestMakeMoveMaintainsIncrementalHash(t *testing.T) {
	pos, err := ParseFEN(InitialPositionFEN)
	require.NoError(t, err)

	legal := pos.Legal()
	for i := range legal.Count {
		m := legal.Moves[i]
		pos.MakeMove(m)
		incremental := pos.hash
		pos.recomputeHash()
		require.Equalf(t, pos.hash, incremental,
			"move %s: incremental hash diverges from recompute", MoveToUCI(m))
		pos.UndoMove(m)
	}
}

func TestMakeMoveUpdatesCastlingRightsOnRookCapture(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	pos.MakeMove(NewMove(SA1, SA8, Capture))
	require.Zero(t, pos.Castling()&CastleRightWQ, "moving the queenside rook should clear White's queenside right")
	require.Zero(t, pos.Castling()&CastleRightBQ, "capturing Black's queenside rook should clear Black's queenside right")
	require.NotZero(t, pos.Castling()&CastleRightBK, "Black's kingside right should survive, its rook wasn't touched")
}

func TestMakeMoveCastlingMovesBothPieces(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	pos.MakeMove(NewMove(SE1, SG1, CastleShort))
	_, k, ok := pos.PieceOn(SG1)
	require.True(t, ok)
	require.Equal(t, King, k)

	_, k, ok = pos.PieceOn(SF1)
	require.True(t, ok)
	require.Equal(t, Rook, k)

	require.Zero(t, pos.Castling(), "expected no castling rights left for White")
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	pos.MakeMove(NewMove(SE5, SD6, EnPassant))
	_, _, ok := pos.PieceOn(SD5)
	require.False(t, ok, "expected the captured pawn on d5 to be gone")

	_, k, ok := pos.PieceOn(SD6)
	require.True(t, ok)
	require.Equal(t, Pawn, k)
}

func TestMakeMoveHalfmoveClockResetsOnPawnOrCapture(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/8/8/4P3/4K2k w - - 5 10")
	require.NoError(t, err)

	pos.MakeMove(NewMove(SE2, SE4, DoublePush))
	require.Zero(t, pos.HalfmoveClock())
}
