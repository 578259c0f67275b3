package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// perftScenarios are the seeded end-to-end cross-checks against known-good
// node counts for a handful of well-studied positions (the standard
// "Kiwipete" position among them).
type perftScenario struct {
	name  string
	fen   string
	depth int
	nodes uint64
}

var perftScenarios = []perftScenario{
	{"initial/3", InitialPositionFEN, 3, 8_902},
	{"initial/5", InitialPositionFEN, 5, 4_865_609},
	{"initial/6", InitialPositionFEN, 6, 119_060_324},
	{"kiwipete/4", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4_085_603},
	{"kiwipete/5", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 5, 193_690_690},
	{"position5/5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 5, 89_941_194},
}

// deep reports whether a scenario is expensive enough to skip under -short.
func (s perftScenario) deep() bool {
	return s.nodes > 10_000_000
}

func TestPerftScenarios(t *testing.T) {
	for _, s := range perftScenarios {
		s := s
		t.Run(s.name, func(t *testing.T) {
			if s.deep() && testing.Short() {
				t.Skip("skipping a deep perft scenario under -short")
			}
			pos, err := ParseFEN(s.fen)
			require.NoError(t, err)
			require.Equal(t, s.nodes, Perft(pos, s.depth))
		})
	}
}

func TestPerftBaseCase(t *testing.T) {
	pos, err := ParseFEN(InitialPositionFEN)
	require.NoError(t, err)
	require.EqualValues(t, 1, Perft(pos, 0))
}

func TestLegalMoveCountFromInitialPosition(t *testing.T) {
	pos, err := ParseFEN(InitialPositionFEN)
	require.NoError(t, err)
	require.Equal(t, 20, pos.Legal().Count)
}

// TestLegalitySoundness re-derives check status via dangerMap after every
// legal move and confirms the mover's own king is never left in check.
func TestLegalitySoundness(t *testing.T) {
	for _, fen := range []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	} {
		pos, err := ParseFEN(fen)
		require.NoError(t, err)

		legal := pos.Legal()
		for i := range legal.Count {
			m := legal.Moves[i]
			mover := pos.Turn()
			pos.MakeMove(m)
			// after MakeMove, refreshMasks computed danger/checkmask for the
			// *new* side to move; derive whether the side that just moved is
			// attacked by checking the opponent's danger map against the
			// mover's king directly.
			them := pos.Turn()
			kingSq := pos.KingSquare(mover)
			require.Zerof(t,
				pos.dangerMap(them, pos.Occupancy()&^pos.pieces[them][King])&sqBB(kingSq),
				"%s left the mover's own king in check: %s", fen, MoveToUCI(m))
			pos.UndoMove(m)
		}
	}
}

// TestDoubleCheckConstraint confirms that when two pieces check the king,
// Legal returns only king moves.
func TestDoubleCheckConstraint(t *testing.T) {
	pos, err := ParseFEN("k3r3/8/8/8/8/5n2/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, pos.Checkers(), 2)

	legal := pos.Legal()
	for i := range legal.Count {
		require.Equalf(t, pos.KingSquare(ColorWhite), legal.Moves[i].From(),
			"expected only king moves under double check, got a move from %s",
			Square2String[legal.Moves[i].From()])
	}
}

// TestEnPassantDiscoveredCheck exercises the classic pinned-EP scenario:
// Black's king on a4 and White's queen on h4 share the 4th rank, with a
// white pawn just double-pushed to d4 next to a black pawn on e4. Capturing
// en passant removes both pawns from the rank, exposing Black's king to the
// queen -- so the EP move must not appear in Legal.
func TestEnPassantDiscoveredCheck(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2Q/8/8/4K3 b - d3 0 1")
	require.NoError(t, err)

	legal := pos.Legal()
	for i := range legal.Count {
		require.NotEqual(t, EnPassant, legal.Moves[i].Flag(),
			"en-passant capture should have been suppressed: it discovers check along the 4th rank")
	}
}

func TestCastlingBlockedByOccupation(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R1B1K2R w KQ - 0 1")
	require.NoError(t, err)

	legal := pos.Legal()
	for i := range legal.Count {
		require.NotEqual(t, CastleLong, legal.Moves[i].Flag(),
			"queenside castling should be blocked by the bishop on c1")
	}
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	// Black rook on f8 attacks f1, which the king must pass through for
	// short castling.
	pos, err := ParseFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	legal := pos.Legal()
	for i := range legal.Count {
		require.NotEqual(t, CastleShort, legal.Moves[i].Flag(),
			"short castling should be blocked: f1 is attacked")
	}
}
