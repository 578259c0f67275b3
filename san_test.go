package chego

import "testing"

func TestMoveToSANPawnPush(t *testing.T) {
	pos, err := ParseFEN(InitialPositionFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	legal := pos.Legal()
	m := NewMove(SE2, SE4, DoublePush)
	if got, want := MoveToSAN(m, pos, legal, false, false), "e4"; got != want {
		t.Fatalf("MoveToSAN: expected %q got %q", want, got)
	}
}

func TestMoveToSANPieceMove(t *testing.T) {
	pos, err := ParseFEN(InitialPositionFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	legal := pos.Legal()
	m := NewMove(SG1, SF3, Quiet)
	if got, want := MoveToSAN(m, pos, legal, false, false), "Nf3"; got != want {
		t.Fatalf("MoveToSAN: expected %q got %q", want, got)
	}
}

func TestMoveToSANCastling(t *testing.T) {
	m := NewMove(SE1, SG1, CastleShort)
	if got, want := MoveToSAN(m, nil, MoveList{}, false, false), "O-O"; got != want {
		t.Fatalf("MoveToSAN: expected %q got %q", want, got)
	}
	m2 := NewMove(SE1, SC1, CastleLong)
	if got, want := MoveToSAN(m2, nil, MoveList{}, false, false), "O-O-O"; got != want {
		t.Fatalf("MoveToSAN: expected %q got %q", want, got)
	}
}

func TestSanSuffix(t *testing.T) {
	if got, want := sanSuffix("Qxf7", true, false), "Qxf7+"; got != want {
		t.Fatalf("sanSuffix(check): expected %q got %q", want, got)
	}
	if got, want := sanSuffix("Qxf7", true, true), "Qxf7#"; got != want {
		t.Fatalf("sanSuffix(mate): expected %q got %q", want, got)
	}
	if got, want := sanSuffix("Nf3", false, false), "Nf3"; got != want {
		t.Fatalf("sanSuffix(neither): expected %q got %q", want, got)
	}
}

func TestMoveToSANCapturePawn(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	legal := pos.Legal()
	m := NewMove(SE4, SD5, Capture)
	if got, want := MoveToSAN(m, pos, legal, false, false), "exd5"; got != want {
		t.Fatalf("MoveToSAN: expected %q got %q", want, got)
	}
}
