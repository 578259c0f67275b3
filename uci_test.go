package chego

import "testing"

func TestMoveToUCI(t *testing.T) {
	cases := []struct {
		m    Move
		want string
	}{
		{NewMove(SE2, SE4, DoublePush), "e2e4"},
		{NewMove(SE1, SG1, CastleShort), "e1g1"},
		{NewMove(SE1, SC1, CastleLong), "e1c1"},
		{NewMove(SA7, SA8, PromoQueen), "a7a8q"},
		{NewMove(SB7, SA8, PromoCaptureKnight), "b7a8n"},
		{NewMove(SA7, SA8, PromoBishop), "a7a8b"},
		{NewMove(SA7, SA8, PromoRook), "a7a8r"},
	}
	for _, c := range cases {
		if got := MoveToUCI(c.m); got != c.want {
			t.Fatalf("MoveToUCI: expected %q got %q", c.want, got)
		}
	}
}
