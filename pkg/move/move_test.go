package move_test

import (
	"testing"

	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/square"
)

func TestNewFieldsRoundTrip(t *testing.T) {
	m := move.New(square.E2, square.E4, move.DoublePawn)
	if m.Source() != square.E2 {
		t.Errorf("Source() = %s, want E2", m.Source())
	}
	if m.Target() != square.E4 {
		t.Errorf("Target() = %s, want E4", m.Target())
	}
	if m.MoveType() != move.DoublePawn {
		t.Errorf("MoveType() = %s, want DoublePawn", m.MoveType())
	}
	if m.Score() != 0 {
		t.Errorf("Score() = %d, want 0 for a freshly constructed move", m.Score())
	}
}

func TestWithScorePreservesOtherFields(t *testing.T) {
	m := move.New(square.A7, square.B8, move.PromoteQueenCapture)
	scored := m.WithScore(-1234)
	if scored.Score() != -1234 {
		t.Errorf("Score() = %d, want -1234", scored.Score())
	}
	if scored.Source() != m.Source() || scored.Target() != m.Target() || scored.MoveType() != m.MoveType() {
		t.Errorf("WithScore mutated unrelated fields")
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		m                                    move.Move
		capture, promote, castle, enPassant bool
	}{
		{move.New(square.E2, square.E4, move.Quiet), false, false, false, false},
		{move.New(square.E4, square.D5, move.Capture), true, false, false, false},
		{move.New(square.E5, square.D6, move.EnPassant), true, false, false, true},
		{move.New(square.E1, square.G1, move.KingCastle), false, false, true, false},
		{move.New(square.E1, square.C1, move.QueenCastle), false, false, true, false},
		{move.New(square.A7, square.A8, move.PromoteQueen), false, true, false, false},
		{move.New(square.A7, square.B8, move.PromoteKnightCapture), true, true, false, false},
	}

	for _, c := range cases {
		if got := c.m.IsCapture(); got != c.capture {
			t.Errorf("%s.IsCapture() = %v, want %v", c.m, got, c.capture)
		}
		if got := c.m.IsPromote(); got != c.promote {
			t.Errorf("%s.IsPromote() = %v, want %v", c.m, got, c.promote)
		}
		if got := c.m.IsCastle(); got != c.castle {
			t.Errorf("%s.IsCastle() = %v, want %v", c.m, got, c.castle)
		}
		if got := c.m.IsEnPassant(); got != c.enPassant {
			t.Errorf("%s.IsEnPassant() = %v, want %v", c.m, got, c.enPassant)
		}
	}
}

func TestPromotionIndex(t *testing.T) {
	cases := map[move.Type]int{
		move.PromoteKnight:        0,
		move.PromoteBishop:        1,
		move.PromoteRook:          2,
		move.PromoteQueen:         3,
		move.PromoteKnightCapture: 0,
		move.PromoteQueenCapture:  3,
	}
	for t2, want := range cases {
		m := move.New(square.A7, square.A8, t2)
		if got := m.PromotionIndex(); got != want {
			t.Errorf("%s.PromotionIndex() = %d, want %d", t2, got, want)
		}
	}
}

func TestPromotionIndexPanicsOnNonPromotion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a non-promotion move")
		}
	}()
	move.New(square.E2, square.E4, move.Quiet).PromotionIndex()
}

func TestLongAlgebraic(t *testing.T) {
	if got := move.New(square.E2, square.E4, move.DoublePawn).LongAlgebraic(); got != "e2e4" {
		t.Errorf("LongAlgebraic() = %q, want %q", got, "e2e4")
	}
	if got := move.New(square.D7, square.D8, move.PromoteQueen).LongAlgebraic(); got != "d7d8q" {
		t.Errorf("LongAlgebraic() = %q, want %q", got, "d7d8q")
	}
}
