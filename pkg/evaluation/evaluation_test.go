package evaluation_test

import (
	"testing"

	"github.com/ecthelion/corechess/pkg/evaluation"
	"github.com/ecthelion/corechess/pkg/fen"
	"github.com/ecthelion/corechess/pkg/piece"
)

func TestStartposIsBalanced(t *testing.T) {
	pos := fen.Parse(fen.Startpos)
	if got := evaluation.Absolute(pos); got != 0 {
		t.Errorf("Absolute(startpos) = %d, want 0", got)
	}
	if got := evaluation.Relative(pos); got != 0 {
		t.Errorf("Relative(startpos) = %d, want 0", got)
	}
}

func TestRelativeNegatesForBlack(t *testing.T) {
	pos := fen.Parse("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	abs := evaluation.Absolute(pos)
	if abs <= 0 {
		t.Fatalf("White up a queen should score positive absolute, got %d", abs)
	}

	pos.State.SideToMove = piece.Black
	if got := evaluation.Relative(pos); got != -abs {
		t.Errorf("Relative() with Black to move = %d, want %d", got, -abs)
	}
}

func TestMateScoreWindow(t *testing.T) {
	s := evaluation.MateScore(3)
	if !s.IsMate() {
		t.Fatalf("MateScore(3) should report IsMate")
	}
	if got := s.MateIn(); got != 3 {
		t.Errorf("MateIn() = %d, want 3", got)
	}
	if evaluation.Score(0).IsMate() {
		t.Errorf("a zero score should not be a mate score")
	}
}
