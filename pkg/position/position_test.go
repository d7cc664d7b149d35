package position_test

import (
	"testing"

	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/fen"
	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/position"
	"github.com/ecthelion/corechess/pkg/square"
)

// assertHashConsistent asserts the P5 property: the incrementally maintained
// hash always matches a from-scratch reconstruction.
func assertHashConsistent(t *testing.T, pos *position.Position) {
	t.Helper()
	if got, want := pos.PositionHash(), pos.RecomputeHash(); got != want {
		t.Fatalf("hash drifted: incremental=%x recomputed=%x", got, want)
	}
}

func TestMakeTakeMoveRoundTrips(t *testing.T) {
	pos := fen.Parse(fen.Startpos)
	before := fen.String(pos)

	m := move.New(square.E2, square.E4, move.DoublePawn)
	if verdict := pos.MakeMove(m); verdict != position.Legal {
		t.Fatalf("e2e4 from startpos should be legal, got %s", verdict)
	}
	assertHashConsistent(t, pos)
	if pos.State.EnPassant != square.E3 {
		t.Fatalf("expected en-passant target e3, got %s", pos.State.EnPassant)
	}

	pos.TakeMove()
	assertHashConsistent(t, pos)
	if got := fen.String(pos); got != before {
		t.Fatalf("take_move did not restore position: got %q want %q", got, before)
	}
}

func TestCastlingGateRejectsMoveThroughCheck(t *testing.T) {
	// White king on e1, rook on h1, black rook on f8 covering f1: castling
	// kingside must be flagged Illegal and is left to the caller to undo.
	pos := fen.Parse("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	pos.Board.FillSquare(square.F8, piece.BlackRook)
	pos.State.Hash = pos.RecomputeHash()

	m := move.New(square.E1, square.G1, move.KingCastle)
	verdict := pos.MakeMove(m)
	if verdict != position.Illegal {
		t.Fatalf("castling through an attacked square should be Illegal, got %s", verdict)
	}
	pos.TakeMove()
	assertHashConsistent(t, pos)
	if pos.Board.At(square.E1) != piece.WhiteKing || pos.Board.At(square.H1) != piece.WhiteRook {
		t.Fatalf("take_move did not restore the pre-castle board")
	}
}

func TestEnPassantCapture(t *testing.T) {
	// White pawn e5, black just played d7-d5: e5xd6 en passant.
	pos := fen.Parse("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m := move.New(square.E5, square.D6, move.EnPassant)
	if verdict := pos.MakeMove(m); verdict != position.Legal {
		t.Fatalf("en passant capture should be legal, got %s", verdict)
	}
	assertHashConsistent(t, pos)
	if pos.Board.At(square.D5) != piece.NoPiece {
		t.Fatalf("captured pawn still on d5")
	}
	if pos.Board.At(square.D6) != piece.WhitePawn {
		t.Fatalf("capturing pawn did not land on d6")
	}

	pos.TakeMove()
	assertHashConsistent(t, pos)
	if pos.Board.At(square.D5) != piece.BlackPawn {
		t.Fatalf("take_move did not restore the captured pawn on d5")
	}
	if pos.Board.At(square.E5) != piece.WhitePawn {
		t.Fatalf("take_move did not restore the capturing pawn on e5")
	}
}

func TestPromotionCapture(t *testing.T) {
	pos := fen.Parse("1nbqkbnr/P7/8/8/8/8/8/4K3 w - - 0 1")
	m := move.New(square.A7, square.B8, move.PromoteQueenCapture)
	if verdict := pos.MakeMove(m); verdict != position.Legal {
		t.Fatalf("promotion capture should be legal, got %s", verdict)
	}
	assertHashConsistent(t, pos)
	if pos.Board.At(square.B8) != piece.WhiteQueen {
		t.Fatalf("promoted piece not on b8: got %s", pos.Board.At(square.B8))
	}

	pos.TakeMove()
	assertHashConsistent(t, pos)
	if pos.Board.At(square.A7) != piece.WhitePawn {
		t.Fatalf("take_move did not restore the pawn on a7")
	}
	if pos.Board.At(square.B8) != piece.BlackKnight {
		t.Fatalf("take_move did not restore the captured knight on b8")
	}
}

func TestRookCornerCaptureClearsCastlingRight(t *testing.T) {
	// A black rook captures on a1, White's queenside rook's home corner.
	// The capturing side isn't "the queenside mover", but White's
	// queenside right must still drop: castling rights mutation keys off
	// the square, not the mover (spec.md's non-locality design note).
	pos := fen.Parse("r3k3/8/8/8/8/8/8/R3K3 b Qq - 0 1")
	capture := move.New(square.A8, square.A1, move.Capture)

	if verdict := pos.MakeMove(capture); verdict != position.Legal {
		t.Fatalf("rook-corner capture should be legal, got %s", verdict)
	}
	if pos.State.CastleRights.Has(castling.WhiteQueen) {
		t.Fatalf("capturing on a1 should have cleared White's queenside right")
	}
	assertHashConsistent(t, pos)

	pos.TakeMove()
	assertHashConsistent(t, pos)
}

func TestIsRepetition(t *testing.T) {
	pos := fen.Parse(fen.Startpos)

	shuffle := []move.Move{
		move.New(square.G1, square.F3, move.Quiet),
		move.New(square.G8, square.F6, move.Quiet),
		move.New(square.F3, square.G1, move.Quiet),
		move.New(square.F6, square.G8, move.Quiet),
	}

	for _, m := range shuffle {
		if verdict := pos.MakeMove(m); verdict != position.Legal {
			t.Fatalf("shuffle move %s should be legal", m)
		}
	}

	if !pos.IsRepetition() {
		t.Fatalf("expected a repetition after returning both knights home")
	}
}

func TestIsInsufficientMaterial(t *testing.T) {
	bareKings := fen.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if !bareKings.IsInsufficientMaterial() {
		t.Fatalf("bare kings should be insufficient material")
	}

	kingAndPawn := fen.Parse("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if kingAndPawn.IsInsufficientMaterial() {
		t.Fatalf("king and pawn should not be insufficient material")
	}
}
