package attacks_test

import (
	"testing"

	"github.com/ecthelion/corechess/pkg/attacks"
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
)

func TestKnightAttacksFromCorner(t *testing.T) {
	got := attacks.Knight[square.A1]
	want := bitboard.Squares[square.B3] | bitboard.Squares[square.C2]
	if got != want {
		t.Errorf("Knight[A1] = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestKingAttacksFromCenter(t *testing.T) {
	got := attacks.King[square.E4]
	if got.Count() != 8 {
		t.Errorf("King[E4] has %d destinations, want 8", got.Count())
	}
	for _, s := range []square.Square{square.D3, square.D4, square.D5, square.E3, square.E5, square.F3, square.F4, square.F5} {
		if got&bitboard.Squares[s] == bitboard.Empty {
			t.Errorf("King[E4] missing %s", s)
		}
	}
}

func TestKingAttacksFromCornerIsThree(t *testing.T) {
	if got := attacks.King[square.A1].Count(); got != 3 {
		t.Errorf("King[A1] has %d destinations, want 3", got)
	}
}

func TestPawnAttacksAreColourSpecific(t *testing.T) {
	white := attacks.Pawn[piece.White][square.E4]
	want := bitboard.Squares[square.D5] | bitboard.Squares[square.F5]
	if white != want {
		t.Errorf("White Pawn[E4] = %#x, want %#x", uint64(white), uint64(want))
	}

	black := attacks.Pawn[piece.Black][square.E4]
	want = bitboard.Squares[square.D3] | bitboard.Squares[square.F3]
	if black != want {
		t.Errorf("Black Pawn[E4] = %#x, want %#x", uint64(black), uint64(want))
	}
}

func TestPawnAttacksFromEdgeFile(t *testing.T) {
	if got := attacks.Pawn[piece.White][square.A4]; got != bitboard.Squares[square.B5] {
		t.Errorf("White Pawn[A4] = %#x, want just B5", uint64(got))
	}
}

func TestRookOnEmptyBoard(t *testing.T) {
	got := attacks.Rook(square.D4, bitboard.Empty)
	if got.Count() != 14 {
		t.Errorf("Rook(D4, empty) has %d targets, want 14", got.Count())
	}
}

func TestRookBlockedByOccupancy(t *testing.T) {
	occ := bitboard.Squares[square.D6] | bitboard.Squares[square.D4]
	got := attacks.Rook(square.D4, occ)
	if got&bitboard.Squares[square.D7] != bitboard.Empty {
		t.Errorf("Rook(D4) should not see past a blocker on D6")
	}
	if got&bitboard.Squares[square.D6] == bitboard.Empty {
		t.Errorf("Rook(D4) should include the blocking square D6 itself")
	}
	if got&bitboard.Squares[square.D5] == bitboard.Empty {
		t.Errorf("Rook(D4) should include D5, before the blocker")
	}
}

func TestBishopOnEmptyBoard(t *testing.T) {
	got := attacks.Bishop(square.D4, bitboard.Empty)
	if got.Count() != 13 {
		t.Errorf("Bishop(D4, empty) has %d targets, want 13", got.Count())
	}
}

func TestQueenIsUnionOfRookAndBishop(t *testing.T) {
	occ := bitboard.Squares[square.D4]
	rook := attacks.Rook(square.D4, occ)
	bishop := attacks.Bishop(square.D4, occ)
	queen := attacks.Queen(square.D4, occ)
	if queen != rook|bishop {
		t.Errorf("Queen(D4) != Rook(D4) | Bishop(D4)")
	}
}

func TestRookRayMaskExcludesOffRayAttackers(t *testing.T) {
	mask := attacks.RookRayMask[square.D4]
	if mask&bitboard.Squares[square.E5] != bitboard.Empty {
		t.Errorf("RookRayMask[D4] should exclude E5, which shares neither rank nor file")
	}
	if mask&bitboard.Squares[square.D8] == bitboard.Empty {
		t.Errorf("RookRayMask[D4] should include D8, sharing a file")
	}
	if mask&bitboard.Squares[square.A4] == bitboard.Empty {
		t.Errorf("RookRayMask[D4] should include A4, sharing a rank")
	}
}

func TestBishopRayMaskExcludesOffRayAttackers(t *testing.T) {
	mask := attacks.BishopRayMask[square.D4]
	if mask&bitboard.Squares[square.D8] != bitboard.Empty {
		t.Errorf("BishopRayMask[D4] should exclude D8, sharing neither diagonal")
	}
	if mask&bitboard.Squares[square.A1] == bitboard.Empty {
		t.Errorf("BishopRayMask[D4] should include A1, on the same a1-h8 diagonal")
	}
}

func TestBetweenOnRank(t *testing.T) {
	got := attacks.Between[square.A1][square.D1]
	want := bitboard.Squares[square.B1] | bitboard.Squares[square.C1]
	if got != want {
		t.Errorf("Between[A1][D1] = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestBetweenOnDiagonal(t *testing.T) {
	got := attacks.Between[square.A1][square.D4]
	want := bitboard.Squares[square.B2] | bitboard.Squares[square.C3]
	if got != want {
		t.Errorf("Between[A1][D4] = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestBetweenIsEmptyForNonCollinearSquares(t *testing.T) {
	if got := attacks.Between[square.A1][square.B3]; got != bitboard.Empty {
		t.Errorf("Between[A1][B3] should be empty, got %#x", uint64(got))
	}
}

func TestBetweenIsSymmetric(t *testing.T) {
	a, b := square.A1, square.H8
	if attacks.Between[a][b] != attacks.Between[b][a] {
		t.Errorf("Between should be symmetric in its two arguments")
	}
}

func TestCastleTraversalMatchesKingDestinations(t *testing.T) {
	for _, dest := range []square.Square{square.G1, square.C1, square.G8, square.C8} {
		if _, ok := attacks.CastleTraversal[dest]; !ok {
			t.Errorf("CastleTraversal missing entry for %s", dest)
		}
		if _, ok := attacks.CastleCheckSquares[dest]; !ok {
			t.Errorf("CastleCheckSquares missing entry for %s", dest)
		}
	}
}

func TestWhiteKingsideCastleCheckSquares(t *testing.T) {
	got := attacks.CastleCheckSquares[square.G1]
	want := [3]square.Square{square.E1, square.F1, square.G1}
	if got != want {
		t.Errorf("CastleCheckSquares[G1] = %v, want %v", got, want)
	}
}

func TestBlackQueensideTraversalIsThreeSquares(t *testing.T) {
	got := attacks.CastleTraversal[square.C8]
	want := bitboard.Squares[square.B8] | bitboard.Squares[square.C8] | bitboard.Squares[square.D8]
	if got != want {
		t.Errorf("CastleTraversal[C8] = %#x, want %#x", uint64(got), uint64(want))
	}
}
