package attacks

import (
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/square"
)

// Rook returns the rank/file sliding-attack set for a rook on s given the
// board's full occupancy, using Hyperbola Quintessence independently on
// the horizontal and vertical masks (spec.md §4.2).
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	horiz := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])
	vert := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	return horiz | vert
}

// Bishop returns the diagonal sliding-attack set for a bishop on s given
// the board's full occupancy.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	diag := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	anti := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])
	return diag | anti
}

// Queen returns the union of the rook and bishop attack sets for s.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}

// RookRayMask and BishopRayMask are occupancy-independent masks used by
// the attack checker's required cheap-rejection optimisation (spec.md
// §4.1: "must first cheaply reject the whole piece set ... before
// iterating"): a rook/queen on a square outside of these masks from the
// target cannot possibly attack it regardless of occupancy.
var (
	RookRayMask   [square.N]bitboard.Board
	BishopRayMask [square.N]bitboard.Board

	// Between holds, for every pair of squares sharing a rank, file, or
	// diagonal, the squares strictly between them; zero for every other
	// pair, per spec.md's in_between table. Derived, as the teacher's
	// generator does, by intersecting the Hyperbola ray from each
	// endpoint through the two-square occupancy.
	Between [square.N][square.N]bitboard.Board
)

func init() {
	for s := square.Square(0); s < square.N; s++ {
		RookRayMask[s] = bitboard.Ranks[s.Rank()] | bitboard.Files[s.File()]
		BishopRayMask[s] = bitboard.Diagonals[s.Diagonal()] | bitboard.AntiDiagonals[s.AntiDiagonal()]
	}

	for s1 := square.Square(0); s1 < square.N; s1++ {
		for s2 := square.Square(0); s2 < square.N; s2++ {
			if s1 == s2 {
				continue
			}

			var mask bitboard.Board
			switch {
			case s1.SameFile(s2):
				mask = bitboard.Files[s1.File()]
			case s1.SameRank(s2):
				mask = bitboard.Ranks[s1.Rank()]
			case s1.Diagonal() == s2.Diagonal():
				mask = bitboard.Diagonals[s1.Diagonal()]
			case s1.AntiDiagonal() == s2.AntiDiagonal():
				mask = bitboard.AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue // not collinear: Between stays Empty
			}

			occ := bitboard.Squares[s1] | bitboard.Squares[s2]
			Between[s1][s2] = bitboard.Hyperbola(s1, occ, mask) & bitboard.Hyperbola(s2, occ, mask)
		}
	}
}
