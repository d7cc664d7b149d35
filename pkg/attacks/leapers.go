// Package attacks precomputes the occupancy mask tables of spec.md §3
// (knight/king/pawn leaper masks, in-between rays, ray-rejection masks,
// castle-traversal masks) used by position.Board's attack-detection
// oracle, and implements the sliding-piece attack generators used by the
// pseudo-legal move generator.
package attacks

import (
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
)

// Knight and King hold the destination-square set for a leaping piece on
// each square of an otherwise empty board.
var (
	Knight [square.N]bitboard.Board
	King   [square.N]bitboard.Board
)

// Pawn holds the attack set for a pawn of the given colour on each
// square, i.e. the two squares it could capture on.
var Pawn [piece.NColour][square.N]bitboard.Board

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for s := square.Square(0); s < square.N; s++ {
		file, rank := int(s.File()), int(s.Rank())

		for _, d := range knightDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				Knight[s].Set(square.New(square.File(f), square.Rank(r)))
			}
		}

		for _, d := range kingDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				King[s].Set(square.New(square.File(f), square.Rank(r)))
			}
		}

		if file > 0 && rank < 7 {
			Pawn[piece.White][s].Set(square.New(square.File(file-1), square.Rank(rank+1)))
		}
		if file < 7 && rank < 7 {
			Pawn[piece.White][s].Set(square.New(square.File(file+1), square.Rank(rank+1)))
		}
		if file > 0 && rank > 0 {
			Pawn[piece.Black][s].Set(square.New(square.File(file-1), square.Rank(rank-1)))
		}
		if file < 7 && rank > 0 {
			Pawn[piece.Black][s].Set(square.New(square.File(file+1), square.Rank(rank-1)))
		}
	}
}
