package bitboard

import "github.com/ecthelion/corechess/pkg/square"

// file and rank bitboards, one bit set per square of that file/rank.
const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7

	Rank1 Board = 0x00000000000000ff
	Rank2 Board = Rank1 << (8 * 1)
	Rank3 Board = Rank1 << (8 * 2)
	Rank4 Board = Rank1 << (8 * 3)
	Rank5 Board = Rank1 << (8 * 4)
	Rank6 Board = Rank1 << (8 * 5)
	Rank7 Board = Rank1 << (8 * 6)
	Rank8 Board = Rank1 << (8 * 7)
)

// Files and Ranks index file/rank bitboards by square.File/square.Rank.
var (
	Files = [square.FileN]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
	Ranks = [square.RankN]Board{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
)

// Diagonals and AntiDiagonals hold, for every diagonal index (as returned
// by square.Square.Diagonal/AntiDiagonal), the bitboard of every square on
// that diagonal. Populated at init by adding each square to the diagonal
// its index names, rather than hardcoding hex literals, since the diagonal indexing is
// derived from this package's own square-numbering convention.
var (
	Diagonals     [square.NDiagonals]Board
	AntiDiagonals [square.NDiagonals]Board
)

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}

// Bishop returns the diagonal+anti-diagonal ray mask through s, excluding s.
func Bishop(s square.Square) Board {
	return (Diagonals[s.Diagonal()] | AntiDiagonals[s.AntiDiagonal()]) &^ Squares[s]
}
