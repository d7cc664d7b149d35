// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares use the little-endian rank-file mapping: index = rank*8 + file,
// where rank 0 is White's first rank and file 0 is the a-file. This is
// the numbering spec.md's data model is built on, distinct from the
// big-endian rank-file mapping some engines in the wild use.
package square

import "fmt"

// Square represents a square on a chessboard.
type Square int8

// None represents the absence of a square, e.g. a board with no
// en-passant target.
const None Square = -1

// constants representing every square on the board
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// N is the number of squares on a chessboard.
const N = 64

// New creates a Square from the given file and rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// NewFromString parses a square from its algebraic identifier, e.g. "e4".
// The null square is represented by "-".
func NewFromString(id string) Square {
	if id == "-" {
		return None
	}
	if len(id) != 2 {
		panic(fmt.Sprintf("square.NewFromString: invalid square id %q", id))
	}
	return New(FileFrom(id[0:1]), RankFrom(id[1:2]))
}

// String converts a square into its algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

// SameRank reports whether the two squares share a rank.
func (s Square) SameRank(o Square) bool {
	return s.Rank() == o.Rank()
}

// SameFile reports whether the two squares share a file.
func (s Square) SameFile(o Square) bool {
	return s.File() == o.File()
}

// Diagonal returns the a1-h8 diagonal index of the given square, in 0..14.
func (s Square) Diagonal() Diagonal {
	return Diagonal(s.File()) - Diagonal(s.Rank()) + 7
}

// AntiDiagonal returns the a8-h1 diagonal index of the given square, in 0..14.
func (s Square) AntiDiagonal() AntiDiagonal {
	return AntiDiagonal(s.File()) + AntiDiagonal(s.Rank())
}

// Diagonal identifies one of the 15 a1-h8-direction diagonals.
type Diagonal int8

// AntiDiagonal identifies one of the 15 a8-h1-direction diagonals.
type AntiDiagonal int8

// NDiagonals is the number of diagonals in either direction.
const NDiagonals = 15

// Up returns the square one rank towards rank 8 from s, or None if s is
// already on rank 8.
func (s Square) Up() Square {
	if s.Rank() == Rank8 {
		return None
	}
	return s + 8
}

// Down returns the square one rank towards rank 1 from s, or None if s is
// already on rank 1.
func (s Square) Down() Square {
	if s.Rank() == Rank1 {
		return None
	}
	return s - 8
}

// UpN returns the square n ranks towards rank 8 from s, or None if that
// would leave the board.
func (s Square) UpN(n int) Square {
	r := int(s.Rank()) + n
	if r < 0 || r > 7 {
		return None
	}
	return New(s.File(), Rank(r))
}

// DownN returns the square n ranks towards rank 1 from s, or None if that
// would leave the board.
func (s Square) DownN(n int) Square {
	return s.UpN(-n)
}
