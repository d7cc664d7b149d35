package attacks

import (
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/square"
)

// CastleTraversal holds, indexed by the king's destination square during
// castling, the mask of squares that must be empty for that castle to be
// attempted (the squares strictly between king and rook).
var CastleTraversal = map[square.Square]bitboard.Board{
	square.G1: bitboard.Squares[square.F1] | bitboard.Squares[square.G1],
	square.C1: bitboard.Squares[square.B1] | bitboard.Squares[square.C1] | bitboard.Squares[square.D1],
	square.G8: bitboard.Squares[square.F8] | bitboard.Squares[square.G8],
	square.C8: bitboard.Squares[square.B8] | bitboard.Squares[square.C8] | bitboard.Squares[square.D8],
}

// CastleCheckSquares holds, indexed by the king's destination square
// during castling, the three squares (start, crossed, destination) that
// must not be attacked for the castle to be legal (spec.md §4.3 step 7).
var CastleCheckSquares = map[square.Square][3]square.Square{
	square.G1: {square.E1, square.F1, square.G1},
	square.C1: {square.E1, square.D1, square.C1},
	square.G8: {square.E8, square.F8, square.G8},
	square.C8: {square.E8, square.D8, square.C8},
}
