// Package castling implements the four-bit castling permission set and
// the rook-movement table associated with each castling move.
package castling

import (
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
)

// Rights is a four-bit set of castling permissions.
type Rights uint8

// the individual permission bits, and useful unions of them
const (
	WhiteKing Rights = 1 << iota
	WhiteQueen
	BlackKing
	BlackQueen

	None Rights = 0

	White Rights = WhiteKing | WhiteQueen
	Black Rights = BlackKing | BlackQueen

	Kingside  Rights = WhiteKing | BlackKing
	Queenside Rights = WhiteQueen | BlackQueen

	All Rights = White | Black

	// N is the number of distinct Rights values (2^4).
	N = 16
)

// NewRights parses a castling-rights field from a FEN string, e.g. "KQkq".
func NewRights(s string) Rights {
	var r Rights
	if s == "-" {
		return None
	}
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKing
		case 'Q':
			r |= WhiteQueen
		case 'k':
			r |= BlackKing
		case 'q':
			r |= BlackQueen
		}
	}
	return r
}

// String renders the rights in FEN order, "-" if none are set.
func (r Rights) String() string {
	var s string
	if r&WhiteKing != 0 {
		s += "K"
	}
	if r&WhiteQueen != 0 {
		s += "Q"
	}
	if r&BlackKing != 0 {
		s += "k"
	}
	if r&BlackQueen != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Clear returns r with the given permissions removed.
func (r Rights) Clear(bits Rights) Rights {
	return r &^ bits
}

// ClearColour returns r with both of the given colour's rights removed.
func (r Rights) ClearColour(c piece.Colour) Rights {
	if c == piece.White {
		return r.Clear(White)
	}
	return r.Clear(Black)
}

// Has reports whether all of the given permission bits are set.
func (r Rights) Has(bits Rights) bool {
	return r&bits == bits
}

// RookMove describes the rook relocation accompanying a castling move.
type RookMove struct {
	From, To square.Square
	Piece    piece.Piece
}

// RookMoves is indexed by the king's destination square during castling
// (e.g. square.G1 for White kingside) and gives the matching rook move.
var RookMoves = map[square.Square]RookMove{
	square.G1: {From: square.H1, To: square.F1, Piece: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Piece: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Piece: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Piece: piece.BlackRook},
}

// RightsForRookSquare maps a rook's home square to the single permission
// bit that must be cleared when a piece leaves from, or captures on,
// that square. Used both for a rook moving away from its corner and for
// an enemy capture landing on an enemy rook's home corner (spec.md design
// note: "castling rights mutation is non-local").
var RightsForRookSquare = map[square.Square]Rights{
	square.H1: WhiteKing,
	square.A1: WhiteQueen,
	square.H8: BlackKing,
	square.A8: BlackQueen,
}

// KingRightsForColour maps a colour to the rights bits cleared when that
// colour's king moves.
func KingRightsForColour(c piece.Colour) Rights {
	if c == piece.White {
		return White
	}
	return Black
}
