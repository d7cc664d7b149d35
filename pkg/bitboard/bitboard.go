// Package bitboard implements a 64-bit bitboard and related operations,
// including the Hyperbola Quintessence sliding-attack algorithm.
package bitboard

import (
	"math/bits"

	"github.com/ecthelion/corechess/pkg/square"
)

// Board is a 64-bit set of squares, bit i set iff square i is occupied.
type Board uint64

// Empty and Universe are the zero and all-set bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// String renders the bitboard as an 8x8 grid of 1s and 0s, rank 8 first.
func (b Board) String() string {
	var str string
	for rank := int(square.Rank8); rank >= int(square.Rank1); rank-- {
		for file := 0; file < 8; file++ {
			s := square.New(square.File(file), square.Rank(rank))
			if b.IsSet(s) {
				str += "1"
			} else {
				str += "0"
			}
			if file != 7 {
				str += " "
			}
		}
		str += "\n"
	}
	return str
}

// North shifts the bitboard towards rank 8.
func (b Board) North() Board { return b << 8 }

// South shifts the bitboard towards rank 1.
func (b Board) South() Board { return b >> 8 }

// East shifts the bitboard towards the h-file, clipping the wraparound.
func (b Board) East() Board { return (b &^ FileH) << 1 }

// West shifts the bitboard towards the a-file, clipping the wraparound.
func (b Board) West() Board { return (b &^ FileA) >> 1 }

// Up shifts the bitboard one rank in the given colour's forward direction.
func (b Board) Up(c int) Board {
	if c == 0 { // white
		return b.North()
	}
	return b.South()
}

// Down shifts the bitboard one rank in the given colour's backward direction.
func (b Board) Down(c int) Board {
	if c == 0 { // white
		return b.South()
	}
	return b.North()
}

// Pop returns the least-set square of b and clears it.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// FirstOne returns the least-set square of b without modifying it.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Count returns the number of set squares in b.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Reverse returns b with its bit order reversed, square 63 becoming
// square 0. Used by the Hyperbola Quintessence identity.
func (b Board) Reverse() Board {
	return Board(bits.Reverse64(uint64(b)))
}

// IsSet reports whether s is set in b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set sets s in b. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears s in b. Clearing square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// Hyperbola computes the sliding-attack set from square s along mask,
// given the occupancy occ, using the o-2s Hyperbola Quintessence identity.
// https://www.chessprogramming.org/Hyperbola_Quintessence
func Hyperbola(s square.Square, occ, mask Board) Board {
	r := Squares[s]
	o := occ & mask
	return ((o - 2*r) ^ (o.Reverse()-2*r.Reverse()).Reverse()) & mask
}

// Squares holds the singleton bitboard for every square.
var Squares [square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = Board(1) << uint(s)
	}
}
