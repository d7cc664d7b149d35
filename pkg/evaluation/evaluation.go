// Package evaluation scores a position's material and piece-square
// balance, the static leaf evaluator a search layer built on top of
// pkg/position would call.
package evaluation

import (
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/position"
	"github.com/ecthelion/corechess/pkg/square"
)

// Relative returns the evaluation of pos from the side-to-move's
// perspective: positive favours the side to move, negative favours the
// opponent. This is the sign convention a negamax search expects.
func Relative(pos *position.Position) int {
	score := Absolute(pos)
	if pos.State.SideToMove == piece.Black {
		return -score
	}
	return score
}

// Absolute returns the evaluation of pos from White's perspective:
// positive favours White, negative favours Black.
func Absolute(pos *position.Position) int {
	score := pos.Board.Material[piece.White] - pos.Board.Material[piece.Black]

	for t := piece.Pawn; t <= piece.King; t++ {
		for wp := pos.Board.PieceBB[t][piece.White]; wp != bitboard.Empty; {
			score += pieceSquareValue(t, piece.White, wp.Pop())
		}
		for bp := pos.Board.PieceBB[t][piece.Black]; bp != bitboard.Empty; {
			score -= pieceSquareValue(t, piece.Black, bp.Pop())
		}
	}

	return score
}

// pieceSquareValue looks up the positional bonus for a piece of type t
// and colour c standing on s, mirroring the table vertically for Black
// since the tables are written from White's rank-1-at-home perspective.
func pieceSquareValue(t piece.Type, c piece.Colour, s square.Square) int {
	idx := s
	if c == piece.Black {
		idx = square.New(s.File(), square.Rank(7-int(s.Rank())))
	}
	return pieceSquareTables[t][idx]
}
