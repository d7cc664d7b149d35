package movegen

import (
	"github.com/ecthelion/corechess/pkg/attacks"
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/position"
	"github.com/ecthelion/corechess/pkg/square"
)

// generatePawnMoves emits single and double pushes, diagonal captures,
// the en-passant capture if ep is set, and all eight promotion variants
// for pawns landing on the back rank, for the side to move us.
func generatePawnMoves(list *List, b *position.Board, us piece.Colour, ep square.Square) {
	them := us.Other()
	occ := b.Occupied()
	enemy := b.ColourBB[them]

	promoRank, startRank := square.Rank8, square.Rank2
	if us == piece.Black {
		promoRank, startRank = square.Rank1, square.Rank7
	}

	for pawns := b.Pawns(us); pawns != bitboard.Empty; {
		s := pawns.Pop()

		one := forward(s, us)
		if one != square.None && !occ.IsSet(one) {
			if one.Rank() == promoRank {
				addPromotions(list, s, one, false)
			} else {
				list.Add(move.New(s, one, move.Quiet))
				if s.Rank() == startRank {
					if two := forward(one, us); two != square.None && !occ.IsSet(two) {
						list.Add(move.New(s, two, move.DoublePawn))
					}
				}
			}
		}

		for caps := attacks.Pawn[us][s] & enemy; caps != bitboard.Empty; {
			t := caps.Pop()
			if t.Rank() == promoRank {
				addPromotions(list, s, t, true)
			} else {
				list.Add(move.New(s, t, move.Capture))
			}
		}

		if ep != square.None && attacks.Pawn[us][s].IsSet(ep) {
			list.Add(move.New(s, ep, move.EnPassant))
		}
	}
}

// forward returns the square one rank ahead of s in us's pushing
// direction, or square.None if that would leave the board.
func forward(s square.Square, us piece.Colour) square.Square {
	if us == piece.White {
		return s.Up()
	}
	return s.Down()
}

// addPromotions adds the four promotion move types (knight/bishop/rook/
// queen, quiet or capture) for a pawn moving from -> to.
func addPromotions(list *List, from, to square.Square, capture bool) {
	if capture {
		list.Add(move.New(from, to, move.PromoteKnightCapture))
		list.Add(move.New(from, to, move.PromoteBishopCapture))
		list.Add(move.New(from, to, move.PromoteRookCapture))
		list.Add(move.New(from, to, move.PromoteQueenCapture))
		return
	}
	list.Add(move.New(from, to, move.PromoteKnight))
	list.Add(move.New(from, to, move.PromoteBishop))
	list.Add(move.New(from, to, move.PromoteRook))
	list.Add(move.New(from, to, move.PromoteQueen))
}
