// Package move declares the packed Move representation and its move-type
// taxonomy, per spec.md's data model.
package move

import (
	"fmt"

	"github.com/ecthelion/corechess/pkg/square"
)

// Move is a packed 32-bit chess move: a 6-bit source square, a 6-bit
// target square, a 4-bit move type, and a 16-bit signed move-ordering
// score, laid out LSB to MSB in that order.
type Move uint32

// Null represents the absence of a move.
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	typeWidth   = 4
	scoreWidth  = 16

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	typeOffset   = targetOffset + targetWidth
	scoreOffset  = typeOffset + typeWidth

	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	typeMask   = (1 << typeWidth) - 1
	scoreMask  = (1 << scoreWidth) - 1
)

// Type identifies the kind of a move. Encoded in 4 bits.
type Type uint8

// the fourteen move types
const (
	Quiet Type = iota
	Capture
	DoublePawn
	KingCastle
	QueenCastle
	EnPassant

	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen

	PromoteKnightCapture
	PromoteBishopCapture
	PromoteRookCapture
	PromoteQueenCapture
)

// String names a move type, used in debug rendering.
func (t Type) String() string {
	switch t {
	case Quiet:
		return "Quiet"
	case Capture:
		return "Capture"
	case DoublePawn:
		return "DoublePawn"
	case KingCastle:
		return "KingCastle"
	case QueenCastle:
		return "QueenCastle"
	case EnPassant:
		return "EnPassant"
	case PromoteKnight:
		return "PromoteKnight"
	case PromoteBishop:
		return "PromoteBishop"
	case PromoteRook:
		return "PromoteRook"
	case PromoteQueen:
		return "PromoteQueen"
	case PromoteKnightCapture:
		return "PromoteKnightCapture"
	case PromoteBishopCapture:
		return "PromoteBishopCapture"
	case PromoteRookCapture:
		return "PromoteRookCapture"
	case PromoteQueenCapture:
		return "PromoteQueenCapture"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// New creates a Move with the given source, target, and type, and a zero
// move-ordering score.
func New(from, to square.Square, t Type) Move {
	m := Move(from)&sourceMask<<sourceOffset |
		Move(to)&targetMask<<targetOffset |
		Move(t)&typeMask<<typeOffset
	return m
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the move's target square.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// MoveType returns the move's type.
func (m Move) MoveType() Type {
	return Type((m >> typeOffset) & typeMask)
}

// Score returns the move's signed 16-bit ordering score.
func (m Move) Score() int16 {
	return int16(uint16((m >> scoreOffset) & scoreMask))
}

// WithScore returns m with its ordering score replaced.
func (m Move) WithScore(score int16) Move {
	m &^= Move(scoreMask) << scoreOffset
	return m | (Move(uint16(score))&scoreMask)<<scoreOffset
}

// promotionTypeIndex maps each promotion move type to the 0..3
// Knight/Bishop/Rook/Queen index that PromotionIndex returns.
var promotionTypeIndex = map[Type]int{
	PromoteKnight:        0,
	PromoteKnightCapture: 0,
	PromoteBishop:        1,
	PromoteBishopCapture: 1,
	PromoteRook:          2,
	PromoteRookCapture:   2,
	PromoteQueen:         3,
	PromoteQueenCapture:  3,
}

// PromotionIndex returns 0..3 for Knight/Bishop/Rook/Queen promotions,
// used to index parallel piece-type tables. Panics if m is not a promotion.
func (m Move) PromotionIndex() int {
	idx, ok := promotionTypeIndex[m.MoveType()]
	if !ok {
		panic("move.Move.PromotionIndex: not a promotion move")
	}
	return idx
}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and promotion-capture variants.
func (m Move) IsCapture() bool {
	switch m.MoveType() {
	case Capture, EnPassant,
		PromoteKnightCapture, PromoteBishopCapture, PromoteRookCapture, PromoteQueenCapture:
		return true
	default:
		return false
	}
}

// IsPromote reports whether the move promotes a pawn.
func (m Move) IsPromote() bool {
	switch m.MoveType() {
	case PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen,
		PromoteKnightCapture, PromoteBishopCapture, PromoteRookCapture, PromoteQueenCapture:
		return true
	default:
		return false
	}
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	t := m.MoveType()
	return t == KingCastle || t == QueenCastle
}

// IsKingCastle reports whether the move is a kingside castle.
func (m Move) IsKingCastle() bool {
	return m.MoveType() == KingCastle
}

// IsQueenCastle reports whether the move is a queenside castle.
func (m Move) IsQueenCastle() bool {
	return m.MoveType() == QueenCastle
}

// IsDoublePawn reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawn() bool {
	return m.MoveType() == DoublePawn
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.MoveType() == EnPassant
}

// String renders the move in the debug format specified by spec.md §6:
// "<from_file><from_rank> -> <to_file><to_rank> : <kind>".
func (m Move) String() string {
	if m == Null {
		return "0000"
	}
	return fmt.Sprintf("%s -> %s : %s", m.Source(), m.Target(), m.MoveType())
}

// LongAlgebraic renders the move as UCI-style long algebraic notation,
// e.g. "e2e4", "e1g1", "d7d8q".
func (m Move) LongAlgebraic() string {
	if m == Null {
		return "0000"
	}
	s := m.Source().String() + m.Target().String()
	if m.IsPromote() {
		s += [...]string{"n", "b", "r", "q"}[m.PromotionIndex()]
	}
	return s
}
