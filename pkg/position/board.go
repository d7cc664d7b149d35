// Package position implements the Board/GameState data model and the
// make_move/take_move reversible-move protocol of spec.md §3–§4.3–§4.5.
package position

import (
	"fmt"

	"github.com/ecthelion/corechess/pkg/attacks"
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
	"github.com/ecthelion/corechess/pkg/zobrist"
)

// Board holds a chess piece arrangement: the twelve piece bitboards, the
// two colour-occupancy unions, an 8x8 mailbox, running material totals,
// and a cached king square per colour (spec.md §3).
type Board struct {
	PieceBB [piece.NType][piece.NColour]bitboard.Board
	ColourBB [piece.NColour]bitboard.Board

	Mailbox [square.N]piece.Piece

	Material [piece.NColour]int
	KingSq   [piece.NColour]square.Square
}

// NewBoard returns an empty board (no pieces placed).
func NewBoard() Board {
	var b Board
	for s := range b.Mailbox {
		b.Mailbox[s] = piece.NoPiece
	}
	return b
}

// Occupied returns the union of both colours' occupancy.
func (b *Board) Occupied() bitboard.Board {
	return b.ColourBB[piece.White] | b.ColourBB[piece.Black]
}

// At returns the piece occupying s, or piece.NoPiece if empty.
func (b *Board) At(s square.Square) piece.Piece {
	return b.Mailbox[s]
}

// FillSquare places p on s, updating every derived board field
// (invariants P1-P3): the piece bitboard, the colour union, the mailbox, the material
// total, and the king cache if p is a king. It does not touch the Zobrist
// hash; callers that maintain an incremental hash must XOR it themselves,
// since Board has no hash of its own (the hash lives on GameState).
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Colour()
	t := p.Type()

	b.PieceBB[t][c].Set(s)
	b.ColourBB[c].Set(s)
	b.Mailbox[s] = p
	b.Material[c] += p.Value()

	if t == piece.King {
		b.KingSq[c] = s
	}
}

// ClearSquare removes whatever piece occupies s. It is a no-op if s is
// already empty. Like FillSquare, it does not touch the Zobrist hash.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Mailbox[s]
	if p == piece.NoPiece {
		return
	}

	c := p.Colour()
	t := p.Type()

	b.PieceBB[t][c].Unset(s)
	b.ColourBB[c].Unset(s)
	b.Mailbox[s] = piece.NoPiece
	b.Material[c] -= p.Value()
}

// Pawns, Knights, Bishops, Rooks, Queens, and King return the bitboard of
// a single piece type and colour.
func (b *Board) Pawns(c piece.Colour) bitboard.Board   { return b.PieceBB[piece.Pawn][c] }
func (b *Board) Knights(c piece.Colour) bitboard.Board { return b.PieceBB[piece.Knight][c] }
func (b *Board) Bishops(c piece.Colour) bitboard.Board { return b.PieceBB[piece.Bishop][c] }
func (b *Board) Rooks(c piece.Colour) bitboard.Board   { return b.PieceBB[piece.Rook][c] }
func (b *Board) Queens(c piece.Colour) bitboard.Board  { return b.PieceBB[piece.Queen][c] }
func (b *Board) King(c piece.Colour) bitboard.Board     { return b.PieceBB[piece.King][c] }

// IsAttacked implements spec.md §4.1's attack checker: it reports whether
// s is attacked by any piece of colour attacker, as a short-circuit OR of
// the five piece-type checks, each cheaply rejecting the whole piece set
// via a ray-mask test before walking individual attacker squares.
func (b *Board) IsAttacked(s square.Square, attacker piece.Colour) bool {
	if attacks.Pawn[attacker.Other()][s]&b.Pawns(attacker) != bitboard.Empty {
		return true
	}

	if attacks.Knight[s]&b.Knights(attacker) != bitboard.Empty {
		return true
	}

	if attacks.King[s]&b.King(attacker) != bitboard.Empty {
		return true
	}

	occ := b.Occupied()

	if rooks := (b.Rooks(attacker) | b.Queens(attacker)); rooks&attacks.RookRayMask[s] != bitboard.Empty {
		for r := rooks & attacks.RookRayMask[s]; r != bitboard.Empty; {
			from := r.Pop()
			if attacks.Between[from][s]&occ == bitboard.Empty {
				return true
			}
		}
	}

	if bishops := (b.Bishops(attacker) | b.Queens(attacker)); bishops&attacks.BishopRayMask[s] != bitboard.Empty {
		for bs := bishops & attacks.BishopRayMask[s]; bs != bitboard.Empty; {
			from := bs.Pop()
			if attacks.Between[from][s]&occ == bitboard.Empty {
				return true
			}
		}
	}

	return false
}

// AreCastleSquaresAttacked reports whether any of the given squares is
// attacked by attacker, per spec.md §4.1's castling-gate contract.
func (b *Board) AreCastleSquaresAttacked(squares []square.Square, attacker piece.Colour) bool {
	for _, s := range squares {
		if b.IsAttacked(s, attacker) {
			return true
		}
	}
	return false
}

// String renders the board as an 8x8 ASCII diagram, rank 8 first, with
// file labels, following the teacher's mailbox.Board.String convention.
func (b *Board) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"
	for rank := int(square.Rank8); rank >= int(square.Rank1); rank-- {
		s += "| "
		for file := 0; file < 8; file++ {
			sq := square.New(square.File(file), square.Rank(rank))
			s += b.Mailbox[sq].String() + " | "
		}
		s += fmt.Sprintf("%d\n", rank+1)
		s += "+---+---+---+---+---+---+---+---+\n"
	}
	s += "  a   b   c   d   e   f   g   h\n"
	return s
}

// hashOf recomputes a position_hash from scratch given the board and the
// non-board GameState fields, per spec.md §4.5's testable reconstruction
// property (P5). It backs Position.RecomputeHash.
func hashOf(b *Board, sideToMove piece.Colour, ep square.Square, cr castling.Rights) zobrist.Key {
	var h zobrist.Key

	for s := square.Square(0); s < square.N; s++ {
		if p := b.Mailbox[s]; p != piece.NoPiece {
			h ^= zobrist.PieceSquare[p][s]
		}
	}

	if sideToMove == piece.Black {
		h ^= zobrist.SideToMove
	}

	h ^= zobrist.Castling[cr]

	if ep != square.None {
		h ^= zobrist.EnPassant[ep.File()]
	}

	return h
}
