// Package movegen implements the pseudo-legal move generator of spec.md
// §4.2: it enumerates every move a piece could make by its movement
// pattern alone, without regard to whether the move leaves the mover's
// own king attacked. Legality is decided later, by position.Position's
// MakeMove oracle.
package movegen

import (
	"strings"

	"github.com/ecthelion/corechess/pkg/attacks"
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/position"
	"github.com/ecthelion/corechess/pkg/square"
)

// Capacity is the fixed size of a List's backing array. No legal chess
// position has anywhere near this many pseudo-legal moves; exceeding it
// indicates a corrupt position and is a programming error, not a
// recoverable condition.
const Capacity = 256

// List is a fixed-capacity, allocation-free collection of moves, filled
// in by Generate.
type List struct {
	moves [Capacity]move.Move
	len   int
}

// Add appends m to the list. Panics if the list is already at Capacity.
func (l *List) Add(m move.Move) {
	if l.len >= Capacity {
		panic("movegen.List: capacity exceeded")
	}
	l.moves[l.len] = m
	l.len++
}

// Len returns the number of moves currently in the list.
func (l *List) Len() int { return l.len }

// At returns the i'th move in the list.
func (l *List) At(i int) move.Move { return l.moves[i] }

// Moves returns the populated prefix of the list's backing array. The
// slice aliases the List and is only valid until the next Add.
func (l *List) Moves() []move.Move { return l.moves[:l.len] }

// String renders one move per line using move.Move's own debug format,
// a debug-tooling aid for inspecting a generated list at a REPL or in
// test failure output.
func (l *List) String() string {
	var sb strings.Builder
	for i := 0; i < l.len; i++ {
		sb.WriteString(l.moves[i].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Generate returns every pseudo-legal move available to the side to move
// in pos: every pawn push/capture/promotion/en-passant, every leaper and
// slider move, and every castle whose king-rook traversal path is empty.
// Whether a castle crosses an attacked square, and whether any move
// leaves the mover's king attacked, is left for MakeMove to decide.
func Generate(pos *position.Position) List {
	var list List

	us := pos.State.SideToMove
	them := us.Other()
	b := &pos.Board
	own := b.ColourBB[us]
	enemy := b.ColourBB[them]
	occ := own | enemy

	generatePawnMoves(&list, b, us, pos.State.EnPassant)

	for knights := b.Knights(us); knights != bitboard.Empty; {
		s := knights.Pop()
		addFromTargets(&list, s, attacks.Knight[s], own, enemy)
	}

	for bishops := b.Bishops(us); bishops != bitboard.Empty; {
		s := bishops.Pop()
		addFromTargets(&list, s, attacks.Bishop(s, occ), own, enemy)
	}

	for rooks := b.Rooks(us); rooks != bitboard.Empty; {
		s := rooks.Pop()
		addFromTargets(&list, s, attacks.Rook(s, occ), own, enemy)
	}

	for queens := b.Queens(us); queens != bitboard.Empty; {
		s := queens.Pop()
		addFromTargets(&list, s, attacks.Queen(s, occ), own, enemy)
	}

	kingSq := b.KingSq[us]
	addFromTargets(&list, kingSq, attacks.King[kingSq], own, enemy)

	generateCastling(&list, occ, us, pos.State.CastleRights)

	return list
}

// addFromTargets splits a leaper/slider's target bitboard into quiet moves
// (empty squares) and captures (enemy-occupied squares) and adds both to
// list. Squares in targets occupied by own pieces are dropped.
func addFromTargets(list *List, src square.Square, targets, own, enemy bitboard.Board) {
	for quiet := targets &^ (own | enemy); quiet != bitboard.Empty; {
		list.Add(move.New(src, quiet.Pop(), move.Quiet))
	}
	for capture := targets & enemy; capture != bitboard.Empty; {
		list.Add(move.New(src, capture.Pop(), move.Capture))
	}
}

// generateCastling emits the up-to-two castling moves available to us
// whose squares between king and rook are empty, per spec.md §4.2's
// "castling move generation checks only rights and empty squares" design
// note; whether the king's path is attacked is a make_move concern.
func generateCastling(list *List, occ bitboard.Board, us piece.Colour, rights castling.Rights) {
	if us == piece.White {
		if rights.Has(castling.WhiteKing) && attacks.CastleTraversal[square.G1]&occ == bitboard.Empty {
			list.Add(move.New(square.E1, square.G1, move.KingCastle))
		}
		if rights.Has(castling.WhiteQueen) && attacks.CastleTraversal[square.C1]&occ == bitboard.Empty {
			list.Add(move.New(square.E1, square.C1, move.QueenCastle))
		}
		return
	}

	if rights.Has(castling.BlackKing) && attacks.CastleTraversal[square.G8]&occ == bitboard.Empty {
		list.Add(move.New(square.E8, square.G8, move.KingCastle))
	}
	if rights.Has(castling.BlackQueen) && attacks.CastleTraversal[square.C8]&occ == bitboard.Empty {
		list.Add(move.New(square.E8, square.C8, move.QueenCastle))
	}
}
