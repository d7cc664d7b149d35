package position

import (
	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
	"github.com/ecthelion/corechess/pkg/zobrist"
)

// Legality is the verdict make_move returns after applying a move.
type Legality int

const (
	// Legal means the move did not leave the mover's own king attacked
	// (and, for castles, did not cross an attacked square).
	Legal Legality = iota
	// Illegal means the move must be reversed with TakeMove by the caller.
	Illegal
)

// String renders the verdict for debug output.
func (l Legality) String() string {
	if l == Legal {
		return "Legal"
	}
	return "Illegal"
}

// Position owns a Board and a GameState and maintains a bounded history
// stack across calls to MakeMove/TakeMove (spec.md §3, §4.3-§4.5).
type Position struct {
	Board Board
	State GameState

	history [HistoryCapacity]HistoryEntry
	histLen int
}

// New creates a Position from an already-populated board and initial
// game state, as produced by the FEN-ingestion collaborator (pkg/fen).
// Exactly one king per side is asserted, per spec.md §7.
func New(b Board, s GameState) *Position {
	if b.PieceBB[piece.King][piece.White].Count() != 1 ||
		b.PieceBB[piece.King][piece.Black].Count() != 1 {
		panic("position.New: exactly one king per side is required")
	}
	return &Position{Board: b, State: s}
}

// PositionHash returns the incrementally maintained Zobrist hash.
func (p *Position) PositionHash() zobrist.Key {
	return p.State.Hash
}

// RecomputeHash reconstructs the Zobrist hash from scratch from the
// current board and game state, per spec.md §4.5 / P5. It is a
// diagnostic/testing aid, not used on the hot path.
func (p *Position) RecomputeHash() zobrist.Key {
	return hashOf(&p.Board, p.State.SideToMove, p.State.EnPassant, p.State.CastleRights)
}

// IsKingSqAttacked reports whether the side to move's own king square is
// currently attacked by the opponent.
func (p *Position) IsKingSqAttacked() bool {
	us := p.State.SideToMove
	return p.Board.IsAttacked(p.Board.KingSq[us], us.Other())
}

// FlipSideToMove toggles the side to move and its Zobrist contribution
// without otherwise mutating the position. Exposed for callers (e.g. null
// move pruning in a search layer) that need to flip the turn without
// playing a move; MakeMove calls it internally, while TakeMove restores
// the side to move from the history entry instead.
func (p *Position) FlipSideToMove() {
	p.State.SideToMove = p.State.SideToMove.Other()
	p.State.Hash ^= zobrist.SideToMove
}

// movePiece relocates pc from one square to another, maintaining the
// board and the incremental hash.
func (p *Position) movePiece(from, to square.Square, pc piece.Piece) {
	p.Board.ClearSquare(from)
	p.Board.FillSquare(to, pc)
	p.State.Hash ^= zobrist.PieceSquare[pc][from] ^ zobrist.PieceSquare[pc][to]
}

// removePiece clears s, maintaining the incremental hash. s must be occupied.
func (p *Position) removePiece(s square.Square) piece.Piece {
	pc := p.Board.At(s)
	p.Board.ClearSquare(s)
	p.State.Hash ^= zobrist.PieceSquare[pc][s]
	return pc
}

// placePiece fills s with pc, maintaining the incremental hash. s must be empty.
func (p *Position) placePiece(s square.Square, pc piece.Piece) {
	p.Board.FillSquare(s, pc)
	p.State.Hash ^= zobrist.PieceSquare[pc][s]
}

// setEnPassant updates the en-passant target square, maintaining the
// incremental hash by XORing out the old file key (if any) and XORing in
// the new one (if any).
func (p *Position) setEnPassant(s square.Square) {
	if p.State.EnPassant != square.None {
		p.State.Hash ^= zobrist.EnPassant[p.State.EnPassant.File()]
	}
	p.State.EnPassant = s
	if s != square.None {
		p.State.Hash ^= zobrist.EnPassant[s.File()]
	}
}

// setCastleRights updates the castling rights, maintaining the
// incremental hash by XORing out the old composite key and XORing in the
// new one (the Zobrist bank keys whole Rights values, not individual bits).
func (p *Position) setCastleRights(r castling.Rights) {
	p.State.Hash ^= zobrist.Castling[p.State.CastleRights]
	p.State.CastleRights = r
	p.State.Hash ^= zobrist.Castling[r]
}

// pushHistory appends an entry to the history stack. Overflowing the
// fixed 1024-entry capacity is a programming-error precondition
// (spec.md §7.2): it indicates a search running deeper than any real
// chess game and is not recoverable.
func (p *Position) pushHistory(state GameState, m move.Move, captured piece.Piece) {
	if p.histLen >= HistoryCapacity {
		panic("position.Position: history stack overflow")
	}
	p.history[p.histLen] = HistoryEntry{State: state, Move: m, Captured: captured}
	p.histLen++
}

// popHistory pops and returns the most recent history entry. Popping an
// empty stack is a programming-error precondition.
func (p *Position) popHistory() HistoryEntry {
	if p.histLen == 0 {
		panic("position.Position: history stack underflow")
	}
	p.histLen--
	return p.history[p.histLen]
}

// HistoryLen returns the number of moves currently on the history stack.
func (p *Position) HistoryLen() int {
	return p.histLen
}

// String renders the board diagram, for debug output. The Zobrist hash
// is not included.
func (p *Position) String() string {
	return p.Board.String()
}
