package position

import (
	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
	"github.com/ecthelion/corechess/pkg/zobrist"
)

// GameState is the reversible slice of a Position that sits alongside the
// Board (spec.md §3). It is a plain value aggregate so that history
// entries are cheap copies and take_move is a single assignment.
type GameState struct {
	SideToMove     piece.Colour
	EnPassant      square.Square
	CastleRights   castling.Rights
	HalfMoveClock  int // plys since game start
	FullMoveNumber int
	DrawClock      int // plys since last capture or pawn move
	Hash           zobrist.Key
}

// HistoryCapacity is the fixed depth of the reversible-move stack.
const HistoryCapacity = 1024

// HistoryEntry records, for one played move, everything needed to reverse
// it: the GameState immediately before the move, the move itself, and the
// piece it captured (piece.NoPiece if none).
type HistoryEntry struct {
	State    GameState
	Move     move.Move
	Captured piece.Piece
}
