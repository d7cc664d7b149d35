package position

import (
	"github.com/ecthelion/corechess/pkg/attacks"
	"github.com/ecthelion/corechess/pkg/bitboard"
	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
)

// promotionPieceTypes maps move.Move.PromotionIndex()'s 0..3 range to the
// promoted piece type, mirroring the order move.go documents for
// LongAlgebraic's suffix table.
var promotionPieceTypes = [4]piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen}

// MakeMove plays m against the position, pushing a history entry that
// TakeMove can later use to reverse it exactly, and returns whether the
// resulting position is Legal for the side that just moved (spec.md
// §4.3). An Illegal verdict still leaves the move applied and the side to
// move flipped: the caller must call TakeMove to undo it, per spec.md's
// "illegal moves are still reversible" contract. m is trusted to be one
// this position's move generator actually produced; MakeMove does not
// validate that from/to/type are internally consistent with the board.
func (p *Position) MakeMove(m move.Move) Legality {
	us := p.State.SideToMove
	them := us.Other()
	from := m.Source()
	to := m.Target()
	mover := p.Board.At(from)
	t := m.MoveType()

	var captured piece.Piece
	epCapSq := square.None
	switch {
	case t == move.EnPassant:
		if us == piece.White {
			epCapSq = to.Down()
		} else {
			epCapSq = to.Up()
		}
		captured = p.Board.At(epCapSq)
	case m.IsCapture():
		captured = p.Board.At(to)
	}

	p.pushHistory(p.State, m, captured)

	if us == piece.Black {
		p.State.FullMoveNumber++
	}
	p.State.HalfMoveClock++
	if m.IsCapture() || mover.Is(piece.Pawn) {
		p.State.DrawClock = 0
	} else {
		p.State.DrawClock++
	}

	switch t {
	case move.Quiet, move.DoublePawn:
		p.movePiece(from, to, mover)

	case move.Capture:
		p.removePiece(to)
		p.movePiece(from, to, mover)

	case move.EnPassant:
		p.removePiece(epCapSq)
		p.movePiece(from, to, mover)

	case move.KingCastle, move.QueenCastle:
		p.movePiece(from, to, mover)
		rm := castling.RookMoves[to]
		p.movePiece(rm.From, rm.To, rm.Piece)

	case move.PromoteKnight, move.PromoteBishop, move.PromoteRook, move.PromoteQueen:
		p.removePiece(from)
		p.placePiece(to, piece.New(promotionPieceTypes[m.PromotionIndex()], us))

	default: // the four promote-capture variants
		p.removePiece(to)
		p.removePiece(from)
		p.placePiece(to, piece.New(promotionPieceTypes[m.PromotionIndex()], us))
	}

	if t == move.DoublePawn {
		p.setEnPassant(square.Square((int(from) + int(to)) / 2))
	} else {
		p.setEnPassant(square.None)
	}

	newRights := p.State.CastleRights
	if mover.Is(piece.King) {
		newRights = newRights.Clear(castling.KingRightsForColour(us))
	}
	if bit, ok := castling.RightsForRookSquare[from]; ok {
		newRights = newRights.Clear(bit)
	}
	if bit, ok := castling.RightsForRookSquare[to]; ok && m.IsCapture() {
		newRights = newRights.Clear(bit)
	}
	if newRights != p.State.CastleRights {
		p.setCastleRights(newRights)
	}

	verdict := Legal
	if p.Board.IsAttacked(p.Board.KingSq[us], them) {
		verdict = Illegal
	}
	if verdict == Legal && m.IsCastle() {
		cs := attacks.CastleCheckSquares[to]
		if p.Board.AreCastleSquaresAttacked(cs[:], them) {
			verdict = Illegal
		}
	}

	p.FlipSideToMove()

	return verdict
}

// TakeMove reverses the most recently played move, restoring the board and
// the GameState exactly as they were before MakeMove was called (spec.md
// §4.4). It does not recompute the Zobrist hash; GameState.Hash is
// restored verbatim from the history entry. Calling TakeMove with no move
// played is a programming-error precondition.
func (p *Position) TakeMove() {
	entry := p.popHistory()
	us := entry.State.SideToMove
	m := entry.Move
	from, to, t := m.Source(), m.Target(), m.MoveType()

	switch t {
	case move.Quiet, move.DoublePawn:
		mover := p.Board.At(to)
		p.Board.ClearSquare(to)
		p.Board.FillSquare(from, mover)

	case move.Capture:
		mover := p.Board.At(to)
		p.Board.ClearSquare(to)
		p.Board.FillSquare(from, mover)
		p.Board.FillSquare(to, entry.Captured)

	case move.EnPassant:
		mover := p.Board.At(to)
		p.Board.ClearSquare(to)
		p.Board.FillSquare(from, mover)
		var epCapSq square.Square
		if us == piece.White {
			epCapSq = to.Down()
		} else {
			epCapSq = to.Up()
		}
		p.Board.FillSquare(epCapSq, entry.Captured)

	case move.KingCastle, move.QueenCastle:
		king := p.Board.At(to)
		p.Board.ClearSquare(to)
		p.Board.FillSquare(from, king)
		rm := castling.RookMoves[to]
		rook := p.Board.At(rm.To)
		p.Board.ClearSquare(rm.To)
		p.Board.FillSquare(rm.From, rook)

	case move.PromoteKnight, move.PromoteBishop, move.PromoteRook, move.PromoteQueen:
		p.Board.ClearSquare(to)
		p.Board.FillSquare(from, piece.New(piece.Pawn, us))

	default: // the four promote-capture variants
		p.Board.ClearSquare(to)
		p.Board.FillSquare(from, piece.New(piece.Pawn, us))
		p.Board.FillSquare(to, entry.Captured)
	}

	p.State = entry.State
}

// IsRepetition reports whether the current position's hash matches a
// position reached earlier within the last DrawClock plies (i.e. since
// the last capture or pawn move), scanning every second history entry so
// only positions with the same side to move are compared.
//
// History entry i stores the GameState immediately before move i+1 was
// played, which is exactly the hash of the position reached after move i
// (entry 0's state is the position before any move at all). Comparing
// the current hash against history[histLen-k] for even k therefore walks
// back over prior occurrences of the same side-to-move position.
func (p *Position) IsRepetition() bool {
	for k := 2; k <= p.State.DrawClock; k += 2 {
		idx := p.histLen - k
		if idx < 0 {
			break
		}
		if p.history[idx].State.Hash == p.State.Hash {
			return true
		}
	}
	return false
}

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves: bare kings, a lone
// minor piece against a bare king, or single bishops on both sides
// standing on squares of the same colour. This is a supplemented draw condition beyond
// spec.md's explicit scope, following the common over-the-board rule
// rather than the stricter FIDE dead-position definition.
func (p *Position) IsInsufficientMaterial() bool {
	b := &p.Board
	heavy := b.Pawns(piece.White) | b.Pawns(piece.Black) |
		b.Rooks(piece.White) | b.Rooks(piece.Black) |
		b.Queens(piece.White) | b.Queens(piece.Black)
	if heavy != bitboard.Empty {
		return false
	}

	wn, wb := b.Knights(piece.White).Count(), b.Bishops(piece.White).Count()
	bn, bb := b.Knights(piece.Black).Count(), b.Bishops(piece.Black).Count()
	wMinors, bMinors := wn+wb, bn+bb

	switch {
	case wMinors == 0 && bMinors == 0:
		return true
	case wMinors == 1 && bMinors == 0, wMinors == 0 && bMinors == 1:
		return true
	case wn == 0 && bn == 0 && wb == 1 && bb == 1:
		wSq := b.Bishops(piece.White).FirstOne()
		bSq := b.Bishops(piece.Black).FirstOne()
		wDark := (int(wSq.File())+int(wSq.Rank()))%2
		bDark := (int(bSq.File())+int(bSq.Rank()))%2
		return wDark == bDark
	default:
		return false
	}
}
