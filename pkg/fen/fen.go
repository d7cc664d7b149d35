// Package fen ingests and produces Forsyth-Edwards Notation, the
// collaborator spec.md §9 names for constructing and serialising
// position.Position values.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/position"
	"github.com/ecthelion/corechess/pkg/square"
)

// Startpos is the standard chess starting position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse builds a Position from a FEN record. It panics on malformed
// input: FEN strings reaching this package are expected to already be
// validated by whatever produced them (a UCI "position fen" command, a
// PGN header, a test fixture), mirroring the teacher's fail-fast parsing
// of other trusted wire formats.
func Parse(fen string) *position.Position {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		panic(fmt.Sprintf("fen.Parse: malformed FEN %q", fen))
	}

	b := position.NewBoard()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		panic(fmt.Sprintf("fen.Parse: expected 8 ranks, got %d in %q", len(ranks), fen))
	}
	for i, rankStr := range ranks {
		rank := square.Rank(7 - i) // FEN lists rank 8 first
		file := square.FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += square.File(c - '0')
				continue
			}
			b.FillSquare(square.New(file, rank), piece.NewFromString(string(c)))
			file++
		}
	}

	sideToMove := piece.NewColour(fields[1])
	castleRights := castling.NewRights(fields[2])
	ep := square.NewFromString(fields[3])

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		halfmove, _ = strconv.Atoi(fields[4])
	}
	if len(fields) > 5 {
		fullmove, _ = strconv.Atoi(fields[5])
	}

	ply := (fullmove - 1) * 2
	if sideToMove == piece.Black {
		ply++
	}

	state := position.GameState{
		SideToMove:     sideToMove,
		EnPassant:      ep,
		CastleRights:   castleRights,
		HalfMoveClock:  ply,
		FullMoveNumber: fullmove,
		DrawClock:      halfmove,
	}

	pos := position.New(b, state)
	pos.State.Hash = pos.RecomputeHash()
	return pos
}

// String renders pos as a FEN record.
func String(pos *position.Position) string {
	var sb strings.Builder

	for i := 0; i < 8; i++ {
		rank := square.Rank(7 - i)
		empty := 0
		for file := square.FileA; file < square.FileN; file++ {
			p := pos.Board.At(square.New(file, rank))
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			sb.WriteByte('/')
		}
	}

	fmt.Fprintf(&sb, " %s %s %s %d %d",
		pos.State.SideToMove,
		pos.State.CastleRights,
		pos.State.EnPassant,
		pos.State.DrawClock,
		pos.State.FullMoveNumber,
	)

	return sb.String()
}
