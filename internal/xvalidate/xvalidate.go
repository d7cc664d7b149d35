// Package xvalidate cross-checks this module's legal-move generation
// against github.com/notnil/chess, an independent second implementation,
// the way the teacher's tuner/datagen pipeline already uses that same
// library to replay PGN games. xvalidate is a testing/debugging aid, not
// a runtime dependency of pkg/position or pkg/movegen.
package xvalidate

import (
	"github.com/notnil/chess"

	"github.com/ecthelion/corechess/pkg/fen"
	"github.com/ecthelion/corechess/pkg/movegen"
	"github.com/ecthelion/corechess/pkg/position"
)

// LegalMoveCount returns the number of legal moves pkg/movegen plus
// pkg/position's make_move oracle find in pos.
func LegalMoveCount(pos *position.Position) int {
	list := movegen.Generate(pos)
	count := 0
	for i := 0; i < list.Len(); i++ {
		if pos.MakeMove(list.At(i)) == position.Legal {
			count++
		}
		pos.TakeMove()
	}
	return count
}

// Mismatch describes one position where this module's legal move count
// disagreed with the oracle's.
type Mismatch struct {
	FEN       string
	Ours      int
	Reference int
}

// CompareToOracle replays every move of g move by move, starting from
// the standard starting position, and reports every ply at which this
// module's legal move count differs from chess.Game's own ValidMoves
// count.
func CompareToOracle(g *chess.Game) []Mismatch {
	var mismatches []Mismatch

	replay := chess.NewGame()
	for _, mv := range g.Moves() {
		record := replay.Position().String()
		ours := LegalMoveCount(fen.Parse(record))
		theirs := len(replay.Position().ValidMoves())
		if ours != theirs {
			mismatches = append(mismatches, Mismatch{FEN: record, Ours: ours, Reference: theirs})
		}
		if err := replay.Move(mv); err != nil {
			break
		}
	}

	return mismatches
}
