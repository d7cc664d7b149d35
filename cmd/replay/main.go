// Command replay drives a PGN game through pkg/position's make_move,
// move by move, re-deriving each position from this module's own
// representation rather than trusting the PGN's position comments. It
// uses github.com/notnil/chess purely as a PGN reader (the same library
// and idiom the teacher's tuner/datagen pipeline uses to replay games),
// translating each of its moves into this module's square numbering and
// move encoding before playing it. With -watch it renders the board in a
// terminal UI after every move.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/notnil/chess"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/ecthelion/corechess/pkg/fen"
	"github.com/ecthelion/corechess/pkg/move"
	"github.com/ecthelion/corechess/pkg/movegen"
	"github.com/ecthelion/corechess/pkg/position"
	"github.com/ecthelion/corechess/pkg/square"
)

func main() {
	pgnPath := flag.String("pgn", "", "path to a PGN file (required)")
	watch := flag.Bool("watch", false, "render the board in a terminal UI after every move")
	delay := flag.Duration("delay", 400*time.Millisecond, "pause between moves when -watch is set")
	flag.Parse()

	if *pgnPath == "" {
		log.Fatal("replay: -pgn is required")
	}

	f, err := os.Open(*pgnPath)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	defer f.Close()

	scanner := chess.NewScanner(f)
	if !scanner.Scan() {
		log.Fatal("replay: no game found in PGN file")
	}
	game := scanner.Next()

	var board *widgets.Paragraph
	if *watch {
		if err := ui.Init(); err != nil {
			log.Fatalf("replay: initialising terminal UI: %v", err)
		}
		defer ui.Close()

		board = widgets.NewParagraph()
		board.Title = "replay"
		board.SetRect(0, 0, 40, 12)
	}

	pos := fen.Parse(fen.Startpos)

	for i, pgnMove := range game.Moves() {
		m := translateMove(pos, pgnMove)

		verdict := pos.MakeMove(m)
		if verdict != position.Legal {
			pos.TakeMove()
			log.Fatalf("replay: move %d (%s) was illegal against this module's own rules", i+1, m.LongAlgebraic())
		}

		if *watch {
			board.Text = pos.Board.String()
			ui.Render(board)
			time.Sleep(*delay)
		} else {
			fmt.Printf("%3d. %s\n", i+1, m.LongAlgebraic())
		}
	}

	fmt.Println(fen.String(pos))
}

// translateMove converts a notnil/chess move, played against pos, into
// this module's packed move.Move, re-deriving the move type from the
// board rather than trusting the PGN annotation. chess.Square numbers
// squares a1=0..h8=63 (rank 1 first), the same as this module, so file
// and rank carry over unchanged.
func translateMove(pos *position.Position, pgnMove *chess.Move) move.Move {
	from := translateSquare(pgnMove.S1())
	to := translateSquare(pgnMove.S2())

	for _, candidate := range legalMovesBetween(pos, from, to) {
		if matchesPromotion(candidate, pgnMove.Promo()) {
			return candidate
		}
	}

	log.Fatalf("replay: no legal move found for %s-%s", from, to)
	return move.Null
}

func translateSquare(s chess.Square) square.Square {
	file := square.File(int(s) % 8)
	rank := square.Rank(int(s) / 8)
	return square.New(file, rank)
}

// legalMovesBetween returns every pseudo-legal move this module
// generates from from to to; a PGN move disambiguates the rest (capture,
// castle, en passant, promotion) structurally, not by type tag.
func legalMovesBetween(pos *position.Position, from, to square.Square) []move.Move {
	list := movegen.Generate(pos)
	var matches []move.Move
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Source() == from && m.Target() == to {
			matches = append(matches, m)
		}
	}
	return matches
}

func matchesPromotion(m move.Move, promo chess.PieceType) bool {
	if !m.IsPromote() {
		return promo == chess.NoPieceType
	}
	want := map[chess.PieceType]int{
		chess.Knight: 0,
		chess.Bishop: 1,
		chess.Rook:   2,
		chess.Queen:  3,
	}[promo]
	return m.PromotionIndex() == want
}
