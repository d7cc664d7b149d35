package movegen_test

import (
	"testing"

	"github.com/ecthelion/corechess/pkg/fen"
	"github.com/ecthelion/corechess/pkg/movegen"
	"github.com/ecthelion/corechess/pkg/position"
)

// perft counts leaf nodes at depth, filtering movegen's pseudo-legal
// output down to legal moves via MakeMove's verdict, per spec.md §4.2's
// "make_move is the legality oracle" design and §8's perft scenarios.
func perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	list := movegen.Generate(pos)
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if pos.MakeMove(m) == position.Legal {
			nodes += perft(pos, depth-1)
		}
		pos.TakeMove()
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, c := range cases {
		pos := fen.Parse(fen.Startpos)
		if got := perft(pos, c.depth); got != c.nodes {
			t.Errorf("perft(startpos, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

// TestPerftKiwipete exercises castling, en passant, and promotions all
// in one position, the standard second perft-suite position.
func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 48},
		{2, 2039},
	}

	for _, c := range cases {
		pos := fen.Parse(kiwipete)
		if got := perft(pos, c.depth); got != c.nodes {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestGenerateStartposPseudoLegalCount(t *testing.T) {
	pos := fen.Parse(fen.Startpos)
	list := movegen.Generate(pos)
	if list.Len() != 20 {
		t.Fatalf("expected 20 pseudo-legal moves from startpos, got %d", list.Len())
	}
}
