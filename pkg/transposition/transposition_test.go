package transposition_test

import (
	"testing"

	"github.com/ecthelion/corechess/pkg/transposition"
	"github.com/ecthelion/corechess/pkg/zobrist"
)

func TestStoreThenProbe(t *testing.T) {
	tbl := transposition.New(1024)
	tbl.Store(0xABCD, 42, 100, 5, transposition.Exact)

	entry, ok := tbl.Probe(0xABCD)
	if !ok {
		t.Fatalf("expected a hit after Store")
	}
	if entry.Score != 100 || entry.Depth != 5 || entry.Bound != transposition.Exact || entry.Move != 42 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestProbeMissOnEmptySlot(t *testing.T) {
	tbl := transposition.New(1024)
	if _, ok := tbl.Probe(0x1234); ok {
		t.Fatalf("expected a miss on an empty table")
	}
}

func TestAlwaysReplaceOnCollision(t *testing.T) {
	tbl := transposition.New(1)
	tbl.Store(zobrist.Key(1), 1, 10, 1, transposition.Exact)
	tbl.Store(zobrist.Key(2), 2, 20, 1, transposition.Exact)

	// With capacity 1 both keys map to the same slot; the second Store
	// must win outright (always-replace), and the first key must now be
	// an unambiguous miss since its hash no longer matches the slot.
	if _, ok := tbl.Probe(zobrist.Key(1)); ok {
		t.Fatalf("stale key 1 should have been evicted")
	}
	entry, ok := tbl.Probe(zobrist.Key(2))
	if !ok || entry.Score != 20 {
		t.Fatalf("expected key 2's entry to survive: %+v ok=%v", entry, ok)
	}
}

func TestClear(t *testing.T) {
	tbl := transposition.New(8)
	tbl.Store(zobrist.Key(5), 1, 1, 1, transposition.Exact)
	tbl.Clear()
	if _, ok := tbl.Probe(zobrist.Key(5)); ok {
		t.Fatalf("expected a miss after Clear")
	}
}
