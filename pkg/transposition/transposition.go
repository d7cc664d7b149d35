// Package transposition implements a fixed-capacity, direct-mapped
// transposition table keyed by position.Position's Zobrist hash, the
// collaborator spec.md §9 names for caching search results across
// transpositions. Sized and replaced the way the teacher's search layer
// does: one slot per hash-modulo-capacity bucket, always-replace on
// collision (resolving spec.md's transposition-policy Open Question in
// favour of simplicity over depth-preferred replacement).
package transposition

import "github.com/ecthelion/corechess/pkg/zobrist"

// Bound identifies how a stored Score relates to the alpha-beta window
// it was computed in.
type Bound uint8

const (
	// Exact means Score is the true minimax value.
	Exact Bound = iota
	// Alpha means Score is an upper bound: the true value is <= Score.
	Alpha
	// Beta means Score is a lower bound: the true value is >= Score.
	Beta
)

// Entry is one cached search result.
type Entry struct {
	Hash  zobrist.Key
	Move  uint32 // move.Move, stored as uint32 to avoid an import cycle with a future search package
	Score int
	Depth int
	Bound Bound
	valid bool
}

// Table is a fixed-capacity transposition table. The zero Table is not
// usable; construct one with New.
type Table struct {
	entries []Entry
}

// New returns a Table sized to hold capacity entries.
func New(capacity int) *Table {
	if capacity <= 0 {
		panic("transposition.New: capacity must be positive")
	}
	return &Table{entries: make([]Entry, capacity)}
}

// index maps a hash to its single candidate slot.
func (t *Table) index(hash zobrist.Key) int {
	return int(uint64(hash) % uint64(len(t.entries)))
}

// Probe returns the entry stored for hash, if any, and whether it was
// found. Each slot stores the full 64-bit hash, so a different hash
// stored in the same slot is reported as a miss.
func (t *Table) Probe(hash zobrist.Key) (Entry, bool) {
	e := t.entries[t.index(hash)]
	if !e.valid || e.Hash != hash {
		return Entry{}, false
	}
	return e, true
}

// Store inserts or always-replaces the entry at hash's slot.
func (t *Table) Store(hash zobrist.Key, mv uint32, score, depth int, bound Bound) {
	t.entries[t.index(hash)] = Entry{
		Hash:  hash,
		Move:  mv,
		Score: score,
		Depth: depth,
		Bound: bound,
		valid: true,
	}
}

// Clear empties every slot, e.g. between unrelated searches (a new game,
// a UCI "ucinewgame").
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the table's fixed capacity.
func (t *Table) Len() int {
	return len(t.entries)
}
