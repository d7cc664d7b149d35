// Package zobrist implements the PRNG-seeded key bank used to maintain
// an incremental hash of a chess position.
package zobrist

import (
	"github.com/ecthelion/corechess/pkg/castling"
	"github.com/ecthelion/corechess/pkg/piece"
	"github.com/ecthelion/corechess/pkg/square"
)

// Key is a 64-bit Zobrist hash component or composite.
type Key uint64

// PieceSquare holds one key per (piece, square) pair, indexed by
// piece.Piece and square.Square. Entries for piece.NoPiece are unused.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one key per en-passant file.
var EnPassant [square.FileN]Key

// Castling holds one key per possible castling.Rights value.
var Castling [castling.N]Key

// SideToMove is XORed in whenever Black is to move.
var SideToMove Key

// seed is Stockfish's well-tested Zobrist PRNG seed, kept for stability
// of hash values across runs.
const seed = 1070372

func init() {
	var rng PRNG
	rng.Seed(seed)

	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.File(0); f < square.FileN; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := 0; r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
