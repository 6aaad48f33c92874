// Copyright © 2026 corvid contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zobrist declares the random constant tables used to build
// and incrementally maintain a position's Zobrist hash key.
package zobrist

import (
	"github.com/corvid-chess/corvid/pkg/castling"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

// Key is a Zobrist hash key.
type Key uint64

// PieceSquare holds one random key per (colored piece, square) pair,
// indexed by piece.Piece.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one random key per en-passant file.
var EnPassant [square.FileN]Key

// Castling holds one random key per possible Rights value.
var Castling [castling.N]Key

// SideToMove is XORed into the key whenever it is black to move.
var SideToMove Key

func init() {
	var rng PRNG
	rng.Seed(1070372) // seed used by Stockfish

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
