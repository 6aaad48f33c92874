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

// Package state declares the non-positional half of a chess position:
// side to move, castling rights, the en-passant target, the move
// counters, and the Zobrist key. It is kept separate from package
// position so the two can be copied, compared, and restored
// independently when Game pushes and pops undo history.
package state

import (
	"github.com/corvid-chess/corvid/pkg/castling"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
	"github.com/corvid-chess/corvid/pkg/zobrist"
)

// State is the non-positional state of a chess game at a point in
// time.
type State struct {
	SideToMove piece.Color
	Castling   castling.Rights
	EnPassant  square.Square

	// HalfMoves counts plies since the last pawn push or capture, for
	// the 50-move rule.
	HalfMoves int
	// FullMoves counts completed move pairs, starting at 1.
	FullMoves int

	Key zobrist.Key
}

// New returns the starting State: white to move, full castling
// rights, no en-passant target, move one.
func New() State {
	return State{
		SideToMove: piece.White,
		Castling:   castling.All,
		EnPassant:  square.None,
		FullMoves:  1,
	}
}

// Clone returns a copy of s, safe to mutate independently.
func (s State) Clone() State {
	return s
}
