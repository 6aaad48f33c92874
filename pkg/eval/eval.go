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

// Package eval scores a chess position from the side-to-move's point
// of view. The search treats evaluation as an interface: any Func
// that is symmetric (eval(p) = -eval(p with sides swapped)), a pure
// function of Position and State, and bounded well clear of mate
// scores may be plugged in; PeSTO is the one concrete implementation.
package eval

import (
	"fmt"

	"github.com/corvid-chess/corvid/pkg/position"
	"github.com/corvid-chess/corvid/pkg/state"
)

// Eval is a relative centipawn score: positive favors the side to
// move, negative favors the other side.
type Eval int32

// basic evaluations and the limits used to tell a mate score apart
// from a regular centipawn one.
const (
	Inf  Eval = 1 << 30 // comfortably clear of any legal sum
	Mate Eval = Inf - 1 // one ply from Mate is a king capture

	// WinInMaxPly/LoseInMaxPly bound how large a centipawn (non-mate)
	// score may get; anything past them is read back as a mate score.
	WinInMaxPly  Eval = Mate - 2*MaxMateInPlies
	LoseInMaxPly Eval = -WinInMaxPly

	Draw Eval = 0

	// MaxMateInPlies bounds how many plies a reported mate distance may
	// span; well above any depth this engine will search to.
	MaxMateInPlies = 1000
)

// MatedIn returns the score for being checkmated in the given number
// of plies from the root. Longer lines score higher (less negative)
// so the search prefers to delay an inevitable mate.
func MatedIn(ply int) Eval {
	return -Mate + Eval(ply)
}

// MateIn returns the score for delivering checkmate in the given
// number of plies from the root. Shorter lines score higher so the
// search prefers the fastest mate.
func MateIn(ply int) Eval {
	return Mate - Eval(ply)
}

// String returns a UCI-style "cp N" or "mate N" rendering of the eval.
func (e Eval) String() string {
	switch {
	case e > WinInMaxPly:
		plies := Mate - e
		return fmt.Sprintf("mate %d", (plies+1)/2)
	case e < LoseInMaxPly:
		plies := Mate + e
		return fmt.Sprintf("mate %d", -((plies + 1) / 2))
	default:
		return fmt.Sprintf("cp %d", e)
	}
}

// Func is an evaluation function: a pure, stateless function of the
// current Position and State that returns a centipawn-like score from
// the point of view of the side to move.
type Func func(pos *position.Position, st *state.State) Eval
