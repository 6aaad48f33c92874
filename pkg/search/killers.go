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

package search

import "github.com/corvid-chess/corvid/pkg/move"

// maxPly bounds the ply-indexed killer table; it is also used as the
// quiescence-search depth cap (see quiescence in search.go).
const maxPly = 128

// killerTable holds, per ply, the two most recent quiet moves that
// caused a beta cutoff at that ply. They are tried early during move
// ordering on the theory that a quiet move which refuted one line is
// likely to refute a sibling line too.
type killerTable [maxPly][2]move.Move

// store records killer as a killer move at ply. Captures and
// promotions are never stored — they are already searched first by
// MVV-LVA, and storing them here would only waste a killer slot.
// Inserting the same move already in slot 1 is a no-op; any other new
// move bumps the old slot 1 down to slot 2.
func (k *killerTable) store(ply int, killer move.Move) {
	if killer.IsLoud() || killer == k[ply][0] {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = killer
}

// first and second return ply's two killer moves (the zero Move if
// none has been stored yet).
func (k *killerTable) first(ply int) move.Move  { return k[ply][0] }
func (k *killerTable) second(ply int) move.Move { return k[ply][1] }
