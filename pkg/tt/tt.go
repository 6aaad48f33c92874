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

// Package tt implements a transposition table: a fixed-size
// open-addressing cache of previous search results keyed by Zobrist
// hash, used to avoid re-searching positions reached by a different
// move order.
package tt

import (
	"math/bits"
	"unsafe"

	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/zobrist"
)

// EntrySize is the size in bytes of a single table entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// Table is a transposition table.
type Table struct {
	table []Entry
	size  int
	epoch uint8
}

// New creates a Table sized to fit within the given number of
// megabytes.
func New(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size < 1 {
		size = 1
	}
	return &Table{table: make([]Entry, size), size: size}
}

// Clear empties every entry in the table.
func (tt *Table) Clear() {
	clear(tt.table)
	tt.epoch = 0
}

// NextGeneration bumps the table's age. It should be called once per
// top-level search so the replacement policy can prefer fresh entries
// over ones left over from an earlier search.
func (tt *Table) NextGeneration() {
	tt.epoch++
}

// Store records entry in the table, keyed by entry.Key. An existing
// entry at the same slot is kept only if its quality (recency plus
// depth) is strictly higher than entry's, since overwriting it would
// throw away more valuable information; on equal quality the new
// entry replaces it.
func (tt *Table) Store(entry Entry) {
	entry.epoch = tt.epoch
	slot := tt.slot(entry.Key)
	if entry.quality() >= slot.quality() {
		*slot = entry
	}
}

// Probe returns the entry stored for key, and whether it is usable:
// a slot may be empty or hold a different position that hashed to the
// same index, in which case the bool is false and Entry must not be
// used for anything.
func (tt *Table) Probe(key zobrist.Key) (Entry, bool) {
	entry := *tt.slot(key)
	return entry, entry.Flag != NoEntry && entry.Key == key
}

// ProbeVal returns a score usable as the result of searching key to
// depth from the window (alpha, beta), and whether one was found. See
// Flag for which stored bound types permit a cutoff at which score.
func (tt *Table) ProbeVal(key zobrist.Key, depth, ply int, alpha, beta eval.Eval) (eval.Eval, bool) {
	entry, hit := tt.Probe(key)
	if !hit || int(entry.Depth) < depth {
		return 0, false
	}

	score := entry.Value.Eval(ply)
	switch entry.Flag {
	case ExactEntry:
		return score, true
	case LowerBound:
		if score >= beta {
			return score, true
		}
	case UpperBound:
		if score <= alpha {
			return score, true
		}
	}
	return 0, false
}

// ProbeMove returns the move stored for key regardless of depth, used
// only to seed move ordering; ok is false if no entry is stored.
func (tt *Table) ProbeMove(key zobrist.Key) (mv move.Move, ok bool) {
	entry, hit := tt.Probe(key)
	if !hit {
		return move.Null, false
	}
	return entry.Move, true
}

func (tt *Table) slot(key zobrist.Key) *Entry {
	return &tt.table[tt.indexOf(key)]
}

// indexOf maps a key onto a table slot using Lemire's fast-range
// reduction instead of a modulo.
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func (tt *Table) indexOf(key zobrist.Key) uint {
	index, _ := bits.Mul(uint(key), uint(tt.size))
	return index
}

// Entry is a single transposition table record.
type Entry struct {
	Key zobrist.Key // full key, to detect index collisions

	Move  move.Move // best move found, if any
	Value Value     // stored score, ply-relative for mate scores
	Flag  Flag      // bound type of Value

	Depth uint8 // depth the position was searched to
	epoch uint8 // search generation the entry was written in
}

// quality ranks an entry for the replacement policy: newer and
// deeper entries are worth more than older, shallower ones.
func (e *Entry) quality() uint8 {
	return e.epoch + e.Depth/3
}

// Flag is the bound type of a stored Entry.Value.
type Flag uint8

// kinds of transposition table bound.
const (
	NoEntry    Flag = iota // slot is empty
	ExactEntry             // Value is the exact score
	LowerBound             // Value is a lower bound (caused a beta cutoff)
	UpperBound             // Value is an upper bound (no move improved alpha)
)

// Value is a score stored in the table. Mate scores are kept relative
// to the position they were found in ("mate in N plies from here")
// rather than to the search root, so that a hash hit at a different
// ply still reports the correct mate distance.
type Value eval.Eval

// ValueFrom converts score, expressed as plies-to-mate-from-root, to
// a Value expressed as plies-to-mate-from-the-current-position, for
// storage at ply.
func ValueFrom(score eval.Eval, ply int) Value {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(ply)
	}
	return Value(score)
}

// Eval converts a stored Value back to plies-to-mate-from-root, as
// used throughout search, given the ply it is being read at.
func (v Value) Eval(ply int) eval.Eval {
	score := eval.Eval(v)
	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(ply)
	}
	return score
}
