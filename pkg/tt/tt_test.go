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

package tt_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/square"
	"github.com/corvid-chess/corvid/pkg/tt"
)

func TestProbeMiss(t *testing.T) {
	table := tt.New(1)
	if _, ok := table.Probe(0x1234); ok {
		t.Fatalf("Probe on empty table reported a hit")
	}
}

func TestStoreProbeExact(t *testing.T) {
	table := tt.New(1)
	mv := move.New(square.E2, square.E4, 0, false)

	table.Store(tt.Entry{
		Key:   0xabcd,
		Move:  mv,
		Value: tt.ValueFrom(123, 0),
		Flag:  tt.ExactEntry,
		Depth: 5,
	})

	entry, ok := table.Probe(0xabcd)
	if !ok {
		t.Fatalf("Probe reported a miss for a stored key")
	}
	if entry.Move != mv {
		t.Errorf("Move = %v, want %v", entry.Move, mv)
	}

	score, ok := table.ProbeVal(0xabcd, 5, 0, -eval.Inf, eval.Inf)
	if !ok {
		t.Fatalf("ProbeVal reported a miss for a stored exact entry")
	}
	if score != 123 {
		t.Errorf("score = %d, want 123", score)
	}
}

func TestProbeValRespectsBoundType(t *testing.T) {
	table := tt.New(1)

	table.Store(tt.Entry{Key: 1, Value: tt.ValueFrom(50, 0), Flag: tt.LowerBound, Depth: 4})
	if _, ok := table.ProbeVal(1, 4, 0, -eval.Inf, 100); ok {
		t.Errorf("lower bound of 50 should not cut off against beta=100")
	}
	if score, ok := table.ProbeVal(1, 4, 0, -eval.Inf, 40); !ok || score != 50 {
		t.Errorf("lower bound of 50 should cut off against beta=40, got score=%d ok=%v", score, ok)
	}

	table.Store(tt.Entry{Key: 2, Value: tt.ValueFrom(-50, 0), Flag: tt.UpperBound, Depth: 4})
	if _, ok := table.ProbeVal(2, 4, 0, -60, eval.Inf); ok {
		t.Errorf("upper bound of -50 should not cut off against alpha=-60")
	}
	if score, ok := table.ProbeVal(2, 4, 0, 40, eval.Inf); !ok || score != -50 {
		t.Errorf("upper bound of -50 should cut off against alpha=40, got score=%d ok=%v", score, ok)
	}
}

func TestProbeValRejectsShallowerEntry(t *testing.T) {
	table := tt.New(1)
	table.Store(tt.Entry{Key: 7, Value: tt.ValueFrom(10, 0), Flag: tt.ExactEntry, Depth: 3})

	if _, ok := table.ProbeVal(7, 5, 0, -eval.Inf, eval.Inf); ok {
		t.Errorf("ProbeVal at depth 5 used an entry stored at depth 3")
	}
	if _, ok := table.ProbeVal(7, 2, 0, -eval.Inf, eval.Inf); !ok {
		t.Errorf("ProbeVal at depth 2 should accept an entry stored at depth 3")
	}
}

func TestMateScorePlyRelativeRoundTrip(t *testing.T) {
	// A root-relative mate score stored 2 plies into the search must
	// read back unchanged when probed again at that same ply.
	const ply = 2
	rootScore := eval.MateIn(ply + 3)

	stored := tt.ValueFrom(rootScore, ply)
	got := stored.Eval(ply)

	if got != rootScore {
		t.Errorf("mate score round trip: got %v, want %v", got, rootScore)
	}
}

func TestReplacementPrefersDeeperEntry(t *testing.T) {
	table := tt.New(1)
	table.Store(tt.Entry{Key: 99, Value: tt.ValueFrom(1, 0), Flag: tt.ExactEntry, Depth: 2})
	table.Store(tt.Entry{Key: 99, Value: tt.ValueFrom(2, 0), Flag: tt.ExactEntry, Depth: 8})

	entry, ok := table.Probe(99)
	if !ok || entry.Depth != 8 {
		t.Fatalf("deeper entry was not kept: entry=%+v ok=%v", entry, ok)
	}

	// A much shallower entry from the same generation should not
	// evict the deeper one.
	table.Store(tt.Entry{Key: 99, Value: tt.ValueFrom(3, 0), Flag: tt.ExactEntry, Depth: 1})
	entry, _ = table.Probe(99)
	if entry.Depth != 8 {
		t.Errorf("shallow store evicted the deeper entry: depth=%d", entry.Depth)
	}
}
