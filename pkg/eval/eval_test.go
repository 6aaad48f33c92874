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

package eval_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/fen"
)

func TestPeSTOSymmetric(t *testing.T) {
	positions := []string{
		fen.Start,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, p := range positions {
		pos, st, err := fen.Parse(p)
		if err != nil {
			t.Fatalf("fen.Parse(%q): %v", p, err)
		}

		score := eval.PeSTO(&pos, &st)

		flipped := st
		flipped.SideToMove = st.SideToMove.Other()
		flippedScore := eval.PeSTO(&pos, &flipped)

		if score != -flippedScore {
			t.Errorf("%s: PeSTO(stm=%s)=%d, PeSTO(stm=%s)=%d, want negatives of each other",
				p, st.SideToMove, score, flipped.SideToMove, flippedScore)
		}
	}
}

func TestPeSTOStartposIsLevel(t *testing.T) {
	pos, st, err := fen.Parse(fen.Start)
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}

	if score := eval.PeSTO(&pos, &st); score != 0 {
		t.Errorf("PeSTO(startpos) = %d, want 0 (symmetric material and tables)", score)
	}
}

func TestMateScoreString(t *testing.T) {
	if s := eval.MateIn(3).String(); s != "mate 2" {
		t.Errorf("MateIn(3).String() = %q, want %q", s, "mate 2")
	}
	if s := eval.MatedIn(4).String(); s != "mate -2" {
		t.Errorf("MatedIn(4).String() = %q, want %q", s, "mate -2")
	}
	if s := eval.Eval(37).String(); s != "cp 37" {
		t.Errorf("Eval(37).String() = %q, want %q", s, "cp 37")
	}
}
