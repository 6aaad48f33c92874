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

package search_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/fen"
	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/movegen"
	"github.com/corvid-chess/corvid/pkg/search"
)

func newSearch(t *testing.T, fenStr string) (*game.Game, *search.Context) {
	t.Helper()
	pos, st, err := fen.Parse(fenStr)
	if err != nil {
		t.Fatalf("fen.Parse(%q): %v", fenStr, err)
	}
	g := game.New(pos, st)
	return g, search.NewContext(g)
}

// TestFindsMatingMove checks the search locates a forced tactical win
// at the depth it is published to exist at.
func TestFindsMatingMove(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-7 search is slow; run without -short to verify")
	}

	_, ctx := newSearch(t, "r3rk2/pb4p1/4QbBp/1p1q4/2pP4/2P5/PP3PPP/R3R1K1 w - - 0 21")
	best, _ := ctx.Get(7)
	if best.String() != "e6e8" {
		t.Errorf("best move = %s, want e6e8", best)
	}
}

func TestFindsMateScore(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-7 search is slow; run without -short to verify")
	}

	_, ctx := newSearch(t, "r1bqr2k/ppp3bp/2np2p1/8/2BnPQ2/2N2N2/PPPB1PP1/2KR3R w - - 0 0")
	best, score := ctx.Get(7)
	if best.String() != "h1h7" {
		t.Errorf("best move = %s, want h1h7", best)
	}
	if want := eval.Mate - 9; score != want {
		t.Errorf("score = %v, want mate-9 (%v)", score, want)
	}
}

func TestFindsSecondMatingLine(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-7 search is slow; run without -short to verify")
	}

	_, ctx := newSearch(t, "5rk1/ppq3p1/2p3Qp/8/3P4/2P3nP/PP1N2PK/R1B5 b - - 0 28")
	best, _ := ctx.Get(7)
	if best.String() != "g3f1" {
		t.Errorf("best move = %s, want g3f1", best)
	}
}

// TestAsymmetricResponseToE4 checks the engine never answers 1.e4 with
// 1...d5 at search depth, a symmetry sanity check:
// a non-trivial evaluation should never be perfectly indifferent
// between two asymmetric replies.
func TestAsymmetricResponseToE4(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-7 search is slow; run without -short to verify")
	}

	g, _ := newSearch(t, fen.Start)

	pre := movegen.Compute(&g.Position, &g.State)
	var e2e4 = findMoveByUCI(t, g, pre, "e2e4")
	g.MakeMove(e2e4)
	ctx := search.NewContext(g)

	best, _ := ctx.Get(7)
	if best.String() == "d7d5" {
		t.Errorf("engine replied d7d5 to 1.e4, expected an asymmetric response")
	}
}

func findMoveByUCI(t *testing.T, g *game.Game, pre movegen.Preprocessing, uciMove string) move.Move {
	t.Helper()
	for _, mv := range movegen.Generate(&g.Position, &g.State, &pre) {
		if mv.String() == uciMove {
			return mv
		}
	}
	t.Fatalf("move %q not found among legal moves", uciMove)
	return move.Null
}
