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

package perft_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/fen"
	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/perft"
)

// TestCount checks perft.Count against the published node counts for
// the standard set of positions, the move-generator's ground truth.
func TestCount(t *testing.T) {
	if testing.Short() {
		t.Skip("full-depth perft is slow; run without -short to verify")
	}

	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"startpos", fen.Start, 5, 4_865_609},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4_085_603},
		{"en passant / promotion stress", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11_030_083},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, st, err := fen.Parse(c.fen)
			if err != nil {
				t.Fatalf("fen.Parse: %v", err)
			}
			g := game.New(pos, st)

			got := perft.Count(g, c.depth)
			if got != c.nodes {
				t.Errorf("perft.Count(%d) = %d, want %d", c.depth, got, c.nodes)
			}
		})
	}
}

// TestCountShallow runs the startpos and kiwipete positions at a
// shallow depth so the property is still checked under "go test -short".
func TestCountShallow(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"startpos", fen.Start, 1, 20},
		{"startpos", fen.Start, 2, 400},
		{"startpos", fen.Start, 3, 8_902},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2_039},
	}

	for _, c := range cases {
		pos, st, err := fen.Parse(c.fen)
		if err != nil {
			t.Fatalf("fen.Parse: %v", err)
		}
		g := game.New(pos, st)

		got := perft.Count(g, c.depth)
		if got != c.nodes {
			t.Errorf("%s perft.Count(%d) = %d, want %d", c.name, c.depth, got, c.nodes)
		}
	}
}

func TestDivideSumsToCount(t *testing.T) {
	pos, st, err := fen.Parse(fen.Start)
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}
	g := game.New(pos, st)

	const depth = 3
	div := perft.Divide(g, depth)

	var sum uint64
	for _, n := range div {
		sum += n
	}

	want := perft.Count(g, depth)
	if sum != want {
		t.Errorf("sum of Divide = %d, Count = %d", sum, want)
	}
}
