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

	"github.com/notnil/chess"

	"github.com/corvid-chess/corvid/pkg/fen"
	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/perft"
)

// countReference runs perft to depth using notnil/chess, an
// independently authored move generator, as a cross-check oracle
// against this package's own node counts.
func countReference(t *testing.T, fenStr string, depth int) uint64 {
	t.Helper()

	fn, err := chess.FEN(fenStr)
	if err != nil {
		t.Fatalf("chess.FEN(%q): %v", fenStr, err)
	}

	g := chess.NewGame(fn)
	return countReferenceNode(g, depth)
}

func countReferenceNode(g *chess.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := g.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		clone := g.Clone()
		if err := clone.Move(m); err != nil {
			continue
		}
		nodes += countReferenceNode(clone, depth-1)
	}
	return nodes
}

// TestAgainstReference spot-checks this package's perft.Count against
// notnil/chess on a handful of positions too shallow to matter for
// performance but wide enough to exercise castling, en passant, and
// promotion generation differently than this engine's own code does.
func TestAgainstReference(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
	}{
		{"startpos d3", fen.Start, 3},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"en passant position d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, st, err := fen.Parse(c.fen)
			if err != nil {
				t.Fatalf("fen.Parse: %v", err)
			}
			g := game.New(pos, st)

			want := countReference(t, c.fen, c.depth)
			got := perft.Count(g, c.depth)
			if got != want {
				t.Errorf("perft.Count(%d) = %d, reference = %d", c.depth, got, want)
			}
		})
	}
}
