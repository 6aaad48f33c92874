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

// Package perft counts the leaf nodes of the legal game tree to a
// fixed depth, the standard move-generator correctness check: the
// count at each (position, depth) pair is a published, independently
// verified constant, so a mismatch pinpoints a move generation bug.
// https://www.chessprogramming.org/Perft
package perft

import (
	"github.com/schollz/progressbar/v3"

	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/movegen"
)

// Count returns the number of leaf positions reachable from g in
// exactly depth plies.
func Count(g *game.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	pre := movegen.Compute(&g.Position, &g.State)
	moves := movegen.Generate(&g.Position, &g.State, &pre)

	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		g.MakeMove(m)
		nodes += Count(g, depth-1)
		g.UnmakeMove()
	}
	return nodes
}

// PerftWithProgress runs Count at the root, reporting progress across
// the root move list on a terminal progress bar; it exists for the
// "corvid perft -progress" subcommand, where a deep perft run can take
// long enough that silent execution looks hung.
func PerftWithProgress(g *game.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	pre := movegen.Compute(&g.Position, &g.State)
	moves := movegen.Generate(&g.Position, &g.State, &pre)

	bar := progressbar.NewOptions(len(moves),
		progressbar.OptionSetDescription("perft"),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)

	var nodes uint64
	for _, m := range moves {
		g.MakeMove(m)
		nodes += Count(g, depth-1)
		g.UnmakeMove()
		bar.Add(1)
	}
	return nodes
}

// Divide returns the leaf count contributed by each legal root move,
// keyed by its UCI string, for comparing against a reference engine
// move by move when Count disagrees with the published total.
func Divide(g *game.Game, depth int) map[string]uint64 {
	pre := movegen.Compute(&g.Position, &g.State)
	moves := movegen.Generate(&g.Position, &g.State, &pre)

	results := make(map[string]uint64, len(moves))
	for _, m := range moves {
		g.MakeMove(m)
		results[m.String()] = Count(g, depth-1)
		g.UnmakeMove()
	}
	return results
}
