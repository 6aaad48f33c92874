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

package movegen_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/bitboard"
	"github.com/corvid-chess/corvid/pkg/fen"
	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/movegen"
	"github.com/corvid-chess/corvid/pkg/piece"
)

func legalMoves(t *testing.T, fenStr string) []string {
	t.Helper()
	pos, st, err := fen.Parse(fenStr)
	if err != nil {
		t.Fatalf("fen.Parse(%q): %v", fenStr, err)
	}

	pre := movegen.Compute(&pos, &st)
	moves := movegen.Generate(&pos, &st, &pre)

	uci := make([]string, len(moves))
	for i, mv := range moves {
		uci[i] = mv.String()
	}
	return uci
}

func TestStartposHasTwentyMoves(t *testing.T) {
	moves := legalMoves(t, fen.Start)
	if len(moves) != 20 {
		t.Errorf("len(moves) = %d, want 20", len(moves))
	}
}

// TestKingNeverLeftInCheck asserts the invariant from spec.md §8:
// every legal move, once made, leaves the mover's own king safe.
func TestKingNeverLeftInCheck(t *testing.T) {
	positions := []string{
		fen.Start,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fenStr := range positions {
		pos, st, err := fen.Parse(fenStr)
		if err != nil {
			t.Fatalf("fen.Parse(%q): %v", fenStr, err)
		}

		pre := movegen.Compute(&pos, &st)
		g := game.New(pos, st)
		for _, mv := range movegen.Generate(&pos, &st, &pre) {
			if !movegen.IsLegal(&pos, &st, mv) {
				t.Errorf("%s: Generate produced a move IsLegal rejects: %s", fenStr, mv)
			}
			g.MakeMove(mv)
			if g.Position.InCheck(st.SideToMove) {
				t.Errorf("%s: %s leaves the mover's king in check", fenStr, mv)
			}
			g.UnmakeMove()
		}
	}
}

// TestPinnedPieceCannotMoveOffLine checks a pinned rook has no legal
// moves that expose its king, using a position with an unambiguous
// pin along the e-file.
func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	moves := legalMoves(t, "4r1k1/8/8/8/8/4R3/8/4K3 w - - 0 1")

	// the pinned rook must never step off the e-file, since that
	// would expose the white king to the rook on e8.
	for _, m := range moves {
		if len(m) >= 2 && m[:2] == "e3" {
			toFile := m[2]
			if toFile != 'e' {
				t.Errorf("pinned rook made an off-pin move: %s", m)
			}
		}
	}
}

// TestDoubleDiagonalCheckRestrictsToKingMoves checks a king attacked
// along two separate diagonals at once (bishop on a5, queen on h4,
// both diagonals clear to the e1 king) is a double check: CheckN must
// reach 2 and every legal move must be a king move, even though a
// white knight could otherwise capture one of the two checkers.
func TestDoubleDiagonalCheckRestrictsToKingMoves(t *testing.T) {
	fenStr := "4k3/8/8/b7/2N4q/8/8/4K3 w - - 0 1"
	pos, st, err := fen.Parse(fenStr)
	if err != nil {
		t.Fatalf("fen.Parse(%q): %v", fenStr, err)
	}

	pre := movegen.Compute(&pos, &st)
	if pre.CheckN != 2 {
		t.Fatalf("CheckN = %d, want 2 (double check by two diagonal sliders)", pre.CheckN)
	}
	if pre.CheckMask != bitboard.Empty {
		t.Errorf("CheckMask = %v, want empty under double check", pre.CheckMask)
	}

	for _, mv := range movegen.Generate(&pos, &st, &pre) {
		if mv.Piece != piece.King {
			t.Errorf("double check allowed a non-king move: %s (%s)", mv, mv.Piece)
		}
	}
}

func TestLoudIsSubsetOfGenerate(t *testing.T) {
	fenStr := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, st, err := fen.Parse(fenStr)
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}

	pre := movegen.Compute(&pos, &st)
	all := make(map[string]bool)
	for _, mv := range movegen.Generate(&pos, &st, &pre) {
		all[mv.String()] = true
	}

	for _, mv := range movegen.Loud(&pos, &st, &pre) {
		if !mv.IsLoud() {
			t.Errorf("Loud returned a quiet move: %s", mv)
		}
		if !all[mv.String()] {
			t.Errorf("Loud returned a move not in Generate's list: %s", mv)
		}
	}
}
