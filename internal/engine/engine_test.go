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

package engine_test

import (
	"strings"
	"testing"

	"github.com/corvid-chess/corvid/internal/engine"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

func TestPositionStartposMoves(t *testing.T) {
	e := engine.New()
	c := e.Client()

	if err := c.Run([]string{"position", "startpos", "moves", "e2e4", "e7e5"}); err != nil {
		t.Fatalf("position: %v", err)
	}

	if e.Game.Position.At(square.E4) != piece.New(piece.Pawn, piece.White) {
		t.Errorf("E4 does not hold a white pawn after e2e4 e7e5")
	}
	if e.Game.Position.At(square.E5) != piece.New(piece.Pawn, piece.Black) {
		t.Errorf("E5 does not hold a black pawn after e2e4 e7e5")
	}
	if e.Game.Position.At(square.E2) != piece.NoPiece || e.Game.Position.At(square.E7) != piece.NoPiece {
		t.Errorf("source squares still occupied after e2e4 e7e5")
	}
}

func TestPositionFenMoves(t *testing.T) {
	e := engine.New()
	c := e.Client()

	fenStr := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	args := append([]string{"position", "fen"}, strings.Fields(fenStr)...)
	args = append(args, "moves", "e1g1")

	if err := c.Run(args); err != nil {
		t.Fatalf("position: %v", err)
	}

	if e.Game.Position.At(square.G1) != piece.New(piece.King, piece.White) {
		t.Errorf("G1 does not hold the white king after kingside castling")
	}
	if e.Game.Position.At(square.F1) != piece.New(piece.Rook, piece.White) {
		t.Errorf("F1 does not hold the white rook after kingside castling")
	}
}

func TestPositionPgnReplaysSANMoves(t *testing.T) {
	e := engine.New()
	c := e.Client()

	// Fool's mate: exercises pawn moves, a disambiguation-free queen
	// move, and the SAN mate suffix all going through resolveSAN.
	if err := c.Run([]string{"position", "pgn", "1.", "f3", "e5", "2.", "g4", "Qh4#"}); err != nil {
		t.Fatalf("position pgn: %v", err)
	}

	if e.Game.Position.At(square.H4) != piece.New(piece.Queen, piece.Black) {
		t.Errorf("H4 does not hold the black queen after the pgn replay")
	}
	if e.Game.Position.At(square.D8) != piece.NoPiece {
		t.Errorf("D8 still occupied after the queen moved to H4")
	}
}

func TestPositionPgnCastling(t *testing.T) {
	e := engine.New()
	c := e.Client()

	if err := c.Run([]string{
		"position", "pgn",
		"1.", "e4", "e5", "2.", "Nf3", "Nc6", "3.", "Bc4", "Bc5", "4.", "O-O",
	}); err != nil {
		t.Fatalf("position pgn: %v", err)
	}

	if e.Game.Position.At(square.G1) != piece.New(piece.King, piece.White) {
		t.Errorf("G1 does not hold the white king after O-O")
	}
	if e.Game.Position.At(square.F1) != piece.New(piece.Rook, piece.White) {
		t.Errorf("F1 does not hold the white rook after O-O")
	}
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	e := engine.New()
	c := e.Client()

	if err := c.Run([]string{"position", "startpos", "moves", "e2e5"}); err == nil {
		t.Errorf("position accepted an illegal move (e2e5 from the start position)")
	}
}

func TestUCINewGameResetsSearch(t *testing.T) {
	e := engine.New()
	before := e.Search

	c := e.Client()
	if err := c.Run([]string{"ucinewgame"}); err != nil {
		t.Fatalf("ucinewgame: %v", err)
	}

	if e.Search == before {
		t.Errorf("ucinewgame did not replace the search context")
	}
}
