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

package position_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/position"
	"github.com/corvid-chess/corvid/pkg/square"
)

func kings(p *position.Position) {
	p.Place(piece.King, square.E1, piece.White)
	p.Place(piece.King, square.E8, piece.Black)
}

func TestPlaceRemoveRoundTrip(t *testing.T) {
	p := position.New()
	kings(&p)

	p.Place(piece.Queen, square.D4, piece.White)
	if p.At(square.D4) != piece.New(piece.Queen, piece.White) {
		t.Fatalf("At(D4) did not report the placed queen")
	}
	if !p.Pieces(piece.Queen, piece.White).IsSet(square.D4) {
		t.Errorf("Pieces bitboard missing the placed queen")
	}
	if !p.Side(piece.White).IsSet(square.D4) {
		t.Errorf("Side bitboard missing the placed queen")
	}

	before := p.Material[piece.White]
	p.Remove(piece.Queen, square.D4, piece.White)
	if p.At(square.D4) != piece.NoPiece {
		t.Errorf("At(D4) still reports a piece after Remove")
	}
	if p.Material[piece.White] != before-position.Value[piece.Queen] {
		t.Errorf("Material not decremented by Remove")
	}
}

func TestPlaceOverOccupiedSquarePanics(t *testing.T) {
	p := position.New()
	kings(&p)

	defer func() {
		if recover() == nil {
			t.Errorf("Place over an occupied square did not panic")
		}
	}()
	p.Place(piece.Queen, square.E1, piece.White)
}

func TestRemoveWrongPiecePanics(t *testing.T) {
	p := position.New()
	kings(&p)

	defer func() {
		if recover() == nil {
			t.Errorf("Remove of the wrong piece did not panic")
		}
	}()
	p.Remove(piece.Queen, square.E1, piece.White)
}

func TestRelocateMovesPieceKeepsMaterial(t *testing.T) {
	p := position.New()
	kings(&p)
	p.Place(piece.Knight, square.B1, piece.White)

	before := p.Material[piece.White]
	p.Relocate(piece.Knight, square.B1, square.C3, piece.White)

	if p.At(square.B1) != piece.NoPiece {
		t.Errorf("B1 still holds a piece after Relocate")
	}
	if p.At(square.C3) != piece.New(piece.Knight, piece.White) {
		t.Errorf("C3 does not hold the relocated knight")
	}
	if p.Material[piece.White] != before {
		t.Errorf("Relocate changed material: before=%d after=%d", before, p.Material[piece.White])
	}
}

func TestRelocateKingUpdatesKingSquare(t *testing.T) {
	p := position.New()
	kings(&p)

	p.Relocate(piece.King, square.E1, square.F1, piece.White)
	if p.King(piece.White) != square.F1 {
		t.Errorf("King(White) = %v, want F1", p.King(piece.White))
	}
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	p := position.New()
	kings(&p)
	if !p.InsufficientMaterial() {
		t.Errorf("K vs K should be insufficient material")
	}
}

func TestInsufficientMaterialKingAndMinor(t *testing.T) {
	p := position.New()
	kings(&p)
	p.Place(piece.Knight, square.C3, piece.White)
	if !p.InsufficientMaterial() {
		t.Errorf("K+N vs K should be insufficient material")
	}
}

func TestInsufficientMaterialSameColoredBishops(t *testing.T) {
	p := position.New()
	kings(&p)
	p.Place(piece.Bishop, square.C1, piece.White) // dark square
	p.Place(piece.Bishop, square.F8, piece.Black) // dark square
	if square.C1.IsLight() != square.F8.IsLight() {
		t.Fatalf("test setup bug: C1 and F8 are not the same color")
	}
	if !p.InsufficientMaterial() {
		t.Errorf("K+B vs K+B with same-colored bishops should be insufficient material")
	}
}

func TestInsufficientMaterialOppositeColoredBishops(t *testing.T) {
	p := position.New()
	kings(&p)
	p.Place(piece.Bishop, square.C1, piece.White) // dark square
	p.Place(piece.Bishop, square.F1, piece.Black) // light square
	if square.C1.IsLight() == square.F1.IsLight() {
		t.Fatalf("test setup bug: C1 and F1 are the same color")
	}
	if p.InsufficientMaterial() {
		t.Errorf("K+B vs K+B with opposite-colored bishops must not be insufficient material")
	}
}

func TestSufficientMaterialWithPawn(t *testing.T) {
	p := position.New()
	kings(&p)
	p.Place(piece.Pawn, square.A2, piece.White)
	if p.InsufficientMaterial() {
		t.Errorf("a lone pawn should make material sufficient")
	}
}
