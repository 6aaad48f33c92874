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

// Package castling declares the castling-rights bitmask and helpers
// for parsing and serializing it in FEN notation.
package castling

import "github.com/corvid-chess/corvid/pkg/square"

// Rights is a 4-bit mask of the castling rights still held by both
// sides: white kingside, white queenside, black kingside, black
// queenside.
type Rights byte

// individual and composite castling rights.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct Rights values, used to size the
	// Zobrist castling-key table.
	N = 16
)

// NewRights parses the FEN castling-availability field ("KQkq", "Kq",
// "-", ...).
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

// String converts Rights back to its FEN representation.
func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// RookCorner records the rook's starting square and the squares the
// king and rook land on for one side of one color's castle.
type RookCorner struct {
	Right    Rights
	RookFrom square.Square
	KingTo   square.Square
	RookTo   square.Square
	// Empty is the set of squares that must be empty (other than the
	// king and rook themselves) for the castle to be legal.
	Empty []square.Square
	// Safe is the set of squares the king travels through (including
	// its start and destination) that must not be attacked.
	Safe []square.Square
}

// Corners enumerates the four possible castles, in the order WK, WQ,
// BK, BQ, and the squares/rights each one touches.
var Corners = [4]RookCorner{
	{
		Right:    WhiteKingside,
		RookFrom: square.H1,
		KingTo:   square.G1,
		RookTo:   square.F1,
		Empty:    []square.Square{square.F1, square.G1},
		Safe:     []square.Square{square.E1, square.F1, square.G1},
	},
	{
		Right:    WhiteQueenside,
		RookFrom: square.A1,
		KingTo:   square.C1,
		RookTo:   square.D1,
		Empty:    []square.Square{square.B1, square.C1, square.D1},
		Safe:     []square.Square{square.C1, square.D1, square.E1},
	},
	{
		Right:    BlackKingside,
		RookFrom: square.H8,
		KingTo:   square.G8,
		RookTo:   square.F8,
		Empty:    []square.Square{square.F8, square.G8},
		Safe:     []square.Square{square.E8, square.F8, square.G8},
	},
	{
		Right:    BlackQueenside,
		RookFrom: square.A8,
		KingTo:   square.C8,
		RookTo:   square.D8,
		Empty:    []square.Square{square.B8, square.C8, square.D8},
		Safe:     []square.Square{square.C8, square.D8, square.E8},
	},
}

// LostOnMove returns the rights that are dropped when a piece leaves
// or a rook is captured on the given square, per the corner table.
func LostOnMove(s square.Square) Rights {
	switch s {
	case square.E1:
		return White
	case square.E8:
		return Black
	case square.H1:
		return WhiteKingside
	case square.A1:
		return WhiteQueenside
	case square.H8:
		return BlackKingside
	case square.A8:
		return BlackQueenside
	default:
		return None
	}
}
