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

// Package piece declares the colors, types, and colored pieces used
// throughout the engine, along with related utility functions.
package piece

// Color represents the side of a Piece, or the side to move.
type Color uint8

// constants representing the two sides of a chess game.
const (
	White Color = iota
	Black

	ColorN = 2
)

// NewColor creates a Color from its UCI/FEN identifier ("w" or "b").
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece.NewColor: invalid color id " + id)
	}
}

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to its FEN identifier.
func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Type represents the kind of a chess piece, irrespective of color.
type Type uint8

// constants representing the six chess piece types. NoType fills empty
// mailbox squares and doubles as the "nothing captured" marker in the
// game package's undo history.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	TypeN = 7
)

// String converts a Type to its lowercase algebraic letter.
func (t Type) String() string {
	const letters = " pnbrqk"
	return string(letters[t])
}

// Promotions lists the piece types a pawn may promote to, queen first
// since it is searched first by move ordering.
var Promotions = [4]Type{Queen, Rook, Bishop, Knight}

// Piece is a colored chess piece, packed as [1 color bit][3 type bits].
type Piece uint8

// NoPiece represents an empty mailbox square.
const NoPiece Piece = 0

const colorOffset = 3

// New creates a Piece from a color and a type.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// constants naming every colored piece, used as table indices.
const (
	WhitePawn   = Piece(White)<<colorOffset | Piece(Pawn)
	WhiteKnight = Piece(White)<<colorOffset | Piece(Knight)
	WhiteBishop = Piece(White)<<colorOffset | Piece(Bishop)
	WhiteRook   = Piece(White)<<colorOffset | Piece(Rook)
	WhiteQueen  = Piece(White)<<colorOffset | Piece(Queen)
	WhiteKing   = Piece(White)<<colorOffset | Piece(King)

	BlackPawn   = Piece(Black)<<colorOffset | Piece(Pawn)
	BlackKnight = Piece(Black)<<colorOffset | Piece(Knight)
	BlackBishop = Piece(Black)<<colorOffset | Piece(Bishop)
	BlackRook   = Piece(Black)<<colorOffset | Piece(Rook)
	BlackQueen  = Piece(Black)<<colorOffset | Piece(Queen)
	BlackKing   = Piece(Black)<<colorOffset | Piece(King)

	// N is the number of colored-piece slots, including the two unused
	// "NoType" rows left by separating the color and type bit fields.
	N = 16
)

// NewFromString creates a Piece from its FEN letter ("P", "n", etc.).
func NewFromString(id string) Piece {
	const letters = "PNBRQKpnbrqk"
	for i, c := range letters {
		if string(c) == id {
			color := White
			if i >= 6 {
				color = Black
			}
			return New(Type(i%6+1), color)
		}
	}
	return NoPiece
}

// String converts a Piece to its FEN letter, uppercase for white.
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}

	letter := p.Type().String()
	if p.Color() == White {
		letter = string(letter[0] - 'a' + 'A')
	}
	return letter
}

// Type returns the piece's type.
func (p Piece) Type() Type {
	return Type(p & 0b111)
}

// Color returns the piece's color. Only valid for p != NoPiece.
func (p Piece) Color() Color {
	return Color(p >> colorOffset)
}

// Is reports whether the piece is of the given type.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}
