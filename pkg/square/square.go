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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using the algebraic notation.
// https://www.chessprogramming.org/Algebraic_Chess_Notation
// Square 0 is a1, square 63 is h8: file = sq mod 8, rank = sq div 8. The
// null square is represented using the "-" symbol.
package square

import "fmt"

// Square represents a square on a chessboard.
type Square int8

// None is the null square, used for "no en-passant target" etc.
const None Square = -1

// N is the number of squares on a chessboard.
const N = 64

// constants representing every square on the board, a1 first, h8 last.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// New creates a Square from an algebraic identifier like "e4", or the
// null square from "-".
func New(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic("square.New: invalid square id " + id)
	}

	file := File(id[0] - 'a')
	rank := Rank(id[1] - '1')
	return From(file, rank)
}

// From creates a Square from a file and a rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// String converts a square into its algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Diagonal returns the index of the a1-h8 oriented diagonal the square
// lies on (0..14), used to index diagonal ray masks.
func (s Square) Diagonal() int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntiDiagonal returns the index of the a8-h1 oriented diagonal the
// square lies on (0..14), used to index anti-diagonal ray masks.
func (s Square) AntiDiagonal() int {
	return int(s.Rank()) + int(s.File())
}

// IsLight reports whether the square is a light square, used when
// judging same-complex bishops for the insufficient-material rule.
func (s Square) IsLight() bool {
	return (int(s.File())+int(s.Rank()))%2 != 0
}
