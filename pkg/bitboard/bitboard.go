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

// Package bitboard implements a 64-bit bitboard and other related
// functions for manipulating them.
package bitboard

import (
	"math/bits"

	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

// Board is a 64-bit bitboard, one bit per square (square.A1 is bit 0).
type Board uint64

// String returns a string representation of the given BB, a8 first.
func (b Board) String() string {
	var str string
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			s := square.From(file, rank)
			if b.IsSet(s) {
				str += "1"
			} else {
				str += "0"
			}

			if file == square.FileH {
				str += "\n"
			} else {
				str += " "
			}
		}
	}

	return str
}

// Up shifts the given BB up relative to the given color.
func (b Board) Up(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.North()
	case piece.Black:
		return b.South()
	default:
		panic("bad color")
	}
}

// Down shifts the given BB down relative to the given color.
func (b Board) Down(c piece.Color) Board {
	switch c {
	case piece.White:
		return b.South()
	case piece.Black:
		return b.North()
	default:
		panic("bad color")
	}
}

// North shifts the given BB to the north, towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts the given BB to the south, towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the given BB to the east.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the given BB to the west.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns the LSB of the given BB and removes it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set bits in the given BB.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the LSB of the given BB.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet checks whether the given Square is set in the bitboard.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given Square in the bitboard.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}

	*b |= Squares[s]
}

// Unset clears the given Square in the bitboard.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}

	*b &^= Squares[s]
}

// Reverse flips the bitboard across its own center, used by the
// hyperbola quintessence sliding-attack formula.
func Reverse(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}

// Hyperbola implements hyperbola quintessence given a from square,
// occupancy, and occupancy mask on the given bitboard.Board.
// https://www.chessprogramming.org/Hyperbola_Quintessence
func Hyperbola(s square.Square, occ, mask Board) Board {
	r := Squares[s]
	o := occ & mask // masked occupancy
	return ((o - 2*r) ^ Reverse(Reverse(o)-2*Reverse(r))) & mask
}
