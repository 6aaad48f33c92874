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

package bitboard

import "github.com/corvid-chess/corvid/pkg/square"

// useful bitboard definitions
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// file bitboards
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files indexes a file bitboard by square.File.
var Files = [...]Board{
	square.FileA: FileA,
	square.FileB: FileB,
	square.FileC: FileC,
	square.FileD: FileD,
	square.FileE: FileE,
	square.FileF: FileF,
	square.FileG: FileG,
	square.FileH: FileH,
}

// rank bitboards
const (
	Rank1 Board = 0x00000000000000ff
	Rank2 Board = 0x000000000000ff00
	Rank3 Board = 0x0000000000ff0000
	Rank4 Board = 0x00000000ff000000
	Rank5 Board = 0x000000ff00000000
	Rank6 Board = 0x0000ff0000000000
	Rank7 Board = 0x00ff000000000000
	Rank8 Board = 0xff00000000000000
)

// Ranks indexes a rank bitboard by square.Rank.
var Ranks = [...]Board{
	square.Rank1: Rank1,
	square.Rank2: Rank2,
	square.Rank3: Rank3,
	square.Rank4: Rank4,
	square.Rank5: Rank5,
	square.Rank6: Rank6,
	square.Rank7: Rank7,
	square.Rank8: Rank8,
}

// Squares indexes the single-bit mask of every square.
var Squares [square.N]Board

// Diagonals indexes the mask of every a1-h8 oriented diagonal by
// square.Diagonal, and AntiDiagonals the mask of every a8-h1 oriented
// diagonal by square.AntiDiagonal. Both are built at init time instead
// of being hardcoded, since hardcoding them depends on the square
// numbering convention in use.
var Diagonals [15]Board
var AntiDiagonals [15]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << uint(s)
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}
}
