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

// Package attacks provides precalculated attack bitboards for leaping
// pieces (king, knight, pawn) and hyperbola-quintessence-based attack
// generation for sliding pieces (bishop, rook, queen).
package attacks

import (
	"github.com/corvid-chess/corvid/pkg/bitboard"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces.
var (
	King       [square.N]bitboard.Board
	Knight     [square.N]bitboard.Board
	PawnPush   [piece.ColorN][square.N]bitboard.Board
	PawnAttack [piece.ColorN][square.N]bitboard.Board

	// Between[a][b] holds the squares strictly between a and b along a
	// rank, file, or diagonal, or Empty if they do not share a line.
	// Used to build the check-evasion mask when blocking a checker.
	Between [square.N][square.N]bitboard.Board

	// Line[a][b] holds the full rank, file, or diagonal line through a
	// and b, or Empty if they do not share one.
	Line [square.N][square.N]bitboard.Board
)

func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		PawnPush[piece.White][s] = whitePawnPushFrom(s)
		PawnPush[piece.Black][s] = blackPawnPushFrom(s)
		PawnAttack[piece.White][s] = whitePawnAttackFrom(s)
		PawnAttack[piece.Black][s] = blackPawnAttackFrom(s)
	}

	initLines()
}

// ray is an internal accumulator used while generating leaper attack
// bitboards one offset at a time.
type ray struct {
	origin square.Square
	board  bitboard.Board
}

// addAttack sets the square a (file, rank) offset away from the
// origin, if that square lies on the board.
func (r *ray) addAttack(fileOffset, rankOffset int) {
	file := int(r.origin.File()) + fileOffset
	rank := int(r.origin.Rank()) + rankOffset

	if file < 0 || file > int(square.FileH) || rank < 0 || rank > int(square.Rank8) {
		return
	}

	r.board.Set(square.From(square.File(file), square.Rank(rank)))
}

func kingAttacksFrom(from square.Square) bitboard.Board {
	r := ray{origin: from}
	r.addAttack(1, 0)
	r.addAttack(1, 1)
	r.addAttack(0, 1)
	r.addAttack(-1, 0)
	r.addAttack(0, -1)
	r.addAttack(1, -1)
	r.addAttack(-1, 1)
	r.addAttack(-1, -1)
	return r.board
}

func knightAttacksFrom(from square.Square) bitboard.Board {
	r := ray{origin: from}
	r.addAttack(2, 1)
	r.addAttack(1, 2)
	r.addAttack(1, -2)
	r.addAttack(2, -1)
	r.addAttack(-1, 2)
	r.addAttack(-2, 1)
	r.addAttack(-2, -1)
	r.addAttack(-1, -2)
	return r.board
}

func whitePawnPushFrom(s square.Square) bitboard.Board {
	r := ray{origin: s}
	r.addAttack(0, 1)
	return r.board
}

func blackPawnPushFrom(s square.Square) bitboard.Board {
	r := ray{origin: s}
	r.addAttack(0, -1)
	return r.board
}

func whitePawnAttackFrom(s square.Square) bitboard.Board {
	r := ray{origin: s}
	r.addAttack(1, 1)
	r.addAttack(-1, 1)
	return r.board
}

func blackPawnAttackFrom(s square.Square) bitboard.Board {
	r := ray{origin: s}
	r.addAttack(1, -1)
	r.addAttack(-1, -1)
	return r.board
}

// Pawn returns the full set of squares a pawn of color c on square s
// may move to, including the double push and en-passant target ep
// (square.None if there is none).
func Pawn(s, ep square.Square, c piece.Color, friends, enemies bitboard.Board) bitboard.Board {
	occupied := friends | enemies
	targets := enemies
	targets.Set(ep)

	single := PawnPush[c][s] &^ occupied
	var double bitboard.Board
	if single != 0 {
		double = single.Up(c) &^ occupied & bitboard.Ranks[doublePushRank(c)]
	}

	return single | double | (PawnAttack[c][s] & targets)
}

// PawnsPush shifts every pawn in the set one square forward.
func PawnsPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// PawnsLeft shifts every pawn in the set one square forward and to
// the west (a white pawn's "left" when facing the enemy).
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight shifts every pawn in the set one square forward and to
// the east.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}

func doublePushRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank4
	}
	return square.Rank5
}

// Bishop returns the attack set of a bishop on s given the board's
// full occupancy, using hyperbola quintessence along both diagonals.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	diagonal := bitboard.Hyperbola(s, occ, bitboard.Diagonals[s.Diagonal()])
	antiDiagonal := bitboard.Hyperbola(s, occ, bitboard.AntiDiagonals[s.AntiDiagonal()])
	return diagonal | antiDiagonal
}

// Rook returns the attack set of a rook on s given the board's full
// occupancy, using hyperbola quintessence along the rank and file.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	file := bitboard.Hyperbola(s, occ, bitboard.Files[s.File()])
	rank := bitboard.Hyperbola(s, occ, bitboard.Ranks[s.Rank()])
	return file | rank
}

// Queen returns the attack set of a queen on s, the union of a rook's
// and a bishop's attack sets from that square.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}

// Of returns the attack set of the given piece type from square s,
// given the full board occupancy. Pawn attacks ignore en-passant and
// push squares; use Pawn directly for full pawn move generation.
func Of(t piece.Type, s square.Square, occ bitboard.Board) bitboard.Board {
	switch t {
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, occ)
	case piece.Rook:
		return Rook(s, occ)
	case piece.Queen:
		return Queen(s, occ)
	case piece.King:
		return King[s]
	default:
		panic("attacks.Of: invalid piece type")
	}
}

func initLines() {
	for a := square.A1; a <= square.H8; a++ {
		for b := square.A1; b <= square.H8; b++ {
			switch {
			case a == b:
				continue
			case a.File() == b.File():
				Line[a][b] = bitboard.Files[a.File()]
				Between[a][b] = segment(a, b)
			case a.Rank() == b.Rank():
				Line[a][b] = bitboard.Ranks[a.Rank()]
				Between[a][b] = segment(a, b)
			case a.Diagonal() == b.Diagonal():
				Line[a][b] = bitboard.Diagonals[a.Diagonal()]
				Between[a][b] = segment(a, b)
			case a.AntiDiagonal() == b.AntiDiagonal():
				Line[a][b] = bitboard.AntiDiagonals[a.AntiDiagonal()]
				Between[a][b] = segment(a, b)
			}
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// segment walks the straight line from a to b, exclusive of both
// endpoints, and returns the squares crossed. a and b must share a
// rank, file, or diagonal.
func segment(a, b square.Square) bitboard.Board {
	fileStep := sign(int(b.File()) - int(a.File()))
	rankStep := sign(int(b.Rank()) - int(a.Rank()))

	var board bitboard.Board
	file, rank := int(a.File())+fileStep, int(a.Rank())+rankStep
	for square.From(square.File(file), square.Rank(rank)) != b {
		board.Set(square.From(square.File(file), square.Rank(rank)))
		file += fileStep
		rank += rankStep
	}
	return board
}
