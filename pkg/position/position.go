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

// Package position implements the piece-placement half of a chess
// position: the mailbox, the bitboard set, and incremental material,
// kept mutually consistent by Place, Remove, and Relocate. It holds no
// side-to-move, castling, or en-passant state — see package state for
// that half, owned together by a package game Game.
package position

import (
	"fmt"

	"github.com/corvid-chess/corvid/pkg/attacks"
	"github.com/corvid-chess/corvid/pkg/bitboard"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

// Position is the piece layout of a chess board.
type Position struct {
	Mailbox  [square.N]piece.Piece
	PieceBBs [piece.N]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board
	KingSq   [piece.ColorN]square.Square
	Material [piece.ColorN]int32
}

// New returns an empty Position with no pieces on the board.
func New() Position {
	var p Position
	p.KingSq[piece.White] = square.None
	p.KingSq[piece.Black] = square.None
	return p
}

// String renders the position as an 8x8 grid, rank 8 first.
func (p *Position) String() string {
	var s string
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			s += p.At(square.From(file, rank)).String()
			if file != square.FileH {
				s += " "
			}
		}
		s += "\n"
	}
	return s
}

// Occupied returns the set of all occupied squares.
func (p *Position) Occupied() bitboard.Board {
	return p.ColorBBs[piece.White] | p.ColorBBs[piece.Black]
}

// Side returns the set of squares occupied by c's pieces.
func (p *Position) Side(c piece.Color) bitboard.Board {
	return p.ColorBBs[c]
}

// Pieces returns the set of squares holding a piece of type t and
// color c.
func (p *Position) Pieces(t piece.Type, c piece.Color) bitboard.Board {
	return p.PieceBBs[piece.New(t, c)]
}

// At returns the piece on s, or piece.NoPiece if it is empty.
func (p *Position) At(s square.Square) piece.Piece {
	return p.Mailbox[s]
}

// King returns the square c's king stands on.
func (p *Position) King(c piece.Color) square.Square {
	return p.KingSq[c]
}

// Place puts a piece of type t and color c on square s. The square
// must be empty; placing over an occupied square is a programming
// error and panics.
func (p *Position) Place(t piece.Type, s square.Square, c piece.Color) {
	if p.Mailbox[s] != piece.NoPiece {
		panic(fmt.Sprintf("position: Place: %s is occupied by %s", s, p.Mailbox[s]))
	}

	pc := piece.New(t, c)
	p.Mailbox[s] = pc
	p.PieceBBs[pc].Set(s)
	p.ColorBBs[c].Set(s)
	p.Material[c] += Value[t]

	if t == piece.King {
		p.KingSq[c] = s
	}
}

// Remove takes a piece of type t and color c off square s. The
// square must hold exactly that piece; anything else is a programming
// error and panics.
func (p *Position) Remove(t piece.Type, s square.Square, c piece.Color) {
	pc := piece.New(t, c)
	if p.Mailbox[s] != pc {
		panic(fmt.Sprintf("position: Remove: %s does not hold %s", s, pc))
	}

	p.Mailbox[s] = piece.NoPiece
	p.PieceBBs[pc].Unset(s)
	p.ColorBBs[c].Unset(s)
	p.Material[c] -= Value[t]
}

// Relocate moves a piece of type t and color c from one square to
// another without touching the incremental material score.
func (p *Position) Relocate(t piece.Type, from, to square.Square, c piece.Color) {
	pc := piece.New(t, c)
	if p.Mailbox[from] != pc {
		panic(fmt.Sprintf("position: Relocate: %s does not hold %s", from, pc))
	}
	if p.Mailbox[to] != piece.NoPiece {
		panic(fmt.Sprintf("position: Relocate: %s is occupied by %s", to, p.Mailbox[to]))
	}

	p.Mailbox[from] = piece.NoPiece
	p.Mailbox[to] = pc
	p.PieceBBs[pc].Unset(from)
	p.PieceBBs[pc].Set(to)
	p.ColorBBs[c].Unset(from)
	p.ColorBBs[c].Set(to)

	if t == piece.King {
		p.KingSq[c] = to
	}
}

// IsAttacked reports whether s is attacked by any of by's pieces,
// given the current occupancy.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	occ := p.Occupied()

	if attacks.PawnAttack[by.Other()][s]&p.Pieces(piece.Pawn, by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&p.Pieces(piece.Knight, by) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&p.Pieces(piece.King, by) != bitboard.Empty {
		return true
	}

	queens := p.Pieces(piece.Queen, by)

	if attacks.Bishop(s, occ)&(p.Pieces(piece.Bishop, by)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(p.Pieces(piece.Rook, by)|queens) != bitboard.Empty
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c piece.Color) bool {
	return p.IsAttacked(p.KingSq[c], c.Other())
}

// InsufficientMaterial reports whether neither side has enough
// material to deliver checkmate: K vs K, K+minor vs K, or K+B vs K+B
// with same-colored bishops. Any pawn, rook, or queen on the board
// makes this false.
func (p *Position) InsufficientMaterial() bool {
	for _, c := range [...]piece.Color{piece.White, piece.Black} {
		if p.Pieces(piece.Pawn, c)|p.Pieces(piece.Rook, c)|p.Pieces(piece.Queen, c) != bitboard.Empty {
			return false
		}
	}

	whiteMinors := p.Pieces(piece.Knight, piece.White).Count() + p.Pieces(piece.Bishop, piece.White).Count()
	blackMinors := p.Pieces(piece.Knight, piece.Black).Count() + p.Pieces(piece.Bishop, piece.Black).Count()

	switch {
	case whiteMinors == 0 && blackMinors == 0:
		return true // K vs K
	case whiteMinors+blackMinors == 1:
		return true // K+minor vs K
	case whiteMinors == 1 && blackMinors == 1:
		wb := p.Pieces(piece.Bishop, piece.White)
		bb := p.Pieces(piece.Bishop, piece.Black)
		if wb != bitboard.Empty && bb != bitboard.Empty {
			return wb.FirstOne().IsLight() == bb.FirstOne().IsLight()
		}
		return false // one side has a lone knight, the other a lone bishop
	default:
		return false
	}
}
