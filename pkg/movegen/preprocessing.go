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

// Package movegen generates legal chess moves. It precomputes, once
// per node, the checkers/pinned/king-danger information described as
// "LegalCheckPreprocessing" and uses it both while generating moves
// and while judging the legality of an externally supplied move (for
// example one read off the UCI wire).
package movegen

import (
	"github.com/corvid-chess/corvid/pkg/attacks"
	"github.com/corvid-chess/corvid/pkg/bitboard"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/position"
	"github.com/corvid-chess/corvid/pkg/square"
	"github.com/corvid-chess/corvid/pkg/state"
)

// Preprocessing holds the check/pin/danger information computed once
// for the side to move at a search node, and reused by every move
// generated or validated at that node.
type Preprocessing struct {
	Us, Them piece.Color
	KingSq   square.Square

	// Checkers is the set of enemy pieces directly attacking the king.
	Checkers bitboard.Board
	// CheckN is Checkers.Count(), cached since it is checked often.
	CheckN int
	// CheckMask is the set of squares a friendly piece may move to in
	// order to resolve the current check(s): Universe if not in check,
	// empty under double check (only king moves are legal then).
	CheckMask bitboard.Board

	// PinnedDiagonal and PinnedOrthogonal hold, respectively, friendly
	// pieces pinned along a diagonal and along a rank or file. A piece
	// may appear in at most one of the two sets.
	PinnedDiagonal   bitboard.Board
	PinnedOrthogonal bitboard.Board

	// KingDanger is the set of squares attacked by the enemy with the
	// friendly king removed from the board, so that sliding attacks
	// see through the square the king currently occupies.
	KingDanger bitboard.Board
}

// Compute builds the Preprocessing for the side to move in pos/st.
func Compute(pos *position.Position, st *state.State) Preprocessing {
	var p Preprocessing

	p.Us = st.SideToMove
	p.Them = p.Us.Other()
	p.KingSq = pos.King(p.Us)

	p.calculateCheckmask(pos)
	p.calculatePinmask(pos)
	p.KingDanger = seenSquares(pos, p.Them)

	return p
}

func (p *Preprocessing) calculateCheckmask(pos *position.Position) {
	occ := pos.Occupied()

	pawns := pos.Pieces(piece.Pawn, p.Them) & attacks.PawnAttack[p.Us][p.KingSq]
	knights := pos.Pieces(piece.Knight, p.Them) & attacks.Knight[p.KingSq]
	bishops := (pos.Pieces(piece.Bishop, p.Them) | pos.Pieces(piece.Queen, p.Them)) & attacks.Bishop(p.KingSq, occ)
	rooks := (pos.Pieces(piece.Rook, p.Them) | pos.Pieces(piece.Queen, p.Them)) & attacks.Rook(p.KingSq, occ)

	p.CheckN = 0
	p.CheckMask = bitboard.Empty
	p.Checkers = bitboard.Empty

	switch {
	case pawns != bitboard.Empty:
		p.Checkers |= pawns
		p.CheckMask |= pawns
		p.CheckN++
	case knights != bitboard.Empty:
		p.Checkers |= knights
		p.CheckMask |= knights
		p.CheckN++
	}

	if p.CheckN < 2 && bishops != bitboard.Empty {
		if p.CheckN == 0 && bishops.Count() > 1 {
			// double check by two bishop-likes, mask stays empty
			p.Checkers |= bishops
			p.CheckN += bishops.Count()
		} else {
			sq := bishops.FirstOne()
			p.Checkers |= bitboard.Squares[sq]
			p.CheckMask |= attacks.Between[p.KingSq][sq] | bitboard.Squares[sq]
			p.CheckN++
		}
	}

	if p.CheckN < 2 && rooks != bitboard.Empty {
		if p.CheckN == 0 && rooks.Count() > 1 {
			// double check by two rook-likes, mask stays empty
			p.Checkers |= rooks
			p.CheckN += rooks.Count()
		} else {
			sq := rooks.FirstOne()
			p.Checkers |= bitboard.Squares[sq]
			p.CheckMask |= attacks.Between[p.KingSq][sq] | bitboard.Squares[sq]
			p.CheckN++
		}
	}

	if p.CheckN >= 2 {
		p.CheckMask = bitboard.Empty
	}
	if p.CheckN == 0 {
		p.CheckMask = bitboard.Universe
	}
}

func (p *Preprocessing) calculatePinmask(pos *position.Position) {
	friends := pos.Side(p.Us)
	enemies := pos.Side(p.Them)

	p.PinnedDiagonal = bitboard.Empty
	p.PinnedOrthogonal = bitboard.Empty

	rookLikes := (pos.Pieces(piece.Rook, p.Them) | pos.Pieces(piece.Queen, p.Them)) & attacks.Rook(p.KingSq, enemies)
	for rookLikes != bitboard.Empty {
		from := rookLikes.Pop()
		ray := attacks.Between[p.KingSq][from] | bitboard.Squares[from]
		if (ray & friends).Count() == 1 {
			p.PinnedOrthogonal |= ray
		}
	}

	bishopLikes := (pos.Pieces(piece.Bishop, p.Them) | pos.Pieces(piece.Queen, p.Them)) & attacks.Bishop(p.KingSq, enemies)
	for bishopLikes != bitboard.Empty {
		from := bishopLikes.Pop()
		ray := attacks.Between[p.KingSq][from] | bitboard.Squares[from]
		if (ray & friends).Count() == 1 {
			p.PinnedDiagonal |= ray
		}
	}
}

// Pinned returns the union of both pin masks.
func (p *Preprocessing) Pinned() bitboard.Board {
	return p.PinnedDiagonal | p.PinnedOrthogonal
}

// seenSquares returns every square attacked by by's pieces, with the
// king of by's opponent excluded as a blocker so that sliding attacks
// see through the square that king currently occupies (it must move away,
// not hide behind itself).
func seenSquares(pos *position.Position, by piece.Color) bitboard.Board {
	blockers := pos.Occupied() &^ pos.Pieces(piece.King, by.Other())

	seen := attacks.PawnsLeft(pos.Pieces(piece.Pawn, by), by) | attacks.PawnsRight(pos.Pieces(piece.Pawn, by), by)

	knights := pos.Pieces(piece.Knight, by)
	for knights != bitboard.Empty {
		seen |= attacks.Knight[knights.Pop()]
	}

	bishops := pos.Pieces(piece.Bishop, by)
	for bishops != bitboard.Empty {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}

	rooks := pos.Pieces(piece.Rook, by)
	for rooks != bitboard.Empty {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}

	queens := pos.Pieces(piece.Queen, by)
	for queens != bitboard.Empty {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[pos.King(by)]

	return seen
}
