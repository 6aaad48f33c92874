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

// Package game owns the mutable chess game state: a Position, its
// State, and the history needed to undo moves and detect repetition.
// Position and State are mutated only through MakeMove, UnmakeMove,
// MakeNullMove, and UnmakeNullMove.
package game

import (
	"github.com/corvid-chess/corvid/pkg/attacks"
	"github.com/corvid-chess/corvid/pkg/castling"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/position"
	"github.com/corvid-chess/corvid/pkg/square"
	"github.com/corvid-chess/corvid/pkg/state"
	"github.com/corvid-chess/corvid/pkg/zobrist"
)

// undo is the minimal delta MakeMove needs to reverse a move: the
// move itself, the captured piece type (NoType if none), and a full
// copy of the State from immediately before the move.
type undo struct {
	Move          move.Move
	Captured      piece.Type
	CapturedColor piece.Color
	Prior         state.State
}

// nullUndo is the delta needed to reverse a null move.
type nullUndo struct {
	EnPassant square.Square
	Key       zobrist.Key
}

// Game is a chess position plus the history needed to undo moves
// made against it and to detect repetition.
type Game struct {
	Position position.Position
	State    state.State

	history     []undo
	nullHistory []nullUndo

	// keyHistory records the Zobrist key after every move played,
	// used for repetition detection. irreversible is the index into
	// keyHistory of the position right after the most recent
	// irreversible move (pawn push, capture, or castle-right loss);
	// only keys from that point on can repeat the current position.
	keyHistory   []zobrist.Key
	irreversible int
}

// New returns a Game for the given Position and State.
func New(pos position.Position, st state.State) *Game {
	return &Game{Position: pos, State: st}
}

// MakeMove plays mv, the caller's responsibility to ensure it is
// legal in the current position.
func (g *Game) MakeMove(mv move.Move) {
	prior := g.State
	st := &g.State
	pos := &g.Position

	us := st.SideToMove
	them := us.Other()

	if st.EnPassant != square.None {
		st.Key ^= zobrist.EnPassant[st.EnPassant.File()]
	}
	st.Key ^= zobrist.Castling[st.Castling]

	st.EnPassant = square.None
	st.HalfMoves++

	captured := piece.NoType

	switch mv.Kind {
	case move.DoublePawnPush:
		epSq := square.Square((int(mv.From) + int(mv.To)) / 2)
		if attacks.PawnAttack[us][epSq]&pos.Pieces(piece.Pawn, them) != 0 {
			st.EnPassant = epSq
			st.Key ^= zobrist.EnPassant[epSq.File()]
		}
		relocate(pos, st, piece.Pawn, mv.From, mv.To, us)
		st.HalfMoves = 0

	case move.EnPassant:
		capturedSq := square.Square(int(mv.To) - pushDelta(us))
		captured = piece.Pawn
		remove(pos, st, piece.Pawn, capturedSq, them)
		relocate(pos, st, piece.Pawn, mv.From, mv.To, us)
		st.HalfMoves = 0

	case move.CastleKind:
		relocate(pos, st, piece.King, mv.From, mv.To, us)
		corner := cornerByKingTo(mv.To, us)
		relocate(pos, st, piece.Rook, corner.RookFrom, corner.RookTo, us)

	case move.Promotion:
		if mv.Captured {
			captured = pos.At(mv.To).Type()
			remove(pos, st, captured, mv.To, them)
			st.HalfMoves = 0
		}
		remove(pos, st, piece.Pawn, mv.From, us)
		place(pos, st, mv.Promo, mv.To, us)
		st.HalfMoves = 0

	case move.Capture:
		captured = pos.At(mv.To).Type()
		remove(pos, st, captured, mv.To, them)
		relocate(pos, st, mv.Piece, mv.From, mv.To, us)
		st.HalfMoves = 0

	default: // Quiet
		relocate(pos, st, mv.Piece, mv.From, mv.To, us)
		if mv.Piece == piece.Pawn {
			st.HalfMoves = 0
		}
	}

	st.Castling &^= castling.LostOnMove(mv.From)
	st.Castling &^= castling.LostOnMove(mv.To)
	st.Key ^= zobrist.Castling[st.Castling]

	if us == piece.Black {
		st.FullMoves++
	}
	st.SideToMove = them
	st.Key ^= zobrist.SideToMove

	irreversible := mv.Piece == piece.Pawn || mv.IsCapture() || prior.Castling != st.Castling

	g.history = append(g.history, undo{Move: mv, Captured: captured, CapturedColor: them, Prior: prior})
	g.keyHistory = append(g.keyHistory, st.Key)
	if irreversible {
		// the position resulting from this move (the key just
		// appended) becomes the new repetition-counting baseline.
		g.irreversible = len(g.keyHistory) - 1
	}
}

// UnmakeMove reverses the most recent MakeMove call.
func (g *Game) UnmakeMove() {
	n := len(g.history) - 1
	u := g.history[n]
	g.history = g.history[:n]
	g.keyHistory = g.keyHistory[:n]

	if g.irreversible >= n {
		g.irreversible = 0
		castlingAfter := func(i int) castling.Rights {
			if i == n-1 {
				return u.Prior.Castling
			}
			return g.history[i+1].Prior.Castling
		}
		for i := n - 1; i >= 0; i-- {
			if g.history[i].Move.Piece == piece.Pawn || g.history[i].Move.IsCapture() || g.history[i].Prior.Castling != castlingAfter(i) {
				g.irreversible = i
				break
			}
		}
	}

	pos := &g.Position
	mv := u.Move
	us := u.Prior.SideToMove
	them := us.Other()

	switch mv.Kind {
	case move.DoublePawnPush:
		pos.Relocate(piece.Pawn, mv.To, mv.From, us)

	case move.EnPassant:
		pos.Relocate(piece.Pawn, mv.To, mv.From, us)
		capturedSq := square.Square(int(mv.To) - pushDelta(us))
		pos.Place(piece.Pawn, capturedSq, them)

	case move.CastleKind:
		pos.Relocate(piece.King, mv.To, mv.From, us)
		corner := cornerByKingTo(mv.To, us)
		pos.Relocate(piece.Rook, corner.RookTo, corner.RookFrom, us)

	case move.Promotion:
		pos.Remove(mv.Promo, mv.To, us)
		if mv.Captured {
			pos.Place(u.Captured, mv.To, them)
		}
		pos.Place(piece.Pawn, mv.From, us)

	case move.Capture:
		pos.Relocate(mv.Piece, mv.To, mv.From, us)
		pos.Place(u.Captured, mv.To, them)

	default: // Quiet
		pos.Relocate(mv.Piece, mv.To, mv.From, us)
	}

	g.State = u.Prior
}

// MakeNullMove plays a null ("pass") move: flips the side to move and
// clears the en-passant target, without touching the move counters
// repetition detection relies on.
func (g *Game) MakeNullMove() {
	st := &g.State

	g.nullHistory = append(g.nullHistory, nullUndo{EnPassant: st.EnPassant, Key: st.Key})

	if st.EnPassant != square.None {
		st.Key ^= zobrist.EnPassant[st.EnPassant.File()]
		st.EnPassant = square.None
	}

	st.SideToMove = st.SideToMove.Other()
	st.Key ^= zobrist.SideToMove
}

// UnmakeNullMove reverses the most recent MakeNullMove call.
func (g *Game) UnmakeNullMove() {
	n := len(g.nullHistory) - 1
	u := g.nullHistory[n]
	g.nullHistory = g.nullHistory[:n]

	g.State.SideToMove = g.State.SideToMove.Other()
	g.State.EnPassant = u.EnPassant
	g.State.Key = u.Key
}

// IsDraw reports whether the current position is drawn by the
// 50-move rule, insufficient material, or threefold repetition.
func (g *Game) IsDraw() bool {
	if g.State.HalfMoves >= 100 {
		return true
	}
	if g.Position.InsufficientMaterial() {
		return true
	}
	return g.isRepetition()
}

func (g *Game) isRepetition() bool {
	key := g.State.Key
	count := 1 // the current position
	// the starting position is not in keyHistory; history[0].Prior holds its key.
	if g.irreversible == 0 && len(g.history) > 0 && g.history[0].Prior.Key == key {
		count++
	}
	// the last keyHistory entry is the current position itself (after a
	// null move, a position with the other side to move), so skip it.
	for i := len(g.keyHistory) - 2; i >= g.irreversible; i-- {
		if g.keyHistory[i] == key {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

func place(pos *position.Position, st *state.State, t piece.Type, s square.Square, c piece.Color) {
	pos.Place(t, s, c)
	st.Key ^= zobrist.PieceSquare[piece.New(t, c)][s]
}

func remove(pos *position.Position, st *state.State, t piece.Type, s square.Square, c piece.Color) {
	pos.Remove(t, s, c)
	st.Key ^= zobrist.PieceSquare[piece.New(t, c)][s]
}

func relocate(pos *position.Position, st *state.State, t piece.Type, from, to square.Square, c piece.Color) {
	pos.Relocate(t, from, to, c)
	st.Key ^= zobrist.PieceSquare[piece.New(t, c)][from]
	st.Key ^= zobrist.PieceSquare[piece.New(t, c)][to]
}

func pushDelta(c piece.Color) int {
	if c == piece.White {
		return 8
	}
	return -8
}

func cornerByKingTo(to square.Square, c piece.Color) castling.RookCorner {
	for _, corner := range castling.Corners {
		if corner.KingTo == to && corner.Right&homeRights(c) != 0 {
			return corner
		}
	}
	panic("game: no castling corner for king destination " + to.String())
}

func homeRights(c piece.Color) castling.Rights {
	if c == piece.White {
		return castling.White
	}
	return castling.Black
}
