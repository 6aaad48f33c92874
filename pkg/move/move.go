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

// Package move declares the tagged Move representation used
// throughout the engine. Every move carries a Kind that selects its
// make/unmake update path, instead of a single flags integer that
// would require branching everywhere it is consumed.
package move

import (
	"fmt"

	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

// Kind discriminates the update logic a Move requires.
type Kind uint8

// the move kinds the engine distinguishes.
const (
	Quiet Kind = iota
	Capture
	DoublePawnPush
	CastleKind
	EnPassant
	Promotion
)

// String names a Kind, used in debug output.
func (k Kind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case DoublePawnPush:
		return "double-pawn-push"
	case CastleKind:
		return "castle"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	default:
		return "unknown"
	}
}

// Move is a single chess move, tagged with the Kind that determines
// how Game.MakeMove updates Position and State for it. It is a small
// value type, copied on the stack, never boxed or dispatched through
// an interface.
type Move struct {
	From  square.Square
	To    square.Square
	Piece piece.Type // type of the piece moving, before promotion
	Kind  Kind
	// Promo is the promotion piece type; only meaningful when Kind ==
	// Promotion.
	Promo piece.Type
	// Captured is set for Capture, EnPassant, and capturing Promotion
	// moves, for move-ordering (MVV-LVA) purposes. It does not carry
	// the piece removed from the board — Game.MakeMove re-derives that
	// from Position so it remains correct even for speculative moves
	// built outside search (e.g. UCI input).
	Captured bool
}

// New builds a quiet or capturing move that is not a double pawn push,
// castle, en passant capture, or promotion.
func New(from, to square.Square, p piece.Type, capture bool) Move {
	k := Quiet
	if capture {
		k = Capture
	}
	return Move{From: from, To: to, Piece: p, Kind: k, Captured: capture}
}

// NewDoublePawnPush builds a pawn double push, the only move kind
// that sets a new en-passant target square.
func NewDoublePawnPush(from, to square.Square) Move {
	return Move{From: from, To: to, Piece: piece.Pawn, Kind: DoublePawnPush}
}

// NewCastle builds a castling move; From/To are the king's own
// start/destination squares (the rook's squares are derived from the
// castling corner table by the mover).
func NewCastle(from, to square.Square) Move {
	return Move{From: from, To: to, Piece: piece.King, Kind: CastleKind}
}

// NewEnPassant builds an en-passant capture; To is the destination
// square of the capturing pawn, not the square of the captured pawn.
func NewEnPassant(from, to square.Square) Move {
	return Move{From: from, To: to, Piece: piece.Pawn, Kind: EnPassant, Captured: true}
}

// NewPromotion builds a pawn promotion, optionally also a capture.
func NewPromotion(from, to square.Square, promo piece.Type, capture bool) Move {
	return Move{From: from, To: to, Piece: piece.Pawn, Kind: Promotion, Promo: promo, Captured: capture}
}

// IsCapture reports whether the move removes an enemy piece from the
// board, including en-passant and capturing promotions.
func (m Move) IsCapture() bool {
	return m.Captured
}

// IsLoud reports whether the move is a capture or a promotion, the
// subset of moves quiescence search considers.
func (m Move) IsLoud() bool {
	return m.Captured || m.Kind == Promotion
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion, the only kind eligible for the killer-move table.
func (m Move) IsQuiet() bool {
	return !m.IsLoud()
}

// Null is the zero Move, used as a sentinel for "no move" (e.g. an
// empty TT move slot).
var Null Move

// IsNull reports whether m is the Null sentinel.
func (m Move) IsNull() bool {
	return m == Null
}

// String renders a move in UCI long algebraic form: from-square,
// to-square, and a promotion letter if any.
func (m Move) String() string {
	if m.Kind == Promotion {
		return fmt.Sprintf("%s%s%s", m.From, m.To, m.Promo)
	}
	return fmt.Sprintf("%s%s", m.From, m.To)
}
