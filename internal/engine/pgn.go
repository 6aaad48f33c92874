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

package engine

import (
	"fmt"
	"strings"

	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/movegen"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

// resolveSAN resolves one SAN token (e4, Nf3, exd5, O-O, e8=Q, Qxh7#,
// ...) against g's current legal move list. Check/mate/annotation
// suffixes are discarded and disambiguation is read loosely, but the
// destination square, moving piece type, and promotion piece (plus
// any disambiguating file/rank) are always enough to pick a single
// legal move out of Generate's list.
func resolveSAN(g *game.Game, san string) (move.Move, error) {
	pre := movegen.Compute(&g.Position, &g.State)
	moves := movegen.Generate(&g.Position, &g.State, &pre)

	token := strings.TrimRight(san, "+#!?")

	switch token {
	case "O-O", "0-0":
		return findCastle(moves, castleSquare(g.State.SideToMove, true))
	case "O-O-O", "0-0-0":
		return findCastle(moves, castleSquare(g.State.SideToMove, false))
	}

	pieceType := piece.Pawn
	body := token
	if len(body) > 0 {
		if t := pieceLetter(body[0]); t != piece.NoType {
			pieceType = t
			body = body[1:]
		}
	}

	promo := piece.NoType
	if idx := strings.IndexByte(body, '='); idx >= 0 {
		if idx+1 >= len(body) {
			return move.Null, fmt.Errorf("malformed move %q", san)
		}
		if promo = pieceLetter(body[idx+1]); promo == piece.NoType {
			return move.Null, fmt.Errorf("malformed move %q", san)
		}
		body = body[:idx]
	}

	body = strings.ReplaceAll(body, "x", "")
	if len(body) < 2 {
		return move.Null, fmt.Errorf("malformed move %q", san)
	}

	dest, ok := parseSquare(body[len(body)-2:])
	if !ok {
		return move.Null, fmt.Errorf("malformed move %q", san)
	}
	disambig := body[:len(body)-2]

	return findMove(moves, pieceType, promo, dest, disambig)
}

// pieceLetter maps a SAN piece letter to its Type, or NoType if b
// isn't one.
func pieceLetter(b byte) piece.Type {
	switch b {
	case 'N':
		return piece.Knight
	case 'B':
		return piece.Bishop
	case 'R':
		return piece.Rook
	case 'Q':
		return piece.Queen
	case 'K':
		return piece.King
	default:
		return piece.NoType
	}
}

// parseSquare parses a two-character algebraic square like "e4".
func parseSquare(s string) (square.Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return square.None, false
	}
	return square.From(square.File(s[0]-'a'), square.Rank(s[1]-'1')), true
}

// matchesDisambig reports whether from satisfies every file/rank
// character given in a SAN disambiguation fragment (e.g. the "b" in
// Nbd7, the "1" in R1a3, or both in a full-square disambiguation).
func matchesDisambig(from square.Square, disambig string) bool {
	for i := 0; i < len(disambig); i++ {
		switch c := disambig[i]; {
		case c >= 'a' && c <= 'h':
			if square.File(c-'a') != from.File() {
				return false
			}
		case c >= '1' && c <= '8':
			if square.Rank(c-'1') != from.Rank() {
				return false
			}
		}
	}
	return true
}

// castleSquare returns the king's destination square for a castle on
// stm's side of the board.
func castleSquare(stm piece.Color, kingside bool) square.Square {
	switch {
	case stm == piece.White && kingside:
		return square.G1
	case stm == piece.White:
		return square.C1
	case kingside:
		return square.G8
	default:
		return square.C8
	}
}

func findCastle(moves []move.Move, dest square.Square) (move.Move, error) {
	for _, mv := range moves {
		if mv.Kind == move.CastleKind && mv.To == dest {
			return mv, nil
		}
	}
	return move.Null, fmt.Errorf("no legal castle to %s", dest)
}

// findMove picks the single legal move matching a SAN token's parsed
// fields. Generate never offers two legal moves agreeing on piece
// type, destination, promotion piece, and every disambiguating
// file/rank, so one full match (or one filtered down to a single
// candidate by disambig) is always decisive.
func findMove(moves []move.Move, pieceType, promo piece.Type, dest square.Square, disambig string) (move.Move, error) {
	var candidate move.Move
	found := false

	for _, mv := range moves {
		if mv.Piece != pieceType || mv.To != dest {
			continue
		}
		if promo == piece.NoType {
			if mv.Kind == move.Promotion {
				continue
			}
		} else if mv.Kind != move.Promotion || mv.Promo != promo {
			continue
		}
		if disambig != "" && !matchesDisambig(mv.From, disambig) {
			continue
		}

		if found {
			return move.Null, fmt.Errorf("ambiguous move to %s", dest)
		}
		candidate, found = mv, true
	}

	if !found {
		return move.Null, fmt.Errorf("no legal move to %s", dest)
	}
	return candidate, nil
}
