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

package search

import (
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/position"
)

// move ordering scores. A move's score decides how early it is tried
// in alphaBeta/quiescence; trying the move most likely to cause a
// beta cutoff first is what makes alpha-beta pruning effective.
const (
	scoreTT      int32 = 60
	scoreKiller1 int32 = 9
	scoreKiller2 int32 = 8
	scoreQuiet   int32 = 0
)

// mvvLva scores a capture by Most Valuable Victim / Least Valuable
// Attacker: 10*victim + (6-attacker), using piece.Type's Pawn=1..
// King=6 ordering directly as the victim/attacker index. This lands
// in 10..55 since a king is never a legal capture victim.
func mvvLva(victim, attacker piece.Type) int32 {
	return 10*int32(victim) + 6 - int32(attacker)
}

// promotionBonus ranks non-capturing promotions relative to one
// another, queen first since it is almost always correct.
func promotionBonus(promo piece.Type) int32 {
	switch promo {
	case piece.Queen:
		return 55
	case piece.Rook:
		return 40
	case piece.Bishop:
		return 30
	case piece.Knight:
		return 20
	default:
		return 0
	}
}

// scorer returns a move-ordering score function for pos, given the
// move the transposition table suggests for it (move.Null if none)
// and that node's two killer moves.
func scorer(pos *position.Position, ttMove, killer1, killer2 move.Move) func(move.Move) int32 {
	return func(m move.Move) int32 {
		switch {
		case m == ttMove:
			return scoreTT

		case m.Kind == move.Promotion:
			bonus := promotionBonus(m.Promo)
			if m.Captured {
				bonus += mvvLva(pos.At(m.To).Type(), piece.Pawn)
			}
			return bonus

		case m.Captured:
			victim := piece.Pawn
			if m.Kind != move.EnPassant {
				victim = pos.At(m.To).Type()
			}
			return mvvLva(victim, m.Piece)

		case m == killer1:
			return scoreKiller1
		case m == killer2:
			return scoreKiller2

		default:
			return scoreQuiet
		}
	}
}
