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

package movegen

import (
	"github.com/corvid-chess/corvid/pkg/attacks"
	"github.com/corvid-chess/corvid/pkg/bitboard"
	"github.com/corvid-chess/corvid/pkg/castling"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/position"
	"github.com/corvid-chess/corvid/pkg/square"
	"github.com/corvid-chess/corvid/pkg/state"
)

// averageMoves estimates the branching factor of a typical
// middlegame position, used to size the move slice up front.
// https://chess.stackexchange.com/a/24325/33336
const averageMoves = 31

// Generate returns every legal move for the side to move in pos/st,
// using pre (see Compute). Generation is the "Normal" mode when pre
// is not in check, and the "Escape" mode (restricted to checkmask)
// when it is; double check further restricts the result to king
// moves only.
func Generate(pos *position.Position, st *state.State, pre *Preprocessing) []move.Move {
	moves := make([]move.Move, 0, averageMoves)

	appendKingMoves(&moves, pos, st, pre)

	if pre.CheckN >= 2 {
		return moves
	}

	appendKnightMoves(&moves, pos, pre)
	appendSliderMoves(&moves, pos, pre, piece.Bishop)
	appendSliderMoves(&moves, pos, pre, piece.Rook)
	appendSliderMoves(&moves, pos, pre, piece.Queen)
	appendPawnMoves(&moves, pos, st, pre)

	return moves
}

// Loud returns the subset of Generate's result that captures or
// promotes, the move set quiescence search considers.
func Loud(pos *position.Position, st *state.State, pre *Preprocessing) []move.Move {
	all := Generate(pos, st, pre)
	loud := all[:0]
	for _, m := range all {
		if m.IsLoud() {
			loud = append(loud, m)
		}
	}
	return loud
}

// IsLegal reports whether mv is a legal move in pos/st, by looking it
// up in Generate's list for that position.
func IsLegal(pos *position.Position, st *state.State, mv move.Move) bool {
	pre := Compute(pos, st)
	for _, legal := range Generate(pos, st, &pre) {
		if legal == mv {
			return true
		}
	}
	return false
}

func appendKingMoves(moves *[]move.Move, pos *position.Position, st *state.State, pre *Preprocessing) {
	from := pre.KingSq
	friends := pos.Side(pre.Us)
	targets := attacks.King[from] &^ friends &^ pre.KingDanger

	for targets != bitboard.Empty {
		to := targets.Pop()
		*moves = append(*moves, move.New(from, to, piece.King, pos.Side(pre.Them).IsSet(to)))
	}

	if pre.CheckN == 0 {
		appendCastlingMoves(moves, pos, st, pre)
	}
}

func appendCastlingMoves(moves *[]move.Move, pos *position.Position, st *state.State, pre *Preprocessing) {
	occ := pos.Occupied()

	for _, corner := range castling.Corners {
		if corner.Right&homeRights(pre.Us) == 0 || st.Castling&corner.Right == 0 {
			continue
		}

		empty := true
		for _, s := range corner.Empty {
			if occ.IsSet(s) {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}

		safe := true
		for _, s := range corner.Safe {
			if pre.KingDanger.IsSet(s) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}

		*moves = append(*moves, move.NewCastle(pre.KingSq, corner.KingTo))
	}
}

func homeRights(c piece.Color) castling.Rights {
	if c == piece.White {
		return castling.White
	}
	return castling.Black
}

func appendKnightMoves(moves *[]move.Move, pos *position.Position, pre *Preprocessing) {
	friends := pos.Side(pre.Us)
	enemies := pos.Side(pre.Them)
	target := ^friends & pre.CheckMask

	knights := pos.Pieces(piece.Knight, pre.Us) &^ pre.Pinned()
	for knights != bitboard.Empty {
		from := knights.Pop()
		targets := attacks.Knight[from] & target
		for targets != bitboard.Empty {
			to := targets.Pop()
			*moves = append(*moves, move.New(from, to, piece.Knight, enemies.IsSet(to)))
		}
	}
}

func appendSliderMoves(moves *[]move.Move, pos *position.Position, pre *Preprocessing, t piece.Type) {
	friends := pos.Side(pre.Us)
	enemies := pos.Side(pre.Them)
	occ := pos.Occupied()
	target := ^friends & pre.CheckMask

	pieces := pos.Pieces(t, pre.Us)
	for pieces != bitboard.Empty {
		from := pieces.Pop()

		var attack bitboard.Board
		switch t {
		case piece.Bishop:
			attack = attacks.Bishop(from, occ)
		case piece.Rook:
			attack = attacks.Rook(from, occ)
		case piece.Queen:
			attack = attacks.Queen(from, occ)
		}

		targets := attack & target
		if pre.PinnedDiagonal.IsSet(from) {
			targets &= pre.PinnedDiagonal
		} else if pre.PinnedOrthogonal.IsSet(from) {
			targets &= pre.PinnedOrthogonal
		}

		for targets != bitboard.Empty {
			to := targets.Pop()
			*moves = append(*moves, move.New(from, to, t, enemies.IsSet(to)))
		}
	}
}

func appendPawnMoves(moves *[]move.Move, pos *position.Position, st *state.State, pre *Preprocessing) {
	us := pre.Us
	friends := pos.Side(us)
	enemies := pos.Side(pre.Them)
	occ := friends | enemies

	promotionRankBB := bitboard.Ranks[promotionRank(us)]
	doublePushRankBB := bitboard.Ranks[doublePushRank(us)]

	pawns := pos.Pieces(piece.Pawn, us)
	pawnsCanAttack := pawns &^ pre.PinnedOrthogonal

	unpinnedAttackers := pawnsCanAttack &^ pre.PinnedDiagonal
	pinnedAttackers := pawnsCanAttack & pre.PinnedDiagonal

	captureTarget := enemies & pre.CheckMask

	attackLeft := attacks.PawnsLeft(unpinnedAttackers, us) & captureTarget
	attackLeft |= attacks.PawnsLeft(pinnedAttackers, us) & captureTarget & pre.PinnedDiagonal

	attackRight := attacks.PawnsRight(unpinnedAttackers, us) & captureTarget
	attackRight |= attacks.PawnsRight(pinnedAttackers, us) & captureTarget & pre.PinnedDiagonal

	appendPawnCaptures(moves, attackLeft&^promotionRankBB, leftDelta(us), us)
	appendPawnCaptures(moves, attackRight&^promotionRankBB, rightDelta(us), us)
	appendPawnCapturePromotions(moves, attackLeft&promotionRankBB, leftDelta(us), us)
	appendPawnCapturePromotions(moves, attackRight&promotionRankBB, rightDelta(us), us)

	pawnsCanPush := pawns &^ pre.PinnedDiagonal
	unpinnedPushers := pawnsCanPush &^ pre.PinnedOrthogonal
	pinnedPushers := pawnsCanPush & pre.PinnedOrthogonal

	pushTarget := pre.CheckMask &^ occ

	singleUnpinned := attacks.PawnsPush(unpinnedPushers, us)
	singlePinned := attacks.PawnsPush(pinnedPushers, us) & pre.PinnedOrthogonal

	single := (singleUnpinned | singlePinned) &^ occ
	double := attacks.PawnsPush(single&doublePushRankBB, us) & pushTarget
	single &= pushTarget

	appendPawnPushes(moves, single&^promotionRankBB, pushDelta(us), us, false)
	appendPawnPushes(moves, double, pushDelta(us)*2, us, true)
	appendPawnPromotionPushes(moves, single&promotionRankBB, pushDelta(us), us)

	if st.EnPassant != square.None {
		appendEnPassant(moves, pos, pre, st.EnPassant, pawnsCanAttack)
	}
}

func appendPawnCaptures(moves *[]move.Move, targets bitboard.Board, delta int, us piece.Color) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := square.Square(int(to) - delta)
		*moves = append(*moves, move.New(from, to, piece.Pawn, true))
	}
}

func appendPawnCapturePromotions(moves *[]move.Move, targets bitboard.Board, delta int, us piece.Color) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := square.Square(int(to) - delta)
		for _, promo := range piece.Promotions {
			*moves = append(*moves, move.NewPromotion(from, to, promo, true))
		}
	}
}

func appendPawnPushes(moves *[]move.Move, targets bitboard.Board, delta int, us piece.Color, double bool) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := square.Square(int(to) - delta)
		if double {
			*moves = append(*moves, move.NewDoublePawnPush(from, to))
		} else {
			*moves = append(*moves, move.New(from, to, piece.Pawn, false))
		}
	}
}

func appendPawnPromotionPushes(moves *[]move.Move, targets bitboard.Board, delta int, us piece.Color) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		from := square.Square(int(to) - delta)
		for _, promo := range piece.Promotions {
			*moves = append(*moves, move.NewPromotion(from, to, promo, false))
		}
	}
}

func appendEnPassant(moves *[]move.Move, pos *position.Position, pre *Preprocessing, ep square.Square, attackers bitboard.Board) {
	us := pre.Us
	capturedSq := square.Square(int(ep) - pushDelta(us))

	epMask := bitboard.Squares[ep] | bitboard.Squares[capturedSq]
	if pre.CheckMask&epMask == bitboard.Empty {
		return
	}

	fromBB := attacks.PawnAttack[pre.Them][ep] & attackers
	occ := pos.Occupied()
	enemyRookLikes := pos.Pieces(piece.Rook, pre.Them) | pos.Pieces(piece.Queen, pre.Them)

	for fromBB != bitboard.Empty {
		from := fromBB.Pop()

		if pre.PinnedDiagonal.IsSet(from) && !pre.PinnedDiagonal.IsSet(ep) {
			continue
		}

		withoutPawns := occ &^ (bitboard.Squares[from] | bitboard.Squares[capturedSq])
		if attacks.Rook(pre.KingSq, withoutPawns)&enemyRookLikes != bitboard.Empty {
			continue
		}

		*moves = append(*moves, move.NewEnPassant(from, ep))
	}
}

func promotionRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank8
	}
	return square.Rank1
}

func doublePushRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank3
	}
	return square.Rank6
}

func pushDelta(c piece.Color) int {
	if c == piece.White {
		return 8
	}
	return -8
}

func leftDelta(c piece.Color) int {
	if c == piece.White {
		return 7
	}
	return -9
}

func rightDelta(c piece.Color) int {
	if c == piece.White {
		return 9
	}
	return -7
}
