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

package move

import (
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/square"
)

// score is the set of integer types usable as a move ordering score.
type score interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// ScoreMoves pairs every move in moves with the score scorer assigns
// it, ready for incremental best-first iteration with PickMove.
func ScoreMoves[T score](moves []Move, scorer func(Move) T) OrderedList[T] {
	ordered := make([]ordered[T], len(moves))
	for i, m := range moves {
		ordered[i] = orderedOf(m, scorer(m))
	}
	return OrderedList[T]{moves: ordered}
}

// OrderedList is a move list that is sorted lazily, one move at a
// time, as PickMove is called. Since alpha-beta pruning usually stops
// long before the full list is searched, sorting it up front would
// waste time on moves that are never looked at.
type OrderedList[T score] struct {
	moves []ordered[T]
}

// Len returns the number of moves in the list.
func (l *OrderedList[T]) Len() int {
	return len(l.moves)
}

// PickMove performs one selection-sort pass: it finds the
// highest-scoring move among index..end, swaps it into index, and
// returns it.
func (l *OrderedList[T]) PickMove(index int) Move {
	best := index
	bestScore := l.moves[index].score()

	for i := index + 1; i < len(l.moves); i++ {
		if s := l.moves[i].score(); s > bestScore {
			best = i
			bestScore = s
		}
	}

	l.moves[index], l.moves[best] = l.moves[best], l.moves[index]
	return l.moves[index].move()
}

// ordered packs a move and its ordering score into one word: [score
// 32 bits][move 32 bits], so sorting need not touch a separate slice.
type ordered[T score] uint64

func orderedOf[T score](m Move, s T) ordered[T] {
	return ordered[T](uint64(uint32(s))<<32 | uint64(packMove(m)))
}

func (o ordered[T]) score() T {
	return T(int32(o >> 32))
}

func (o ordered[T]) move() Move {
	return unpackMove(uint32(o))
}

// packMove/unpackMove fit a Move into 32 bits: 6 bits each for From
// and To, 3 for Piece, 3 for Kind, 3 for Promo, 1 for Captured.
func packMove(m Move) uint32 {
	return uint32(m.From)&0x3f |
		uint32(m.To)&0x3f<<6 |
		uint32(m.Piece)&0x7<<12 |
		uint32(m.Kind)&0x7<<15 |
		uint32(m.Promo)&0x7<<18 |
		boolBit(m.Captured)<<21
}

func unpackMove(v uint32) Move {
	return Move{
		From:     square.Square(v & 0x3f),
		To:       square.Square((v >> 6) & 0x3f),
		Piece:    piece.Type((v >> 12) & 0x7),
		Kind:     Kind((v >> 15) & 0x7),
		Promo:    piece.Type((v >> 18) & 0x7),
		Captured: (v>>21)&1 != 0,
	}
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
