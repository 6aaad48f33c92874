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

// Package fen parses and prints Forsyth-Edwards Notation, the
// standard six-field text format for a chess position.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvid-chess/corvid/pkg/castling"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/position"
	"github.com/corvid-chess/corvid/pkg/square"
	"github.com/corvid-chess/corvid/pkg/state"
	"github.com/corvid-chess/corvid/pkg/zobrist"
)

// Start is the FEN of the standard starting position.
const Start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse reads a FEN string into a Position and a State. The Position
// is left unmodified if an error is returned.
func Parse(fen string) (position.Position, state.State, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return position.Position{}, state.State{}, fmt.Errorf("fen: want 6 fields, got %d", len(fields))
	}

	pos, err := parseBoard(fields[0])
	if err != nil {
		return position.Position{}, state.State{}, err
	}

	var st state.State

	switch fields[1] {
	case "w":
		st.SideToMove = piece.White
	case "b":
		st.SideToMove = piece.Black
		st.Key ^= zobrist.SideToMove
	default:
		return position.Position{}, state.State{}, fmt.Errorf("fen: bad side to move %q", fields[1])
	}

	st.Castling = castling.NewRights(fields[2])
	st.Key ^= zobrist.Castling[st.Castling]

	if fields[3] == "-" {
		st.EnPassant = square.None
	} else {
		st.EnPassant = square.New(fields[3])
		st.Key ^= zobrist.EnPassant[st.EnPassant.File()]
	}

	st.HalfMoves, err = strconv.Atoi(fields[4])
	if err != nil {
		return position.Position{}, state.State{}, fmt.Errorf("fen: bad halfmove clock %q", fields[4])
	}

	st.FullMoves, err = strconv.Atoi(fields[5])
	if err != nil {
		return position.Position{}, state.State{}, fmt.Errorf("fen: bad fullmove number %q", fields[5])
	}

	for s := square.Square(0); s < square.N; s++ {
		if p := pos.At(s); p != piece.NoPiece {
			st.Key ^= zobrist.PieceSquare[p][s]
		}
	}

	return pos, st, nil
}

func parseBoard(field string) (position.Position, error) {
	pos := position.New()

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return position.Position{}, fmt.Errorf("fen: want 8 ranks, got %d", len(ranks))
	}

	for i, rank := range ranks {
		r := square.Rank8 - square.Rank(i)
		file := square.FileA

		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				file += square.File(c - '0')

			default:
				if file > square.FileH {
					return position.Position{}, fmt.Errorf("fen: rank %d overruns the board", 8-i)
				}

				p := piece.NewFromString(string(c))
				if p == piece.NoPiece {
					return position.Position{}, fmt.Errorf("fen: bad piece letter %q", c)
				}

				pos.Place(p.Type(), square.From(file, r), p.Color())
				file++
			}
		}

		if file != square.FileH+1 {
			return position.Position{}, fmt.Errorf("fen: rank %d does not cover all 8 files", 8-i)
		}
	}

	return pos, nil
}

// String renders pos/st as a FEN string.
func String(pos *position.Position, st *state.State) string {
	var b strings.Builder

	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			p := pos.At(square.From(f, r))
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != square.Rank1 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(st.SideToMove.String())
	b.WriteByte(' ')
	b.WriteString(st.Castling.String())
	b.WriteByte(' ')
	b.WriteString(st.EnPassant.String())
	fmt.Fprintf(&b, " %d %d", st.HalfMoves, st.FullMoves)

	return b.String()
}
