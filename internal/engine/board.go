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
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/colorstring"
	"github.com/rivo/uniseg"

	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/position"
	"github.com/corvid-chess/corvid/pkg/square"
)

// glyphs maps a colored piece to its Unicode chess symbol, used when
// ShowUnicodePieces is set.
var glyphs = map[piece.Piece]string{
	piece.WhitePawn: "♙", piece.WhiteKnight: "♘", piece.WhiteBishop: "♗",
	piece.WhiteRook: "♖", piece.WhiteQueen: "♕", piece.WhiteKing: "♔",
	piece.BlackPawn: "♟", piece.BlackKnight: "♞", piece.BlackBishop: "♝",
	piece.BlackRook: "♜", piece.BlackQueen: "♛", piece.BlackKing: "♚",
}

// Render draws pos as an 8x8 grid for the "d" debug command, coloring
// the side to move's own pieces distinctly from the opponent's.
func (e *Engine) Render() string {
	pos := &e.Game.Position
	us := e.Game.State.SideToMove

	var b strings.Builder
	for r := square.Rank8; r >= square.Rank1; r-- {
		b.WriteString("  +---+---+---+---+---+---+---+---+\n")
		b.WriteString(r.String())
		b.WriteString(" |")
		for f := square.FileA; f <= square.FileH; f++ {
			s := square.From(f, r)
			b.WriteByte(' ')
			b.WriteString(renderCell(pos, s, us))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  +---+---+---+---+---+---+---+---+\n")
	b.WriteString("    a   b   c   d   e   f   g   h\n")

	return colorstring.Color(b.String())
}

// renderCell formats the single-cell contents of square s, colored
// green for a piece belonging to us and red otherwise, padded to a
// fixed display width since a Unicode glyph's width is not its byte
// or rune count.
func renderCell(pos *position.Position, s square.Square, us piece.Color) string {
	p := pos.At(s)
	if p == piece.NoPiece {
		return " "
	}

	label := p.String()
	if ShowUnicodePieces {
		label = glyphs[p]
	}

	color := "[red]"
	if p.Color() == us {
		color = "[green]"
	}

	return color + padCell(label) + "[default]"
}

// padCell pads label to a one-column display width using its grapheme
// count and rune width, so wide Unicode glyphs don't skew the grid.
func padCell(label string) string {
	width := uniseg.GraphemeClusterCount(label)
	if w := runewidth.StringWidth(label); w > width {
		width = w
	}
	if width >= 1 {
		return label
	}
	return label + " "
}

