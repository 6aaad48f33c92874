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

// Package engine wires pkg/uci's command dispatcher to the game and
// search core: it owns the Game being played and the search Context
// reused across moves, and translates UCI commands into calls on
// them.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvid-chess/corvid/pkg/fen"
	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/movegen"
	"github.com/corvid-chess/corvid/pkg/search"
	"github.com/corvid-chess/corvid/pkg/uci"
)

// defaultDepth is used by "go" when no "depth" argument is given.
const defaultDepth = 6

// Engine holds the game under analysis and the search state kept
// across moves within it.
type Engine struct {
	Game   *game.Game
	Search *search.Context
}

// New returns an Engine set up at the standard starting position.
func New() *Engine {
	pos, st, err := fen.Parse(fen.Start)
	if err != nil {
		panic("engine: bad embedded start fen: " + err.Error())
	}

	g := game.New(pos, st)
	return &Engine{Game: g, Search: search.NewContext(g)}
}

// Client returns a uci.Client with the engine's commands registered
// on top of the package's default quit/isready/uci commands.
func (e *Engine) Client() *uci.Client {
	c := uci.NewClient()
	c.AddCommand(uci.Command{Name: "ucinewgame", Run: e.cmdNewGame})
	c.AddCommand(uci.Command{Name: "position", Run: e.cmdPosition})
	c.AddCommand(uci.Command{Name: "go", Run: e.cmdGo})
	c.AddCommand(uci.Command{Name: "d", Run: e.cmdDebug})
	return c
}

// ShowUnicodePieces controls whether Render draws glyphs (♘, ♞, ...)
// or FEN letters; it is the UCI_ShowUnicodePieces analogue.
var ShowUnicodePieces = false

// cmdNewGame resets search state for an unrelated game; the
// transposition table and killers from the previous game are no
// longer relevant once the position lineage changes.
func (e *Engine) cmdNewGame(uci.Interaction) error {
	e.Search = search.NewContext(e.Game)
	return nil
}

// cmdPosition implements "position [startpos|fen <fen>] moves <uci-mv>*"
// plus a "pgn <movetext>" base that replays a PGN game's SAN moves
// from the start position, a superset GUIs rarely send over the wire
// but which pkg/fen.LoadPGNMoves exists to support when they do.
func (e *Engine) cmdPosition(i uci.Interaction) error {
	args := i.Args
	if len(args) == 0 {
		return errors.New("position: missing startpos, fen, or pgn")
	}

	var pos, rest = args[0], args[1:]

	var g *game.Game
	switch pos {
	case "startpos":
		p, st, err := fen.Parse(fen.Start)
		if err != nil {
			return err
		}
		g = game.New(p, st)

	case "fen":
		end := len(rest)
		for i, tok := range rest {
			if tok == "moves" {
				end = i
				break
			}
		}
		if end < 6 {
			return errors.New("position: incomplete fen")
		}

		p, st, err := fen.Parse(joinFields(rest[:6]))
		if err != nil {
			return fmt.Errorf("position: %w", err)
		}
		g = game.New(p, st)
		rest = rest[end:]

	case "pgn":
		p, st, err := fen.Parse(fen.Start)
		if err != nil {
			return err
		}
		g = game.New(p, st)

		sanMoves, err := fen.LoadPGNMoves(strings.NewReader(pgnMovetext(rest)))
		if err != nil {
			return fmt.Errorf("position: %w", err)
		}
		for _, san := range sanMoves {
			mv, err := resolveSAN(g, san)
			if err != nil {
				return fmt.Errorf("position: pgn move %q: %w", san, err)
			}
			g.MakeMove(mv)
		}
		rest = nil

	default:
		return fmt.Errorf("position: unknown base position %q", pos)
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, uciMove := range rest[1:] {
			mv, err := parseMove(g, uciMove)
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			g.MakeMove(mv)
		}
	}

	e.Game = g
	e.Search = search.NewContext(g)
	return nil
}

// cmdGo implements "go [depth N]": it searches the current position
// and emits "bestmove <uci-mv>".
func (e *Engine) cmdGo(i uci.Interaction) error {
	depth := defaultDepth
	for idx, tok := range i.Args {
		if tok == "depth" && idx+1 < len(i.Args) {
			if d, err := strconv.Atoi(i.Args[idx+1]); err == nil {
				depth = d
			}
		}
	}

	best, _ := e.Search.Get(depth)
	if best.IsNull() {
		i.Reply("bestmove 0000")
		return nil
	}

	i.Replyf("bestmove %s", best)
	return nil
}

// parseMove resolves a UCI long-algebraic move string (e2e4, e7e8q)
// against g's legal move list, the only way the engine learns a
// move's Kind (castle, en passant, etc.) from its bare squares.
func parseMove(g *game.Game, uciMove string) (move.Move, error) {
	pre := movegen.Compute(&g.Position, &g.State)
	for _, mv := range movegen.Generate(&g.Position, &g.State, &pre) {
		if mv.String() == uciMove {
			return mv, nil
		}
	}
	return move.Null, fmt.Errorf("illegal move %q", uciMove)
}

func joinFields(fields []string) string {
	s := fields[0]
	for _, f := range fields[1:] {
		s += " " + f
	}
	return s
}

// pgnMovetext rebuilds a minimal single-game PGN document out of the
// whitespace-split SAN tokens following "position pgn" on a UCI
// command line, since LoadPGNMoves expects a tagged PGN game rather
// than a bare token list.
func pgnMovetext(tokens []string) string {
	return "[Event \"?\"]\n\n" + strings.Join(tokens, " ") + " *\n"
}
