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

package fen

import (
	"fmt"
	"io"

	"gopkg.in/freeeve/pgn.v1"
)

// LoadPGNMoves reads the first game out of r's PGN movetext and
// returns its moves as SAN tokens (e4, Nf3, O-O, ...), a superset of
// the bare UCI move list the "position" command otherwise expects.
// Tags and comments are discarded; only the movetext is returned.
func LoadPGNMoves(r io.Reader) ([]string, error) {
	scanner := pgn.NewPGNScanner(r)
	if !scanner.Next() {
		return nil, fmt.Errorf("fen: no pgn game found")
	}

	game, err := scanner.ParsePgnGame()
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	moves := make([]string, len(game.Moves))
	copy(moves, game.Moves)
	return moves, nil
}
