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
	"github.com/mitchellh/go-wordwrap"

	"github.com/corvid-chess/corvid/pkg/fen"
	"github.com/corvid-chess/corvid/pkg/uci"
)

// terminalWidth is the column the "d" command wraps its Fen line to; a real terminal width probe is outside this repo's scope.
const terminalWidth = 80

// cmdDebug implements the non-standard "d" command: print the board,
// its FEN, and its Zobrist key, for interactive debugging.
func (e *Engine) cmdDebug(i uci.Interaction) error {
	pos, st := &e.Game.Position, &e.Game.State

	i.Reply(e.Render())
	i.Reply(wordwrap.WrapString("Fen: "+fen.String(pos, st), terminalWidth))
	i.Replyf("Key: %x", st.Key)
	return nil
}
