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

package main

import (
	"fmt"
	"os"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/corvid-chess/corvid/internal/engine"
)

// runWatch drives a fixed-depth search against the given fen (or the
// standard start position) and live-renders its node count and score
// in a terminal dashboard, for watching the search think.
func runWatch(fenStr string, depth int) {
	e := engine.New()
	if fenStr != "" {
		if err := e.Client().Run([]string{"position", "fen", fenStr}); err != nil {
			fmt.Fprintln(os.Stderr, "watch:", err)
			os.Exit(1)
		}
	}

	if err := ui.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "watch: termui init:", err)
		os.Exit(1)
	}
	defer ui.Close()

	status := widgets.NewParagraph()
	status.Title = "corvid search"
	status.SetRect(0, 0, 60, 5)

	nodes := widgets.NewGauge()
	nodes.Title = "nodes searched"
	nodes.SetRect(0, 5, 60, 8)

	type result struct {
		move  string
		score string
	}
	done := make(chan result, 1)

	go func() {
		best, score := e.Search.Get(depth)
		done <- result{move: best.String(), score: score.String()}
	}()

	ticker := time.NewTicker(150 * time.Millisecond)
	defer ticker.Stop()

	events := ui.PollEvents()

	for {
		select {
		case r := <-done:
			status.Text = fmt.Sprintf("depth %d complete\nbestmove %s\nscore %s\nnodes %d",
				depth, r.move, r.score, e.Search.Nodes)
			nodes.Percent = 100
			ui.Render(status, nodes)
			<-time.After(2 * time.Second)
			return

		case <-ticker.C:
			n := e.Search.Nodes
			status.Text = fmt.Sprintf("depth %d searching...\nnodes %d", depth, n)
			nodes.Percent = (n / 1000) % 101
			ui.Render(status, nodes)

		case ev := <-events:
			if ev.ID == "q" || ev.ID == "<C-c>" {
				return
			}
		}
	}
}
