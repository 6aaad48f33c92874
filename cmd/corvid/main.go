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

// Command corvid is a UCI chess engine. With no arguments it speaks
// UCI over stdin/stdout; "corvid perft" and "corvid watch" are
// operator-facing subcommands for move-generator verification and
// live search inspection.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvid-chess/corvid/internal/engine"
	"github.com/corvid-chess/corvid/pkg/fen"
	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/perft"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "perft":
			runPerftCmd(os.Args[2:])
			return
		case "watch":
			runWatchCmd(os.Args[2:])
			return
		}
	}

	e := engine.New()
	if err := e.Client().Start(); err != nil {
		fmt.Fprintln(os.Stderr, "corvid:", err)
		os.Exit(1)
	}
}

func runPerftCmd(args []string) {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	fenFlag := fs.String("fen", fen.Start, "FEN of the position to count from")
	depthFlag := fs.Int("depth", 5, "perft depth in plies")
	progressFlag := fs.Bool("progress", false, "show a progress bar across root moves")
	fs.Parse(args)

	pos, st, err := fen.Parse(*fenFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}
	g := game.New(pos, st)

	var nodes uint64
	if *progressFlag {
		nodes = perft.PerftWithProgress(g, *depthFlag)
	} else {
		nodes = perft.Count(g, *depthFlag)
	}

	fmt.Printf("perft(%d) = %d\n", *depthFlag, nodes)
}

func runWatchCmd(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fenFlag := fs.String("fen", "", "FEN of the position to search (default: start position)")
	depthFlag := fs.Int("depth", 8, "search depth in plies")
	fs.Parse(args)

	runWatch(*fenFlag, *depthFlag)
}
