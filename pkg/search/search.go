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

// Package search implements principal-variation negamax search over
// a game.Game: null-move pruning, transposition-table cutoffs and
// move-ordering hints, killer moves, and a quiescence search that
// resolves captures (and the checks they may deliver) past the leaf
// of the main search.
package search

import (
	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/game"
	"github.com/corvid-chess/corvid/pkg/move"
	"github.com/corvid-chess/corvid/pkg/movegen"
	"github.com/corvid-chess/corvid/pkg/piece"
	"github.com/corvid-chess/corvid/pkg/tt"
)

// nullMoveReduction is R in the null-move pruning scheme: the search
// recurses at depth-1-R after passing the move, a reduced depth since
// a null move almost never fails low when it shouldn't.
const nullMoveReduction = 2

// Context holds everything one search run needs: the game being
// searched, a reusable transposition table and killer table, the
// evaluation function, and node-count bookkeeping.
type Context struct {
	Game *game.Game

	tt      *tt.Table
	killers killerTable
	evalFn  eval.Func

	Nodes int
}

// NewContext returns a Context searching g, with a 16MB transposition
// table and PeSTO evaluation.
func NewContext(g *game.Game) *Context {
	return &Context{
		Game:   g,
		tt:     tt.New(16),
		evalFn: eval.PeSTO,
	}
}

// SetEval overrides the evaluation function used during search.
func (c *Context) SetEval(fn eval.Func) {
	c.evalFn = fn
}

// Get searches the current game position to depth and returns the
// best move found and its score from White's point of view. It
// returns (move.Null, 0) if there are no legal moves; the caller
// should consult Position.InCheck to tell checkmate from stalemate.
func (c *Context) Get(depth int) (move.Move, eval.Eval) {
	c.Nodes = 0
	c.tt.NextGeneration()

	pos := &c.Game.Position
	st := &c.Game.State

	pre := movegen.Compute(pos, st)
	moves := movegen.Generate(pos, st, &pre)
	if len(moves) == 0 {
		return move.Null, eval.Draw
	}

	ttMove, _ := c.tt.ProbeMove(st.Key)
	ordering := move.ScoreMoves(moves, scorer(pos, ttMove, move.Null, move.Null))

	best := move.Null
	bestScore := -eval.Inf

	for i := 0; i < ordering.Len(); i++ {
		m := ordering.PickMove(i)

		c.Game.MakeMove(m)
		score := -c.alphaBeta(depth-1, 1, -eval.Inf, eval.Inf, true)
		c.Game.UnmakeMove()

		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	// the root always stores an Exact entry, unlike interior nodes
	// which pick Exact/LowerBound/UpperBound by how the score compares
	// to the search window.
	c.tt.Store(tt.Entry{
		Key:   st.Key,
		Move:  best,
		Value: tt.ValueFrom(bestScore, 0),
		Flag:  tt.ExactEntry,
		Depth: uint8(depth),
	})

	if st.SideToMove == piece.Black {
		return best, -bestScore
	}
	return best, bestScore
}

// alphaBeta is principal-variation search with negamax convention: it
// returns a score from the side-to-move's point of view, always
// negated when passed up to the caller.
func (c *Context) alphaBeta(depth, ply int, alpha, beta eval.Eval, allowNull bool) eval.Eval {
	c.Nodes++

	if depth <= 0 {
		return c.quiescence(ply, alpha, beta)
	}

	if ply > 0 && c.Game.IsDraw() {
		return c.drawScore()
	}

	pos := &c.Game.Position
	st := &c.Game.State

	if score, ok := c.tt.ProbeVal(st.Key, depth, ply, alpha, beta); ok {
		return score
	}
	ttMove, _ := c.tt.ProbeMove(st.Key)

	pre := movegen.Compute(pos, st)
	inCheck := pre.CheckN > 0

	if allowNull && !inCheck && ply > 0 && depth > nullMoveReduction {
		c.Game.MakeNullMove()
		score := -c.alphaBeta(depth-1-nullMoveReduction, ply+1, -beta, -beta+1, false)
		c.Game.UnmakeNullMove()
		if score >= beta {
			return score
		}
	}

	moves := movegen.Generate(pos, st, &pre)
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(ply)
		}
		// stalemate: the draw score only replaces the search result when
		// it improves on alpha; otherwise this falls through to alpha
		// unchanged. Preserved as found rather than returning the draw
		// score unconditionally.
		if draw := c.drawScore(); draw > alpha {
			return draw
		}
		return alpha
	}

	k1, k2 := c.killers.first(ply), c.killers.second(ply)
	ordering := move.ScoreMoves(moves, scorer(pos, ttMove, k1, k2))

	originalAlpha := alpha
	best := move.Null
	bestScore := -eval.Inf

	for i := 0; i < ordering.Len(); i++ {
		m := ordering.PickMove(i)
		c.Game.MakeMove(m)

		var score eval.Eval
		if i == 0 {
			score = -c.alphaBeta(depth-1, ply+1, -beta, -alpha, true)
		} else {
			score = -c.alphaBeta(depth-1, ply+1, -alpha-1, -alpha, true)
			if score > alpha && score < beta {
				score = -c.alphaBeta(depth-1, ply+1, -beta, -alpha, true)
			}
		}

		c.Game.UnmakeMove()

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() {
				c.killers.store(ply, m)
			}
			break
		}
	}

	var flag tt.Flag
	switch {
	case bestScore <= originalAlpha:
		flag = tt.UpperBound
	case bestScore >= beta:
		flag = tt.LowerBound
	default:
		flag = tt.ExactEntry
	}
	c.tt.Store(tt.Entry{
		Key:   st.Key,
		Move:  best,
		Value: tt.ValueFrom(bestScore, ply),
		Flag:  flag,
		Depth: uint8(depth),
	})

	return bestScore
}

// drawScore substitutes a phase-dependent value for a drawn line
// found mid-search: slightly negative for the side ahead on material
// (a draw gives up a real advantage) and slightly positive for the
// side behind (a draw rescues a bad position), so the search does not
// treat every draw identically regardless of how the game stands.
func (c *Context) drawScore() eval.Eval {
	pos := &c.Game.Position
	us, them := c.Game.State.SideToMove, c.Game.State.SideToMove.Other()

	switch {
	case pos.Material[us] > pos.Material[them]:
		return -4
	case pos.Material[us] < pos.Material[them]:
		return 4
	default:
		return eval.Draw
	}
}

// quiescence resolves captures (and the checks they deliver) beyond
// the leaves of alphaBeta, to avoid misjudging a position where a
// capture is hanging right past the depth cutoff.
func (c *Context) quiescence(ply int, alpha, beta eval.Eval) eval.Eval {
	c.Nodes++

	if ply >= maxPly {
		return c.evalFn(&c.Game.Position, &c.Game.State)
	}

	pos := &c.Game.Position
	st := &c.Game.State

	pre := movegen.Compute(pos, st)
	if pre.CheckN > 0 {
		// in check: quiescence only considers loud moves, which is not
		// enough to find every legal way out of check, so escape into
		// a one-ply full search instead. That search's own leaves call
		// back into quiescence at ply+1, where the cap above still applies.
		return c.alphaBeta(1, ply, alpha, beta, false)
	}

	standPat := c.evalFn(pos, st)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.Loud(pos, st, &pre)
	ordering := move.ScoreMoves(moves, scorer(pos, move.Null, move.Null, move.Null))

	best := standPat
	for i := 0; i < ordering.Len(); i++ {
		m := ordering.PickMove(i)

		c.Game.MakeMove(m)
		score := -c.quiescence(ply+1, -beta, -alpha)
		c.Game.UnmakeMove()

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return best
}
