// Copyright © 2024 The Corvus Authors
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

// Package search implements the parallel iterative-deepening
// alpha-beta search of spec §4.6: negamax with a shared transposition
// table and a quiescence horizon, driven by an aspiration-window root
// loop and reported the way a UCI engine reports "info" lines.
package search

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/corvusengine/corvus/pkg/eval"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/position"
	"github.com/corvusengine/corvus/pkg/search/clock"
	"github.com/corvusengine/corvus/pkg/search/tt"
)

// MaxDepth bounds both the iterative-deepening loop and the
// quiescence recursion, a hard ceiling against runaway recursion on a
// limits value that never triggers the stopper.
const MaxDepth = 256

// aspirationWindow is the initial half-width of the window placed
// around a completed iteration's score, per spec §4.6.
const aspirationWindow = 25

// Context holds everything one search run shares across its
// goroutines: the transposition table, the cancellation flag, node
// counter and where "info" lines are written.
type Context struct {
	TT      *tt.Table
	Stopper *clock.Stopper
	Nodes   atomic.Uint64

	Info io.Writer
}

// NewContext returns a Context with a fresh transposition table,
// ready to run one or more searches. tt is expensive to rebuild, so
// callers that search the same game repeatedly should keep reusing
// one Context rather than allocating a new one per move.
func NewContext(info io.Writer) *Context {
	return &Context{TT: tt.New(), Stopper: &clock.Stopper{}, Info: info}
}

// Search runs iterative deepening from pos until the depth limit, the
// time allotted by limits, or the stopper ends it, returning the last
// fully completed depth's sorted result list and its score. The node
// limit and the increments in limits are not applied. The position
// passed in is never mutated: every descent works against a clone.
func (ctx *Context) Search(pos *position.Position, limits clock.Limits) (tt.Results, eval.Eval) {
	ctx.Stopper.Reset()
	ctx.Nodes.Store(0)

	timer := clock.Arm(ctx.Stopper, limits, pos.SideToMove)
	defer timer.Stop()

	root := pos.Clone()

	var (
		moves       move.List
		lastResults tt.Results
		lastScore   eval.Eval
		center      eval.Eval
		aspirate    bool
		L, U        = aspirationWindow, aspirationWindow
	)

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	for depth := 1; depth <= maxDepth; {
		if ctx.Stopper.Stopped() {
			break
		}

		var alpha, beta eval.Eval
		if aspirate && !center.HasMate {
			alpha, beta = center.SubCP(L), center.AddCP(U)
		} else {
			// mate evaluations rank outside every centipawn score, so the
			// full window runs from being mated now to mating now.
			alpha, beta = eval.Mated, eval.MatingIn(0)
		}

		snapshot := ctx.TT.Snapshot()
		results := ctx.negamax(root, 0, depth, alpha, beta, moves)

		if ctx.Stopper.Stopped() {
			break
		}

		score := results[0].Score
		switch {
		case aspirate && !score.Greater(alpha):
			ctx.TT.Restore(snapshot)
			L *= 4
			continue
		case aspirate && !score.Less(beta):
			ctx.TT.Restore(snapshot)
			U *= 4
			continue
		default:
			lastResults, lastScore = results, score
			moves = reorder(results)
			center, aspirate = score, true
			L, U = aspirationWindow, aspirationWindow
			ctx.report(depth, score, results.Best())
			depth++
		}
	}

	if len(lastResults) == 0 {
		return fallback(root)
	}
	return lastResults, lastScore
}

// reorder extracts the move order a sorted result list implies, fed
// back into negamax as the next iteration's search order.
func reorder(results tt.Results) move.List {
	moves := make(move.List, len(results))
	for i, r := range results {
		moves[i] = r.Move
	}
	return moves
}

// fallback returns some legal move when no iteration ever completed
// (the stopper fired before depth 1 finished), so Search never hands
// back a null move from a position that has one.
func fallback(pos *position.Position) (tt.Results, eval.Eval) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsInCheck(pos.SideToMove) {
			return tt.Results{{Move: move.Null, Score: eval.Mated}}, eval.Mated
		}
		return tt.Results{{Move: move.Null, Score: eval.Draw}}, eval.Draw
	}
	return tt.Results{{Move: moves[0], Score: eval.Draw}}, eval.Draw
}

func (ctx *Context) report(depth int, score eval.Eval, best move.Move) {
	if ctx.Info == nil {
		return
	}
	fmt.Fprintf(ctx.Info, "info depth %d score %s nodes %d pv %s\n",
		depth, score, ctx.Nodes.Load(), best)
}
