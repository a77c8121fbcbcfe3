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

package search

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/corvusengine/corvus/pkg/eval"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/position"
	"github.com/corvusengine/corvus/pkg/search/tt"
)

// negamax implements the negamax contract of spec §4.6: given a
// position, a depth, an alpha-beta window and (at the root only) a
// precomputed move order, it returns the ordered (move, score) list
// whose first element is the best move found.
//
// presorted, when non-nil, fixes the order moves are tried in — the
// root loop feeds it the previous iteration's sorted result so the
// principal variation is searched first. Every recursive call passes
// nil and lets the position generate its own legal moves fresh.
func (ctx *Context) negamax(pos *position.Position, plys, depth int, alpha, beta eval.Eval, presorted move.List) tt.Results {
	ctx.Nodes.Add(1)

	if ctx.Stopper.Stopped() {
		return tt.Results{{Move: move.Null, Score: alpha}}
	}

	if depth <= 0 || plys >= MaxDepth {
		score := ctx.quiescence(pos, plys, alpha, beta)
		return tt.Results{{Move: move.Null, Score: score}}
	}

	moves := presorted
	if moves == nil {
		moves = pos.LegalMoves()
	}
	if len(moves) == 0 {
		if pos.IsInCheck(pos.SideToMove) {
			return tt.Results{{Move: move.Null, Score: eval.MatedIn(0)}}
		}
		return tt.Results{{Move: move.Null, Score: eval.Draw}}
	}

	if entry, hit := ctx.TT.Probe(pos.Hash); hit && entry.Depth >= depth+1 && len(entry.Results) > 0 {
		score := entry.Results[0].Score
		switch {
		case score.HasMate:
			return entry.Results
		case !score.Greater(alpha):
			return tt.Results{{Move: move.Null, Score: alpha}}
		case !score.Less(beta):
			return tt.Results{{Move: move.Null, Score: beta}}
		default:
			return entry.Results
		}
	}

	type outcome struct {
		move  move.Move
		score eval.Eval
	}

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		outcomes   = make([]outcome, 0, len(moves))
		localAlpha = alpha
		cutoff     atomic.Bool
		sem        = make(chan struct{}, runtime.GOMAXPROCS(0))
	)

	for _, m := range moves {
		if ctx.Stopper.Stopped() || cutoff.Load() {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(m move.Move) {
			defer wg.Done()
			defer func() { <-sem }()

			if ctx.Stopper.Stopped() || cutoff.Load() {
				return
			}

			mu.Lock()
			a := localAlpha
			mu.Unlock()

			child := pos.Clone()
			child.Make(m)

			childResults := ctx.negamax(child, plys+1, depth-1, beta.Negate(), a.Negate(), nil)
			score := childResults[0].Score.Negate()

			mu.Lock()
			defer mu.Unlock()
			outcomes = append(outcomes, outcome{move: m, score: score})
			if score.Greater(localAlpha) {
				localAlpha = score
			}
			if !score.Less(beta) {
				cutoff.Store(true)
			}
		}(m)
	}
	wg.Wait()

	if ctx.Stopper.Stopped() {
		return tt.Results{{Move: move.Null, Score: alpha}}
	}
	if cutoff.Load() {
		return tt.Results{{Move: move.Null, Score: beta}}
	}

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].score.Greater(outcomes[j].score) })

	results := make(tt.Results, len(outcomes))
	for i, o := range outcomes {
		results[i] = tt.Result{Move: o.move, Score: o.score}
	}

	ctx.TT.Store(pos.Hash, tt.Entry{Depth: depth, Results: results})
	return results
}
