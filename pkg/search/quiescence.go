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
	"github.com/corvusengine/corvus/pkg/eval"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/position"
)

// quiescence extends the search past the horizon along noisy lines
// only, per spec §4.6, so negamax doesn't misjudge a position in the
// middle of a capture sequence as quiet.
func (ctx *Context) quiescence(pos *position.Position, plys int, alpha, beta eval.Eval) eval.Eval {
	ctx.Nodes.Add(1)

	if ctx.Stopper.Stopped() {
		return alpha
	}

	standPat := eval.Evaluate(pos)
	if !standPat.Less(beta) {
		return beta
	}
	if standPat.Greater(alpha) {
		alpha = standPat
	}

	if plys >= MaxDepth {
		return alpha
	}

	for _, m := range pos.LegalMoves() {
		if !isNoisy(pos, m) {
			continue
		}
		if ctx.Stopper.Stopped() {
			break
		}

		child := pos.Clone()
		child.Make(m)
		score := ctx.quiescence(child, plys+1, beta.Negate(), alpha.Negate()).Negate()

		if !score.Less(beta) {
			return beta
		}
		if score.Greater(alpha) {
			alpha = score
		}
	}

	return alpha
}

// isNoisy reports whether m is a capture, promotion, or en-passant
// capture, or leaves the opponent in check — the move classes
// quiescence is allowed to search, per spec §4.6.
func isNoisy(pos *position.Position, m move.Move) bool {
	moving := pos.Mailbox[m.From]

	if pos.Mailbox[m.To] != piece.NoPiece {
		return true
	}
	if moving.Type() == piece.Pawn && m.To == pos.EnPassantTarget {
		return true
	}
	if m.Promotion != piece.None {
		return true
	}

	child := pos.Clone()
	child.Make(m)
	return child.IsInCheck(child.SideToMove)
}
