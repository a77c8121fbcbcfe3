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

package eval

import (
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/position"
	"github.com/corvusengine/corvus/pkg/square"
)

// Evaluate scores p from the perspective of the side to move (negamax
// convention), per spec §4.5: material plus 10x the mobility
// difference, or a mate/draw terminal score when the side to move has
// no legal moves.
func Evaluate(p *position.Position) Eval {
	moves := p.LegalMoves()
	if len(moves) == 0 {
		if p.IsInCheck(p.SideToMove) {
			return Mated
		}
		return Draw
	}

	material := materialScore(p)
	own := mobility(p, p.SideToMove)
	opp := mobility(p, p.SideToMove.Other())

	return Eval{CP: material + 10*(own-opp)}
}

// materialScore sums piece.Value for White minus Black, then negates
// for Black to move so the result is already in negamax perspective.
func materialScore(p *position.Position) int {
	var white, black int
	for t := piece.Pawn; t < piece.None; t++ {
		white += (p.PieceBB[t] & p.ColorBB[piece.White]).Count() * piece.Value[t]
		black += (p.PieceBB[t] & p.ColorBB[piece.Black]).Count() * piece.Value[t]
	}

	score := white - black
	if p.SideToMove == piece.Black {
		return -score
	}
	return score
}

// mobility counts the legal moves color c would have on p's board, en
// passant ignored per spec §4.5 so that flipping the side to move
// never invents a capture that depended on whose turn it actually is.
func mobility(p *position.Position, c piece.Color) int {
	clone := p.Clone()
	clone.SideToMove = c
	clone.EnPassantTarget = square.None
	return len(clone.LegalMoves())
}
