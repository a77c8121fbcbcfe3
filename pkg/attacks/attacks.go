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

// Package attacks implements the pawn/knight/king attack tables and the
// sliding-piece ray-scan generators of spec component C3.
package attacks

import (
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// King and Knight hold the precomputed full attack set from every
// origin square for the corresponding leaper piece.
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board
)

func init() {
	for s := square.Square(0); s < square.N; s++ {
		King[s] = leaperAttacksFrom(s, kingSteps)
		Knight[s] = leaperAttacksFrom(s, knightSteps)
	}
}

// step is a (file, rank) offset used to generate leaper attack sets.
type step struct{ df, dr int }

var kingSteps = []step{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var knightSteps = []step{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// leaperAttacksFrom sets every square reachable from s by one of the
// given steps, discarding any step that would leave the board.
func leaperAttacksFrom(s square.Square, steps []step) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, st := range steps {
		nf, nr := f+st.df, r+st.dr
		if nf < 0 || nf >= square.FileN || nr < 0 || nr >= square.RankN {
			continue
		}
		b.Set(square.New(square.File(nf), square.Rank(nr)))
	}
	return b
}

// Pawn holds the capture attack set of a pawn of the given color from
// the given square.
var Pawn [piece.ColorN][square.N]bitboard.Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		sb := bitboard.Squares[s]
		Pawn[piece.White][s] = sb.North().East() | sb.North().West()
		Pawn[piece.Black][s] = sb.South().East() | sb.South().West()
	}
}

// PawnSetWise returns, for every pawn in the given set, the squares it
// attacks, computed with the set-wise shift-and-mask formula of spec
// §4.2 rather than a per-pawn table lookup.
func PawnSetWise(pawns bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return pawns.North().East() | pawns.North().West()
	}
	return pawns.South().East() | pawns.South().West()
}
