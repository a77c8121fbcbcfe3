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

// Package corpus turns PGN game collections into fixtures for
// movegen/perft regression tests: for every position reached in a
// real game, it records the FEN, the move actually played from it,
// and the game's final result.
//
// This is the out-of-scope "PGN ingestion" collaborator named in
// spec.md §1 — a flat text-processing layer that drives the core
// through its public Position/Move API, with no chess logic of its
// own.
package corpus

import (
	"io"

	"github.com/notnil/chess"

	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/position"
	"github.com/corvusengine/corvus/pkg/square"
)

// Result is a game's outcome from White's perspective: +1 win, 0 draw,
// -1 loss. Every fixture of a game carries the same Result, whichever
// side moved. A game with no decisive outcome, including an
// unterminated one, is recorded as Draw.
type Result float64

const (
	Loss Result = -1
	Draw Result = 0
	Win  Result = 1
)

// Fixture is one (position, move played, eventual game result) triple
// harvested from a PGN game.
type Fixture struct {
	FEN    string
	Move   move.Move
	Result Result
}

// Scan reads every game out of r (PGN text, possibly several games
// back to back, as chess.Scanner expects) and emits one Fixture per
// ply actually played, in game order.
//
// notnil/chess numbers squares A1=0 … H8=63, the same convention
// spec.md §3 mandates for square.Square, so move squares carry over
// with a direct conversion — unlike the teacher's datagen, which XORs
// the rank to translate into its own a8=0 board.
func Scan(r io.Reader) ([]Fixture, error) {
	var fixtures []Fixture

	scanner := chess.NewScanner(r)
	for scanner.Scan() {
		game := scanner.Next()
		fixtures = append(fixtures, replay(game)...)
	}

	return fixtures, nil
}

func replay(game *chess.Game) []Fixture {
	result := gameResult(game)

	moves := game.Moves()
	pos := position.New()

	fixtures := make([]Fixture, 0, len(moves))
	for _, gm := range moves {
		m := move.New(square.Square(gm.S1()), square.Square(gm.S2()))
		if promo := promotionType(gm.Promo()); promo != piece.None {
			m = move.NewPromotion(m.From, m.To, promo)
		}

		fixtures = append(fixtures, Fixture{FEN: pos.FEN(), Move: m, Result: result})
		pos.Make(m)
	}

	return fixtures
}

func gameResult(game *chess.Game) Result {
	switch game.Outcome() {
	case chess.WhiteWon:
		return Win
	case chess.BlackWon:
		return Loss
	default:
		return Draw
	}
}

func promotionType(p chess.PieceType) piece.Type {
	switch p {
	case chess.Knight:
		return piece.Knight
	case chess.Bishop:
		return piece.Bishop
	case chess.Rook:
		return piece.Rook
	case chess.Queen:
		return piece.Queen
	default:
		return piece.None
	}
}
