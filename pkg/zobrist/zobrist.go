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

// Package zobrist holds the fixed random key tables used to maintain a
// position's incremental hash, per spec §4.4's Zobrist layout.
package zobrist

import (
	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Key is a Zobrist hash, or a single component of one.
type Key uint64

// seed is the fixed PRNG seed all keys are drawn from, so that keys are
// identical across runs and across engine instances. Also used by
// Stockfish.
const seed = 1070372

var (
	// PieceSquare holds one key per (piece, square) pair.
	PieceSquare [piece.N][square.N]Key

	// EnPassant holds one key per en-passant file.
	EnPassant [square.FileN]Key

	// Castling holds one key per possible castling-rights byte.
	Castling [castling.N]Key

	// SideToMove is XORed into the hash whenever it is Black to move.
	SideToMove Key
)

func init() {
	var rng prng
	rng.seed(seed)

	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.next())
		}
	}

	for f := square.File(0); f < square.FileN; f++ {
		EnPassant[f] = Key(rng.next())
	}

	for r := 0; r < castling.N; r++ {
		Castling[r] = Key(rng.next())
	}

	SideToMove = Key(rng.next())
}
