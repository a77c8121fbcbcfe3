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

package zobrist_test

import (
	"testing"

	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
	"github.com/corvusengine/corvus/pkg/zobrist"
)

// TestKeysAreDistinct checks that no two keys across all the
// PRNG-seeded tables collide; a collision here would silently merge
// two distinct positions under one hash.
func TestKeysAreDistinct(t *testing.T) {
	seen := make(map[zobrist.Key]string)

	record := func(k zobrist.Key, label string) {
		if prev, ok := seen[k]; ok {
			t.Errorf("key collision: %q and %q both hash to %016x", prev, label, uint64(k))
		}
		seen[k] = label
	}

	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			record(zobrist.PieceSquare[p][s], "piece-square")
		}
	}
	for f := square.File(0); f < square.FileN; f++ {
		record(zobrist.EnPassant[f], "en-passant")
	}
	for r := 0; r < castling.N; r++ {
		record(zobrist.Castling[r], "castling")
	}
	record(zobrist.SideToMove, "side-to-move")
}

// TestNoKeyIsZero guards against a PRNG seeding bug producing a zero
// key, which would make that table slot indistinguishable from "this
// component contributes nothing" in an XOR-accumulated hash.
func TestNoKeyIsZero(t *testing.T) {
	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			if zobrist.PieceSquare[p][s] == 0 {
				t.Errorf("PieceSquare[%d][%s] is zero", p, s)
			}
		}
	}
	for f := square.File(0); f < square.FileN; f++ {
		if zobrist.EnPassant[f] == 0 {
			t.Errorf("EnPassant[%s] is zero", f)
		}
	}
	for r := 0; r < castling.N; r++ {
		if zobrist.Castling[r] == 0 {
			t.Errorf("Castling[%d] is zero", r)
		}
	}
	if zobrist.SideToMove == 0 {
		t.Error("SideToMove is zero")
	}
}
