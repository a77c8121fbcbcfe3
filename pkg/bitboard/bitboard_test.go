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

package bitboard_test

import (
	"testing"

	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/square"
)

func TestSetUnsetIsSet(t *testing.T) {
	cases := []square.Square{square.A1, square.E4, square.H8, square.D5}

	for _, s := range cases {
		var b bitboard.Board
		if b.IsSet(s) {
			t.Fatalf("%s: set before Set called", s)
		}
		b.Set(s)
		if !b.IsSet(s) {
			t.Errorf("%s: not set after Set", s)
		}
		b.Unset(s)
		if b.IsSet(s) {
			t.Errorf("%s: still set after Unset", s)
		}
	}
}

func TestFilesAndRanksPartitionTheBoard(t *testing.T) {
	var union bitboard.Board
	for _, f := range bitboard.Files {
		if f.Count() != 8 {
			t.Errorf("file mask has %d squares, want 8", f.Count())
		}
		union |= f
	}
	if union != bitboard.Universe {
		t.Errorf("file masks don't cover the whole board: %s", union)
	}

	union = 0
	for _, r := range bitboard.Ranks {
		if r.Count() != 8 {
			t.Errorf("rank mask has %d squares, want 8", r.Count())
		}
		union |= r
	}
	if union != bitboard.Universe {
		t.Errorf("rank masks don't cover the whole board: %s", union)
	}
}

func TestPopLSBDrainsEveryBit(t *testing.T) {
	b := bitboard.Squares[square.A1] | bitboard.Squares[square.D4] | bitboard.Squares[square.H8]

	want := map[square.Square]bool{square.A1: true, square.D4: true, square.H8: true}
	got := 0
	for b != bitboard.Empty {
		s := b.PopLSB()
		if !want[s] {
			t.Errorf("PopLSB produced unexpected square %s", s)
		}
		delete(want, s)
		got++
	}

	if got != 3 || len(want) != 0 {
		t.Errorf("PopLSB drained %d squares, left %v unvisited", got, want)
	}
}

func FuzzPopLSBCount(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(0xFFFFFFFFFFFFFFFF))
	f.Add(uint64(0x8000000000000001))

	f.Fuzz(func(t *testing.T, raw uint64) {
		b := bitboard.Board(raw)
		want := b.Count()

		got := 0
		for b != bitboard.Empty {
			b.PopLSB()
			got++
		}

		if got != want {
			t.Errorf("Count()=%d but PopLSB drained %d bits", want, got)
		}
	})
}
