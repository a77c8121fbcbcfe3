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

package position_test

import (
	"testing"

	"github.com/corvusengine/corvus/pkg/position"
)

func TestFEN(t *testing.T) {
	tests := []string{
		position.StartFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			p, err := position.FromFEN(test)
			if err != nil {
				t.Fatalf("test %d: %v", n, err)
			}
			if got := p.FEN(); got != test {
				t.Errorf("test %d: wrong fen\nwant %s\ngot  %s", n, test, got)
			}
		})
	}
}

func TestBitboardConsistency(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	assertConsistent(t, p)

	for _, m := range p.LegalMoves() {
		p.Make(m)
		assertConsistent(t, p)
		p.Unmake()
	}
}

func assertConsistent(t *testing.T, p *position.Position) {
	t.Helper()

	var seen [64]int
	for _, bb := range p.PieceBB {
		for bb != 0 {
			s := bb.PopLSB()
			seen[s]++
		}
	}
	for s, n := range seen {
		if n > 1 {
			t.Errorf("square %d set in %d type bitboards", s, n)
		}
	}

	union := p.ColorBB[0] | p.ColorBB[1]
	for _, bb := range p.PieceBB {
		if bb&p.ColorBB[0] != 0 && bb&p.ColorBB[1] != 0 {
			t.Errorf("type bitboard straddles both colors: %016x", uint64(bb))
		}
		if bb&^union != 0 {
			t.Errorf("piece square not covered by either color bitboard")
		}
	}
}
