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
	"strconv"
	"testing"

	"github.com/corvusengine/corvus/pkg/position"
)

func TestPerftInitialPosition(t *testing.T) {
	want := map[int]uint64{1: 20, 2: 400, 3: 8902, 4: 197281}

	for depth, nodes := range want {
		depth, nodes := depth, nodes
		t.Run(strconv.Itoa(depth), func(t *testing.T) {
			p := position.New()
			if got := p.Perft(depth); got != nodes {
				t.Errorf("depth %d: got %d nodes, want %d", depth, got, nodes)
			}
		})
	}
}

func TestPerftInitialPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 perft is slow")
	}
	p := position.New()
	if got, want := p.Perft(5), uint64(4865609); got != want {
		t.Errorf("depth 5: got %d nodes, want %d", got, want)
	}
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 kiwipete perft is slow")
	}
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Perft(4), uint64(4085603); got != want {
		t.Errorf("got %d nodes, want %d", got, want)
	}
}

func TestPerftEnPassantPin(t *testing.T) {
	p, err := position.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Perft(4), uint64(43238); got != want {
		t.Errorf("got %d nodes, want %d (horizontal en-passant pin)", got, want)
	}
}

func TestPerftPromotion(t *testing.T) {
	p, err := position.FromFEN("n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Perft(3), uint64(62379); got != want {
		t.Errorf("got %d nodes, want %d", got, want)
	}
}
