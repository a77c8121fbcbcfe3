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

package search_test

import (
	"testing"

	"github.com/corvusengine/corvus/pkg/position"
	"github.com/corvusengine/corvus/pkg/search"
	"github.com/corvusengine/corvus/pkg/search/clock"
)

// TestSearchFindsMateInOne drives the full iterative-deepening loop
// over a one-move mate, per spec §8 scenario 5.
func TestSearchFindsMateInOne(t *testing.T) {
	pos, err := position.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ctx := search.NewContext(nil)
	results, score := ctx.Search(pos, clock.Limits{Depth: 5})

	if want := "a1a8"; results.Best().String() != want {
		t.Errorf("best move: got %s, want %s", results.Best(), want)
	}
	if !score.HasMate || !score.Mating || score.Distance != 1 {
		t.Errorf("score: got %s, want mate in 1", score)
	}
}

// TestSearchCompletesOnQuietPosition is a broader sanity check that a
// bounded-depth search on an ordinary middlegame position always
// terminates with a legal best move.
func TestSearchCompletesOnQuietPosition(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ctx := search.NewContext(nil)
	results, _ := ctx.Search(pos, clock.Limits{Depth: 3})

	if results.Best().IsNull() {
		t.Errorf("search returned a null best move from a position with legal moves")
	}
}
