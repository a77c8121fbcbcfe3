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

package eval_test

import (
	"testing"

	"github.com/corvusengine/corvus/pkg/eval"
	"github.com/corvusengine/corvus/pkg/position"
)

func TestEvaluateStartposIsBalanced(t *testing.T) {
	p := position.New()
	if got := eval.Evaluate(p); got.CP != 0 || got.HasMate {
		t.Errorf("startpos: got %s, want cp 0", got)
	}
}

func TestEvaluateCheckmate(t *testing.T) {
	// Fool's mate: white to move, checkmated.
	p, err := position.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if got := eval.Evaluate(p); !got.HasMate || got.Mating {
		t.Errorf("got %s, want a mated-in-0 score for the side to move", got)
	}
}

func TestEvaluateStalemate(t *testing.T) {
	p, err := position.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := eval.Evaluate(p); got != eval.Draw {
		t.Errorf("got %s, want draw", got)
	}
}

func TestEvalOrdering(t *testing.T) {
	cases := []struct {
		a, b eval.Eval
	}{
		{eval.MatingIn(1), eval.MatingIn(3)},
		{eval.MatedIn(3), eval.MatedIn(1)},
		{eval.MatingIn(5), eval.Eval{CP: 10000}},
		{eval.Eval{CP: 50}, eval.MatedIn(1)},
		{eval.Eval{CP: 50}, eval.Eval{CP: 10}},
	}

	for _, c := range cases {
		if !c.a.Greater(c.b) {
			t.Errorf("%s should rank above %s", c.a, c.b)
		}
		if c.b.Greater(c.a) {
			t.Errorf("%s should not rank above %s", c.b, c.a)
		}
	}
}

func TestNegateRoundTrip(t *testing.T) {
	e := eval.Eval{CP: 137}
	if got := e.Negate().Negate(); got != e {
		t.Errorf("double negate: got %s, want %s", got, e)
	}

	m := eval.MatingIn(2)
	back := m.Negate().Negate()
	if back.Distance != m.Distance+2 || back.Mating != m.Mating {
		t.Errorf("double negate of mate score: got %+v, want distance %d", back, m.Distance+2)
	}
}
