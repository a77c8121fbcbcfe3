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

package search

import (
	"testing"

	"github.com/corvusengine/corvus/pkg/eval"
	"github.com/corvusengine/corvus/pkg/position"
)

// TestNegamaxAspirationRecovery drives negamax directly with a
// deliberately narrow window and re-widens on the fail-low/fail-high
// sentinel exactly the way the root loop in Search does, checking
// that the widened search converges on the same best move and score
// a single full-window search finds, per spec §8 scenario 6.
func TestNegamaxAspirationRecovery(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	const depth = 3

	full := NewContext(nil)
	fullResults := full.negamax(pos.Clone(), 0, depth, eval.Eval{CP: -eval.Inf}, eval.Eval{CP: eval.Inf}, nil)

	narrow := NewContext(nil)
	center := eval.Eval{CP: 0}
	L, U := 5, 5
	alpha, beta := center.SubCP(L), center.AddCP(U)

	var results = narrow.negamax(pos.Clone(), 0, depth, alpha, beta, nil)
	for i := 0; i < 10; i++ {
		score := results[0].Score
		switch {
		case !score.Greater(alpha):
			L *= 4
			alpha = center.SubCP(L)
		case !score.Less(beta):
			U *= 4
			beta = center.AddCP(U)
		default:
			i = 10 // window contains the true score, stop widening.
			continue
		}
		results = narrow.negamax(pos.Clone(), 0, depth, alpha, beta, nil)
	}

	if results[0].Move != fullResults[0].Move {
		t.Errorf("best move mismatch: full=%s narrow=%s", fullResults[0].Move, results[0].Move)
	}
	if results[0].Score != fullResults[0].Score {
		t.Errorf("score mismatch: full=%s narrow=%s", fullResults[0].Score, results[0].Score)
	}
}
