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

package position

// Perft counts the leaf nodes of the legal move tree rooted at p to
// the given depth, the standard move generator correctness benchmark
// of spec §8. Since LegalMoves already excludes illegal moves, no
// post-hoc check test is needed here, unlike generate-then-filter
// move generators.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range p.LegalMoves() {
		p.Make(m)
		nodes += p.Perft(depth - 1)
		p.Unmake()
	}
	return nodes
}

// Divide runs Perft one ply at a time, breaking the node count down
// by root move; useful when a perft mismatch needs bisecting against
// a reference engine.
func (p *Position) Divide(depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth == 0 {
		return counts
	}

	for _, m := range p.LegalMoves() {
		p.Make(m)
		counts[m.String()] = p.Perft(depth - 1)
		p.Unmake()
	}
	return counts
}
