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
	"strings"
	"testing"

	"github.com/corvusengine/corvus/internal/corpus"
	"github.com/corvusengine/corvus/pkg/position"
)

// foolsMatePGN is a short, fully-annotated game so the fixtures Scan
// produces can be checked against this package's own move generator
// without depending on any external file.
const foolsMatePGN = `[Event "?"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1
`

// ruyLopezOpeningPGN exercises castling rights bookkeeping (O-O) in
// addition to ordinary piece moves.
const ruyLopezOpeningPGN = `[Event "?"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 *
`

// TestCorpusRegression replays every fixture internal/corpus extracts
// from a PGN game through this package's own FEN parser and legal
// move generator, checking that the move notnil/chess reports for a
// ply is one this package's LegalMoves also produces from the same
// FEN, and that playing it lands on the next fixture's FEN (or, for
// the final ply, leaves no inconsistency behind). This is the
// perft/movegen regression path spec.md §8 calls for corpus-derived
// fixtures to feed.
func TestCorpusRegression(t *testing.T) {
	games := []struct {
		name string
		pgn  string
	}{
		{"fools mate", foolsMatePGN},
		{"ruy lopez opening", ruyLopezOpeningPGN},
	}

	for _, g := range games {
		g := g
		t.Run(g.name, func(t *testing.T) {
			fixtures, err := corpus.Scan(strings.NewReader(g.pgn))
			if err != nil {
				t.Fatal(err)
			}
			if len(fixtures) == 0 {
				t.Fatal("corpus.Scan produced no fixtures")
			}

			for i, fx := range fixtures {
				pos, err := position.FromFEN(fx.FEN)
				if err != nil {
					t.Fatalf("ply %d: bad fixture FEN %q: %v", i, fx.FEN, err)
				}

				found := false
				for _, m := range pos.LegalMoves() {
					if m == fx.Move {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("ply %d: %s not found among LegalMoves() for %q", i, fx.Move, fx.FEN)
				}

				pos.Make(fx.Move)

				if i+1 < len(fixtures) {
					if got, want := pos.FEN(), fixtures[i+1].FEN; got != want {
						t.Fatalf("ply %d: after %s, got FEN %q, want %q", i, fx.Move, got, want)
					}
				}
			}
		})
	}
}
