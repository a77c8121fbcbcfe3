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

// Command corvusbench is the perft/search benchmarking harness named
// as a collaborator in spec.md §1: it runs perft across a suite of
// well-known FENs, cross-checks the node counts against spec.md §8's
// reference values, and reports nodes/sec.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvusengine/corvus/pkg/position"
)

// suite pairs a benchmark FEN/depth with the known-correct leaf count
// from spec.md §8, so a mismatch is caught immediately rather than
// silently reported as a nodes/sec figure.
type suite struct {
	name  string
	fen   string
	depth int
	nodes uint64
}

var positions = []suite{
	{"startpos", position.StartFEN, 5, 4865609},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
	{"en passant pin", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
	{"promotion", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", 3, 62379},
}

func main() {
	bar := progressbar.NewOptions(
		len(positions),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("position"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	var names []string
	var rates []opts.LineData

	fail := false
	for _, s := range positions {
		pos, err := position.FromFEN(s.fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "corvusbench: %s: %v\n", s.name, err)
			os.Exit(1)
		}

		start := time.Now()
		nodes := pos.Perft(s.depth)
		elapsed := time.Since(start)

		nps := float64(nodes) / elapsed.Seconds()
		names = append(names, s.name)
		rates = append(rates, opts.LineData{Value: nps})

		if nodes != s.nodes {
			fmt.Fprintf(os.Stderr, "corvusbench: %s: depth %d: got %d nodes, want %d\n",
				s.name, s.depth, nodes, s.nodes)
			fail = true
		}

		_ = bar.Add(1)
	}
	_ = bar.Close()

	chart := charts.NewLine()
	chart.SetXAxis(names).AddSeries("nodes/sec", rates)

	f, err := os.Create("corvusbench.html")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	_ = chart.Render(f)

	if fail {
		os.Exit(1)
	}
}
