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

package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/position"
	"github.com/corvusengine/corvus/pkg/search/clock"
	"github.com/corvusengine/corvus/pkg/uci/cmd"
	"github.com/corvusengine/corvus/pkg/uci/flag"
)

func newCmdUCI(e *Engine) cmd.Command {
	return cmd.Command{
		Name: "uci",
		Run: func(i cmd.Interaction) error {
			i.Replyf("id name %s", name)
			i.Replyf("id author %s", author)
			i.Reply("uciok")
			return nil
		},
	}
}

// startposFields holds the initial position's FEN pre-split into the
// six fields the "fen" flag's Array collects, so "position startpos"
// and "position fen <six fields>" share one code path.
var startposFields = strings.Fields(position.StartFEN)

func newCmdPosition(e *Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Button("startpos")
	schema.Array("fen", len(startposFields))
	schema.Variadic("moves")

	return cmd.Command{
		Name:  "position",
		Flags: schema,
		Run: func(i cmd.Interaction) error {
			pos, err := parsePosition(i.Values)
			if err != nil {
				return err
			}
			e.pos = pos
			return nil
		},
	}
}

func parsePosition(values flag.Values) (*position.Position, error) {
	var pos *position.Position

	switch {
	case values["startpos"].Set:
		p, err := position.FromFEN(strings.Join(startposFields, " "))
		if err != nil {
			return nil, err
		}
		pos = p
	case values["fen"].Set:
		fields := values["fen"].Value.([]string)
		p, err := position.FromFEN(strings.Join(fields, " "))
		if err != nil {
			return nil, err
		}
		pos = p
	default:
		return nil, errors.New("position: no startpos or fen given")
	}

	if values["moves"].Set {
		for _, s := range values["moves"].Value.([]string) {
			m, err := move.FromString(s)
			if err != nil {
				return nil, err
			}
			pos.Make(m)
		}
	}

	return pos, nil
}

func newCmdGo(e *Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Single("perft")
	schema.Single("depth")
	schema.Single("nodes")
	schema.Single("movetime")
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Button("infinite")

	return cmd.Command{
		Name:     "go",
		Flags:    schema,
		Parallel: true,
		Run: func(i cmd.Interaction) error {
			if values := i.Values; values["perft"].Set {
				return runPerft(e, i, values["perft"].Value.(string))
			}
			return runSearch(e, i, i.Values)
		},
	}
}

func runPerft(e *Engine, i cmd.Interaction, depthStr string) error {
	depth, err := strconv.Atoi(depthStr)
	if err != nil {
		return fmt.Errorf("go perft: %w", err)
	}

	pos := e.pos.Clone()
	var total uint64
	for mv, n := range pos.Divide(depth) {
		i.Replyf("%s: %d", mv, n)
		total += n
	}
	i.Replyf("Nodes searched: %d", total)
	return nil
}

func runSearch(e *Engine, i cmd.Interaction, values flag.Values) error {
	limits, err := parseLimits(values)
	if err != nil {
		return err
	}

	results, _ := e.search.Search(e.pos, limits)
	best := results.Best()

	ponder := move.Null
	if len(results) > 1 {
		ponder = results[1].Move
	}
	if ponder.IsNull() {
		i.Replyf("bestmove %s", best)
	} else {
		i.Replyf("bestmove %s ponder %s", best, ponder)
	}
	return nil
}

func parseLimits(values flag.Values) (clock.Limits, error) {
	var limits clock.Limits

	if values["infinite"].Set {
		limits.Infinite = true
	}

	if v := values["depth"]; v.Set {
		d, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, fmt.Errorf("go: depth: %w", err)
		}
		limits.Depth = d
	}

	if v := values["nodes"]; v.Set {
		n, err := strconv.ParseUint(v.Value.(string), 10, 64)
		if err != nil {
			return limits, fmt.Errorf("go: nodes: %w", err)
		}
		limits.Nodes = n
	}

	if v := values["movetime"]; v.Set {
		ms, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, fmt.Errorf("go: movetime: %w", err)
		}
		limits.MoveTime = time.Duration(ms) * time.Millisecond
	}

	if v := values["wtime"]; v.Set {
		ms, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, fmt.Errorf("go: wtime: %w", err)
		}
		limits.Time[piece.White] = time.Duration(ms) * time.Millisecond
	}
	if v := values["btime"]; v.Set {
		ms, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, fmt.Errorf("go: btime: %w", err)
		}
		limits.Time[piece.Black] = time.Duration(ms) * time.Millisecond
	}
	if v := values["winc"]; v.Set {
		ms, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, fmt.Errorf("go: winc: %w", err)
		}
		limits.Increment[piece.White] = time.Duration(ms) * time.Millisecond
	}
	if v := values["binc"]; v.Set {
		ms, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, fmt.Errorf("go: binc: %w", err)
		}
		limits.Increment[piece.Black] = time.Duration(ms) * time.Millisecond
	}

	return limits, nil
}

func newCmdStop(e *Engine) cmd.Command {
	return cmd.Command{
		Name: "stop",
		Run: func(cmd.Interaction) error {
			e.search.Stopper.Stop()
			return nil
		},
	}
}

func newCmdPrintBoard(e *Engine) cmd.Command {
	return cmd.Command{
		Name: "print_board",
		Run: func(i cmd.Interaction) error {
			i.Reply(e.pos.String())
			return nil
		},
	}
}
