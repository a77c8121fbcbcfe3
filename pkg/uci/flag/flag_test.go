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

package flag_test

import (
	"testing"

	"github.com/corvusengine/corvus/pkg/uci/flag"
)

func TestButtonFlag(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("infinite")

	values, err := schema.Parse([]string{"infinite"})
	if err != nil {
		t.Fatal(err)
	}
	if !values["infinite"].Set {
		t.Error("infinite: not marked Set")
	}
}

func TestSingleFlag(t *testing.T) {
	schema := flag.NewSchema()
	schema.Single("depth")

	values, err := schema.Parse([]string{"depth", "6"})
	if err != nil {
		t.Fatal(err)
	}
	if got := values["depth"].Value.(string); got != "6" {
		t.Errorf("depth: got %q, want %q", got, "6")
	}
}

func TestSingleFlagMissingArg(t *testing.T) {
	schema := flag.NewSchema()
	schema.Single("depth")

	if _, err := schema.Parse([]string{"depth"}); err == nil {
		t.Error("expected an error for a depth flag with no argument")
	}
}

func TestArrayFlag(t *testing.T) {
	schema := flag.NewSchema()
	schema.Array("fen", 6)

	fields := []string{"8/8/8/8/8/8/8/8", "w", "-", "-", "0", "1"}
	values, err := schema.Parse(append([]string{"fen"}, fields...))
	if err != nil {
		t.Fatal(err)
	}
	if got := values["fen"].Value.([]string); len(got) != 6 {
		t.Errorf("fen: got %d fields, want 6", len(got))
	}
}

func TestArrayFlagTooFewArgs(t *testing.T) {
	schema := flag.NewSchema()
	schema.Array("fen", 6)

	if _, err := schema.Parse([]string{"fen", "only", "two"}); err == nil {
		t.Error("expected an error for a short fen array")
	}
}

func TestVariadicFlagConsumesEverything(t *testing.T) {
	schema := flag.NewSchema()
	schema.Variadic("moves")

	values, err := schema.Parse([]string{"moves", "e2e4", "e7e5", "g1f3"})
	if err != nil {
		t.Fatal(err)
	}
	if got := values["moves"].Value.([]string); len(got) != 3 {
		t.Errorf("moves: got %d moves, want 3", len(got))
	}
}

func TestUnknownFlag(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("startpos")

	if _, err := schema.Parse([]string{"bogus"}); err == nil {
		t.Error("expected an error for an unregistered flag")
	}
}

func TestDuplicateFlag(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("startpos")

	if _, err := schema.Parse([]string{"startpos", "startpos"}); err == nil {
		t.Error("expected an error for a flag set twice")
	}
}

func TestMultipleFlagsInOneCommand(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("startpos")
	schema.Variadic("moves")

	values, err := schema.Parse([]string{"startpos", "moves", "e2e4", "e7e5"})
	if err != nil {
		t.Fatal(err)
	}
	if !values["startpos"].Set {
		t.Error("startpos: not marked Set")
	}
	if got := values["moves"].Value.([]string); len(got) != 2 {
		t.Errorf("moves: got %d moves, want 2", len(got))
	}
}
