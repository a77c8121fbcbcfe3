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

// Package flag implements the small argument grammar UCI command
// lines use: a flat sequence of flag names, each consuming zero, one,
// a fixed number, or the rest of the remaining tokens.
package flag

import "fmt"

// NewSchema initializes an empty flag Schema.
func NewSchema() Schema {
	return Schema{flags: make(map[string]Flag)}
}

// Schema describes the flags one UCI command accepts.
type Schema struct {
	flags map[string]Flag
}

// Parse consumes args according to the schema, returning the value
// collected for each flag that appeared.
func (s Schema) Parse(args []string) (Values, error) {
	values := make(Values)

	if s.flags == nil {
		if len(args) > 0 {
			return values, fmt.Errorf("parse flags: unknown flag %q", args[0])
		}
		return values, nil
	}

	for len(args) > 0 {
		name := args[0]

		collect, isFlag := s.flags[name]
		if !isFlag {
			return values, fmt.Errorf("parse flags: unknown flag %q", name)
		}
		if values[name].Set {
			return values, fmt.Errorf("parse flags: flag %q already set", name)
		}

		value, rest, err := collect(args[1:])
		if err != nil {
			return values, err
		}
		args = rest

		values[name] = Value{Set: true, Value: value}
	}

	return values, nil
}

// Button declares a flag with no arguments; its presence is the only
// information it carries (e.g. "startpos", "infinite").
func (s Schema) Button(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return nil, args, nil
	}
}

// Single declares a flag taking exactly one argument.
func (s Schema) Single(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		if len(args) == 0 {
			return nil, nil, argNumErr(name, 1, 0)
		}
		return args[0], args[1:], nil
	}
}

// Array declares a flag taking a fixed number of arguments, e.g. the
// six space-separated fields of a FEN string.
func (s Schema) Array(name string, argN int) {
	s.flags[name] = func(args []string) (any, []string, error) {
		value := make([]string, argN)
		if collected := copy(value, args); collected != argN {
			return nil, nil, argNumErr(name, argN, collected)
		}
		return value, args[argN:], nil
	}
}

// Variadic declares a flag that consumes every remaining argument.
func (s Schema) Variadic(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return args, []string{}, nil
	}
}

// Flag collects its own arguments off the front of args, returning
// its parsed value and whatever args remain.
type Flag func([]string) (any, []string, error)

// Values maps each flag that appeared to its parsed Value.
type Values map[string]Value

// Value is one flag's parse result.
type Value struct {
	Set   bool
	Value any
}

func argNumErr(flag string, expected, collected int) error {
	return fmt.Errorf("flag %s: expected %d args, got %d", flag, expected, collected)
}
