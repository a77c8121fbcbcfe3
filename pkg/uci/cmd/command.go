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

// Package cmd gives names to UCI commands and dispatches a parsed
// command line to the one registered under its first token.
package cmd

import (
	"fmt"
	"io"

	"github.com/corvusengine/corvus/pkg/uci/flag"
)

// NewSchema initializes an empty command Schema that replies on w.
func NewSchema(w io.Writer) Schema {
	return Schema{replyWriter: w, commands: make(map[string]Command)}
}

// Schema is the set of commands a Client understands.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers c under its own Name.
func (s *Schema) Add(c Command) { s.commands[c.Name] = c }

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is one GUI-to-engine command.
type Command struct {
	Name string

	// Parallel commands run in their own goroutine so a long search
	// doesn't block the REPL from reading "stop" off stdin.
	Parallel bool

	Run   func(Interaction) error
	Flags flag.Schema
}

// RunWith parses args against c's flag schema and invokes Run.
func (c Command) RunWith(args []string, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}
	return c.Run(Interaction{stdout: schema.replyWriter, Command: c, Values: values})
}

// Interaction is the context a running command gets: its own
// definition, parsed flag values, and a way to reply to the GUI.
type Interaction struct {
	stdout io.Writer

	Command
	Values flag.Values
}

// Reply writes a line to the GUI.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a formatted, newline-terminated line to the GUI.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
