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

// Package uci implements the line-based GUI/engine protocol: a REPL
// that reads whitespace-separated commands from stdin and dispatches
// each to a registered cmd.Command.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corvusengine/corvus/pkg/uci/cmd"
)

// errQuit is returned by the "quit" command to unwind the REPL loop
// without it being reported as a parse or execution error.
var errQuit = errors.New("quit")

// NewClient creates a Client listening on stdin/stdout with the
// default "quit" and "isready" commands registered.
func NewClient() Client {
	c := Client{stdin: os.Stdin, stdout: os.Stdout}
	c.commands = cmd.NewSchema(c.stdout)

	c.AddCommand(cmd.Command{
		Name: "quit",
		Run:  func(cmd.Interaction) error { return errQuit },
	})
	c.AddCommand(cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	})

	return c
}

// Client is a UCI engine's command loop.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
}

// AddCommand registers c, overriding any existing command of the same name.
func (c *Client) AddCommand(command cmd.Command) { c.commands.Add(command) }

// Start runs the read-eval-print loop until stdin closes or "quit" is
// read. Parse and command errors are reported to stdout and do not
// stop the loop, matching how GUIs expect a UCI engine to behave.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// an EOF on stdin is treated the same as an explicit quit.
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args, true); {
		case err == nil:
		case errors.Is(err, errQuit):
			return nil
		default:
			c.Println(err)
		}
	}
}

// Run executes args as a single command, always synchronously.
func (c *Client) Run(args ...string) error {
	return c.RunWith(args, false)
}

// RunWith dispatches args to the command named by its first element.
// When parallelize is true and the command is marked Parallel, it
// runs in its own goroutine so a long-running search does not block
// the loop from reading the next line (e.g. "stop").
func (c *Client) RunWith(args []string, parallelize bool) error {
	name, rest := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	if parallelize && command.Parallel {
		go func() {
			if err := command.RunWith(rest, c.commands); err != nil {
				c.Println(err)
			}
		}()
		return nil
	}

	return command.RunWith(rest, c.commands)
}

// Print, Printf, and Println act like their fmt counterparts, writing
// to the client's reply stream.
func (c *Client) Print(a ...any) (int, error)            { return fmt.Fprint(c.stdout, a...) }
func (c *Client) Printf(f string, a ...any) (int, error) { return fmt.Fprintf(c.stdout, f, a...) }
func (c *Client) Println(a ...any) (int, error)          { return fmt.Fprintln(c.stdout, a...) }
