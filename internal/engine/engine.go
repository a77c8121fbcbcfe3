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

// Package engine wires the UCI command surface of spec §6 to the core
// position, search, and evaluation packages. It is the collaborator
// layer the spec documents only by contract: a thin dispatch table,
// no chess logic of its own.
package engine

import (
	"io"

	"github.com/corvusengine/corvus/pkg/position"
	"github.com/corvusengine/corvus/pkg/search"
	"github.com/corvusengine/corvus/pkg/uci"
)

const name = "Corvus"
const author = "The Corvus Authors"

// Engine is the mutable state one UCI session shares across commands.
type Engine struct {
	pos    *position.Position
	search *search.Context
}

// New builds an Engine at the initial position and registers every
// command of spec §6 on a fresh uci.Client.
func New(out io.Writer) uci.Client {
	e := &Engine{
		pos:    position.New(),
		search: search.NewContext(out),
	}

	client := uci.NewClient()
	client.AddCommand(newCmdUCI(e))
	client.AddCommand(newCmdPosition(e))
	client.AddCommand(newCmdGo(e))
	client.AddCommand(newCmdStop(e))
	client.AddCommand(newCmdPrintBoard(e))
	return client
}
