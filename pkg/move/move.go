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

// Package move implements the minimal {from, to, promotion} move
// representation of spec §3. Everything else about a move (whether
// it's a castle, an en-passant capture, a capture at all) is implicit
// in the position it is played against, and is derived by package
// position rather than stored here.
package move

import (
	"fmt"

	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// Move is a single chess move.
type Move struct {
	From      square.Square
	To        square.Square
	Promotion piece.Type
}

// Null is the move played to represent "no move" (e.g. in the search's
// fail-low/cutoff returns); its from and to squares are
// square.None and it promotes to nothing.
var Null = Move{From: square.None, To: square.None, Promotion: piece.None}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.From == square.None && m.To == square.None
}

// New constructs a non-promoting move.
func New(from, to square.Square) Move {
	return Move{From: from, To: to, Promotion: piece.None}
}

// NewPromotion constructs a promoting move.
func NewPromotion(from, to square.Square, promotion piece.Type) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// String renders m in UCI long-algebraic notation, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != piece.None {
		s += m.Promotion.PromotionString()
	}
	return s
}

// FromString parses a move in UCI long-algebraic notation.
func FromString(s string) (Move, error) {
	if s == "0000" {
		return Null, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return Null, fmt.Errorf("move: bad uci move %q", s)
	}

	from, err := square.FromString(s[0:2])
	if err != nil {
		return Null, fmt.Errorf("move: %w", err)
	}
	to, err := square.FromString(s[2:4])
	if err != nil {
		return Null, fmt.Errorf("move: %w", err)
	}

	promotion := piece.None
	if len(s) == 5 {
		promotion = piece.PromotionFromString(s[4:5])
		if promotion == piece.None {
			return Null, fmt.Errorf("move: bad promotion piece %q in %q", s[4:5], s)
		}
	}

	return Move{From: from, To: to, Promotion: promotion}, nil
}

// List is an ordered list of moves, e.g. the pseudo-legal/legal move
// list fed into negamax.
type List []Move
