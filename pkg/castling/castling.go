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

// Package castling implements the four-boolean castling rights set of
// spec §3, packed into a single byte.
package castling

import (
	"fmt"

	"github.com/corvusengine/corvus/pkg/square"
)

// Rights is a bitset of the four castling rights.
type Rights byte

const (
	WhiteKingside Rights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct Rights values, used to size the
	// Zobrist castling-key table.
	N = 16
)

// RightUpdates maps a square to the rights that must be revoked when a
// piece moves from or to it: moving the king or a rook off its home
// square, or capturing a rook on its home square, forfeits the
// corresponding right. Every other square is None.
var RightUpdates [square.N]Rights

func init() {
	RightUpdates[square.A1] = WhiteQueenside
	RightUpdates[square.E1] = White
	RightUpdates[square.H1] = WhiteKingside
	RightUpdates[square.A8] = BlackQueenside
	RightUpdates[square.E8] = Black
	RightUpdates[square.H8] = BlackKingside
}

// FromString parses the castling field of a FEN record, e.g. "KQkq" or
// "-".
func FromString(s string) (Rights, error) {
	if s == "-" {
		return None, nil
	}

	var r Rights
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		default:
			return None, fmt.Errorf("castling: bad right %q in %q", c, s)
		}
	}
	return r, nil
}

// String renders the rights in FEN order, KQkq, or "-" if none remain.
func (r Rights) String() string {
	var s string
	if r&WhiteKingside != 0 {
		s += "K"
	}
	if r&WhiteQueenside != 0 {
		s += "Q"
	}
	if r&BlackKingside != 0 {
		s += "k"
	}
	if r&BlackQueenside != 0 {
		s += "q"
	}
	if s == "" {
		s = "-"
	}
	return s
}
