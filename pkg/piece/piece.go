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

// Package piece implements the piece type and color sum types shared by
// every other package in the engine.
package piece

// Type is a chess piece type, ignoring color.
type Type int8

// constants for every piece type, including the None sentinel used to
// simplify bitboard lookups (e.g. indexing a table with the type of
// whatever occupies an empty square).
const (
	Pawn Type = iota
	Knight
	Bishop
	Rook
	Queen
	King
	None

	TypeN = 6
)

// String returns the uppercase algebraic letter of the piece type, or
// "" for None.
func (t Type) String() string {
	switch t {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Value is the centipawn material value of a piece type, used by the
// evaluator (spec §4.5).
var Value = [TypeN]int{
	Pawn:   100,
	Knight: 349,
	Bishop: 350,
	Rook:   525,
	Queen:  1000,
	King:   20000,
}

// PromotionFromString maps a UCI promotion letter (r, n, b, q) to a
// Type. It returns None for any other input, including the empty
// string of a non-promoting move.
func PromotionFromString(s string) Type {
	switch s {
	case "n":
		return Knight
	case "b":
		return Bishop
	case "r":
		return Rook
	case "q":
		return Queen
	default:
		return None
	}
}

// PromotionString is the inverse of PromotionFromString.
func (t Type) PromotionString() string {
	switch t {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// Color is a chess side, with an Empty sentinel for unoccupied squares.
type Color int8

const (
	White Color = iota
	Black
	Empty

	ColorN = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PawnPush is the square delta of a single pawn push for the color, +8
// for White (towards rank 8) and -8 for Black (towards rank 1).
func (c Color) PawnPush() int {
	if c == White {
		return 8
	}
	return -8
}

// Piece is a (Type, Color) pair, packed into a small integer so it can
// index flat tables like the Zobrist piece-square keys.
type Piece int8

// NoPiece represents an empty square.
const NoPiece Piece = Piece(TypeN) * Piece(ColorN)

// N is the number of valid, non-empty pieces.
const N = int(NoPiece)

// New constructs a Piece from a type and color.
func New(t Type, c Color) Piece {
	return Piece(int(c)*TypeN + int(t))
}

// Type returns the piece's type.
func (p Piece) Type() Type {
	if p == NoPiece {
		return None
	}
	return Type(int(p) % TypeN)
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	if p == NoPiece {
		return Empty
	}
	return Color(int(p) / TypeN)
}

// String returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, and "." for an empty square.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}

	s := p.Type().String()
	if p.Color() == Black {
		return string(rune(s[0] - 'A' + 'a'))
	}
	return s
}

// FromFENByte maps a FEN piece-placement character to a Piece. ok is
// false if the byte isn't a recognised piece letter.
func FromFENByte(b byte) (p Piece, ok bool) {
	var c Color
	if b >= 'a' && b <= 'z' {
		c = Black
	} else {
		c = White
	}

	var t Type
	switch b {
	case 'p', 'P':
		t = Pawn
	case 'n', 'N':
		t = Knight
	case 'b', 'B':
		t = Bishop
	case 'r', 'R':
		t = Rook
	case 'q', 'Q':
		t = Queen
	case 'k', 'K':
		t = King
	default:
		return NoPiece, false
	}

	return New(t, c), true
}
