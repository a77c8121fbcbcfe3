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

// Package square implements the board's square indexing scheme and the
// file/rank arithmetic built on top of it.
package square

import "fmt"

// Square is an index into the 64 squares of a chessboard. a1 is 0 and
// h8 is 63, incrementing first along the a-h files and then up the
// 1-8 ranks, so that square+8 is always one rank north.
type Square int8

// None represents the absence of a square, used for a unset en-passant
// target or a null move's endpoints.
const None Square = -1

// N is the number of squares on a board.
const N = 64

// constants for every square on the board
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// New constructs a Square from a file and rank, both zero-indexed.
func New(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// File returns the square's file, a (0) through h (7).
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the square's rank, 1 (0) through 8 (7).
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// String returns the algebraic notation of the square, e.g. "e4".
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// FromString parses a square in algebraic notation, e.g. "e4".
func FromString(str string) (Square, error) {
	if str == "-" {
		return None, nil
	}
	if len(str) != 2 {
		return None, fmt.Errorf("square: bad algebraic square %q", str)
	}

	f := str[0] - 'a'
	r := str[1] - '1'
	if f > 7 || r > 7 {
		return None, fmt.Errorf("square: bad algebraic square %q", str)
	}

	return New(File(f), Rank(r)), nil
}

// File is a column of the chessboard, a (0) through h (7).
type File int8

// constants for every file
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH

	FileN = 8
)

// String returns the file's algebraic letter.
func (f File) String() string {
	return string(rune('a' + f))
}

// Rank is a row of the chessboard, 1 (0) through 8 (7).
type Rank int8

// constants for every rank
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8

	RankN = 8
)

// String returns the rank's digit.
func (r Rank) String() string {
	return string(rune('1' + r))
}
