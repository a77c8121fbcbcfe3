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

package attacks

import (
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/square"
)

// bishopDirs and rookDirs are the compass directions a bishop and rook
// slide along.
var (
	bishopDirs = [4]bitboard.Direction{bitboard.NorthWest, bitboard.NorthEast, bitboard.SouthEast, bitboard.SouthWest}
	rookDirs   = [4]bitboard.Direction{bitboard.North, bitboard.East, bitboard.South, bitboard.West}
)

// positiveRay computes the attack ray from s in a positive (increasing
// square index) direction over the given occupancy, using the
// blocker-subtraction trick of spec §4.2.
func positiveRay(s square.Square, dir bitboard.Direction, occ bitboard.Board) bitboard.Board {
	ray := bitboard.Rays[dir][s]
	blocked := ray & occ
	blocker := (blocked | bitboard.Squares[square.H8]).LSB()
	return ray ^ bitboard.Rays[dir][blocker]
}

// negativeRay is the MSB-based variant of positiveRay for directions
// that decrease the square index.
func negativeRay(s square.Square, dir bitboard.Direction, occ bitboard.Board) bitboard.Board {
	ray := bitboard.Rays[dir][s]
	blocked := ray & occ
	blocker := (blocked | bitboard.Squares[square.A1]).MSB()
	return ray ^ bitboard.Rays[dir][blocker]
}

// ray dispatches to positiveRay or negativeRay depending on the
// direction's sign.
func ray(s square.Square, dir bitboard.Direction, occ bitboard.Board) bitboard.Board {
	if dir.Positive() {
		return positiveRay(s, dir, occ)
	}
	return negativeRay(s, dir, occ)
}

// Bishop returns the attack set of a bishop on s given the board's full
// occupancy, excluding squares held by friendly pieces.
func Bishop(s square.Square, occ, friends bitboard.Board) bitboard.Board {
	var attacks bitboard.Board
	for _, d := range bishopDirs {
		attacks |= ray(s, d, occ)
	}
	return attacks &^ friends
}

// Rook returns the attack set of a rook on s given the board's full
// occupancy, excluding squares held by friendly pieces.
func Rook(s square.Square, occ, friends bitboard.Board) bitboard.Board {
	var attacks bitboard.Board
	for _, d := range rookDirs {
		attacks |= ray(s, d, occ)
	}
	return attacks &^ friends
}

// Queen returns the union of Bishop and Rook attacks from s.
func Queen(s square.Square, occ, friends bitboard.Board) bitboard.Board {
	return Bishop(s, occ, friends) | Rook(s, occ, friends)
}

// XrayBishop returns the bishop attacks from s that are blocked by
// exactly one of the pieces in blockers, per the x-ray construction of
// spec §4.2: compute attacks with full occupancy, remove the own-piece
// blockers intersected by those attacks, recompute, and XOR the two.
func XrayBishop(s square.Square, occ, blockers bitboard.Board) bitboard.Board {
	attacks := Bishop(s, occ, bitboard.Empty)
	blockers &= attacks
	return attacks ^ Bishop(s, occ^blockers, bitboard.Empty)
}

// XrayRook is the rook analogue of XrayBishop.
func XrayRook(s square.Square, occ, blockers bitboard.Board) bitboard.Board {
	attacks := Rook(s, occ, bitboard.Empty)
	blockers &= attacks
	return attacks ^ Rook(s, occ^blockers, bitboard.Empty)
}
