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

package position

import (
	"github.com/corvusengine/corvus/pkg/attacks"
	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// isAttackedOver reports whether s is attacked by a piece of color by,
// using occ as the occupancy for sliding-piece ray tracing. It lets
// callers probe hypothetical occupancies (e.g. the en-passant pin
// check of spec §4.3) without mutating the position.
func (p *Position) isAttackedOver(s square.Square, by piece.Color, occ bitboard.Board) bool {
	if attacks.Pawn[by.Other()][s]&p.Pawns(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&p.Knights(by) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&(p.PieceBB[piece.King]&p.ColorBB[by]) != bitboard.Empty {
		return true
	}

	queens := p.Queens(by)
	if attacks.Bishop(s, occ, bitboard.Empty)&(p.Bishops(by)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(s, occ, bitboard.Empty)&(p.Rooks(by)|queens) != bitboard.Empty
}

// IsAttacked reports whether s is attacked by a piece of color by,
// under the position's actual occupancy.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	return p.isAttackedOver(s, by, p.Occupied())
}

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c piece.Color) bool {
	return p.IsAttacked(p.King(c), c.Other())
}

// Checkers returns the bitboard of enemy pieces giving check to the
// side to move's king, per spec §4.3 step 1.
func (p *Position) Checkers() bitboard.Board {
	us, them := p.SideToMove, p.SideToMove.Other()
	kingSq := p.King(us)
	occ := p.Occupied()

	queens := p.Queens(them)
	var checkers bitboard.Board
	checkers |= attacks.Pawn[us][kingSq] & p.Pawns(them)
	checkers |= attacks.Knight[kingSq] & p.Knights(them)
	checkers |= attacks.Bishop(kingSq, occ, bitboard.Empty) & (p.Bishops(them) | queens)
	checkers |= attacks.Rook(kingSq, occ, bitboard.Empty) & (p.Rooks(them) | queens)
	return checkers
}

// seenBy returns every square attacked by a piece of color by. The
// king of the opposite color is removed from the occupancy first so
// that sliding attacks see through it, per spec §4.3's king-move rule:
// "the king cannot step further along a ray" it's currently blocking.
func (p *Position) seenBy(by piece.Color) bitboard.Board {
	occ := p.Occupied() &^ (p.PieceBB[piece.King] & p.ColorBB[by.Other()])

	var seen bitboard.Board
	seen |= attacks.PawnSetWise(p.Pawns(by), by)

	for knights := p.Knights(by); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.PopLSB()]
	}
	for bishops := p.Bishops(by) | p.Queens(by); bishops != bitboard.Empty; {
		seen |= attacks.Bishop(bishops.PopLSB(), occ, bitboard.Empty)
	}
	for rooks := p.Rooks(by) | p.Queens(by); rooks != bitboard.Empty; {
		seen |= attacks.Rook(rooks.PopLSB(), occ, bitboard.Empty)
	}
	seen |= attacks.King[p.King(by)]

	return seen
}
