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
	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
)

// moveGen carries the per-call scratch state of legal move generation
// (spec §4.3) so that Position itself stays free of movegen-only
// fields.
type moveGen struct {
	pos *Position

	us, them piece.Color
	kingSq   square.Square

	friends, enemies, occupied bitboard.Board

	checkN                 int
	captureMask, pushMask  bitboard.Board
	pinned                 bitboard.Board
	pinRay                 [square.N]bitboard.Board
	seenByEnemy            bitboard.Board

	moves move.List
}

// LegalMoves generates the full set of legal moves for the side to
// move, following the checkers/evasion-mask/pin strategy of spec §4.3
// rather than generate-then-filter.
func (p *Position) LegalMoves() move.List {
	g := &moveGen{pos: p, moves: make(move.List, 0, 48)}
	g.init()

	g.generateKing()
	if g.checkN >= 2 {
		// double check: only the king can move.
		return g.moves
	}

	g.generateKnights()
	g.generateSliders(p.Bishops(g.us), attacks.Bishop)
	g.generateSliders(p.Rooks(g.us), attacks.Rook)
	g.generateSliders(p.Queens(g.us), attacks.Queen)
	g.generatePawns()

	return g.moves
}

func (g *moveGen) init() {
	p := g.pos
	g.us = p.SideToMove
	g.them = g.us.Other()
	g.kingSq = p.King(g.us)

	g.friends = p.Friends()
	g.enemies = p.Enemies()
	g.occupied = g.friends | g.enemies

	g.calculateCheckMask()
	g.calculatePins()

	g.seenByEnemy = p.seenBy(g.them)
}

// target is the set of squares a non-king piece may legally land on:
// a capture of the sole checker, or a push that blocks it, or (out of
// check) anywhere not held by a friendly piece.
func (g *moveGen) target() bitboard.Board {
	return (g.captureMask | g.pushMask) &^ g.friends
}

func isSlider(t piece.Type) bool {
	return t == piece.Bishop || t == piece.Rook || t == piece.Queen
}

// calculateCheckMask implements spec §4.3 step 1/2: find the checkers
// and derive the capture/push masks evasions must land in.
func (g *moveGen) calculateCheckMask() {
	checkers := g.pos.Checkers()
	g.checkN = checkers.Count()

	switch {
	case g.checkN >= 2:
		g.captureMask = bitboard.Empty
		g.pushMask = bitboard.Empty
	case g.checkN == 1:
		c := checkers.LSB()
		g.captureMask = bitboard.Squares[c]
		if isSlider(g.pos.Mailbox[c].Type()) {
			g.pushMask = bitboard.Between[g.kingSq][c]
		} else {
			g.pushMask = bitboard.Empty
		}
	default:
		g.captureMask = bitboard.Universe
		g.pushMask = bitboard.Universe
	}
}

// calculatePins implements spec §4.3 step 3 using the x-ray sliding
// attacks of C3: a king-eye-view x-ray through exactly one friendly
// piece finds both the pinner and the pinned piece in one pass.
func (g *moveGen) calculatePins() {
	p := g.pos
	diag := p.Bishops(g.them) | p.Queens(g.them)
	for xray := attacks.XrayBishop(g.kingSq, g.occupied, g.friends) & diag; xray != bitboard.Empty; {
		g.recordPin(xray.PopLSB())
	}

	ortho := p.Rooks(g.them) | p.Queens(g.them)
	for xray := attacks.XrayRook(g.kingSq, g.occupied, g.friends) & ortho; xray != bitboard.Empty; {
		g.recordPin(xray.PopLSB())
	}
}

func (g *moveGen) recordPin(pinner square.Square) {
	ray := bitboard.Between[g.kingSq][pinner] | bitboard.Squares[pinner]
	pinnedSq := (ray & g.friends).LSB()
	g.pinned.Set(pinnedSq)
	g.pinRay[pinnedSq] = ray
}

// restrict narrows a piece's pseudo-legal destination set to its pin
// ray if it's pinned; this naturally yields zero destinations for a
// piece whose only moves leave its pin ray, with no special-casing
// needed per piece type (spec §4.3 step 4).
func (g *moveGen) restrict(from square.Square, dests bitboard.Board) bitboard.Board {
	if g.pinned.IsSet(from) {
		return dests & g.pinRay[from]
	}
	return dests
}

func (g *moveGen) emit(from, to square.Square) {
	g.moves = append(g.moves, move.New(from, to))
}

func (g *moveGen) emitPromotions(from, to square.Square) {
	g.moves = append(g.moves,
		move.NewPromotion(from, to, piece.Queen),
		move.NewPromotion(from, to, piece.Rook),
		move.NewPromotion(from, to, piece.Bishop),
		move.NewPromotion(from, to, piece.Knight),
	)
}

func (g *moveGen) generateKing() {
	dests := attacks.King[g.kingSq] &^ g.friends &^ g.seenByEnemy
	for dests != bitboard.Empty {
		g.emit(g.kingSq, dests.PopLSB())
	}
	if g.checkN == 0 {
		g.generateCastling()
	}
}

func (g *moveGen) generateCastling() {
	rights := g.pos.Castling
	occ, seen := g.occupied, g.seenByEnemy

	kingside := func(kingFrom, kingTo, f, h square.Square) bool {
		empty := bitboard.Squares[f] | bitboard.Squares[h]
		return occ&empty == bitboard.Empty && seen&empty == bitboard.Empty
	}
	queenside := func(b, c, d square.Square) bool {
		empty := bitboard.Squares[b] | bitboard.Squares[c] | bitboard.Squares[d]
		unattacked := bitboard.Squares[c] | bitboard.Squares[d]
		return occ&empty == bitboard.Empty && seen&unattacked == bitboard.Empty
	}

	if g.us == piece.White {
		if rights&castling.WhiteKingside != 0 && kingside(square.E1, square.G1, square.F1, square.G1) {
			g.emit(square.E1, square.G1)
		}
		if rights&castling.WhiteQueenside != 0 && queenside(square.B1, square.C1, square.D1) {
			g.emit(square.E1, square.C1)
		}
		return
	}
	if rights&castling.BlackKingside != 0 && kingside(square.E8, square.G8, square.F8, square.G8) {
		g.emit(square.E8, square.G8)
	}
	if rights&castling.BlackQueenside != 0 && queenside(square.B8, square.C8, square.D8) {
		g.emit(square.E8, square.C8)
	}
}

func (g *moveGen) generateKnights() {
	for knights := g.pos.Knights(g.us); knights != bitboard.Empty; {
		from := knights.PopLSB()
		dests := g.restrict(from, attacks.Knight[from]&g.target())
		for dests != bitboard.Empty {
			g.emit(from, dests.PopLSB())
		}
	}
}

type sliderAttacks func(s square.Square, occ, friends bitboard.Board) bitboard.Board

func (g *moveGen) generateSliders(pieces bitboard.Board, attack sliderAttacks) {
	for pieces != bitboard.Empty {
		from := pieces.PopLSB()
		dests := g.restrict(from, attack(from, g.occupied, g.friends)&g.target())
		for dests != bitboard.Empty {
			g.emit(from, dests.PopLSB())
		}
	}
}

func (g *moveGen) generatePawns() {
	p := g.pos
	us := g.us
	pawns := p.Pawns(us)

	promotionRank := bitboard.Ranks[square.Rank8]
	doublePushFromRank := bitboard.Ranks[square.Rank2]
	forward := func(s square.Square) square.Square { return s + 8 }
	backward := func(s square.Square) square.Square { return s - 8 }
	if us == piece.Black {
		promotionRank = bitboard.Ranks[square.Rank1]
		doublePushFromRank = bitboard.Ranks[square.Rank7]
		forward = func(s square.Square) square.Square { return s - 8 }
		backward = func(s square.Square) square.Square { return s + 8 }
	}

	empty := ^g.occupied

	for bb := pawns; bb != bitboard.Empty; {
		from := bb.PopLSB()

		captures := g.restrict(from, attacks.Pawn[us][from]&g.enemies&g.captureMask)
		for captures != bitboard.Empty {
			to := captures.PopLSB()
			if promotionRank.IsSet(to) {
				g.emitPromotions(from, to)
			} else {
				g.emit(from, to)
			}
		}

		single := forward(from)
		if empty.IsSet(single) {
			if dests := g.restrict(from, bitboard.Squares[single]&g.pushMask); dests != bitboard.Empty {
				if promotionRank.IsSet(single) {
					g.emitPromotions(from, single)
				} else {
					g.emit(from, single)
				}
			}

			if doublePushFromRank.IsSet(from) {
				double := forward(single)
				if empty.IsSet(double) {
					if dests := g.restrict(from, bitboard.Squares[double]&g.pushMask); dests != bitboard.Empty {
						g.emit(from, double)
					}
				}
			}
		}
	}

	g.generateEnPassant(backward)
}

// generateEnPassant implements the en-passant half of spec §4.3's
// pawn rules, including the horizontal-pin legality check: the
// moving pawn and its victim are temporarily removed from the
// occupancy and the king is re-checked for attack, which catches a
// pin along the 4th/5th rank that the ordinary pin masks miss (the
// "pinned" piece and the piece that unblocks the rank are different
// squares).
func (g *moveGen) generateEnPassant(backward func(square.Square) square.Square) {
	p := g.pos
	target := p.EnPassantTarget
	if target == square.None {
		return
	}

	victim := backward(target)
	if (bitboard.Squares[target]|bitboard.Squares[victim])&(g.captureMask|g.pushMask) == bitboard.Empty {
		// capturing en passant neither takes the checker nor blocks the check.
		return
	}

	attackers := attacks.Pawn[g.them][target] & p.Pawns(g.us)
	for attackers != bitboard.Empty {
		from := attackers.PopLSB()

		if g.pinned.IsSet(from) && !g.pinRay[from].IsSet(target) {
			continue
		}

		occAfter := g.occupied &^ bitboard.Squares[from] &^ bitboard.Squares[victim]
		if p.isAttackedOver(g.kingSq, g.them, occAfter) {
			continue
		}

		g.emit(from, target)
	}
}
