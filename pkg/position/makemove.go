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
	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
	"github.com/corvusengine/corvus/pkg/zobrist"
)

func abs(s square.Square) square.Square {
	if s < 0 {
		return -s
	}
	return s
}

// Make plays m, which must be legal, updating every field of p
// incrementally and pushing an Irreversible record onto the undo
// stack so Unmake can restore this exact state. It follows the
// ordered algorithm of spec §4.4.
func (p *Position) Make(m move.Move) {
	record := Irreversible{
		Move:            m,
		Captured:        piece.NoPiece,
		CapturedSquare:  square.None,
		EnPassantTarget: p.EnPassantTarget,
		Castling:        p.Castling,
		HalfmoveClock:   p.HalfmoveClock,
		Hash:            p.Hash,
	}

	p.HalfmoveClock++

	moving := p.Mailbox[m.From]
	movingType := moving.Type()

	captureSq := m.To
	isDoublePush := movingType == piece.Pawn && abs(m.To-m.From) == 16
	isCastle := movingType == piece.King && abs(m.To-m.From) == 2
	isEnPassant := movingType == piece.Pawn && m.To == p.EnPassantTarget
	isCapture := p.Mailbox[m.To] != piece.NoPiece || isEnPassant

	if movingType == piece.Pawn {
		p.HalfmoveClock = 0
	}

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = square.None

	switch {
	case isDoublePush:
		ep := m.From + square.Square(p.SideToMove.PawnPush())
		if attackingPawns(p, ep) {
			p.EnPassantTarget = ep
			p.Hash ^= zobrist.EnPassant[ep.File()]
		}

	case isCastle:
		rook := castling.Rooks[m.To]
		rookPiece := p.Mailbox[rook.From]
		p.clearSquare(rook.From)
		p.fillSquare(rook.To, rookPiece)

	case isEnPassant:
		captureSq = m.To - square.Square(p.SideToMove.PawnPush())
	}

	if isCapture {
		record.Captured = p.Mailbox[captureSq]
		record.CapturedSquare = captureSq
		p.HalfmoveClock = 0
		p.clearSquare(captureSq)
	}

	p.clearSquare(m.From)
	result := moving
	if m.Promotion != piece.None {
		result = piece.New(m.Promotion, p.SideToMove)
	}
	p.fillSquare(m.To, result)

	p.Hash ^= zobrist.Castling[p.Castling]
	p.Castling &^= castling.RightUpdates[m.From]
	p.Castling &^= castling.RightUpdates[m.To]
	p.Hash ^= zobrist.Castling[p.Castling]

	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.White {
		p.FullMoveNumber++
	}
	p.Hash ^= zobrist.SideToMove

	p.history = append(p.history, record)
}

// attackingPawns reports whether an enemy pawn could capture on ep,
// the square a double push just passed over; the en-passant target is
// only set when a capture is actually possible there, matching the
// hash-stability convention the rest of the engine relies on.
func attackingPawns(p *Position, ep square.Square) bool {
	us, them := p.SideToMove, p.SideToMove.Other()
	return attacks.Pawn[us][ep]&p.Pawns(them) != 0
}

// Unmake reverts the most recently made move, restoring p to exactly
// the state it was in before Make was called.
func (p *Position) Unmake() {
	last := len(p.history) - 1
	record := p.history[last]
	p.history = p.history[:last]

	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.Black {
		p.FullMoveNumber--
	}

	m := record.Move
	moving := p.Mailbox[m.To]

	p.clearSquare(m.To)
	if m.Promotion != piece.None {
		moving = piece.New(piece.Pawn, p.SideToMove)
	}
	p.fillSquare(m.From, moving)

	movingType := moving.Type()
	if movingType == piece.King && abs(m.To-m.From) == 2 {
		rook := castling.Rooks[m.To]
		rookPiece := p.Mailbox[rook.To]
		p.clearSquare(rook.To)
		p.fillSquare(rook.From, rookPiece)
	}

	if record.Captured != piece.NoPiece {
		p.fillSquare(record.CapturedSquare, record.Captured)
	}

	p.EnPassantTarget = record.EnPassantTarget
	p.Castling = record.Castling
	p.HalfmoveClock = record.HalfmoveClock
	p.Hash = record.Hash
}
