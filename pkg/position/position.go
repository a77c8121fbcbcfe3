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

// Package position implements the bitboard position representation of
// spec §3/§4.4 (C2), together with the legal move generator (C4) and
// make/unmake (C5) built on top of it.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvusengine/corvus/pkg/bitboard"
	"github.com/corvusengine/corvus/pkg/castling"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/piece"
	"github.com/corvusengine/corvus/pkg/square"
	"github.com/corvusengine/corvus/pkg/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Irreversible is the undo information pushed for every move played, so
// that Unmake can restore the fields make can't cheaply recompute.
type Irreversible struct {
	Move            move.Move
	Captured        piece.Piece
	CapturedSquare  square.Square
	EnPassantTarget square.Square
	Castling        castling.Rights
	HalfmoveClock   int
	Hash            zobrist.Key
}

// Position holds the complete, mutable state of a chess game in
// progress: piece placement, side to move, castling rights,
// en-passant target, move clocks, the undo stack and the incremental
// Zobrist hash.
type Position struct {
	PieceBB [piece.TypeN]bitboard.Board
	ColorBB [piece.ColorN]bitboard.Board
	Mailbox [square.N]piece.Piece

	SideToMove      piece.Color
	Castling        castling.Rights
	EnPassantTarget square.Square
	HalfmoveClock   int
	FullMoveNumber  int

	Hash zobrist.Key

	history []Irreversible
}

// New returns the standard starting position.
func New() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("position: bad built-in start FEN: " + err.Error())
	}
	return p
}

// FromFEN parses a position from its six-field FEN representation.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("position: fen %q does not have 6 fields", fen)
	}

	p := &Position{EnPassantTarget: square.None}
	for i := range p.Mailbox {
		p.Mailbox[i] = piece.NoPiece
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: fen %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		r := square.Rank(7 - i)
		f := square.FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += square.File(c - '0')
				continue
			}
			pc, ok := piece.FromFENByte(byte(c))
			if !ok {
				return nil, fmt.Errorf("position: bad piece byte %q in fen %q", c, fen)
			}
			if f > square.FileH {
				return nil, fmt.Errorf("position: rank %q overflows the board", rankStr)
			}
			p.fillSquare(square.New(f, r), pc)
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = piece.White
	case "b":
		p.SideToMove = piece.Black
		p.Hash ^= zobrist.SideToMove
	default:
		return nil, fmt.Errorf("position: bad side to move %q", fields[1])
	}

	rights, err := castling.FromString(fields[2])
	if err != nil {
		return nil, err
	}
	p.Castling = rights
	p.Hash ^= zobrist.Castling[p.Castling]

	ep, err := square.FromString(fields[3])
	if err != nil {
		return nil, err
	}
	p.EnPassantTarget = ep
	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	p.HalfmoveClock, err = strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("position: bad halfmove clock %q", fields[4])
	}
	p.FullMoveNumber, err = strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("position: bad fullmove number %q", fields[5])
	}

	return p, nil
}

// FEN renders the position back to its six-field FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := square.Rank(square.RankN - 1); r >= 0; r-- {
		empty := 0
		for f := square.File(0); f < square.FileN; f++ {
			pc := p.Mailbox[square.New(f, r)]
			if pc == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))
	return sb.String()
}

// String renders the position as a bordered ASCII grid, rank 8 first,
// followed by its FEN and Zobrist key — the print_board diagnostic of
// spec §6.
func (p *Position) String() string {
	var sb strings.Builder
	border := " ---------------------------------\n"

	sb.WriteString(border)
	for r := square.Rank(square.RankN - 1); r >= 0; r-- {
		sb.WriteByte('|')
		for f := square.File(0); f < square.FileN; f++ {
			fmt.Fprintf(&sb, " %s |", p.Mailbox[square.New(f, r)])
		}
		fmt.Fprintf(&sb, " %s\n", r)
		sb.WriteString(border)
	}
	sb.WriteString("   a   b   c   d   e   f   g   h\n")
	fmt.Fprintf(&sb, "FEN: %s\n", p.FEN())
	fmt.Fprintf(&sb, "Key: %016X\n", uint64(p.Hash))
	return sb.String()
}

// Clone returns a deep copy of p, so a search worker can make/unmake on
// its own position without aliasing another worker's state.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]Irreversible(nil), p.history...)
	return &c
}

// Occupied returns every occupied square.
func (p *Position) Occupied() bitboard.Board {
	return p.ColorBB[piece.White] | p.ColorBB[piece.Black]
}

// Friends and Enemies return the occupancy of the side to move and its
// opponent respectively.
func (p *Position) Friends() bitboard.Board { return p.ColorBB[p.SideToMove] }
func (p *Position) Enemies() bitboard.Board { return p.ColorBB[p.SideToMove.Other()] }

// PieceAt returns the piece occupying s, or piece.NoPiece.
func (p *Position) PieceAt(s square.Square) piece.Piece {
	return p.Mailbox[s]
}

// King returns the square of c's king.
func (p *Position) King(c piece.Color) square.Square {
	return (p.PieceBB[piece.King] & p.ColorBB[c]).LSB()
}

// Pawns, Knights, Bishops, Rooks and Queens return the bitboard of c's
// pieces of the named type.
func (p *Position) Pawns(c piece.Color) bitboard.Board   { return p.PieceBB[piece.Pawn] & p.ColorBB[c] }
func (p *Position) Knights(c piece.Color) bitboard.Board { return p.PieceBB[piece.Knight] & p.ColorBB[c] }
func (p *Position) Bishops(c piece.Color) bitboard.Board { return p.PieceBB[piece.Bishop] & p.ColorBB[c] }
func (p *Position) Rooks(c piece.Color) bitboard.Board   { return p.PieceBB[piece.Rook] & p.ColorBB[c] }
func (p *Position) Queens(c piece.Color) bitboard.Board  { return p.PieceBB[piece.Queen] & p.ColorBB[c] }

// fillSquare places pc on s, updating the bitboards, mailbox and hash.
// The square must be empty; it is a logic violation otherwise.
func (p *Position) fillSquare(s square.Square, pc piece.Piece) {
	if p.Mailbox[s] != piece.NoPiece {
		panic(fmt.Sprintf("position: fillSquare: %s is already occupied by %s (fen %s)", s, p.Mailbox[s], p.FEN()))
	}
	p.Mailbox[s] = pc
	p.PieceBB[pc.Type()].Set(s)
	p.ColorBB[pc.Color()].Set(s)
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// clearSquare removes whatever piece occupies s. It is a logic
// violation to call this on an empty square.
func (p *Position) clearSquare(s square.Square) {
	pc := p.Mailbox[s]
	if pc == piece.NoPiece {
		panic(fmt.Sprintf("position: clearSquare: %s is already empty (fen %s)", s, p.FEN()))
	}
	p.Mailbox[s] = piece.NoPiece
	p.PieceBB[pc.Type()].Unset(s)
	p.ColorBB[pc.Color()].Unset(s)
	p.Hash ^= zobrist.PieceSquare[pc][s]
}
