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

package castling

import "github.com/corvusengine/corvus/pkg/square"

// RookMove describes where a rook travels when its king castles.
type RookMove struct {
	From, To square.Square
}

// Rooks is indexed by the king's target square during a castling move
// and gives the corresponding rook move. Every other square holds the
// zero RookMove.
var Rooks = [square.N]RookMove{
	square.G1: {From: square.H1, To: square.F1},
	square.C1: {From: square.A1, To: square.D1},
	square.G8: {From: square.H8, To: square.F8},
	square.C8: {From: square.A8, To: square.D8},
}
