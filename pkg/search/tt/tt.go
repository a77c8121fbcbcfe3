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

// Package tt implements the shared transposition table of spec §4.6/§5:
// a concurrent map from Zobrist key to the sorted (move, score) result
// list negamax produced the last time it searched that position.
// Sharding by the low bits of the key, each shard behind its own mutex,
// satisfies the spec's "serialize write-after-write under the same
// key" requirement without serializing unrelated keys under one lock.
package tt

import (
	"sync"

	"github.com/corvusengine/corvus/pkg/eval"
	"github.com/corvusengine/corvus/pkg/move"
	"github.com/corvusengine/corvus/pkg/zobrist"
)

// Result pairs a move with the score negamax assigned it; a position's
// full search result is a Results slice, sorted best move first.
type Result struct {
	Move  move.Move
	Score eval.Eval
}

// Results is a move/score list sorted with the best move first.
type Results []Result

// Best returns the first (best) result's move, or the null move if
// Results is empty.
func (r Results) Best() move.Move {
	if len(r) == 0 {
		return move.Null
	}
	return r[0].Move
}

// Entry is what the table stores against a Zobrist key.
type Entry struct {
	Depth   int
	Results Results
}

// shardBits controls the number of independent lock shards; 2^10
// shards is enough that GOMAXPROCS workers rarely collide on the same
// mutex while keeping the table itself a handful of small maps.
const shardBits = 10
const shardCount = 1 << shardBits
const shardMask = shardCount - 1

type shard struct {
	mu sync.RWMutex
	m  map[zobrist.Key]Entry
}

// Table is the sharded, concurrency-safe transposition table.
type Table struct {
	shards [shardCount]*shard
}

// New returns an empty transposition table.
func New() *Table {
	t := &Table{}
	for i := range t.shards {
		t.shards[i] = &shard{m: make(map[zobrist.Key]Entry)}
	}
	return t
}

func (t *Table) shardFor(key zobrist.Key) *shard {
	return t.shards[uint64(key)&shardMask]
}

// Probe returns the entry stored for key, if any.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	s := t.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.m[key]
	return e, ok
}

// Store records entry under key, overwriting whatever was there.
// Negamax only ever stores the result of a completed (non-cancelled)
// search of a node, so there is no quality heuristic to arbitrate
// between old and new the way a single-threaded engine needs one.
func (t *Table) Store(key zobrist.Key, entry Entry) {
	s := t.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = entry
}

// Snapshot captures every shard's contents for later restoration, used
// to discard the entries a failed aspiration-window attempt wrote
// before the window is widened and the depth is retried.
func (t *Table) Snapshot() *Snapshot {
	snap := &Snapshot{shards: make([]map[zobrist.Key]Entry, shardCount)}
	for i, s := range t.shards {
		s.mu.RLock()
		cp := make(map[zobrist.Key]Entry, len(s.m))
		for k, v := range s.m {
			cp[k] = v
		}
		s.mu.RUnlock()
		snap.shards[i] = cp
	}
	return snap
}

// Restore replaces the table's contents with a previously captured
// Snapshot.
func (t *Table) Restore(snap *Snapshot) {
	for i, m := range snap.shards {
		s := t.shards[i]
		s.mu.Lock()
		s.m = m
		s.mu.Unlock()
	}
}

// Snapshot is an opaque, previously captured table state.
type Snapshot struct {
	shards []map[zobrist.Key]Entry
}
