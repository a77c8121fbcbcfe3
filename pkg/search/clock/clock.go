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

// Package clock implements the time-control half of spec §4.6/§5: a
// stopper flag every search worker polls, and a timer goroutine that
// sets it once the allotted time for the move has passed.
package clock

import (
	"sync/atomic"
	"time"

	"github.com/corvusengine/corvus/pkg/piece"
)

// Stopper is the single cancellation flag shared by every search
// worker. It is checked, never blocked on, at every node (spec §5).
type Stopper struct {
	flag atomic.Bool
}

// Stop sets the flag. Safe to call more than once or concurrently.
func (s *Stopper) Stop() { s.flag.Store(true) }

// Stopped reports whether the flag has been set.
func (s *Stopper) Stopped() bool { return s.flag.Load() }

// Reset clears the flag for a new search.
func (s *Stopper) Reset() { s.flag.Store(false) }

// Limits carries every time/depth/node bound a UCI "go" command can
// specify.
type Limits struct {
	Depth    int
	Nodes    uint64
	MoveTime time.Duration
	Infinite bool

	Time      [piece.ColorN]time.Duration
	Increment [piece.ColorN]time.Duration
}

// movesToGo is the fixed horizon the clock/40 allocation of spec §4.6
// divides the remaining clock by, absent a "moves to go" hint from the
// GUI.
const movesToGo = 40

// Allocate computes how long the side to move should spend on this
// move, per spec §4.6: an explicit per-move time if given, else
// clock/40 of the remaining side clock. ok is false when neither is
// available (an untimed, non-infinite "go" runs unbounded until stop,
// per spec §9's open-question resolution).
func (l Limits) Allocate(us piece.Color) (d time.Duration, ok bool) {
	switch {
	case l.Infinite:
		return 0, false
	case l.MoveTime > 0:
		return l.MoveTime, true
	case l.Time[us] > 0:
		return l.Time[us] / movesToGo, true
	default:
		return 0, false
	}
}

// Timer wraps the stdlib timer that arms a Stopper after a move's
// allocated time elapses. Search should call Stop once it returns so a
// finished search doesn't leave a stale timer pending.
type Timer struct {
	t *time.Timer
}

// Arm schedules stopper.Stop to run after d, returning a Timer the
// caller must Stop when the search that owns it completes. If ok is
// false (no time limit applies), Arm returns a no-op Timer.
func Arm(stopper *Stopper, limits Limits, us piece.Color) *Timer {
	d, ok := limits.Allocate(us)
	if !ok {
		return &Timer{}
	}
	return &Timer{t: time.AfterFunc(d, stopper.Stop)}
}

// Stop cancels the pending timer, if any.
func (t *Timer) Stop() {
	if t.t != nil {
		t.t.Stop()
	}
}
