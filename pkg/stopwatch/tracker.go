// Package stopwatch implements elapsed-time accounting and the lap ledger.
//
// A Tracker accumulates running time across pause/resume cycles from a
// monotonic clock and records lap splits. It has no error paths: commands
// issued in the wrong state are no-ops. It is not safe for concurrent use;
// callers drive it from a single event loop.
package stopwatch

import (
	"time"

	"github.com/cloudposse/splitwatch/pkg/clock"
)

// Tracker is the stopwatch state machine.
type Tracker struct {
	clock clock.Clock

	running       bool
	started       bool
	startTime     time.Time
	elapsedBefore time.Duration
	laps          []Lap
}

// NewTracker returns an idle Tracker reading time from c.
func NewTracker(c clock.Clock) *Tracker {
	return &Tracker{clock: c}
}

// Start begins a run segment. No-op while running.
func (t *Tracker) Start() {
	if t.running {
		return
	}
	t.startTime = t.clock.Now()
	t.running = true
	t.started = true
}

// Pause folds the current run segment into the accumulated total. No-op while paused.
func (t *Tracker) Pause() {
	if !t.running {
		return
	}
	t.elapsedBefore += t.segment()
	t.running = false
	t.started = false
	t.startTime = time.Time{}
}

// Reset returns the Tracker to its initial state regardless of the current one.
func (t *Tracker) Reset() {
	t.running = false
	t.started = false
	t.startTime = time.Time{}
	t.elapsedBefore = 0
	t.laps = nil
}

// Lap records a split at the current elapsed time. No-op while paused, and
// when no time has passed since the previous lap, so cumulative times stay
// strictly increasing.
func (t *Tracker) Lap() {
	if !t.running {
		return
	}

	current := t.Elapsed()
	previous := t.lastCumulative()
	if current <= previous {
		return
	}

	t.laps = append(t.laps, Lap{
		Index:      len(t.laps) + 1,
		Split:      current - previous,
		Cumulative: current,
	})
}

// Elapsed returns the total running time since the last reset.
func (t *Tracker) Elapsed() time.Duration {
	if !t.running {
		return t.elapsedBefore
	}
	return t.elapsedBefore + t.segment()
}

// Running reports whether time is accumulating.
func (t *Tracker) Running() bool {
	return t.running
}

// Laps returns a copy of the ledger, oldest first.
func (t *Tracker) Laps() []Lap {
	if len(t.laps) == 0 {
		return nil
	}
	laps := make([]Lap, len(t.laps))
	copy(laps, t.laps)
	return laps
}

// LapCount returns the number of recorded laps.
func (t *Tracker) LapCount() int {
	return len(t.laps)
}

// FastestAndSlowest returns the shortest and longest splits in the ledger.
// See the package-level FastestAndSlowest.
func (t *Tracker) FastestAndSlowest() (Extremes, bool) {
	return FastestAndSlowest(t.laps)
}

// Started reports whether Start was called since construction or the last Reset.
func (t *Tracker) Started() bool {
	return t.started
}

// Pristine reports whether the Tracker is in its initial state.
func (t *Tracker) Pristine() bool {
	return !t.running && t.elapsedBefore == 0 && len(t.laps) == 0
}

// segment is the length of the current run segment.
// A monotonic clock never yields a negative value; a misbehaving one is clamped.
func (t *Tracker) segment() time.Duration {
	d := t.clock.Now().Sub(t.startTime)
	if d < 0 {
		return 0
	}
	return d
}

func (t *Tracker) lastCumulative() time.Duration {
	if len(t.laps) == 0 {
		return 0
	}
	return t.laps[len(t.laps)-1].Cumulative
}
