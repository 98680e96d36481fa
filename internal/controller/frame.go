package controller

import (
	"slices"

	"github.com/cloudposse/splitwatch/pkg/stopwatch"
)

// Phase is the coarse stopwatch state shown to the user.
type Phase int

const (
	// PhaseIdle is the pristine state: never started or just reset.
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "idle"
	}
}

// LapRow is one formatted lap.
type LapRow struct {
	Index      int
	Split      string
	Cumulative string
	Fastest    bool
	Slowest    bool
}

// Frame is everything a Renderer needs to draw the stopwatch.
type Frame struct {
	Elapsed string
	Phase   Phase
	// Laps are ordered most recent first.
	Laps           []LapRow
	LapCount       int
	FastestIndexes []int
	SlowestIndexes []int
	LapEnabled     bool
	ResetEnabled   bool
}

// NewFrame snapshots tracker into a Frame.
func NewFrame(tracker *stopwatch.Tracker) Frame {
	laps := tracker.Laps()
	fastest, slowest := stopwatch.FastestAndSlowestIndexes(laps)

	rows := make([]LapRow, 0, len(laps))
	for i := len(laps) - 1; i >= 0; i-- {
		l := laps[i]
		rows = append(rows, LapRow{
			Index:      l.Index,
			Split:      stopwatch.Format(l.Split),
			Cumulative: stopwatch.Format(l.Cumulative),
			Fastest:    slices.Contains(fastest, l.Index),
			Slowest:    slices.Contains(slowest, l.Index),
		})
	}

	return Frame{
		Elapsed:        stopwatch.Format(tracker.Elapsed()),
		Phase:          phaseOf(tracker),
		Laps:           rows,
		LapCount:       len(laps),
		FastestIndexes: fastest,
		SlowestIndexes: slowest,
		LapEnabled:     tracker.Running(),
		ResetEnabled:   !tracker.Pristine(),
	}
}

func phaseOf(tracker *stopwatch.Tracker) Phase {
	switch {
	case tracker.Running():
		return PhaseRunning
	case !tracker.Started():
		return PhaseIdle
	default:
		return PhasePaused
	}
}
