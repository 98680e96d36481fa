package stopwatch

import (
	"time"

	"github.com/samber/lo"
)

// Lap is a recorded split. Values are never modified after recording.
type Lap struct {
	// Index is 1-based and equals the lap's position in the ledger.
	Index int
	// Split is the time since the previous lap, or since zero for the first lap.
	Split time.Duration
	// Cumulative is the total elapsed time when the lap was recorded.
	Cumulative time.Duration
}

// Extremes holds the shortest and longest lap splits.
type Extremes struct {
	Fastest time.Duration
	Slowest time.Duration
}

// IsFastest reports whether lap has the fastest split.
func (e Extremes) IsFastest(lap Lap) bool {
	return lap.Split == e.Fastest
}

// IsSlowest reports whether lap has the slowest split.
func (e Extremes) IsSlowest(lap Lap) bool {
	return lap.Split == e.Slowest
}

// FastestAndSlowest returns the min and max split over laps. ok is false with
// fewer than two laps or when every lap has the same split: ties are never
// marked.
func FastestAndSlowest(laps []Lap) (extremes Extremes, ok bool) {
	if len(laps) < 2 {
		return Extremes{}, false
	}

	splits := lo.Map(laps, func(l Lap, _ int) time.Duration { return l.Split })
	fastest, slowest := lo.Min(splits), lo.Max(splits)
	if fastest == slowest {
		return Extremes{}, false
	}
	return Extremes{Fastest: fastest, Slowest: slowest}, true
}

// FastestAndSlowestIndexes returns the indexes of every lap whose split equals
// the fastest or slowest split. Both are nil when there are no distinct extremes.
func FastestAndSlowestIndexes(laps []Lap) (fastest, slowest []int) {
	extremes, ok := FastestAndSlowest(laps)
	if !ok {
		return nil, nil
	}
	for _, l := range laps {
		if extremes.IsFastest(l) {
			fastest = append(fastest, l.Index)
		}
		if extremes.IsSlowest(l) {
			slowest = append(slowest, l.Index)
		}
	}
	return fastest, slowest
}
