package stopwatch

import (
	"fmt"
	"time"
)

// Format renders d as MM:SS.mmm. Minutes are not wrapped into hours, so 90
// minutes is "90:00.000". Sub-millisecond precision is truncated and negative
// durations render as zero.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	minutes := ms / time.Minute.Milliseconds()
	seconds := (ms % time.Minute.Milliseconds()) / time.Second.Milliseconds()
	millis := ms % time.Second.Milliseconds()
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
