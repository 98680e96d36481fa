package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_NowIsMonotonic(t *testing.T) {
	var c Clock = System{}

	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b.Sub(a), time.Duration(0))
}

func TestManual(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)

	assert.Equal(t, start, m.Now())

	m.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, m.Now().Sub(start))

	m.Advance(-time.Second)
	assert.Equal(t, 1500*time.Millisecond, m.Now().Sub(start), "negative advance is ignored")

	m.Set(start.Add(5 * time.Second))
	assert.Equal(t, 5*time.Second, m.Now().Sub(start))

	m.Set(start)
	assert.Equal(t, 5*time.Second, m.Now().Sub(start), "clock never goes backwards")
}
