package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/splitwatch/internal/controller"
)

func TestFrameScheduler_RequestAndFire(t *testing.T) {
	s := newFrameScheduler(time.Millisecond)
	fired := 0

	first := s.RequestFrame(func() { fired++ })
	second := s.RequestFrame(func() { fired += 10 })

	assert.Equal(t, controller.FrameID(1), first)
	assert.Equal(t, controller.FrameID(2), second)
	assert.Equal(t, 2, s.Pending())

	assert.True(t, s.Fire(first))
	assert.False(t, s.Fire(first), "a frame fires at most once")
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, s.Pending())
}

func TestFrameScheduler_CancelledFrameNeverFires(t *testing.T) {
	s := newFrameScheduler(time.Millisecond)
	fired := false

	id := s.RequestFrame(func() { fired = true })
	s.CancelFrame(id)

	assert.False(t, s.Fire(id))
	assert.False(t, fired)
	assert.Zero(t, s.Pending())
}

func TestFrameScheduler_CancelUnknownIsNoop(t *testing.T) {
	s := newFrameScheduler(time.Millisecond)
	id := s.RequestFrame(func() {})

	s.CancelFrame(id + 42)

	assert.Equal(t, 1, s.Pending())
}

func TestFrameScheduler_Flush(t *testing.T) {
	s := newFrameScheduler(time.Millisecond)
	assert.Nil(t, s.Flush(), "nothing requested")

	id := s.RequestFrame(func() {})
	cmd := s.Flush()
	require.NotNil(t, cmd)
	assert.Equal(t, frameMsg{id: id}, cmd())

	assert.Nil(t, s.Flush(), "requests are flushed once")
}

func TestFrameScheduler_FlushSkipsCancelled(t *testing.T) {
	s := newFrameScheduler(time.Millisecond)

	id := s.RequestFrame(func() {})
	s.CancelFrame(id)

	assert.Nil(t, s.Flush())
}
