// Package controller routes stopwatch commands to a Tracker, keeps the display
// refreshed while it runs, and hands plain-data frames to a Renderer.
package controller

import (
	"github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/stopwatch"
)

// Controller is the input router for one Tracker.
// All methods must be called from the event loop that fires frame callbacks.
type Controller struct {
	tracker  *stopwatch.Tracker
	renderer Renderer
	frames   FrameScheduler

	frame   FrameID
	pending bool
}

// New returns a Controller and renders the initial frame.
func New(tracker *stopwatch.Tracker, renderer Renderer, frames FrameScheduler) *Controller {
	c := &Controller{
		tracker:  tracker,
		renderer: renderer,
		frames:   frames,
	}
	c.render()
	return c
}

// Toggle starts a paused or idle stopwatch and pauses a running one.
func (c *Controller) Toggle() {
	if c.tracker.Running() {
		c.Pause()
		return
	}
	c.Start()
}

// Start resumes accumulation and schedules display refresh.
func (c *Controller) Start() {
	if !c.tracker.Running() {
		logger.Trace("Starting stopwatch", "elapsed", stopwatch.Format(c.tracker.Elapsed()))
		c.tracker.Start()
		c.schedule()
	}
	c.render()
}

// Pause stops accumulation. The outstanding refresh is cancelled before the
// frame is rendered.
func (c *Controller) Pause() {
	c.cancel()
	if c.tracker.Running() {
		c.tracker.Pause()
		logger.Trace("Paused stopwatch", "elapsed", stopwatch.Format(c.tracker.Elapsed()))
	}
	c.render()
}

// Lap records a split while running.
func (c *Controller) Lap() {
	before := c.tracker.LapCount()
	c.tracker.Lap()
	if c.tracker.LapCount() > before {
		logger.Trace("Recorded lap", "lap", c.tracker.LapCount())
	}
	c.render()
}

// Reset clears all state and cancels the outstanding refresh.
func (c *Controller) Reset() {
	c.cancel()
	c.tracker.Reset()
	logger.Trace("Reset stopwatch")
	c.render()
}

// Background is the forced transition for losing foreground visibility:
// a running stopwatch is paused, anything else is left alone.
func (c *Controller) Background() {
	if !c.tracker.Running() {
		return
	}
	logger.Debug("Pausing stopwatch after losing focus")
	c.Pause()
}

// Refresh re-renders the current state.
func (c *Controller) Refresh() {
	c.render()
}

// Tracker returns the controlled Tracker.
func (c *Controller) Tracker() *stopwatch.Tracker {
	return c.tracker
}

// Scheduled reports whether a refresh frame is outstanding.
func (c *Controller) Scheduled() bool {
	return c.pending
}

func (c *Controller) schedule() {
	if c.pending {
		return
	}
	c.frame = c.frames.RequestFrame(c.onFrame)
	c.pending = true
}

func (c *Controller) cancel() {
	if !c.pending {
		return
	}
	c.frames.CancelFrame(c.frame)
	c.pending = false
}

func (c *Controller) onFrame() {
	c.pending = false
	if !c.tracker.Running() {
		return
	}
	c.render()
	c.schedule()
}

func (c *Controller) render() {
	c.renderer.Render(NewFrame(c.tracker))
}
