package stopwatch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudposse/splitwatch/internal/controller"
)

// frameMsg is delivered when a requested frame is due.
type frameMsg struct {
	id controller.FrameID
}

// frameScheduler implements controller.FrameScheduler on top of tea.Tick.
// Requests are queued until the end of Update, when Flush turns them into
// tick commands. A cancelled ID is dropped from pending, so its tick is
// ignored when it arrives.
type frameScheduler struct {
	interval time.Duration
	next     controller.FrameID
	pending  map[controller.FrameID]func()
	queued   []controller.FrameID
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	return &frameScheduler{
		interval: interval,
		pending:  make(map[controller.FrameID]func()),
	}
}

func (s *frameScheduler) RequestFrame(callback func()) controller.FrameID {
	s.next++
	id := s.next
	s.pending[id] = callback
	s.queued = append(s.queued, id)
	return id
}

func (s *frameScheduler) CancelFrame(id controller.FrameID) {
	delete(s.pending, id)
}

// Flush returns tick commands for the requests made since the last flush.
func (s *frameScheduler) Flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, id := range s.queued {
		if _, ok := s.pending[id]; !ok {
			continue
		}
		cmds = append(cmds, tea.Tick(s.interval, func(time.Time) tea.Msg {
			return frameMsg{id: id}
		}))
	}
	s.queued = s.queued[:0]

	return tea.Batch(cmds...)
}

// Fire runs the callback for id. It reports false for cancelled or already
// fired frames.
func (s *frameScheduler) Fire(id controller.FrameID) bool {
	callback, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	callback()
	return true
}

// Pending returns the number of outstanding requests.
func (s *frameScheduler) Pending() int {
	return len(s.pending)
}
