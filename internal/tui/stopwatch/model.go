// Package stopwatch is the terminal host for the stopwatch controller.
package stopwatch

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	mouseZone "github.com/lrstanley/bubblezone"

	errUtils "github.com/cloudposse/splitwatch/errors"
	"github.com/cloudposse/splitwatch/internal/controller"
	log "github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/report"
	sw "github.com/cloudposse/splitwatch/pkg/stopwatch"
)

const (
	defaultTitle   = "Stopwatch"
	titleCharLimit = 64
)

type button int

const (
	buttonToggle button = iota
	buttonLap
	buttonReset
)

// Model is the bubbletea model of one stopwatch session. It is the
// controller's Renderer, and its frameScheduler turns refresh requests into
// tick commands.
type Model struct {
	controller *controller.Controller
	frames     *frameScheduler
	frame      controller.Frame

	keys   keyMap
	help   help.Model
	styles styles

	title      string
	titleInput textinput.Model
	editing    bool

	zones    *mouseZone.Manager
	buttonID map[button]string

	copyToClipboard func(string) error
	notice          string

	width       int
	height      int
	pauseOnBlur bool
	quitting    bool
}

// New returns a Model for a fresh session.
func New(opts Options) *Model {
	opts = opts.withDefaults()

	input := textinput.New()
	input.Placeholder = defaultTitle
	input.CharLimit = titleCharLimit
	input.Prompt = "Title: "

	zones := mouseZone.New()
	zones.SetEnabled(opts.Mouse)
	prefix := zones.NewPrefix()

	m := &Model{
		frames:     newFrameScheduler(opts.RefreshInterval),
		keys:       newKeyMap(opts.Keys),
		help:       help.New(),
		styles:     defaultStyles(),
		title:      strings.TrimSpace(opts.Title),
		titleInput: input,
		zones:      zones,
		buttonID: map[button]string{
			buttonToggle: prefix + "toggle",
			buttonLap:    prefix + "lap",
			buttonReset:  prefix + "reset",
		},
		copyToClipboard: clipboard.WriteAll,
		pauseOnBlur:     opts.PauseOnBlur,
	}
	m.controller = controller.New(sw.NewTracker(opts.Clock), m, m.frames)

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Render stores the latest frame for View. It implements controller.Renderer.
func (m *Model) Render(frame controller.Frame) {
	m.frame = frame
	m.keys.Lap.SetEnabled(frame.LapEnabled)
	m.keys.Reset.SetEnabled(frame.ResetEnabled)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.frames.Fire(msg.id)

	case tea.BlurMsg:
		if m.pauseOnBlur {
			m.controller.Background()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			m.click(msg)
		}

	case tea.KeyMsg:
		if m.editing {
			cmd = m.updateTitle(msg)
		} else {
			cmd = m.handleKey(msg)
		}
	}

	return m, tea.Batch(cmd, m.frames.Flush())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		log.Debug("Quitting stopwatch", "elapsed", m.frame.Elapsed, "laps", m.frame.LapCount)
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
	case key.Matches(msg, m.keys.Lap):
		m.controller.Lap()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
	case key.Matches(msg, m.keys.Title):
		return m.startEditing()
	case key.Matches(msg, m.keys.Copy):
		m.copyLaps()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// updateTitle routes keys to the title input. Stopwatch keys are suppressed
// until the input loses focus.
func (m *Model) updateTitle(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Commit):
		m.title = strings.TrimSpace(m.titleInput.Value())
		m.stopEditing()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return cmd
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	m.titleInput.SetValue(m.title)
	m.titleInput.CursorEnd()
	return m.titleInput.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.titleInput.Blur()
}

func (m *Model) click(msg tea.MouseMsg) {
	for _, b := range []button{buttonToggle, buttonLap, buttonReset} {
		if z := m.zones.Get(m.buttonID[b]); z != nil && z.InBounds(msg) {
			m.press(b)
			return
		}
	}
}

// press invokes the command behind a button when the button is enabled.
func (m *Model) press(b button) {
	m.notice = ""

	switch b {
	case buttonToggle:
		m.controller.Toggle()
	case buttonLap:
		if m.frame.LapEnabled {
			m.controller.Lap()
		}
	case buttonReset:
		if m.frame.ResetEnabled {
			m.controller.Reset()
		}
	}
}

func (m *Model) copyLaps() {
	text, err := report.Render(m.Summary(), report.FormatText)
	if err == nil {
		err = m.copyToClipboard(text)
	}
	if err != nil {
		err = errUtils.Build(errUtils.ErrClipboard).WithCause(err).Err()
		log.Warn("Copy to clipboard failed", "error", err)
		m.notice = "Copy failed: clipboard unavailable"
		return
	}
	m.notice = fmt.Sprintf("Copied %d laps to the clipboard", m.frame.LapCount)
}

// Title returns the session title, or the default title when none was set.
func (m *Model) Title() string {
	if m.title == "" {
		return defaultTitle
	}
	return m.title
}

// Summary snapshots the session.
func (m *Model) Summary() report.Summary {
	return report.New(m.Title(), m.controller.Tracker())
}

// Close releases the mouse zone manager.
func (m *Model) Close() {
	m.zones.Close()
}

var _ controller.Renderer = (*Model)(nil)

var _ controller.FrameScheduler = (*frameScheduler)(nil)
