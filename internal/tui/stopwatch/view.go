package stopwatch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloudposse/splitwatch/internal/controller"
)

// chromeHeight is the number of rows used by everything except the lap list.
const chromeHeight = 14

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.titleView(),
		m.styles.Elapsed.Render(m.frame.Elapsed),
		m.buttonsView(),
		m.lapsView(),
	}
	if m.notice != "" {
		sections = append(sections, m.styles.Notice.Render(m.notice))
	}
	sections = append(sections, "", m.helpView())

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) titleView() string {
	if m.editing {
		return m.styles.Input.Render(m.titleInput.View())
	}
	return m.styles.Title.Render(m.Title())
}

func (m *Model) buttonsView() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.buttonView(buttonToggle, toggleLabel(m.frame.Phase), true),
		m.buttonView(buttonLap, "Lap", m.frame.LapEnabled),
		m.buttonView(buttonReset, "Reset", m.frame.ResetEnabled),
	)
}

func (m *Model) buttonView(b button, label string, enabled bool) string {
	style := m.styles.Button
	if !enabled {
		style = m.styles.ButtonDisabled
	}
	return m.zones.Mark(m.buttonID[b], style.Render(label))
}

func toggleLabel(phase controller.Phase) string {
	switch phase {
	case controller.PhaseRunning:
		return "Pause"
	case controller.PhasePaused:
		return "Resume"
	default:
		return "Start"
	}
}

func (m *Model) lapsView() string {
	var b strings.Builder
	b.WriteString(m.styles.LapHeader.Render(fmt.Sprintf("Laps (%d)", m.frame.LapCount)))

	rows := m.frame.Laps
	if limit := m.visibleLaps(); limit < len(rows) {
		rows = rows[:limit]
	}
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(m.lapView(row))
	}
	return b.String()
}

// visibleLaps returns how many of the most recent laps fit the window.
func (m *Model) visibleLaps() int {
	if m.height == 0 {
		return len(m.frame.Laps)
	}
	return max(m.height-chromeHeight, 1)
}

func (m *Model) lapView(row controller.LapRow) string {
	line := fmt.Sprintf("#%-3d %s  %s", row.Index, row.Split, row.Cumulative)
	switch {
	case row.Fastest:
		return m.styles.Fastest.Render(line + "  fastest")
	case row.Slowest:
		return m.styles.Slowest.Render(line + "  slowest")
	default:
		return m.styles.Lap.Render(line)
	}
}

func (m *Model) helpView() string {
	if m.editing {
		return m.help.View(editingHelp(m.keys))
	}
	return m.help.View(m.keys)
}
