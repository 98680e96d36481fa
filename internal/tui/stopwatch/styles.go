package stopwatch

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = lipgloss.Color("#00A3E0")
	colorMuted   = lipgloss.Color("#626262")
	colorFastest = lipgloss.Color("#04B575")
	colorSlowest = lipgloss.Color("#FF5F5F")
	colorWarning = lipgloss.Color("#FFB86C")
)

type styles struct {
	Title          lipgloss.Style
	Elapsed        lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	LapHeader      lipgloss.Style
	Lap            lipgloss.Style
	Fastest        lipgloss.Style
	Slowest        lipgloss.Style
	Notice         lipgloss.Style
	Input          lipgloss.Style
}

func defaultStyles() styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary)

	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Elapsed: lipgloss.NewStyle().Bold(true).Padding(1, 0),
		Button:  button,
		ButtonDisabled: button.
			Foreground(colorMuted).
			BorderForeground(colorMuted),
		LapHeader: lipgloss.NewStyle().Bold(true).MarginTop(1),
		Lap:       lipgloss.NewStyle(),
		Fastest:   lipgloss.NewStyle().Foreground(colorFastest),
		Slowest:   lipgloss.NewStyle().Foreground(colorSlowest),
		Notice:    lipgloss.NewStyle().Foreground(colorWarning).MarginTop(1),
		Input:     lipgloss.NewStyle().Foreground(colorPrimary),
	}
}
