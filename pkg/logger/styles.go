package logger

import (
	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

const (
	colorTrace = "#6C7086"
	colorDebug = "#89B4FA"
	colorInfo  = "#94E2D5"
	colorWarn  = "#F9E2AF"
	colorError = "#F38BA8"
	colorKey   = "#7F849C"
)

// Styles returns four-letter badge styles for each level.
func Styles() *charm.Styles {
	styles := charm.DefaultStyles()

	badge := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			Foreground(lipgloss.Color(color))
	}

	styles.Levels[TraceLevel] = badge("TRCE", colorTrace)
	styles.Levels[DebugLevel] = badge("DEBU", colorDebug)
	styles.Levels[InfoLevel] = badge("INFO", colorInfo)
	styles.Levels[WarnLevel] = badge("WARN", colorWarn)
	styles.Levels[ErrorLevel] = badge("ERRO", colorError)
	styles.Levels[FatalLevel] = badge("FATA", colorError)

	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color(colorKey))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)

	return styles
}
