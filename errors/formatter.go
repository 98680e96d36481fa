package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"

	log "github.com/cloudposse/splitwatch/pkg/logger"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	hintPrefix = "💡 "
	hintIndent = "    "
	newline    = "\n"

	colorRed   = "#FF5F5F"
	colorGreen = "#5FD75F"
	colorGray  = "#808080"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose adds the context table and the full error chain.
	Verbose bool

	// Color is "auto", "always" or "never".
	Color string

	// MaxLineLength is the wrap width for the main message.
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
// Verbose output follows the trace log level.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       log.GetLevel() == log.TraceLevel,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format renders err for the terminal: the message, one line per hint and,
// in verbose mode, the safe context and the error chain with stack traces.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	var output strings.Builder

	msg := err.Error()
	if !config.Verbose {
		msg = wrapText(msg, config.MaxLineLength)
	}
	if useColor {
		msg = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)).Render(msg)
	}
	output.WriteString(msg)

	if hints := errors.GetAllHints(err); len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString(hintIndent + hintPrefix + hint + newline)
		}
	}

	if config.Verbose {
		if ctx := formatContextTable(err, useColor); ctx != "" {
			output.WriteString(ctx)
			output.WriteString(newline)
		}
		output.WriteString(newline)
		output.WriteString(formatStackTrace(err, useColor))
	}

	return output.String()
}

// formatContextTable renders the safe details added by ErrorBuilder.WithContext.
func formatContextTable(err error, useColor bool) string {
	var rows [][]string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Fields(detail) {
				if k, v, ok := strings.Cut(pair, "="); ok {
					rows = append(rows, []string{k, v})
				}
			}
		}
	}
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Context", "Value").
		Rows(rows...)

	if useColor {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			switch {
			case row == table.HeaderRow:
				return style.Foreground(lipgloss.Color(colorGreen)).Bold(true)
			case col == 0:
				return style.Foreground(lipgloss.Color(colorGray))
			default:
				return style
			}
		})
	}

	return newline + t.String()
}

func formatStackTrace(err error, useColor bool) string {
	trace := fmt.Sprintf("%+v", err)
	if !useColor {
		return trace
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Render(trace)
}

func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text on word boundaries. Words longer than width stay whole.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, newline)
}
