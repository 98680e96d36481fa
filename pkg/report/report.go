// Package report renders a stopwatch session summary.
package report

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	errUtils "github.com/cloudposse/splitwatch/errors"
	"github.com/cloudposse/splitwatch/pkg/stopwatch"
)

// Output formats.
const (
	FormatNone = "none"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const defaultTitle = "Stopwatch"

// Formats returns every supported output format.
func Formats() []string {
	return []string{FormatNone, FormatText, FormatJSON, FormatYAML}
}

// IsValidFormat reports whether format is supported.
func IsValidFormat(format string) bool {
	return slices.Contains(Formats(), format)
}

// Summary is a snapshot of a session.
type Summary struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Elapsed   string `json:"elapsed" yaml:"elapsed"`
	ElapsedMs int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
	Running   bool   `json:"running" yaml:"running"`
	Laps      []Lap  `json:"laps" yaml:"laps"`
}

// Lap is one lap in a Summary, oldest first.
type Lap struct {
	Index        int    `json:"index" yaml:"index"`
	Split        string `json:"split" yaml:"split"`
	SplitMs      int64  `json:"split_ms" yaml:"split_ms"`
	Cumulative   string `json:"cumulative" yaml:"cumulative"`
	CumulativeMs int64  `json:"cumulative_ms" yaml:"cumulative_ms"`
	Fastest      bool   `json:"fastest,omitempty" yaml:"fastest,omitempty"`
	Slowest      bool   `json:"slowest,omitempty" yaml:"slowest,omitempty"`
}

// New snapshots tracker into a Summary with a fresh session ID.
func New(title string, tracker *stopwatch.Tracker) Summary {
	if title == "" {
		title = defaultTitle
	}

	laps := tracker.Laps()
	extremes, marked := stopwatch.FastestAndSlowest(laps)
	elapsed := tracker.Elapsed()

	summary := Summary{
		ID:        uuid.NewString(),
		Title:     title,
		Elapsed:   stopwatch.Format(elapsed),
		ElapsedMs: elapsed.Milliseconds(),
		Running:   tracker.Running(),
		Laps:      make([]Lap, 0, len(laps)),
	}
	for _, l := range laps {
		summary.Laps = append(summary.Laps, Lap{
			Index:        l.Index,
			Split:        stopwatch.Format(l.Split),
			SplitMs:      l.Split.Milliseconds(),
			Cumulative:   stopwatch.Format(l.Cumulative),
			CumulativeMs: l.Cumulative.Milliseconds(),
			Fastest:      marked && extremes.IsFastest(l),
			Slowest:      marked && extremes.IsSlowest(l),
		})
	}
	return summary
}

// Render formats the summary. FormatNone renders an empty string.
func Render(summary Summary, format string) (string, error) {
	switch format {
	case FormatNone:
		return "", nil
	case FormatText:
		return renderText(summary), nil
	case FormatJSON:
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return "", errUtils.Build(errUtils.ErrRenderReport).WithCause(err).Err()
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(summary)
		if err != nil {
			return "", errUtils.Build(errUtils.ErrRenderReport).WithCause(err).Err()
		}
		return string(data), nil
	default:
		return "", errUtils.Build(errUtils.ErrInvalidOutputFormat).
			WithHintf("Supported formats: %v", Formats()).
			WithContext("format", format).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

func renderText(summary Summary) string {
	header := fmt.Sprintf("%s  %s  (%d laps)\n", summary.Title, summary.Elapsed, len(summary.Laps))
	if len(summary.Laps) == 0 {
		return header
	}

	rows := make([][]string, 0, len(summary.Laps))
	for i := len(summary.Laps) - 1; i >= 0; i-- {
		l := summary.Laps[i]
		rows = append(rows, []string{strconv.Itoa(l.Index), l.Split, l.Cumulative, marker(l)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Lap", "Split", "Total", "").
		Rows(rows...)

	return header + t.String() + "\n"
}

func marker(l Lap) string {
	switch {
	case l.Fastest:
		return "fastest"
	case l.Slowest:
		return "slowest"
	default:
		return ""
	}
}
