package stopwatch

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	errUtils "github.com/cloudposse/splitwatch/errors"
	"github.com/cloudposse/splitwatch/pkg/clock"
	log "github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/report"
	"github.com/cloudposse/splitwatch/pkg/schema"
)

const defaultRefreshInterval = 33 * time.Millisecond

// Options configures a session.
type Options struct {
	Clock           clock.Clock
	Title           string
	Keys            schema.Keys
	RefreshInterval time.Duration
	PauseOnBlur     bool
	Mouse           bool
	AltScreen       bool

	// Input and Output default to stdin and stdout.
	Input  io.Reader
	Output io.Writer
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.System{}
	}
	if o.RefreshInterval <= 0 {
		o.RefreshInterval = defaultRefreshInterval
	}
	if o.Input == nil {
		o.Input = os.Stdin
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	return o
}

var (
	newTeaProgram = tea.NewProgram
	isTerminal    = isTerminalIO
)

// Execute runs an interactive session until the user quits and returns its summary.
func Execute(ctx context.Context, opts Options) (report.Summary, error) {
	opts = opts.withDefaults()

	if !isTerminal(opts.Input, opts.Output) {
		return report.Summary{}, errUtils.Build(errUtils.ErrNotATerminal).
			WithHint("Run splitwatch in a terminal without redirecting stdin or stdout").
			Err()
	}

	m := New(opts)
	defer m.Close()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
		tea.WithInput(opts.Input),
		tea.WithOutput(opts.Output),
		tea.WithReportFocus(),
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	log.Debug("Starting stopwatch UI", "refresh_interval", opts.RefreshInterval, "mouse", opts.Mouse, "alt_screen", opts.AltScreen)
	final, err := newTeaProgram(m, programOpts...).Run()
	if err != nil {
		// A cancelled context ends the session like a quit; the program has
		// already restored the terminal.
		if ctx.Err() != nil {
			summary := m.Summary()
			log.Debug("Stopwatch UI stopped", "cause", context.Cause(ctx), "elapsed", summary.Elapsed)
			return summary, nil
		}
		return m.Summary(), errUtils.Build(errUtils.ErrRunTUI).WithCause(err).Err()
	}

	if fm, ok := final.(*Model); ok {
		m = fm
	}
	summary := m.Summary()
	log.Debug("Stopwatch UI exited", "elapsed", summary.Elapsed, "laps", len(summary.Laps))
	return summary, nil
}

func isTerminalIO(in io.Reader, out io.Writer) bool {
	return isTerminalFile(in) && isTerminalFile(out)
}

func isTerminalFile(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
