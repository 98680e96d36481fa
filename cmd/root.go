package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/splitwatch/errors"
	tui "github.com/cloudposse/splitwatch/internal/tui/stopwatch"
	"github.com/cloudposse/splitwatch/pkg/clock"
	"github.com/cloudposse/splitwatch/pkg/config"
	log "github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/report"
	"github.com/cloudposse/splitwatch/pkg/schema"
)

// runTUI runs the interactive session. Tests replace it.
var runTUI = tui.Execute

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCmd()

// rootOptions holds the flag values and the configuration shared by all commands.
type rootOptions struct {
	v          *viper.Viper
	configFile string

	noMouse       bool
	noPauseOnBlur bool
	noAltScreen   bool

	cfg schema.Configuration
}

// NewRootCmd builds the splitwatch command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	root := &cobra.Command{
		Use:   "splitwatch",
		Short: "Terminal stopwatch with laps",
		Long: `Splitwatch is a terminal stopwatch. Start, pause and resume it, record laps,
and get a summary of the session with the fastest and slowest laps marked.`,
		Example: `splitwatch
splitwatch --title "Morning run" -o json
SPLITWATCH_OUTPUT_FORMAT=yaml splitwatch`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStopwatch(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "Path to splitwatch.yaml, or a directory containing it")
	pf.String("logs-level", "", "Log level: Trace, Debug, Info, Warning or Off (default Info)")
	pf.String("logs-file", "", "Log file, /dev/stderr or /dev/stdout (default /dev/stderr)")

	f := root.Flags()
	f.StringP("output", "o", "", "Summary format printed on exit: none, text, json or yaml (default text)")
	f.Duration("refresh-interval", 0, "Display refresh interval while running (default 33ms)")
	f.String("title", "", "Session title")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")
	f.BoolVar(&opts.noPauseOnBlur, "no-pause-on-blur", false, "Keep running when the terminal loses focus")
	f.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "Render inline instead of in the alternate screen")

	bindFlag(opts.v, config.LogsLevelKey, pf, "logs-level")
	bindFlag(opts.v, config.LogsFileKey, pf, "logs-file")
	bindFlag(opts.v, config.OutputFormatKey, f, "output")
	bindFlag(opts.v, config.StopwatchRefreshIntervalKey, f, "refresh-interval")
	bindFlag(opts.v, config.StopwatchTitleKey, f, "title")

	root.AddCommand(newVersionCmd(), newKeysCmd(opts))

	return root
}

// ExecuteContext runs RootCmd under ctx. This is called by main.main().
// Cancelling ctx stops the interactive session.
func ExecuteContext(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Cleanup releases resources held by the root command, such as an open log file.
// It runs after the last log line of the process.
func Cleanup() {
	if err := log.Default().Close(); err != nil {
		fmt.Fprintln(RootCmd.ErrOrStderr(), "failed to close log file:", err)
	}
}

// setup loads and validates the configuration and installs the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	o.applyNegatedFlags(cmd)

	cfg, err := config.Load(o.v, o.configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	level, err := log.ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return err
	}
	l, err := log.NewLogger(level, cfg.Logs.File)
	if err != nil {
		return errUtils.Build(errUtils.ErrOpenLogFile).
			WithCause(err).
			WithHint("Check that the directory exists and is writable, or set logs.file to /dev/stderr").
			WithContext("file", cfg.Logs.File).
			Err()
	}
	log.SetDefault(l)

	for _, file := range cfg.ConfigFiles {
		log.Debug("Using config", "file", file)
	}

	o.cfg = cfg
	return nil
}

// applyNegatedFlags maps --no-* flags onto their positive configuration keys.
func (o *rootOptions) applyNegatedFlags(cmd *cobra.Command) {
	negated := []struct {
		flag  string
		key   string
		value bool
	}{
		{"no-mouse", config.StopwatchMouseKey, o.noMouse},
		{"no-pause-on-blur", config.StopwatchPauseOnBlurKey, o.noPauseOnBlur},
		{"no-alt-screen", config.StopwatchAltScreenKey, o.noAltScreen},
	}
	for _, n := range negated {
		if f := cmd.Flags().Lookup(n.flag); f != nil && f.Changed {
			o.v.Set(n.key, !n.value)
		}
	}
}

func runStopwatch(cmd *cobra.Command, opts *rootOptions) error {
	cfg := opts.cfg

	// The TUI owns the terminal; only a file target keeps logging.
	if log.Default().WritesToTerminal() {
		restore := log.Default().Mute()
		defer restore()
	}

	summary, err := runTUI(cmd.Context(), tui.Options{
		Clock:           clock.System{},
		Title:           cfg.Stopwatch.Title,
		Keys:            cfg.Keys,
		RefreshInterval: cfg.Stopwatch.RefreshInterval,
		PauseOnBlur:     cfg.Stopwatch.PauseOnBlur,
		Mouse:           cfg.Stopwatch.Mouse,
		AltScreen:       cfg.Stopwatch.AltScreen,
		Input:           cmd.InOrStdin(),
		Output:          cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	out, err := report.Render(summary, cfg.Output.Format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
