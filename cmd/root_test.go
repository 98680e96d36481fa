package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/splitwatch/errors"
	tui "github.com/cloudposse/splitwatch/internal/tui/stopwatch"
	"github.com/cloudposse/splitwatch/pkg/config"
	log "github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/report"
	"github.com/cloudposse/splitwatch/pkg/version"
)

var testSummary = report.Summary{
	ID:        "6f1c1a52-8a0e-4a1d-9c43-1c0b9f3c8d21",
	Title:     "Stopwatch",
	Elapsed:   "00:01.500",
	ElapsedMs: 1500,
	Laps: []report.Lap{
		{Index: 1, Split: "00:01.000", SplitMs: 1000, Cumulative: "00:01.000", CumulativeMs: 1000},
	},
}

// setupTest isolates config discovery, the default logger and the TUI.
func setupTest(t *testing.T) (workDir string, captured *tui.Options) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Setenv(config.ConfigPathEnvVar, "")

	workDir = t.TempDir()
	t.Chdir(workDir)

	prevLogger := log.Default()
	t.Cleanup(func() { log.SetDefault(prevLogger) })

	captured = &tui.Options{}
	origRunTUI := runTUI
	t.Cleanup(func() { runTUI = origRunTUI })
	runTUI = func(_ context.Context, opts tui.Options) (report.Summary, error) {
		*captured = opts
		return testSummary, nil
	}

	return workDir, captured
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRoot_Defaults(t *testing.T) {
	_, captured := setupTest(t)

	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Stopwatch  00:01.500  (1 laps)")
	assert.Equal(t, config.DefaultRefreshInterval, captured.RefreshInterval)
	assert.True(t, captured.Mouse)
	assert.True(t, captured.PauseOnBlur)
	assert.True(t, captured.AltScreen)
	assert.Equal(t, config.DefaultKeys, captured.Keys)
	assert.NotNil(t, captured.Clock)
}

func TestRoot_Flags(t *testing.T) {
	_, captured := setupTest(t)

	out, err := execute(t,
		"--title", "Sprints",
		"--refresh-interval", "50ms",
		"--no-mouse",
		"--no-pause-on-blur",
		"--no-alt-screen",
		"-o", "json",
	)
	require.NoError(t, err)

	assert.Equal(t, "Sprints", captured.Title)
	assert.Equal(t, 50*time.Millisecond, captured.RefreshInterval)
	assert.False(t, captured.Mouse)
	assert.False(t, captured.PauseOnBlur)
	assert.False(t, captured.AltScreen)

	var decoded report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, testSummary, decoded)
}

func TestRoot_ConfigFileAndEnv(t *testing.T) {
	workDir, captured := setupTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "splitwatch.yaml"), []byte(`
stopwatch:
  title: From file
  mouse: false
keys:
  lap: [k]
`), 0o644))
	t.Setenv("SPLITWATCH_OUTPUT_FORMAT", "none")

	out, err := execute(t)
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Equal(t, "From file", captured.Title)
	assert.False(t, captured.Mouse)
	assert.Equal(t, []string{"k"}, captured.Keys.Lap)
}

func TestRoot_FlagOverridesConfigFile(t *testing.T) {
	workDir, captured := setupTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "splitwatch.yaml"), []byte("stopwatch:\n  title: From file\n  mouse: true\n"), 0o644))

	_, err := execute(t, "--title", "From flag", "--no-mouse", "-o", "none")
	require.NoError(t, err)

	assert.Equal(t, "From flag", captured.Title)
	assert.False(t, captured.Mouse)
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "-o", "xml")

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidOutputFormat)
	assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
}

func TestRoot_InvalidRefreshInterval(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "--refresh-interval", "5s")

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidRefreshInterval)
}

func TestRoot_RejectsArguments(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "extra")

	require.Error(t, err)
}

func TestRoot_TUIError(t *testing.T) {
	setupTest(t)
	runTUI = func(context.Context, tui.Options) (report.Summary, error) {
		return report.Summary{}, errUtils.Build(errUtils.ErrNotATerminal).Err()
	}

	out, err := execute(t)

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrNotATerminal)
	assert.Empty(t, out)
}

func TestRoot_LogFile(t *testing.T) {
	workDir, _ := setupTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "splitwatch.yaml"), []byte("output:\n  format: none\n"), 0o644))
	logFile := filepath.Join(t.TempDir(), "splitwatch.log")

	_, err := execute(t, "--logs-level", "Debug", "--logs-file", logFile)
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Using config")
	assert.Equal(t, logFile, log.Default().File())
}

func TestRoot_LogFileStaysOpenUntilCleanup(t *testing.T) {
	workDir, _ := setupTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "splitwatch.yaml"), []byte("output:\n  format: none\n"), 0o644))
	logFile := filepath.Join(t.TempDir(), "splitwatch.log")

	_, err := execute(t, "--logs-level", "Debug", "--logs-file", logFile)
	require.NoError(t, err)

	log.Debug("Exiting with exit code", "code", 0)
	Cleanup()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exiting with exit code")
}

func TestRoot_LogFileUnwritable(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "--logs-file", filepath.Join(t.TempDir(), "missing", "dir", "splitwatch.log"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrOpenLogFile)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	setupTest(t)

	_, err := execute(t, "--logs-level", "Verbose")

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidLogLevel)
}

func TestVersionCmd(t *testing.T) {
	setupTest(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "splitwatch "+version.Version)

	out, err = execute(t, "version", "--format", "json")
	require.NoError(t, err)
	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Get(), info)

	out, err = execute(t, "version", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "version: "+version.Version)

	_, err = execute(t, "version", "--format", "xml")
	assert.ErrorIs(t, err, errUtils.ErrInvalidOutputFormat)
}

func TestKeysCmd(t *testing.T) {
	workDir, captured := setupTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "splitwatch.yaml"), []byte("keys:\n  reset: [x, backspace]\n"), 0o644))

	out, err := execute(t, "keys")
	require.NoError(t, err)

	assert.Contains(t, out, "toggle")
	assert.Contains(t, out, "space")
	assert.Contains(t, out, "x, backspace")
	assert.Contains(t, out, "ctrl+c")
	assert.Zero(t, captured.RefreshInterval, "keys does not start the stopwatch")
}

func TestKeysCmd_ConflictingBindings(t *testing.T) {
	workDir, _ := setupTest(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "splitwatch.yaml"), []byte("keys:\n  lap: [q]\n"), 0o644))

	_, err := execute(t, "keys")

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidKeyBinding)
}
