package errors

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NilError(t *testing.T) {
	assert.NoError(t, Build(nil).WithHint("ignored").WithExitCode(3).Err())
}

func TestBuild_SentinelStillMatches(t *testing.T) {
	err := Build(ErrInvalidRefreshInterval).
		WithHint("Use a value between 1ms and 1s").
		WithContext("refresh_interval", "5s").
		Err()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRefreshInterval)
	assert.NotErrorIs(t, err, ErrInvalidKeyBinding)
}

func TestBuild_Hints(t *testing.T) {
	err := Build(ErrNotATerminal).
		WithHint("Run splitwatch from an interactive shell").
		WithHintf("Detected stdout %s", "pipe").
		Err()

	hints := errors.GetAllHints(err)
	assert.Equal(t, []string{"Run splitwatch from an interactive shell", "Detected stdout pipe"}, hints)
}

func TestBuild_ExitCode(t *testing.T) {
	err := Build(ErrInvalidConfig).WithExitCode(ExitCodeUsage).Err()

	assert.Equal(t, ExitCodeUsage, GetExitCode(err))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBuild_WithCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Build(ErrOpenLogFile).WithCause(cause).Err()

	assert.ErrorIs(t, err, ErrOpenLogFile)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestBuild_ContextShowsInVerboseFormat(t *testing.T) {
	err := Build(ErrInvalidKeyBinding).
		WithContext("key", "space").
		WithContext("actions", "lap,reset").
		Err()

	out := Format(err, FormatterConfig{Verbose: true, Color: "never", MaxLineLength: DefaultMaxLineLength})
	assert.Contains(t, out, "Context")
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "space")
	assert.Contains(t, out, "actions")
}
