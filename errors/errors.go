package errors

import (
	"github.com/cockroachdb/errors"

	log "github.com/cloudposse/splitwatch/pkg/logger"
)

// Configuration.
var (
	ErrLoadConfig             = errors.New("failed to load splitwatch configuration")
	ErrInvalidConfig          = errors.New("invalid splitwatch configuration")
	ErrInvalidLogLevel        = log.ErrInvalidLogLevel
	ErrInvalidRefreshInterval = errors.New("invalid refresh interval")
	ErrInvalidKeyBinding      = errors.New("invalid key binding")
	ErrInvalidOutputFormat    = errors.New("invalid output format")
)

// Terminal UI.
var (
	ErrNotATerminal = errors.New("splitwatch requires an interactive terminal")
	ErrRunTUI       = errors.New("failed to run the stopwatch UI")
	ErrClipboard    = errors.New("failed to copy to the clipboard")
)

// Output.
var (
	ErrRenderReport = errors.New("failed to render session report")
	ErrOpenLogFile  = errors.New("failed to open log file")
)
