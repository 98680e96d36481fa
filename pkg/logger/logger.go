// Package logger wraps charmbracelet/log with the levels and styles used by splitwatch.
package logger

import (
	"io"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// Level is a log level.
type Level = charm.Level

const (
	// TraceLevel is one step more verbose than Debug.
	TraceLevel = charm.DebugLevel - 1
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	FatalLevel = charm.FatalLevel
	// OffLevel suppresses all output.
	OffLevel = charm.FatalLevel + 1
)

// Level names accepted in configuration.
const (
	LevelNameTrace   = "Trace"
	LevelNameDebug   = "Debug"
	LevelNameInfo    = "Info"
	LevelNameWarning = "Warning"
	LevelNameOff     = "Off"
)

// Special log file targets.
const (
	FileStdout = "/dev/stdout"
	FileStderr = "/dev/stderr"
)

const logFilePerm = 0o644

// ErrInvalidLogLevel is returned by ParseLogLevel for unknown level names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Logger is a charmbracelet logger with a Trace level and a known output target.
type Logger struct {
	*charm.Logger

	out    io.Writer
	file   string
	closer io.Closer
}

// New returns a Logger writing to stderr at Info level.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput returns a Logger writing to w at Info level.
func NewWithOutput(w io.Writer) *Logger {
	l := charm.NewWithOptions(w, charm.Options{
		ReportTimestamp: false,
		Level:           InfoLevel,
	})
	l.SetStyles(Styles())
	return &Logger{Logger: l, out: w}
}

// NewLogger opens a Logger for the given level and file target.
// An empty file or /dev/stderr logs to stderr and /dev/stdout logs to stdout;
// anything else is opened in append mode.
func NewLogger(level Level, file string) (*Logger, error) {
	var (
		w      io.Writer
		closer io.Closer
	)

	switch file {
	case "", FileStderr:
		w = os.Stderr
	case FileStdout:
		w = os.Stdout
	default:
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFilePerm)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %q", file)
		}
		w, closer = f, f
	}

	l := NewWithOutput(w)
	l.SetLevel(level)
	l.file = file
	l.closer = closer
	return l, nil
}

// ParseLogLevel converts a configured level name to a Level.
// Names are case-sensitive; an empty name means Info.
func ParseLogLevel(name string) (Level, error) {
	switch name {
	case "", LevelNameInfo:
		return InfoLevel, nil
	case LevelNameTrace:
		return TraceLevel, nil
	case LevelNameDebug:
		return DebugLevel, nil
	case LevelNameWarning:
		return WarnLevel, nil
	case LevelNameOff:
		return OffLevel, nil
	default:
		return InfoLevel, errors.WithHintf(
			errors.Wrapf(ErrInvalidLogLevel, "%q", name),
			"Supported log levels are %s", strings.Join(LevelNames(), ", "),
		)
	}
}

// LevelNames returns the accepted level names, most verbose first.
func LevelNames() []string {
	return []string{LevelNameTrace, LevelNameDebug, LevelNameInfo, LevelNameWarning, LevelNameOff}
}

// Trace logs at TraceLevel.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lower-case name of the current level.
func (l *Logger) GetLevelString() string {
	switch level := l.GetLevel(); level {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return level.String()
	}
}

// File returns the configured file target.
func (l *Logger) File() string {
	return l.file
}

// WritesToTerminal reports whether the logger targets stdout or stderr.
func (l *Logger) WritesToTerminal() bool {
	switch l.file {
	case "", FileStderr, FileStdout:
		return true
	default:
		return false
	}
}

// Mute discards output until the returned restore function is called.
func (l *Logger) Mute() (restore func()) {
	l.SetOutput(io.Discard)
	return func() { l.SetOutput(l.out) }
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
