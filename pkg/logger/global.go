package logger

import (
	"io"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. Nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// SetOutput redirects the process-wide logger.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// SetLevel sets the level of the process-wide logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the level of the process-wide logger.
func GetLevel() Level {
	return Default().GetLevel()
}

func Trace(msg any, keyvals ...any) { Default().Trace(msg, keyvals...) }

func Debug(msg any, keyvals ...any) { Default().Debug(msg, keyvals...) }

func Info(msg any, keyvals ...any) { Default().Info(msg, keyvals...) }

func Warn(msg any, keyvals ...any) { Default().Warn(msg, keyvals...) }

func Error(msg any, keyvals ...any) { Default().Error(msg, keyvals...) }
