package errors

import (
	"os"

	log "github.com/cloudposse/splitwatch/pkg/logger"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// PrintError writes the formatted error to stderr.
func PrintError(err error, config FormatterConfig) {
	if err == nil {
		return
	}
	if _, writeErr := os.Stderr.WriteString(Format(err, config) + "\n"); writeErr != nil {
		log.Error("failed to write error to stderr", "error", writeErr, "original", err)
	}
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
