package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/splitwatch/cmd"
	errUtils "github.com/cloudposse/splitwatch/errors"
	log "github.com/cloudposse/splitwatch/pkg/logger"
)

func main() {
	// Signals cancel the run; the exit code is set once the UI has torn down.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	errUtils.Exit(run(signals))
}

func run(signals <-chan os.Signal) int {
	defer cmd.Cleanup()

	ctx, cancel := cancelOnSignal(context.Background(), signals)
	defer cancel()

	err := cmd.ExecuteContext(ctx)
	return exitCode(ctx, err)
}

// signalError is the cancellation cause recorded when a signal arrives.
type signalError struct {
	sig os.Signal
}

func (e signalError) Error() string {
	return "received signal " + e.sig.String()
}

// ExitCode follows the shell convention of 128 plus the signal number.
func (e signalError) ExitCode() int {
	if s, ok := e.sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 130
}

// cancelOnSignal returns a context cancelled with a signalError when the
// first signal arrives on signals.
func cancelOnSignal(parent context.Context, signals <-chan os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	go func() {
		select {
		case sig := <-signals:
			log.Debug("Received signal, stopping", "signal", sig)
			cancel(signalError{sig: sig})
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(nil) }
}

// exitCode prints err and maps the run outcome to a process exit code.
// A signal wins over the command's own result.
func exitCode(ctx context.Context, err error) int {
	code := errUtils.ExitCodeSuccess
	if err != nil {
		errUtils.PrintError(err, errUtils.DefaultFormatterConfig())
		code = errUtils.GetExitCode(err)
	}

	if sigErr, ok := context.Cause(ctx).(signalError); ok {
		code = sigErr.ExitCode()
	}
	if code != errUtils.ExitCodeSuccess {
		log.Debug("Exiting with exit code", "code", code)
	}
	return code
}
