package main

import (
	"context"
	"os"
	"syscall"
	"testing"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/splitwatch/errors"
)

func TestRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(t.TempDir())

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"splitwatch", "version"}
	assert.Equal(t, errUtils.ExitCodeSuccess, run(nil))

	os.Args = []string{"splitwatch", "version", "--format", "xml"}
	assert.Equal(t, errUtils.ExitCodeUsage, run(nil))
}

func TestCancelOnSignal(t *testing.T) {
	signals := make(chan os.Signal, 1)
	ctx, cancel := cancelOnSignal(context.Background(), signals)
	defer cancel()

	signals <- syscall.SIGTERM
	<-ctx.Done()

	var sigErr signalError
	require.ErrorAs(t, context.Cause(ctx), &sigErr)
	assert.Equal(t, 143, sigErr.ExitCode())
	assert.Equal(t, 143, exitCode(ctx, nil), "a clean shutdown after a signal still reports it")
}

func TestCancelOnSignal_StopsWithoutSignal(t *testing.T) {
	ctx, cancel := cancelOnSignal(context.Background(), make(chan os.Signal))
	cancel()

	<-ctx.Done()
	assert.Equal(t, errUtils.ExitCodeSuccess, exitCode(ctx, nil))
}

func TestExitCode(t *testing.T) {
	interrupted, cancel := context.WithCancelCause(context.Background())
	cancel(signalError{sig: os.Interrupt})

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want int
	}{
		{name: "success", ctx: context.Background(), want: errUtils.ExitCodeSuccess},
		{name: "usage error", ctx: context.Background(), err: errUtils.WithExitCode(errors.New("bad flag"), errUtils.ExitCodeUsage), want: errUtils.ExitCodeUsage},
		{name: "interrupt", ctx: interrupted, want: 130},
		{name: "interrupt wins over error", ctx: interrupted, err: errors.New("boom"), want: 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.ctx, tt.err))
		})
	}
}

func TestSignalError_NonSyscallSignal(t *testing.T) {
	assert.Equal(t, 130, signalError{sig: fakeSignal{}}.ExitCode())
	assert.Equal(t, "received signal fake", signalError{sig: fakeSignal{}}.Error())
}

type fakeSignal struct{}

func (fakeSignal) String() string { return "fake" }
func (fakeSignal) Signal()        {}
