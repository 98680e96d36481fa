package errors

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "attached code", err: WithExitCode(errors.New("boom"), 42), want: 42},
		{name: "wrapped attached code", err: fmt.Errorf("outer: %w", WithExitCode(errors.New("boom"), 2)), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, 5))
}

func TestWithExitCode_PreservesMessageAndChain(t *testing.T) {
	err := WithExitCode(ErrRunTUI, 3)

	assert.Equal(t, ErrRunTUI.Error(), err.Error())
	assert.ErrorIs(t, err, ErrRunTUI)
}

func TestExit(t *testing.T) {
	original := OsExit
	defer func() { OsExit = original }()

	var got int
	OsExit = func(code int) { got = code }

	Exit(7)
	assert.Equal(t, 7, got)
}
