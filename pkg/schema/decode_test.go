package schema

import (
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, input map[string]any) Configuration {
	t.Helper()

	var cfg Configuration
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			KeyListDecodeHook(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	require.NoError(t, err)
	require.NoError(t, decoder.Decode(input))
	return cfg
}

func TestKeyListDecodeHook(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{"single key", "l", []string{"l"}},
		{"comma separated", "q, ctrl+c", []string{"q", "ctrl+c"}},
		{"empty entries dropped", "q,,", []string{"q"}},
		{"list is kept", []any{"space", "enter"}, []string{"space", "enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := decode(t, map[string]any{"keys": map[string]any{"quit": tt.input}})
			assert.Equal(t, tt.expected, cfg.Keys.Quit)
		})
	}
}

func TestKeyListDecodeHook_LeavesOtherFieldsAlone(t *testing.T) {
	cfg := decode(t, map[string]any{
		"logs":      map[string]any{"level": "Debug,Trace"},
		"stopwatch": map[string]any{"refresh_interval": "50ms", "mouse": "false"},
	})

	assert.Equal(t, "Debug,Trace", cfg.Logs.Level)
	assert.Equal(t, 50*time.Millisecond, cfg.Stopwatch.RefreshInterval)
	assert.False(t, cfg.Stopwatch.Mouse)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, " ", NormalizeKey(KeySpace))
	assert.Equal(t, "ctrl+c", NormalizeKey("ctrl+c"))
	assert.Equal(t, "l", NormalizeKey("l"))
}

func TestKeys_Actions(t *testing.T) {
	keys := Keys{Toggle: []string{"space"}, Quit: []string{"q"}}

	actions := keys.Actions()

	require.Len(t, actions, 7)
	assert.Equal(t, KeyAction{Name: "toggle", Keys: []string{"space"}}, actions[0])
	assert.Equal(t, KeyAction{Name: "quit", Keys: []string{"q"}}, actions[6])
}
