package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/report"
	"github.com/cloudposse/splitwatch/pkg/schema"
)

const (
	DefaultRefreshInterval = 33 * time.Millisecond
	MinRefreshInterval     = time.Millisecond
	MaxRefreshInterval     = time.Second
)

// DefaultKeys are the key bindings used when none are configured.
var DefaultKeys = schema.Keys{
	Toggle: []string{schema.KeySpace},
	Lap:    []string{"l"},
	Reset:  []string{"r"},
	Title:  []string{"t"},
	Copy:   []string{"c"},
	Help:   []string{"?"},
	Quit:   []string{"q", "ctrl+c"},
}

// setDefaultConfiguration registers every key with viper so environment
// variables are picked up by Unmarshal.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault(LogsFileKey, logger.FileStderr)
	v.SetDefault(LogsLevelKey, logger.LevelNameInfo)

	v.SetDefault(StopwatchTitleKey, "")
	v.SetDefault(StopwatchRefreshIntervalKey, DefaultRefreshInterval)
	v.SetDefault(StopwatchPauseOnBlurKey, true)
	v.SetDefault(StopwatchMouseKey, true)
	v.SetDefault(StopwatchAltScreenKey, true)

	for _, action := range DefaultKeys.Actions() {
		v.SetDefault("keys."+action.Name, action.Keys)
	}

	v.SetDefault(OutputFormatKey, report.FormatText)
}
