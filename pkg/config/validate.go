package config

import (
	"slices"
	"strings"

	errUtils "github.com/cloudposse/splitwatch/errors"
	log "github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/report"
	"github.com/cloudposse/splitwatch/pkg/schema"
)

// Validate checks the merged configuration.
func Validate(cfg *schema.Configuration) error {
	if _, err := log.ParseLogLevel(cfg.Logs.Level); err != nil {
		return errUtils.Build(errUtils.ErrInvalidConfig).
			WithCause(err).
			WithContext("logs.level", cfg.Logs.Level).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	interval := cfg.Stopwatch.RefreshInterval
	if interval < MinRefreshInterval || interval > MaxRefreshInterval {
		return errUtils.Build(errUtils.ErrInvalidRefreshInterval).
			WithHintf("Use a value between %s and %s, for example %s", MinRefreshInterval, MaxRefreshInterval, DefaultRefreshInterval).
			WithContext("stopwatch.refresh_interval", interval).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if !report.IsValidFormat(cfg.Output.Format) {
		return errUtils.Build(errUtils.ErrInvalidOutputFormat).
			WithHintf("Supported formats: %s", strings.Join(report.Formats(), ", ")).
			WithContext("output.format", cfg.Output.Format).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	return validateKeys(cfg.Keys)
}

func validateKeys(keys schema.Keys) error {
	owner := map[string]string{}

	for _, action := range keys.Actions() {
		bound := slices.DeleteFunc(slices.Clone(action.Keys), func(k string) bool { return strings.TrimSpace(k) == "" })
		if len(bound) == 0 {
			return errUtils.Build(errUtils.ErrInvalidKeyBinding).
				WithHintf("Bind at least one key to keys.%s", action.Name).
				WithContext("action", action.Name).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}

		for _, k := range bound {
			normalized := schema.NormalizeKey(k)
			if other, ok := owner[normalized]; ok && other != action.Name {
				return errUtils.Build(errUtils.ErrInvalidKeyBinding).
					WithHintf("Key %q is bound to both %s and %s", k, other, action.Name).
					WithContext("key", k).
					WithExitCode(errUtils.ExitCodeUsage).
					Err()
			}
			owner[normalized] = action.Name
		}
	}

	return nil
}
