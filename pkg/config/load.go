package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/splitwatch/errors"
	log "github.com/cloudposse/splitwatch/pkg/logger"
	"github.com/cloudposse/splitwatch/pkg/schema"
	"github.com/cloudposse/splitwatch/pkg/xdg"
)

// Load reads the splitwatch configuration from the following locations (from lower to higher priority):
// defaults
// system dir (`/usr/local/etc/splitwatch`)
// XDG config dir (`$XDG_CONFIG_HOME/splitwatch`, or `$SPLITWATCH_XDG_CONFIG_HOME/splitwatch`)
// current directory
// SPLITWATCH_CLI_CONFIG_PATH
// configFile (a file, or a directory holding splitwatch.yaml)
// SPLITWATCH_* environment variables
// flags bound to v by the caller
func Load(v *viper.Viper, configFile string) (schema.Configuration, error) {
	var cfg schema.Configuration

	v.SetConfigType(ConfigFileType)
	setDefaultConfiguration(v)

	var used []string
	for _, dir := range searchDirs() {
		path, err := mergeConfigDir(v, dir)
		if err != nil {
			return cfg, err
		}
		if path != "" {
			used = append(used, path)
		}
	}

	if configFile != "" {
		path, err := mergeExplicitConfig(v, configFile)
		if err != nil {
			return cfg, err
		}
		used = append(used, path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(used) == 0 {
		log.Debug("No splitwatch.yaml found, using the default configuration")
	}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		schema.KeyListDecodeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return cfg, errUtils.Build(errUtils.ErrLoadConfig).
			WithCause(err).
			WithHint("Check the types of the values in splitwatch.yaml and SPLITWATCH_* variables").
			Err()
	}
	cfg.ConfigFiles = used

	return cfg, nil
}

// searchDirs returns the implicit config directories, lowest priority first.
func searchDirs() []string {
	dirs := []string{SystemDirConfigFilePath, xdg.ConfigDir()}

	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		dirs = append(dirs, envPath)
	}

	return dirs
}

// mergeConfigDir merges splitwatch.yaml from dir when it exists and returns its path.
func mergeConfigDir(v *viper.Viper, dir string) (string, error) {
	path := filepath.Join(dir, CliConfigFileName+"."+ConfigFileType)
	if _, err := os.Stat(path); err != nil {
		log.Trace("Config not found", "file", path)
		return "", nil
	}
	if err := mergeConfig(v, path); err != nil {
		return "", err
	}
	return path, nil
}

// mergeExplicitConfig merges a config given on the command line. Unlike the
// implicit locations it must exist.
func mergeExplicitConfig(v *viper.Viper, configFile string) (string, error) {
	path := configFile
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, CliConfigFileName+"."+ConfigFileType)
	}

	if _, err := os.Stat(path); err != nil {
		return "", errUtils.Build(errUtils.ErrLoadConfig).
			WithCause(err).
			WithHint("Pass an existing file or a directory containing splitwatch.yaml to --config").
			WithContext("file", path).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	if err := mergeConfig(v, path); err != nil {
		return "", err
	}
	return path, nil
}

// mergeConfig merges the file at path into v.
func mergeConfig(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errUtils.Build(errUtils.ErrLoadConfig).
			WithCause(err).
			WithContext("file", path).
			Err()
	}
	log.Debug("Merged config", "file", path)
	return nil
}
