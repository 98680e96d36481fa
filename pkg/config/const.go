package config

const (
	CliConfigFileName = "splitwatch"
	ConfigFileType    = "yaml"

	SystemDirConfigFilePath = "/usr/local/etc/splitwatch"

	EnvPrefix        = "SPLITWATCH"
	ConfigPathEnvVar = "SPLITWATCH_CLI_CONFIG_PATH"
)

// Configuration keys bound to flags and environment variables.
const (
	LogsLevelKey                = "logs.level"
	LogsFileKey                 = "logs.file"
	StopwatchTitleKey           = "stopwatch.title"
	StopwatchRefreshIntervalKey = "stopwatch.refresh_interval"
	StopwatchPauseOnBlurKey     = "stopwatch.pause_on_blur"
	StopwatchMouseKey           = "stopwatch.mouse"
	StopwatchAltScreenKey       = "stopwatch.alt_screen"
	OutputFormatKey             = "output.format"
)
