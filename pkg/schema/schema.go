package schema

import "time"

// Configuration is the merged splitwatch configuration.
type Configuration struct {
	Logs      Logs      `yaml:"logs" json:"logs" mapstructure:"logs"`
	Stopwatch Stopwatch `yaml:"stopwatch" json:"stopwatch" mapstructure:"stopwatch"`
	Keys      Keys      `yaml:"keys" json:"keys" mapstructure:"keys"`
	Output    Output    `yaml:"output" json:"output" mapstructure:"output"`

	// ConfigFiles lists the configuration files that were merged, lowest priority first.
	ConfigFiles []string `yaml:"-" json:"-" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// Stopwatch configures the interactive stopwatch.
type Stopwatch struct {
	Title           string        `yaml:"title" json:"title" mapstructure:"title"`
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" mapstructure:"refresh_interval"`
	PauseOnBlur     bool          `yaml:"pause_on_blur" json:"pause_on_blur" mapstructure:"pause_on_blur"`
	Mouse           bool          `yaml:"mouse" json:"mouse" mapstructure:"mouse"`
	AltScreen       bool          `yaml:"alt_screen" json:"alt_screen" mapstructure:"alt_screen"`
}

// Keys maps each action to the keys that trigger it. Key names follow
// bubbletea's key strings ("l", "ctrl+c", "enter"), plus "space".
type Keys struct {
	Toggle []string `yaml:"toggle" json:"toggle" mapstructure:"toggle"`
	Lap    []string `yaml:"lap" json:"lap" mapstructure:"lap"`
	Reset  []string `yaml:"reset" json:"reset" mapstructure:"reset"`
	Title  []string `yaml:"title" json:"title" mapstructure:"title"`
	Copy   []string `yaml:"copy" json:"copy" mapstructure:"copy"`
	Help   []string `yaml:"help" json:"help" mapstructure:"help"`
	Quit   []string `yaml:"quit" json:"quit" mapstructure:"quit"`
}

// Actions returns the bindings keyed by action name, in display order.
func (k Keys) Actions() []KeyAction {
	return []KeyAction{
		{Name: "toggle", Keys: k.Toggle},
		{Name: "lap", Keys: k.Lap},
		{Name: "reset", Keys: k.Reset},
		{Name: "title", Keys: k.Title},
		{Name: "copy", Keys: k.Copy},
		{Name: "help", Keys: k.Help},
		{Name: "quit", Keys: k.Quit},
	}
}

// KeyAction is one action and its keys.
type KeyAction struct {
	Name string
	Keys []string
}

// Output configures the session summary printed on exit.
type Output struct {
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

// KeySpace is the configuration name for the space bar.
const KeySpace = "space"

// NormalizeKey converts a configured key name to the string bubbletea
// reports for it.
func NormalizeKey(name string) string {
	if name == KeySpace {
		return " "
	}
	return name
}
