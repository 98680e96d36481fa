package stopwatch

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"github.com/cloudposse/splitwatch/pkg/schema"
)

// ShortHelp returns keybindings to be shown in the mini help view. It's part of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Lap, k.Reset, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Lap, k.Reset},
		{k.Title, k.Copy},
		{k.Help, k.Quit},
	}
}

type keyMap struct {
	Toggle key.Binding
	Lap    key.Binding
	Reset  key.Binding
	Title  key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Fixed bindings used while the title is being edited.
	Commit    key.Binding
	Cancel    key.Binding
	Interrupt key.Binding
}

// editingHelp is the help shown while the title input has focus.
type editingHelp keyMap

func (k editingHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

func (k editingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap(keys schema.Keys) keyMap {
	bound := make(map[string]bool)
	for _, action := range keys.Actions() {
		for _, name := range action.Keys {
			bound[schema.NormalizeKey(name)] = true
		}
	}
	binding := func(names []string, desc string) key.Binding {
		return newBinding(names, desc, bound)
	}

	return keyMap{
		Toggle: binding(keys.Toggle, "start/pause"),
		Lap:    binding(keys.Lap, "lap"),
		Reset:  binding(keys.Reset, "reset"),
		Title:  binding(keys.Title, "edit title"),
		Copy:   binding(keys.Copy, "copy laps"),
		Help:   binding(keys.Help, "help"),
		Quit:   binding(keys.Quit, "quit"),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save title"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// newBinding matches names case-insensitively for single letters, unless the
// upper-case key is bound to an action of its own.
func newBinding(names []string, desc string, bound map[string]bool) key.Binding {
	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, schema.NormalizeKey(name))
	}
	for _, name := range names {
		if upper, ok := upperLetter(name); ok && !bound[upper] {
			keys = append(keys, upper)
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

func upperLetter(name string) (string, bool) {
	r := []rune(name)
	if len(r) != 1 || !unicode.IsLower(r[0]) {
		return "", false
	}
	return string(unicode.ToUpper(r[0])), true
}
