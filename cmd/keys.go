package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var actionDescriptions = map[string]string{
	"toggle": "Start, pause or resume",
	"lap":    "Record a lap while running",
	"reset":  "Clear elapsed time and laps",
	"title":  "Edit the session title",
	"copy":   "Copy the laps to the clipboard",
	"help":   "Show all key bindings",
	"quit":   "Quit and print the summary",
}

func newKeysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Short:   "Print the effective key bindings",
		Long:    `This command prints the key bindings after merging configuration files and environment variables`,
		Example: "splitwatch keys",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Action", "Keys", "Description")
			for _, action := range opts.cfg.Keys.Actions() {
				t.Row(action.Name, strings.Join(action.Keys, ", "), actionDescriptions[action.Name])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}
