package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/splitwatch/errors"
	"github.com/cloudposse/splitwatch/pkg/version"
)

const (
	versionFormatText = "text"
	versionFormatJSON = "json"
	versionFormatYAML = "yaml"
)

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the CLI version",
		Long:    `This command prints the CLI version`,
		Example: "splitwatch version\nsplitwatch version --format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := formatVersion(version.Get(), format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", versionFormatText, "Output format: text, json or yaml")

	return cmd
}

func formatVersion(info version.Info, format string) (string, error) {
	switch format {
	case versionFormatText:
		return fmt.Sprintf("splitwatch %s on %s/%s (%s)\n", info.Version, info.OS, info.Arch, info.GoVersion), nil
	case versionFormatJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case versionFormatYAML:
		data, err := yaml.Marshal(info)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", errUtils.Build(errUtils.ErrInvalidOutputFormat).
			WithHint("Supported formats: text, json, yaml").
			WithContext("format", format).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}
