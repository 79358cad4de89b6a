package resolve

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/depclosure/cmd/cmdutil"
	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/LegacyCodeHQ/depclosure/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type resolveOptions struct {
	common       cmdutil.CommonOptions
	outputFormat string
}

// NewCommand returns a new resolve command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Print the full dependency set of every declared library.",
		Long: `Read a dependency file and print, for every line and in input order,
the full (transitive) set of dependencies of that line's library.

Each input line is either:
  <library> depends on <dep1> [dep2 ...]
  <library> has no dependencies

Use - as the file to read from standard input.

Examples:
  depclosure resolve deps.txt
  depclosure resolve deps.txt -f json
  depclosure resolve deps.txt -c HEAD~1
  cat deps.txt | depclosure resolve -`,
	}

	Attach(cmd)
	return cmd
}

// Attach turns cmd into a resolve command: it takes one positional file argument,
// registers the resolve flags and sets RunE.
func Attach(cmd *cobra.Command) {
	opts := &resolveOptions{}

	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd, opts, args[0])
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		config.FormatText,
		fmt.Sprintf("Output format (%s)", config.SupportedFormats()))
	cmdutil.BindCommonFlags(cmd, &opts.common)
}

func runResolve(cmd *cobra.Command, opts *resolveOptions, path string) error {
	rt, err := cmdutil.Setup(cmd, &opts.common)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		rt.Config.Format = opts.outputFormat
	}
	if err := rt.Config.Validate(); err != nil {
		return err
	}
	format := rt.Config.Format

	lines, err := rt.ReadLines(path)
	if err != nil {
		return err
	}

	resolutions, err := depgraph.ResolveBatch(lines, rt.BatchOptions())
	if err != nil {
		return err
	}

	output, err := Render(format, resolutions)
	if err != nil {
		return err
	}

	return cmdutil.WriteOutput(cmd, output, opts.common.Clipboard)
}

// Render converts resolutions to the named output format.
func Render(format string, resolutions []depgraph.Resolution) (string, error) {
	switch strings.ToLower(format) {
	case config.FormatText:
		return strings.Join(depgraph.FormatResolutions(resolutions), "\n"), nil
	case config.FormatJSON:
		data, err := json.MarshalIndent(resolutions, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to generate JSON: %w", err)
		}
		return string(data), nil
	case config.FormatYAML:
		data, err := yaml.Marshal(resolutions)
		if err != nil {
			return "", fmt.Errorf("failed to generate YAML: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid options: %s)", format, config.SupportedFormats())
	}
}
