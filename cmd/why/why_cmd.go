package why

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/depclosure/cmd/cmdutil"
	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type whyOptions struct {
	common       cmdutil.CommonOptions
	outputFormat string
}

type explanation struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Path []string `json:"path"`
}

// NewCommand returns a new why command instance.
func NewCommand() *cobra.Command {
	opts := &whyOptions{
		outputFormat: formatText,
	}

	cmd := &cobra.Command{
		Use:   "why <file> <from> <to>",
		Short: "Explain why one library is a full dependency of another.",
		Long: `Print a shortest chain of direct dependencies that leads from one library
to another, showing why the second is in the full dependency set of the first.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhy(cmd, opts, args[0], args[1], args[2])
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", supportedFormats()))
	cmdutil.BindCommonFlags(cmd, &opts.common)

	return cmd
}

func runWhy(cmd *cobra.Command, opts *whyOptions, path, from, to string) error {
	if !isSupportedFormat(opts.outputFormat) {
		return fmt.Errorf("unknown format: %s (valid options: %s)", opts.outputFormat, supportedFormats())
	}

	rt, err := cmdutil.Setup(cmd, &opts.common)
	if err != nil {
		return err
	}

	g, err := rt.ReadGraph(path)
	if err != nil {
		return err
	}

	chain, err := depgraph.ExplainPath(g, from, to)
	if errors.Is(err, depgraph.ErrNoPath) {
		rt.Log.WithError(err).Debug("no dependency path")
		return cmdutil.WriteOutput(cmd, fmt.Sprintf("%s is not a dependency of %s", to, from), opts.common.Clipboard)
	}
	if err != nil {
		return err
	}

	output, err := formatOutput(opts.outputFormat, explanation{From: from, To: to, Path: chain})
	if err != nil {
		return err
	}
	return cmdutil.WriteOutput(cmd, output, opts.common.Clipboard)
}

func formatOutput(format string, e explanation) (string, error) {
	switch strings.ToLower(format) {
	case formatJSON:
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to generate JSON: %w", err)
		}
		return string(data), nil
	default:
		return strings.Join(e.Path, " -> "), nil
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case formatText, formatJSON:
		return true
	default:
		return false
	}
}

func supportedFormats() string {
	return strings.Join([]string{formatText, formatJSON}, ", ")
}
