package graph

import (
	"fmt"
	"path/filepath"

	"github.com/LegacyCodeHQ/depclosure/cmd/cmdutil"
	"github.com/LegacyCodeHQ/depclosure/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/LegacyCodeHQ/depclosure/vcs"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	common       cmdutil.CommonOptions
	outputFormat string
	closure      bool
	generateURL  bool
	label        string
}

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{
		outputFormat: formatters.OutputFormatDOT.String(),
	}

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Render the dependency graph of a dependency file.",
		Long: `Render the dependency graph of a dependency file as Graphviz DOT or a
Mermaid flowchart. Libraries and edges that take part in a cycle are highlighted.

With --closure every library points at its full dependency set instead of its
direct dependencies.

Examples:
  depclosure graph deps.txt
  depclosure graph deps.txt -f mermaid
  depclosure graph deps.txt --closure -u
  depclosure graph deps.txt -c HEAD~2 -b`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().BoolVar(&opts.closure, "closure", false, "Draw full (transitive) dependencies instead of direct ones")
	cmd.Flags().BoolVarP(&opts.generateURL, "url", "u", false, "Generate visualization URL")
	cmd.Flags().StringVar(&opts.label, "label", "", "Graph title (default: file name, commit and library count)")
	cmdutil.BindCommonFlags(cmd, &opts.common)

	return cmd
}

func runGraph(cmd *cobra.Command, opts *graphOptions, path string) error {
	formatter, err := NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	rt, err := cmdutil.Setup(cmd, &opts.common)
	if err != nil {
		return err
	}

	g, err := rt.ReadGraph(path)
	if err != nil {
		return err
	}

	cycles, err := depgraph.FindCycles(g)
	if err != nil {
		return fmt.Errorf("failed to find dependency cycles: %w", err)
	}

	if opts.closure {
		g, err = depgraph.ClosureGraph(g, depgraph.WithCacheSize(rt.Config.CacheSize), depgraph.WithLogger(rt.Log))
		if err != nil {
			return fmt.Errorf("failed to compute closure graph: %w", err)
		}
	}

	label := opts.label
	if label == "" {
		label = defaultLabel(path, opts.common.CommitID, len(g.Libraries()))
	}

	output, err := formatter.Format(g, formatters.RenderOptions{Label: label, Cycles: cycles})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	if opts.generateURL {
		if urlStr, ok := formatter.GenerateURL(output); ok {
			output = urlStr
		} else {
			rt.Log.Warnf("URL generation is not supported for %s format", opts.outputFormat)
		}
	}

	return cmdutil.WriteOutput(cmd, output, opts.common.Clipboard)
}

func defaultLabel(path, commitID string, libraryCount int) string {
	label := "stdin"
	if path != vcs.StdinPath {
		label = filepath.Base(path)
	}
	if commitID != "" {
		label += " @ " + commitID
	}

	if libraryCount == 1 {
		return label + " • 1 library"
	}
	return fmt.Sprintf("%s • %d libraries", label, libraryCount)
}
