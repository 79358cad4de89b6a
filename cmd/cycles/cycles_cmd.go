package cycles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/depclosure/cmd/cmdutil"
	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/spf13/cobra"
)

// ErrCyclesFound is returned in strict mode when the dependency file has cycles.
var ErrCyclesFound = errors.New("dependency cycles found")

type cyclesOptions struct {
	common cmdutil.CommonOptions
	strict bool
}

// NewCommand returns a new cycles command instance.
func NewCommand() *cobra.Command {
	opts := &cyclesOptions{}

	cmd := &cobra.Command{
		Use:   "cycles <file>",
		Short: "List dependency cycles in a dependency file.",
		Long: `List every group of libraries that depend on each other, one cycle per line.
Libraries that declare themselves as a dependency are reported as a cycle of one.

Cycles are legal input. Use --strict to fail when any cycle is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycles(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when a cycle is found")
	cmdutil.BindCommonFlags(cmd, &opts.common)

	return cmd
}

func runCycles(cmd *cobra.Command, opts *cyclesOptions, path string) error {
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

	if err := cmdutil.WriteOutput(cmd, formatCycles(cycles), opts.common.Clipboard); err != nil {
		return err
	}

	if opts.strict && len(cycles) > 0 {
		return fmt.Errorf("%w: %d", ErrCyclesFound, len(cycles))
	}
	return nil
}

func formatCycles(cycles []depgraph.Cycle) string {
	if len(cycles) == 0 {
		return "No dependency cycles found."
	}

	lines := make([]string, 0, len(cycles))
	for _, cycle := range cycles {
		lines = append(lines, strings.Join(cycle.Libraries, " "))
	}
	return strings.Join(lines, "\n")
}
