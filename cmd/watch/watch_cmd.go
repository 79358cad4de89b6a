package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LegacyCodeHQ/depclosure/cmd/cmdutil"
	"github.com/LegacyCodeHQ/depclosure/cmd/resolve"
	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/LegacyCodeHQ/depclosure/internal/config"
	"github.com/LegacyCodeHQ/depclosure/vcs"
	"github.com/spf13/cobra"
)

var errUnwatchableSource = errors.New("watch needs a file on disk")

type watchOptions struct {
	common       cmdutil.CommonOptions
	outputFormat string
}

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		outputFormat: config.FormatText,
	}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-resolve a dependency file every time it changes.",
		Long: `Resolve a dependency file, then resolve it again and print the new result
every time the file is saved. Parse errors during a rebuild are logged and
watching continues. Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(
		&opts.outputFormat,
		"format",
		"f",
		opts.outputFormat,
		fmt.Sprintf("Output format (%s)", config.SupportedFormats()))
	cmdutil.BindCommonFlags(cmd, &opts.common)

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions, path string) error {
	if path == vcs.StdinPath {
		return fmt.Errorf("%w: standard input cannot be watched", errUnwatchableSource)
	}
	if opts.common.CommitID != "" {
		return fmt.Errorf("%w: content at a commit never changes", errUnwatchableSource)
	}

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

	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcher, err := newFileWatcher(path, rt.Log)
	if err != nil {
		return err
	}
	defer watcher.Close()

	rebuild := func() error {
		lines, err := rt.ReadLines(path)
		if err != nil {
			return err
		}
		resolutions, err := depgraph.ResolveBatch(lines, rt.BatchOptions())
		if err != nil {
			return err
		}
		output, err := resolve.Render(format, resolutions)
		if err != nil {
			return err
		}
		rt.Log.WithField("libraries", len(resolutions)).Info("dependencies resolved")
		return cmdutil.WriteOutput(cmd, output, opts.common.Clipboard)
	}

	if err := rebuild(); err != nil {
		return fmt.Errorf("initial resolution failed: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s\n", path)
	fmt.Fprintf(cmd.ErrOrStderr(), "Press Ctrl+C to stop\n")

	return watcher.run(ctx, rebuild)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
