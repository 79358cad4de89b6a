// Package cmdutil holds the flags, configuration and I/O plumbing shared by
// every depclosure command.
package cmdutil

import (
	"fmt"
	"io"

	"github.com/LegacyCodeHQ/depclosure/depgraph"
	"github.com/LegacyCodeHQ/depclosure/internal/config"
	"github.com/LegacyCodeHQ/depclosure/internal/logging"
	"github.com/LegacyCodeHQ/depclosure/vcs"
	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonOptions are the flags every command accepts.
type CommonOptions struct {
	ConfigPath string
	LogLevel   string
	CacheSize  int
	RepoPath   string
	CommitID   string
	Clipboard  bool
}

// Runtime is the resolved configuration of one command invocation.
type Runtime struct {
	Config *config.Config
	Log    *logrus.Logger
	Reader vcs.ContentReader
}

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

// BindCommonFlags registers the shared flags on cmd.
func BindCommonFlags(cmd *cobra.Command, opts *CommonOptions) {
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level written to stderr (error, warn, info, debug)")
	cmd.Flags().IntVar(&opts.CacheSize, "cache-size", config.DefaultCacheSize, "Number of resolved closures memoized per run (0 disables)")
	cmd.Flags().StringVarP(&opts.RepoPath, "repo", "r", "", "Git repository path used with --commit; relative file paths are resolved inside it (default: current directory)")
	cmd.Flags().StringVarP(&opts.CommitID, "commit", "c", "", "Read the dependency file as it was at this git commit")
	cmd.Flags().BoolVarP(&opts.Clipboard, "clipboard", "b", false, "Automatically copy output to clipboard")
}

// Setup loads configuration, applies flag overrides and builds the logger.
// Flags win over environment variables, which win over the config file.
// Values are validated only after the flags are merged; Format is left to the
// commands that render it.
func Setup(cmd *cobra.Command, opts *CommonOptions) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if cmd.Flags().Changed("cache-size") {
		cfg.CacheSize = opts.CacheSize
	}
	if err := cfg.ValidateSettings(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Config: cfg,
		Log:    log,
		Reader: contentReader(cmd, opts),
	}, nil
}

func contentReader(cmd *cobra.Command, opts *CommonOptions) vcs.ContentReader {
	if opts.CommitID == "" {
		return vcs.StdinContentReader(cmd.InOrStdin())
	}

	repoPath := opts.RepoPath
	if repoPath == "" {
		repoPath = "."
	}
	return vcs.GitCommitContentReader(repoPath, opts.CommitID)
}

// ReadLines reads the whole dependency source and splits it into lines.
func (r *Runtime) ReadLines(path string) ([]string, error) {
	content, err := vcs.ReadSource(r.Reader, path)
	if err != nil {
		return nil, err
	}

	lines := depgraph.SplitLines(content)
	r.Log.WithFields(logrus.Fields{"source": path, "lines": len(lines)}).Debug("dependency source read")
	return lines, nil
}

// ReadGraph reads the dependency source and builds its direct dependency graph.
func (r *Runtime) ReadGraph(path string) (depgraph.DependencyGraph, error) {
	lines, err := r.ReadLines(path)
	if err != nil {
		return nil, err
	}

	graph, _, err := depgraph.BuildDependencyGraph(lines)
	if err != nil {
		return nil, err
	}
	return graph, nil
}

// BatchOptions returns resolver options derived from the configuration.
func (r *Runtime) BatchOptions() depgraph.BatchOptions {
	return depgraph.BatchOptions{
		CacheSize: r.Config.CacheSize,
		Logger:    r.Log,
	}
}

// WriteOutput writes output followed by a newline to the command's stdout and
// optionally copies it to the clipboard. The clipboard notice goes to stderr.
// Empty output writes nothing.
func WriteOutput(cmd *cobra.Command, output string, toClipboard bool) error {
	if output == "" {
		return nil
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), output); err != nil {
		return err
	}

	if !toClipboard {
		return nil
	}
	if err := copyToClipboard(output); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	_, err := io.WriteString(cmd.ErrOrStderr(), "✅ Content copied to your clipboard.\n")
	return err
}
