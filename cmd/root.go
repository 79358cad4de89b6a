package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/LegacyCodeHQ/depclosure/cmd/cycles"
	"github.com/LegacyCodeHQ/depclosure/cmd/graph"
	"github.com/LegacyCodeHQ/depclosure/cmd/resolve"
	"github.com/LegacyCodeHQ/depclosure/cmd/watch"
	"github.com/LegacyCodeHQ/depclosure/cmd/why"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

const errorPrefix = "Error processing dependencies: "

// NewRootCommand returns the depclosure command tree. Run without a subcommand it
// behaves like "depclosure resolve".
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "depclosure <file>",
		Short: "Compute the full dependency set of every library in a dependency file",
		Long: `depclosure reads lines of the form

  <library> depends on <dep1> [dep2 ...]
  <library> has no dependencies

and prints, for every line and in input order, the full (transitive) set of
dependencies of that line's library. Cycles are allowed.

Use 'depclosure --help' to see all available commands, or 'depclosure <command> --help'
for detailed information about a specific command.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	resolve.Attach(rootCmd)

	rootCmd.AddCommand(resolve.NewCommand())
	rootCmd.AddCommand(graph.NewCommand())
	rootCmd.AddCommand(cycles.NewCommand())
	rootCmd.AddCommand(why.NewCommand())
	rootCmd.AddCommand(watch.NewCommand())

	for _, child := range rootCmd.Commands() {
		child.SilenceErrors = true
		child.SilenceUsage = true
	}

	rootCmd.Annotations = map[string]string{
		"buildDate": buildDate,
		"commit":    commit,
	}
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	os.Exit(execute(NewRootCommand(), os.Stderr))
}

func execute(rootCmd *cobra.Command, stderr io.Writer) int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s%v\n", errorPrefix, err)
		return 1
	}
	return 0
}
