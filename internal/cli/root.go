// Package cli provides the command-line interface for minigrep.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/minigrep/internal/cli/commands"
	"github.com/ccollicutt/minigrep/pkg/config"
)

// Execute runs the root command against the process arguments and
// environment and returns the exit code.
func Execute() int {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
}

// ExecuteArgs runs the root command with explicit arguments, streams and
// environment lookup. It returns 0 on success and 2 on any error, after
// printing the error to stderr.
func ExecuteArgs(args []string, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	rootCmd := NewRootCommand(lookup)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command. The search runs on the root
// itself and there are no subcommands, so any word can be used as a query.
func NewRootCommand(lookup config.LookupFunc) *cobra.Command {
	rootCmd := commands.NewSearchCommand(lookup)
	rootCmd.Version = commands.Version
	rootCmd.SetVersionTemplate(commands.VersionTemplate)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd
}
