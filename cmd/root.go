// Package cmd contains the CLI commands for the fmlint application.
package cmd

import "github.com/spf13/cobra"

// verbose holds the global --verbose flag state.
var verbose bool

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// NewRootCmd creates a new root command instance wired to the filesystem.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	return BuildCommandTree(newLinter)
}

// BuildCommandTree creates the root command and registers every
// subcommand, building linters with factory.
func BuildCommandTree(factory LinterFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmlint",
		Short: "Check Markdown frontmatter against publishing conventions",
		Long: "fmlint checks the YAML frontmatter of every document under a directory " +
			"and reports all missing or malformed fields in one pass.",
		SilenceErrors: true,
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	cmd.AddCommand(NewCheckCmd(factory))
	cmd.AddCommand(NewTagsCmd(factory))

	return cmd
}
