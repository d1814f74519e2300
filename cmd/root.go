package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI. It doesn't run anything itself
// unless the user runs it with no subcommands.
var rootCmd = &cobra.Command{
	Use:   "decomment",
	Short: "Decomment strips comments from source files.",
	Long: `Decomment is a command-line utility that removes comments from
source files across many languages: multi-line comments are deleted,
trailing single-line comments are stripped, and full-line comments become
blank lines, while string literals and URLs are left untouched.`,
}

// Execute is called by main.go to run the root command.
// If an error occurs, we print to stderr and exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
