package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Quest scripting language interpreter",
	Long: `quest runs programs written in Quest, a dynamically-typed scripting
language: a value kernel with checked-overflow arithmetic, user-defined
record types and traits, first-class modules, and typed exceptions with
structured try/catch/ensure.

Invoked with no arguments, quest starts an interactive REPL. Invoked with a
script path as its first argument, quest runs that script and exposes any
remaining arguments to it as sys.argv.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runRepl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
