package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Integer arithmetic expression toolchain",
	Long:  `calc tokenizes, parses, and evaluates integer arithmetic expressions`,
}

func init() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	// calc.toml provides defaults; flags given on the command line still win
	applyConfigDefaults(loadCLIConfigOrDefaults("."))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
