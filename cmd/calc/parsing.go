package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calc/internal/diag"
	"calc/internal/diagfmt"
	"calc/internal/driver"
	"calc/internal/source"
)

// commonFlags resolves the persistent flags every subcommand consumes.
func commonFlags(cmd *cobra.Command) (useColor bool, maxDiagnostics int, err error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, 0, fmt.Errorf("failed to get color flag: %w", err)
	}
	maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return false, 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	useColor = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	return useColor, maxDiagnostics, nil
}

// tokenizeInput runs the scan stage over -e text or a file argument.
func tokenizeInput(exprFlag string, args []string, maxDiagnostics int) (*driver.TokenizeResult, error) {
	if exprFlag != "" {
		return driver.TokenizeSource("<expr>", exprFlag, maxDiagnostics), nil
	}
	return driver.TokenizeFile(args[0], maxDiagnostics)
}

// parseInput runs scan + parse over -e text or a file argument.
func parseInput(exprFlag string, args []string, maxDiagnostics int) (*driver.ParseResult, error) {
	if exprFlag != "" {
		return driver.ParseSource("<expr>", exprFlag, maxDiagnostics), nil
	}
	return driver.ParseFile(args[0], maxDiagnostics)
}

// reportDiagnostics pretty-prints any collected diagnostics to stderr.
func reportDiagnostics(bag *diag.Bag, fs *source.FileSet, useColor bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 1,
	})
}

// exactlyOneInput enforces the "-e expr or one file" contract shared by
// tokenize and parse.
func exactlyOneInput() cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		expr, err := cmd.Flags().GetString("expr")
		if err != nil {
			return err
		}
		if expr == "" && len(args) != 1 {
			return fmt.Errorf("provide an expression with -e or exactly one file")
		}
		if expr != "" && len(args) != 0 {
			return fmt.Errorf("-e and file arguments are mutually exclusive")
		}
		return nil
	}
}
