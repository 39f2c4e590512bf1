package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calc/internal/driver"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [files...]",
	Short: "Evaluate arithmetic expressions",
	Long: `Eval runs the full pipeline (tokenize, parse, evaluate) and prints one
integer per input. Multiple files are evaluated concurrently.`,
	Args: func(cmd *cobra.Command, args []string) error {
		expr, err := cmd.Flags().GetString("expr")
		if err != nil {
			return err
		}
		if expr == "" && len(args) == 0 {
			return fmt.Errorf("provide an expression with -e or at least one file")
		}
		if expr != "" && len(args) != 0 {
			return fmt.Errorf("-e and file arguments are mutually exclusive")
		}
		return nil
	},
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringP("expr", "e", "", "expression text instead of files")
}

func runEval(cmd *cobra.Command, args []string) error {
	exprFlag, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	useColor, maxDiagnostics, err := commonFlags(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	if exprFlag != "" {
		result := driver.EvalSource("<expr>", exprFlag, maxDiagnostics)
		reportDiagnostics(result.Bag, result.FileSet, useColor)
		if result.Err != nil {
			return result.Err
		}
		fmt.Fprintln(os.Stdout, result.Value)
		return nil
	}

	results, err := driver.EvalFiles(cmd.Context(), args, maxDiagnostics)
	if err != nil {
		return err
	}

	var failed int
	for _, fileResult := range results {
		switch {
		case fileResult.Err != nil:
			fmt.Fprintf(os.Stderr, "%s: %v\n", fileResult.Path, fileResult.Err)
			failed++
		case fileResult.Result.Err != nil:
			reportDiagnostics(fileResult.Result.Bag, fileResult.Result.FileSet, useColor)
			failed++
		case len(results) > 1:
			fmt.Fprintf(os.Stdout, "%s: %d\n", fileResult.Path, fileResult.Result.Value)
		default:
			fmt.Fprintln(os.Stdout, fileResult.Result.Value)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}
