package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calc/internal/diagfmt"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file]",
	Short: "Parse an arithmetic expression into its tree",
	Long:  `Parse builds the precedence-resolved expression tree and prints it`,
	Args:  exactlyOneInput(),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringP("expr", "e", "", "expression text instead of a file")
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	exprFlag, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	useColor, maxDiagnostics, err := commonFlags(cmd)
	if err != nil {
		return err
	}

	result, err := parseInput(exprFlag, args, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	reportDiagnostics(result.Bag, result.FileSet, useColor)
	if result.Err != nil {
		cmd.SilenceUsage = true
		return result.Err
	}

	switch format {
	case "pretty":
		return diagfmt.FormatExprPretty(os.Stdout, result.Expr, result.FileSet)
	case "json":
		return diagfmt.FormatExprJSON(os.Stdout, result.Expr)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
