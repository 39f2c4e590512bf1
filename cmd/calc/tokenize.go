package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calc/internal/diagfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file]",
	Short: "Tokenize an arithmetic expression",
	Long:  `Tokenize breaks an expression down into its constituent tokens`,
	Args:  exactlyOneInput(),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringP("expr", "e", "", "expression text instead of a file")
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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

	result, err := tokenizeInput(exprFlag, args, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	reportDiagnostics(result.Bag, result.FileSet, useColor)
	if result.Err != nil {
		cmd.SilenceUsage = true
		return result.Err
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
