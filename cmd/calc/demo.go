package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calc/internal/driver"
)

// demoExpression is the canonical example from the documented grammar.
const demoExpression = "(3 + 5) * (2 - 1)"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the canonical demonstration expression",
	Long:  `Demo feeds "(3 + 5) * (2 - 1)" through the pipeline and prints the result`,
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	useColor, maxDiagnostics, err := commonFlags(cmd)
	if err != nil {
		return err
	}

	result := driver.EvalSource("<demo>", demoExpression, maxDiagnostics)
	reportDiagnostics(result.Bag, result.FileSet, useColor)
	if result.Err != nil {
		return result.Err
	}

	fmt.Fprintf(os.Stdout, "%s = %d\n", demoExpression, result.Value)
	return nil
}
