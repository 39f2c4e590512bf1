package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"calc/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive expression evaluator",
	Long:  `Repl evaluates expressions as you type them; every line is an independent pipeline run`,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	_, maxDiagnostics, err := commonFlags(cmd)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("repl requires an interactive terminal; use 'calc eval -e' for scripted input")
	}

	model := ui.NewReplModel(maxDiagnostics)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
