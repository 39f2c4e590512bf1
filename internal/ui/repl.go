package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"calc/internal/driver"
)

const historyLimit = 100

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	faultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type historyEntry struct {
	input  string
	output string
	fault  bool
}

type replModel struct {
	input          textinput.Model
	history        []historyEntry
	width          int
	maxDiagnostics int
}

// NewReplModel returns a Bubble Tea model for the interactive evaluator.
// Each submitted line runs through the full pipeline independently; the
// REPL keeps no evaluation state between lines.
func NewReplModel(maxDiagnostics int) tea.Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("calc> ")
	ti.Placeholder = "(3 + 5) * (2 - 1)"
	ti.Focus()

	return &replModel{
		input:          ti,
		maxDiagnostics: maxDiagnostics,
		width:          80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				return m, tea.Quit
			}
			m.push(m.evalLine(line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) evalLine(line string) historyEntry {
	result := driver.EvalSource("repl", line, m.maxDiagnostics)
	if result.Err != nil {
		return historyEntry{input: line, output: result.Err.Error(), fault: true}
	}
	return historyEntry{input: line, output: fmt.Sprintf("%d", result.Value)}
}

func (m *replModel) push(entry historyEntry) {
	m.history = append(m.history, entry)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

func (m *replModel) View() string {
	var sb strings.Builder

	// truncate before styling so ANSI escapes are not counted as cells
	for _, entry := range m.history {
		input := truncateLine(entry.input, m.width-6)
		sb.WriteString(promptStyle.Render("calc> ") + input)
		sb.WriteByte('\n')

		out := truncateLine(entry.output, m.width)
		if entry.fault {
			out = faultStyle.Render(out)
		} else {
			out = valueStyle.Render(out)
		}
		sb.WriteString(out)
		sb.WriteByte('\n')
	}

	sb.WriteString(m.input.View())
	sb.WriteByte('\n')
	sb.WriteString(hintStyle.Render("enter evaluates, ctrl+c exits"))
	sb.WriteByte('\n')
	return sb.String()
}

// truncateLine keeps rendered lines within the terminal, measuring display
// cells rather than bytes.
func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}
