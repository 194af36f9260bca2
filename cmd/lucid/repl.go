package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maragkose/lucid/lucid"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput  textinput.Model
	decls      []string
	history    []historyEntry
	cmdHistory []string
	historyIdx int
	quitting   bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type an expression or a function declaration..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 72
	ti.PromptStyle = promptStyle
	ti.Prompt = "lucid> "

	return replModel{
		textInput:  ti,
		historyIdx: -1,
	}
}

func runREPL() error {
	_, err := tea.NewProgram(newREPLModel()).Run()
	return err
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = nil
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
				}
				m.textInput.SetValue(m.cmdHistory[len(m.cmdHistory)-1-m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx > 0 {
				m.historyIdx--
				m.textInput.SetValue(m.cmdHistory[len(m.cmdHistory)-1-m.historyIdx])
			} else {
				m.historyIdx = -1
				m.textInput.SetValue("")
			}
			m.textInput.CursorEnd()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.cmdHistory = append(m.cmdHistory, input)
			m.historyIdx = -1
			m.textInput.SetValue("")

			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate handles one REPL entry. A function declaration joins the
// accumulated declaration set; anything else is treated as an expression,
// wrapped in a printing entry point, and executed.
func (m *replModel) evaluate(input string) (string, bool) {
	if strings.HasPrefix(input, "function") {
		candidate := append(append([]string{}, m.decls...), input)
		if err := compileDecls(candidate); err != nil {
			return err.Error(), true
		}
		m.decls = candidate
		return "ok", false
	}

	source := strings.Join(m.decls, "\n") + `
function repl_entry() returns Int {
	println(` + input + `)
	return 0
}`

	var out bytes.Buffer
	engine := lucid.NewEngine(lucid.Config{Output: &out})
	script, err := engine.Compile(source, "repl")
	if err != nil {
		return err.Error(), true
	}

	if _, err := script.Call("repl_entry", nil); err != nil {
		return err.Error(), true
	}

	return strings.TrimRight(out.String(), "\n"), false
}

// compileDecls verifies the declaration set still compiles as a program.
func compileDecls(decls []string) error {
	source := strings.Join(decls, "\n")
	engine := lucid.NewEngine(lucid.Config{})
	_, err := engine.Compile(source, "repl")
	return err
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Lucid REPL"))
	sb.WriteString(mutedStyle.Render("  ctrl+c to quit, ctrl+l to clear"))
	sb.WriteString("\n\n")

	for _, entry := range m.history {
		sb.WriteString(promptStyle.Render("lucid> "))
		sb.WriteString(entry.input)
		sb.WriteByte('\n')
		if entry.output != "" {
			if entry.isErr {
				sb.WriteString(errorStyle.Render(entry.output))
			} else {
				sb.WriteString(resultStyle.Render(entry.output))
			}
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(m.textInput.View())
	sb.WriteByte('\n')

	if len(m.decls) > 0 {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("%d function(s) defined", len(m.decls))))
		sb.WriteByte('\n')
	}

	return sb.String()
}
