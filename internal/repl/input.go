package repl

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gemcode-cli/gemcode/internal/render"
)

// inputResult describes how a read ended.
type inputResult int

const (
	inputSubmitted inputResult = iota
	inputCancelled
	inputEOF
)

// inputModel is a single-line reader with Up/Down history recall.
type inputModel struct {
	input   textinput.Model
	history []string // chronological, oldest first
	histIdx int      // len(history) means editing a fresh line
	draft   string   // in-progress line saved while browsing history

	result    inputResult
	submitted string
}

func newInputModel(history []string) inputModel {
	ti := textinput.New()
	ti.Prompt = "➜ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(render.ColorCyan)
	ti.Focus()

	return inputModel{
		input:   ti,
		history: history,
		histIdx: len(history),
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.submitted = m.input.Value()
			m.result = inputSubmitted
			return m, tea.Quit

		case tea.KeyCtrlC:
			m.result = inputCancelled
			return m, tea.Quit

		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.result = inputEOF
				return m, tea.Quit
			}
			// Non-empty line: let the editor delete forward

		case tea.KeyUp:
			if m.histIdx > 0 {
				if m.histIdx == len(m.history) {
					m.draft = m.input.Value()
				}
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.histIdx < len(m.history) {
				m.histIdx++
				if m.histIdx == len(m.history) {
					m.input.SetValue(m.draft)
				} else {
					m.input.SetValue(m.history[m.histIdx])
				}
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return m.input.View()
}

// readLine reads one line of input from the terminal.
func (r *REPL) readLine() (string, inputResult, error) {
	program := tea.NewProgram(newInputModel(r.recentPrompts()))
	finalModel, err := program.Run()
	if err != nil {
		return "", inputEOF, err
	}

	m := finalModel.(inputModel)
	return m.submitted, m.result, nil
}
