package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is a two-phase prompt: the first "y" arms the action and
// shows a final warning, the second "y" confirms it. Anything else cancels.
type confirmModel struct {
	prompt    string
	warning   string
	armed     bool
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y":
			if !m.armed && m.warning != "" {
				m.armed = true
				return m, nil
			}
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "enter", "esc", "ctrl+c":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	warningStyle := m.theme.DangerStyle()
	text := m.prompt
	if m.armed {
		text = m.warning
	}
	return fmt.Sprintf("%s %s",
		promptStyle.Render(text),
		warningStyle.Render("[y/N]"),
	) + " "
}

// Confirm shows an interactive prompt and returns true if the user confirms.
// When warning is non-empty the user must confirm twice, seeing the warning
// the second time.
func Confirm(prompt, warning string, theme Theme) (bool, error) {
	m := confirmModel{prompt: prompt, warning: warning, theme: theme}
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
