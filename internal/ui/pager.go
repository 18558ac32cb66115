package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// DefaultMaxWidth caps the pager width on wide terminals.
const DefaultMaxWidth = 100

type pagerModel struct {
	viewport viewport.Model
	content  string
	title    string
	theme    Theme
	ready    bool
	maxWidth int
	width    int
	height   int
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := max(msg.Height-m.chromeHeight(), 1)
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), h)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = h
			m.viewport.SetContent(m.content)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// chromeHeight is the number of rows taken by the title and footer.
func (m pagerModel) chromeHeight() int {
	if m.title != "" {
		return 2
	}
	return 1
}

func (m pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) centerContent(content string) string {
	if m.maxWidth <= 0 || m.width <= m.maxWidth {
		return content
	}
	left := (m.width - m.maxWidth) / 2
	if left <= 0 {
		return content
	}
	padding := strings.Repeat(" ", left)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = padding + line
	}
	return strings.Join(lines, "\n")
}

func (m pagerModel) View() string {
	if !m.ready {
		return m.centerContent("Loading...")
	}
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100))
	view := m.viewport.View() + "\n" + footer
	if m.title != "" {
		view = m.theme.HeaderStyle().Render(m.title) + "\n" + view
	}
	return m.centerContent(view)
}

// fitsScreen reports whether content fits in height terminal rows without
// scrolling.
func fitsScreen(content string, height int) bool {
	return strings.Count(content, "\n")+1 <= height-2
}

// PageOutput displays content through a Bubble Tea pager when stdout is a TTY
// and the content is taller than the terminal. Otherwise it writes straight
// to stdout.
func PageOutput(title, content string, theme Theme) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(content)
		return nil
	}
	_, height, err := term.GetSize(fd)
	if err != nil || fitsScreen(content, height) {
		fmt.Print(content)
		return nil
	}

	m := pagerModel{content: content, title: title, theme: theme, maxWidth: DefaultMaxWidth}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// OutputOrPage writes content to w, going through the pager only when w is
// stdout and the output is not JSON.
func OutputOrPage(w io.Writer, title, content string, theme Theme, jsonOutput bool) error {
	if jsonOutput || w != os.Stdout {
		fmt.Fprint(w, content)
		return nil
	}
	return PageOutput(title, content, theme)
}

// TerminalWidth returns the stdout width, or fallback when stdout is not a
// terminal.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return min(w, DefaultMaxWidth)
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
