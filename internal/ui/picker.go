package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodctl/internal/mood"
)

// ErrPickerCancelled is returned when the user quits the picker without
// choosing.
var ErrPickerCancelled = errors.New("selection cancelled")

// moodItem implements list.Item for a mood.
type moodItem struct {
	mood mood.Mood
}

func (i moodItem) FilterValue() string { return string(i.mood) }

// moodDelegate renders one mood per line with a cursor marker.
type moodDelegate struct {
	theme Theme
}

func (d moodDelegate) Height() int                             { return 1 }
func (d moodDelegate) Spacing() int                            { return 0 }
func (d moodDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d moodDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(moodItem)
	if !ok {
		return
	}
	line := "  " + it.mood.Label()
	if index == m.Index() {
		line = d.theme.MoodStyle(it.mood).Bold(true).Render("> " + it.mood.Label())
	}
	fmt.Fprint(w, line)
}

type moodPickerModel struct {
	list     list.Model
	selected mood.Mood
	quitting bool
}

func newMoodPicker(theme Theme, initial mood.Mood) moodPickerModel {
	items := make([]list.Item, len(mood.All))
	for i, m := range mood.All {
		items[i] = moodItem{mood: m}
	}
	l := list.New(items, moodDelegate{theme: theme}, 30, len(items)+6)
	l.Title = "How are you feeling today?"
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	if initial.Valid() {
		l.Select(initial.Index())
	}
	return moodPickerModel{list: l}
}

func (m moodPickerModel) Init() tea.Cmd {
	return nil
}

func (m moodPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(moodItem); ok {
				m.selected = it.mood
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m moodPickerModel) View() string {
	if m.selected != "" || m.quitting {
		return ""
	}
	return strings.TrimRight(m.list.View(), "\n") + "\n"
}

// PickMood shows an interactive list of moods and returns the chosen one.
// ErrPickerCancelled is returned when the user quits.
func PickMood(theme Theme) (mood.Mood, error) {
	result, err := tea.NewProgram(newMoodPicker(theme, "")).Run()
	if err != nil {
		return "", err
	}
	m := result.(moodPickerModel)
	if m.selected == "" {
		return "", ErrPickerCancelled
	}
	return m.selected, nil
}
