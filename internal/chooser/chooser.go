// Package chooser asks the user which display mode to launch.
package chooser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberlight/cigbat/internal/models"
)

// ErrCancelled is returned when the user leaves without choosing.
var ErrCancelled = errors.New("mode selection cancelled")

// Model is the chooser's bubbletea model.
type Model struct {
	modes     []models.DisplayMode
	cursor    int
	chosen    models.DisplayMode
	cancelled bool
	help      help.Model
}

// NewModel creates a chooser with the cursor on initial.
func NewModel(initial models.DisplayMode) Model {
	m := Model{
		modes: models.DisplayModes,
		help:  help.New(),
	}
	for i, mode := range m.modes {
		if mode == initial {
			m.cursor = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.modes)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			m.chosen = m.modes[m.cursor]
			return m, tea.Quit
		case key.Matches(msg, keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cigarette Battery"))
	b.WriteString("\n")
	for i, mode := range m.modes {
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + mode.Title()))
		} else {
			b.WriteString(itemStyle.Render("  " + mode.Title()))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return frameStyle.Render(b.String())
}

// Result returns the chosen mode, or ErrCancelled.
func (m Model) Result() (models.DisplayMode, error) {
	if m.cancelled || m.chosen == "" {
		return "", ErrCancelled
	}
	return m.chosen, nil
}

// Choose runs the chooser on the terminal and returns the selected mode.
func Choose(initial models.DisplayMode) (models.DisplayMode, error) {
	final, err := tea.NewProgram(NewModel(initial)).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run mode chooser: %w", err)
	}
	return final.(Model).Result()
}
