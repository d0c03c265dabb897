package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// MultiChoice is the answer selector for multiple-choice questions.
// Until the answer is checked it is a plain selector; after Reveal it
// locks and colors the correct and chosen options.
type MultiChoice struct {
	Options      []string
	Selected     int
	ChosenIndex  int
	CorrectIndex int
	Locked       bool
}

// NewMultiChoice creates a selector over the given options. chosen
// pre-selects a previously recorded answer (-1 for none).
func NewMultiChoice(options []string, chosen int) MultiChoice {
	selected := 0
	if chosen >= 0 && chosen < len(options) {
		selected = chosen
	}
	return MultiChoice{
		Options:      options,
		Selected:     selected,
		ChosenIndex:  chosen,
		CorrectIndex: -1,
	}
}

// Reveal locks the selector and discloses the correct option.
// correctIndex may be -1 when the server withheld it.
func (m *MultiChoice) Reveal(chosen, correctIndex int) {
	m.Locked = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correctIndex
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. A locked selector ignores input.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", " ":
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the selector.
func (m MultiChoice) View() string {
	labels := []string{"A", "B", "C", "D", "E"}

	var s string
	for i, opt := range m.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}
		marker := " "
		if i == m.ChosenIndex {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case m.Locked && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Locked && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		case i == m.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
