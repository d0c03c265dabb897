package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// NavCell is one question's status in the navigator grid.
type NavCell struct {
	Answered bool
	Checked  bool
	Correct  bool
	Marked   bool
}

// Navigator renders the question-position grid shown during a test:
// the current cell is highlighted, answered cells filled, checked
// cells colored by verdict, marked cells carry the flag accent.
type Navigator struct {
	Cells   []NavCell
	Current int
	PerRow  int
}

// NewNavigator creates a navigator; perRow of 0 defaults to 10.
func NewNavigator(cells []NavCell, current, perRow int) Navigator {
	if perRow <= 0 {
		perRow = 10
	}
	return Navigator{Cells: cells, Current: current, PerRow: perRow}
}

// View renders the grid.
func (n Navigator) View() string {
	var b strings.Builder
	for i, c := range n.Cells {
		cell := fmt.Sprintf(" %2d ", i+1)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case c.Checked && c.Correct:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case c.Checked:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case c.Answered:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if c.Marked {
			style = style.Underline(true)
		}
		if i == n.Current {
			style = style.Reverse(true).Bold(true)
		}

		b.WriteString(style.Render(cell))
		if (i+1)%n.PerRow == 0 && i != len(n.Cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
