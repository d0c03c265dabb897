package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

const pageSize = 12

// loadedMsg carries the local result history.
type loadedMsg struct {
	Results []*store.Result
	Err     error
}

// HistoryScreen lists completed attempts from the local store, newest
// first.
type HistoryScreen struct {
	repo    store.ResultRepo
	results []*store.Result
	loaded  bool
	errMsg  string
	offset  int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(repo store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		results, err := repo.List(context.Background(), 0)
		return loadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Could not read local history."
			return s, nil
		}
		s.results = msg.Results
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset+pageSize < len(s.results) {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Past Results"))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Subtitle.Width(width).Render("Loading..."))
		return b.String()
	case s.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(s.errMsg))
		return b.String()
	case len(s.results) == 0:
		b.WriteString(theme.Subtitle.Width(width).Render("No completed attempts yet."))
		return b.String()
	}

	end := min(s.offset+pageSize, len(s.results))
	var rows strings.Builder
	for _, r := range s.results[s.offset:end] {
		rows.WriteString(renderRow(r))
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(rows.String())))

	if len(s.results) > pageSize {
		b.WriteString("\n")
		pos := fmt.Sprintf("%d-%d of %d", s.offset+1, end, len(s.results))
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(pos))
	}
	return b.String()
}

func renderRow(r *store.Result) string {
	title := r.Title
	if title == "" {
		title = r.Mode
	}
	if len(title) > 32 {
		title = title[:29] + "..."
	}

	line := fmt.Sprintf("%s  %-32s  %3.0f%%  %2d/%-2d",
		r.TakenAt.Format("Jan 02 15:04"), title,
		r.ScorePercentage, r.QuestionsCorrect, r.TotalQuestions)

	if r.Mode == "practice" {
		line += fmt.Sprintf("  ability %.2f", r.AbilityEnd)
	} else if r.TimeSpentSecs > 0 {
		line += "  " + exam.FormatClock(r.TimeSpentSecs)
	}
	if r.ByTimer {
		line += "  " + theme.Flagged.Render("timed out")
	}
	return line
}
