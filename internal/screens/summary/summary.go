package summary

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// savedMsg reports the outcome of persisting the result locally.
type savedMsg struct{ Err error }

// SummaryScreen shows the end-of-session result and saves it into the
// local history. Saving is best effort: the score on screen is the
// authoritative server answer either way.
type SummaryScreen struct {
	sum       exam.Summary
	attemptID string
	results   store.ResultRepo
	log       zerolog.Logger
	saveNote  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for a completed attempt.
func New(sum exam.Summary, attemptID string, results store.ResultRepo, log zerolog.Logger) *SummaryScreen {
	return &SummaryScreen{
		sum:       sum,
		attemptID: attemptID,
		results:   results,
		log:       log,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	sum := s.sum
	attemptID := s.attemptID
	results := s.results
	return func() tea.Msg {
		mode := "test"
		if sum.Mode == exam.ModeAdaptive {
			mode = "practice"
		}
		err := results.Save(context.Background(), &store.Result{
			AttemptID:        attemptID,
			Mode:             mode,
			Title:            sum.Title,
			ScorePercentage:  sum.ScorePercentage,
			QuestionsCorrect: sum.QuestionsCorrect,
			TotalQuestions:   sum.TotalQuestions,
			TimeSpentSecs:    sum.TimeSpentSeconds,
			ByTimer:          sum.ByTimer,
			AbilityStart:     sum.AbilityStart,
			AbilityEnd:       sum.AbilityEnd,
			TakenAt:          time.Now(),
		})
		return savedMsg{Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.saveNote = "Result could not be saved to local history."
			s.log.Warn().Err(msg.Err).Str("attempt", s.attemptID).Msg("result save failed")
		}
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	heading := "Test complete"
	if s.sum.Mode == exam.ModeAdaptive {
		heading = "Practice complete"
	}
	b.WriteString(theme.Title.Width(width).Render(heading))
	if s.sum.ByTimer {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Time expired. Your answers were submitted automatically."))
	}
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Score", s.sum.ScorePercentage/100, true, min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(fmt.Sprintf("Correct      %d of %d\n", s.sum.QuestionsCorrect, s.sum.TotalQuestions))
	if s.sum.TimeSpentSeconds > 0 {
		card.WriteString("Time         " + exam.FormatClock(s.sum.TimeSpentSeconds) + "\n")
	}
	if s.sum.Mode == exam.ModeAdaptive {
		card.WriteString(fmt.Sprintf("Ability      %.2f → %.2f\n", s.sum.AbilityStart, s.sum.AbilityEnd))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card.String())))

	if len(s.sum.SkillProgress) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Skill progress"))
		b.WriteString("\n")
		for _, skill := range sortedSkills(s.sum.SkillProgress) {
			bar := components.NewProgressBar(skill, s.sum.SkillProgress[skill], true, min(width-8, 48))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
	}

	if s.saveNote != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.saveNote))
	}
	return b.String()
}

func sortedSkills(progress map[string]float64) []string {
	skills := make([]string, 0, len(progress))
	for s := range progress {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
