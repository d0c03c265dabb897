package test

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

func (s *TestScreen) View(width, height int) string {
	if s.state.Phase == exam.PhaseSubmitting {
		return "\n\n" + theme.Subtitle.Width(width).Render("Submitting your test...")
	}
	if s.confirm {
		return s.viewConfirm(width)
	}
	return s.viewQuestion(width)
}

func (s *TestScreen) viewConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Submit this test?"))
	b.WriteString("\n\n")

	unanswered := s.state.UnansweredCount()
	line := "Every question has an answer."
	if unanswered == 1 {
		line = "1 question has no answer yet."
	} else if unanswered > 1 {
		line = fmt.Sprintf("%d questions have no answer yet.", unanswered)
	}
	b.WriteString(theme.Subtitle.Width(width).Render(line))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Once submitted, answers can no longer be changed."))
	return b.String()
}

func (s *TestScreen) viewQuestion(width int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Position line with navigator grid.
	b.WriteString(fmt.Sprintf("  Question %d of %d", s.state.Current+1, len(s.state.Questions)))
	if s.state.IsMarked(q.ID) {
		b.WriteString("  " + theme.Flagged.Render("⚑ marked"))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.navigator().View()))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Render(s.notice))
		b.WriteString("\n\n")
	}

	if q.Passage != "" {
		passage := lipgloss.NewStyle().
			Width(min(width-8, 76)).
			Foreground(theme.TextDim).
			Render(q.Passage)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(passage)))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	if q.Kind == exam.AnswerMCQ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	} else {
		answerLine := "Answer: " + s.input.View()
		if res, ok := s.state.Checked[q.ID]; ok {
			ans := s.state.Answers[q.ID]
			answerLine = "Your answer: " + ans.Text
			if !res.Correct && len(res.CorrectAnswers) > 0 {
				answerLine += "   " + theme.Hint.Render("accepted: "+strings.Join(res.CorrectAnswers, ", "))
			}
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answerLine))
	}

	if res, ok := s.state.Checked[q.ID]; ok {
		b.WriteString("\n\n")
		b.WriteString(s.viewVerdict(width, res))
	}

	if s.checking {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Checking..."))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(s.errMsg))
	}

	return b.String()
}

func (s *TestScreen) viewVerdict(width int, res *exam.CheckedResult) string {
	var b strings.Builder
	if res.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
	}
	if res.Explanation != "" {
		b.WriteString("\n\n")
		expl := lipgloss.NewStyle().
			Width(min(width-8, 76)).
			Foreground(theme.TextDim).
			Render(res.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expl))
	}
	return b.String()
}

// navigator builds the status grid from state.
func (s *TestScreen) navigator() components.Navigator {
	cells := make([]components.NavCell, len(s.state.Questions))
	for i := range s.state.Questions {
		id := s.state.Questions[i].ID
		cell := components.NavCell{
			Answered: s.state.IsAnswered(id),
			Marked:   s.state.IsMarked(id),
		}
		if res, ok := s.state.Checked[id]; ok {
			cell.Checked = true
			cell.Correct = res.Correct
		}
		cells[i] = cell
	}
	return components.NewNavigator(cells, s.state.Current, 10)
}

// choiceLabel names a choice index the way the selector displays it.
func choiceLabel(i int) string {
	labels := "ABCDE"
	if i >= 0 && i < len(labels) {
		return string(labels[i])
	}
	return fmt.Sprintf("#%d", i)
}
