package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch s.state.Phase {
	case exam.PhaseLoading:
		return "\n\n" + theme.Subtitle.Width(width).Render("Starting your practice session...")
	case exam.PhaseSubmitting:
		return "\n\n" + theme.Subtitle.Width(width).Render("Wrapping up...")
	case exam.PhaseError:
		var b strings.Builder
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Press Esc to go back."))
		return b.String()
	}
	if s.confirm {
		return s.viewConfirm(width)
	}
	return s.viewQuestion(width)
}

func (s *PracticeScreen) viewConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("End this practice session?"))
	b.WriteString("\n\n")
	checked := s.state.CheckedCount()
	line := "You have not checked any answers yet."
	if checked == 1 {
		line = "You have checked 1 answer so far."
	} else if checked > 1 {
		line = fmt.Sprintf("You have checked %d answers so far.", checked)
	}
	b.WriteString(theme.Subtitle.Width(width).Render(line))
	return b.String()
}

func (s *PracticeScreen) viewQuestion(width int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	pos := fmt.Sprintf("  Question %d", s.state.Current+1)
	if s.state.Quota > 0 {
		pos = fmt.Sprintf("  Question %d of %d", s.state.Current+1, s.state.Quota)
	}
	b.WriteString(pos)
	b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("ability %.2f", s.state.Ability)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

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

func (s *PracticeScreen) viewVerdict(width int, res *exam.CheckedResult) string {
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

	b.WriteString("\n\n")
	hint := "Enter for the next question"
	if s.state.ServerComplete || s.state.QuotaReached() || s.state.PendingNext == nil {
		hint = "Enter to finish the session"
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(hint))
	return b.String()
}

func statusQuota(checked, quota int) string {
	return fmt.Sprintf("%d/%d", checked, quota)
}

// choiceLabel names a choice index the way the selector displays it.
func choiceLabel(i int) string {
	labels := "ABCDE"
	if i >= 0 && i < len(labels) {
		return string(labels[i])
	}
	return fmt.Sprintf("#%d", i)
}
