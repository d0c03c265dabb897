package exam

import (
	"github.com/abhisek/prepdeck/internal/api"
)

// Summary is the end-of-session result shown on the summary screen and
// saved into local history.
type Summary struct {
	Mode             Mode
	Title            string
	ScorePercentage  float64
	QuestionsCorrect int
	TotalQuestions   int
	TimeSpentSeconds int
	ByTimer          bool

	// Adaptive only.
	AbilityStart  float64
	AbilityEnd    float64
	SkillProgress map[string]float64
}

// SummaryFromSubmit builds the summary for a submitted regular test.
func SummaryFromSubmit(s *State, res api.SubmitResult) Summary {
	return Summary{
		Mode:             ModeRegular,
		Title:            s.Title,
		ScorePercentage:  res.ScorePercentage,
		QuestionsCorrect: res.QuestionsCorrect,
		TotalQuestions:   res.TotalQuestions,
		TimeSpentSeconds: res.TimeSpentSeconds,
		ByTimer:          s.SubmittedByTimer,
	}
}

// SummaryFromPractice builds the summary for a completed adaptive
// session, including the ability trajectory.
func SummaryFromPractice(s *State, res api.PracticeResult) Summary {
	return Summary{
		Mode:             ModeAdaptive,
		Title:            s.Title,
		ScorePercentage:  res.ScorePercentage,
		QuestionsCorrect: res.QuestionsCorrect,
		TotalQuestions:   res.TotalQuestions,
		AbilityStart:     s.AbilityStart,
		AbilityEnd:       s.Ability,
		SkillProgress:    res.SkillProgress,
	}
}
