package practice

import (
	"time"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
)

// startedMsg carries a created-and-started adaptive session.
type startedMsg struct {
	Outcome *exam.StartOutcome
	Err     error
}

// checkedMsg carries one adaptive check exchange.
type checkedMsg struct {
	QuestionID string
	Outcome    *exam.CheckOutcome
	Err        error
}

// completedMsg carries the final session summary.
type completedMsg struct {
	Result *api.PracticeResult
	Err    error
}

// tickMsg updates the elapsed-time display.
type tickMsg time.Time
