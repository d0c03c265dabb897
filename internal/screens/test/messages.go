package test

import (
	"time"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
)

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// checkedMsg carries the correctness disclosure for one question. The
// question id rides along so a stale completion can be dropped after
// navigation.
type checkedMsg struct {
	QuestionID string
	Result     exam.CheckedResult
	Err        error
}

// recordedMsg confirms a no-reveal answer was stored server-side.
type recordedMsg struct {
	QuestionID string
	Err        error
}

// submittedMsg carries the outcome of the final submit.
type submittedMsg struct {
	Result *api.SubmitResult
	Err    error
}
