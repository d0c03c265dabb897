package intro

import (
	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
)

// configMsg carries the fetched test configuration.
type configMsg struct {
	Config *api.TestConfig
	Err    error
}

// authDoneMsg carries the outcome of a login or guest registration.
type authDoneMsg struct {
	Token string
	Err   error
}

// startedMsg carries everything needed to enter the attempt: the start
// result, the ordered questions, and the restored snapshot (nil when
// starting fresh or when the best-effort restore failed).
type startedMsg struct {
	Start      *api.StartResult
	Questions  []exam.Question
	Snapshot   *exam.SavedSnapshot
	RestoreErr error
	Err        error
}
