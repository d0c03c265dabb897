package store

import (
	"context"
	"time"
)

// SessionEventData captures one attempt lifecycle event.
type SessionEventData struct {
	AttemptID         string
	Mode              string // "test" or "practice"
	Action            string // "start", "resume", "submit", "complete", "fail"
	Title             string
	QuestionsAnswered int
	ByTimer           bool
	Detail            string
}

// AnswerEventData captures one answer exchange.
type AnswerEventData struct {
	AttemptID     string
	QuestionID    string
	AnswerKind    string // "mcq" or "spr"
	Response      string
	Checked       bool
	Correct       bool
	TimeSpentSecs int
}

// APIRequestEventData captures one platform API exchange.
type APIRequestEventData struct {
	Method       string
	Endpoint     string
	Status       int
	LatencyMs    int64
	Success      bool
	BestEffort   bool
	ErrorMessage string
}

// EventRepo provides append access to the local event log.
type EventRepo interface {
	// AppendSessionEvent records an attempt lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an answer exchange.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendAPIRequest records a platform API exchange.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error

	// BestEffortFailures counts swallowed failures of fire-and-forget
	// calls, so degraded persistence is visible after the fact.
	BestEffortFailures(ctx context.Context) (int, error)
}

// Result is one completed attempt in local history.
type Result struct {
	ID               int
	AttemptID        string
	Mode             string
	Title            string
	ScorePercentage  float64
	QuestionsCorrect int
	TotalQuestions   int
	TimeSpentSecs    int
	ByTimer          bool
	AbilityStart     float64
	AbilityEnd       float64
	TakenAt          time.Time
}

// ResultRepo manages the local history of completed attempts.
type ResultRepo interface {
	// Save stores a completed attempt. Saving the same attempt id
	// twice is an error; attempts complete once.
	Save(ctx context.Context, res *Result) error

	// List returns results newest first, up to limit (0 = all).
	List(ctx context.Context, limit int) ([]*Result, error)
}
