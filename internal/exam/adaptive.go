package exam

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
)

// Adaptive drives an open-ended practice session. The server's ability
// estimator owns question selection: every question after the first
// arrives inside the previous check response, and the client never
// requests one on its own. Like Regular, this controller performs the
// remote calls and returns values; State mutation happens through the
// named transitions.
type Adaptive struct {
	api api.PracticeAPI
	log zerolog.Logger
}

// NewAdaptive creates an adaptive-mode controller.
func NewAdaptive(client api.PracticeAPI, log zerolog.Logger) *Adaptive {
	return &Adaptive{api: client, log: log}
}

// StartOutcome carries everything needed to begin an adaptive session.
type StartOutcome struct {
	SessionID string
	First     Question
	Ability   float64
}

// StartPractice creates a session for the given skills and starts it,
// returning the session id, the first question, and the starting
// ability estimate. questionCount of zero asks for an unbounded
// session.
func (a *Adaptive) StartPractice(ctx context.Context, skillIDs []string, questionCount int) (*StartOutcome, error) {
	sess, err := a.api.CreateSession(ctx, skillIDs, questionCount)
	if err != nil {
		return nil, fmt.Errorf("create practice session: %w", err)
	}
	start, err := a.api.StartSession(ctx, sess.SessionID)
	if err != nil {
		return nil, fmt.Errorf("start practice session: %w", err)
	}
	return &StartOutcome{
		SessionID: sess.SessionID,
		First:     QuestionFromAPI(start.CurrentQuestion),
		Ability:   start.CurrentAbility,
	}, nil
}

// CheckOutcome is one adaptive check exchange, ready to be applied via
// State.ApplyPracticeCheck.
type CheckOutcome struct {
	Result   CheckedResult
	Ability  float64
	Next     *Question
	Complete bool
}

// Check submits one practice answer. The response resolves correctness,
// updates the ability estimate, and delivers the next question in the
// same exchange, so no separate fetch ever follows a check.
func (a *Adaptive) Check(ctx context.Context, sessionID string, q Question, ans Answer, timeSpentSeconds int) (*CheckOutcome, error) {
	res, err := a.api.SubmitPracticeAnswer(ctx, sessionID, payloadFor(q, ans, timeSpentSeconds))
	if err != nil {
		return nil, fmt.Errorf("check practice answer: %w", err)
	}
	out := &CheckOutcome{
		Result: CheckedResult{
			Correct:        res.IsCorrect,
			CorrectIndex:   -1,
			CorrectAnswers: res.CorrectAnswers,
			Explanation:    res.ExplanationHTML,
		},
		Ability:  res.AbilityAfter,
		Complete: res.SessionComplete,
	}
	if res.CorrectIndex != nil {
		out.Result.CorrectIndex = *res.CorrectIndex
	}
	if res.NextQuestion != nil && !res.SessionComplete {
		q := QuestionFromAPI(*res.NextQuestion)
		out.Next = &q
	}
	return out, nil
}

// Complete finalizes the session and returns the summary.
func (a *Adaptive) Complete(ctx context.Context, sessionID string) (*api.PracticeResult, error) {
	res, err := a.api.CompleteSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("complete practice session: %w", err)
	}
	return res, nil
}
