package exam

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
)

// scriptedPractice wires a Mock that serves questions p1, p2, ... and
// marks the session complete after `quota` checks.
func scriptedPractice(quota int) *api.Mock {
	served := 0
	return &api.Mock{
		CreateSessionFn: func(ctx context.Context, skillIDs []string, questionCount int) (*api.PracticeSession, error) {
			return &api.PracticeSession{SessionID: "sess-1", CurrentAbility: 0.3}, nil
		},
		StartSessionFn: func(ctx context.Context, sessionID string) (*api.PracticeStart, error) {
			served++
			return &api.PracticeStart{
				CurrentQuestion: api.Question{QuestionID: "p1", Order: 1, AnswerType: api.AnswerTypeMCQ},
				CurrentAbility:  0.3,
			}, nil
		},
		SubmitPracticeAnswerFn: func(ctx context.Context, sessionID string, payload api.AnswerPayload) (*api.PracticeCheck, error) {
			res := &api.PracticeCheck{
				IsCorrect:    true,
				AbilityAfter: 0.3 + 0.1*float64(served),
			}
			if served >= quota {
				res.SessionComplete = true
				return res, nil
			}
			served++
			res.NextQuestion = &api.Question{
				QuestionID: fmt.Sprintf("p%d", served),
				Order:      served,
				AnswerType: api.AnswerTypeMCQ,
			}
			return res, nil
		},
		CompleteSessionFn: func(ctx context.Context, sessionID string) (*api.PracticeResult, error) {
			return &api.PracticeResult{
				ScorePercentage:  100,
				QuestionsCorrect: quota,
				TotalQuestions:   quota,
			}, nil
		},
	}
}

func startAdaptive(t *testing.T, mock *api.Mock) (*Adaptive, *State) {
	t.Helper()
	a := NewAdaptive(mock, zerolog.Nop())

	out, err := a.StartPractice(context.Background(), []string{"fractions"}, 0)
	if err != nil {
		t.Fatalf("StartPractice: %v", err)
	}

	s := NewState(ModeAdaptive, "attempt-1", out.SessionID)
	s.Ability = out.Ability
	s.AbilityStart = out.Ability
	s.EnterIntro("Practice")
	s.Begin([]Question{out.First}, time.Now())
	return a, s
}

func TestAdaptive_StartServesFirstQuestion(t *testing.T) {
	mock := scriptedPractice(3)
	_, s := startAdaptive(t, mock)

	if got := s.CurrentQuestion(); got == nil || got.ID != "p1" {
		t.Fatalf("CurrentQuestion = %v, want p1", got)
	}
	if s.AbilityStart != 0.3 {
		t.Errorf("AbilityStart = %v, want 0.3", s.AbilityStart)
	}
	if mock.Calls("CreateSession") != 1 || mock.Calls("StartSession") != 1 {
		t.Error("expected exactly one create and one start call")
	}
}

func TestAdaptive_CheckDeliversNextInSameExchange(t *testing.T) {
	mock := scriptedPractice(3)
	a, s := startAdaptive(t, mock)

	q := *s.CurrentQuestion()
	s.SelectAnswer(q.ID, Answer{Kind: AnswerMCQ, Index: 0})

	out, err := a.Check(context.Background(), s.Token, q, s.Answers[q.ID], 10)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !s.ApplyPracticeCheck(q.ID, out.Result, out.Ability, out.Next, out.Complete) {
		t.Fatal("expected practice check applied")
	}
	if s.PendingNext == nil || s.PendingNext.ID != "p2" {
		t.Fatalf("PendingNext = %v, want p2", s.PendingNext)
	}

	if !s.AdvanceNext(time.Now()) {
		t.Fatal("expected AdvanceNext to succeed")
	}
	if got := s.CurrentQuestion(); got.ID != "p2" {
		t.Errorf("CurrentQuestion = %s, want p2", got.ID)
	}

	// One exchange per check: no fetch call exists to count beyond it.
	if mock.Calls("SubmitPracticeAnswer") != 1 {
		t.Errorf("SubmitPracticeAnswer calls = %d, want 1", mock.Calls("SubmitPracticeAnswer"))
	}
	if mock.Calls("StartSession") != 1 {
		t.Errorf("StartSession calls = %d, want 1 (no re-fetch)", mock.Calls("StartSession"))
	}
}

func TestAdaptive_QuotaEndsSessionWithoutExtraFetch(t *testing.T) {
	const quota = 5
	mock := scriptedPractice(quota)
	a, s := startAdaptive(t, mock)
	s.Quota = quota

	for {
		q := s.CurrentQuestion()
		s.SelectAnswer(q.ID, Answer{Kind: AnswerMCQ, Index: 0})

		out, err := a.Check(context.Background(), s.Token, *q, s.Answers[q.ID], 5)
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		s.ApplyPracticeCheck(q.ID, out.Result, out.Ability, out.Next, out.Complete)
		if !s.AdvanceNext(time.Now()) {
			break
		}
	}

	if len(s.Checked) != quota {
		t.Errorf("checked %d questions, want %d", len(s.Checked), quota)
	}
	if len(s.Questions) != quota {
		t.Errorf("sequence grew to %d questions, want %d", len(s.Questions), quota)
	}
	if mock.Calls("SubmitPracticeAnswer") != quota {
		t.Errorf("SubmitPracticeAnswer calls = %d, want %d", mock.Calls("SubmitPracticeAnswer"), quota)
	}

	res, err := a.Complete(context.Background(), s.Token)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.TotalQuestions != quota {
		t.Errorf("TotalQuestions = %d, want %d", res.TotalQuestions, quota)
	}
}

func TestAdaptive_ServerCompleteStopsAdvance(t *testing.T) {
	mock := scriptedPractice(1)
	a, s := startAdaptive(t, mock)

	q := *s.CurrentQuestion()
	s.SelectAnswer(q.ID, Answer{Kind: AnswerMCQ, Index: 0})

	out, err := a.Check(context.Background(), s.Token, q, s.Answers[q.ID], 5)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !out.Complete {
		t.Fatal("expected server-declared completion")
	}
	s.ApplyPracticeCheck(q.ID, out.Result, out.Ability, out.Next, out.Complete)

	if s.AdvanceNext(time.Now()) {
		t.Error("expected AdvanceNext to refuse after completion")
	}
	if !s.ServerComplete {
		t.Error("expected ServerComplete recorded")
	}
}

func TestAdaptive_AbilityTrajectory(t *testing.T) {
	mock := scriptedPractice(2)
	a, s := startAdaptive(t, mock)

	for {
		q := s.CurrentQuestion()
		s.SelectAnswer(q.ID, Answer{Kind: AnswerMCQ, Index: 0})
		out, err := a.Check(context.Background(), s.Token, *q, s.Answers[q.ID], 5)
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		s.ApplyPracticeCheck(q.ID, out.Result, out.Ability, out.Next, out.Complete)
		if !s.AdvanceNext(time.Now()) {
			break
		}
	}

	if s.Ability <= s.AbilityStart {
		t.Errorf("Ability = %v, want above start %v", s.Ability, s.AbilityStart)
	}

	sum := SummaryFromPractice(s, api.PracticeResult{ScorePercentage: 100, QuestionsCorrect: 2, TotalQuestions: 2})
	if sum.AbilityEnd <= sum.AbilityStart {
		t.Error("expected summary to carry the ability trajectory")
	}
}

func TestAdaptive_StartFailure(t *testing.T) {
	mock := &api.Mock{
		CreateSessionFn: func(ctx context.Context, skillIDs []string, questionCount int) (*api.PracticeSession, error) {
			return nil, &api.ErrUnavailable{}
		},
	}
	a := NewAdaptive(mock, zerolog.Nop())

	if _, err := a.StartPractice(context.Background(), []string{"fractions"}, 0); err == nil {
		t.Fatal("expected error from failed create")
	}
	if mock.Calls("StartSession") != 0 {
		t.Error("expected no start call after failed create")
	}
}
