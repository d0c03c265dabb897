package exam

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
)

func scriptedTest() *api.Mock {
	return &api.Mock{
		GetConfigFn: func(ctx context.Context, token string) (*api.TestConfig, error) {
			return &api.TestConfig{
				Title:            "Algebra Unit Test",
				QuestionCount:    3,
				TimeLimitMinutes: 30,
				RevealAnswers:    true,
			}, nil
		},
		StartFn: func(ctx context.Context, token string, guest *api.GuestInfo) (*api.StartResult, error) {
			return &api.StartResult{TimeLimitMinutes: 30}, nil
		},
		GetQuestionsFn: func(ctx context.Context, token string) ([]api.Question, error) {
			return []api.Question{
				{QuestionID: "q3", Order: 3, AnswerType: api.AnswerTypeMCQ, Choices: []api.Choice{{Content: "5"}, {Content: "6"}}},
				{QuestionID: "q1", Order: 1, AnswerType: api.AnswerTypeMCQ, Choices: []api.Choice{{Content: "1"}, {Content: "2"}}},
				{QuestionID: "q2", Order: 2, AnswerType: api.AnswerTypeSPR},
			}, nil
		},
		SubmitAnswerFn: func(ctx context.Context, token string, payload api.AnswerPayload) (*api.CheckResult, error) {
			idx := 1
			return &api.CheckResult{
				IsCorrect:    payload.Index != nil && *payload.Index == 1,
				CorrectIndex: &idx,
			}, nil
		},
		SubmitFn: func(ctx context.Context, token string) (*api.SubmitResult, error) {
			return &api.SubmitResult{ScorePercentage: 66.7, QuestionsCorrect: 2, TotalQuestions: 3, TimeSpentSeconds: 540}, nil
		},
	}
}

func TestRegular_QuestionsSortedByServerOrder(t *testing.T) {
	r := NewRegular(scriptedTest(), zerolog.Nop())

	qs, err := r.Questions(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("len = %d, want 3", len(qs))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if qs[i].ID != want {
			t.Errorf("qs[%d].ID = %s, want %s", i, qs[i].ID, want)
		}
	}
	if qs[0].Kind != AnswerMCQ || qs[1].Kind != AnswerSPR {
		t.Error("expected answer kinds mapped from the wire")
	}
}

func TestRegular_CheckSingleExchange(t *testing.T) {
	mock := scriptedTest()
	r := NewRegular(mock, zerolog.Nop())
	s := testInProgress()

	q := *s.CurrentQuestion()
	s.SelectAnswer(q.ID, Answer{Kind: AnswerMCQ, Index: 1})

	res, err := r.Check(context.Background(), s.Token, q, s.Answers[q.ID], 12)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !s.ApplyCheck(q.ID, res) {
		t.Fatal("expected check applied")
	}
	if !res.Correct || res.CorrectIndex != 1 {
		t.Errorf("res = %+v, want correct with index 1", res)
	}
	if mock.Calls("SubmitAnswer") != 1 {
		t.Errorf("SubmitAnswer calls = %d, want 1", mock.Calls("SubmitAnswer"))
	}
}

func TestRegular_RepeatCheckDoesNotOverwrite(t *testing.T) {
	mock := scriptedTest()
	r := NewRegular(mock, zerolog.Nop())
	s := testInProgress()

	q := *s.CurrentQuestion()
	s.SelectAnswer(q.ID, Answer{Kind: AnswerMCQ, Index: 1})

	res, _ := r.Check(context.Background(), s.Token, q, s.Answers[q.ID], 12)
	s.ApplyCheck(q.ID, res)

	// A duplicate completion for the same question arrives late.
	late := CheckedResult{Correct: false, CorrectIndex: 0}
	if s.ApplyCheck(q.ID, late) {
		t.Error("expected late duplicate to be rejected")
	}
	if !s.Checked[q.ID].Correct {
		t.Error("expected first disclosure preserved")
	}
}

func TestRegular_FireAndForgetFailurePreservesLocalState(t *testing.T) {
	mock := scriptedTest() // UpdateState and ToggleFlag default to ErrUnavailable
	r := NewRegular(mock, zerolog.Nop())
	s := testInProgress()

	s.ToggleMark("q2")
	r.SaveFlag(context.Background(), s.Token, "q2")
	if !s.IsMarked("q2") {
		t.Error("expected local mark to survive a failed save")
	}

	s.Next(time.Now())
	r.SavePosition(context.Background(), s.Token, s.Current)
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1 after failed position save", s.Current)
	}

	if mock.Calls("UpdateState") != 1 || mock.Calls("ToggleFlag") != 1 {
		t.Error("expected exactly one attempt per fire-and-forget call")
	}
}

func TestRegular_SubmitBuildsSummary(t *testing.T) {
	r := NewRegular(scriptedTest(), zerolog.Nop())
	s := testInProgress()

	if !s.BeginSubmit(true) {
		t.Fatal("expected submit to begin")
	}
	res, err := r.Submit(context.Background(), s.Token)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	s.FinishSubmit()

	sum := SummaryFromSubmit(s, *res)
	if sum.Mode != ModeRegular {
		t.Errorf("Mode = %v, want regular", sum.Mode)
	}
	if sum.QuestionsCorrect != 2 || sum.TotalQuestions != 3 {
		t.Errorf("summary = %+v, want 2/3", sum)
	}
	if !sum.ByTimer {
		t.Error("expected ByTimer carried into summary")
	}
}

func TestRegular_SubmitFailureRecoverable(t *testing.T) {
	mock := scriptedTest()
	mock.SubmitFn = func(ctx context.Context, token string) (*api.SubmitResult, error) {
		return nil, &api.ErrUnavailable{}
	}
	r := NewRegular(mock, zerolog.Nop())
	s := testInProgress()
	s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 1})

	s.BeginSubmit(false)
	if _, err := r.Submit(context.Background(), s.Token); err == nil {
		t.Fatal("expected submit error")
	}
	s.FailSubmit("submit failed")

	if s.Phase != PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress for retry", s.Phase)
	}
	if !s.IsAnswered("q1") {
		t.Error("expected answers preserved across failed submit")
	}
	if !s.BeginSubmit(false) {
		t.Error("expected retry submit to be possible")
	}
}

func TestRegular_ConfigAndStart(t *testing.T) {
	mock := scriptedTest()
	r := NewRegular(mock, zerolog.Nop())

	cfg, err := r.Config(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Title != "Algebra Unit Test" || !cfg.RevealAnswers {
		t.Errorf("cfg = %+v, want titled reveal-enabled test", cfg)
	}

	start, err := r.Start(context.Background(), "tok", &api.GuestInfo{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if start.TimeLimitMinutes != 30 {
		t.Errorf("TimeLimitMinutes = %d, want 30", start.TimeLimitMinutes)
	}
}
