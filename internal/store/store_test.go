package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		AttemptID: "a1", Mode: "test", Action: "start", Title: "Algebra",
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}
	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID: "a1", QuestionID: "q1", AnswerKind: "mcq",
		Response: "1", Checked: true, Correct: true, TimeSpentSecs: 12,
	})
	if err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	err = repo.AppendAPIRequest(ctx, APIRequestEventData{
		Method: "POST", Endpoint: "/tests/tok/answers", Status: 200,
		LatencyMs: 40, Success: true,
	})
	if err != nil {
		t.Fatalf("append api request event: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}
	re, err := s.Client().APIRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query api request event: %v", err)
	}

	if se.Sequence != 1 || ae.Sequence != 2 || re.Sequence != 3 {
		t.Errorf("sequences = %d, %d, %d, want 1, 2, 3",
			se.Sequence, ae.Sequence, re.Sequence)
	}
}

func TestBestEffortFailures(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []APIRequestEventData{
		{Method: "PUT", Endpoint: "/tests/tok/state", Success: false, BestEffort: true, ErrorMessage: "unavailable"},
		{Method: "POST", Endpoint: "/tests/tok/flags", Success: true, BestEffort: true},
		{Method: "POST", Endpoint: "/tests/tok/answers", Status: 500, Success: false},
	}
	for _, e := range events {
		if err := repo.AppendAPIRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.BestEffortFailures(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("BestEffortFailures = %d, want 1", n)
	}
}

func TestResultSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	results := []*Result{
		{AttemptID: "a1", Mode: "test", Title: "Algebra Unit Test", ScorePercentage: 80, QuestionsCorrect: 8, TotalQuestions: 10, TimeSpentSecs: 900, TakenAt: base},
		{AttemptID: "a2", Mode: "practice", Title: "Fractions Practice", ScorePercentage: 60, QuestionsCorrect: 3, TotalQuestions: 5, AbilityStart: 0.3, AbilityEnd: 0.45, TakenAt: base.Add(time.Hour)},
	}
	for _, r := range results {
		if err := repo.Save(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.AttemptID, err)
		}
	}

	got, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].AttemptID != "a2" {
		t.Errorf("got[0].AttemptID = %s, want a2", got[0].AttemptID)
	}
	if got[0].AbilityEnd != 0.45 {
		t.Errorf("AbilityEnd = %v, want 0.45", got[0].AbilityEnd)
	}

	limited, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited len = %d, want 1", len(limited))
	}
}

func TestResultDuplicateAttemptRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	res := &Result{AttemptID: "a1", Mode: "test", Title: "T", ScorePercentage: 50, QuestionsCorrect: 1, TotalQuestions: 2, TakenAt: time.Now()}
	if err := repo.Save(ctx, res); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, res); err == nil {
		t.Error("expected duplicate attempt id to be rejected")
	}
}
