package exam

import (
	"testing"
	"time"
)

func testQuestions() []Question {
	return []Question{
		{ID: "q1", Order: 1, Prompt: "What is 1+1?", Kind: AnswerMCQ, Choices: []string{"1", "2", "3", "4"}},
		{ID: "q2", Order: 2, Prompt: "Express 3/4 as a decimal.", Kind: AnswerSPR},
		{ID: "q3", Order: 3, Prompt: "What is 2*3?", Kind: AnswerMCQ, Choices: []string{"5", "6", "7", "8"}},
	}
}

func testInProgress() *State {
	s := NewState(ModeRegular, "attempt-1", "tok-abc")
	s.EnterIntro("Algebra Unit Test")
	s.Begin(testQuestions(), time.Now())
	return s
}

func TestPhaseFlow_LoadingToCompleted(t *testing.T) {
	s := NewState(ModeRegular, "a1", "tok")
	if s.Phase != PhaseLoading {
		t.Fatalf("Phase = %v, want loading", s.Phase)
	}

	s.EnterIntro("Test")
	if s.Phase != PhaseIntro {
		t.Fatalf("Phase = %v, want intro", s.Phase)
	}

	s.Begin(testQuestions(), time.Now())
	if s.Phase != PhaseInProgress {
		t.Fatalf("Phase = %v, want in-progress", s.Phase)
	}

	if !s.BeginSubmit(false) {
		t.Fatal("expected BeginSubmit to succeed from in-progress")
	}
	s.FinishSubmit()
	if s.Phase != PhaseCompleted {
		t.Errorf("Phase = %v, want completed", s.Phase)
	}
}

func TestPhaseFlow_AuthRequired(t *testing.T) {
	s := NewState(ModeRegular, "a1", "tok")
	s.RequireAuth()
	if s.Phase != PhaseAuthRequired {
		t.Fatalf("Phase = %v, want auth-required", s.Phase)
	}
	s.AuthResolved()
	if s.Phase != PhaseIntro {
		t.Errorf("Phase = %v, want intro after auth", s.Phase)
	}
}

func TestSelectAnswer_Upsert(t *testing.T) {
	s := testInProgress()

	if !s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 0}) {
		t.Fatal("expected first select to succeed")
	}
	if !s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 1}) {
		t.Fatal("expected re-select before check to succeed")
	}
	if s.Answers["q1"].Index != 1 {
		t.Errorf("Answers[q1].Index = %d, want 1", s.Answers["q1"].Index)
	}
}

func TestSelectAnswer_FrozenAfterCheck(t *testing.T) {
	s := testInProgress()
	s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 1})
	s.ApplyCheck("q1", CheckedResult{Correct: true, CorrectIndex: 1})

	if s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 2}) {
		t.Error("expected select on checked question to be rejected")
	}
	if s.Answers["q1"].Index != 1 {
		t.Errorf("Answers[q1].Index = %d, want unchanged 1", s.Answers["q1"].Index)
	}
}

func TestSelectAnswer_UnknownQuestion(t *testing.T) {
	s := testInProgress()
	if s.SelectAnswer("nope", Answer{Kind: AnswerMCQ, Index: 0}) {
		t.Error("expected select for unknown id to be rejected")
	}
}

func TestApplyCheck_Idempotent(t *testing.T) {
	s := testInProgress()
	s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 1})

	if !s.ApplyCheck("q1", CheckedResult{Correct: true, CorrectIndex: 1}) {
		t.Fatal("expected first apply to succeed")
	}
	if s.ApplyCheck("q1", CheckedResult{Correct: false, CorrectIndex: 0}) {
		t.Error("expected second apply to be rejected")
	}
	if !s.Checked["q1"].Correct {
		t.Error("expected original disclosure to survive a re-apply")
	}
}

func TestToggleMark(t *testing.T) {
	s := testInProgress()

	if !s.ToggleMark("q2") {
		t.Error("expected first toggle to mark")
	}
	if !s.IsMarked("q2") {
		t.Error("expected q2 marked")
	}
	if s.ToggleMark("q2") {
		t.Error("expected second toggle to unmark")
	}
	if s.IsMarked("q2") {
		t.Error("expected q2 unmarked")
	}
}

func TestNavigation_Clamped(t *testing.T) {
	s := testInProgress()
	now := time.Now()

	s.Prev(now)
	if s.Current != 0 {
		t.Errorf("Current = %d after Prev at start, want 0", s.Current)
	}

	s.GoTo(99, now)
	if s.Current != 2 {
		t.Errorf("Current = %d after GoTo(99), want 2", s.Current)
	}

	s.Next(now)
	if s.Current != 2 {
		t.Errorf("Current = %d after Next at end, want 2", s.Current)
	}
}

func TestNavigation_ResetsQuestionClock(t *testing.T) {
	s := testInProgress()
	earlier := time.Now().Add(-time.Minute)
	s.QuestionStart = earlier

	later := time.Now()
	s.Next(later)
	if !s.QuestionStart.Equal(later) {
		t.Error("expected QuestionStart reset on navigation")
	}

	// Same-index GoTo leaves the clock alone.
	s.QuestionStart = earlier
	s.GoTo(s.Current, later)
	if !s.QuestionStart.Equal(earlier) {
		t.Error("expected QuestionStart unchanged on no-op GoTo")
	}
}

func TestBeginSubmit_OnlyOnce(t *testing.T) {
	s := testInProgress()

	if !s.BeginSubmit(true) {
		t.Fatal("expected first BeginSubmit to succeed")
	}
	if s.BeginSubmit(true) {
		t.Error("expected second BeginSubmit to be rejected")
	}
	if !s.SubmittedByTimer {
		t.Error("expected SubmittedByTimer set")
	}
}

func TestBeginSubmit_StopsTimer(t *testing.T) {
	s := testInProgress()
	s.Timer = NewTimer(60, nil)
	s.Timer.Start()

	s.BeginSubmit(false)
	if s.Timer.Running() {
		t.Error("expected timer stopped on submit")
	}
}

func TestFailSubmit_RevertsWithoutTimerRestart(t *testing.T) {
	s := testInProgress()
	s.Timer = NewTimer(1, nil)
	s.Timer.Start()
	s.Timer.Tick() // expire

	s.BeginSubmit(true)
	s.FailSubmit("network down")

	if s.Phase != PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress after failed submit", s.Phase)
	}
	if s.Timer.Running() {
		t.Error("expected expired timer to stay inert after failed submit")
	}
	if s.ErrMsg != "network down" {
		t.Errorf("ErrMsg = %q, want failure message", s.ErrMsg)
	}
}

func TestApplyPracticeCheck_StaleQuestionRejected(t *testing.T) {
	s := testInProgress()
	s.Mode = ModeAdaptive

	if s.ApplyPracticeCheck("gone", CheckedResult{}, 0.4, nil, false) {
		t.Error("expected stale question id to be rejected")
	}
	if len(s.Checked) != 0 {
		t.Error("expected no disclosure recorded for stale id")
	}
}

func TestAdvanceNext_ConsumesPending(t *testing.T) {
	s := testInProgress()
	s.Mode = ModeAdaptive

	next := Question{ID: "q4", Order: 4, Kind: AnswerMCQ}
	s.ApplyPracticeCheck("q1", CheckedResult{Correct: true}, 0.5, &next, false)

	if !s.AdvanceNext(time.Now()) {
		t.Fatal("expected AdvanceNext to succeed")
	}
	if got := s.CurrentQuestion(); got == nil || got.ID != "q4" {
		t.Errorf("CurrentQuestion = %v, want q4", got)
	}
	if s.PendingNext != nil {
		t.Error("expected pending question consumed")
	}
	if s.AdvanceNext(time.Now()) {
		t.Error("expected second AdvanceNext without a pending question to fail")
	}
}

func TestAdvanceNext_QuotaReached(t *testing.T) {
	s := testInProgress()
	s.Mode = ModeAdaptive
	s.Quota = 1

	next := Question{ID: "q4", Order: 4}
	s.ApplyPracticeCheck("q1", CheckedResult{Correct: true}, 0.5, &next, false)

	if s.AdvanceNext(time.Now()) {
		t.Error("expected AdvanceNext to refuse past the quota")
	}
}

func TestAdvanceNext_ServerComplete(t *testing.T) {
	s := testInProgress()
	s.Mode = ModeAdaptive

	next := Question{ID: "q4", Order: 4}
	s.ApplyPracticeCheck("q1", CheckedResult{Correct: true}, 0.5, &next, true)

	if s.PendingNext != nil {
		t.Error("expected completion to clear the pending question")
	}
	if s.AdvanceNext(time.Now()) {
		t.Error("expected AdvanceNext to refuse after server completion")
	}
}

func TestAdvanceNext_DedupesByID(t *testing.T) {
	s := testInProgress()
	s.Mode = ModeAdaptive

	dup := Question{ID: "q2", Order: 2}
	s.ApplyPracticeCheck("q1", CheckedResult{Correct: true}, 0.5, &dup, false)

	if !s.AdvanceNext(time.Now()) {
		t.Fatal("expected AdvanceNext to succeed")
	}
	if len(s.Questions) != 3 {
		t.Errorf("len(Questions) = %d, want 3 (no duplicate appended)", len(s.Questions))
	}
}

func TestDerived_Counts(t *testing.T) {
	s := testInProgress()
	s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 1})
	s.SelectAnswer("q2", Answer{Kind: AnswerSPR, Text: "0.75"})
	s.ApplyCheck("q1", CheckedResult{Correct: true})

	if s.AnsweredCount() != 2 {
		t.Errorf("AnsweredCount = %d, want 2", s.AnsweredCount())
	}
	if s.UnansweredCount() != 1 {
		t.Errorf("UnansweredCount = %d, want 1", s.UnansweredCount())
	}
	if s.CheckedCount() != 1 {
		t.Errorf("CheckedCount = %d, want 1", s.CheckedCount())
	}
	if s.CorrectCount() != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.CorrectCount())
	}
	if got := s.FirstUnchecked(); got != 1 {
		t.Errorf("FirstUnchecked = %d, want 1", got)
	}
}

func TestCanCheck(t *testing.T) {
	s := testInProgress()
	s.RevealAnswers = true

	if s.CanCheck() {
		t.Error("expected CanCheck false with no answer")
	}
	s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 0})
	if !s.CanCheck() {
		t.Error("expected CanCheck true once answered")
	}
	s.ApplyCheck("q1", CheckedResult{Correct: false})
	if s.CanCheck() {
		t.Error("expected CanCheck false once checked")
	}

	s.RevealAnswers = false
	s.Next(time.Now())
	s.SelectAnswer("q2", Answer{Kind: AnswerSPR, Text: "0.75"})
	if s.CanCheck() {
		t.Error("expected CanCheck false when reveal is disabled")
	}
}

func TestFail_Terminal(t *testing.T) {
	s := testInProgress()
	s.Timer = NewTimer(60, nil)
	s.Timer.Start()

	s.Fail("session expired")
	if s.Phase != PhaseError {
		t.Errorf("Phase = %v, want error", s.Phase)
	}
	if s.Timer.Running() {
		t.Error("expected timer stopped on failure")
	}
}
