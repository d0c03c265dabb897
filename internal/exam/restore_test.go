package exam

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
)

func intp(i int) *int       { return &i }
func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

// Snapshot mirroring a half-finished attempt: q1 checked correct,
// q2 answered but unchecked, q3 untouched but flagged, saved on q2.
func testSnapshot() *SavedSnapshot {
	return &SavedSnapshot{
		Answers: map[string]SavedAnswer{
			"q1": {
				Index:        intp(1),
				Checked:      true,
				IsCorrect:    boolp(true),
				CorrectIndex: intp(1),
			},
			"q2": {
				Text: strp("0.5"),
			},
		},
		Flagged:  []string{"q3"},
		Position: intp(1),
	}
}

func TestRestoreSnapshot_RoundTrip(t *testing.T) {
	s := testInProgress()
	RestoreSnapshot(s, testSnapshot())

	if got := s.Answers["q1"].Index; got != 1 {
		t.Errorf("Answers[q1].Index = %d, want 1", got)
	}
	if !s.IsChecked("q1") {
		t.Fatal("expected q1 restored as checked")
	}
	if !s.Checked["q1"].Correct {
		t.Error("expected q1 restored as correct")
	}
	if got := s.Answers["q2"].Text; got != "0.5" {
		t.Errorf("Answers[q2].Text = %q, want 0.5", got)
	}
	if s.IsChecked("q2") {
		t.Error("expected q2 restored unchecked")
	}
	if !s.IsMarked("q3") {
		t.Error("expected q3 restored flagged")
	}
	if s.Current != 1 {
		t.Errorf("Current = %d, want saved position 1", s.Current)
	}
}

func TestRestoreSnapshot_CheckedAnswerStaysFrozen(t *testing.T) {
	s := testInProgress()
	RestoreSnapshot(s, testSnapshot())

	if s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 3}) {
		t.Error("expected restored-checked answer to reject edits")
	}
	if s.ApplyCheck("q1", CheckedResult{Correct: false}) {
		t.Error("expected restored disclosure to reject re-check")
	}

	if !s.SelectAnswer("q2", Answer{Kind: AnswerSPR, Text: "0.75"}) {
		t.Error("expected restored-unchecked answer to stay editable")
	}
}

func TestRestoreSnapshot_RecomputesMissingVerdict(t *testing.T) {
	s := testInProgress()
	snap := &SavedSnapshot{
		Answers: map[string]SavedAnswer{
			// Checked during the original run but the verdict was
			// never recorded; the accepted answers were.
			"q2": {
				Text:           strp(" 3/4 "),
				Checked:        true,
				CorrectAnswers: []string{"0.75", "3/4"},
			},
			"q3": {
				Index:          intp(0),
				Checked:        true,
				CorrectIndex:   intp(1),
				CorrectAnswers: nil,
			},
		},
	}
	RestoreSnapshot(s, snap)

	if !s.Checked["q2"].Correct {
		t.Error("expected trimmed SPR recomputed as correct")
	}
	if s.Checked["q3"].Correct {
		t.Error("expected wrong MCQ index recomputed as incorrect")
	}
}

func TestRestoreSnapshot_TrustsRecordedVerdict(t *testing.T) {
	s := testInProgress()
	snap := &SavedSnapshot{
		Answers: map[string]SavedAnswer{
			// Verdict present and contradicts a local recompute; the
			// server's record wins.
			"q2": {
				Text:           strp("0.75"),
				Checked:        true,
				IsCorrect:      boolp(false),
				CorrectAnswers: []string{"0.75"},
			},
		},
	}
	RestoreSnapshot(s, snap)

	if s.Checked["q2"].Correct {
		t.Error("expected recorded verdict to win over recompute")
	}
}

func TestRestoreSnapshot_PositionFallsBackToFirstUnchecked(t *testing.T) {
	s := testInProgress()
	snap := testSnapshot()
	snap.Position = nil
	RestoreSnapshot(s, snap)

	// q1 is checked; q2 is the first unchecked.
	if s.Current != 1 {
		t.Errorf("Current = %d, want first unchecked 1", s.Current)
	}
}

func TestRestoreSnapshot_AllCheckedLandsOnLast(t *testing.T) {
	s := testInProgress()
	snap := &SavedSnapshot{
		Answers: map[string]SavedAnswer{
			"q1": {Index: intp(0), Checked: true, IsCorrect: boolp(true)},
			"q2": {Text: strp("1"), Checked: true, IsCorrect: boolp(false)},
			"q3": {Index: intp(1), Checked: true, IsCorrect: boolp(true)},
		},
	}
	RestoreSnapshot(s, snap)

	if s.Current != 2 {
		t.Errorf("Current = %d, want last question 2", s.Current)
	}
}

func TestRestoreSnapshot_IgnoresUnknownIDs(t *testing.T) {
	s := testInProgress()
	snap := &SavedSnapshot{
		Answers: map[string]SavedAnswer{
			"deleted-question": {Index: intp(0), Checked: true},
		},
		Flagged: []string{"also-deleted"},
	}
	RestoreSnapshot(s, snap)

	if len(s.Answers) != 0 || len(s.Checked) != 0 || len(s.Marked) != 0 {
		t.Error("expected snapshot entries for unknown questions to be dropped")
	}
}

func TestRestoreSnapshot_ClampsSavedPosition(t *testing.T) {
	s := testInProgress()
	snap := &SavedSnapshot{Answers: map[string]SavedAnswer{}, Position: intp(42)}
	RestoreSnapshot(s, snap)

	if s.Current != 2 {
		t.Errorf("Current = %d, want clamped 2", s.Current)
	}
}

func TestRestore_FetchFailureLeavesStateUsable(t *testing.T) {
	mock := &api.Mock{} // GetAnswers defaults to ErrUnavailable
	r := NewRegular(mock, zerolog.Nop())
	s := testInProgress()

	if err := r.Restore(context.Background(), "tok", s); err == nil {
		t.Fatal("expected restore error")
	}
	if s.Phase != PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress after failed restore", s.Phase)
	}
	if !s.SelectAnswer("q1", Answer{Kind: AnswerMCQ, Index: 0}) {
		t.Error("expected session still interactive after failed restore")
	}
}

func TestRestore_AppliesFetchedSnapshot(t *testing.T) {
	mock := &api.Mock{
		GetAnswersFn: func(ctx context.Context, token string) (*api.SavedState, error) {
			return &api.SavedState{
				Answers: map[string]api.SavedAnswer{
					"q1": {Index: intp(1), Checked: true, IsCorrect: boolp(true)},
				},
				FlaggedQuestionIDs:   []string{"q2"},
				CurrentQuestionIndex: intp(1),
			}, nil
		},
	}
	r := NewRegular(mock, zerolog.Nop())
	s := testInProgress()

	if err := r.Restore(context.Background(), "tok", s); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !s.IsChecked("q1") || !s.IsMarked("q2") || s.Current != 1 {
		t.Error("expected fetched snapshot applied to state")
	}
}
