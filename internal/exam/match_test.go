package exam

import "testing"

func TestMatchSPR_Literal(t *testing.T) {
	accepted := []string{"0.75", "3/4"}

	tests := []struct {
		input string
		want  bool
	}{
		{"0.75", true},
		{" 0.75 ", true},
		{"3/4", true},
		{" 3/4 ", true},
		{"0.750", false},
		{".75", false},
		{"6/8", false},
		{"", false},
		{"   ", false},
	}

	for _, tc := range tests {
		got := MatchSPR(tc.input, accepted)
		if got != tc.want {
			t.Errorf("MatchSPR(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestMatchSPR_CaseFold(t *testing.T) {
	if !MatchSPR("x+2", []string{"X+2"}) {
		t.Error("expected case-insensitive match")
	}
}

func TestMatchSPR_NoAccepted(t *testing.T) {
	if MatchSPR("42", nil) {
		t.Error("expected no match against empty accepted list")
	}
}

func TestMatchAnswer_MCQ(t *testing.T) {
	q := Question{ID: "q1", Kind: AnswerMCQ}
	res := CheckedResult{CorrectIndex: 2}

	if !MatchAnswer(q, Answer{Kind: AnswerMCQ, Index: 2}, res) {
		t.Error("expected index 2 to match")
	}
	if MatchAnswer(q, Answer{Kind: AnswerMCQ, Index: 1}, res) {
		t.Error("expected index 1 to mismatch")
	}
}

func TestMatchAnswer_MCQNoCorrectIndex(t *testing.T) {
	q := Question{ID: "q1", Kind: AnswerMCQ}
	res := CheckedResult{CorrectIndex: -1}

	if MatchAnswer(q, Answer{Kind: AnswerMCQ, Index: 0}, res) {
		t.Error("expected mismatch when no correct index is known")
	}
}

func TestMatchAnswer_SPR(t *testing.T) {
	q := Question{ID: "q2", Kind: AnswerSPR}
	res := CheckedResult{CorrectAnswers: []string{"0.75", "3/4"}}

	if !MatchAnswer(q, Answer{Kind: AnswerSPR, Text: " 3/4 "}, res) {
		t.Error("expected trimmed SPR to match")
	}
	if MatchAnswer(q, Answer{Kind: AnswerSPR, Text: "0.750"}, res) {
		t.Error("expected trailing-zero variant to mismatch")
	}
}
