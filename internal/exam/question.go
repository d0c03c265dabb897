package exam

import (
	"sort"

	"github.com/abhisek/prepdeck/internal/api"
)

// AnswerKind distinguishes the two answer formats.
type AnswerKind int

const (
	// AnswerMCQ is multiple choice; the answer is a choice index.
	AnswerMCQ AnswerKind = iota
	// AnswerSPR is a student-produced response; the answer is a
	// free-text numeric/fraction string.
	AnswerSPR
)

// Question is one question of the session sequence. Immutable once
// fetched; the server owns ids and ordering.
type Question struct {
	ID      string
	Order   int
	Prompt  string
	Passage string
	Kind    AnswerKind
	Choices []string
}

// Answer is a learner's response to one question. Exactly one of
// Index (MCQ) or Text (SPR) is meaningful, per Kind.
type Answer struct {
	Kind  AnswerKind
	Index int
	Text  string
}

// CheckedResult is the resolved correctness for one question. Created
// at most once per question id; its existence freezes the answer.
type CheckedResult struct {
	Correct        bool
	CorrectIndex   int
	CorrectAnswers []string
	Explanation    string
}

// QuestionFromAPI converts a wire question into the domain form.
func QuestionFromAPI(q api.Question) Question {
	kind := AnswerSPR
	if q.AnswerType == api.AnswerTypeMCQ {
		kind = AnswerMCQ
	}
	choices := make([]string, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, c.Content)
	}
	return Question{
		ID:      q.QuestionID,
		Order:   q.Order,
		Prompt:  q.PromptHTML,
		Passage: q.PassageHTML,
		Kind:    kind,
		Choices: choices,
	}
}

// QuestionsFromAPI converts and sorts a wire sequence by server order.
func QuestionsFromAPI(qs []api.Question) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionFromAPI(q))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// checkedFromAPI converts a wire check result into the domain form.
func checkedFromAPI(res api.CheckResult) CheckedResult {
	out := CheckedResult{
		Correct:        res.IsCorrect,
		CorrectIndex:   -1,
		CorrectAnswers: res.CorrectAnswers,
		Explanation:    res.ExplanationHTML,
	}
	if res.CorrectIndex != nil {
		out.CorrectIndex = *res.CorrectIndex
	}
	return out
}

// payloadFor builds the wire payload for one answer.
func payloadFor(q Question, ans Answer, timeSpentSeconds int) api.AnswerPayload {
	p := api.AnswerPayload{
		QuestionID:       q.ID,
		TimeSpentSeconds: timeSpentSeconds,
	}
	if ans.Kind == AnswerMCQ {
		idx := ans.Index
		p.Index = &idx
	} else {
		text := ans.Text
		p.Answer = &text
	}
	return p
}
