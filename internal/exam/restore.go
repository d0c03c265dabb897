package exam

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/internal/api"
)

// SavedSnapshot is the domain form of a server-side answer snapshot.
type SavedSnapshot struct {
	Answers  map[string]SavedAnswer
	Flagged  []string
	Position *int
}

// SavedAnswer is one restored answer. Checked marks the answer frozen;
// IsCorrect may be nil on snapshots from older sessions even when
// Checked is set.
type SavedAnswer struct {
	Index          *int
	Text           *string
	Checked        bool
	IsCorrect      *bool
	CorrectIndex   *int
	CorrectAnswers []string
	Explanation    string
}

// SnapshotFromAPI converts a wire snapshot into the domain form.
func SnapshotFromAPI(st api.SavedState) *SavedSnapshot {
	out := &SavedSnapshot{
		Answers:  make(map[string]SavedAnswer, len(st.Answers)),
		Flagged:  st.FlaggedQuestionIDs,
		Position: st.CurrentQuestionIndex,
	}
	for id, sa := range st.Answers {
		out.Answers[id] = SavedAnswer{
			Index:          sa.Index,
			Text:           sa.Answer,
			Checked:        sa.Checked,
			IsCorrect:      sa.IsCorrect,
			CorrectIndex:   sa.CorrectIndex,
			CorrectAnswers: sa.CorrectAnswers,
			Explanation:    sa.ExplanationHTML,
		}
	}
	return out
}

// Restore fetches the server-side answer snapshot for a resuming
// attempt and overlays it onto the state. Best effort by design: if
// the fetch fails the attempt continues from a blank slate rather than
// refusing to run, and the error is returned so the screen can show a
// notice.
func (r *Regular) Restore(ctx context.Context, token string, s *State) error {
	saved, err := r.api.GetAnswers(ctx, token)
	if err != nil {
		r.log.Warn().Err(err).Msg("restore fetch failed, starting fresh")
		return fmt.Errorf("restore saved answers: %w", err)
	}
	RestoreSnapshot(s, SnapshotFromAPI(*saved))
	return nil
}

// RestoreSnapshot overlays a saved answer snapshot onto the state.
// Pure: no remote calls, deterministic for a given snapshot.
//
// Checked answers come back frozen, exactly as they were disclosed in
// the original run. When the snapshot carries a verdict it is trusted
// as-is; when it marks an answer checked without one, correctness is
// recomputed locally from the accepted answers, so older sessions
// still resume with a complete disclosure.
//
// Position lands on the saved index when present, else the first
// unchecked question, else the last question.
func RestoreSnapshot(s *State, saved *SavedSnapshot) {
	for id, sa := range saved.Answers {
		q := s.QuestionByID(id)
		if q == nil {
			continue
		}

		ans, ok := answerFromSaved(*q, sa)
		if !ok {
			continue
		}
		s.Answers[id] = ans

		if !sa.Checked {
			continue
		}
		res := CheckedResult{
			Correct:        false,
			CorrectIndex:   -1,
			CorrectAnswers: sa.CorrectAnswers,
			Explanation:    sa.Explanation,
		}
		if sa.CorrectIndex != nil {
			res.CorrectIndex = *sa.CorrectIndex
		}
		if sa.IsCorrect != nil {
			res.Correct = *sa.IsCorrect
		} else {
			res.Correct = MatchAnswer(*q, ans, res)
		}
		s.Checked[id] = &res
	}

	for _, id := range saved.Flagged {
		if s.QuestionByID(id) != nil {
			s.Marked[id] = true
		}
	}

	switch {
	case saved.Position != nil:
		s.Current = clampIndex(*saved.Position, len(s.Questions))
	default:
		if i := s.FirstUnchecked(); i >= 0 {
			s.Current = i
		} else if n := len(s.Questions); n > 0 {
			s.Current = n - 1
		}
	}
}

func answerFromSaved(q Question, sa SavedAnswer) (Answer, bool) {
	if q.Kind == AnswerMCQ {
		if sa.Index == nil {
			return Answer{}, false
		}
		return Answer{Kind: AnswerMCQ, Index: *sa.Index}, true
	}
	if sa.Text == nil {
		return Answer{}, false
	}
	return Answer{Kind: AnswerSPR, Text: *sa.Text}, true
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
