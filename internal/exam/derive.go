package exam

// Derived views over State. These are pure reads: display code and the
// submit flow consult them, but nothing here mutates.

// AnsweredCount returns how many questions have a recorded answer.
func (s *State) AnsweredCount() int {
	return len(s.Answers)
}

// CheckedCount returns how many questions have been checked.
func (s *State) CheckedCount() int {
	return len(s.Checked)
}

// CorrectCount returns how many checked questions were correct.
func (s *State) CorrectCount() int {
	n := 0
	for _, res := range s.Checked {
		if res.Correct {
			n++
		}
	}
	return n
}

// IsAnswered reports whether a question has a recorded answer.
func (s *State) IsAnswered(questionID string) bool {
	_, ok := s.Answers[questionID]
	return ok
}

// IsChecked reports whether a question's correctness is disclosed.
func (s *State) IsChecked(questionID string) bool {
	_, ok := s.Checked[questionID]
	return ok
}

// IsMarked reports whether a question is marked for review.
func (s *State) IsMarked(questionID string) bool {
	return s.Marked[questionID]
}

// CanCheck reports whether the current question is eligible for a
// check: the session is interactive, reveal is enabled, an answer is
// recorded, and no disclosure exists yet.
func (s *State) CanCheck() bool {
	if s.Phase != PhaseInProgress || !s.RevealAnswers {
		return false
	}
	q := s.CurrentQuestion()
	if q == nil {
		return false
	}
	return s.IsAnswered(q.ID) && !s.IsChecked(q.ID)
}

// QuotaReached reports whether the adaptive session has checked its
// full quota. A zero quota means the session is unbounded and only the
// server can declare completion.
func (s *State) QuotaReached() bool {
	return s.Quota > 0 && len(s.Checked) >= s.Quota
}

// FirstUnchecked returns the index of the first question without a
// disclosure, or -1 when every question is checked. Resume lands here
// when no saved position exists.
func (s *State) FirstUnchecked() int {
	for i := range s.Questions {
		if !s.IsChecked(s.Questions[i].ID) {
			return i
		}
	}
	return -1
}

// UnansweredCount returns how many questions have no answer yet, for
// the submit confirmation prompt.
func (s *State) UnansweredCount() int {
	n := 0
	for i := range s.Questions {
		if !s.IsAnswered(s.Questions[i].ID) {
			n++
		}
	}
	return n
}
