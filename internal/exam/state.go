package exam

import (
	"time"
)

// Mode selects the delivery mode for a session.
type Mode int

const (
	// ModeRegular is a fixed-length test with a pre-fetched sequence.
	ModeRegular Mode = iota
	// ModeAdaptive is an open-ended practice session whose next
	// question is chosen by the remote ability estimator.
	ModeAdaptive
)

// Phase is the top-level session phase. It gates which operations are
// legal; every transition goes through a named method on State.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAuthRequired
	PhaseIntro
	PhaseInProgress
	PhaseSubmitting
	PhaseCompleted
	PhaseError
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAuthRequired:
		return "auth-required"
	case PhaseIntro:
		return "intro"
	case PhaseInProgress:
		return "in-progress"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleted:
		return "completed"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// State is the full in-memory state of one assessment attempt. It is
// the single owner of phase, position, the answer/checked maps, the
// marked set, and the timer; nothing outside this package mutates its
// fields directly. Everything here is discarded on exit; the server
// holds the durable record, re-fetched through the resume protocol.
type State struct {
	Mode      Mode
	Phase     Phase
	AttemptID string // local id grouping event-log entries
	Token     string // test token (regular) or session id (adaptive)
	Title     string

	Questions []Question
	Current   int

	Answers map[string]Answer
	Checked map[string]*CheckedResult
	Marked  map[string]bool

	Timer *Timer

	// Adaptive-only fields.
	Quota          int // server-declared target; 0 means unbounded
	Ability        float64
	AbilityStart   float64
	PendingNext    *Question // delivered with the last check response
	ServerComplete bool

	// RevealAnswers enables the regular-mode check-then-reveal flow.
	// When false, answers are recorded as selected and correctness is
	// disclosed only after final submission.
	RevealAnswers bool

	// SubmittedByTimer distinguishes timer expiry from a manual submit.
	SubmittedByTimer bool

	// QuestionStart is when the current question was first displayed,
	// for timeSpentSeconds reporting.
	QuestionStart time.Time

	ErrMsg string
}

// NewState creates a State in PhaseLoading with initialized maps.
func NewState(mode Mode, attemptID, token string) *State {
	return &State{
		Mode:      mode,
		Phase:     PhaseLoading,
		AttemptID: attemptID,
		Token:     token,
		Answers:   make(map[string]Answer),
		Checked:   make(map[string]*CheckedResult),
		Marked:    make(map[string]bool),
	}
}

// RequireAuth moves Loading to AuthRequired.
func (s *State) RequireAuth() {
	if s.Phase == PhaseLoading {
		s.Phase = PhaseAuthRequired
	}
}

// AuthResolved moves AuthRequired back to Intro once an identity is
// established. Configuration is not re-fetched.
func (s *State) AuthResolved() {
	if s.Phase == PhaseAuthRequired {
		s.Phase = PhaseIntro
	}
}

// EnterIntro moves Loading to Intro once configuration is known.
func (s *State) EnterIntro(title string) {
	if s.Phase != PhaseLoading {
		return
	}
	s.Title = title
	s.Phase = PhaseIntro
}

// Begin moves Intro to InProgress with the given question sequence and
// starts the timer, if any.
func (s *State) Begin(questions []Question, now time.Time) {
	if s.Phase != PhaseIntro && s.Phase != PhaseLoading {
		return
	}
	s.Questions = questions
	if s.Current >= len(questions) {
		s.Current = 0
	}
	s.Phase = PhaseInProgress
	s.QuestionStart = now
	if s.Timer != nil {
		s.Timer.Start()
	}
}

// CurrentQuestion returns the question at the current position, or nil
// when the sequence is empty.
func (s *State) CurrentQuestion() *Question {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// QuestionByID finds a question in the sequence, or nil. Used to guard
// async completions against stale question ids.
func (s *State) QuestionByID(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// SelectAnswer upserts the answer for a question. Rejected once a
// CheckedResult exists for that id: checked answers are frozen for the
// rest of the session.
func (s *State) SelectAnswer(questionID string, ans Answer) bool {
	if s.Phase != PhaseInProgress {
		return false
	}
	if s.QuestionByID(questionID) == nil {
		return false
	}
	if _, checked := s.Checked[questionID]; checked {
		return false
	}
	s.Answers[questionID] = ans
	return true
}

// ApplyCheck stores the checked result for a question. Idempotent: a
// second apply for the same id is a no-op, so repeated check attempts
// can never overwrite an existing disclosure.
func (s *State) ApplyCheck(questionID string, res CheckedResult) bool {
	if s.QuestionByID(questionID) == nil {
		return false
	}
	if _, checked := s.Checked[questionID]; checked {
		return false
	}
	s.Checked[questionID] = &res
	return true
}

// ToggleMark flips the marked-for-review flag and returns the new
// value. Independent of answered/checked state, legal at any time the
// session is interactive.
func (s *State) ToggleMark(questionID string) bool {
	if s.Marked[questionID] {
		delete(s.Marked, questionID)
		return false
	}
	s.Marked[questionID] = true
	return true
}

// GoTo moves the current position, clamped to the sequence bounds, and
// resets the per-question clock.
func (s *State) GoTo(index int, now time.Time) {
	if len(s.Questions) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.Questions) {
		index = len(s.Questions) - 1
	}
	if index != s.Current {
		s.Current = index
		s.QuestionStart = now
	}
}

// Next and Prev step the current position.
func (s *State) Next(now time.Time) { s.GoTo(s.Current+1, now) }
func (s *State) Prev(now time.Time) { s.GoTo(s.Current-1, now) }

// ApplyPracticeCheck records an adaptive check outcome: the checked
// result, the new ability estimate, and the server-chosen next
// question. The question id is re-verified so a stale response cannot
// mutate state after navigation.
func (s *State) ApplyPracticeCheck(questionID string, res CheckedResult, ability float64, next *Question, complete bool) bool {
	if !s.ApplyCheck(questionID, res) {
		return false
	}
	s.Ability = ability
	s.PendingNext = next
	if complete {
		s.ServerComplete = true
		s.PendingNext = nil
	}
	return true
}

// AdvanceNext consumes the pending next question: appends it to the
// sequence and moves the position onto it. Returns false, meaning the
// session should complete instead, when the quota is reached, the
// server declared completion, or no next question was delivered. The
// server is the only source of sequence growth.
func (s *State) AdvanceNext(now time.Time) bool {
	if s.Phase != PhaseInProgress {
		return false
	}
	if s.ServerComplete || s.QuotaReached() {
		return false
	}
	if s.PendingNext == nil {
		return false
	}
	q := *s.PendingNext
	s.PendingNext = nil
	if s.QuestionByID(q.ID) == nil {
		s.Questions = append(s.Questions, q)
	}
	s.Current = len(s.Questions) - 1
	s.QuestionStart = now
	return true
}

// BeginSubmit moves InProgress to Submitting and tears down the timer.
// byTimer records whether expiry, not the user, forced the submit.
// Returns false if the session is not submittable, which also makes a
// second expiry-driven submit impossible.
func (s *State) BeginSubmit(byTimer bool) bool {
	if s.Phase != PhaseInProgress {
		return false
	}
	s.Phase = PhaseSubmitting
	s.SubmittedByTimer = byTimer
	if s.Timer != nil {
		s.Timer.Stop()
	}
	return true
}

// FinishSubmit moves Submitting to Completed.
func (s *State) FinishSubmit() {
	if s.Phase == PhaseSubmitting {
		s.Phase = PhaseCompleted
	}
}

// FailSubmit reverts Submitting to InProgress so the user can retry;
// answered history is never lost to a failed submit. The timer is not
// restarted: once expired it stays inert, and a timer-forced submit
// retries without a countdown.
func (s *State) FailSubmit(msg string) {
	if s.Phase == PhaseSubmitting {
		s.Phase = PhaseInProgress
		s.ErrMsg = msg
	}
}

// Fail moves the session to the terminal Error phase.
func (s *State) Fail(msg string) {
	s.Phase = PhaseError
	s.ErrMsg = msg
	if s.Timer != nil {
		s.Timer.Stop()
	}
}
