package practice

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/summary"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

// PracticeScreen runs an adaptive session. The server's estimator owns
// question selection, so the screen never fetches a question itself:
// each one after the first arrives inside the previous check response
// and is consumed through State.AdvanceNext.
type PracticeScreen struct {
	state *exam.State
	ctrl  *exam.Adaptive
	store *store.Store
	log   zerolog.Logger

	skills  []string
	started time.Time

	input    components.TextInput
	mc       components.MultiChoice
	errMsg   string
	confirm  bool
	checking bool
	ending   bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates the adaptive practice screen. count of zero means an
// open-ended session the user ends themselves.
func New(client api.Client, st *store.Store, log zerolog.Logger, skills []string, count int) *PracticeScreen {
	state := exam.NewState(exam.ModeAdaptive, uuid.New().String(), "")
	state.Title = "Practice"
	state.Quota = count
	state.RevealAnswers = true
	return &PracticeScreen{
		state:  state,
		ctrl:   exam.NewAdaptive(client, log),
		store:  st,
		log:    log,
		skills: skills,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.start(), tickCmd())
}

func (s *PracticeScreen) Title() string {
	return s.state.Title
}

// Status shows progress toward the quota, or elapsed time when the
// session is open-ended.
func (s *PracticeScreen) Status() string {
	if s.state.Phase != exam.PhaseInProgress {
		return ""
	}
	if s.state.Quota > 0 {
		return statusQuota(s.state.CheckedCount(), s.state.Quota)
	}
	return "⏱ " + exam.FormatClock(int(time.Since(s.started).Seconds()))
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check / Next"},
		{Key: "Esc", Description: "End session"},
	}
}

// syncWidgets rebuilds the input widgets for the current question.
func (s *PracticeScreen) syncWidgets() {
	q := s.state.CurrentQuestion()
	if q == nil {
		return
	}

	ans, answered := s.state.Answers[q.ID]

	if q.Kind == exam.AnswerMCQ {
		chosen := -1
		if answered {
			chosen = ans.Index
		}
		s.mc = components.NewMultiChoice(q.Choices, chosen)
		if res, ok := s.state.Checked[q.ID]; ok {
			s.mc.Reveal(chosen, res.CorrectIndex)
		}
		return
	}

	s.input = components.NewTextInput("Type your answer...", true, 24)
	if answered {
		s.input.Model.SetValue(ans.Text)
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case checkedMsg:
		return s.handleChecked(msg)
	case completedMsg:
		return s.handleCompleted(msg)
	case tickMsg:
		return s, tickCmd()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s.forwardToWidget(msg)
}

func (s *PracticeScreen) forwardToWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion()
	if q == nil || s.state.Phase != exam.PhaseInProgress || s.confirm {
		return s, nil
	}
	if s.state.IsChecked(q.ID) {
		return s, nil
	}
	var cmd tea.Cmd
	if q.Kind == exam.AnswerMCQ {
		s.mc, cmd = s.mc.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *PracticeScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.state.Fail("could not start practice")
		s.errMsg = describeStartError(msg.Err)
		s.log.Error().Err(msg.Err).Msg("practice start failed")
		return s, nil
	}

	s.state.Token = msg.Outcome.SessionID
	s.state.Ability = msg.Outcome.Ability
	s.state.AbilityStart = msg.Outcome.Ability
	s.state.Begin([]exam.Question{msg.Outcome.First}, time.Now())
	s.started = time.Now()
	s.syncWidgets()

	_ = s.store.EventRepo().AppendSessionEvent(context.Background(), store.SessionEventData{
		AttemptID: s.state.AttemptID,
		Mode:      "practice",
		Action:    "start",
		Title:     strings.Join(s.skills, ", "),
	})
	return s, nil
}

func (s *PracticeScreen) handleChecked(msg checkedMsg) (screen.Screen, tea.Cmd) {
	s.checking = false
	if msg.Err != nil {
		s.errMsg = "Check failed. Press Enter to try again."
		s.log.Warn().Err(msg.Err).Str("question", msg.QuestionID).Msg("practice check failed")
		return s, nil
	}

	out := msg.Outcome
	if s.state.ApplyPracticeCheck(msg.QuestionID, out.Result, out.Ability, out.Next, out.Complete) {
		s.appendAnswerEvent(msg.QuestionID, out.Result.Correct)
	}
	if q := s.state.CurrentQuestion(); q != nil && q.ID == msg.QuestionID {
		s.syncWidgets()
	}
	return s, nil
}

func (s *PracticeScreen) handleCompleted(msg completedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.state.FailSubmit("complete failed")
		s.errMsg = "Could not finish the session. Press Esc to try again."
		s.log.Error().Err(msg.Err).Msg("practice complete failed")
		return s, nil
	}

	s.state.FinishSubmit()
	sum := exam.SummaryFromPractice(s.state, *msg.Result)
	sum.TimeSpentSeconds = int(time.Since(s.started).Seconds())

	_ = s.store.EventRepo().AppendSessionEvent(context.Background(), store.SessionEventData{
		AttemptID:         s.state.AttemptID,
		Mode:              "practice",
		Action:            "complete",
		Title:             strings.Join(s.skills, ", "),
		QuestionsAnswered: s.state.AnsweredCount(),
	})

	next := summary.New(sum, s.state.AttemptID, s.store.ResultRepo(), s.log)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.state.Phase == exam.PhaseError {
		if key == "esc" || key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	if s.state.Phase == exam.PhaseSubmitting {
		return s, nil
	}

	if s.confirm {
		switch key {
		case "y", "Y", "enter":
			s.confirm = false
			return s.finish()
		case "n", "N", "esc":
			s.confirm = false
			return s, nil
		}
		return s, nil
	}

	s.errMsg = ""

	switch key {
	case "esc":
		s.confirm = true
		return s, nil
	case "enter":
		return s.handleEnter()
	}
	return s.forwardToWidget(msg)
}

// handleEnter checks the current answer, or moves on once checked.
// When the session cannot advance (quota reached, server-declared
// completion, or no pending question) Enter completes it instead.
func (s *PracticeScreen) handleEnter() (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion()
	if q == nil || s.checking {
		return s, nil
	}

	if s.state.IsChecked(q.ID) {
		if s.state.AdvanceNext(time.Now()) {
			s.syncWidgets()
			return s, nil
		}
		return s.finish()
	}

	var ans exam.Answer
	if q.Kind == exam.AnswerMCQ {
		s.mc.ChosenIndex = s.mc.Selected
		ans = exam.Answer{Kind: exam.AnswerMCQ, Index: s.mc.ChosenIndex}
	} else {
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			return s, nil
		}
		ans = exam.Answer{Kind: exam.AnswerSPR, Text: text}
	}

	if !s.state.SelectAnswer(q.ID, ans) {
		return s, nil
	}

	s.checking = true
	timeSpent := int(time.Since(s.state.QuestionStart).Seconds())
	return s, s.check(*q, ans, timeSpent)
}

func (s *PracticeScreen) finish() (screen.Screen, tea.Cmd) {
	if !s.state.BeginSubmit(false) {
		return s, nil
	}
	ctrl := s.ctrl
	sessionID := s.state.Token
	return s, func() tea.Msg {
		res, err := ctrl.Complete(context.Background(), sessionID)
		return completedMsg{Result: res, Err: err}
	}
}

func (s *PracticeScreen) start() tea.Cmd {
	ctrl := s.ctrl
	skills := s.skills
	count := s.state.Quota
	return func() tea.Msg {
		out, err := ctrl.StartPractice(context.Background(), skills, count)
		return startedMsg{Outcome: out, Err: err}
	}
}

func (s *PracticeScreen) check(q exam.Question, ans exam.Answer, timeSpent int) tea.Cmd {
	ctrl := s.ctrl
	sessionID := s.state.Token
	return func() tea.Msg {
		out, err := ctrl.Check(context.Background(), sessionID, q, ans, timeSpent)
		return checkedMsg{QuestionID: q.ID, Outcome: out, Err: err}
	}
}

func (s *PracticeScreen) appendAnswerEvent(questionID string, correct bool) {
	ans, ok := s.state.Answers[questionID]
	if !ok {
		return
	}
	kind := "spr"
	response := ans.Text
	if ans.Kind == exam.AnswerMCQ {
		kind = "mcq"
		response = choiceLabel(ans.Index)
	}
	_ = s.store.EventRepo().AppendAnswerEvent(context.Background(), store.AnswerEventData{
		AttemptID:     s.state.AttemptID,
		QuestionID:    questionID,
		AnswerKind:    kind,
		Response:      response,
		Checked:       true,
		Correct:       correct,
		TimeSpentSecs: int(time.Since(s.state.QuestionStart).Seconds()),
	})
}

// describeStartError maps transport errors to learner-facing text.
func describeStartError(err error) string {
	var unauth *api.ErrUnauthorized
	var rate *api.ErrRateLimit
	var unavail *api.ErrUnavailable

	switch {
	case errors.As(err, &unauth):
		return "You need to sign in before practicing."
	case errors.As(err, &rate):
		return "The server is busy. Wait a moment and try again."
	case errors.As(err, &unavail):
		return "Could not reach the server. Check your connection and try again."
	}
	return "Could not start the practice session."
}

// tickCmd drives the elapsed-time display once per second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
