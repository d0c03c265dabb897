package test

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/summary"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

// TestScreen runs an in-progress regular attempt: navigation, answer
// entry, optional per-question checks, and the final submit. All
// mutation goes through the named transitions on exam.State; the
// screen only decides which transition a key or completion triggers.
type TestScreen struct {
	state *exam.State
	ctrl  *exam.Regular
	store *store.Store
	log   zerolog.Logger

	input    components.TextInput
	mc       components.MultiChoice
	notice   string
	errMsg   string
	confirm  bool
	checking bool
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)
var _ screen.StatusProvider = (*TestScreen)(nil)

// New creates the screen for an attempt already in PhaseInProgress.
// notice is an optional one-line banner (e.g. a failed restore).
func New(state *exam.State, ctrl *exam.Regular, st *store.Store, log zerolog.Logger, notice string) *TestScreen {
	s := &TestScreen{
		state:  state,
		ctrl:   ctrl,
		store:  st,
		log:    log,
		notice: notice,
	}
	s.syncWidgets()
	return s
}

func (s *TestScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *TestScreen) Title() string {
	return s.state.Title
}

// Status renders the countdown for the header.
func (s *TestScreen) Status() string {
	if s.state.Timer == nil {
		return ""
	}
	return "⏱ " + exam.FormatClock(s.state.Timer.Remaining())
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep working"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "M", Description: "Mark"},
	}
	if s.state.CanCheck() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Answer"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit test"})
	return hints
}

// syncWidgets rebuilds the input widgets for the current question,
// reflecting any recorded answer and any existing disclosure.
func (s *TestScreen) syncWidgets() {
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

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case checkedMsg:
		return s.handleChecked(msg)
	case recordedMsg:
		return s.handleRecorded(msg)
	case submittedMsg:
		return s.handleSubmitted(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToWidget(msg)
}

func (s *TestScreen) forwardToWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

// handleTick drives the countdown. When the timer expires the submit
// is forced exactly once: BeginSubmit refuses a second transition, so
// a late tick can never double-submit.
func (s *TestScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.state.Phase != exam.PhaseInProgress {
		return s, nil
	}
	if s.state.Timer == nil {
		return s, tickCmd()
	}

	if s.state.Timer.Tick() {
		if s.state.BeginSubmit(true) {
			s.confirm = false
			return s, s.submit()
		}
		return s, nil
	}
	return s, tickCmd()
}

func (s *TestScreen) handleChecked(msg checkedMsg) (screen.Screen, tea.Cmd) {
	s.checking = false
	if msg.Err != nil {
		s.errMsg = "Check failed. Your answer is still saved locally; try again."
		s.log.Warn().Err(msg.Err).Str("question", msg.QuestionID).Msg("check failed")
		return s, nil
	}

	// ApplyCheck re-validates the question id, so a disclosure that
	// arrives after navigation away simply lands in the map without
	// touching the current view; a duplicate is dropped.
	if s.state.ApplyCheck(msg.QuestionID, msg.Result) {
		s.appendAnswerEvent(msg.QuestionID, true, msg.Result.Correct)
	}
	if q := s.state.CurrentQuestion(); q != nil && q.ID == msg.QuestionID {
		s.syncWidgets()
	}
	return s, nil
}

func (s *TestScreen) handleRecorded(msg recordedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = "Could not save your answer to the server. It is kept locally; it will be retried on submit."
		s.log.Warn().Err(msg.Err).Str("question", msg.QuestionID).Msg("record failed")
		return s, nil
	}
	s.appendAnswerEvent(msg.QuestionID, false, false)
	return s, nil
}

func (s *TestScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.state.FailSubmit("submit failed")
		s.errMsg = "Submitting failed. Your answers are safe; press Ctrl+S to retry."
		s.log.Error().Err(msg.Err).Msg("submit failed")
		return s, tickCmd()
	}

	s.state.FinishSubmit()
	sum := exam.SummaryFromSubmit(s.state, *msg.Result)

	ctx := context.Background()
	_ = s.store.EventRepo().AppendSessionEvent(ctx, store.SessionEventData{
		AttemptID:         s.state.AttemptID,
		Mode:              "test",
		Action:            "complete",
		QuestionsAnswered: s.state.AnsweredCount(),
		ByTimer:           s.state.SubmittedByTimer,
	})

	next := summary.New(sum, s.state.AttemptID, s.store.ResultRepo(), s.log)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.state.Phase == exam.PhaseSubmitting {
		return s, nil
	}

	if s.confirm {
		switch key {
		case "y", "Y", "enter":
			s.confirm = false
			if s.state.BeginSubmit(false) {
				return s, s.submit()
			}
			return s, nil
		case "n", "N", "esc":
			s.confirm = false
			return s, nil
		}
		return s, nil
	}

	s.errMsg = ""

	switch key {
	case "ctrl+s":
		s.confirm = true
		return s, nil
	case "left", "p":
		return s.navigate(s.state.Current - 1)
	case "right", "n":
		// SPR entry owns plain letters; only the arrow navigates there.
		if q := s.state.CurrentQuestion(); q != nil && q.Kind == exam.AnswerSPR && !s.state.IsChecked(q.ID) && key == "n" {
			break
		}
		return s.navigate(s.state.Current + 1)
	case "m", "ctrl+f":
		if q := s.state.CurrentQuestion(); q != nil {
			if key == "m" && q.Kind == exam.AnswerSPR && !s.state.IsChecked(q.ID) {
				break
			}
			s.state.ToggleMark(q.ID)
			return s, s.saveFlag(q.ID)
		}
	case "enter":
		return s.handleEnter()
	}

	return s.forwardToWidget(msg)
}

// navigate moves to another question and persists the new position.
func (s *TestScreen) navigate(index int) (screen.Screen, tea.Cmd) {
	before := s.state.Current
	s.state.GoTo(index, time.Now())
	if s.state.Current == before {
		return s, nil
	}
	s.syncWidgets()
	return s, s.savePosition(s.state.Current)
}

// handleEnter records the current answer; with reveal enabled it also
// triggers the check exchange.
func (s *TestScreen) handleEnter() (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion()
	if q == nil || s.checking {
		return s, nil
	}
	if s.state.IsChecked(q.ID) {
		return s.navigate(s.state.Current + 1)
	}

	var ans exam.Answer
	if q.Kind == exam.AnswerMCQ {
		// Enter both selects and confirms the highlighted choice.
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

	timeSpent := int(time.Since(s.state.QuestionStart).Seconds())
	if s.state.RevealAnswers {
		s.checking = true
		return s, s.check(*q, ans, timeSpent)
	}
	return s, s.record(*q, ans, timeSpent)
}

func (s *TestScreen) check(q exam.Question, ans exam.Answer, timeSpent int) tea.Cmd {
	ctrl := s.ctrl
	token := s.state.Token
	return func() tea.Msg {
		res, err := ctrl.Check(context.Background(), token, q, ans, timeSpent)
		return checkedMsg{QuestionID: q.ID, Result: res, Err: err}
	}
}

func (s *TestScreen) record(q exam.Question, ans exam.Answer, timeSpent int) tea.Cmd {
	ctrl := s.ctrl
	token := s.state.Token
	return func() tea.Msg {
		err := ctrl.Record(context.Background(), token, q, ans, timeSpent)
		return recordedMsg{QuestionID: q.ID, Err: err}
	}
}

func (s *TestScreen) savePosition(index int) tea.Cmd {
	ctrl := s.ctrl
	token := s.state.Token
	return func() tea.Msg {
		ctrl.SavePosition(context.Background(), token, index)
		return nil
	}
}

func (s *TestScreen) saveFlag(questionID string) tea.Cmd {
	ctrl := s.ctrl
	token := s.state.Token
	return func() tea.Msg {
		ctrl.SaveFlag(context.Background(), token, questionID)
		return nil
	}
}

func (s *TestScreen) submit() tea.Cmd {
	ctrl := s.ctrl
	token := s.state.Token
	byTimer := s.state.SubmittedByTimer
	attemptID := s.state.AttemptID
	answered := s.state.AnsweredCount()
	events := s.store.EventRepo()

	return func() tea.Msg {
		ctx := context.Background()
		_ = events.AppendSessionEvent(ctx, store.SessionEventData{
			AttemptID:         attemptID,
			Mode:              "test",
			Action:            "submit",
			QuestionsAnswered: answered,
			ByTimer:           byTimer,
		})
		res, err := ctrl.Submit(ctx, token)
		return submittedMsg{Result: res, Err: err}
	}
}

func (s *TestScreen) appendAnswerEvent(questionID string, checked, correct bool) {
	q := s.state.QuestionByID(questionID)
	ans, ok := s.state.Answers[questionID]
	if q == nil || !ok {
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
		Checked:       checked,
		Correct:       correct,
		TimeSpentSecs: int(time.Since(s.state.QuestionStart).Seconds()),
	})
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
