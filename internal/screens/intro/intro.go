package intro

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/test"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// IntroScreen fetches the test configuration for a token, walks the
// learner through authentication when the test requires it, and starts
// (or resumes) the attempt.
type IntroScreen struct {
	client api.Client
	store  *store.Store
	log    zerolog.Logger

	state    *exam.State
	ctrl     *exam.Regular
	config   *api.TestConfig
	starting bool
	errMsg   string

	// Auth form. Guest mode asks name+email; login asks email+password.
	authGuest  bool
	authField  int
	authFields []components.TextInput
	authErr    string
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates the intro screen for a test token.
func New(client api.Client, st *store.Store, log zerolog.Logger, token string) *IntroScreen {
	s := &IntroScreen{
		client: client,
		store:  st,
		log:    log,
		state:  exam.NewState(exam.ModeRegular, uuid.New().String(), token),
	}
	s.ctrl = exam.NewRegular(client, log)
	return s
}

func (s *IntroScreen) Init() tea.Cmd {
	return s.fetchConfig()
}

func (s *IntroScreen) Title() string {
	if s.config != nil {
		return s.config.Title
	}
	return "Test"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	switch s.state.Phase {
	case exam.PhaseAuthRequired:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+G", Description: s.authToggleLabel()},
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case exam.PhaseIntro:
		label := "Start"
		if s.config != nil && s.config.HasInProgressSession {
			label = "Resume"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: label},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *IntroScreen) authToggleLabel() string {
	if s.authGuest {
		return "Sign in instead"
	}
	return "Continue as guest"
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case configMsg:
		return s.handleConfig(msg)
	case authDoneMsg:
		return s.handleAuthDone(msg)
	case startedMsg:
		return s.handleStarted(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == exam.PhaseAuthRequired && s.authField < len(s.authFields) {
		var cmd tea.Cmd
		s.authFields[s.authField], cmd = s.authFields[s.authField].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *IntroScreen) handleConfig(msg configMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = describeError(msg.Err)
		s.state.Fail(s.errMsg)
		return s, nil
	}
	s.config = msg.Config
	s.state.RevealAnswers = msg.Config.RevealAnswers

	if msg.Config.RequiresAuth && s.needsIdentity() {
		s.state.RequireAuth()
		s.enterAuthForm(false)
		return s, s.authFields[0].Init()
	}

	s.state.EnterIntro(msg.Config.Title)
	return s, nil
}

// needsIdentity reports whether no live bearer token is installed.
func (s *IntroScreen) needsIdentity() bool {
	type tokenHolder interface{ Token() string }
	th, ok := s.client.(tokenHolder)
	if !ok {
		return true
	}
	return api.TokenExpired(th.Token(), time.Now())
}

func (s *IntroScreen) enterAuthForm(guest bool) {
	s.authGuest = guest
	s.authField = 0
	s.authErr = ""
	if guest {
		s.authFields = []components.TextInput{
			components.NewTextInput("Your name", false, 60),
			components.NewTextInput("Email", false, 120),
		}
	} else {
		email := components.NewTextInput("Email", false, 120)
		password := components.NewTextInput("Password", false, 120)
		password.Model.EchoMode = textinput.EchoPassword
		s.authFields = []components.TextInput{email, password}
	}
}

func (s *IntroScreen) handleAuthDone(msg authDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.authErr = describeError(msg.Err)
		return s, nil
	}
	if st, ok := s.client.(interface{ SetToken(string) }); ok {
		st.SetToken(msg.Token)
	}
	s.state.AuthResolved()
	if s.config != nil {
		s.state.EnterIntro(s.config.Title)
	}
	return s, nil
}

func (s *IntroScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	s.starting = false
	if msg.Err != nil {
		s.errMsg = describeError(msg.Err)
		return s, nil
	}

	if s.config != nil && s.config.TimeLimitMinutes > 0 {
		mins := s.config.TimeLimitMinutes
		if msg.Start != nil && msg.Start.TimeLimitMinutes > 0 {
			mins = msg.Start.TimeLimitMinutes
		}
		s.state.Timer = exam.NewTimer(mins*60, nil)
	}

	s.state.Begin(msg.Questions, time.Now())
	if msg.Snapshot != nil {
		exam.RestoreSnapshot(s.state, msg.Snapshot)
	}

	notice := ""
	if msg.RestoreErr != nil {
		notice = "Could not restore saved answers; starting from the beginning."
	}

	next := test.New(s.state, s.ctrl, s.store, s.log, notice)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if key == "esc" || key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch s.state.Phase {
	case exam.PhaseAuthRequired:
		return s.handleAuthKey(msg)

	case exam.PhaseIntro:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if s.starting {
				return s, nil
			}
			s.starting = true
			return s, s.start()
		}
	default:
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *IntroScreen) handleAuthKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "ctrl+g":
		s.enterAuthForm(!s.authGuest)
		return s, s.authFields[0].Init()
	case "tab", "shift+tab":
		s.authField = (s.authField + 1) % len(s.authFields)
		return s, s.authFields[s.authField].Init()
	case "enter":
		if s.authField < len(s.authFields)-1 {
			s.authField++
			return s, s.authFields[s.authField].Init()
		}
		return s, s.authenticate()
	}

	var cmd tea.Cmd
	s.authFields[s.authField], cmd = s.authFields[s.authField].Update(msg)
	return s, cmd
}

// fetchConfig loads the test configuration asynchronously.
func (s *IntroScreen) fetchConfig() tea.Cmd {
	token := s.state.Token
	return func() tea.Msg {
		cfg, err := s.ctrl.Config(context.Background(), token)
		return configMsg{Config: cfg, Err: err}
	}
}

// authenticate submits the auth form.
func (s *IntroScreen) authenticate() tea.Cmd {
	guest := s.authGuest
	values := make([]string, len(s.authFields))
	for i := range s.authFields {
		values[i] = strings.TrimSpace(s.authFields[i].Value())
	}
	for _, v := range values {
		if v == "" {
			s.authErr = "All fields are required."
			return nil
		}
	}

	client := s.client
	return func() tea.Msg {
		ctx := context.Background()
		var tok *api.AuthToken
		var err error
		if guest {
			tok, err = client.RegisterGuest(ctx, api.GuestInfo{Name: values[0], Email: values[1]})
		} else {
			tok, err = client.Login(ctx, api.Credentials{Email: values[0], Password: values[1]})
		}
		if err != nil {
			return authDoneMsg{Err: err}
		}
		return authDoneMsg{Token: tok.Token}
	}
}

// start starts or resumes the attempt: start call, question fetch, and
// a best-effort snapshot fetch when the server reports one exists.
func (s *IntroScreen) start() tea.Cmd {
	ctrl := s.ctrl
	client := s.client
	token := s.state.Token
	resuming := s.config != nil && s.config.HasInProgressSession
	attemptID := s.state.AttemptID
	mode := "test"
	title := s.Title()
	events := s.store.EventRepo()

	return func() tea.Msg {
		ctx := context.Background()

		start, err := ctrl.Start(ctx, token, nil)
		if err != nil {
			return startedMsg{Err: err}
		}
		questions, err := ctrl.Questions(ctx, token)
		if err != nil {
			return startedMsg{Err: err}
		}
		if len(questions) == 0 {
			return startedMsg{Err: errors.New("this test has no questions")}
		}

		out := startedMsg{Start: start, Questions: questions}

		if resuming || start.IsResuming {
			saved, rerr := client.GetAnswers(ctx, token)
			if rerr != nil {
				out.RestoreErr = rerr
			} else {
				out.Snapshot = exam.SnapshotFromAPI(*saved)
			}
		}

		action := "start"
		if resuming || start.IsResuming {
			action = "resume"
		}
		_ = events.AppendSessionEvent(ctx, store.SessionEventData{
			AttemptID: attemptID,
			Mode:      mode,
			Action:    action,
			Title:     title,
		})

		return out
	}
}

func (s *IntroScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderCentered(width, theme.Incorrect.Render(s.errMsg)+
			"\n\n"+theme.Hint.Render("Press Esc to go back"))
	}

	switch s.state.Phase {
	case exam.PhaseLoading:
		return renderCentered(width, theme.Hint.Render("Loading test details..."))
	case exam.PhaseAuthRequired:
		return s.viewAuth(width)
	case exam.PhaseIntro:
		return s.viewIntro(width)
	}
	return ""
}

func (s *IntroScreen) viewIntro(width int) string {
	cfg := s.config
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render(cfg.Title))
	b.WriteString("\n")
	if cfg.TutorName != "" {
		b.WriteString(theme.Subtitle.Width(width).Render("assigned by " + cfg.TutorName))
	}
	b.WriteString("\n\n")

	details := []string{
		fmt.Sprintf("Subject     %s", cfg.SubjectArea),
		fmt.Sprintf("Questions   %d", cfg.QuestionCount),
	}
	if cfg.TimeLimitMinutes > 0 {
		details = append(details, fmt.Sprintf("Time limit  %d minutes", cfg.TimeLimitMinutes))
	} else {
		details = append(details, "Time limit  none")
	}
	if cfg.RevealAnswers {
		details = append(details, "Answers     shown after each question")
	} else {
		details = append(details, "Answers     shown after submitting")
	}

	card := theme.Card.Render(strings.Join(details, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if cfg.HasInProgressSession {
		b.WriteString("\n\n")
		resume := fmt.Sprintf("You have a session in progress (%d of %d answered).",
			cfg.QuestionsAnswered, cfg.QuestionCount)
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Render(resume))
	}

	b.WriteString("\n\n")
	label := "Start"
	if cfg.HasInProgressSession {
		label = "Resume"
	}
	start := components.NewButton(label, !s.starting, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, start.View()))

	if s.starting {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Starting..."))
	}

	return b.String()
}

func (s *IntroScreen) viewAuth(width int) string {
	var b strings.Builder

	heading := "Sign in to take this test"
	labels := []string{"Email", "Password"}
	if s.authGuest {
		heading = "Tell us who you are"
		labels = []string{"Name", "Email"}
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render(heading))
	b.WriteString("\n\n")

	var form strings.Builder
	for i, f := range s.authFields {
		cursor := "  "
		if i == s.authField {
			cursor = "▸ "
		}
		form.WriteString(fmt.Sprintf("%s%-10s %s\n", cursor, labels[i], f.View()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(form.String())))

	if s.authErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(s.authErr))
	}

	return b.String()
}

func renderCentered(width int, content string) string {
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// describeError maps transport errors to learner-facing text.
func describeError(err error) string {
	var nf *api.ErrNotFound
	var unauth *api.ErrUnauthorized
	var rate *api.ErrRateLimit
	var unavail *api.ErrUnavailable

	switch {
	case errors.As(err, &nf):
		return "This test code is invalid or no longer available."
	case errors.As(err, &unauth):
		return "Sign-in failed. Check your details and try again."
	case errors.As(err, &rate):
		return "The server is busy. Wait a moment and try again."
	case errors.As(err, &unavail):
		return "Could not reach the server. Check your connection and try again."
	}
	return err.Error()
}
