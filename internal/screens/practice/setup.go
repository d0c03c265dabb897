package practice

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// SetupScreen collects the skills and question count for an adaptive
// session, then hands off to the practice screen.
type SetupScreen struct {
	client api.Client
	store  *store.Store
	log    zerolog.Logger

	skills components.TextInput
	count  components.TextInput
	field  int
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// NewSetup creates the practice setup screen.
func NewSetup(client api.Client, st *store.Store, log zerolog.Logger) *SetupScreen {
	return &SetupScreen{
		client: client,
		store:  st,
		log:    log,
		skills: components.NewTextInput("fractions, linear-equations", false, 120),
		count:  components.NewTextInput("10 (blank for open-ended)", true, 3),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.skills.Init()
}

func (s *SetupScreen) Title() string {
	return "Practice"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forward(msg)
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "shift+tab":
		s.field = 1 - s.field
		if s.field == 0 {
			return s, s.skills.Init()
		}
		return s, s.count.Init()
	case "enter":
		return s.start()
	}
	return s.forward(msg)
}

func (s *SetupScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.field == 0 {
		s.skills, cmd = s.skills.Update(msg)
	} else {
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	skills := splitSkills(s.skills.Value())
	if len(skills) == 0 {
		s.errMsg = "Name at least one skill to practice."
		return s, nil
	}

	count := 0
	if v := strings.TrimSpace(s.count.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errMsg = "Question count must be a positive number."
			return s, nil
		}
		count = n
	}

	next := New(s.client, s.store, s.log, skills, count)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Adaptive Practice"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Question difficulty follows your ability estimate"))
	b.WriteString("\n\n")

	var form strings.Builder
	cursor := []string{"  ", "  "}
	cursor[s.field] = "▸ "
	form.WriteString(cursor[0] + "Skills     " + s.skills.View() + "\n")
	form.WriteString(cursor[1] + "Questions  " + s.count.View() + "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(form.String())))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(s.errMsg))
	}
	return b.String()
}
