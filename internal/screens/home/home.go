package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/history"
	"github.com/abhisek/prepdeck/internal/screens/intro"
	"github.com/abhisek/prepdeck/internal/screens/practice"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// HomeScreen is the entry menu: take a test by token, start a practice
// session, or browse past results.
type HomeScreen struct {
	client api.Client
	store  *store.Store
	log    zerolog.Logger

	menu       components.Menu
	tokenEntry bool
	tokenInput components.TextInput
	tokenErr   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(client api.Client, st *store.Store, log zerolog.Logger) *HomeScreen {
	h := &HomeScreen{
		client: client,
		store:  st,
		log:    log,
	}

	items := []components.MenuItem{
		{Label: "TAKE A TEST", Action: func() tea.Cmd {
			h.tokenEntry = true
			h.tokenErr = ""
			h.tokenInput = components.NewTextInput("Enter test code...", false, 40)
			return h.tokenInput.Init()
		}},
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.NewSetup(client, st, log)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st.ResultRepo())}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.tokenEntry {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open test"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.tokenEntry {
		return h.updateTokenEntry(msg)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateTokenEntry(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.tokenEntry = false
			return h, nil
		case "enter":
			token := strings.TrimSpace(h.tokenInput.Value())
			if token == "" {
				h.tokenErr = "Enter the code your tutor shared with you."
				return h, nil
			}
			h.tokenEntry = false
			return h, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: intro.New(h.client, h.store, h.log, token),
				}
			}
		}
	}

	var cmd tea.Cmd
	h.tokenInput, cmd = h.tokenInput.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Title.Width(width).Render("PREPDECK")
	subtitle := theme.Subtitle.Width(width).Render("Timed assessments and adaptive practice, in your terminal")

	b.WriteString("\n\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(subtitle)
	b.WriteString("\n\n\n")

	if h.tokenEntry {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("Test code: " + h.tokenInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		if h.tokenErr != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(h.tokenErr))
		}
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	}

	return b.String()
}
