package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/careerlens/internal/bookmarks"
	"github.com/adesai/careerlens/internal/history"
	"github.com/adesai/careerlens/internal/identity"
	"github.com/adesai/careerlens/internal/quiz"
	"github.com/adesai/careerlens/internal/remote"
	"github.com/adesai/careerlens/internal/results"
	"github.com/adesai/careerlens/internal/router"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/screens/auth"
	bookmarksscreen "github.com/adesai/careerlens/internal/screens/bookmarks"
	careersscreen "github.com/adesai/careerlens/internal/screens/careers"
	historyscreen "github.com/adesai/careerlens/internal/screens/history"
	quizscreen "github.com/adesai/careerlens/internal/screens/quiz"
	resultsscreen "github.com/adesai/careerlens/internal/screens/results"
	"github.com/adesai/careerlens/internal/session"
	"github.com/adesai/careerlens/internal/ui/components"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// Services bundles everything the navigable screens need.
type Services struct {
	Session   *session.Manager
	Identity  *identity.Registry
	Progress  *quiz.Progress
	Bookmarks *bookmarks.Registry
	Remote    remote.Service
	Results   *results.Orchestrator
	Ledger    func(username string) *history.Ledger
}

// HomeScreen is the main navigation screen.
type HomeScreen struct {
	svcs     Services
	menu     components.Menu
	username string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for the current auth state.
func New(svcs Services) *HomeScreen {
	username, _, _ := svcs.Identity.CurrentUser(context.Background())

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "TAKE CAREER QUIZ", Action: push(func() screen.Screen {
			return quizscreen.New(quizscreen.Services{
				Session:   svcs.Session,
				Identity:  svcs.Identity,
				Progress:  svcs.Progress,
				Remote:    svcs.Remote,
				Results:   svcs.Results,
				Ledger:    svcs.Ledger,
				Bookmarks: svcs.Bookmarks,
			})
		})},
		{Label: "MY RESULTS", Action: push(func() screen.Screen {
			return resultsscreen.New(svcs.Session, svcs.Results, svcs.Bookmarks, svcs.Remote)
		})},
		{Label: "BROWSE CAREERS", Action: push(func() screen.Screen {
			return careersscreen.New(svcs.Bookmarks, svcs.Remote)
		})},
		{Label: "QUIZ HISTORY", Action: push(func() screen.Screen {
			return historyscreen.New(svcs.Identity, svcs.Ledger)
		}), Disabled: username == ""},
		{Label: "BOOKMARKS", Action: push(func() screen.Screen {
			return bookmarksscreen.New(svcs.Bookmarks)
		})},
	}

	if username == "" {
		items = append(items, components.MenuItem{
			Label: "SIGN IN / CREATE ACCOUNT",
			Action: push(func() screen.Screen {
				return auth.New(svcs.Identity)
			}),
		})
	} else {
		items = append(items, components.MenuItem{
			Label: "SIGN OUT (" + username + ")",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					_ = svcs.Identity.Logout(context.Background())
					return auth.ChangedMsg{}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		svcs:     svcs,
		menu:     components.NewMenu(items),
		username: username,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("CareerLens")
	subtitle := theme.Subtitle.Render("Answer honestly. See where you fit.")

	card := theme.Card.Render(h.menu.View())

	content := strings.Join([]string{title, subtitle, "", card}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
