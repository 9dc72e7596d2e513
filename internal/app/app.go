package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/careerlens/internal/router"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/screens/auth"
	"github.com/adesai/careerlens/internal/screens/home"
	"github.com/adesai/careerlens/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svcs     home.Services
	router   *router.Router
	username string
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(svcs home.Services) AppModel {
	username, _, _ := svcs.Identity.CurrentUser(context.Background())
	return AppModel{
		svcs:     svcs,
		router:   router.New(home.New(svcs)),
		username: username,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case auth.ChangedMsg:
		// The signed-in user changed; rebuild navigation from scratch.
		m.username, _, _ = m.svcs.Identity.CurrentUser(context.Background())
		m.router = router.New(home.New(m.svcs))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.width)

	footerHints := defaultHints(m.router.Depth())
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func defaultHints(depth int) []layout.KeyHint {
	if depth > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(svcs home.Services) error {
	p := tea.NewProgram(newAppModel(svcs))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
