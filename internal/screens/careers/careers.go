// Package careers hosts the browsable career catalog.
package careers

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	bookmarksdata "github.com/adesai/careerlens/internal/bookmarks"
	"github.com/adesai/careerlens/internal/remote"
	"github.com/adesai/careerlens/internal/router"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/ui/components"
	"github.com/adesai/careerlens/internal/ui/layout"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// catalogMsg carries the catalog and the current bookmark set.
type catalogMsg struct {
	Careers    []remote.Career
	Bookmarked []string
	Err        error
}

// toggledMsg carries the bookmark set after a toggle.
type toggledMsg struct {
	Bookmarked []string
	Err        error
}

// CareersScreen lists every career with search and per-career bookmarking.
type CareersScreen struct {
	registry *bookmarksdata.Registry
	svc      remote.Service

	careers    []remote.Career
	bookmarked map[string]bool
	search     components.TextInput
	searching  bool
	selected   int
	errMsg     string
	loading    bool
}

var _ screen.Screen = (*CareersScreen)(nil)

// New creates the catalog screen; the catalog loads on Init.
func New(registry *bookmarksdata.Registry, svc remote.Service) *CareersScreen {
	search := components.NewTextInput("Search careers...", false, 40)
	search.Model.Blur()
	return &CareersScreen{
		registry: registry,
		svc:      svc,
		search:   search,
		loading:  true,
	}
}

func (c *CareersScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		careers, err := c.svc.Careers(ctx)
		if err != nil {
			return catalogMsg{Err: err}
		}
		bookmarked, err := c.registry.List(ctx)
		return catalogMsg{Careers: careers, Bookmarked: bookmarked, Err: err}
	}
}

func (c *CareersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		c.loading = false
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.careers = msg.Careers
		c.bookmarked = toSet(msg.Bookmarked)
		return c, nil

	case toggledMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.bookmarked = toSet(msg.Bookmarked)
		return c, nil

	case tea.KeyMsg:
		if c.searching {
			if msg.String() == "enter" {
				c.searching = false
				c.search.Model.Blur()
				c.clamp()
				return c, nil
			}
			var cmd tea.Cmd
			c.search, cmd = c.search.Update(msg)
			c.selected = 0
			return c, cmd
		}

		switch msg.String() {
		case "/":
			c.searching = true
			return c, c.search.Model.Focus()
		case "up", "k":
			if c.selected > 0 {
				c.selected--
			}
		case "down", "j":
			if c.selected < len(c.visible())-1 {
				c.selected++
			}
		case "b":
			list := c.visible()
			if len(list) == 0 {
				return c, nil
			}
			name := list[c.selected].Name
			return c, func() tea.Msg {
				bookmarked, err := c.registry.Toggle(context.Background(), name)
				return toggledMsg{Bookmarked: bookmarked, Err: err}
			}
		case "enter":
			list := c.visible()
			if len(list) == 0 {
				return c, nil
			}
			career := list[c.selected]
			return c, func() tea.Msg {
				return router.PushScreenMsg{Screen: NewDetail(c.registry, c.svc, career)}
			}
		}
	}
	return c, nil
}

// visible returns the catalog filtered by the search query, matching name
// or description case-insensitively.
func (c *CareersScreen) visible() []remote.Career {
	query := strings.ToLower(strings.TrimSpace(c.search.Value()))
	if query == "" {
		return c.careers
	}
	var out []remote.Career
	for _, career := range c.careers {
		if strings.Contains(strings.ToLower(career.Name), query) ||
			strings.Contains(strings.ToLower(career.Description), query) {
			out = append(out, career)
		}
	}
	return out
}

func (c *CareersScreen) clamp() {
	if n := len(c.visible()); c.selected >= n {
		c.selected = max(0, n-1)
	}
}

func (c *CareersScreen) View(width, height int) string {
	var content string

	switch {
	case c.loading:
		content = theme.Subtitle.Render("Loading careers...")
	case c.errMsg != "":
		content = theme.Negative.Render(c.errMsg)
	default:
		var rows []string
		if c.searching || c.search.Value() != "" {
			rows = append(rows, c.search.View(), "")
		}

		list := c.visible()
		if len(list) == 0 {
			rows = append(rows, theme.Subtitle.Render("No careers match."))
		}
		for i, career := range list {
			star := "  "
			if c.bookmarked[career.Name] {
				star = theme.Bookmarked.Render("★ ")
			}
			line := star + career.Name
			if career.AverageSalaryRange != "" {
				line += theme.Hint.Render("  " + career.AverageSalaryRange)
			}
			if i == c.selected && !c.searching {
				rows = append(rows, theme.Selected.Render("▸ ")+line)
			} else {
				rows = append(rows, "  "+line)
			}
		}

		if !c.searching && c.selected < len(list) {
			rows = append(rows, "", theme.Hint.Render(snippet(list[c.selected].Description, 70)))
		}
		content = theme.Card.Render(strings.Join(rows, "\n"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CareersScreen) Title() string {
	return "Careers"
}

// KeyHints implements screen.KeyHintProvider.
func (c *CareersScreen) KeyHints() []layout.KeyHint {
	if c.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "/", Description: "Search"},
		{Key: "B", Description: "Bookmark"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// snippet truncates s to at most n runes on a word boundary.
func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
