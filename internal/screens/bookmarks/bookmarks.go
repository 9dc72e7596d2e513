// Package bookmarks hosts the saved-careers screen.
package bookmarks

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	bookmarksdata "github.com/adesai/careerlens/internal/bookmarks"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/ui/layout"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// listMsg carries the bookmark set after a load or toggle.
type listMsg struct {
	Careers []string
	Err     error
}

// BookmarksScreen lists saved careers and removes them on demand.
type BookmarksScreen struct {
	registry *bookmarksdata.Registry

	careers  []string
	selected int
	errMsg   string
	loading  bool
}

var _ screen.Screen = (*BookmarksScreen)(nil)

// New creates the bookmarks screen; the set loads on Init.
func New(registry *bookmarksdata.Registry) *BookmarksScreen {
	return &BookmarksScreen{registry: registry, loading: true}
}

func (b *BookmarksScreen) Init() tea.Cmd {
	return func() tea.Msg {
		careers, err := b.registry.List(context.Background())
		return listMsg{Careers: careers, Err: err}
	}
}

func (b *BookmarksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listMsg:
		b.loading = false
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		b.careers = msg.Careers
		if b.selected >= len(b.careers) {
			b.selected = max(0, len(b.careers)-1)
		}
		return b, nil

	case tea.KeyMsg:
		if len(b.careers) == 0 {
			return b, nil
		}
		switch msg.String() {
		case "up", "k":
			if b.selected > 0 {
				b.selected--
			}
		case "down", "j":
			if b.selected < len(b.careers)-1 {
				b.selected++
			}
		case "d", "enter":
			career := b.careers[b.selected]
			return b, func() tea.Msg {
				careers, err := b.registry.Toggle(context.Background(), career)
				return listMsg{Careers: careers, Err: err}
			}
		}
	}
	return b, nil
}

func (b *BookmarksScreen) View(width, height int) string {
	var content string

	switch {
	case b.loading:
		content = theme.Subtitle.Render("Loading bookmarks...")
	case b.errMsg != "":
		content = theme.Negative.Render(b.errMsg)
	case len(b.careers) == 0:
		content = theme.Subtitle.Render("Nothing saved yet. Bookmark careers from your results.")
	default:
		rows := make([]string, 0, len(b.careers))
		for i, career := range b.careers {
			if i == b.selected {
				rows = append(rows, theme.Selected.Render("▸ "+theme.Bookmarked.Render("★ ")+career))
			} else {
				rows = append(rows, theme.Unselected.Render("  "+theme.Bookmarked.Render("★ ")+career))
			}
		}
		content = theme.Card.Render(strings.Join(rows, "\n"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (b *BookmarksScreen) Title() string {
	return "Bookmarks"
}

// KeyHints implements screen.KeyHintProvider.
func (b *BookmarksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "D", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
