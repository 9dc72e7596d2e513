// Package history hosts the past-attempts screen.
package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/careerlens/internal/compare"
	historydata "github.com/adesai/careerlens/internal/history"
	"github.com/adesai/careerlens/internal/identity"
	"github.com/adesai/careerlens/internal/router"
	"github.com/adesai/careerlens/internal/screen"
	comparescreen "github.com/adesai/careerlens/internal/screens/compare"
	"github.com/adesai/careerlens/internal/ui/layout"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// entriesMsg carries the ledger contents loaded on Init or after a delete.
type entriesMsg struct {
	Username string
	Entries  []historydata.Entry
	Err      error
}

// HistoryScreen lists past attempts and launches comparisons.
type HistoryScreen struct {
	registry *identity.Registry
	ledger   func(username string) *historydata.Ledger

	username string
	entries  []historydata.Entry
	selected int
	marked   map[int]bool
	errMsg   string
	loading  bool
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates the history screen for the signed-in user.
func New(registry *identity.Registry, ledger func(username string) *historydata.Ledger) *HistoryScreen {
	return &HistoryScreen{
		registry: registry,
		ledger:   ledger,
		marked:   make(map[int]bool),
		loading:  true,
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return h.reload()
}

func (h *HistoryScreen) reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		username, ok, err := h.registry.CurrentUser(ctx)
		if err != nil {
			return entriesMsg{Err: err}
		}
		if !ok {
			return entriesMsg{Err: fmt.Errorf("sign in to see your quiz history")}
		}
		entries, err := h.ledger(username).List(ctx)
		return entriesMsg{Username: username, Entries: entries, Err: err}
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesMsg:
		h.loading = false
		if msg.Username != "" {
			h.username = msg.Username
		}
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.entries = msg.Entries
		if h.selected >= len(h.entries) {
			h.selected = max(0, len(h.entries)-1)
		}
		return h, nil

	case tea.KeyMsg:
		if len(h.entries) == 0 {
			return h, nil
		}
		switch msg.String() {
		case "up", "k":
			if h.selected > 0 {
				h.selected--
			}
		case "down", "j":
			if h.selected < len(h.entries)-1 {
				h.selected++
			}
		case " ":
			h.toggleMark()
		case "d":
			return h, h.deleteSelected()
		case "c", "enter":
			return h, h.launchCompare()
		}
	}
	return h, nil
}

func (h *HistoryScreen) toggleMark() {
	if h.marked[h.selected] {
		delete(h.marked, h.selected)
		return
	}
	if len(h.marked) >= compare.MaxSelections {
		return
	}
	h.marked[h.selected] = true
}

func (h *HistoryScreen) deleteSelected() tea.Cmd {
	index := h.selected
	h.marked = make(map[int]bool)
	return func() tea.Msg {
		ctx := context.Background()
		if err := h.ledger(h.username).DeleteAt(ctx, index); err != nil {
			return entriesMsg{Err: err}
		}
		entries, err := h.ledger(h.username).List(ctx)
		return entriesMsg{Entries: entries, Err: err}
	}
}

func (h *HistoryScreen) launchCompare() tea.Cmd {
	if len(h.marked) < 2 {
		h.errMsg = "Mark at least two attempts with Space first."
		return nil
	}
	selections := make([]compare.Selection, 0, len(h.marked))
	for idx := range h.marked {
		selections = append(selections, compare.Selection{
			LedgerIndex: idx,
			Entry:       h.entries[idx],
		})
	}
	// Newest attempt first, matching ledger order.
	sort.Slice(selections, func(i, j int) bool {
		return selections[i].LedgerIndex < selections[j].LedgerIndex
	})
	h.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: comparescreen.New(selections)}
	}
}

func (h *HistoryScreen) View(width, height int) string {
	var content string

	switch {
	case h.loading:
		content = theme.Subtitle.Render("Loading history...")
	case h.errMsg != "" && len(h.entries) == 0:
		content = theme.Subtitle.Render(h.errMsg)
	case len(h.entries) == 0:
		content = theme.Subtitle.Render("No attempts yet. Take the quiz!")
	default:
		rows := make([]string, 0, len(h.entries)+2)
		for i, e := range h.entries {
			marker := "  "
			style := theme.Unselected
			if i == h.selected {
				marker = "▸ "
				style = theme.Selected
			}
			check := "[ ] "
			if h.marked[i] {
				check = theme.Bookmarked.Render("[x] ")
			}
			line := marker + check + style.Render(fmt.Sprintf(
				"%s  %s  %d%%",
				e.Date.Format("2006-01-02 15:04"), e.PrimaryCareer, e.Compatibility,
			))
			rows = append(rows, line)
		}
		if h.errMsg != "" {
			rows = append(rows, "", theme.Negative.Render(h.errMsg))
		}
		content = theme.Card.Render(strings.Join(rows, "\n"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HistoryScreen) Title() string {
	return "Quiz History"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Mark"},
		{Key: "C", Description: "Compare marked"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
