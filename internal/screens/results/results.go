// Package results hosts the recommendation results screen.
package results

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/careerlens/internal/bookmarks"
	"github.com/adesai/careerlens/internal/remote"
	resultsdata "github.com/adesai/careerlens/internal/results"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/session"
	"github.com/adesai/careerlens/internal/ui/components"
	"github.com/adesai/careerlens/internal/ui/layout"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// loadedMsg carries the snapshot fetched on Init.
type loadedMsg struct {
	Snapshot *resultsdata.Snapshot
	Err      error
}

// ResultsScreen shows the latest snapshot with bookmarking and career
// detail notifications.
type ResultsScreen struct {
	sessionMgr *session.Manager
	orch       *resultsdata.Orchestrator
	bookmarks  *bookmarks.Registry
	svc        remote.Service

	snapshot   *resultsdata.Snapshot
	bookmarked map[string]bool
	selected   int
	expanded   bool
	errMsg     string
	loading    bool
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates a results screen that loads the snapshot cache-first on Init.
func New(sessionMgr *session.Manager, orch *resultsdata.Orchestrator, registry *bookmarks.Registry, svc remote.Service) *ResultsScreen {
	return &ResultsScreen{
		sessionMgr: sessionMgr,
		orch:       orch,
		bookmarks:  registry,
		svc:        svc,
		bookmarked: make(map[string]bool),
		loading:    true,
	}
}

// NewWithSnapshot creates a results screen around an already-computed
// snapshot, skipping the load.
func NewWithSnapshot(snap *resultsdata.Snapshot, registry *bookmarks.Registry, svc remote.Service) *ResultsScreen {
	return &ResultsScreen{
		bookmarks:  registry,
		svc:        svc,
		snapshot:   snap,
		bookmarked: make(map[string]bool),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{r.loadBookmarks()}
	if r.loading {
		cmds = append(cmds, func() tea.Msg {
			ctx := context.Background()
			token, err := r.sessionMgr.GetOrCreate(ctx)
			if err != nil {
				return loadedMsg{Err: err}
			}
			snap, err := r.orch.Load(ctx, token)
			return loadedMsg{Snapshot: snap, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

type bookmarksMsg map[string]bool

func (r *ResultsScreen) loadBookmarks() tea.Cmd {
	return func() tea.Msg {
		list, err := r.bookmarks.List(context.Background())
		if err != nil {
			return bookmarksMsg(nil)
		}
		set := make(map[string]bool, len(list))
		for _, career := range list {
			set[career] = true
		}
		return bookmarksMsg(set)
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		r.loading = false
		if msg.Err != nil {
			if errors.Is(msg.Err, resultsdata.ErrNotFound) {
				r.errMsg = "No results yet. Take the quiz first."
			} else {
				r.errMsg = msg.Err.Error()
			}
			return r, nil
		}
		r.snapshot = msg.Snapshot
		return r, nil

	case bookmarksMsg:
		if msg != nil {
			r.bookmarked = msg
		}
		return r, nil

	case tea.KeyMsg:
		if r.snapshot == nil {
			return r, nil
		}
		switch msg.String() {
		case "up", "k":
			if r.selected > 0 {
				r.selected--
			}
		case "down", "j":
			if r.selected < len(r.snapshot.Recommendations)-1 {
				r.selected++
			}
		case "b":
			return r, r.toggleBookmark()
		case "enter":
			r.expanded = !r.expanded
			if r.expanded {
				return r, r.notifyView()
			}
		}
	}
	return r, nil
}

func (r *ResultsScreen) toggleBookmark() tea.Cmd {
	career := r.snapshot.Recommendations[r.selected].Career
	return func() tea.Msg {
		list, err := r.bookmarks.Toggle(context.Background(), career)
		if err != nil {
			return bookmarksMsg(nil)
		}
		set := make(map[string]bool, len(list))
		for _, c := range list {
			set[c] = true
		}
		return bookmarksMsg(set)
	}
}

// notifyView tells the backend a career detail was opened. Best effort; a
// failed notification never disturbs the screen.
func (r *ResultsScreen) notifyView() tea.Cmd {
	career := r.snapshot.Recommendations[r.selected].Career
	sessionID := r.snapshot.SessionID
	return func() tea.Msg {
		_ = r.svc.ViewCareer(context.Background(), sessionID, career)
		return nil
	}
}

func (r *ResultsScreen) View(width, height int) string {
	var content string

	switch {
	case r.loading:
		content = theme.Subtitle.Render("Loading your results...")
	case r.errMsg != "":
		content = theme.Subtitle.Render(r.errMsg)
	case r.snapshot == nil || len(r.snapshot.Recommendations) == 0:
		content = theme.Subtitle.Render("No results yet. Take the quiz first.")
	default:
		content = r.renderSnapshot(width)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) renderSnapshot(width int) string {
	snap := r.snapshot
	barWidth := min(width-20, 40)

	rows := []string{
		theme.Title.Render("Best match: " + snap.PrimaryCareer),
		theme.Subtitle.Render(fmt.Sprintf("%.0f%% compatibility", snap.PrimaryCompatibility)),
		"",
	}

	for i, rec := range snap.Recommendations {
		marker := "  "
		style := theme.Unselected
		if i == r.selected {
			marker = "▸ "
			style = theme.Selected
		}
		star := "  "
		if r.bookmarked[rec.Career] {
			star = theme.Bookmarked.Render("★ ")
		}
		bar := components.NewProgressBar("", rec.CompatibilityScore/100, false, barWidth)
		line := marker + star + style.Render(rec.Career) + "\n    " +
			bar.View() + theme.Hint.Render(fmt.Sprintf(" %.0f%%", rec.CompatibilityScore))
		rows = append(rows, line)

		if i == r.selected && r.expanded {
			rows = append(rows, r.renderDetail(rec, width))
		}
	}

	if len(snap.Abilities) > 0 {
		rows = append(rows, "", theme.Hint.Render("Ability profile"))
		rows = append(rows, renderAbilities(snap.Abilities, barWidth))
	}

	return theme.Card.Render(strings.Join(rows, "\n"))
}

func (r *ResultsScreen) renderDetail(rec remote.Recommendation, width int) string {
	wrap := lipgloss.NewStyle().Width(min(width-16, 64)).Foreground(theme.TextDim)
	parts := []string{wrap.Render(rec.Explanation)}
	if len(rec.RequiredSkills) > 0 {
		parts = append(parts, wrap.Render("Skills: "+strings.Join(rec.RequiredSkills, ", ")))
	}
	if rec.SuitableFor != "" {
		parts = append(parts, wrap.Render("Suits: "+rec.SuitableFor))
	}
	return "    " + strings.Join(parts, "\n    ")
}

func renderAbilities(abilities map[string]float64, barWidth int) string {
	names := make([]string, 0, len(abilities))
	for name := range abilities {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		bar := components.NewProgressBar(fmt.Sprintf("%-18s", name), abilities[name]/10, false, barWidth)
		lines = append(lines, bar.View()+theme.Hint.Render(fmt.Sprintf(" %.1f", abilities[name])))
	}
	return strings.Join(lines, "\n")
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

// KeyHints implements screen.KeyHintProvider.
func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Details"},
		{Key: "B", Description: "Bookmark"},
		{Key: "Esc", Description: "Back"},
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
