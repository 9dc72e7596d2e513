package careers

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	bookmarksdata "github.com/adesai/careerlens/internal/bookmarks"
	"github.com/adesai/careerlens/internal/remote"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/ui/layout"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// detailMsg carries the loaded profile and bookmark state.
type detailMsg struct {
	Detail     *remote.CareerDetail
	Bookmarked bool
	Err        error
}

// detailToggledMsg carries the bookmark state after a toggle.
type detailToggledMsg struct {
	Bookmarked bool
	Err        error
}

// DetailScreen shows one career's full profile.
type DetailScreen struct {
	registry *bookmarksdata.Registry
	svc      remote.Service
	career   remote.Career

	detail     *remote.CareerDetail
	bookmarked bool
	errMsg     string
	loading    bool
}

var _ screen.Screen = (*DetailScreen)(nil)

// NewDetail creates the detail screen for career; the full profile loads
// on Init.
func NewDetail(registry *bookmarksdata.Registry, svc remote.Service, career remote.Career) *DetailScreen {
	return &DetailScreen{
		registry: registry,
		svc:      svc,
		career:   career,
		loading:  true,
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		detail, err := d.svc.CareerDetail(ctx, d.career.ID)
		if err != nil {
			return detailMsg{Err: err}
		}
		bookmarked, err := d.registry.Contains(ctx, d.career.Name)
		return detailMsg{Detail: detail, Bookmarked: bookmarked, Err: err}
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailMsg:
		d.loading = false
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.detail = msg.Detail
		d.bookmarked = msg.Bookmarked
		return d, nil

	case detailToggledMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.bookmarked = msg.Bookmarked
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "b" {
			return d, func() tea.Msg {
				ctx := context.Background()
				bookmarked, err := d.registry.Toggle(ctx, d.career.Name)
				if err != nil {
					return detailToggledMsg{Err: err}
				}
				return detailToggledMsg{Bookmarked: contains(bookmarked, d.career.Name)}
			}
		}
	}
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	var content string

	switch {
	case d.loading:
		content = theme.Subtitle.Render("Loading " + d.career.Name + "...")
	case d.errMsg != "":
		content = theme.Negative.Render(d.errMsg)
	case d.detail == nil:
		content = theme.Subtitle.Render("This career is no longer in the catalog.")
	default:
		content = theme.Card.Render(d.renderProfile())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DetailScreen) renderProfile() string {
	detail := d.detail

	title := theme.Title.Render(detail.Name)
	if d.bookmarked {
		title += " " + theme.Bookmarked.Render("★")
	}
	rows := []string{title, "", theme.Body.Render(detail.Description)}

	if detail.AverageSalaryRange != "" {
		rows = append(rows, "", label("Salary")+detail.AverageSalaryRange)
	}
	if detail.JobGrowth != "" {
		rows = append(rows, label("Job growth")+detail.JobGrowth)
	}
	if detail.RequiredEducation != "" {
		rows = append(rows, label("Education")+detail.RequiredEducation)
	}
	if len(detail.RequiredSkills) > 0 {
		rows = append(rows, label("Skills")+strings.Join(detail.RequiredSkills, ", "))
	}
	if len(detail.TypicalCompanies) > 0 {
		rows = append(rows, label("Companies")+strings.Join(detail.TypicalCompanies, ", "))
	}
	if len(detail.RelatedCareers) > 0 {
		rows = append(rows, label("Related")+strings.Join(detail.RelatedCareers, ", "))
	}

	if len(detail.Courses) > 0 {
		rows = append(rows, "", theme.Subtitle.Render("Courses"))
		for _, course := range detail.Courses {
			line := "  • " + course.Name
			if course.Provider != "" {
				line += theme.Hint.Render(fmt.Sprintf("  %s", course.Provider))
			}
			if course.Difficulty != "" {
				line += theme.Hint.Render(fmt.Sprintf("  [%s]", course.Difficulty))
			}
			rows = append(rows, line)
		}
	}

	if len(detail.Universities) > 0 {
		rows = append(rows, "", theme.Subtitle.Render("Universities"))
		for _, uni := range detail.Universities {
			line := "  • " + uni.Name
			if uni.Program != "" {
				line += theme.Hint.Render("  " + uni.Program)
			}
			if uni.Location != "" {
				line += theme.Hint.Render("  " + uni.Location)
			}
			rows = append(rows, line)
		}
	}

	return strings.Join(rows, "\n")
}

func (d *DetailScreen) Title() string {
	return d.career.Name
}

// KeyHints implements screen.KeyHintProvider.
func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "B", Description: "Bookmark"},
		{Key: "Esc", Description: "Back"},
	}
}

func label(s string) string {
	return theme.Hint.Render(s + ": ")
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
