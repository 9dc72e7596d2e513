// Package compare hosts the attempt-comparison screen.
package compare

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	comparedata "github.com/adesai/careerlens/internal/compare"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// CompareScreen renders a comparison matrix. Static; computed once in New.
type CompareScreen struct {
	result *comparedata.Result
	errMsg string
}

var _ screen.Screen = (*CompareScreen)(nil)

// New computes the comparison for the given selections.
func New(selections []comparedata.Selection) *CompareScreen {
	result, err := comparedata.Compare(selections)
	if err != nil {
		return &CompareScreen{errMsg: err.Error()}
	}
	return &CompareScreen{result: result}
}

func (c *CompareScreen) Init() tea.Cmd {
	return nil
}

func (c *CompareScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return c, nil
}

func (c *CompareScreen) View(width, height int) string {
	if c.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Negative.Render(c.errMsg))
	}

	const abilityCol = 20
	const scoreCol = 18

	header := pad("Ability", abilityCol)
	for _, col := range c.result.Columns {
		header += pad(col, scoreCol)
	}
	rows := []string{theme.Selected.Render(header)}

	for _, row := range c.result.Rows {
		line := pad(row.Ability, abilityCol)
		for _, score := range row.Scores {
			line += pad(fmt.Sprintf("%.1f", score), scoreCol)
		}
		rows = append(rows, theme.Body.Render(line))
	}
	if len(c.result.Rows) == 0 {
		rows = append(rows, theme.Hint.Render("No ability data recorded for the first attempt."))
	}

	rows = append(rows, "")
	if c.result.HasDelta {
		deltaStyle := theme.Positive
		sign := "+"
		if c.result.Delta < 0 {
			deltaStyle = theme.Negative
			sign = ""
		}
		rows = append(rows, deltaStyle.Render(
			fmt.Sprintf("Compatibility trend: %s%d%%", sign, c.result.Delta)))
	}
	if c.result.Consistent {
		rows = append(rows, theme.Positive.Render("Consistent primary career across attempts"))
	} else {
		rows = append(rows, theme.Hint.Render("Primary career varies between attempts"))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (c *CompareScreen) Title() string {
	return "Compare Attempts"
}
