package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/careerlens/internal/ui/theme"
)

// Scale is a 1..10 agreement picker for quiz answers.
type Scale struct {
	Min      int
	Max      int
	Selected int
}

// NewScale creates a scale with the selection parked at the midpoint.
func NewScale(min, max int) Scale {
	return Scale{Min: min, Max: max, Selected: (min + max) / 2}
}

// Update handles keyboard input. Left/right moves the selection, a digit
// jumps straight to that value (0 selects 10).
func (s Scale) Update(msg tea.Msg) (Scale, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if s.Selected > s.Min {
			s.Selected--
		}
	case "right", "l":
		if s.Selected < s.Max {
			s.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			v := int(key[0] - '0')
			if v == 0 {
				v = 10
			}
			if v >= s.Min && v <= s.Max {
				s.Selected = v
			}
		}
	}
	return s, nil
}

// View renders the scale with endpoint captions.
func (s Scale) View() string {
	cells := make([]string, 0, s.Max-s.Min+1)
	for v := s.Min; v <= s.Max; v++ {
		label := fmt.Sprintf(" %d ", v)
		if v == s.Selected {
			cells = append(cells, lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(label))
		} else {
			cells = append(cells, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}

	row := strings.Join(cells, " ")
	captions := lipgloss.NewStyle().Foreground(theme.TextDim).Render("disagree") +
		strings.Repeat(" ", max(1, lipgloss.Width(row)-17)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("agree")

	return row + "\n" + captions
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
