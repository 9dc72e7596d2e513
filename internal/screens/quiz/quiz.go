// Package quiz hosts the question-by-question quiz screen.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/careerlens/internal/bookmarks"
	"github.com/adesai/careerlens/internal/history"
	"github.com/adesai/careerlens/internal/identity"
	quizdata "github.com/adesai/careerlens/internal/quiz"
	"github.com/adesai/careerlens/internal/remote"
	"github.com/adesai/careerlens/internal/results"
	"github.com/adesai/careerlens/internal/router"
	"github.com/adesai/careerlens/internal/screen"
	resultsscreen "github.com/adesai/careerlens/internal/screens/results"
	"github.com/adesai/careerlens/internal/session"
	"github.com/adesai/careerlens/internal/ui/components"
	"github.com/adesai/careerlens/internal/ui/layout"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// Services are the collaborators the quiz flow needs.
type Services struct {
	Session  *session.Manager
	Identity *identity.Registry
	Progress *quizdata.Progress
	Remote   remote.Service
	Results  *results.Orchestrator
	Ledger   func(username string) *history.Ledger
	// Bookmarks is passed through to the results screen.
	Bookmarks *bookmarks.Registry
}

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseSubmitting
	phaseFailed
)

// QuizScreen walks the user through the questionnaire and submits it.
type QuizScreen struct {
	svcs Services

	phase     phase
	questions []quizdata.Question
	answers   map[int]int
	index     int
	scale     components.Scale
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates the quiz screen; questions load asynchronously on Init.
func New(svcs Services) *QuizScreen {
	return &QuizScreen{
		svcs:    svcs,
		phase:   phaseLoading,
		answers: make(map[int]int),
		scale:   components.NewScale(quizdata.MinAnswer, quizdata.MaxAnswer),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		questions, err := q.svcs.Remote.Questions(ctx)
		if err != nil {
			return questionsLoadedMsg{Err: err}
		}
		saved, err := q.svcs.Progress.Load(ctx)
		if err != nil {
			return questionsLoadedMsg{Err: err}
		}
		return questionsLoadedMsg{Questions: questions, Saved: saved}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.Err != nil {
			q.phase = phaseFailed
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.questions = msg.Questions
		q.answers = msg.Saved
		if q.answers == nil {
			q.answers = make(map[int]int)
		}
		q.phase = phaseAnswering
		q.seek()
		return q, nil

	case resultsReadyMsg:
		if msg.Err != nil {
			q.phase = phaseFailed
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		return q, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: resultsscreen.NewWithSnapshot(msg.Snapshot, q.svcs.Bookmarks, q.svcs.Remote),
			}
		}

	case tea.KeyMsg:
		if q.phase != phaseAnswering || len(q.questions) == 0 {
			return q, nil
		}
		switch msg.String() {
		case "enter":
			return q, q.record()
		case "up":
			if q.index > 0 {
				q.index--
				q.syncScale()
			}
			return q, nil
		}
		var cmd tea.Cmd
		q.scale, cmd = q.scale.Update(msg)
		return q, cmd
	}
	return q, nil
}

// seek positions the cursor at the first unanswered question, so a
// half-finished quiz resumes where it left off. With everything already
// answered it parks on the last question, ready to resubmit.
func (q *QuizScreen) seek() {
	if len(q.questions) == 0 {
		return
	}
	for i, question := range q.questions {
		if _, ok := q.answers[question.ID]; !ok {
			q.index = i
			q.syncScale()
			return
		}
	}
	q.index = len(q.questions) - 1
	q.syncScale()
}

func (q *QuizScreen) syncScale() {
	q.scale = components.NewScale(quizdata.MinAnswer, quizdata.MaxAnswer)
	if v, ok := q.answers[q.questions[q.index].ID]; ok {
		q.scale.Selected = v
	}
}

// record persists the current answer and advances, submitting after the
// last question.
func (q *QuizScreen) record() tea.Cmd {
	ctx := context.Background()
	question := q.questions[q.index]
	if err := q.svcs.Progress.Record(ctx, question.ID, q.scale.Selected); err != nil {
		q.errMsg = err.Error()
		return nil
	}
	q.answers[question.ID] = q.scale.Selected
	q.errMsg = ""

	if q.index+1 < len(q.questions) {
		q.index++
		q.syncScale()
		return nil
	}
	return q.submit()
}

func (q *QuizScreen) submit() tea.Cmd {
	q.phase = phaseSubmitting
	return func() tea.Msg {
		ctx := context.Background()
		token, err := q.svcs.Session.GetOrCreate(ctx)
		if err != nil {
			return resultsReadyMsg{Err: err}
		}

		snap, err := q.svcs.Results.Run(ctx, token, q.answers, quizdata.RequiredIDs(q.questions))
		if err != nil {
			return resultsReadyMsg{Err: err}
		}

		// Signed-in users get the attempt on their ledger; guests don't.
		if username, ok, _ := q.svcs.Identity.CurrentUser(ctx); ok {
			if _, err := q.svcs.Ledger(username).Append(ctx, snap); err != nil {
				return resultsReadyMsg{Err: err}
			}
		}
		_ = q.svcs.Progress.Clear(ctx)
		return resultsReadyMsg{Snapshot: snap}
	}
}

func (q *QuizScreen) View(width, height int) string {
	var content string

	switch q.phase {
	case phaseLoading:
		content = theme.Subtitle.Render("Loading questions...")
	case phaseSubmitting:
		content = theme.Subtitle.Render("Crunching your answers...")
	case phaseFailed:
		content = theme.Negative.Render("Something went wrong") + "\n\n" +
			theme.Body.Render(q.errMsg) + "\n\n" +
			theme.Hint.Render("Press Esc to go back")
	case phaseAnswering:
		if len(q.questions) == 0 {
			content = theme.Subtitle.Render("No questions available.")
			break
		}
		question := q.questions[q.index]

		bar := components.NewProgressBar(
			fmt.Sprintf("%d/%d", q.index+1, len(q.questions)),
			float64(len(q.answers))/float64(len(q.questions)),
			false, min(width-8, 60),
		)

		rows := []string{
			theme.Hint.Render(question.Category),
			"",
			theme.Body.Bold(true).Render(question.Text),
			"",
			q.scale.View(),
		}
		if q.errMsg != "" {
			rows = append(rows, "", theme.Negative.Render(q.errMsg))
		}

		content = bar.View() + "\n\n" + theme.Card.Render(strings.Join(rows, "\n"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) Title() string {
	return "Career Quiz"
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Adjust"},
		{Key: "1-0", Description: "Jump"},
		{Key: "Enter", Description: "Answer"},
		{Key: "↑", Description: "Previous"},
		{Key: "Esc", Description: "Back"},
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
