// Package auth hosts the sign-in / sign-up screen.
package auth

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/careerlens/internal/identity"
	"github.com/adesai/careerlens/internal/router"
	"github.com/adesai/careerlens/internal/screen"
	"github.com/adesai/careerlens/internal/ui/components"
	"github.com/adesai/careerlens/internal/ui/layout"
	"github.com/adesai/careerlens/internal/ui/theme"
)

// ChangedMsg signals that the signed-in user changed (sign-in, sign-up or
// sign-out). The root model rebuilds navigation when it sees one.
type ChangedMsg struct{}

type mode int

const (
	modeSignIn mode = iota
	modeSignUp
)

// AuthScreen collects credentials and talks to the identity registry.
type AuthScreen struct {
	registry *identity.Registry
	mode     mode

	username components.TextInput
	email    components.TextInput
	password components.TextInput
	focus    int

	errMsg string
}

var _ screen.Screen = (*AuthScreen)(nil)

// New creates the auth screen in sign-in mode.
func New(registry *identity.Registry) *AuthScreen {
	username := components.NewTextInput("username", false, 32)
	email := components.NewTextInput("email", false, 64)
	password := components.NewTextInput("password", false, 64)
	password.Model.EchoMode = textinput.EchoPassword

	email.Model.Blur()
	password.Model.Blur()

	return &AuthScreen{
		registry: registry,
		mode:     modeSignIn,
		username: username,
		email:    email,
		password: password,
	}
}

func (a *AuthScreen) Init() tea.Cmd {
	return a.username.Init()
}

// fieldCount is 2 for sign-in (no email field) and 3 for sign-up.
func (a *AuthScreen) fieldCount() int {
	if a.mode == modeSignUp {
		return 3
	}
	return 2
}

func (a *AuthScreen) fields() []*components.TextInput {
	if a.mode == modeSignUp {
		return []*components.TextInput{&a.username, &a.email, &a.password}
	}
	return []*components.TextInput{&a.username, &a.password}
}

func (a *AuthScreen) setFocus(i int) tea.Cmd {
	fields := a.fields()
	a.focus = i
	var cmd tea.Cmd
	for j, f := range fields {
		if j == i {
			cmd = f.Model.Focus()
		} else {
			f.Model.Blur()
		}
	}
	return cmd
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return a, a.setFocus((a.focus + 1) % a.fieldCount())
		case "shift+tab":
			return a, a.setFocus((a.focus - 1 + a.fieldCount()) % a.fieldCount())
		case "ctrl+t":
			if a.mode == modeSignIn {
				a.mode = modeSignUp
			} else {
				a.mode = modeSignIn
			}
			a.errMsg = ""
			return a, a.setFocus(0)
		case "enter":
			return a, a.submit()
		}
	}

	fields := a.fields()
	var cmd tea.Cmd
	*fields[a.focus], cmd = fields[a.focus].Update(msg)
	return a, cmd
}

func (a *AuthScreen) submit() tea.Cmd {
	ctx := context.Background()
	username := strings.TrimSpace(a.username.Value())

	if a.mode == modeSignUp {
		err := a.registry.Register(ctx, username, strings.TrimSpace(a.email.Value()), a.password.Value())
		if err != nil {
			a.errMsg = friendlyError(err)
			return nil
		}
	} else {
		_, ok, err := a.registry.Authenticate(ctx, username, a.password.Value())
		if err != nil {
			a.errMsg = friendlyError(err)
			return nil
		}
		if !ok {
			a.errMsg = "Username or password is incorrect."
			return nil
		}
		if err := a.registry.SetCurrentUser(ctx, username); err != nil {
			a.errMsg = friendlyError(err)
			return nil
		}
	}

	a.errMsg = ""
	return tea.Batch(
		func() tea.Msg { return ChangedMsg{} },
		func() tea.Msg { return router.PopScreenMsg{} },
	)
}

func friendlyError(err error) string {
	var invalid *identity.ErrInvalidInput
	switch {
	case errors.Is(err, identity.ErrDuplicateUsername):
		return "That username is taken."
	case errors.As(err, &invalid):
		return invalid.Field + ": " + invalid.Reason
	default:
		return err.Error()
	}
}

func (a *AuthScreen) View(width, height int) string {
	heading := "Sign In"
	if a.mode == modeSignUp {
		heading = "Create Account"
	}

	rows := []string{
		theme.Title.Render(heading),
		"",
		fieldRow("Username", a.username.View(), a.focus == 0),
	}
	if a.mode == modeSignUp {
		rows = append(rows, fieldRow("Email", a.email.View(), a.focus == 1))
		rows = append(rows, fieldRow("Password", a.password.View(), a.focus == 2))
	} else {
		rows = append(rows, fieldRow("Password", a.password.View(), a.focus == 1))
	}

	if a.errMsg != "" {
		rows = append(rows, "", theme.Negative.Render(a.errMsg))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldRow(label, input string, focused bool) string {
	style := theme.Hint
	if focused {
		style = theme.Selected
	}
	return style.Render(label) + "\n" + input
}

func (a *AuthScreen) Title() string {
	if a.mode == modeSignUp {
		return "Create Account"
	}
	return "Sign In"
}

// KeyHints implements screen.KeyHintProvider.
func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+T", Description: "Switch sign in / sign up"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}
