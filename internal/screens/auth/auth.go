package auth

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

const maxNameLength = 40

// LoginFunc starts a session for the given display name.
type LoginFunc func(name string) (*session.Session, error)

// AuthScreen asks for a display name. There is no password: the name is
// the whole identity.
type AuthScreen struct {
	input     components.TextInput
	login     LoginFunc
	dashboard func(*session.Session) screen.Screen
	back      func() screen.Screen
	errMsg    string
}

var _ screen.Screen = (*AuthScreen)(nil)

func New(login LoginFunc, dashboard func(*session.Session) screen.Screen, back func() screen.Screen) *AuthScreen {
	return &AuthScreen{
		input:     components.NewTextInput("Your name", maxNameLength),
		login:     login,
		dashboard: dashboard,
		back:      back,
	}
}

func (a *AuthScreen) Init() tea.Cmd { return a.input.Init() }

func (a *AuthScreen) Title() string { return "Sign In" }

func (a *AuthScreen) CapturesInput() bool { return true }

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			return a, a.submit()
		case "esc":
			if a.back != nil {
				return a, screen.Cmd(router.ReplaceScreenMsg{Screen: a.back()})
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *AuthScreen) submit() tea.Cmd {
	sess, err := a.login(a.input.Value())
	if errors.Is(err, session.ErrEmptyName) {
		a.errMsg = "Please enter your name."
		return nil
	}
	if err != nil {
		a.errMsg = err.Error()
		return nil
	}
	a.errMsg = ""
	return screen.Cmd(router.ReplaceScreenMsg{Screen: a.dashboard(sess)})
}

func (a *AuthScreen) View(width, height int) string {
	cw := min(components.ContentWidth(width), 50)
	a.input.SetWidth(cw - 6)

	body := theme.Subtitle.Render("What should we call you?") + "\n\n" + a.input.View()
	if a.errMsg != "" {
		body += "\n\n" + theme.ErrorText.Render(a.errMsg)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Welcome to "+layout.AppName),
		"",
		components.Card("", body, cw, true),
	)
	return components.Centered(content, width, height)
}
