package auth

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.title }
func (s *stubScreen) Title() string                          { return s.title }

func newTestAuth(got **session.Session) *AuthScreen {
	login := func(name string) (*session.Session, error) {
		return session.Login("user-test", name)
	}
	dashboard := func(s *session.Session) screen.Screen {
		*got = s
		return &stubScreen{title: "Dashboard"}
	}
	return New(login, dashboard, func() screen.Screen { return &stubScreen{title: "Landing"} })
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func TestSubmitLogsIn(t *testing.T) {
	var sess *session.Session
	a := newTestAuth(&sess)

	typeText(a, "Ada")
	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Dashboard" {
		t.Errorf("replaced with %q", msg.Screen.Title())
	}
	if sess == nil || sess.Profile().Email != "ada@example.com" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestBlankNameShowsError(t *testing.T) {
	var sess *session.Session
	a := newTestAuth(&sess)

	typeText(a, "   ")
	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank name must not navigate")
	}
	if sess != nil {
		t.Error("blank name must not log in")
	}
	if !strings.Contains(a.View(100, 30), "Please enter your name.") {
		t.Error("expected inline error")
	}
}

func TestEscGoesBack(t *testing.T) {
	var sess *session.Session
	a := newTestAuth(&sess)

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg := cmd().(router.ReplaceScreenMsg)
	if msg.Screen.Title() != "Landing" {
		t.Errorf("replaced with %q", msg.Screen.Title())
	}
}
