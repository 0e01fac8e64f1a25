package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/jobs"
	"github.com/abhisek/learnpath/internal/roadmap"
	"github.com/abhisek/learnpath/internal/screens/auth"
	"github.com/abhisek/learnpath/internal/screens/dashboard"
	"github.com/abhisek/learnpath/internal/screens/landing"
	"github.com/abhisek/learnpath/internal/studygroup"
)

type nopGenerator struct{}

func (nopGenerator) GeneratePlan(context.Context, string, string) (*roadmap.Plan, error) {
	return &roadmap.Plan{Weeks: []roadmap.Week{}}, nil
}

func (nopGenerator) FindJobs(context.Context, string, int) ([]jobs.Listing, error) {
	return []jobs.Listing{}, nil
}

// send runs msg through the model and then every command it produced,
// one level deep, which is enough for screen navigation.
func send(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(AppModel)
		}
	}
	return m
}

func newTestModel() AppModel {
	return newAppModel(Options{
		Generator: nopGenerator{},
		Skills:    []string{"Web Development"},
		Durations: []string{"4 weeks"},
		Chat:      studygroup.DefaultConfig(),
		Opener:    func(string) error { return nil },
	})
}

func TestSignInAndOut(t *testing.T) {
	m := newTestModel()
	if _, ok := m.router.Active().(*landing.LandingScreen); !ok {
		t.Fatalf("start screen = %T", m.router.Active())
	}

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*auth.AuthScreen); !ok {
		t.Fatalf("after Get Started = %T", m.router.Active())
	}

	for _, r := range "Ada" {
		m = send(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*dashboard.DashboardScreen); !ok {
		t.Fatalf("after sign in = %T", m.router.Active())
	}
	if m.env.current == nil || m.env.current.Profile().Name != "Ada" {
		t.Fatal("expected signed-in session")
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}

	m = send(m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	if _, ok := m.router.Active().(*landing.LandingScreen); !ok {
		t.Fatalf("after logout = %T", m.router.Active())
	}
	if m.env.current != nil {
		t.Error("session kept after logout")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("got %T", cmd())
	}
}
