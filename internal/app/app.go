package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/browser"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/screens/auth"
	"github.com/abhisek/learnpath/internal/screens/dashboard"
	"github.com/abhisek/learnpath/internal/screens/groupview"
	"github.com/abhisek/learnpath/internal/screens/jobsview"
	"github.com/abhisek/learnpath/internal/screens/landing"
	"github.com/abhisek/learnpath/internal/screens/roadmapview"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/studygroup"
	"github.com/abhisek/learnpath/internal/ui/layout"
)

// Generator is what the dashboard tabs need from the content adapter.
type Generator interface {
	roadmapview.Generator
	jobsview.Finder
}

// Options carries the dependencies built by the command layer.
type Options struct {
	Generator Generator
	Skills    []string
	Durations []string
	Chat      studygroup.Config
	Opener    jobsview.Opener
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	env    *env
	width  int
	height int
}

// env is shared by the screen factories. current is the signed-in
// session, or nil.
type env struct {
	opts    Options
	current *session.Session
}

// newAppModel creates a new AppModel with the landing screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Opener == nil {
		opts.Opener = browser.Open
	}
	e := &env{opts: opts}
	return AppModel{
		router: router.New(e.landing()),
		env:    e,
	}
}

func (e *env) landing() screen.Screen {
	e.current = nil
	return landing.New(e.auth)
}

func (e *env) auth() screen.Screen {
	return auth.New(e.login, e.dashboard, e.landing)
}

func (e *env) login(name string) (*session.Session, error) {
	sess, err := session.Login("user-"+uuid.NewString(), name, session.WithLogger(e.opts.Logger))
	if err != nil {
		return nil, err
	}
	e.current = sess
	e.opts.Logger.Info("learner signed in", zap.String("user", sess.Profile().ID))
	return sess, nil
}

func (e *env) dashboard(sess *session.Session) screen.Screen {
	o := e.opts
	chat := studygroup.NewChat(o.Chat)
	tabs := []dashboard.Tab{
		{Label: "Learning Path", Screen: roadmapview.New(sess, o.Generator, o.Skills, o.Durations, o.Logger)},
		{Label: "Job Matches", Screen: jobsview.New(sess, o.Generator, o.Opener, o.Logger)},
		{Label: "Study Group", Screen: groupview.New(sess, chat, studygroup.Peers(), o.Logger)},
	}
	return dashboard.New(sess, tabs, e.landing)
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var user layout.HeaderUser
	if s := m.env.current; s.Active() {
		p := s.Profile()
		user = layout.HeaderUser{Name: p.Name, Skill: p.Skill, Progress: p.Progress}
	}
	header := layout.RenderHeader(title, user, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
