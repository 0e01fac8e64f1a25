package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// Tab is one dashboard section.
type Tab struct {
	Label  string
	Screen screen.Screen
}

// DashboardScreen greets the learner and hosts the Learning Path, Job
// Matches and Study Group tabs. Key presses go to the active tab only;
// every other message reaches all tabs so that results of background
// work land even after the learner switched away.
type DashboardScreen struct {
	sess    *session.Session
	tabs    []Tab
	active  int
	landing func() screen.Screen
}

var _ screen.Screen = (*DashboardScreen)(nil)

func New(sess *session.Session, tabs []Tab, landing func() screen.Screen) *DashboardScreen {
	return &DashboardScreen{sess: sess, tabs: tabs, landing: landing}
}

func (d *DashboardScreen) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(d.tabs))
	for _, t := range d.tabs {
		cmds = append(cmds, t.Screen.Init())
	}
	return tea.Batch(cmds...)
}

func (d *DashboardScreen) Title() string {
	if len(d.tabs) == 0 {
		return "Dashboard"
	}
	return d.tabs[d.active].Label
}

// Active returns the index of the selected tab.
func (d *DashboardScreen) Active() int { return d.active }

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if len(d.tabs) > 0 {
		if p, ok := d.tabs[d.active].Screen.(screen.KeyHintProvider); ok {
			hints = append(hints, p.KeyHints()...)
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Switch"},
		layout.KeyHint{Key: "Ctrl+L", Description: "Logout"},
	)
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		return d, d.broadcast(msg)
	}

	switch key.String() {
	case "ctrl+l":
		d.sess.Logout()
		return d, screen.Cmd(router.ReplaceScreenMsg{Screen: d.landing()})
	case "tab":
		d.switchTo((d.active + 1) % max(len(d.tabs), 1))
		return d, nil
	case "shift+tab":
		d.switchTo((d.active - 1 + len(d.tabs)) % max(len(d.tabs), 1))
		return d, nil
	case "1", "2", "3":
		if !d.capturing() {
			d.switchTo(int(key.String()[0] - '1'))
			return d, nil
		}
	}

	if len(d.tabs) == 0 {
		return d, nil
	}
	updated, cmd := d.tabs[d.active].Screen.Update(msg)
	d.tabs[d.active].Screen = updated
	return d, cmd
}

func (d *DashboardScreen) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(d.tabs))
	for i := range d.tabs {
		updated, cmd := d.tabs[i].Screen.Update(msg)
		d.tabs[i].Screen = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (d *DashboardScreen) switchTo(i int) {
	if i >= 0 && i < len(d.tabs) {
		d.active = i
	}
}

func (d *DashboardScreen) capturing() bool {
	if len(d.tabs) == 0 {
		return false
	}
	c, ok := d.tabs[d.active].Screen.(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.sess.Profile()
	cw := components.ContentWidth(width)

	greeting := theme.Heading.Render(fmt.Sprintf("Welcome back, %s", p.Name)) + "\n" +
		theme.Subtitle.Render("Let's continue your learning journey!")
	progress := theme.Body.Render(fmt.Sprintf("You're %d%% done with your roadmap!", p.Progress)) + "\n" +
		components.NewProgressBar("", p.Progress, true, min(cw, 60)).View()

	top := lipgloss.JoinVertical(lipgloss.Left, greeting, "", progress, "", d.renderTabs())
	remaining := height - lipgloss.Height(top) - 1
	if remaining < 0 || len(d.tabs) == 0 {
		return top
	}
	return top + "\n" + d.tabs[d.active].Screen.View(width, remaining)
}

func (d *DashboardScreen) renderTabs() string {
	parts := make([]string, 0, len(d.tabs))
	for i, t := range d.tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if i == d.active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
