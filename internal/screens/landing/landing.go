package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

const (
	headline = "Your Personalized AI Learning Journey Starts Here"
	tagline  = "Create custom learning roadmaps, track your progress, find relevant jobs, and connect with fellow learners. All powered by AI."
)

type feature struct {
	title, description string
}

var features = []feature{
	{"AI Roadmaps", "Get a personalized, step-by-step learning plan for any skill, tailored to your desired timeline."},
	{"Job Matching", "Discover job opportunities that match your skills and learning progress, curated by AI."},
	{"Study Groups", "Connect with peers who are on the same learning path, form study groups, and learn together."},
	{"Progress Tracking", "Visually track your learning journey, mark topics as complete, and stay motivated."},
}

// LandingScreen introduces the app and leads to sign-in.
type LandingScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates the landing screen. Get Started replaces it with the screen
// built by authFactory.
func New(authFactory func() screen.Screen) *LandingScreen {
	items := []components.MenuItem{
		{Label: "Get Started", Action: func() tea.Cmd {
			return screen.Cmd(router.ReplaceScreenMsg{Screen: authFactory()})
		}},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &LandingScreen{menu: components.NewMenu(items)}
}

func (l *LandingScreen) Init() tea.Cmd { return nil }

func (l *LandingScreen) Title() string { return "" }

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	var sections []string
	sections = append(sections, theme.Title.Render(layout.AppName))
	sections = append(sections, theme.Heading.Render(headline))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render(tagline))
	}
	sections = append(sections, renderFeatures(cw, compact))
	sections = append(sections, l.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.Centered(content, width, height)
}

func renderFeatures(cw int, compact bool) string {
	cardWidth := cw/len(features) - 1
	cards := make([]string, 0, len(features))
	for _, f := range features {
		body := ""
		if !compact {
			body = lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.description)
		}
		cards = append(cards, components.Card(f.title, strings.TrimSpace(body), cardWidth, false))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
