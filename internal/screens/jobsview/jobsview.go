package jobsview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/jobs"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

const (
	ErrorText   = "Sorry, we couldn't find jobs for you. Please try again."
	NoSkillText = "Please generate a learning path first to select a skill."
)

// Finder looks up listings for a skill at a progress level.
type Finder interface {
	FindJobs(ctx context.Context, skill string, progress int) ([]jobs.Listing, error)
}

// Opener opens a link outside the terminal.
type Opener func(url string) error

type jobsFoundMsg struct {
	Session  *session.Session
	Seq      int
	Listings []jobs.Listing
	Err      error
}

type linkOpenedMsg struct {
	Session *session.Session
	URL     string
	Err error
}

// JobsScreen finds job listings for the learner's current skill.
type JobsScreen struct {
	sess     *session.Session
	finder   Finder
	open     Opener
	log      *zap.Logger
	button   components.Button
	busy     bool
	seq      int
	errMsg   string
	status   string
	listings []jobs.Listing
	cursor   int
}

var _ screen.Screen = (*JobsScreen)(nil)

func New(sess *session.Session, finder Finder, open Opener, log *zap.Logger) *JobsScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobsScreen{
		sess:   sess,
		finder: finder,
		open:   open,
		log:    log,
		button: components.NewButton("Find Jobs", "Searching..."),
	}
}

func (j *JobsScreen) Init() tea.Cmd { return nil }

func (j *JobsScreen) Title() string { return "Job Matches" }

func (j *JobsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "f", Description: "Find Jobs"},
		{Key: "↑↓", Description: "Select"},
		{Key: "o", Description: "Open Link"},
	}
}

func (j *JobsScreen) Busy() bool { return j.busy }

// Listings returns the listings currently shown.
func (j *JobsScreen) Listings() []jobs.Listing { return j.listings }

func (j *JobsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case jobsFoundMsg:
		if msg.Session != j.sess || msg.Seq != j.seq || !j.busy {
			j.log.Debug("stale job results dropped")
			return j, nil
		}
		j.busy = false
		if msg.Err != nil {
			j.log.Warn("job search failed", zap.Error(msg.Err))
			j.errMsg = ErrorText
			return j, nil
		}
		j.errMsg = ""
		j.listings = msg.Listings
		j.cursor = 0
		return j, nil

	case linkOpenedMsg:
		if msg.Session != j.sess {
			return j, nil
		}
		if msg.Err != nil {
			j.log.Warn("open link failed", zap.String("url", msg.URL), zap.Error(msg.Err))
			j.status = "Could not open " + msg.URL
		} else {
			j.status = "Opened " + msg.URL
		}
		return j, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "f":
			return j, j.find()
		case "up", "k":
			if j.cursor > 0 {
				j.cursor--
			}
		case "down", "j":
			if j.cursor < len(j.listings)-1 {
				j.cursor++
			}
		case "o", "enter":
			return j, j.openSelected()
		}
	}
	return j, nil
}

func (j *JobsScreen) find() tea.Cmd {
	p := j.sess.Profile()
	if j.busy || p.Skill == "" {
		return nil
	}
	j.busy = true
	j.seq++
	j.errMsg = ""
	j.status = ""
	finder, sess, seq := j.finder, j.sess, j.seq
	return func() tea.Msg {
		listings, err := finder.FindJobs(context.Background(), p.Skill, p.Progress)
		return jobsFoundMsg{Session: sess, Seq: seq, Listings: listings, Err: err}
	}
}

func (j *JobsScreen) openSelected() tea.Cmd {
	if j.open == nil || j.cursor >= len(j.listings) {
		return nil
	}
	link := j.listings[j.cursor].Link
	open, sess := j.open, j.sess
	return func() tea.Msg {
		return linkOpenedMsg{Session: sess, URL: link, Err: open(link)}
	}
}

func (j *JobsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := j.sess.Profile()

	intro := "Find job opportunities tailored to your skill set and learning progress."
	if p.Skill != "" {
		intro += " Current skill: " + p.Skill + "."
	}
	head := theme.Heading.Render("AI Job Matching") + "\n" +
		lipgloss.NewStyle().Width(cw-4).Foreground(theme.TextDim).Render(intro) + "\n"

	j.button.Busy = j.busy
	j.button.Active = p.Skill != ""
	head += j.button.View()
	switch {
	case p.Skill == "":
		head += "\n" + theme.Hint.Render(NoSkillText)
	case j.errMsg != "":
		head += "\n" + theme.ErrorText.Render(j.errMsg)
	case j.status != "":
		head += "\n" + theme.Status.Render(j.status)
	}
	top := components.Card("", head, cw, false)

	if len(j.listings) == 0 {
		return top
	}

	var cards []string
	focus := 0
	lines := 0
	for i, l := range j.listings {
		body := theme.Subtitle.Render(l.Company) + "\n" +
			lipgloss.NewStyle().Width(cw-4).Foreground(theme.Text).Render(l.Description) + "\n" +
			theme.Link.Render(l.Link)
		card := components.Card(fmt.Sprintf("%d. %s", i+1, l.Title), body, cw, i == j.cursor)
		if i == j.cursor {
			focus = lines + lipgloss.Height(card) - 1
		}
		lines += lipgloss.Height(card)
		cards = append(cards, card)
	}
	remaining := height - lipgloss.Height(top) - 1
	return top + "\n" + layout.Clip(strings.Join(cards, "\n"), focus, remaining)
}
