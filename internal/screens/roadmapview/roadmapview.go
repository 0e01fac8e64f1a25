package roadmapview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/roadmap"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// ErrorText is shown when generation fails for any reason.
const ErrorText = "Sorry, we couldn't generate your roadmap. Please try again."

// Generator produces a roadmap for a skill and duration.
type Generator interface {
	GeneratePlan(ctx context.Context, skill, duration string) (*roadmap.Plan, error)
}

type position struct{ week, topic int }

// RoadmapScreen lets the learner pick a skill and duration, generate a
// roadmap and tick off topics.
type RoadmapScreen struct {
	sess      *session.Session
	gen       Generator
	log       *zap.Logger
	skill     components.Selector
	duration  components.Selector
	button    components.Button
	busy      bool
	seq       int
	errMsg    string
	cursor    int
	positions []position
}

var _ screen.Screen = (*RoadmapScreen)(nil)

func New(sess *session.Session, gen Generator, skills, durations []string, log *zap.Logger) *RoadmapScreen {
	if log == nil {
		log = zap.NewNop()
	}
	p := sess.Profile()
	r := &RoadmapScreen{
		sess:     sess,
		gen:      gen,
		log:      log,
		skill:    components.NewSelector("Skill", skills, p.Skill),
		duration: components.NewSelector("Duration", durations, p.Duration),
		button:   components.NewButton("Generate Roadmap", "Generating..."),
	}
	r.reindex()
	return r
}

func (r *RoadmapScreen) Init() tea.Cmd { return nil }

func (r *RoadmapScreen) Title() string { return "Learning Path" }

func (r *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "s/d", Description: "Skill/Duration"},
		{Key: "g", Description: "Generate"},
		{Key: "↑↓", Description: "Topic"},
		{Key: "Space", Description: "Toggle"},
	}
}

// Busy reports whether a generation request is in flight.
func (r *RoadmapScreen) Busy() bool { return r.busy }

func (r *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		r.handlePlan(msg)
		return r, nil
	case tea.KeyPressMsg:
		return r, r.handleKey(msg)
	}
	return r, nil
}

func (r *RoadmapScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "s":
		r.skill.Next()
	case "S":
		r.skill.Prev()
	case "d":
		r.duration.Next()
	case "D":
		r.duration.Prev()
	case "g":
		return r.generate()
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.positions)-1 {
			r.cursor++
		}
	case "space", "x":
		r.toggle()
	}
	return nil
}

func (r *RoadmapScreen) generate() tea.Cmd {
	if r.busy {
		return nil
	}
	skill, duration := r.skill.Value(), r.duration.Value()
	if skill == "" || duration == "" {
		return nil
	}
	r.busy = true
	r.seq++
	r.errMsg = ""
	gen, sess, seq := r.gen, r.sess, r.seq
	return func() tea.Msg {
		plan, err := gen.GeneratePlan(context.Background(), skill, duration)
		return planReadyMsg{Session: sess, Seq: seq, Plan: plan, Skill: skill, Duration: duration, Err: err}
	}
}

func (r *RoadmapScreen) handlePlan(msg planReadyMsg) {
	// Only the pending request of this screen's session may apply.
	if msg.Session != r.sess || msg.Seq != r.seq || !r.busy {
		r.log.Debug("stale roadmap result dropped", zap.String("skill", msg.Skill))
		return
	}
	r.busy = false
	if msg.Err != nil {
		r.log.Warn("roadmap generation failed", zap.String("skill", msg.Skill), zap.Error(msg.Err))
		r.errMsg = ErrorText
		return
	}
	if err := r.sess.ApplyPlan(msg.Plan, msg.Skill, msg.Duration); err != nil {
		r.log.Warn("roadmap not applied", zap.Error(err))
		r.errMsg = ErrorText
		return
	}
	r.errMsg = ""
	r.cursor = 0
	r.reindex()
}

func (r *RoadmapScreen) toggle() {
	if r.cursor < 0 || r.cursor >= len(r.positions) {
		return
	}
	pos := r.positions[r.cursor]
	if err := r.sess.ToggleTopic(pos.week, pos.topic); err != nil {
		r.log.Debug("toggle rejected", zap.Int("week", pos.week), zap.Int("topic", pos.topic), zap.Error(err))
	}
}

func (r *RoadmapScreen) reindex() {
	r.positions = r.positions[:0]
	plan := r.sess.Plan()
	if plan == nil {
		return
	}
	for w, week := range plan.Weeks {
		for t := range week.Topics {
			r.positions = append(r.positions, position{w, t})
		}
	}
}

func (r *RoadmapScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	r.button.Busy = r.busy
	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		r.skill.View(), "    ", r.duration.View(), "    ", r.button.View())
	form := theme.Heading.Render("Create Your Learning Path") + "\n" + controls
	if r.errMsg != "" {
		form += "\n" + theme.ErrorText.Render(r.errMsg)
	}
	top := components.Card("", form, cw, false)

	plan := r.sess.Plan()
	if plan == nil {
		hint := theme.Hint.Render("Pick a skill and duration, then press g to generate your roadmap.")
		return top + "\n" + hint
	}

	body, focus := r.renderPlan(plan, cw)
	remaining := height - lipgloss.Height(top) - 1
	return top + "\n" + layout.Clip(body, focus, remaining)
}

// renderPlan returns the weekly checklist and the line index of the
// topic under the cursor.
func (r *RoadmapScreen) renderPlan(plan *roadmap.Plan, cw int) (string, int) {
	var lines []string
	focus := 0
	idx := 0
	for _, week := range plan.Weeks {
		lines = append(lines, theme.Title.Render(fmt.Sprintf("Week %d: %s", week.Week, week.Title)))
		for _, topic := range week.Topics {
			box := "[ ]"
			title := theme.Body.Render(topic.Title)
			if topic.Completed {
				box = "[x]"
				title = theme.Done.Render(topic.Title)
			}
			prefix := "  "
			if idx == r.cursor {
				prefix = theme.Selected.Render("▸ ")
				focus = len(lines)
			}
			lines = append(lines, prefix+box+" "+title)
			for i, res := range topic.Resources {
				lines = append(lines, "      "+theme.Subtitle.Render(fmt.Sprintf("Resource %d", i+1))+"  "+theme.Link.Render(res))
			}
			idx++
		}
		project := lipgloss.NewStyle().Width(cw - 4).Render(theme.Heading.Render("Weekly Project: ") + theme.Body.Render(week.Project))
		for _, l := range strings.Split(project, "\n") {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), focus
}
