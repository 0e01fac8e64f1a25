package roadmapview

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/roadmap"
	"github.com/abhisek/learnpath/internal/session"
)

var (
	testSkills    = []string{"Web Development", "Data Science"}
	testDurations = []string{"4 weeks", "8 weeks"}
)

// fakeGenerator returns plan or err and counts calls.
type fakeGenerator struct {
	plan  *roadmap.Plan
	err   error
	calls int
	last  [2]string
}

func (f *fakeGenerator) GeneratePlan(_ context.Context, skill, duration string) (*roadmap.Plan, error) {
	f.calls++
	f.last = [2]string{skill, duration}
	if f.err != nil {
		return nil, f.err
	}
	return f.plan.Clone(), nil
}

func testPlan() *roadmap.Plan {
	return &roadmap.Plan{Weeks: []roadmap.Week{
		{Week: 1, Title: "Foundations", Project: "Build a landing page", Topics: []roadmap.Topic{
			{Title: "HTML", Resources: []string{"https://developer.mozilla.org/html"}},
			{Title: "CSS", Resources: []string{}},
		}},
		{Week: 2, Title: "JavaScript", Project: "To-do app", Topics: []roadmap.Topic{
			{Title: "Functions", Resources: []string{}},
			{Title: "DOM", Resources: []string{}},
		}},
	}}
}

func newTestScreen(t *testing.T, gen *fakeGenerator) (*RoadmapScreen, *session.Session) {
	t.Helper()
	sess, err := session.Login("user-1", "Ada")
	if err != nil {
		t.Fatal(err)
	}
	return New(sess, gen, testSkills, testDurations, nil), sess
}

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

// run executes cmd and feeds its message back into the screen.
func run(t *testing.T, r *RoadmapScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	r.Update(cmd())
}

func TestGenerateAppliesPlan(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	r, sess := newTestScreen(t, gen)

	r.Update(key('s'))
	r.Update(key('d'))
	_, cmd := r.Update(key('g'))
	if !r.Busy() {
		t.Error("expected busy while generating")
	}
	if !strings.Contains(r.View(120, 40), "Generating...") {
		t.Error("expected Generating... label")
	}
	run(t, r, cmd)

	if gen.last != [2]string{"Data Science", "8 weeks"} {
		t.Errorf("generated for %v", gen.last)
	}
	p := sess.Profile()
	if p.Skill != "Data Science" || p.Duration != "8 weeks" || p.Progress != 0 {
		t.Errorf("profile = %+v", p)
	}

	view := r.View(120, 40)
	for _, want := range []string{"Week 1: Foundations", "Week 2: JavaScript", "Resource 1", "Weekly Project", "Build a landing page"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDuplicateSubmitIgnored(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	r, _ := newTestScreen(t, gen)

	_, first := r.Update(key('g'))
	_, second := r.Update(key('g'))
	if first == nil {
		t.Fatal("expected first generate to start")
	}
	if second != nil {
		t.Error("second generate while busy must be ignored")
	}
	run(t, r, first)
	if gen.calls != 1 {
		t.Errorf("calls = %d, want 1", gen.calls)
	}
}

func TestToggleUpdatesProgress(t *testing.T) {
	r, sess := newTestScreen(t, &fakeGenerator{plan: testPlan()})
	_, cmd := r.Update(key('g'))
	run(t, r, cmd)

	r.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if got := sess.Profile().Progress; got != 25 {
		t.Errorf("progress = %d, want 25", got)
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	r.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if got := sess.Profile().Progress; got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
	if !sess.Plan().Weeks[1].Topics[0].Completed {
		t.Error("expected week 2 topic 1 completed")
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if got := sess.Profile().Progress; got != 25 {
		t.Errorf("progress after untoggle = %d, want 25", got)
	}
}

func TestFailureKeepsPriorPlan(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	r, sess := newTestScreen(t, gen)
	_, cmd := r.Update(key('g'))
	run(t, r, cmd)
	r.Update(tea.KeyPressMsg{Code: tea.KeySpace})

	gen.err = errors.New("boom")
	r.Update(key('s'))
	_, cmd = r.Update(key('g'))
	run(t, r, cmd)

	if r.Busy() {
		t.Error("busy flag not cleared")
	}
	view := r.View(120, 40)
	if !strings.Contains(view, ErrorText) {
		t.Error("expected error text")
	}
	if !strings.Contains(view, "Week 1: Foundations") {
		t.Error("prior plan should still be shown")
	}
	p := sess.Profile()
	if p.Skill != "Web Development" || p.Progress != 25 {
		t.Errorf("profile changed on failure: %+v", p)
	}
}

func TestPreselectsFromProfile(t *testing.T) {
	sess, _ := session.Login("user-1", "Ada")
	_ = sess.ApplyPlan(testPlan(), "Data Science", "8 weeks")

	r := New(sess, &fakeGenerator{}, testSkills, testDurations, nil)
	if r.skill.Value() != "Data Science" || r.duration.Value() != "8 weeks" {
		t.Errorf("selectors = %q/%q", r.skill.Value(), r.duration.Value())
	}
	if len(r.positions) != 4 {
		t.Errorf("positions = %d, want 4", len(r.positions))
	}
}

func TestPlanFromEndedSessionIsDropped(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	ada, adaSess := newTestScreen(t, gen)
	_, cmd := ada.Update(key('g'))
	if cmd == nil {
		t.Fatal("expected generate command")
	}
	adaSess.Logout()

	bobSess, err := session.Login("user-2", "Bob")
	if err != nil {
		t.Fatal(err)
	}
	bob := New(bobSess, gen, testSkills, testDurations, nil)
	bob.Update(cmd())

	if bobSess.HasPlan() {
		t.Error("plan requested by another session was applied")
	}
	if p := bobSess.Profile(); p.Skill != "" || p.Duration != "" || p.Progress != 0 {
		t.Errorf("profile = %+v, want untouched", p)
	}
	if bob.Busy() {
		t.Error("stale result must not change busy state")
	}
}

func TestPlanWithoutPendingRequestIsDropped(t *testing.T) {
	gen := &fakeGenerator{plan: testPlan()}
	r, sess := newTestScreen(t, gen)
	_, cmd := r.Update(key('g'))
	msg := cmd()
	r.Update(msg)
	if err := sess.ToggleTopic(0, 0); err != nil {
		t.Fatal(err)
	}

	r.Update(msg)

	if got := sess.Profile().Progress; got != 25 {
		t.Errorf("progress = %d, replayed result overwrote the plan", got)
	}
}
