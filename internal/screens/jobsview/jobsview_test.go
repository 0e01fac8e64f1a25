package jobsview

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/jobs"
	"github.com/abhisek/learnpath/internal/roadmap"
	"github.com/abhisek/learnpath/internal/session"
)

type fakeFinder struct {
	listings []jobs.Listing
	err      error
	calls    int
	skill    string
	progress int
}

func (f *fakeFinder) FindJobs(_ context.Context, skill string, progress int) ([]jobs.Listing, error) {
	f.calls++
	f.skill, f.progress = skill, progress
	return f.listings, f.err
}

var listings = []jobs.Listing{
	{Title: "Junior Frontend Developer", Company: "Acme", Link: "https://acme.example/1", Description: "React work."},
	{Title: "Web Intern", Company: "Globex", Link: "https://globex.example/2", Description: "Landing pages."},
}

func loggedIn(t *testing.T, skill string) *session.Session {
	t.Helper()
	sess, err := session.Login("user-1", "Ada")
	if err != nil {
		t.Fatal(err)
	}
	if skill != "" {
		plan := &roadmap.Plan{Weeks: []roadmap.Week{{Week: 1, Title: "w", Project: "p", Topics: []roadmap.Topic{
			{Title: "a", Completed: true, Resources: []string{}},
			{Title: "b", Resources: []string{}},
		}}}}
		if err := sess.ApplyPlan(plan, skill, "4 weeks"); err != nil {
			t.Fatal(err)
		}
	}
	return sess
}

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestNoSkillDisablesFind(t *testing.T) {
	finder := &fakeFinder{listings: listings}
	j := New(loggedIn(t, ""), finder, nil, nil)

	if !strings.Contains(j.View(120, 40), NoSkillText) {
		t.Error("expected no-skill prompt")
	}
	if _, cmd := j.Update(key('f')); cmd != nil {
		t.Error("find must be disabled without a skill")
	}
	if finder.calls != 0 {
		t.Errorf("calls = %d", finder.calls)
	}
}

func TestFindShowsListings(t *testing.T) {
	finder := &fakeFinder{listings: listings}
	j := New(loggedIn(t, "Web Development"), finder, nil, nil)

	_, cmd := j.Update(key('f'))
	if cmd == nil {
		t.Fatal("expected search command")
	}
	if !j.Busy() || !strings.Contains(j.View(120, 40), "Searching...") {
		t.Error("expected busy state")
	}
	if _, again := j.Update(key('f')); again != nil {
		t.Error("duplicate find must be ignored")
	}
	j.Update(cmd())

	if finder.skill != "Web Development" || finder.progress != 50 {
		t.Errorf("searched %q at %d%%", finder.skill, finder.progress)
	}
	view := j.View(120, 40)
	for _, want := range []string{"AI Job Matching", "Junior Frontend Developer", "Acme", "https://globex.example/2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFailureKeepsListings(t *testing.T) {
	finder := &fakeFinder{listings: listings}
	j := New(loggedIn(t, "Web Development"), finder, nil, nil)
	_, cmd := j.Update(key('f'))
	j.Update(cmd())

	finder.err = errors.New("down")
	finder.listings = nil
	_, cmd = j.Update(key('f'))
	j.Update(cmd())

	if len(j.Listings()) != 2 {
		t.Errorf("listings = %d, want prior 2", len(j.Listings()))
	}
	if !strings.Contains(j.View(120, 40), ErrorText) {
		t.Error("expected error text")
	}
}

func TestOpenSelected(t *testing.T) {
	var opened string
	open := func(u string) error { opened = u; return nil }
	j := New(loggedIn(t, "Web Development"), &fakeFinder{listings: listings}, open, nil)
	_, cmd := j.Update(key('f'))
	j.Update(cmd())

	j.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = j.Update(key('o'))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	j.Update(cmd())
	if opened != "https://globex.example/2" {
		t.Errorf("opened %q", opened)
	}
	if !strings.Contains(j.View(120, 40), "Opened https://globex.example/2") {
		t.Error("expected status line")
	}
}

func TestListingsFromEndedSessionAreDropped(t *testing.T) {
	finder := &fakeFinder{listings: listings}
	adaSess := loggedIn(t, "Web Development")
	ada := New(adaSess, finder, nil, nil)
	_, cmd := ada.Update(key('f'))
	if cmd == nil {
		t.Fatal("expected search command")
	}
	adaSess.Logout()

	bobSess, err := session.Login("user-2", "Bob")
	if err != nil {
		t.Fatal(err)
	}
	bob := New(bobSess, finder, nil, nil)
	bob.Update(cmd())

	if len(bob.Listings()) != 0 {
		t.Errorf("listings = %v, want none", bob.Listings())
	}
	if bob.Busy() {
		t.Error("stale result must not change busy state")
	}
}

func TestListingsWithoutPendingSearchAreDropped(t *testing.T) {
	finder := &fakeFinder{listings: listings}
	j := New(loggedIn(t, "Web Development"), finder, nil, nil)
	_, cmd := j.Update(key('f'))
	msg := cmd()
	j.Update(msg)

	finder.listings = listings[:1]
	_, again := j.Update(key('f'))
	j.Update(msg)
	if !j.Busy() {
		t.Error("replayed result must not end the pending search")
	}
	j.Update(again())

	if got := j.Listings(); len(got) != 1 {
		t.Errorf("listings = %d, want 1 from the latest search", len(got))
	}
}
