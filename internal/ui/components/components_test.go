package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestSelector(t *testing.T) {
	s := NewSelector("Skill", []string{"Go", "Rust", "Zig"}, "Rust")
	if s.Value() != "Rust" {
		t.Fatalf("Value() = %q, want Rust", s.Value())
	}
	s.Next()
	s.Next()
	if s.Value() != "Go" {
		t.Errorf("Value() after wrap = %q, want Go", s.Value())
	}
	s.Prev()
	if s.Value() != "Zig" {
		t.Errorf("Value() after Prev = %q, want Zig", s.Value())
	}

	unknown := NewSelector("Skill", []string{"Go"}, "COBOL")
	if unknown.Value() != "Go" {
		t.Errorf("unknown preselect should fall back to first, got %q", unknown.Value())
	}
	if (Selector{}).Value() != "" {
		t.Error("empty selector should have no value")
	}
}

func TestProgressBar(t *testing.T) {
	view := NewProgressBar("", 150, true, 30).View()
	if !strings.Contains(view, "100%") {
		t.Errorf("expected clamped percent in %q", view)
	}
}

func TestButton(t *testing.T) {
	b := NewButton("Find Jobs", "Searching...")
	if !strings.Contains(b.View(), "Find Jobs") {
		t.Error("expected label")
	}
	b.Busy = true
	if !strings.Contains(b.View(), "Searching...") {
		t.Error("expected busy label")
	}
}

func TestMenu(t *testing.T) {
	picked := ""
	m := NewMenu([]MenuItem{
		{Label: "Get Started", Action: func() tea.Cmd { picked = "start"; return nil }},
		{Label: "Quit", Action: func() tea.Cmd { picked = "quit"; return nil }},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "quit" {
		t.Errorf("picked = %q, want quit", picked)
	}
	if !strings.Contains(m.View(), "▸ Quit") {
		t.Error("expected cursor on Quit")
	}
}

func TestTextInputTrims(t *testing.T) {
	ti := NewTextInput("Your name", 40)
	ti.Model.SetValue("  Ada  ")
	if ti.Value() != "Ada" {
		t.Errorf("Value() = %q", ti.Value())
	}
	ti.Reset()
	if ti.Value() != "" {
		t.Error("Reset should clear")
	}
}
