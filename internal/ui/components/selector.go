package components

import (
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// Selector cycles through a fixed list of options.
type Selector struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelector preselects want when it is one of the options, otherwise
// the first option.
func NewSelector(label string, options []string, want string) Selector {
	s := Selector{Label: label, Options: options}
	for i, o := range options {
		if o == want {
			s.Selected = i
			break
		}
	}
	return s
}

func (s *Selector) Next() {
	if len(s.Options) > 0 {
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
}

func (s *Selector) Prev() {
	if len(s.Options) > 0 {
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	}
}

// Value is the selected option, or "" when there are none.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

func (s Selector) View() string {
	value := "◂ " + s.Value() + " ▸"
	if s.Focused {
		value = theme.Selected.Render(value)
	} else {
		value = theme.Unselected.Render(value)
	}
	return theme.Subtitle.Render(s.Label+": ") + value
}
