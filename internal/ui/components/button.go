package components

import (
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// Button renders an action label. A busy button shows BusyLabel instead
// and renders as inactive.
type Button struct {
	Label     string
	BusyLabel string
	Active    bool
	Busy      bool
}

func NewButton(label, busyLabel string) Button {
	return Button{Label: label, BusyLabel: busyLabel, Active: true}
}

// View renders the button.
func (b Button) View() string {
	if b.Busy {
		return theme.ButtonInactive.Render(b.BusyLabel)
	}
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
