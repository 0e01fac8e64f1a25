package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections
// so that they line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps a title and body in a rounded border at width w.
func Card(title, body string, w int, focused bool) string {
	style := theme.Card
	if focused {
		style = theme.FocusedCard
	}
	content := body
	if title != "" {
		content = theme.Heading.Render(title) + "\n" + body
	}
	return style.Width(w).Render(content)
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
