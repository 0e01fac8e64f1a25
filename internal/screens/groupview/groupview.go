package groupview

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/studygroup"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

const maxMessageLength = 500

// GroupScreen shows the study group roster next to the group chat.
type GroupScreen struct {
	sess   *session.Session
	chat   *studygroup.Chat
	peers  []studygroup.Member
	input  components.TextInput
	log    *zap.Logger
	status string
}

var _ screen.Screen = (*GroupScreen)(nil)

func New(sess *session.Session, chat *studygroup.Chat, peers []studygroup.Member, log *zap.Logger) *GroupScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &GroupScreen{
		sess:  sess,
		chat:  chat,
		peers: peers,
		input: components.NewTextInput("Type your message...", maxMessageLength),
		log:   log,
	}
}

func (g *GroupScreen) Init() tea.Cmd { return g.input.Init() }

func (g *GroupScreen) Title() string { return "Study Group" }

func (g *GroupScreen) CapturesInput() bool { return true }

func (g *GroupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Send"}}
}

func (g *GroupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		g.send()
		return g, nil
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GroupScreen) send() {
	p := g.sess.Profile()
	msg, err := g.chat.Send(p.ID, p.Name, g.input.Value())
	switch {
	case errors.Is(err, studygroup.ErrBlankMessage):
		return
	case errors.Is(err, studygroup.ErrSlowDown):
		g.status = "You're sending messages too fast."
		return
	case err != nil:
		g.log.Warn("chat send failed", zap.Error(err))
		g.status = err.Error()
		return
	}
	g.log.Debug("chat message sent", zap.String("id", msg.ID))
	g.status = ""
	g.input.Reset()
}

func (g *GroupScreen) View(width, height int) string {
	p := g.sess.Profile()
	cw := components.ContentWidth(width)
	rosterWidth := max(cw/3, 24)
	chatWidth := cw - rosterWidth - 1

	roster := g.renderRoster(p, rosterWidth)
	chat := g.renderChat(p, chatWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, roster, " ", chat)
}

func (g *GroupScreen) renderRoster(p session.Profile, w int) string {
	var rows []string
	for _, m := range studygroup.Roster(p, g.peers) {
		name := m.Name
		if m.ID == p.ID {
			name += " (you)"
		}
		rows = append(rows,
			theme.Body.Render(name)+"\n"+
				theme.Subtitle.Render(m.Skill)+"\n"+
				components.NewProgressBar("", m.Progress, true, w-4).View())
	}
	return components.Card("Your Study Group", strings.Join(rows, "\n\n"), w, false)
}

func (g *GroupScreen) renderChat(p session.Profile, w, height int) string {
	g.input.SetWidth(w - 8)

	var lines []string
	for _, m := range g.chat.Messages() {
		who := theme.Heading.Render(m.SenderName)
		if m.SenderID == p.ID {
			who = theme.Selected.Render("You")
		}
		lines = append(lines, fmt.Sprintf("%s  %s", who, theme.Subtitle.Render(m.Stamp())))
		text := lipgloss.NewStyle().Width(w - 6).Foreground(theme.Text).Render(m.Content)
		lines = append(lines, strings.Split("  "+strings.ReplaceAll(text, "\n", "\n  "), "\n")...)
	}

	footer := g.input.View()
	if g.status != "" {
		footer = theme.ErrorText.Render(g.status) + "\n" + footer
	}

	// Title, borders, separator and footer surround the log.
	logHeight := height - 5 - lipgloss.Height(footer)
	log := layout.Clip(strings.Join(lines, "\n"), len(lines)-1, logHeight)
	body := log + "\n" + theme.Subtitle.Render(strings.Repeat("─", max(w-4, 0))) + "\n" + footer
	return components.Card(studygroup.ChatTitle(p.Skill), body, w, true)
}
