// Package studygroup is the local study group: a roster of peers learning
// the same skill and a chat log. Peers are canned; nothing leaves the
// process.
package studygroup

import (
	"fmt"

	"github.com/abhisek/learnpath/internal/session"
)

// NoSkill labels the local user in the roster before a plan exists.
const NoSkill = "Not selected"

type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Skill    string `json:"skill"`
	Progress int    `json:"progress"`
}

// Peers returns the built-in study partners.
func Peers() []Member {
	return []Member{
		{ID: "user-2", Name: "Alex Doe", Skill: "Web Development", Progress: 65},
		{ID: "user-3", Name: "Sam Smith", Skill: "Web Development", Progress: 40},
		{ID: "user-4", Name: "Casey Lee", Skill: "Web Development", Progress: 80},
	}
}

// Roster lists the local user first, then every peer on the same skill.
// With no skill chosen all peers are listed.
func Roster(p session.Profile, peers []Member) []Member {
	me := Member{ID: p.ID, Name: p.Name, Skill: p.Skill, Progress: p.Progress}
	if me.Skill == "" {
		me.Skill = NoSkill
	}
	out := []Member{me}
	for _, peer := range peers {
		if p.Skill == "" || peer.Skill == p.Skill {
			out = append(out, peer)
		}
	}
	return out
}

func ChatTitle(skill string) string {
	if skill == "" {
		return "General Study Chat"
	}
	return fmt.Sprintf("%s Study Chat", skill)
}
