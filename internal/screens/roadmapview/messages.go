package roadmapview

import (
	"github.com/abhisek/learnpath/internal/roadmap"
	"github.com/abhisek/learnpath/internal/session"
)

// planReadyMsg carries the outcome of one generation request together with
// the session, request number and selection it was made for.
type planReadyMsg struct {
	Session  *session.Session
	Seq      int
	Plan     *roadmap.Plan
	Skill    string
	Duration string
	Err      error
}
