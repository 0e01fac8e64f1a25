// Package session holds the signed-in learner and their active roadmap.
// A Session is created by Login and handed to every screen; it is only
// touched from the UI goroutine.
package session

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/roadmap"
)

var (
	ErrEmptyName = errors.New("name must not be blank")
	ErrLoggedOut = errors.New("session is logged out")
	ErrNoPlan    = errors.New("no learning plan")
)

// Profile is the learner as shown in the header. Skill and Duration are
// empty until a plan has been applied.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Skill    string `json:"skill,omitempty"`
	Duration string `json:"duration,omitempty"`
	Progress int    `json:"progress"`
}

type Session struct {
	profile Profile
	plan    *roadmap.Plan
	active  bool
	log     *zap.Logger
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Login starts a session for name. The email is derived from the name.
func Login(id, name string, opts ...Option) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	s := &Session{
		profile: Profile{
			ID:    id,
			Name:  name,
			Email: strings.ToLower(name) + "@example.com",
		},
		active: true,
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log.Debug("session started", zap.String("user", id))
	return s, nil
}

// Logout discards the profile and plan.
func (s *Session) Logout() {
	s.log.Debug("session ended", zap.String("user", s.profile.ID))
	s.profile = Profile{}
	s.plan = nil
	s.active = false
}

func (s *Session) Active() bool { return s != nil && s.active }

// Profile returns a copy of the current profile.
func (s *Session) Profile() Profile { return s.profile }

// Plan returns a copy of the active plan, or nil.
func (s *Session) Plan() *roadmap.Plan {
	if s.plan == nil {
		return nil
	}
	return s.plan.Clone()
}

func (s *Session) HasPlan() bool { return s.plan != nil }

// ApplyPlan makes plan the active roadmap for skill and duration. The
// session keeps its own copy.
func (s *Session) ApplyPlan(plan *roadmap.Plan, skill, duration string) error {
	if !s.Active() {
		return ErrLoggedOut
	}
	if plan == nil {
		return ErrNoPlan
	}
	s.plan = plan.Clone()
	s.profile.Skill = skill
	s.profile.Duration = duration
	s.recompute()
	return nil
}

// ToggleTopic flips the completion flag of one topic. Indices are
// zero-based; out-of-range indices leave everything as it was.
func (s *Session) ToggleTopic(week, topic int) error {
	if !s.Active() {
		return ErrLoggedOut
	}
	if s.plan == nil {
		return ErrNoPlan
	}
	if err := s.plan.Toggle(week, topic); err != nil {
		return err
	}
	s.recompute()
	return nil
}

func (s *Session) recompute() {
	completed, total := roadmap.Counts(s.plan)
	s.profile.Progress = roadmap.Progress(s.plan)
	s.log.Debug("progress recomputed",
		zap.Int("completed", completed),
		zap.Int("total", total),
		zap.Int("progress", s.profile.Progress),
	)
}
