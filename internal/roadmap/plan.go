// Package roadmap models a generated multi-week learning plan and derives
// completion progress from it.
package roadmap

import (
	"errors"
	"fmt"
	"strings"
)

// Plan is an ordered curriculum. Weeks appear in curriculum order.
type Plan struct {
	Weeks []Week `json:"weeks"`
}

// Week is one curriculum week. Week numbers start at 1.
type Week struct {
	Week    int     `json:"week"`
	Title   string  `json:"title"`
	Topics  []Topic `json:"topics"`
	Project string  `json:"project"`
}

// Topic is a single completable study item. Resources may be empty.
type Topic struct {
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Resources []string `json:"resources"`
}

// ErrTopicOutOfRange is matched by every *IndexError.
var ErrTopicOutOfRange = errors.New("topic index out of range")

// IndexError reports a toggle addressed at a topic that does not exist.
type IndexError struct {
	Week, Topic int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("no topic at week %d, topic %d", e.Week, e.Topic)
}

func (e *IndexError) Is(target error) bool { return target == ErrTopicOutOfRange }

// Validate checks the required-field contract of a decoded plan. It is
// stricter than JSON decoding alone: every week needs a positive number
// and a title, and every topic a title and a resources list.
func (p *Plan) Validate() error {
	if p == nil {
		return errors.New("plan is nil")
	}
	if p.Weeks == nil {
		return errors.New("plan has no weeks field")
	}
	for i, w := range p.Weeks {
		switch {
		case w.Week <= 0:
			return fmt.Errorf("week %d: week number must be positive, got %d", i+1, w.Week)
		case strings.TrimSpace(w.Title) == "":
			return fmt.Errorf("week %d: missing title", i+1)
		case w.Topics == nil:
			return fmt.Errorf("week %d: missing topics", i+1)
		}
		for j, t := range w.Topics {
			if strings.TrimSpace(t.Title) == "" {
				return fmt.Errorf("week %d topic %d: missing title", i+1, j+1)
			}
			if t.Resources == nil {
				return fmt.Errorf("week %d topic %d: missing resources", i+1, j+1)
			}
		}
	}
	return nil
}

// Normalize resets every topic to not completed. Generated plans always
// start from zero regardless of what the generator sent.
func (p *Plan) Normalize() {
	for i := range p.Weeks {
		for j := range p.Weeks[i].Topics {
			p.Weeks[i].Topics[j].Completed = false
		}
	}
}

// Toggle flips the completed flag of the topic at (week, topic), both
// zero based. Out of range indices return an *IndexError and change
// nothing.
func (p *Plan) Toggle(week, topic int) error {
	if p == nil || week < 0 || week >= len(p.Weeks) {
		return &IndexError{Week: week, Topic: topic}
	}
	topics := p.Weeks[week].Topics
	if topic < 0 || topic >= len(topics) {
		return &IndexError{Week: week, Topic: topic}
	}
	topics[topic].Completed = !topics[topic].Completed
	return nil
}

// Clone returns a deep copy.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	out := &Plan{Weeks: cloneSlice(p.Weeks)}
	for i := range out.Weeks {
		out.Weeks[i].Topics = cloneSlice(out.Weeks[i].Topics)
		for j := range out.Weeks[i].Topics {
			out.Weeks[i].Topics[j].Resources = cloneSlice(out.Weeks[i].Topics[j].Resources)
		}
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
