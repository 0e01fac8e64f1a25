// Package jobs holds job listings matched to a learner's skill.
package jobs

import (
	"fmt"
	"net/url"
	"strings"
)

// Count is the number of listings requested per search.
const Count = 5

// Listing is one job opening. Listings have no identity beyond their
// position in a result.
type Listing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Validate checks that there are exactly Count listings, each with all
// four fields and an absolute http(s) link.
func Validate(listings []Listing) error {
	if listings == nil {
		return fmt.Errorf("no jobs field")
	}
	if len(listings) != Count {
		return fmt.Errorf("got %d jobs, want %d", len(listings), Count)
	}
	for i, l := range listings {
		for _, f := range l.fields() {
			if strings.TrimSpace(f.value) == "" {
				return fmt.Errorf("job %d: missing %s", i+1, f.name)
			}
		}
		u, err := url.Parse(l.Link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("job %d: link %q is not an http(s) URL", i+1, l.Link)
		}
	}
	return nil
}

type field struct {
	name, value string
}

// fields lists the required fields in wire order.
func (l Listing) fields() []field {
	return []field{
		{"title", l.Title},
		{"company", l.Company},
		{"link", l.Link},
		{"description", l.Description},
	}
}
