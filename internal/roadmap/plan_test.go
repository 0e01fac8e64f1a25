package roadmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planWith builds a plan whose weeks hold the given number of topics.
func planWith(topicCounts ...int) *Plan {
	p := &Plan{Weeks: []Week{}}
	for i, n := range topicCounts {
		w := Week{Week: i + 1, Title: "Week", Topics: []Topic{}, Project: "Build something"}
		for j := 0; j < n; j++ {
			w.Topics = append(w.Topics, Topic{Title: "Topic", Resources: []string{}})
		}
		p.Weeks = append(p.Weeks, w)
	}
	return p
}

func TestProgress_NoTopics(t *testing.T) {
	assert.Equal(t, 0, Progress(nil))
	assert.Equal(t, 0, Progress(&Plan{}))
	assert.Equal(t, 0, Progress(planWith(0, 0)))
}

func TestProgress_TwoOfFour(t *testing.T) {
	p := planWith(3, 1)
	require.NoError(t, p.Toggle(0, 1))
	require.NoError(t, p.Toggle(1, 0))
	assert.Equal(t, 50, Progress(p))
}

func TestProgress_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{1, 3, 33},  // 33.33
		{2, 3, 67},  // 66.67
		{1, 8, 13},  // 12.5
		{3, 8, 38},  // 37.5
		{1, 200, 1}, // 0.5
		{1, 201, 0}, // 0.497
		{7, 7, 100},
	}
	for _, tt := range tests {
		p := planWith(tt.total)
		for i := 0; i < tt.completed; i++ {
			require.NoError(t, p.Toggle(0, i))
		}
		assert.Equal(t, tt.want, Progress(p), "%d/%d", tt.completed, tt.total)
	}
}

func TestProgress_BoundedAndMonotonic(t *testing.T) {
	for total := 1; total <= 40; total++ {
		p := planWith(total)
		prev := Progress(p)
		assert.Equal(t, 0, prev)
		for i := 0; i < total; i++ {
			require.NoError(t, p.Toggle(0, i))
			got := Progress(p)
			assert.GreaterOrEqual(t, got, prev)
			assert.LessOrEqual(t, got, 100)
			prev = got
		}
		assert.Equal(t, 100, prev)
	}
}

func TestToggle_TwiceRestores(t *testing.T) {
	p := planWith(2, 3)
	require.NoError(t, p.Toggle(1, 0))
	before := p.Clone()
	beforeProgress := Progress(p)

	require.NoError(t, p.Toggle(1, 2))
	require.NoError(t, p.Toggle(1, 2))

	assert.Equal(t, before, p)
	assert.Equal(t, beforeProgress, Progress(p))
}

func TestToggle_OutOfRange(t *testing.T) {
	p := planWith(2)
	snapshot := p.Clone()

	for _, idx := range [][2]int{{-1, 0}, {1, 0}, {0, 2}, {0, -1}} {
		err := p.Toggle(idx[0], idx[1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTopicOutOfRange))
		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, idx[0], ie.Week)
		assert.Equal(t, idx[1], ie.Topic)
	}
	assert.Equal(t, snapshot, p)

	var nilPlan *Plan
	assert.ErrorIs(t, nilPlan.Toggle(0, 0), ErrTopicOutOfRange)
}

func TestNormalize(t *testing.T) {
	p := planWith(2, 1)
	p.Weeks[0].Topics[1].Completed = true
	p.Weeks[1].Topics[0].Completed = true

	p.Normalize()

	completed, total := Counts(p)
	assert.Equal(t, 0, completed)
	assert.Equal(t, 3, total)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Plan)
		ok     bool
	}{
		{"complete", func(*Plan) {}, true},
		{"empty weeks", func(p *Plan) { p.Weeks = []Week{} }, true},
		{"weeks missing", func(p *Plan) { p.Weeks = nil }, false},
		{"zero week number", func(p *Plan) { p.Weeks[0].Week = 0 }, false},
		{"blank week title", func(p *Plan) { p.Weeks[0].Title = "  " }, false},
		{"topics missing", func(p *Plan) { p.Weeks[0].Topics = nil }, false},
		{"blank topic title", func(p *Plan) { p.Weeks[0].Topics[0].Title = "" }, false},
		{"resources missing", func(p *Plan) { p.Weeks[0].Topics[0].Resources = nil }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := planWith(1)
			tt.mutate(p)
			if tt.ok {
				assert.NoError(t, p.Validate())
			} else {
				assert.Error(t, p.Validate())
			}
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	p := planWith(1)
	p.Weeks[0].Topics[0].Resources = []string{"https://developer.mozilla.org"}

	c := p.Clone()
	c.Weeks[0].Topics[0].Completed = true
	c.Weeks[0].Topics[0].Resources[0] = "changed"

	assert.False(t, p.Weeks[0].Topics[0].Completed)
	assert.Equal(t, "https://developer.mozilla.org", p.Weeks[0].Topics[0].Resources[0])
}
