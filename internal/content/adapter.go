// Package content turns skill and progress selections into generated
// learning roadmaps and job listings.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/jobs"
	"github.com/abhisek/learnpath/internal/llm"
	"github.com/abhisek/learnpath/internal/roadmap"
)

const (
	opPlan = "generate roadmap"
	opJobs = "match jobs"

	PurposeRoadmap = "roadmap-gen"
	PurposeJobs    = "job-match"
)

// Config tunes generation requests.
type Config struct {
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// Adapter is the boundary to the generation service. Each call is a single
// request: no retries happen here, and nothing is returned on failure but
// a *GenerationError.
type Adapter struct {
	provider llm.Provider
	config   Config
	cache    *jobs.Cache
	log      *zap.Logger
}

type Option func(*Adapter)

// WithJobCache serves repeated job searches from c.
func WithJobCache(c *jobs.Cache) Option {
	return func(a *Adapter) { a.cache = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.log = l }
}

func New(provider llm.Provider, cfg Config, opts ...Option) *Adapter {
	a := &Adapter{provider: provider, config: cfg, log: zap.NewNop()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// GeneratePlan asks for a roadmap to learn skill over duration. The
// returned plan has every topic marked not completed.
func (a *Adapter) GeneratePlan(ctx context.Context, skill, duration string) (*roadmap.Plan, error) {
	skill, duration = strings.TrimSpace(skill), strings.TrimSpace(duration)
	if skill == "" || duration == "" {
		return nil, &GenerationError{Op: opPlan, Kind: KindInvalidInput, Err: errors.New("skill and duration are required")}
	}

	var out roadmap.Plan
	if err := a.generate(ctx, PurposeRoadmap, PlanSchema, planPrompt(skill, duration), &out); err != nil {
		return nil, a.fail(opPlan, err)
	}
	if err := out.Validate(); err != nil {
		return nil, a.fail(opPlan, &llm.ErrInvalidResponse{Err: err})
	}
	out.Normalize()

	completed, total := roadmap.Counts(&out)
	a.log.Info("roadmap generated",
		zap.String("skill", skill),
		zap.String("duration", duration),
		zap.Int("weeks", len(out.Weeks)),
		zap.Int("topics", total),
		zap.Int("completed", completed),
	)
	return &out, nil
}

// FindJobs asks for jobs.Count listings suited to a learner of skill who
// is progress percent through their roadmap.
func (a *Adapter) FindJobs(ctx context.Context, skill string, progress int) ([]jobs.Listing, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, &GenerationError{Op: opJobs, Kind: KindInvalidInput, Err: errors.New("skill is required")}
	}
	progress = min(max(progress, 0), 100)

	if cached, ok := a.cache.Get(skill, progress); ok {
		a.log.Debug("job matches served from cache", zap.String("skill", skill), zap.Int("progress", progress))
		return cached, nil
	}

	var out struct {
		Jobs []jobs.Listing `json:"jobs"`
	}
	if err := a.generate(ctx, PurposeJobs, JobsSchema, jobsPrompt(skill, progress), &out); err != nil {
		return nil, a.fail(opJobs, err)
	}
	if err := jobs.Validate(out.Jobs); err != nil {
		return nil, a.fail(opJobs, &llm.ErrInvalidResponse{Err: err})
	}

	a.cache.Put(skill, progress, out.Jobs)
	a.log.Info("jobs matched", zap.String("skill", skill), zap.Int("progress", progress), zap.Int("count", len(out.Jobs)))
	return out.Jobs, nil
}

func (a *Adapter) generate(ctx context.Context, purpose string, schema *llm.Schema, prompt string, into any) error {
	if a.provider == nil {
		return llm.ErrNotConfigured
	}
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(prompt),
		Schema:      schema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return err
	}
	if err := decodeStrict(resp.Content, into); err != nil {
		return &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return nil
}

// decodeStrict decodes exactly one JSON value into v, rejecting unknown
// fields and trailing data.
func decodeStrict(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode: trailing data after JSON document")
	}
	return nil
}

func (a *Adapter) fail(op string, err error) error {
	kind := KindInvalidContent
	if llm.IsUnreachable(err) {
		kind = KindUnavailable
	}
	a.log.Warn("content generation failed",
		zap.String("op", op),
		zap.Stringer("kind", kind),
		zap.Error(err),
	)
	return &GenerationError{Op: op, Kind: kind, Err: err}
}
