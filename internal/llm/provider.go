package llm

import (
	"context"
	"encoding/json"
)

// Provider is implemented by every generation backend.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the backend's structured output mode is used and Content holds
	// JSON that already passed schema validation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model name requests are sent to.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System prompt. Optional.
	System string

	// Messages in conversation order. Roadmap and job requests carry a
	// single user message.
	Messages []Message

	// Schema, when non-nil, constrains the output to JSON.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a one-message conversation.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema describes the JSON document a request expects back.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "learning-roadmap".
	Name        string
	Description string

	// Definition is a JSON Schema object.
	Definition map[string]any
}

// Response is what a provider returns.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish applies the checks every backend runs on structured output:
// truncated JSON is reported as such, the rest is validated against the
// request schema.
func finish(req Request, resp *Response) (*Response, error) {
	resp.Content = trimContent(resp.Content)
	if req.Schema == nil {
		return resp, nil
	}
	if resp.StopReason == "max_tokens" {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}

// resolveModel maps a short alias to a full model ID. Unknown names pass
// through so configs can pin exact versions.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
