package content

import (
	"errors"
	"fmt"
)

// ErrGeneration matches every error returned by the Adapter.
var ErrGeneration = errors.New("content generation failed")

// ErrorKind separates failures to reach the generator from answers that
// could not be used.
type ErrorKind int

const (
	// KindUnavailable: transport failure, timeout, rate limit or no
	// configured provider.
	KindUnavailable ErrorKind = iota + 1
	// KindInvalidContent: the generator answered, but the payload was not
	// JSON, violated the schema or missed required fields.
	KindInvalidContent
	// KindInvalidInput: the request was rejected before being sent.
	KindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindInvalidContent:
		return "invalid content"
	case KindInvalidInput:
		return "invalid input"
	}
	return "unknown"
}

// GenerationError is the only error type the Adapter returns.
type GenerationError struct {
	Op   string // "generate roadmap" or "match jobs"
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.summary(), e.Kind, e.Err)
}

// summary is the short, user-facing form of the error.
func (e *GenerationError) summary() string {
	switch e.Op {
	case opPlan:
		return "Failed to generate learning roadmap."
	case opJobs:
		return "Failed to match jobs."
	}
	return "Failed to " + e.Op + "."
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }

// Unavailable reports whether err is a GenerationError of KindUnavailable.
func Unavailable(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge) && ge.Kind == KindUnavailable
}
