package summarizer

import (
	"context"
	"errors"
)

// ErrMalformedResponse marks a chat reply that carries no usable summary.
var ErrMalformedResponse = errors.New("malformed summary response")

// Summarizer turns an assembled transcript into a markdown summary.
type Summarizer interface {
	Summarize(ctx context.Context, document, extraPrompt string) (string, error)
}
