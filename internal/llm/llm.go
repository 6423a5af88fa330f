// Package llm defines the chat-completion collaborator used to answer questions about player stats.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/prompt"
)

// ErrNotConfigured is returned when no completion backend is configured.
var ErrNotConfigured = errors.New("llm: completion backend not configured")

// ErrUnavailable is returned while the completion backend is considered unhealthy.
var ErrUnavailable = errors.New("llm: completion backend unavailable")

// Completer sends a prompt to a chat-completion model and returns the answer text.
type Completer interface {
	Complete(ctx context.Context, payload prompt.Payload) (string, error)
}

// UpstreamError reports a non-success HTTP response from the completion backend.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("llm: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("llm: unexpected status %d: %s", e.StatusCode, e.Message)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// Disabled is a Completer that always reports ErrNotConfigured.
type Disabled struct{}

func (Disabled) Complete(ctx context.Context, payload prompt.Payload) (string, error) {
	_ = ctx
	_ = payload
	return "", ErrNotConfigured
}
