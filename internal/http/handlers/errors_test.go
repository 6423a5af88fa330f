package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/prompt"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/llm"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"empty question", prompt.ErrEmptyQuestion, http.StatusBadRequest},
		{"player not found", &players.NotFoundError{FirstName: "A", LastName: "B"}, http.StatusNotFound},
		{"season not found", &stats.SeasonNotFoundError{Season: "1999-00"}, http.StatusNotFound},
		{"rate limited through source error", stats.NewSourceError(&providers.RateLimitError{StatusCode: 429}), http.StatusTooManyRequests},
		{"llm rate limited", fmt.Errorf("complete: %w", &providers.RateLimitError{Provider: "openai"}), http.StatusTooManyRequests},
		{"llm not configured", llm.ErrNotConfigured, http.StatusServiceUnavailable},
		{"llm unavailable", fmt.Errorf("%w: open", llm.ErrUnavailable), http.StatusServiceUnavailable},
		{"timeout", stats.NewSourceError(context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"source error", stats.NewSourceError(errors.New("boom")), http.StatusBadGateway},
		{"extraction error", &prompt.ExtractionError{Reason: "no choices"}, http.StatusBadGateway},
		{"upstream error", &llm.UpstreamError{StatusCode: 500, Message: "oops"}, http.StatusBadGateway},
		{"unknown", errors.New("???"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, msg := statusForError(tc.err)
			if got != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, got, msg)
			}
			if msg == "" {
				t.Fatalf("expected message")
			}
		})
	}
}
