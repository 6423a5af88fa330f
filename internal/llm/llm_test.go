package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/prompt"
)

func TestDisabledReportsNotConfigured(t *testing.T) {
	_, err := Disabled{}.Complete(context.Background(), prompt.Payload{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{StatusCode: 500, Message: "server overloaded"}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "server overloaded") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if bare := (&UpstreamError{StatusCode: 502}).Error(); !strings.Contains(bare, "502") {
		t.Fatalf("unexpected message %q", bare)
	}

	wrapped := fmt.Errorf("ask: %w", err)
	got, ok := AsUpstreamError(wrapped)
	if !ok || got.StatusCode != 500 {
		t.Fatalf("expected wrapped upstream error, got %v", wrapped)
	}
	if _, ok := AsUpstreamError(ErrNotConfigured); ok {
		t.Fatal("expected non upstream error to be rejected")
	}
}
