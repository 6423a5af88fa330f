package stats

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewSourceError(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if NewSourceError(nil) != nil {
		t.Fatal("expected nil for nil cause")
	}
}

func TestNewSourceErrorKeepsExisting(t *testing.T) {
	orig := missingField(FieldPTS)
	if got := NewSourceError(orig); got != error(orig) {
		t.Fatalf("expected existing SourceError to pass through, got %v", got)
	}
}

func TestSourceErrorMessageIncludesField(t *testing.T) {
	if got := missingField(FieldGP).Error(); got != "missing required field (field=GP)" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (&SourceError{}).Error(); got == "" {
		t.Fatal("expected fallback message")
	}
}

func TestSeasonNotFoundMessage(t *testing.T) {
	err := &SeasonNotFoundError{Season: "2023-24"}
	if err.Error() != "no stats found for season 2023-24" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
