package utils

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError("cache.connect", "ping failed", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to survive errors.Is")
	}
	if got := err.Error(); got != "cache.connect: ping failed: connection refused" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestMalformedEventErrorMatchesThroughWrapping(t *testing.T) {
	inner := &MalformedEventError{Index: 2, Topic: "order.created", Reason: "missing order_id"}
	wrapped := fmt.Errorf("evaluate: %w", inner)

	var target *MalformedEventError
	if !errors.As(wrapped, &target) {
		t.Fatalf("expected errors.As to find MalformedEventError")
	}
	if target.Index != 2 {
		t.Fatalf("unexpected index: %d", target.Index)
	}
}

func TestParseEventTimeNormalisesToUTC(t *testing.T) {
	got, err := ParseEventTime("2024-09-02T10:00:00+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 8 || got.Location().String() != "UTC" {
		t.Fatalf("expected 08:00 UTC, got %v", got)
	}

	if _, err := ParseEventTime(""); err == nil {
		t.Fatalf("expected error for empty value")
	}
	if _, err := ParseEventTime("yesterday"); err == nil {
		t.Fatalf("expected error for non RFC 3339 value")
	}
}
