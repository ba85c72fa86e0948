package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{BadInput("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{New(KindSchemaInvalid, "schema"), http.StatusUnprocessableEntity},
		{New(KindUpstreamUnavailable, "down"), http.StatusBadRequest},
		{New(KindUpstreamBadPayload, "garbled"), http.StatusBadRequest},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := Status(tc.err); got != tc.want {
			t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestConflictBadRequestOverridesStatus(t *testing.T) {
	err := ConflictBadRequest("already there")
	if KindOf(err) != KindConflict {
		t.Fatalf("kind = %v, want KindConflict", KindOf(err))
	}
	if Status(err) != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", Status(err))
	}
}

func TestMessageHidesInternals(t *testing.T) {
	if got := Message(errors.New("sql: broken pipe")); got != "Internal server error" {
		t.Fatalf("Message = %q, want the generic message", got)
	}
	if got := Message(NotFound("Player %s not found", "x")); got != "Player x not found" {
		t.Fatalf("Message = %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUpstreamUnavailable, "FACEIT request failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to survive unwrapping")
	}
	if Message(err) != "FACEIT request failed" {
		t.Fatalf("Message = %q", Message(err))
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if KindOf(wrapped) != KindUpstreamUnavailable {
		t.Fatalf("kind lost through wrapping: %v", KindOf(wrapped))
	}
}
