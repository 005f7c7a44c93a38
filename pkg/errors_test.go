package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("UNKNOWN_GATEWAY", "Unknown gateway", http.StatusBadRequest)
		if e.HTTPStatus != http.StatusBadRequest || e.Err != nil {
			t.Fatalf("unexpected error: %+v", e)
		}
		if e.Error() != "UNKNOWN_GATEWAY: Unknown gateway" {
			t.Fatalf("unexpected message: %q", e.Error())
		}
		if got := e.ToHTTPError(); got.Code != "UNKNOWN_GATEWAY" || got.Message != "Unknown gateway" {
			t.Fatalf("unexpected http error: %+v", got)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", e.HTTPStatus)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected to unwrap cause")
		}
		if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
			t.Fatalf("unexpected message: %q", e.Error())
		}
	})
}
