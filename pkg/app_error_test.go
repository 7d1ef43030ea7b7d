package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	simple := NewDomainErrorSimple("NOT_FOUND", "Policy not found", http.StatusNotFound)
	body := simple.ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Message != "Policy not found" || body.Details != "" {
		t.Fatalf("unexpected body: %+v", body)
	}

	cause := errors.New("connection reset")
	wrapped := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
	if wrapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", wrapped.HTTPStatus)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := wrapped.ToHTTPError().Details; got != "connection reset" {
		t.Fatalf("expected details to carry cause, got %q", got)
	}
}
