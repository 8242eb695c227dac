package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string: %s", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http body: %+v", body)
	}

	simple := NewDomainErrorSimple("LIST_NOT_FOUND", "Shopping list not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "LIST_NOT_FOUND: Shopping list not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}
}
