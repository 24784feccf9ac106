package yt

import (
	"errors"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestMapAPIError(t *testing.T) {

	apiErr := func(code int, reasons ...string) *googleapi.Error {
		gerr := &googleapi.Error{Code: code}
		for _, reason := range reasons {
			gerr.Errors = append(gerr.Errors, googleapi.ErrorItem{Reason: reason})
		}
		return gerr
	}

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"quota exceeded", apiErr(403, "quotaExceeded"), ErrQuotaExceeded},
		{"daily limit", apiErr(403, "dailyLimitExceeded"), ErrQuotaExceeded},
		{"rate limit", apiErr(403, "rateLimitExceeded"), ErrQuotaExceeded},
		{"forbidden", apiErr(403, "forbidden"), ErrForbidden},
		{"forbidden no reason", apiErr(403), ErrForbidden},
		{"not found", apiErr(404, "videoNotFound"), ErrVideoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapAPIError(tt.err); !errors.Is(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMapAPIErrorOther(t *testing.T) {

	// An unrecognized API verdict carries the status and reason
	got := mapAPIError(&googleapi.Error{
		Code:   400,
		Errors: []googleapi.ErrorItem{{Reason: "invalidParameter"}},
	})

	var apiErr *APIError
	if !errors.As(got, &apiErr) {
		t.Fatalf("got %T, want *APIError", got)
	}

	if apiErr.Status != 400 || apiErr.Reason != "invalidParameter" {
		t.Errorf("got status=%d reason=%q, want status=400 reason=%q",
			apiErr.Status, apiErr.Reason, "invalidParameter")
	}

	// A transport failure is wrapped, not classified
	cause := errors.New("connection reset")
	got = mapAPIError(cause)
	if !errors.Is(got, cause) {
		t.Errorf("got %v, want wrapped %v", got, cause)
	}
	if errors.As(got, &apiErr) {
		t.Errorf("transport failure classified as *APIError: %v", got)
	}
}
