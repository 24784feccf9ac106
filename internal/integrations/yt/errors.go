package yt

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// The video is absent, private or deleted
	ErrVideoNotFound = errors.New("video not found on YouTube")
	// The API key ran out of quota
	ErrQuotaExceeded = errors.New("YouTube API quota exceeded")
	// Access denied for a non-quota reason
	ErrForbidden = errors.New("access to the video is forbidden")
)

// Reasons YouTube reports when the 403 is about quota, not access
var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"dailyLimitExceeded":    true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
}

// APIError is any other structured error reported by the YouTube API
type APIError struct {
	Status int
	Reason string
}

// Implement error interface
func (e *APIError) Error() string {

	if e.Reason == "" {
		return fmt.Sprintf("YouTube API error, status=%d", e.Status)
	}

	return fmt.Sprintf("YouTube API error, status=%d, reason=%s", e.Status, e.Reason)
}

// mapAPIError converts an error returned by the YouTube client into
// one of the typed errors above. The API reports the specifics in a
// loosely structured payload (HTTP status plus a reason string), so
// the inspection happens here and nowhere else.
func mapAPIError(err error) error {

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		// Transport or parse failure, not an API verdict
		return fmt.Errorf("unexpected YouTube API failure; %w", err)
	}

	var reason string
	if len(gerr.Errors) > 0 {
		reason = gerr.Errors[0].Reason
	}

	switch gerr.Code {
	case http.StatusForbidden:
		if quotaReasons[reason] {
			return ErrQuotaExceeded
		}
		return ErrForbidden
	case http.StatusNotFound:
		return ErrVideoNotFound
	}

	return &APIError{Status: gerr.Code, Reason: reason}
}
