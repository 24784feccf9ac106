package links

import (
	"errors"
	"net/http"

	"github.com/gdrivehub/YTLinkerBot/internal/extract"
	"github.com/gdrivehub/YTLinkerBot/internal/integrations/yt"
)

// How many extractions the history endpoint serves
const recentLimit = 20

// statusFromError translates pipeline errors into an HTTP status and a
// client-facing message. Anything unrecognized stays a generic 500, the
// details belong in the log, not in the response.
func statusFromError(err error) (int, string) {

	switch {
	case errors.Is(err, extract.ErrInvalidURL):
		return http.StatusUnprocessableEntity,
			"invalid YouTube URL format, please provide a valid video URL"
	case errors.Is(err, yt.ErrVideoNotFound):
		return http.StatusNotFound,
			"video not found, it might be private, deleted, or the URL is wrong"
	case errors.Is(err, yt.ErrQuotaExceeded):
		return http.StatusTooManyRequests,
			"YouTube API quota exceeded, please try again later"
	case errors.Is(err, yt.ErrForbidden):
		return http.StatusForbidden,
			"access forbidden, the video might be private or restricted"
	}

	var apiErr *yt.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway, apiErr.Error()
	}

	return http.StatusInternalServerError, ""
}
