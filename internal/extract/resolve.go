package extract

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// The input does not point to a YouTube video
var ErrInvalidURL = errors.New("unrecognized YouTube URL")

// Pre-filter pattern deciding whether some text mentions a YouTube video
// at all. The match stops at the video ID, so sentence punctuation right
// after the URL stays outside of it.
var videoURL = regexp.MustCompile(
	`(?i)(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?v=|embed/|v/)|youtu\.be/)[\w-]+`,
)

// Video IDs are a limited charset token
var validVideoID = regexp.MustCompile(`^[\w-]+$`)

// Hosts serving the long URL forms
var videoHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
}

// FindVideoURL returns the first YouTube-looking URL in free text, if any
func FindVideoURL(text string) (string, bool) {
	match := videoURL.FindString(text)
	return match, match != ""
}

// ParseVideoID extracts the canonical video ID from any of the known
// YouTube URL forms. The scheme is optional.
func ParseVideoID(rawURL string) (string, error) {

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrInvalidURL
	}

	// Tolerate a missing scheme, url.Parse puts
	// scheme-less input entirely into the path
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrInvalidURL
	}

	var videoID string
	host, path := parsedURL.Hostname(), parsedURL.Path

	switch {
	case host == "youtu.be":
		// Short form: https://youtu.be/VIDEO_ID
		videoID = firstSegment(path)
	case videoHosts[host] && path == "/watch":
		// Standard form: https://www.youtube.com/watch?v=VIDEO_ID
		videoID = parsedURL.Query().Get("v")
	case videoHosts[host] && strings.HasPrefix(path, "/embed/"):
		// Embed form: https://www.youtube.com/embed/VIDEO_ID
		videoID = firstSegment(strings.TrimPrefix(path, "/embed"))
	case videoHosts[host] && strings.HasPrefix(path, "/v/"):
		// Legacy form: https://www.youtube.com/v/VIDEO_ID
		videoID = firstSegment(strings.TrimPrefix(path, "/v"))
	default:
		return "", ErrInvalidURL
	}

	if !validVideoID.MatchString(videoID) {
		return "", ErrInvalidURL
	}

	return videoID, nil
}

// firstSegment returns the first path segment without the leading slash
func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(path, "/")
	return segment
}
