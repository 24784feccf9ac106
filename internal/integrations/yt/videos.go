package yt

import (
	"context"
	"log"

	"google.golang.org/api/googleapi"
)

// Snippet fields needed to scan a description for links
var descriptionFields googleapi.Field = "items(snippet(title,description))"

// GetDescription fetches the description of a single YouTube video.
// Returns typed errors the caller can inspect with errors.Is/As.
func (s *Service) GetDescription(ctx context.Context, videoID string) (string, error) {

	call := s.youtube.Videos.
		List([]string{"snippet"}).
		Id(videoID).
		Fields(descriptionFields).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return "", mapAPIError(err)
	}

	// The video might be private, deleted, or the ID is bogus
	if len(response.Items) == 0 {
		return "", ErrVideoNotFound
	}

	snippet := response.Items[0].Snippet
	log.Printf("Fetched description for video %q (%s)", snippet.Title, videoID)

	return snippet.Description, nil
}
