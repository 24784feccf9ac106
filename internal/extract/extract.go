package extract

import (
	"context"

	"github.com/gdrivehub/YTLinkerBot/internal/config"
	"github.com/gdrivehub/YTLinkerBot/internal/drivers/rdb"
	"github.com/gdrivehub/YTLinkerBot/internal/models"
)

// Fetcher fetches the description of a single video
type Fetcher interface {
	GetDescription(ctx context.Context, videoID string) (string, error)
}

type Service struct {
	config  *config.Config
	rdb     *rdb.Service
	fetcher Fetcher
}

func New(config *config.Config, rdb *rdb.Service, fetcher Fetcher) *Service {
	return &Service{
		config:  config,
		rdb:     rdb,
		fetcher: fetcher,
	}
}

// Process runs the whole pipeline on one input URL: resolve the video ID,
// fetch the description (through the cache) and scan it for links.
// A successfully fetched description with zero links in it is not an
// error, the caller gets an empty collection.
func (s *Service) Process(ctx context.Context, input string) (models.Links, error) {

	videoID, err := ParseVideoID(input)
	if err != nil {
		return nil, err
	}

	// Descriptions rarely change, caching them spares the API quota
	description, err := rdb.GetCachedData(
		ctx, s.rdb, "description:"+videoID, s.config.CacheTimeout,
		func() (string, error) {
			// Bound the provider call to the configured fetch timeout
			fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
			defer cancel()
			return s.fetcher.GetDescription(fetchCtx, videoID)
		},
	)

	if err != nil {
		return nil, err
	}

	return Links(description), nil
}
