package links

import (
	"context"

	"github.com/gdrivehub/YTLinkerBot/internal/config"
	"github.com/gdrivehub/YTLinkerBot/internal/filters"
	"github.com/gdrivehub/YTLinkerBot/internal/models"
)

// Pipeline turns one input URL into an extracted link collection
type Pipeline interface {
	Process(ctx context.Context, input string) (models.Links, error)
}

// History records processed videos and serves them back
type History interface {
	Record(ctx context.Context, e *models.Extraction) error
	Recent(ctx context.Context, userID string, limit int) ([]models.Extraction, error)
}

type Service struct {
	config   *config.Config
	filters  *filters.Service
	pipeline Pipeline
	history  History
}

func New(
	config *config.Config,
	filters *filters.Service,
	pipeline Pipeline,
	history History,
) *Service {
	return &Service{
		config:   config,
		filters:  filters,
		pipeline: pipeline,
		history:  history,
	}
}
