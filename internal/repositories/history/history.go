package history

import (
	"context"
	"fmt"

	"github.com/gdrivehub/YTLinkerBot/internal/drivers/database"
	"github.com/gdrivehub/YTLinkerBot/internal/models"
)

type Repository struct {
	db database.Service
}

func New(db database.Service) *Repository {
	return &Repository{db: db}
}

// Record logs one processed video in the extraction history
func (r *Repository) Record(ctx context.Context, e *models.Extraction) error {

	affected, err := r.db.Exec(
		ctx, recordExtractionQuery,
		e.UserID, e.VideoID, e.Found, e.Kept,
	)

	if err != nil {
		return fmt.Errorf("failed to record the extraction; %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("no rows affected recording extraction for video %s", e.VideoID)
	}

	return nil
}

// Recent returns the user's latest extractions, newest first
func (r *Repository) Recent(ctx context.Context, userID string, limit int) ([]models.Extraction, error) {

	rows, err := r.db.Query(ctx, recentExtractionsQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query the extraction history; %w", err)
	}
	defer rows.Close()

	var extractions []models.Extraction
	for rows.Next() {
		var e models.Extraction
		if err = rows.Scan(
			&e.ID,
			&e.VideoID,
			&e.Found,
			&e.Kept,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan an extraction row; %w", err)
		}
		e.UserID = userID
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}
