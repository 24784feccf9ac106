package models

import "time"

// Extraction is one processed video, as recorded in the history log
type Extraction struct {
	ID        int       `json:"id,omitempty"`
	UserID    string    `json:"-"`
	VideoID   string    `json:"video_id"`
	Found     int       `json:"found"`
	Kept      int       `json:"kept"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
