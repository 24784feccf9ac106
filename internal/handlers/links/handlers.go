package links

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gdrivehub/YTLinkerBot/internal/extract"
	"github.com/gdrivehub/YTLinkerBot/internal/models"
	"github.com/gdrivehub/YTLinkerBot/internal/utils"
)

// ExtractHandler runs the pipeline on a submitted message and
// returns the user's filtered links from the video description
func (s *Service) ExtractHandler(w http.ResponseWriter, r *http.Request) {

	var payload struct {
		URL string `json:"url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// The message must mention a YouTube video at all
	videoURL, ok := extract.FindVideoURL(payload.URL)
	if !ok {
		utils.JSONError(
			w, r, http.StatusUnprocessableEntity,
			"no YouTube video URL found in the message",
		)
		return
	}

	found, err := s.pipeline.Process(r.Context(), videoURL)
	if err != nil {
		status, message := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Printf("Failed to process %q: %v", videoURL, err)
		}
		utils.JSONError(w, r, status, message)
		return
	}

	userID := utils.GetUserID(r)
	kept, excluded := s.filters.Apply(userID, found)

	// Log the extraction, a lost history row is not worth failing the request
	videoID, _ := extract.ParseVideoID(videoURL)
	record := &models.Extraction{
		UserID:  userID,
		VideoID: videoID,
		Found:   len(found),
		Kept:    len(kept),
	}
	if err := s.history.Record(r.Context(), record); err != nil {
		log.Printf("Failed to record extraction of %q: %v", videoID, err)
	}

	utils.WriteJSON(w, r, models.FilterResult{
		Links:    kept,
		Excluded: excluded,
		Total:    len(found),
	})
}

// FiltersHandler shows the user's current filter words
func (s *Service) FiltersHandler(w http.ResponseWriter, r *http.Request) {
	s.writeFilters(w, r, utils.GetUserID(r))
}

// SetFiltersHandler replaces the user's filter words wholesale
func (s *Service) SetFiltersHandler(w http.ResponseWriter, r *http.Request) {

	var payload struct {
		Words []string `json:"words"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	userID := utils.GetUserID(r)
	s.filters.Set(userID, payload.Words)
	s.writeFilters(w, r, userID)
}

// ClearFiltersHandler resets the user to an
// explicit empty set, every link gets shown
func (s *Service) ClearFiltersHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserID(r)
	s.filters.Clear(userID)
	s.writeFilters(w, r, userID)
}

// AddFilterHandler registers one filter word for the user
func (s *Service) AddFilterHandler(w http.ResponseWriter, r *http.Request) {

	var payload struct {
		Word string `json:"word"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.Word == "" {
		utils.JSONError(w, r, http.StatusUnprocessableEntity, "no filter word provided")
		return
	}

	userID := utils.GetUserID(r)
	s.filters.Add(userID, payload.Word)
	s.writeFilters(w, r, userID)
}

// RemoveFilterHandler drops one filter word for the user
func (s *Service) RemoveFilterHandler(w http.ResponseWriter, r *http.Request) {

	userID := utils.GetUserID(r)
	word := r.PathValue("word")

	if !s.filters.Remove(userID, word) {
		utils.JSONError(w, r, http.StatusNotFound, "word not in the filter list")
		return
	}

	s.writeFilters(w, r, userID)
}

// HistoryHandler shows the user's recent extractions
func (s *Service) HistoryHandler(w http.ResponseWriter, r *http.Request) {

	extractions, err := s.history.Recent(r.Context(), utils.GetUserID(r), recentLimit)
	if err != nil {
		log.Printf("Failed to fetch the extraction history: %v", err)
		utils.JSONError(w, r, http.StatusInternalServerError, "")
		return
	}

	if extractions == nil {
		extractions = []models.Extraction{}
	}

	utils.WriteJSON(w, r, map[string]any{"history": extractions})
}

// writeFilters responds with the user's current filter words
func (s *Service) writeFilters(w http.ResponseWriter, r *http.Request, userID string) {
	utils.WriteJSON(w, r, map[string]any{
		"filters": s.filters.Get(userID),
	})
}
