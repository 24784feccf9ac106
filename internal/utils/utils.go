package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

type contextKey struct {
	name string
}

// Universal context key to get the requesting user's ID from context
var UserContextKey = contextKey{name: "user"}

// Get the requesting user's ID from context
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(UserContextKey).(string)
	return userID // empty if not in context
}

// HttpError writes a plain text error to the response
func HttpError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

// WriteJSON converts the data into JSON-formatted string
// and writes the output to response
func WriteJSON(w http.ResponseWriter, r *http.Request, data any) {
	// Encode data to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON response on URI '%s': %v", r.RequestURI, err)
		HttpError(w, http.StatusInternalServerError)
		return
	}

	// Write to response
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(jsonData); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to write JSON to response on URI '%s': %v", r.RequestURI, err)
	}
}

// JSONError writes a JSON error with the given status to the response
func JSONError(w http.ResponseWriter, r *http.Request, status int, message string) {

	if message == "" {
		message = http.StatusText(status)
	}

	data := map[string]any{
		"error": message,
		"code":  status,
	}

	// Encode data to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON 'error' response on URI '%s': %v", r.RequestURI, err)
		HttpError(w, status)
		return
	}

	// Set status code and content type before writing the response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(jsonData); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to write JSON 'error' to response on URI '%s': %v", r.RequestURI, err)
	}
}
