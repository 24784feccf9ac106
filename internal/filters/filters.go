// Package filters holds per-user filter words and applies them to
// extracted links. State lives in process memory for the process
// lifetime, there is no persistence.
package filters

import (
	"slices"
	"strings"
	"sync"

	"github.com/gdrivehub/YTLinkerBot/internal/config"
	"github.com/gdrivehub/YTLinkerBot/internal/models"
)

type Service struct {
	mu       sync.RWMutex
	users    map[string][]string
	defaults []string
}

// New creates the filter store seeded with the
// configured process-wide default filter words
func New(config *config.Config) *Service {
	return &Service{
		users:    make(map[string][]string),
		defaults: normalize(config.DefaultFilters),
	}
}

// Get returns the user's filter words, or the defaults if the user has
// none configured. Always a copy, mutating it never corrupts the store.
func (s *Service) Get(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words, ok := s.users[userID]
	if !ok {
		words = s.defaults
	}

	return slices.Clone(words)
}

// Set replaces the user's filter words wholesale
func (s *Service) Set(userID string, words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = normalize(words)
}

// Add registers a single filter word for the user.
// No-op if the word is already present after normalization.
func (s *Service) Add(userID, word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.current(userID)
	if slices.Contains(words, word) {
		return
	}

	s.users[userID] = append(words, word)
}

// Remove drops a single filter word for the user.
// Reports whether the word was present and removed.
func (s *Service) Remove(userID, word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))

	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.current(userID)
	index := slices.Index(words, word)
	if index == -1 {
		return false
	}

	s.users[userID] = slices.Delete(words, index, index+1)
	return true
}

// Clear sets the user's filters to an explicit empty set. Unlike a user
// with no entry at all, a cleared user gets every link shown.
func (s *Service) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = []string{}
}

// Apply partitions the links into kept ones and an excluded count.
// A link is excluded when it contains any of the user's filter words,
// case-insensitive. Kept links preserve the input order.
func (s *Service) Apply(userID string, links models.Links) (models.Links, int) {

	words := s.Get(userID)

	kept := make(models.Links, 0, len(links))
	var excluded int

	for _, link := range links {
		if matchesAny(link, words) {
			excluded++
			continue
		}
		kept = append(kept, link)
	}

	return kept, excluded
}

// current returns the user's own slice copy, falling back
// to the defaults. Callers must hold the write lock.
func (s *Service) current(userID string) []string {
	words, ok := s.users[userID]
	if !ok {
		words = s.defaults
	}
	return slices.Clone(words)
}

// matchesAny reports whether the link contains
// any of the words, short-circuiting on the first hit
func matchesAny(link string, words []string) bool {
	link = strings.ToLower(link)
	for _, word := range words {
		if strings.Contains(link, word) {
			return true
		}
	}
	return false
}

// normalize lowercases and trims the words, dropping empty ones
func normalize(words []string) []string {
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" || slices.Contains(normalized, word) {
			continue
		}
		normalized = append(normalized, word)
	}
	return normalized
}
