package store

import (
	"sync"

	"mapmate/internal/models"
)

// maxRecentSearches caps the recent-search history, newest first.
const maxRecentSearches = 10

// SearchStore holds the query text, derived suggestion list, recent-search
// history, and the in-flight flag.
type SearchStore struct {
	mu sync.RWMutex

	searchText     string
	recentSearches []models.Place
	suggestions    []models.Place
	isSearching    bool
	lastError      string
}

func NewSearchStore() *SearchStore {
	return &SearchStore{}
}

func (s *SearchStore) SearchText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchText
}

func (s *SearchStore) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = text
}

func (s *SearchStore) RecentSearches() []models.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Place(nil), s.recentSearches...)
}

// AddRecentSearch prepends the place unless an entry with the same place
// id already exists, and trims the history to its cap.
func (s *SearchStore) AddRecentSearch(p models.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.recentSearches {
		if existing.PlaceID == p.PlaceID {
			return
		}
	}
	s.recentSearches = append([]models.Place{p}, s.recentSearches...)
	if len(s.recentSearches) > maxRecentSearches {
		s.recentSearches = s.recentSearches[:maxRecentSearches]
	}
}

func (s *SearchStore) ClearRecentSearches() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recentSearches = nil
}

func (s *SearchStore) Suggestions() []models.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Place(nil), s.suggestions...)
}

func (s *SearchStore) SetSuggestions(suggestions []models.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = append([]models.Place(nil), suggestions...)
}

func (s *SearchStore) IsSearching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isSearching
}

func (s *SearchStore) SetIsSearching(searching bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSearching = searching
}

func (s *SearchStore) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *SearchStore) SetLastError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = message
}
