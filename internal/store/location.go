package store

import (
	"sync"

	"mapmate/internal/models"
)

// LocationStore holds the map viewport, user location, selected place,
// saved-locations list, and current directions result. It is the
// single-writer container behind the map view: only the coordinator
// mutates it, views read snapshots.
type LocationStore struct {
	mu sync.RWMutex

	viewport       models.Viewport
	userLocation   *models.LatLng
	selectedPlace  *models.Place
	savedLocations []models.SavedLocation
	directions     *models.DirectionsResult
}

func NewLocationStore(defaultCenter models.LatLng, defaultZoom int) *LocationStore {
	return &LocationStore{
		viewport: models.Viewport{Center: defaultCenter, Zoom: defaultZoom},
	}
}

func (s *LocationStore) Viewport() models.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

func (s *LocationStore) SetCenter(center models.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.Center = center
}

func (s *LocationStore) SetZoom(zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.Zoom = zoom
}

func (s *LocationStore) UserLocation() (models.LatLng, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userLocation == nil {
		return models.LatLng{}, false
	}
	return *s.userLocation, true
}

func (s *LocationStore) SetUserLocation(loc models.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userLocation = &loc
}

func (s *LocationStore) SelectedPlace() (models.Place, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedPlace == nil {
		return models.Place{}, false
	}
	return *s.selectedPlace, true
}

func (s *LocationStore) SetSelectedPlace(p models.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPlace = &p
}

func (s *LocationStore) ClearSelectedPlace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPlace = nil
}

func (s *LocationStore) SavedLocations() []models.SavedLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SavedLocation(nil), s.savedLocations...)
}

// ReplaceSavedLocations swaps in the full list from the server. Always a
// wholesale replace, never a merge; a late-arriving response simply wins.
func (s *LocationStore) ReplaceSavedLocations(locations []models.SavedLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedLocations = append([]models.SavedLocation(nil), locations...)
}

func (s *LocationStore) AddSavedLocation(loc models.SavedLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedLocations = append(s.savedLocations, loc)
}

func (s *LocationStore) RemoveSavedLocation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.savedLocations[:0]
	for _, loc := range s.savedLocations {
		if loc.ID != id {
			kept = append(kept, loc)
		}
	}
	s.savedLocations = kept
}

func (s *LocationStore) Directions() (*models.DirectionsResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.directions == nil {
		return nil, false
	}
	result := *s.directions
	return &result, true
}

func (s *LocationStore) SetDirections(result models.DirectionsResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directions = &result
}

func (s *LocationStore) ClearDirections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directions = nil
}
