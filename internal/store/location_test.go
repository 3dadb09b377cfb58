package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmate/internal/models"
	"mapmate/internal/store"
)

var defaultCenter = models.LatLng{Lat: 10.776530, Lng: 106.700981}

func TestLocationStore_DefaultViewport(t *testing.T) {
	s := store.NewLocationStore(defaultCenter, 13)

	vp := s.Viewport()
	assert.Equal(t, defaultCenter, vp.Center)
	assert.Equal(t, 13, vp.Zoom)

	_, ok := s.UserLocation()
	assert.False(t, ok)
	_, ok = s.SelectedPlace()
	assert.False(t, ok)
	_, ok = s.Directions()
	assert.False(t, ok)
	assert.Empty(t, s.SavedLocations())
}

func TestLocationStore_ViewportUpdates(t *testing.T) {
	s := store.NewLocationStore(defaultCenter, 13)

	s.SetCenter(models.LatLng{Lat: 10.80, Lng: 106.75})
	s.SetZoom(16)

	vp := s.Viewport()
	assert.Equal(t, models.LatLng{Lat: 10.80, Lng: 106.75}, vp.Center)
	assert.Equal(t, 16, vp.Zoom)
}

func TestLocationStore_ReplaceSavedLocationsIsWholesale(t *testing.T) {
	s := store.NewLocationStore(defaultCenter, 13)

	first := []models.SavedLocation{
		{ID: "1", Owner: "an", Place: models.Place{Name: "A"}},
		{ID: "2", Owner: "an", Place: models.Place{Name: "B"}},
	}
	second := []models.SavedLocation{
		{ID: "3", Owner: "an", Place: models.Place{Name: "C"}},
	}

	s.ReplaceSavedLocations(first)
	require.Len(t, s.SavedLocations(), 2)

	// The second response fully replaces the first, no merge.
	s.ReplaceSavedLocations(second)
	got := s.SavedLocations()
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestLocationStore_RemoveSavedLocationByID(t *testing.T) {
	s := store.NewLocationStore(defaultCenter, 13)
	s.ReplaceSavedLocations([]models.SavedLocation{
		{ID: "1", Place: models.Place{Name: "A"}},
		{ID: "2", Place: models.Place{Name: "B"}},
		{ID: "3", Place: models.Place{Name: "C"}},
	})

	s.RemoveSavedLocation("2")

	got := s.SavedLocations()
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	// Removing an unknown id leaves the list untouched.
	s.RemoveSavedLocation("missing")
	assert.Len(t, s.SavedLocations(), 2)
}

func TestLocationStore_Directions(t *testing.T) {
	s := store.NewLocationStore(defaultCenter, 13)

	result := models.DirectionsResult{
		Routes: []models.DirectionsRoute{{
			Legs: []models.DirectionsLeg{{
				Distance: models.TextValue{Text: "5 km", Value: 5000},
			}},
		}},
	}
	s.SetDirections(result)

	got, ok := s.Directions()
	require.True(t, ok)
	leg, ok := got.Primary()
	require.True(t, ok)
	assert.Equal(t, "5 km", leg.Distance.Text)

	s.ClearDirections()
	_, ok = s.Directions()
	assert.False(t, ok)
}

func TestLocationStore_SnapshotsAreCopies(t *testing.T) {
	s := store.NewLocationStore(defaultCenter, 13)
	s.ReplaceSavedLocations([]models.SavedLocation{{ID: "1"}})

	snapshot := s.SavedLocations()
	snapshot[0].ID = "mutated"

	assert.Equal(t, "1", s.SavedLocations()[0].ID)
}
