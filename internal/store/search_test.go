package store_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmate/internal/models"
	"mapmate/internal/store"
)

func TestSearchStore_AddRecentSearchDeduplicates(t *testing.T) {
	s := store.NewSearchStore()

	s.AddRecentSearch(models.Place{PlaceID: "abc", Name: "Cafe X"})
	s.AddRecentSearch(models.Place{PlaceID: "def", Name: "Cafe Y"})
	s.AddRecentSearch(models.Place{PlaceID: "abc", Name: "Cafe X again"})

	got := s.RecentSearches()
	require.Len(t, got, 2)
	// Newest first, duplicate dropped without reordering.
	assert.Equal(t, "def", got[0].PlaceID)
	assert.Equal(t, "abc", got[1].PlaceID)
	assert.Equal(t, "Cafe X", got[1].Name)
}

func TestSearchStore_RecentSearchesCapped(t *testing.T) {
	s := store.NewSearchStore()

	for i := 0; i < 15; i++ {
		s.AddRecentSearch(models.Place{PlaceID: fmt.Sprintf("p%d", i)})
	}

	got := s.RecentSearches()
	require.Len(t, got, 10)
	assert.Equal(t, "p14", got[0].PlaceID)
	assert.Equal(t, "p5", got[9].PlaceID)
}

func TestSearchStore_ClearRecentSearches(t *testing.T) {
	s := store.NewSearchStore()
	s.AddRecentSearch(models.Place{PlaceID: "abc"})

	s.ClearRecentSearches()

	assert.Empty(t, s.RecentSearches())
}

func TestSearchStore_Flags(t *testing.T) {
	s := store.NewSearchStore()

	s.SetSearchText("coffee")
	s.SetIsSearching(true)
	s.SetLastError("timeout")
	s.SetSuggestions([]models.Place{{PlaceID: "abc"}})

	assert.Equal(t, "coffee", s.SearchText())
	assert.True(t, s.IsSearching())
	assert.Equal(t, "timeout", s.LastError())
	assert.Len(t, s.Suggestions(), 1)
}
