package coordinator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmate/internal/coordinator"
	"mapmate/internal/models"
	"mapmate/internal/services"
	"mapmate/internal/store"
	"mapmate/pkg/logger"
)

func newSearchFixture(t *testing.T, speech services.SpeechRecognizer) (*fixture, *coordinator.SearchCoordinator) {
	t.Helper()
	f := newFixture(t, nil, nil)
	if speech == nil {
		speech = services.UnsupportedSpeechRecognizer{}
	}
	sc := coordinator.NewSearchCoordinator(
		f.search, f.coord, speech, logger.NewNop(),
		coordinator.WithDebounceInterval(15*time.Millisecond),
	)
	t.Cleanup(sc.Close)
	return f, sc
}

func seedHistory(s *store.SearchStore) {
	s.AddRecentSearch(models.Place{PlaceID: "1", Name: "Cafe X"})
	s.AddRecentSearch(models.Place{PlaceID: "2", Name: "Pho 24"})
	s.AddRecentSearch(models.Place{PlaceID: "3", Name: "The Coffee House"})
}

func TestSearch_DebouncedSuggestions(t *testing.T) {
	f, sc := newSearchFixture(t, nil)
	seedHistory(f.search)

	sc.SetQuery("cafe")

	// Nothing until the debounce interval elapses.
	assert.Empty(t, f.search.Suggestions())

	assert.Eventually(t, func() bool {
		suggestions := f.search.Suggestions()
		return len(suggestions) == 1 && suggestions[0].PlaceID == "1"
	}, time.Second, 5*time.Millisecond)
}

func TestSearch_MatchIsCaseInsensitiveSubstring(t *testing.T) {
	f, sc := newSearchFixture(t, nil)
	seedHistory(f.search)

	sc.SetQuery("COFFEE")

	assert.Eventually(t, func() bool {
		suggestions := f.search.Suggestions()
		return len(suggestions) == 1 && suggestions[0].Name == "The Coffee House"
	}, time.Second, 5*time.Millisecond)
}

func TestSearch_NewInputCancelsPendingTimer(t *testing.T) {
	f, sc := newSearchFixture(t, nil)
	seedHistory(f.search)

	sc.SetQuery("cafe")
	sc.SetQuery("pho")

	assert.Eventually(t, func() bool {
		suggestions := f.search.Suggestions()
		return len(suggestions) == 1 && suggestions[0].PlaceID == "2"
	}, time.Second, 5*time.Millisecond)

	// Only the final query produced suggestions.
	time.Sleep(30 * time.Millisecond)
	suggestions := f.search.Suggestions()
	require.Len(t, suggestions, 1)
	assert.Equal(t, "2", suggestions[0].PlaceID)
}

func TestSearch_EmptyQueryClearsSuggestions(t *testing.T) {
	f, sc := newSearchFixture(t, nil)
	seedHistory(f.search)

	sc.SetQuery("cafe")
	assert.Eventually(t, func() bool {
		return len(f.search.Suggestions()) == 1
	}, time.Second, 5*time.Millisecond)

	sc.ClearQuery()
	assert.Empty(t, f.search.Suggestions())
	assert.Empty(t, f.search.SearchText())
}

func TestSearch_CloseDropsLateCallback(t *testing.T) {
	f, sc := newSearchFixture(t, nil)
	seedHistory(f.search)

	sc.SetQuery("cafe")
	sc.Close()

	// The pending timer must not mutate state after Close.
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, f.search.Suggestions())
}

func TestSearch_SelectSuggestionRoutesThroughSelectPlace(t *testing.T) {
	f, sc := newSearchFixture(t, nil)

	sc.SelectSuggestion(models.Place{
		PlaceID: "abc123",
		Name:    "Cafe X",
		Lat:     10.77,
		Lng:     106.70,
		Address: "1 A St, Saigon",
	})

	selected, ok := f.location.SelectedPlace()
	require.True(t, ok)
	assert.Equal(t, "Cafe X", selected.Name)
	assert.Equal(t, "abc123", selected.PlaceID)
	assert.Equal(t, store.PanelState{Open: true, Tab: store.PanelTabInfo}, f.ui.Panel())

	// Selections with a stable id re-enter the history like live results.
	recent := f.search.RecentSearches()
	require.Len(t, recent, 1)
	assert.Equal(t, "abc123", recent[0].PlaceID)
}

func TestSearch_Dictate(t *testing.T) {
	t.Run("transcript becomes the query", func(t *testing.T) {
		f, sc := newSearchFixture(t, services.SpeechRecognizerFunc(func(context.Context) (string, error) {
			return "banh mi", nil
		}))

		sc.Dictate(context.Background())

		assert.Equal(t, "banh mi", f.search.SearchText())
	})

	t.Run("unsupported capability becomes a toast", func(t *testing.T) {
		f, sc := newSearchFixture(t, nil)

		sc.Dictate(context.Background())

		assert.Equal(t, models.ToastWarning, lastToast(t, f.ui).Type)
		assert.Empty(t, f.search.SearchText())
	})
}

func TestSearch_InFlightFlagTracksDerivation(t *testing.T) {
	f, sc := newSearchFixture(t, nil)
	seedHistory(f.search)

	sc.SetQuery("cafe")
	assert.True(t, f.search.IsSearching())

	assert.Eventually(t, func() bool {
		return !f.search.IsSearching()
	}, time.Second, 5*time.Millisecond)
	require.Len(t, f.search.Suggestions(), 1)
	assert.Empty(t, f.search.LastError())

	sc.ClearQuery()
	assert.False(t, f.search.IsSearching())
}

func TestSearch_DictateFailureRecordsLastError(t *testing.T) {
	f, sc := newSearchFixture(t, nil)

	sc.Dictate(context.Background())

	assert.Equal(t, services.ErrSpeechUnsupported.Error(), f.search.LastError())
	assert.False(t, f.search.IsSearching())
}
