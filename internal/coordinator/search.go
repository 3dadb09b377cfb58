package coordinator

import (
	"context"
	"strings"
	"sync"
	"time"

	"mapmate/internal/models"
	"mapmate/internal/place"
	"mapmate/internal/services"
	"mapmate/internal/store"
	"mapmate/pkg/logger"
)

// defaultDebounceInterval is how long input must pause before suggestions
// are recomputed.
const defaultDebounceInterval = 300 * time.Millisecond

const msgSpeechUnavailable = "Voice search is not supported here"

// SearchCoordinator debounces query input into a suggestion list derived
// from the recent-search history, and funnels every selection — typed
// suggestion, live autocomplete result, or voice transcript — through the
// one SelectPlace path.
type SearchCoordinator struct {
	search   *store.SearchStore
	actions  *Coordinator
	speech   services.SpeechRecognizer
	logger   *logger.Logger
	debounce time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

type SearchOption func(*SearchCoordinator)

// WithDebounceInterval overrides the debounce delay; tests shorten it.
func WithDebounceInterval(d time.Duration) SearchOption {
	return func(s *SearchCoordinator) { s.debounce = d }
}

func NewSearchCoordinator(
	search *store.SearchStore,
	actions *Coordinator,
	speech services.SpeechRecognizer,
	log *logger.Logger,
	opts ...SearchOption,
) *SearchCoordinator {
	s := &SearchCoordinator{
		search:   search,
		actions:  actions,
		speech:   speech,
		logger:   log,
		debounce: defaultDebounceInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetQuery records the raw text and schedules suggestion derivation after
// the debounce interval. A newer query cancels the pending timer, so only
// the final pause produces suggestions.
func (s *SearchCoordinator) SetQuery(text string) {
	s.search.SetSearchText(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.closed {
		return
	}

	if strings.TrimSpace(text) == "" {
		s.search.SetSuggestions(nil)
		s.search.SetIsSearching(false)
		return
	}

	s.search.SetIsSearching(true)
	s.timer = time.AfterFunc(s.debounce, func() {
		s.deriveSuggestions(text)
	})
}

func (s *SearchCoordinator) deriveSuggestions(query string) {
	s.mu.Lock()
	if s.closed || s.search.SearchText() != query {
		// The query moved on while the timer was pending; the newer
		// SetQuery owns the in-flight flag now.
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	needle := strings.ToLower(query)
	var suggestions []models.Place
	for _, recent := range s.search.RecentSearches() {
		if strings.Contains(strings.ToLower(recent.Name), needle) {
			suggestions = append(suggestions, recent)
		}
	}
	s.search.SetSuggestions(suggestions)
	s.search.SetLastError("")
	s.search.SetIsSearching(false)
}

// ClearQuery resets the text and suggestion list and cancels any pending
// derivation.
func (s *SearchCoordinator) ClearQuery() {
	s.SetQuery("")
}

// SelectSuggestion routes a history suggestion through the same
// normalization path live results take.
func (s *SearchCoordinator) SelectSuggestion(p models.Place) {
	lat, lng := p.Lat, p.Lng
	s.SelectResult(place.PlaceLike{
		PlaceID:          p.PlaceID,
		Name:             p.Name,
		Lat:              &lat,
		Lng:              &lng,
		FormattedAddress: p.Address,
		Rating:           p.Rating,
		UserRatingsTotal: p.RatingCount,
		Types:            p.Types,
		PhoneNumber:      p.PhoneNumber,
		Website:          p.Website,
		PhotoURLs:        p.PhotoURLs,
	})
}

// SelectResult hands a raw place-like payload to the map coordinator.
func (s *SearchCoordinator) SelectResult(raw place.PlaceLike) {
	s.actions.SelectPlace(raw)
}

// Dictate captures a single utterance and uses it as the query text.
// An unsupported or failed capability becomes a toast, never an error.
func (s *SearchCoordinator) Dictate(ctx context.Context) {
	transcript, err := s.speech.Recognize(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Speech recognition failed")
		s.search.SetLastError(err.Error())
		s.actions.ui.AddToast(models.ToastWarning, msgSpeechUnavailable)
		return
	}
	s.SetQuery(transcript)
}

// Close cancels any pending debounce timer. A timer that already fired
// will see the closed flag and leave the stores alone.
func (s *SearchCoordinator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.search.SetIsSearching(false)
}
