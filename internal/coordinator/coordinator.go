package coordinator

import (
	"context"
	"time"

	"mapmate/internal/models"
	"mapmate/internal/place"
	"mapmate/internal/services"
	"mapmate/internal/store"
	"mapmate/pkg/logger"
)

const (
	// placeZoom is the close-up level applied when a place is selected;
	// userLocationZoom when the user's own position is resolved.
	placeZoom        = 16
	userLocationZoom = 15

	// defaultRetryDelay is how long directions-from-user-location waits
	// for geolocation before its single retry.
	defaultRetryDelay = time.Second
)

const (
	msgInvalidPlace        = "Could not use this place: it has no valid coordinates"
	msgMissingEndpoints    = "Please choose both a starting point and a destination"
	msgDirectionsFailed    = "Could not find a route. Please try a different place."
	msgLocationFound       = "Your location was found"
	msgLocationUnavailable = "Could not determine your location. Check access permissions."
	msgLocationRetryFailed = "Could not determine your location. Pick a starting point manually."
	msgLoginToSave         = "You need to log in to save places"
	msgNothingToSave       = "Select a place before saving it"
	msgPlaceSaved          = "Place saved"
	msgSaveFailed          = "Could not save this place"
	msgPlaceDeleted        = "Place removed"
	msgDeleteFailed        = "Could not remove this place"
	msgFetchSavedFailed    = "Could not load your saved places"
)

// Session exposes the authenticated user, when there is one.
type Session interface {
	CurrentUser() (models.User, bool)
}

// Coordinator sequences cross-store updates and external calls for each
// user action. It is the only writer of the stores; no error escapes an
// action — failures become toasts and the stores keep their prior state.
type Coordinator struct {
	location  *store.LocationStore
	search    *store.SearchStore
	ui        *store.UIStore
	session   Session
	locations services.LocationService
	routes    services.RouteService
	geo       services.Geolocator
	logger    *logger.Logger

	retryDelay time.Duration
}

type Option func(*Coordinator)

// WithRetryDelay overrides the geolocation retry delay; tests shorten it.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.retryDelay = d }
}

func New(
	location *store.LocationStore,
	search *store.SearchStore,
	ui *store.UIStore,
	session Session,
	locations services.LocationService,
	routes services.RouteService,
	geo services.Geolocator,
	log *logger.Logger,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		location:   location,
		search:     search,
		ui:         ui,
		session:    session,
		locations:  locations,
		routes:     routes,
		geo:        geo,
		logger:     log,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectPlace normalizes the raw payload and, on success, applies the
// whole selection as one synchronous sequence: selected place, viewport,
// history, stale-directions reset, panel. A failed normalization emits an
// error toast and leaves every store untouched.
func (c *Coordinator) SelectPlace(raw place.PlaceLike) {
	p, err := place.Normalize(raw)
	if err != nil {
		c.logger.WithError(err).Warn("Rejected place selection")
		c.ui.AddToast(models.ToastError, msgInvalidPlace)
		return
	}

	c.location.SetSelectedPlace(p)
	c.location.SetCenter(p.Location())
	c.location.SetZoom(placeZoom)

	// Only places with an externally assigned id enter the history;
	// locally constructed ones would pollute it with throwaway entries.
	if place.HasStableID(raw) {
		c.search.AddRecentSearch(p)
	}

	c.location.ClearDirections()
	c.ui.OpenPanel(store.PanelTabInfo)

	c.logger.WithPlaceID(p.PlaceID).LogUserAction("", "select_place", map[string]interface{}{
		"name": p.Name,
	})
}

// Endpoint is one directions endpoint, in either of the shapes callers
// hold: a widget geometry object or a plain coordinate pair.
type Endpoint struct {
	Geometry *place.Geometry
	Point    *models.LatLng
}

func EndpointFromLatLng(p models.LatLng) Endpoint {
	return Endpoint{Point: &p}
}

func EndpointFromPlace(p models.Place) Endpoint {
	loc := p.Location()
	return Endpoint{Point: &loc}
}

func (e Endpoint) resolve() (models.LatLng, bool) {
	if e.Geometry != nil && e.Geometry.Location != nil {
		return models.LatLng{Lat: e.Geometry.Location.Lat(), Lng: e.Geometry.Location.Lng()}, true
	}
	if e.Point != nil {
		return *e.Point, true
	}
	return models.LatLng{}, false
}

// RequestDirections fetches a route between two endpoints. A missing
// endpoint is a user mistake, surfaced as a warning; a service failure
// leaves whatever directions were already displayed untouched.
func (c *Coordinator) RequestDirections(ctx context.Context, origin, destination Endpoint, mode models.TravelMode) {
	from, okFrom := origin.resolve()
	to, okTo := destination.resolve()
	if !okFrom || !okTo {
		c.ui.AddToast(models.ToastWarning, msgMissingEndpoints)
		return
	}

	result, err := c.routes.GetDirections(ctx, from, to, mode)
	if err != nil {
		c.logger.WithError(err).Error("Directions request failed")
		c.ui.AddToast(models.ToastError, msgDirectionsFailed)
		return
	}

	c.location.SetDirections(result)
	c.ui.OpenPanel(store.PanelTabDirections)
}

// RequestDirectionsFromUserLocation routes from the user's position. When
// that position is unknown it triggers one geolocation resolution, waits
// the fixed delay, and retries exactly once before giving up with a
// warning.
func (c *Coordinator) RequestDirectionsFromUserLocation(ctx context.Context, destination Endpoint, mode models.TravelMode) {
	if from, ok := c.location.UserLocation(); ok {
		c.RequestDirections(ctx, EndpointFromLatLng(from), destination, mode)
		return
	}

	c.ResolveUserLocation(ctx)

	select {
	case <-ctx.Done():
		return
	case <-time.After(c.retryDelay):
	}

	if from, ok := c.location.UserLocation(); ok {
		c.RequestDirections(ctx, EndpointFromLatLng(from), destination, mode)
		return
	}

	c.ui.AddToast(models.ToastWarning, msgLocationRetryFailed)
}

// SaveSelectedPlace persists the current selection under the signed-in
// user. Without a selection or a session it is a warned no-op: the
// locations service is never called and the list never changes.
func (c *Coordinator) SaveSelectedPlace(ctx context.Context) {
	user, authenticated := c.session.CurrentUser()
	if !authenticated {
		c.ui.AddToast(models.ToastWarning, msgLoginToSave)
		return
	}

	selected, ok := c.location.SelectedPlace()
	if !ok {
		c.ui.AddToast(models.ToastWarning, msgNothingToSave)
		return
	}

	// Place carries only resolved photo URLs, so the payload is already
	// persistable as-is.
	created, err := c.locations.Create(ctx, models.SavedLocation{
		Owner: user.Username,
		Place: selected,
	})
	if err != nil {
		c.logger.WithError(err).Error("Failed to save location")
		c.ui.AddToast(models.ToastError, msgSaveFailed)
		return
	}

	c.location.AddSavedLocation(created)
	c.ui.AddToast(models.ToastSuccess, msgPlaceSaved)
	c.logger.WithUsername(user.Username).WithPlaceID(selected.PlaceID).Info("Location saved")
}

// DeleteSavedLocation removes a persisted favorite by its service id.
// Unauthenticated calls are silent no-ops.
func (c *Coordinator) DeleteSavedLocation(ctx context.Context, id string) {
	user, authenticated := c.session.CurrentUser()
	if !authenticated {
		return
	}

	if err := c.locations.Delete(ctx, id); err != nil {
		c.logger.WithError(err).Error("Failed to delete location")
		c.ui.AddToast(models.ToastError, msgDeleteFailed)
		return
	}

	c.location.RemoveSavedLocation(id)
	c.ui.AddToast(models.ToastSuccess, msgPlaceDeleted)
	c.logger.WithUsername(user.Username).WithField("location_id", id).Info("Location deleted")
}

// ResolveUserLocation asks the geolocation capability for the current
// position. Denial and absence of the capability are the same failure.
func (c *Coordinator) ResolveUserLocation(ctx context.Context) {
	loc, err := c.geo.Locate(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Geolocation failed")
		c.ui.AddToast(models.ToastError, msgLocationUnavailable)
		return
	}

	c.location.SetUserLocation(loc)
	c.location.SetCenter(loc)
	c.location.SetZoom(userLocationZoom)
	c.ui.AddToast(models.ToastSuccess, msgLocationFound)
}

// FetchSavedLocations refreshes the full favorites list. Always a
// wholesale replace; a late response overwrites with whatever it fetched.
func (c *Coordinator) FetchSavedLocations(ctx context.Context) {
	user, authenticated := c.session.CurrentUser()
	if !authenticated {
		return
	}

	locations, err := c.locations.List(ctx, user.Username)
	if err != nil {
		c.logger.WithError(err).Error("Failed to fetch saved locations")
		c.ui.AddToast(models.ToastError, msgFetchSavedFailed)
		return
	}

	c.location.ReplaceSavedLocations(locations)
}

func (c *Coordinator) ClearDirections() {
	c.location.ClearDirections()
}
