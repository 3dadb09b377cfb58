// Package app composes the client from configuration: stores seeded with
// the configured defaults, service clients pointed at the gateway origin,
// the map-widget provider, and the coordinators that drive them all.
package app

import (
	"fmt"
	"net/http"

	"mapmate/internal/config"
	"mapmate/internal/coordinator"
	"mapmate/internal/models"
	"mapmate/internal/services"
	"mapmate/internal/session"
	"mapmate/internal/store"
	"mapmate/pkg/logger"
	"mapmate/pkg/maps"
)

type App struct {
	Location *store.LocationStore
	Search   *store.SearchStore
	UI       *store.UIStore

	Auth      services.AuthService
	Locations services.LocationService
	Routes    services.RouteService

	// Widget is nil when no map provider credentials are configured;
	// selection and directions still work from history and saved data.
	Widget maps.WidgetProvider

	Actions  *coordinator.Coordinator
	Searcher *coordinator.SearchCoordinator
}

func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	tokens, err := session.NewTokenStore(cfg.App.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.Services.Timeout}
	base := cfg.App.BaseURL

	auth := services.NewAuthService(base+"/api/auth", httpClient, tokens, log)
	locations := services.NewLocationService(base+"/locations", httpClient, log)
	routes := services.NewRouteService(base+"/directions", httpClient, log)

	widget, geo, err := buildMapProvider(cfg.Maps)
	if err != nil {
		return nil, err
	}

	locationStore := store.NewLocationStore(
		models.LatLng{Lat: cfg.UI.DefaultCenterLat, Lng: cfg.UI.DefaultCenterLng},
		cfg.UI.DefaultZoom,
	)
	searchStore := store.NewSearchStore()
	uiStore := store.NewUIStore(cfg.UI.ToastTTL)

	actions := coordinator.New(
		locationStore, searchStore, uiStore,
		auth, locations, routes, geo, log,
		coordinator.WithRetryDelay(cfg.UI.DirectionsRetry),
	)
	searcher := coordinator.NewSearchCoordinator(
		searchStore, actions, services.UnsupportedSpeechRecognizer{}, log,
		coordinator.WithDebounceInterval(cfg.UI.SearchDebounce),
	)

	return &App{
		Location:  locationStore,
		Search:    searchStore,
		UI:        uiStore,
		Auth:      auth,
		Locations: locations,
		Routes:    routes,
		Widget:    widget,
		Actions:   actions,
		Searcher:  searcher,
	}, nil
}

func buildMapProvider(cfg *config.MapsConfig) (maps.WidgetProvider, services.Geolocator, error) {
	switch cfg.Provider {
	case "google":
		if cfg.GoogleMaps.APIKey == "" {
			return nil, services.UnsupportedGeolocator{}, nil
		}
		widget, err := maps.NewGoogleMapsProvider(cfg.GoogleMaps.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build Google Maps provider: %w", err)
		}
		geo, err := services.NewGoogleGeolocator(cfg.GoogleMaps.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build geolocator: %w", err)
		}
		return widget, geo, nil
	case "mapbox":
		if cfg.Mapbox.AccessToken == "" {
			return nil, services.UnsupportedGeolocator{}, nil
		}
		// Mapbox has no geolocation endpoint; position comes from the
		// platform or stays unresolved.
		return maps.NewMapboxProvider(cfg.Mapbox.AccessToken), services.UnsupportedGeolocator{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown maps provider %q", cfg.Provider)
	}
}
