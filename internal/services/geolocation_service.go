package services

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"mapmate/internal/models"
)

// ErrGeolocationUnavailable covers both "capability unsupported" and
// "permission denied" — the coordinator treats them identically.
var ErrGeolocationUnavailable = errors.New("geolocation unavailable")

// Geolocator is the single-shot location capability. One call, one result
// or error; no subscription semantics.
type Geolocator interface {
	Locate(ctx context.Context) (models.LatLng, error)
}

// GeolocatorFunc adapts a plain function to Geolocator.
type GeolocatorFunc func(ctx context.Context) (models.LatLng, error)

func (f GeolocatorFunc) Locate(ctx context.Context) (models.LatLng, error) { return f(ctx) }

// UnsupportedGeolocator is the capability stub for platforms without any
// location source.
type UnsupportedGeolocator struct{}

func (UnsupportedGeolocator) Locate(context.Context) (models.LatLng, error) {
	return models.LatLng{}, ErrGeolocationUnavailable
}

// GoogleGeolocator resolves the device position through the Google
// Geolocation API (cell/wifi based, no GPS needed).
type GoogleGeolocator struct {
	client *maps.Client
}

func NewGoogleGeolocator(apiKey string) (*GoogleGeolocator, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create geolocation client: %w", err)
	}
	return &GoogleGeolocator{client: client}, nil
}

func (g *GoogleGeolocator) Locate(ctx context.Context) (models.LatLng, error) {
	resp, err := g.client.Geolocate(ctx, &maps.GeolocationRequest{ConsiderIP: true})
	if err != nil {
		return models.LatLng{}, fmt.Errorf("%w: %v", ErrGeolocationUnavailable, err)
	}
	return models.LatLng{Lat: resp.Location.Lat, Lng: resp.Location.Lng}, nil
}
