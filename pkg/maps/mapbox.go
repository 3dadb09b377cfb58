package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MapboxProvider backs the widget with Mapbox's geocoding API. Mapbox has
// no Places-style detail endpoint, so GetPlaceDetails is synthesized from
// the geocoding feature matching the id.
type MapboxProvider struct {
	accessToken string
	httpClient  *http.Client
	baseURL     string
}

func NewMapboxProvider(accessToken string) *MapboxProvider {
	return &MapboxProvider{
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.mapbox.com",
	}
}

type mapboxGeocodeResponse struct {
	Features []mapboxFeature `json:"features"`
}

type mapboxFeature struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
	PlaceType []string  `json:"place_type"`
}

func (m *MapboxProvider) geocodeQuery(ctx context.Context, query string, params url.Values) (*mapboxGeocodeResponse, error) {
	params.Set("access_token", m.accessToken)

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		m.baseURL, url.PathEscape(query), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var decoded mapboxGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	return &decoded, nil
}

func (f mapboxFeature) location() Location {
	if len(f.Center) < 2 {
		return Location{}
	}
	// Mapbox centers are [longitude, latitude].
	return Location{Latitude: f.Center[1], Longitude: f.Center[0]}
}

func (m *MapboxProvider) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	resp, err := m.geocodeQuery(ctx, address, url.Values{})
	if err != nil {
		return nil, err
	}

	results := make([]GeocodeResult, len(resp.Features))
	for i, feature := range resp.Features {
		results[i] = GeocodeResult{
			PlaceID:     feature.ID,
			Address:     feature.PlaceName,
			Coordinates: feature.location(),
			Types:       feature.PlaceType,
		}
	}

	return &GeocodeResponse{Results: results}, nil
}

func (m *MapboxProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResponse, error) {
	query := fmt.Sprintf("%f,%f", lng, lat)
	resp, err := m.geocodeQuery(ctx, query, url.Values{})
	if err != nil {
		return nil, err
	}

	results := make([]GeocodeResult, len(resp.Features))
	for i, feature := range resp.Features {
		results[i] = GeocodeResult{
			PlaceID:     feature.ID,
			Address:     feature.PlaceName,
			Coordinates: feature.location(),
			Types:       feature.PlaceType,
		}
	}

	return &GeocodeResponse{Results: results}, nil
}

func (m *MapboxProvider) GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	resp, err := m.geocodeQuery(ctx, placeID, url.Values{})
	if err != nil {
		return nil, err
	}

	for _, feature := range resp.Features {
		if feature.ID != placeID {
			continue
		}
		return &PlaceDetails{
			PlaceID:  feature.ID,
			Name:     feature.Text,
			Address:  feature.PlaceName,
			Location: feature.location(),
			Types:    feature.PlaceType,
		}, nil
	}

	return nil, fmt.Errorf("place %s not found", placeID)
}

func (m *MapboxProvider) SearchPlaces(ctx context.Context, request *PlaceSearchRequest) (*PlaceSearchResponse, error) {
	params := url.Values{}
	if request.Location.Latitude != 0 || request.Location.Longitude != 0 {
		params.Set("proximity", fmt.Sprintf("%f,%f", request.Location.Longitude, request.Location.Latitude))
	}
	if request.Type != "" {
		params.Set("types", request.Type)
	}

	resp, err := m.geocodeQuery(ctx, request.Query, params)
	if err != nil {
		return nil, err
	}

	results := make([]PlaceResult, len(resp.Features))
	for i, feature := range resp.Features {
		results[i] = PlaceResult{
			PlaceID:  feature.ID,
			Name:     feature.Text,
			Address:  feature.PlaceName,
			Location: feature.location(),
			Types:    feature.PlaceType,
		}
	}

	return &PlaceSearchResponse{Results: results}, nil
}
