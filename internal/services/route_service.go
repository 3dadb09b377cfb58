package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"mapmate/internal/models"
	"mapmate/pkg/logger"
)

// RouteService is the client of the directions microservice. The result
// is treated as opaque beyond routes[0].legs[0].
type RouteService interface {
	GetDirections(ctx context.Context, origin, destination models.LatLng, mode models.TravelMode) (models.DirectionsResult, error)
}

type routeService struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewRouteService(baseURL string, httpClient *http.Client, log *logger.Logger) RouteService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &routeService{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

func (s *routeService) GetDirections(ctx context.Context, origin, destination models.LatLng, mode models.TravelMode) (models.DirectionsResult, error) {
	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	query.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	query.Set("mode", mode.QueryValue())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return models.DirectionsResult{}, fmt.Errorf("failed to create directions request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.DirectionsResult{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.DirectionsResult{}, serviceError(resp, "failed to get directions")
	}

	var result models.DirectionsResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.DirectionsResult{}, fmt.Errorf("failed to decode directions: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"origin":      origin.String(),
		"destination": destination.String(),
		"mode":        string(mode),
	}).Debug("Directions fetched")
	return result, nil
}
