package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"mapmate/internal/models"
	"mapmate/internal/validators"
	"mapmate/pkg/logger"
)

// LocationService is the client of the saved-locations microservice.
type LocationService interface {
	List(ctx context.Context, username string) ([]models.SavedLocation, error)
	Create(ctx context.Context, location models.SavedLocation) (models.SavedLocation, error)
	Delete(ctx context.Context, id string) error
}

type locationService struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewLocationService(baseURL string, httpClient *http.Client, log *logger.Logger) LocationService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &locationService{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

func (s *locationService) List(ctx context.Context, username string) ([]models.SavedLocation, error) {
	endpoint := fmt.Sprintf("%s?user=%s", s.baseURL, url.QueryEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list locations request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp, "failed to list locations")
	}

	var locations []models.SavedLocation
	if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}

	s.logger.WithUsername(username).WithField("count", len(locations)).Debug("Fetched saved locations")
	return locations, nil
}

func (s *locationService) Create(ctx context.Context, location models.SavedLocation) (models.SavedLocation, error) {
	if errs := validators.ValidateSavedLocation(&validators.SavedLocationRequest{
		User:    location.Owner,
		PlaceID: location.PlaceID,
		Name:    location.Name,
		Lat:     location.Lat,
		Lng:     location.Lng,
	}); len(errs) > 0 {
		return models.SavedLocation{}, fmt.Errorf("failed to save location: %w", errs)
	}

	body, err := json.Marshal(location)
	if err != nil {
		return models.SavedLocation{}, fmt.Errorf("failed to encode location: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return models.SavedLocation{}, fmt.Errorf("failed to create save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.SavedLocation{}, fmt.Errorf("save location request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.SavedLocation{}, serviceError(resp, "failed to save location")
	}

	// The service echoes the record, usually with its assigned id. An
	// empty body falls back to what was sent.
	created := location
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		created = location
	}

	s.logger.WithPlaceID(created.PlaceID).Info("Location saved")
	return created, nil
}

func (s *locationService) Delete(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete location request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serviceError(resp, "failed to delete location")
	}

	s.logger.WithField("location_id", id).Info("Location deleted")
	return nil
}
