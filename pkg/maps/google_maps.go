package maps

import (
	"context"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"
)

const placePhotoEndpoint = "https://maps.googleapis.com/maps/api/place/photo"

type GoogleMapsProvider struct {
	client *maps.Client
	apiKey string
}

func NewGoogleMapsProvider(apiKey string) (*GoogleMapsProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleMapsProvider{
		client: client,
		apiKey: apiKey,
	}, nil
}

func (g *GoogleMapsProvider) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	req := &maps.GeocodingRequest{
		Address: address,
	}

	resp, err := g.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}

	results := make([]GeocodeResult, len(resp))
	for i, result := range resp {
		results[i] = GeocodeResult{
			PlaceID: result.PlaceID,
			Address: result.FormattedAddress,
			Coordinates: Location{
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
			},
			Types: result.Types,
		}
	}

	return &GeocodeResponse{Results: results}, nil
}

func (g *GoogleMapsProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResponse, error) {
	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	}

	resp, err := g.client.ReverseGeocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding failed: %w", err)
	}

	results := make([]GeocodeResult, len(resp))
	for i, result := range resp {
		results[i] = GeocodeResult{
			PlaceID: result.PlaceID,
			Address: result.FormattedAddress,
			Coordinates: Location{
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
			},
			Types: result.Types,
		}
	}

	return &GeocodeResponse{Results: results}, nil
}

func (g *GoogleMapsProvider) GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	req := &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskPlaceID,
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskGeometry,
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskWebsite,
			maps.PlaceDetailsFieldMaskUserRatingsTotal,
			maps.PlaceDetailsFieldMaskTypes,
			maps.PlaceDetailsFieldMaskPhotos,
			maps.PlaceDetailsFieldMaskOpeningHours,
			maps.PlaceDetailsFieldMaskReviews,
		},
	}

	resp, err := g.client.PlaceDetails(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}

	details := &PlaceDetails{
		PlaceID: resp.PlaceID,
		Name:    resp.Name,
		Address: resp.FormattedAddress,
		Location: Location{
			Latitude:  resp.Geometry.Location.Lat,
			Longitude: resp.Geometry.Location.Lng,
		},
		PhoneNumber:      resp.FormattedPhoneNumber,
		Website:          resp.Website,
		Rating:           float64(resp.Rating),
		UserRatingsTotal: resp.UserRatingsTotal,
		Types:            resp.Types,
	}

	if len(resp.Photos) > 0 {
		details.Photos = make([]Photo, len(resp.Photos))
		for i, photo := range resp.Photos {
			details.Photos[i] = Photo{
				PhotoReference: photo.PhotoReference,
				Height:         photo.Height,
				Width:          photo.Width,
			}
		}
	}

	if resp.OpeningHours != nil {
		details.OpeningHours = &OpeningHours{
			OpenNow: resp.OpeningHours.OpenNow,
		}
	}

	if len(resp.Reviews) > 0 {
		details.Reviews = make([]PlaceReview, len(resp.Reviews))
		for i, review := range resp.Reviews {
			details.Reviews[i] = PlaceReview{
				AuthorName:              review.AuthorName,
				Rating:                  float64(review.Rating),
				Text:                    review.Text,
				RelativeTimeDescription: review.RelativeTimeDescription,
				Time:                    int64(review.Time),
			}
		}
	}

	return details, nil
}

func (g *GoogleMapsProvider) SearchPlaces(ctx context.Context, request *PlaceSearchRequest) (*PlaceSearchResponse, error) {
	req := &maps.TextSearchRequest{
		Query: request.Query,
	}

	if request.Location.Latitude != 0 && request.Location.Longitude != 0 {
		req.Location = &maps.LatLng{
			Lat: request.Location.Latitude,
			Lng: request.Location.Longitude,
		}
	}

	if request.Radius > 0 {
		req.Radius = uint(request.Radius)
	}

	if request.Type != "" {
		req.Type = maps.PlaceType(request.Type)
	}

	resp, err := g.client.TextSearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place search request failed: %w", err)
	}

	results := make([]PlaceResult, len(resp.Results))
	for i, result := range resp.Results {
		results[i] = PlaceResult{
			PlaceID: result.PlaceID,
			Name:    result.Name,
			Address: result.FormattedAddress,
			Location: Location{
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
			},
			Rating: float64(result.Rating),
			Types:  result.Types,
		}
	}

	return &PlaceSearchResponse{Results: results}, nil
}

// PhotoURL renders the fetchable URL for a photo reference at the given
// width. No API round-trip is needed, only the key.
func (g *GoogleMapsProvider) PhotoURL(reference string, maxWidth int) string {
	query := url.Values{}
	query.Set("maxwidth", fmt.Sprintf("%d", maxWidth))
	query.Set("photo_reference", reference)
	query.Set("key", g.apiKey)
	return placePhotoEndpoint + "?" + query.Encode()
}
