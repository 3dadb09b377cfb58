package maps

import "context"

// WidgetProvider is the place/geometry source the app treats as its map
// widget: text search, detail lookup, and forward/reverse geocoding.
// Rendering stays with the embedding UI; this interface only ever yields
// place-shaped data.
type WidgetProvider interface {
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResponse, error)
	GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error)
	SearchPlaces(ctx context.Context, request *PlaceSearchRequest) (*PlaceSearchResponse, error)
}

type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	PlaceID     string   `json:"place_id"`
	Address     string   `json:"formatted_address"`
	Coordinates Location `json:"geometry"`
	Types       []string `json:"types"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PlaceSearchRequest struct {
	Query    string   `json:"query"`
	Location Location `json:"location,omitempty"`
	Radius   int      `json:"radius,omitempty"`
	Type     string   `json:"type,omitempty"`
}

type PlaceSearchResponse struct {
	Results []PlaceResult `json:"results"`
}

type PlaceResult struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Address  string   `json:"formatted_address"`
	Location Location `json:"geometry"`
	Rating   float64  `json:"rating"`
	Types    []string `json:"types"`
}

type PlaceDetails struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Address          string        `json:"formatted_address"`
	Location         Location      `json:"geometry"`
	PhoneNumber      string        `json:"formatted_phone_number"`
	Website          string        `json:"website"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Types            []string      `json:"types"`
	Photos           []Photo       `json:"photos"`
	OpeningHours     *OpeningHours `json:"opening_hours"`
	Reviews          []PlaceReview `json:"reviews"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

type OpeningHours struct {
	OpenNow *bool `json:"open_now"`
}

type PlaceReview struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	Time                    int64   `json:"time"`
}
