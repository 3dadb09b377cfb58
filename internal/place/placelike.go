package place

import "mapmate/internal/models"

// Coordinates is the accessor-style coordinate source the map widget
// exposes on its geometry objects.
type Coordinates interface {
	Lat() float64
	Lng() float64
}

// CoordinatesFunc adapts a pair of zero-argument accessors.
type CoordinatesFunc struct {
	LatFunc func() float64
	LngFunc func() float64
}

func (c CoordinatesFunc) Lat() float64 { return c.LatFunc() }
func (c CoordinatesFunc) Lng() float64 { return c.LngFunc() }

// FixedCoordinates is a plain-value Coordinates implementation.
type FixedCoordinates struct {
	Point models.LatLng
}

func (c FixedCoordinates) Lat() float64 { return c.Point.Lat }
func (c FixedCoordinates) Lng() float64 { return c.Point.Lng }

// Geometry wraps the widget's geometry object. Location may be nil when
// the source carried a geometry envelope without a usable location.
type Geometry struct {
	Location Coordinates
}

// PhotoResolver resolves a photo reference to a fetchable URL at the
// requested width. Widget photo handles cannot be serialized, so they are
// resolved eagerly during normalization and only URLs travel further.
type PhotoResolver interface {
	ResolveURL(maxWidth int) (string, error)
}

// PhotoResolverFunc adapts a plain function to PhotoResolver.
type PhotoResolverFunc func(maxWidth int) (string, error)

func (f PhotoResolverFunc) ResolveURL(maxWidth int) (string, error) { return f(maxWidth) }

// OpeningHours is the partial opening-hours envelope some sources carry.
type OpeningHours struct {
	OpenNow *bool
}

// ReviewLike is a partially populated review entry.
type ReviewLike struct {
	AuthorName              string
	Rating                  *float64
	Text                    string
	RelativeTimeDescription string
	Time                    int64
}

// PlaceLike is the union of every place-shaped payload the app receives:
// widget place results, geocoder results, and persisted saved-location
// records. Pointer fields distinguish "absent" from zero values.
//
// Coordinates may arrive in three shapes, checked in priority order:
// Geometry.Location accessors, then Lat/Lng, then Latitude/Longitude.
type PlaceLike struct {
	PlaceID string
	Name    string
	Title   string

	Geometry  *Geometry
	Lat       *float64
	Lng       *float64
	Latitude  *float64
	Longitude *float64

	FormattedAddress string
	Address          string
	Vicinity         string

	Rating           float64
	UserRatingsTotal int
	Types            []string
	PhoneNumber      string
	Website          string

	// PhotoURLs holds already-resolved URL strings; Photos holds live
	// resolver handles. Both may be present, URLs first in the output.
	PhotoURLs []string
	Photos    []PhotoResolver

	OpenNow      *bool
	IsOpen       func() bool
	OpeningHours *OpeningHours

	Reviews []ReviewLike
}
