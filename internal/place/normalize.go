package place

import (
	"fmt"
	"math"
	"strings"
	"time"

	"mapmate/internal/models"
)

const (
	// DefaultName is the terminal fallback of the name resolution chain.
	DefaultName = "Selected Location"

	// photoTargetWidth is the width photo resolvers are asked for.
	photoTargetWidth = 400
)

// Normalize turns a heterogeneous place-like input into the canonical
// Place record. It is pure and has no side effects; the only
// nondeterminism is the timestamp-based fallback id generated when the
// source carries no stable id of its own.
//
// Inputs without coordinates in any supported shape fail with
// KindMissingCoordinates rather than defaulting to a fixed city center;
// non-finite coordinates fail with KindInvalidCoordinates. A failed
// normalization must not be stored or displayed.
func Normalize(raw PlaceLike) (models.Place, error) {
	coords, err := resolveCoordinates(raw)
	if err != nil {
		return models.Place{}, err
	}

	address := resolveAddress(raw, coords)

	p := models.Place{
		PlaceID:     resolvePlaceID(raw),
		Name:        resolveName(raw, address),
		Lat:         coords.Lat,
		Lng:         coords.Lng,
		Address:     address,
		Rating:      raw.Rating,
		RatingCount: raw.UserRatingsTotal,
		Types:       append([]string(nil), raw.Types...),
		PhoneNumber: raw.PhoneNumber,
		Website:     raw.Website,
		PhotoURLs:   resolvePhotos(raw),
		OpenNow:     resolveOpenNow(raw),
		Reviews:     resolveReviews(raw),
	}

	return p, nil
}

// HasStableID reports whether the input carried an externally assigned
// place id. Locally constructed places get a generated id and are kept
// out of the recent-search history.
func HasStableID(raw PlaceLike) bool {
	return raw.PlaceID != ""
}

func resolveCoordinates(raw PlaceLike) (models.LatLng, error) {
	var lat, lng float64
	switch {
	case raw.Geometry != nil && raw.Geometry.Location != nil:
		lat = raw.Geometry.Location.Lat()
		lng = raw.Geometry.Location.Lng()
	case raw.Lat != nil && raw.Lng != nil:
		lat = *raw.Lat
		lng = *raw.Lng
	case raw.Latitude != nil && raw.Longitude != nil:
		lat = *raw.Latitude
		lng = *raw.Longitude
	default:
		return models.LatLng{}, newValidationError(KindMissingCoordinates,
			"place %q has no coordinates in any supported shape", raw.Name)
	}

	if !isFinite(lat) || !isFinite(lng) {
		return models.LatLng{}, newValidationError(KindInvalidCoordinates,
			"place %q has non-finite coordinates (%v, %v)", raw.Name, lat, lng)
	}

	return models.LatLng{Lat: lat, Lng: lng}, nil
}

func resolvePlaceID(raw PlaceLike) string {
	if raw.PlaceID != "" {
		return raw.PlaceID
	}
	return fmt.Sprintf("custom-%d", time.Now().UnixMilli())
}

func resolveAddress(raw PlaceLike, coords models.LatLng) string {
	if raw.FormattedAddress != "" {
		return raw.FormattedAddress
	}
	if raw.Address != "" {
		return raw.Address
	}
	if raw.Vicinity != "" {
		return raw.Vicinity
	}
	return coords.String()
}

func resolveName(raw PlaceLike, address string) string {
	if raw.Name != "" {
		return raw.Name
	}
	if raw.Title != "" {
		return raw.Title
	}
	if segment := strings.TrimSpace(strings.SplitN(address, ",", 2)[0]); segment != "" {
		return segment
	}
	return DefaultName
}

// resolvePhotos collects pre-resolved URLs first, then invokes each photo
// resolver at the fixed target width. A resolver that errors, panics, or
// returns an empty URL drops that photo only; normalization continues.
func resolvePhotos(raw PlaceLike) []string {
	urls := make([]string, 0, len(raw.PhotoURLs)+len(raw.Photos))
	for _, u := range raw.PhotoURLs {
		if u != "" {
			urls = append(urls, u)
		}
	}
	for _, resolver := range raw.Photos {
		if resolver == nil {
			continue
		}
		if u := resolvePhoto(resolver); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return nil
	}
	return urls
}

func resolvePhoto(resolver PhotoResolver) (url string) {
	defer func() {
		if recover() != nil {
			url = ""
		}
	}()
	u, err := resolver.ResolveURL(photoTargetWidth)
	if err != nil {
		return ""
	}
	return u
}

func resolveOpenNow(raw PlaceLike) models.OpenStatus {
	if raw.OpenNow != nil {
		return models.OpenStatusFromBool(*raw.OpenNow)
	}
	if raw.IsOpen != nil {
		return models.OpenStatusFromBool(raw.IsOpen())
	}
	if raw.OpeningHours != nil && raw.OpeningHours.OpenNow != nil {
		return models.OpenStatusFromBool(*raw.OpeningHours.OpenNow)
	}
	return models.OpenStatusUnknown
}

func resolveReviews(raw PlaceLike) []models.Review {
	if len(raw.Reviews) == 0 {
		return nil
	}
	reviews := make([]models.Review, len(raw.Reviews))
	for i, r := range raw.Reviews {
		review := models.Review{
			Author:       r.AuthorName,
			Text:         r.Text,
			RelativeTime: r.RelativeTimeDescription,
			Time:         r.Time,
		}
		if r.AuthorName == "" {
			review.Author = "Anonymous"
		}
		if r.Rating != nil {
			review.Rating = *r.Rating
		}
		reviews[i] = review
	}
	return reviews
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
