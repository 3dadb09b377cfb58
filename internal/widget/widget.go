// Package widget bridges map-provider results into the shapes the place
// normalizer consumes, so a search hit or detail lookup can be selected
// on the map with one call.
package widget

import (
	"mapmate/internal/models"
	"mapmate/internal/place"
	"mapmate/pkg/maps"
)

// PhotoURLer renders a fetchable URL for a provider photo reference.
// *maps.GoogleMapsProvider satisfies it; providers without photo support
// pass nil and photos are dropped.
type PhotoURLer interface {
	PhotoURL(reference string, maxWidth int) string
}

// FromDetails adapts a place-details result for the normalizer.
func FromDetails(details *maps.PlaceDetails, photos PhotoURLer) place.PlaceLike {
	raw := place.PlaceLike{
		PlaceID: details.PlaceID,
		Name:    details.Name,
		Geometry: &place.Geometry{
			Location: place.FixedCoordinates{Point: latLng(details.Location)},
		},
		FormattedAddress: details.Address,
		PhoneNumber:      details.PhoneNumber,
		Website:          details.Website,
		Rating:           details.Rating,
		UserRatingsTotal: details.UserRatingsTotal,
		Types:            details.Types,
	}

	if details.OpeningHours != nil {
		raw.OpeningHours = &place.OpeningHours{OpenNow: details.OpeningHours.OpenNow}
	}

	if photos != nil {
		for _, photo := range details.Photos {
			reference := photo.PhotoReference
			raw.Photos = append(raw.Photos, place.PhotoResolverFunc(func(maxWidth int) (string, error) {
				return photos.PhotoURL(reference, maxWidth), nil
			}))
		}
	}

	for _, review := range details.Reviews {
		rating := review.Rating
		raw.Reviews = append(raw.Reviews, place.ReviewLike{
			AuthorName:              review.AuthorName,
			Rating:                  &rating,
			Text:                    review.Text,
			RelativeTimeDescription: review.RelativeTimeDescription,
			Time:                    review.Time,
		})
	}

	return raw
}

// FromSearchResult adapts a text-search hit. Search results carry less
// detail than a full lookup, which the normalizer tolerates.
func FromSearchResult(result maps.PlaceResult) place.PlaceLike {
	return place.PlaceLike{
		PlaceID: result.PlaceID,
		Name:    result.Name,
		Geometry: &place.Geometry{
			Location: place.FixedCoordinates{Point: latLng(result.Location)},
		},
		FormattedAddress: result.Address,
		Rating:           result.Rating,
		Types:            result.Types,
	}
}

// FromGeocodeResult adapts a forward or reverse geocoding hit. Geocoding
// features have no display name, so the normalizer falls back to the
// leading address segment.
func FromGeocodeResult(result maps.GeocodeResult) place.PlaceLike {
	return place.PlaceLike{
		PlaceID: result.PlaceID,
		Geometry: &place.Geometry{
			Location: place.FixedCoordinates{Point: latLng(result.Coordinates)},
		},
		FormattedAddress: result.Address,
		Types:            result.Types,
	}
}

func latLng(loc maps.Location) models.LatLng {
	return models.LatLng{Lat: loc.Latitude, Lng: loc.Longitude}
}
