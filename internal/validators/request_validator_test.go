package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	errs := ValidateCredentials(&CredentialsRequest{Username: "ann.smith", Password: "hunter22"})
	assert.Empty(t, errs)

	errs = ValidateCredentials(&CredentialsRequest{Username: "ab", Password: "short"})
	require.Len(t, errs, 2)
	assert.Equal(t, "min", errs[0].Tag)

	errs = ValidateCredentials(&CredentialsRequest{Username: "bad user!", Password: "hunter22"})
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Tag)
}

func TestValidateSavedLocation(t *testing.T) {
	valid := &SavedLocationRequest{
		User:    "ann",
		PlaceID: "ChIJ123",
		Name:    "Cafe X",
		Lat:     10.77,
		Lng:     106.70,
	}
	assert.Empty(t, ValidateSavedLocation(valid))

	invalid := &SavedLocationRequest{
		User:    "ann",
		PlaceID: "ChIJ123",
		Name:    "Cafe X",
		Lat:     95,
		Lng:     200,
	}
	errs := ValidateSavedLocation(invalid)
	require.Len(t, errs, 2)
	assert.Equal(t, "latitude_value", errs[0].Tag)
	assert.Equal(t, "longitude_value", errs[1].Tag)
}

func TestValidateDirections(t *testing.T) {
	errs := ValidateDirections(&DirectionsRequest{
		Origin:      "10.77,106.70",
		Destination: "10.80,106.72",
		Mode:        "walking",
	})
	assert.Empty(t, errs)

	errs = ValidateDirections(&DirectionsRequest{
		Origin:      "10.77,106.70",
		Destination: "10.80,106.72",
		Mode:        "teleport",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "travel_mode", errs[0].Tag)
}
