package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmate/internal/models"
	"mapmate/internal/services"
	"mapmate/pkg/logger"
)

func TestRouteService_GetDirections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "10.770000,106.700000", r.URL.Query().Get("origin"))
		assert.Equal(t, "10.800000,106.750000", r.URL.Query().Get("destination"))
		assert.Equal(t, "driving", r.URL.Query().Get("mode"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DirectionsResult{
			Status: "OK",
			Routes: []models.DirectionsRoute{{
				Legs: []models.DirectionsLeg{{
					Distance:     models.TextValue{Text: "6.2 km", Value: 6200},
					Duration:     models.TextValue{Text: "18 mins", Value: 1080},
					StartAddress: "District 1",
					EndAddress:   "District 3",
				}},
			}},
		})
	}))
	defer server.Close()

	svc := services.NewRouteService(server.URL, server.Client(), logger.NewNop())

	result, err := svc.GetDirections(context.Background(),
		models.LatLng{Lat: 10.77, Lng: 106.70},
		models.LatLng{Lat: 10.80, Lng: 106.75},
		models.TravelModeDriving,
	)
	require.NoError(t, err)

	leg, ok := result.Primary()
	require.True(t, ok)
	assert.Equal(t, "6.2 km", leg.Distance.Text)
	assert.Equal(t, "District 1", leg.StartAddress)
}

func TestRouteService_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"no route found"}`))
	}))
	defer server.Close()

	svc := services.NewRouteService(server.URL, server.Client(), logger.NewNop())

	_, err := svc.GetDirections(context.Background(),
		models.LatLng{Lat: 0, Lng: 0},
		models.LatLng{Lat: 1, Lng: 1},
		models.TravelModeWalking,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route found")
}

func TestDirectionsResult_Primary(t *testing.T) {
	var empty models.DirectionsResult
	_, ok := empty.Primary()
	assert.False(t, ok)

	noLegs := models.DirectionsResult{Routes: []models.DirectionsRoute{{}}}
	_, ok = noLegs.Primary()
	assert.False(t, ok)
}
