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

func TestLocationService_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "an", r.URL.Query().Get("user"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.SavedLocation{
			{ID: "1", Owner: "an", Place: models.Place{PlaceID: "abc", Name: "Cafe X"}},
			{ID: "2", Owner: "an", Place: models.Place{PlaceID: "def", Name: "Pho 24"}},
		})
	}))
	defer server.Close()

	svc := services.NewLocationService(server.URL, server.Client(), logger.NewNop())

	locations, err := svc.List(context.Background(), "an")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Cafe X", locations[0].Name)
	assert.Equal(t, "an", locations[0].Owner)
}

func TestLocationService_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var received models.SavedLocation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "an", received.Owner)
		assert.Equal(t, "Cafe X", received.Name)

		received.ID = "srv-1"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	svc := services.NewLocationService(server.URL, server.Client(), logger.NewNop())

	created, err := svc.Create(context.Background(), models.SavedLocation{
		Owner: "an",
		Place: models.Place{PlaceID: "abc", Name: "Cafe X", Lat: 10.77, Lng: 106.70},
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)
	assert.Equal(t, "Cafe X", created.Name)
}

func TestLocationService_CreateFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database unavailable"}`))
	}))
	defer server.Close()

	svc := services.NewLocationService(server.URL, server.Client(), logger.NewNop())

	_, err := svc.Create(context.Background(), models.SavedLocation{Owner: "an"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestLocationService_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/loc-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := services.NewLocationService(server.URL, server.Client(), logger.NewNop())

	assert.NoError(t, svc.Delete(context.Background(), "loc-1"))
}

func TestLocationService_DeleteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := services.NewLocationService(server.URL, server.Client(), logger.NewNop())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLocationService_CreateRejectsBadCoordinatesLocally(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	svc := services.NewLocationService(server.URL, server.Client(), logger.NewNop())

	_, err := svc.Create(context.Background(), models.SavedLocation{
		Owner: "ann",
		Place: models.Place{PlaceID: "abc", Name: "Cafe X", Lat: 95, Lng: 200},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Latitude")
	assert.Zero(t, requests, "invalid payloads must not reach the locations service")
}
