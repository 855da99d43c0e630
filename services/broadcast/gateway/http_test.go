package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServiceCenters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/customer/service-centres", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": [
				{"id": "sc-1", "name": "Sparkle Auto Spa", "distance_km": 1.2},
				{"id": "sc-2", "name": "QuickShine Car Wash", "distance_km": 2.8}
			]
		}`))
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, 5*time.Second)
	centers, err := gw.GetServiceCenters(context.Background())
	require.NoError(t, err)
	require.Len(t, centers, 2)
	assert.Equal(t, "sc-1", centers[0].ID)
	assert.Equal(t, "QuickShine Car Wash", centers[1].Name)
}

func TestGetServiceCentersBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, 5*time.Second)
	centers, err := gw.GetServiceCenters(context.Background())
	assert.Error(t, err)
	assert.Nil(t, centers)
}
