package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

func TestLoginParsesProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "asha@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":{"id":"user-1","fullname":"Asha Rao","role":"customer"}}`))
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, 5*time.Second)
	profile, err := gw.Login(context.Background(), &models.LoginRequest{Email: "asha@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, models.RoleCustomer, profile.Role)
}

func TestLoginRejectedByBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"error","message":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, 5*time.Second)
	profile, err := gw.Login(context.Background(), &models.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.Error(t, err)
	assert.Nil(t, profile)
}

func TestBookNowSendsWireFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customer/book-now", r.URL.Path)

		var req models.BookNowRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "01-03-2025", req.BookingDate)
		assert.Equal(t, "10:00", req.BookingTime)
		assert.Equal(t, "sc-1", req.ServiceCentreID)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":{"booking_id":"BK-1001"}}`))
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, 5*time.Second)
	bookingID, err := gw.BookNow(context.Background(), &models.BookNowRequest{
		ServiceCentreID: "sc-1",
		BookingDate:     "01-03-2025",
		BookingTime:     "10:00",
		VehicleNo:       "KA01AB1234",
		ServiceID:       "basic",
	})
	require.NoError(t, err)
	assert.Equal(t, "BK-1001", bookingID)
}

func TestBookNowMissingBookingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":{}}`))
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, 5*time.Second)
	_, err := gw.BookNow(context.Background(), &models.BookNowRequest{ServiceCentreID: "sc-1"})
	assert.Error(t, err)
}

func TestGetBookingList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customer/bookings", r.URL.Path)
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":[{"booking_id":"BK-1","user_id":"user-1"},{"booking_id":"BK-2","user_id":"user-1"}]}`))
	}))
	defer server.Close()

	gw := NewHTTPGateway(server.URL, 5*time.Second)
	records, err := gw.GetBookingList(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "BK-2", records[1].BookingID)
}
