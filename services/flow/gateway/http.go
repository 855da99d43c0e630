package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/krypton4149/washnow/internal/pkg/http"
	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
)

// HTTPGateway wraps the backend API client for auth and booking operations
type HTTPGateway struct {
	backendClient *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway for the backend API
func NewHTTPGateway(backendURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		backendClient: httpclient.NewClient(backendURL, timeout),
	}
}

type loginResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    *models.UserProfile `json:"data"`
}

// Login exchanges credentials for a profile with the backend
func (gw *HTTPGateway) Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, error) {
	var response loginResponse
	if err := gw.backendClient.PostJSON(ctx, "/api/auth/login", req, &response); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if response.Data == nil {
		return nil, errors.New("login failed: backend returned no profile")
	}
	return response.Data, nil
}

// Logout tells the backend the user signed out
func (gw *HTTPGateway) Logout(ctx context.Context, userID string) error {
	body := map[string]string{"user_id": userID}
	var response map[string]interface{}
	if err := gw.backendClient.PostJSON(ctx, "/api/auth/logout", body, &response); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

type bookNowResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    struct {
		BookingID string `json:"booking_id"`
	} `json:"data"`
}

// BookNow creates the booking with the backend and returns its ID. The
// request is already in wire format: DD-MM-YYYY dates, 24-hour times and a
// resolved center ID.
func (gw *HTTPGateway) BookNow(ctx context.Context, req *models.BookNowRequest) (string, error) {
	var response bookNowResponse
	if err := gw.backendClient.PostJSON(ctx, "/api/customer/book-now", req, &response); err != nil {
		return "", fmt.Errorf("booking failed: %w", err)
	}
	if response.Data.BookingID == "" {
		return "", errors.New("booking failed: backend returned no booking id")
	}

	logger.InfoCtx(ctx, "Booking created with backend",
		logger.String("booking_id", response.Data.BookingID),
		logger.String("center_id", req.ServiceCentreID))
	return response.Data.BookingID, nil
}

type bookingListResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message,omitempty"`
	Data    []*models.BookingRecord `json:"data"`
}

// GetBookingList fetches the user's bookings from the backend
func (gw *HTTPGateway) GetBookingList(ctx context.Context, userID string) ([]*models.BookingRecord, error) {
	path := fmt.Sprintf("/api/customer/bookings?user_id=%s", url.QueryEscape(userID))

	var response bookingListResponse
	if err := gw.backendClient.GetJSON(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("failed to load booking list: %w", err)
	}
	return response.Data, nil
}
