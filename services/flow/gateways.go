package flow

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/krypton4149/washnow/services/flow FlowGW

// FlowGW represents the flow gateway interface: the backend API plus NATS
// event publishing
type FlowGW interface {
	// Login exchanges credentials for a profile with the backend
	Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, error)

	// Logout tells the backend the user signed out. Best effort.
	Logout(ctx context.Context, userID string) error

	// BookNow creates the booking with the backend and returns its ID
	BookNow(ctx context.Context, req *models.BookNowRequest) (string, error)

	// GetBookingList fetches the user's bookings from the backend
	GetBookingList(ctx context.Context, userID string) ([]*models.BookingRecord, error)

	PublishBookingStarted(ctx context.Context, event *models.BookingStartedEvent) error
	PublishBookingPaid(ctx context.Context, event *models.BookingPaidEvent) error
	PublishUserLogout(ctx context.Context, event *models.LogoutEvent) error
}
