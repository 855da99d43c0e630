package gateway

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

// HTTP Gateway delegation methods

// Login forwards to the HTTP gateway implementation
func (g *FlowGW) Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, error) {
	return g.httpGateway.Login(ctx, req)
}

// Logout forwards to the HTTP gateway implementation
func (g *FlowGW) Logout(ctx context.Context, userID string) error {
	return g.httpGateway.Logout(ctx, userID)
}

// BookNow forwards to the HTTP gateway implementation
func (g *FlowGW) BookNow(ctx context.Context, req *models.BookNowRequest) (string, error) {
	return g.httpGateway.BookNow(ctx, req)
}

// GetBookingList forwards to the HTTP gateway implementation
func (g *FlowGW) GetBookingList(ctx context.Context, userID string) ([]*models.BookingRecord, error) {
	return g.httpGateway.GetBookingList(ctx, userID)
}

// NATS Gateway delegation methods

// PublishBookingStarted forwards to the NATS gateway implementation
func (g *FlowGW) PublishBookingStarted(ctx context.Context, event *models.BookingStartedEvent) error {
	return g.natsGateway.PublishBookingStarted(ctx, event)
}

// PublishBookingPaid forwards to the NATS gateway implementation
func (g *FlowGW) PublishBookingPaid(ctx context.Context, event *models.BookingPaidEvent) error {
	return g.natsGateway.PublishBookingPaid(ctx, event)
}

// PublishUserLogout forwards to the NATS gateway implementation
func (g *FlowGW) PublishUserLogout(ctx context.Context, event *models.LogoutEvent) error {
	return g.natsGateway.PublishUserLogout(ctx, event)
}
