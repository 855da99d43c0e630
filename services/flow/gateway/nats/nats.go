package nats

import (
	"context"
	"fmt"

	"github.com/krypton4149/washnow/internal/pkg/constants"
	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
	natspkg "github.com/krypton4149/washnow/internal/pkg/nats"
)

// NATSGateway handles NATS gateway operations
type NATSGateway struct {
	natsClient *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway instance
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		natsClient: client,
	}
}

// PublishBookingStarted publishes a booking started event
func (g *NATSGateway) PublishBookingStarted(ctx context.Context, event *models.BookingStartedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectBookingStarted, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking started event",
			logger.String("session_id", event.SessionID),
			logger.Err(err))
		return fmt.Errorf("failed to publish booking started event: %w", err)
	}
	return nil
}

// PublishBookingPaid publishes a booking paid event
func (g *NATSGateway) PublishBookingPaid(ctx context.Context, event *models.BookingPaidEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectBookingPaid, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking paid event",
			logger.String("session_id", event.SessionID),
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
		return fmt.Errorf("failed to publish booking paid event: %w", err)
	}

	logger.InfoCtx(ctx, "Published booking paid event",
		logger.String("booking_id", event.BookingID),
		logger.String("flow", string(event.Flow)))
	return nil
}

// PublishUserLogout publishes a logout event. Callers treat this as fire and
// forget; failure is theirs to log, not to retry.
func (g *NATSGateway) PublishUserLogout(ctx context.Context, event *models.LogoutEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectUserLogout, event); err != nil {
		return fmt.Errorf("failed to publish logout event: %w", err)
	}
	return nil
}
