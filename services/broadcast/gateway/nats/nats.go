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

// PublishBroadcastStarted publishes a broadcast started event
func (g *NATSGateway) PublishBroadcastStarted(ctx context.Context, event *models.BroadcastStartedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectBroadcastStarted, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish broadcast started event",
			logger.String("session_id", event.SessionID),
			logger.String("run_id", event.RunID),
			logger.Err(err))
		return fmt.Errorf("failed to publish broadcast started event: %w", err)
	}

	logger.InfoCtx(ctx, "Published broadcast started event",
		logger.String("session_id", event.SessionID),
		logger.String("run_id", event.RunID),
		logger.Int("candidates", event.CandidateCount))
	return nil
}

// PublishCenterAccepted publishes the single acceptance of a broadcast run
func (g *NATSGateway) PublishCenterAccepted(ctx context.Context, event *models.CenterAcceptedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectCenterAccepted, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish center accepted event",
			logger.String("session_id", event.SessionID),
			logger.String("run_id", event.RunID),
			logger.String("center_id", event.Center.ID),
			logger.Err(err))
		return fmt.Errorf("failed to publish center accepted event: %w", err)
	}

	logger.InfoCtx(ctx, "Published center accepted event",
		logger.String("session_id", event.SessionID),
		logger.String("run_id", event.RunID),
		logger.String("center_id", event.Center.ID))
	return nil
}
