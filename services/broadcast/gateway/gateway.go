package gateway

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

// NATS Gateway delegation methods

// PublishBroadcastStarted forwards to the NATS gateway implementation
func (g *BroadcastGW) PublishBroadcastStarted(ctx context.Context, event *models.BroadcastStartedEvent) error {
	return g.natsGateway.PublishBroadcastStarted(ctx, event)
}

// PublishCenterAccepted forwards to the NATS gateway implementation
func (g *BroadcastGW) PublishCenterAccepted(ctx context.Context, event *models.CenterAcceptedEvent) error {
	return g.natsGateway.PublishCenterAccepted(ctx, event)
}

// HTTP Gateway delegation methods

// GetServiceCenters forwards to the HTTP gateway implementation
func (g *BroadcastGW) GetServiceCenters(ctx context.Context) ([]models.ServiceCenter, error) {
	return g.httpGateway.GetServiceCenters(ctx)
}
