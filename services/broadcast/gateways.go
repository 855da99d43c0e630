package broadcast

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/krypton4149/washnow/services/broadcast BroadcastGW

// BroadcastGW represents the broadcast gateway interface
type BroadcastGW interface {
	// GetServiceCenters loads the full center directory from the backend
	GetServiceCenters(ctx context.Context) ([]models.ServiceCenter, error)

	// PublishBroadcastStarted announces a new broadcast run
	PublishBroadcastStarted(ctx context.Context, event *models.BroadcastStartedEvent) error

	// PublishCenterAccepted announces the run's single acceptance
	PublishCenterAccepted(ctx context.Context, event *models.CenterAcceptedEvent) error
}
