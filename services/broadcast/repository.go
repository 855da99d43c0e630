package broadcast

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/krypton4149/washnow/services/broadcast BroadcastRepo

// BroadcastRepo persists broadcast run snapshots so a remounted broadcast
// screen can recover the run it left behind
type BroadcastRepo interface {
	SaveRun(ctx context.Context, run *models.BroadcastRunState) error
	GetRunBySession(ctx context.Context, sessionID string) (*models.BroadcastRunState, error)
	DeleteRun(ctx context.Context, sessionID string) error
}
