package usecase

import (
	"sync"
	"time"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/services/broadcast"
)

// BroadcastUC implements the broadcast use case interface
type BroadcastUC struct {
	cfg           models.BroadcastConfig
	broadcastRepo broadcast.BroadcastRepo
	broadcastGW   broadcast.BroadcastGW
	clock         clock

	mu   sync.Mutex
	runs map[string]*run // keyed by session ID, one live run per session
}

// NewBroadcastUC creates a new broadcast use case
func NewBroadcastUC(
	cfg models.BroadcastConfig,
	broadcastRepo broadcast.BroadcastRepo,
	broadcastGW broadcast.BroadcastGW,
) *BroadcastUC {
	return &BroadcastUC{
		cfg:           cfg,
		broadcastRepo: broadcastRepo,
		broadcastGW:   broadcastGW,
		clock:         realClock{},
		runs:          make(map[string]*run),
	}
}

func (uc *BroadcastUC) resolveDelay() time.Duration {
	if uc.cfg.ResolveDelaySeconds <= 0 {
		return 7 * time.Second
	}
	return time.Duration(uc.cfg.ResolveDelaySeconds) * time.Second
}
