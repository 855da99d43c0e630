package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/krypton4149/washnow/internal/pkg/constants"
	"github.com/krypton4149/washnow/internal/pkg/database"
	"github.com/krypton4149/washnow/internal/pkg/models"
)

// BroadcastRepo stores broadcast run snapshots in Redis, keyed both by run
// ID and by session ID so either side can look a run up.
type BroadcastRepo struct {
	cfg         models.BroadcastConfig
	redisClient *database.RedisClient
}

// NewBroadcastRepo creates a new broadcast repository
func NewBroadcastRepo(cfg models.BroadcastConfig, redisClient *database.RedisClient) *BroadcastRepo {
	return &BroadcastRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

func (r *BroadcastRepo) ttl() time.Duration {
	if r.cfg.RunTTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(r.cfg.RunTTLMinutes) * time.Minute
}

// SaveRun persists a run snapshot under both its run key and session key
func (r *BroadcastRepo) SaveRun(ctx context.Context, run *models.BroadcastRunState) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast run: %w", err)
	}

	runKey := fmt.Sprintf(constants.KeyBroadcastRun, run.RunID)
	if err := r.redisClient.Set(ctx, runKey, data, r.ttl()); err != nil {
		return fmt.Errorf("failed to store broadcast run: %w", err)
	}

	sessionKey := fmt.Sprintf(constants.KeyBroadcastRunSession, run.SessionID)
	if err := r.redisClient.Set(ctx, sessionKey, data, r.ttl()); err != nil {
		return fmt.Errorf("failed to store broadcast run session index: %w", err)
	}
	return nil
}

// GetRunBySession returns the session's run snapshot, or nil when none exists
func (r *BroadcastRepo) GetRunBySession(ctx context.Context, sessionID string) (*models.BroadcastRunState, error) {
	key := fmt.Sprintf(constants.KeyBroadcastRunSession, sessionID)
	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load broadcast run: %w", err)
	}

	var run models.BroadcastRunState
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal broadcast run: %w", err)
	}
	return &run, nil
}

// DeleteRun removes the session's run snapshot
func (r *BroadcastRepo) DeleteRun(ctx context.Context, sessionID string) error {
	run, err := r.GetRunBySession(ctx, sessionID)
	if err == nil && run != nil {
		runKey := fmt.Sprintf(constants.KeyBroadcastRun, run.RunID)
		if delErr := r.redisClient.Delete(ctx, runKey); delErr != nil {
			return fmt.Errorf("failed to delete broadcast run: %w", delErr)
		}
	}

	sessionKey := fmt.Sprintf(constants.KeyBroadcastRunSession, sessionID)
	if err := r.redisClient.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to delete broadcast run session index: %w", err)
	}
	return nil
}
