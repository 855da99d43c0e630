package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/krypton4149/washnow/internal/pkg/constants"
	"github.com/krypton4149/washnow/internal/pkg/models"
)

func (r *FlowRepo) sessionTTL() time.Duration {
	if r.cfg.Session.TTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(r.cfg.Session.TTLMinutes) * time.Minute
}

// SaveSession stores the session in Redis with the configured TTL
func (r *FlowRepo) SaveSession(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.KeySession, session.SessionID)
	if err := r.redisClient.Set(ctx, key, data, r.sessionTTL()); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession returns the stored session, or nil when none exists
func (r *FlowRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constants.KeySession, sessionID)
	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes the stored session
func (r *FlowRepo) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constants.KeySession, sessionID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
