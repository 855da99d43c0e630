package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/krypton4149/washnow/internal/pkg/database"
	"github.com/krypton4149/washnow/internal/pkg/models"
)

// FlowRepo implements the flow repository interface: sessions live in Redis
// with a TTL, completed bookings in Postgres.
type FlowRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewFlowRepo creates a new flow repository
func NewFlowRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *FlowRepo {
	return &FlowRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
