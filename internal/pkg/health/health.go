package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/krypton4149/washnow/internal/pkg/database"
	"github.com/krypton4149/washnow/internal/pkg/nats"
	"github.com/labstack/echo/v4"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// NATSHealthChecker checks NATS connection health
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// CheckHealth checks if NATS is healthy
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil || n.client.GetConn().IsConnected() {
		return nil
	}
	return errors.New("nats connection lost")
}

type healthStatus struct {
	Service string            `json:"service"`
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Time    time.Time         `json:"time"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]HealthChecker) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthStatus{
			Service: serviceName,
			Status:  "ok",
			Time:    time.Now().UTC(),
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		status := healthStatus{
			Service: serviceName,
			Status:  "ok",
			Checks:  make(map[string]string, len(checkers)),
			Time:    time.Now().UTC(),
		}

		code := http.StatusOK
		for name, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				status.Checks[name] = err.Error()
				status.Status = "degraded"
				code = http.StatusServiceUnavailable
			} else {
				status.Checks[name] = "ok"
			}
		}

		return c.JSON(code, status)
	})
}
