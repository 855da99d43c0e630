package flow

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/krypton4149/washnow/services/flow FlowRepo

// FlowRepo represents the flow repository interface: session state in Redis
// and completed bookings in Postgres
type FlowRepo interface {
	SaveSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SaveBookingRecord(ctx context.Context, record *models.BookingRecord) error
	ListBookingRecords(ctx context.Context, userID string) ([]*models.BookingRecord, error)
	ReplaceBookingRecords(ctx context.Context, userID string, records []*models.BookingRecord) error
}
