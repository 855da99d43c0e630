package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

// SaveBookingRecord appends one completed booking to the history table
func (r *FlowRepo) SaveBookingRecord(ctx context.Context, record *models.BookingRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO bookings (id, user_id, booking_id, center_id, center_name,
			booking_date, booking_time, vehicle_no, amount, flow, created_at
		) VALUES (:id, :user_id, :booking_id, :center_id, :center_name,
			:booking_date, :booking_time, :vehicle_no, :amount, :flow, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to insert booking record: %w", err)
	}
	return nil
}

// ListBookingRecords returns the user's bookings, newest first
func (r *FlowRepo) ListBookingRecords(ctx context.Context, userID string) ([]*models.BookingRecord, error) {
	query := `
		SELECT id, user_id, booking_id, center_id, center_name,
			booking_date, booking_time, vehicle_no, amount, flow, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	records := []*models.BookingRecord{}
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list booking records: %w", err)
	}
	return records, nil
}

// ReplaceBookingRecords swaps the user's local history for the backend's
// copy in one transaction
func (r *FlowRepo) ReplaceBookingRecords(ctx context.Context, userID string, records []*models.BookingRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear booking records: %w", err)
	}

	query := `
		INSERT INTO bookings (id, user_id, booking_id, center_id, center_name,
			booking_date, booking_time, vehicle_no, amount, flow, created_at
		) VALUES (:id, :user_id, :booking_id, :center_id, :center_name,
			:booking_date, :booking_time, :vehicle_no, :amount, :flow, :created_at)
	`
	for _, record := range records {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		if record.UserID == "" {
			record.UserID = userID
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = models.Now()
		}
		if _, err := tx.NamedExecContext(ctx, query, record); err != nil {
			return fmt.Errorf("failed to insert booking record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking records: %w", err)
	}
	return nil
}
