package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/internal/utils"
	"github.com/krypton4149/washnow/services/flow"
)

// CompletePayment validates the draft, books with the backend and lands on
// the confirmation screen matching where payment was entered from. Input
// errors are caught before the backend call; a backend failure leaves the
// draft and screen untouched.
func (uc *FlowUC) CompletePayment(ctx context.Context, sessionID string, req *models.PaymentRequest) (*models.FlowState, error) {
	uc.mu.Lock()
	state, err := uc.stateLocked(sessionID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	if state.screen != models.ScreenPayment && state.screen != models.ScreenSchedulePayment {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: not on a payment screen", flow.ErrTransitionRefused)
	}

	working := state.booking
	if req.Slot != nil {
		working = working.WithSlotDefaults(*req.Slot)
	}
	entry := state.paymentEntry
	userID := state.userID
	uc.mu.Unlock()

	if working.Center == nil {
		return nil, flow.ErrMissingCenter
	}
	if working.Vehicle == nil || working.Vehicle.PlateNumber == "" {
		return nil, flow.ErrMissingVehicle
	}
	if !utils.ValidatePlate(working.Vehicle.PlateNumber) {
		return nil, fmt.Errorf("%w: %q", flow.ErrInvalidVehicle, working.Vehicle.PlateNumber)
	}
	if req.ServiceID == "" {
		return nil, flow.ErrMissingService
	}

	bookingDate, bookingTime, err := backendSlot(working)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", flow.ErrInvalidSlot, err)
	}

	bookNowReq := &models.BookNowRequest{
		ServiceCentreID: working.Center.ID,
		BookingDate:     bookingDate,
		BookingTime:     bookingTime,
		VehicleNo:       utils.NormalizePlate(working.Vehicle.PlateNumber),
		ServiceID:       req.ServiceID,
		Notes:           req.Notes,
	}
	bookingID, err := uc.flowGW.BookNow(ctx, bookNowReq)
	if err != nil {
		logger.WarnCtx(ctx, "Booking call failed",
			logger.String("session_id", sessionID),
			logger.String("center_id", working.Center.ID),
			logger.Err(err))
		return nil, err
	}

	uc.mu.Lock()
	state, err = uc.stateLocked(sessionID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}

	update := models.BookingContext{BookingID: &bookingID}
	if req.Amount > 0 {
		amount := req.Amount
		update.PaymentAmount = &amount
	}
	state.booking = state.booking.Merge(update)
	if req.Slot != nil {
		state.booking = state.booking.WithSlotDefaults(*req.Slot)
	}

	kind := models.FlowKindInstant
	if entry == models.ScreenSchedulePayment {
		kind = models.FlowKindScheduled
		state.screen = models.ScreenSchedulePaymentConfirmed
	} else {
		state.screen = models.ScreenPaymentConfirmed
	}
	view := state.view()
	uc.mu.Unlock()

	record := &models.BookingRecord{
		ID:          uuid.New(),
		UserID:      userID,
		BookingID:   bookingID,
		CenterID:    working.Center.ID,
		CenterName:  working.Center.Name,
		BookingDate: bookingDate,
		BookingTime: bookingTime,
		VehicleNo:   bookNowReq.VehicleNo,
		Amount:      req.Amount,
		Flow:        kind,
		CreatedAt:   models.Now(),
	}
	if err := uc.flowRepo.SaveBookingRecord(ctx, record); err != nil {
		logger.WarnCtx(ctx, "Failed to save booking record",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}

	event := &models.BookingPaidEvent{
		SessionID: sessionID,
		UserID:    userID,
		BookingID: bookingID,
		Amount:    req.Amount,
		Flow:      kind,
		Timestamp: models.Now(),
	}
	if err := uc.flowGW.PublishBookingPaid(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish booking paid event",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Booking paid",
		logger.String("session_id", sessionID),
		logger.String("booking_id", bookingID),
		logger.String("flow", string(kind)))
	return view, nil
}

// backendSlot converts the draft's slot into the backend wire format:
// DD-MM-YYYY dates and 24-hour HH:MM times. A missing or "now" slot books
// for the current moment.
func backendSlot(booking models.BookingContext) (string, string, error) {
	now := models.Now()

	date := models.FormatBookingDate(now)
	if booking.Date != nil && *booking.Date != "" && *booking.Date != "now" {
		converted, err := models.ISOToBookingDate(*booking.Date)
		if err != nil {
			return "", "", err
		}
		date = converted
	}

	bookingTime := models.FormatBookingTime(now)
	if booking.Time != nil && *booking.Time != "" {
		converted, err := models.To24Hour(*booking.Time)
		if err != nil {
			return "", "", err
		}
		bookingTime = converted
	}

	return date, bookingTime, nil
}

// BookingHistory lists the session's completed bookings. A forced refresh
// goes to the backend and rewrites the local copy; otherwise the local copy
// is served as-is.
func (uc *FlowUC) BookingHistory(ctx context.Context, sessionID string, forceRefresh bool) ([]*models.BookingRecord, error) {
	uc.mu.Lock()
	state, err := uc.stateLocked(sessionID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	if !state.authenticated {
		uc.mu.Unlock()
		return nil, flow.ErrNotAuthenticated
	}
	userID := state.userID
	uc.mu.Unlock()

	if !forceRefresh {
		return uc.flowRepo.ListBookingRecords(ctx, userID)
	}

	records, err := uc.flowGW.GetBookingList(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.flowRepo.ReplaceBookingRecords(ctx, userID, records); err != nil {
		logger.WarnCtx(ctx, "Failed to refresh local booking records",
			logger.String("user_id", userID),
			logger.Err(err))
	}
	return records, nil
}
