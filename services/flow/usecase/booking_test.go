package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/services/flow"
)

func paymentState(screen, entry models.Screen) *flowState {
	state := customerState(screen)
	state.paymentEntry = entry
	state.booking = models.BookingContext{
		Center:  &models.ServiceCenter{ID: "c1", Name: "Sparkle Auto Spa"},
		Vehicle: &models.Vehicle{PlateNumber: "KA01AB1234"},
	}
	return state
}

func TestCompletePaymentInstantFlow(t *testing.T) {
	uc, repo, gw := newTestFlowUC(t)
	seedSession(uc, "s1", paymentState(models.ScreenPayment, models.ScreenPayment))

	var sent *models.BookNowRequest
	gw.EXPECT().BookNow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.BookNowRequest) (string, error) {
			sent = req
			return "BK-1001", nil
		})

	var saved *models.BookingRecord
	repo.EXPECT().SaveBookingRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.BookingRecord) error {
			saved = record
			return nil
		})
	gw.EXPECT().PublishBookingPaid(gomock.Any(), gomock.Any()).Return(nil)

	req := &models.PaymentRequest{
		Amount:    25,
		ServiceID: "basic",
		Slot:      &models.BookingSlot{Date: "2025-03-01", Time: "14:00"},
	}
	view, err := uc.CompletePayment(context.Background(), "s1", req)
	require.NoError(t, err)

	assert.Equal(t, models.ScreenPaymentConfirmed, view.Screen)
	require.NotNil(t, view.Booking.BookingID)
	assert.Equal(t, "BK-1001", *view.Booking.BookingID)
	assert.Equal(t, 25.0, *view.Booking.PaymentAmount)
	assert.Equal(t, "2025-03-01", *view.Booking.Date)

	require.NotNil(t, sent)
	assert.Equal(t, "c1", sent.ServiceCentreID)
	assert.Equal(t, "01-03-2025", sent.BookingDate)
	assert.Equal(t, "14:00", sent.BookingTime)
	assert.Equal(t, "KA01AB1234", sent.VehicleNo)

	require.NotNil(t, saved)
	assert.Equal(t, models.FlowKindInstant, saved.Flow)
	assert.Equal(t, "user-1", saved.UserID)
}

func TestCompletePaymentScheduledSlotWins(t *testing.T) {
	uc, repo, gw := newTestFlowUC(t)

	state := paymentState(models.ScreenSchedulePayment, models.ScreenSchedulePayment)
	state.booking.Date = strPtr("2025-03-01")
	state.booking.Time = strPtr("10:00 AM")
	seedSession(uc, "s1", state)

	var sent *models.BookNowRequest
	gw.EXPECT().BookNow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.BookNowRequest) (string, error) {
			sent = req
			return "BK-2002", nil
		})

	var saved *models.BookingRecord
	repo.EXPECT().SaveBookingRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.BookingRecord) error {
			saved = record
			return nil
		})
	gw.EXPECT().PublishBookingPaid(gomock.Any(), gomock.Any()).Return(nil)

	// The "pay now" slot must not displace the chosen future slot
	req := &models.PaymentRequest{
		Amount:    30,
		ServiceID: "premium",
		Slot:      &models.BookingSlot{Date: "now", Time: "14:00"},
	}
	view, err := uc.CompletePayment(context.Background(), "s1", req)
	require.NoError(t, err)

	assert.Equal(t, models.ScreenSchedulePaymentConfirmed, view.Screen)
	assert.Equal(t, "2025-03-01", *view.Booking.Date)
	assert.Equal(t, "10:00 AM", *view.Booking.Time)

	require.NotNil(t, sent)
	assert.Equal(t, "01-03-2025", sent.BookingDate)
	assert.Equal(t, "10:00", sent.BookingTime)

	require.NotNil(t, saved)
	assert.Equal(t, models.FlowKindScheduled, saved.Flow)
}

func TestCompletePaymentBackendFailureLeavesStateUntouched(t *testing.T) {
	uc, _, gw := newTestFlowUC(t)
	seedSession(uc, "s1", paymentState(models.ScreenPayment, models.ScreenPayment))

	gw.EXPECT().BookNow(gomock.Any(), gomock.Any()).Return("", errors.New("booking rejected"))

	_, err := uc.CompletePayment(context.Background(), "s1", &models.PaymentRequest{Amount: 25, ServiceID: "basic"})
	require.Error(t, err)

	view, err := uc.State(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.ScreenPayment, view.Screen)
	assert.Nil(t, view.Booking.BookingID)
}

func TestCompletePaymentInputErrors(t *testing.T) {
	uc, _, _ := newTestFlowUC(t)

	noCenter := customerState(models.ScreenPayment)
	noCenter.paymentEntry = models.ScreenPayment
	noCenter.booking = models.BookingContext{Vehicle: &models.Vehicle{PlateNumber: "KA01AB1234"}}
	seedSession(uc, "no-center", noCenter)
	_, err := uc.CompletePayment(context.Background(), "no-center", &models.PaymentRequest{ServiceID: "basic"})
	assert.ErrorIs(t, err, flow.ErrMissingCenter)

	noVehicle := paymentState(models.ScreenPayment, models.ScreenPayment)
	noVehicle.booking.Vehicle = nil
	seedSession(uc, "no-vehicle", noVehicle)
	_, err = uc.CompletePayment(context.Background(), "no-vehicle", &models.PaymentRequest{ServiceID: "basic"})
	assert.ErrorIs(t, err, flow.ErrMissingVehicle)

	badPlate := paymentState(models.ScreenPayment, models.ScreenPayment)
	badPlate.booking.Vehicle = &models.Vehicle{PlateNumber: "!!"}
	seedSession(uc, "bad-plate", badPlate)
	_, err = uc.CompletePayment(context.Background(), "bad-plate", &models.PaymentRequest{ServiceID: "basic"})
	assert.ErrorIs(t, err, flow.ErrInvalidVehicle)

	seedSession(uc, "no-service", paymentState(models.ScreenPayment, models.ScreenPayment))
	_, err = uc.CompletePayment(context.Background(), "no-service", &models.PaymentRequest{})
	assert.ErrorIs(t, err, flow.ErrMissingService)

	seedSession(uc, "off-screen", paymentState(models.ScreenCustomerHome, ""))
	_, err = uc.CompletePayment(context.Background(), "off-screen", &models.PaymentRequest{ServiceID: "basic"})
	assert.ErrorIs(t, err, flow.ErrTransitionRefused)
}

func TestBookingHistoryLocalAndRefresh(t *testing.T) {
	uc, repo, gw := newTestFlowUC(t)
	seedSession(uc, "s1", customerState(models.ScreenBookingHistory))

	local := []*models.BookingRecord{{BookingID: "BK-1", UserID: "user-1"}}
	repo.EXPECT().ListBookingRecords(gomock.Any(), "user-1").Return(local, nil)

	records, err := uc.BookingHistory(context.Background(), "s1", false)
	require.NoError(t, err)
	assert.Equal(t, local, records)

	remote := []*models.BookingRecord{
		{BookingID: "BK-1", UserID: "user-1"},
		{BookingID: "BK-2", UserID: "user-1"},
	}
	gw.EXPECT().GetBookingList(gomock.Any(), "user-1").Return(remote, nil)
	repo.EXPECT().ReplaceBookingRecords(gomock.Any(), "user-1", remote).Return(nil)

	records, err = uc.BookingHistory(context.Background(), "s1", true)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestBookingHistoryRefreshFailure(t *testing.T) {
	uc, _, gw := newTestFlowUC(t)
	seedSession(uc, "s1", customerState(models.ScreenBookingHistory))

	gw.EXPECT().GetBookingList(gomock.Any(), "user-1").Return(nil, errors.New("backend down"))

	_, err := uc.BookingHistory(context.Background(), "s1", true)
	assert.Error(t, err)
}
