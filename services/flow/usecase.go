package flow

import (
	"context"

	"github.com/krypton4149/washnow/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/krypton4149/washnow/services/flow FlowUC

// FlowUC is the screen flow use case: it owns which screen each session is
// on and the booking draft the screen renders with. Every action returns the
// resulting flow state so the client can render without a second round trip.
type FlowUC interface {
	// NewSession creates a fresh anonymous session on the onboarding screen
	NewSession(ctx context.Context) (string, *models.FlowState, error)

	// State returns the session's current flow state
	State(ctx context.Context, sessionID string) (*models.FlowState, error)

	// NavigateTo moves the session to an explicitly named screen, subject to
	// authentication and role gating. Arriving home discards the booking draft.
	NavigateTo(ctx context.Context, sessionID string, screen models.Screen) (*models.FlowState, error)

	// ChooseRole records which subtree the session is heading into
	ChooseRole(ctx context.Context, sessionID string, role models.Role) (*models.FlowState, error)

	// Login authenticates against the backend. On failure the session stays
	// where it is; nothing is partially applied.
	Login(ctx context.Context, sessionID string, req *models.LoginRequest) (*models.AuthResponse, *models.FlowState, error)

	// Logout clears the session locally and returns immediately; backend
	// notification happens in the background.
	Logout(ctx context.Context, sessionID string) (*models.FlowState, error)

	// StartBooking resets the booking draft and enters the booking flow
	StartBooking(ctx context.Context, sessionID string) (*models.FlowState, error)

	// ConfirmInstantBroadcast records the candidate set and moves to the
	// broadcast screen. The set is stored verbatim: nil and empty mean
	// different things downstream.
	ConfirmInstantBroadcast(ctx context.Context, sessionID string, candidates models.CandidateCenterSet, vehicle *models.Vehicle) (*models.FlowState, error)

	// Candidates returns the candidate set recorded for the session
	Candidates(ctx context.Context, sessionID string) (models.CandidateCenterSet, error)

	// CenterAccepted applies a broadcast acceptance. Ignored unless the
	// session is still on the broadcast screen.
	CenterAccepted(ctx context.Context, sessionID string, center models.ServiceCenter) (*models.FlowState, error)

	// ProceedToPayment moves from the confirmation screen into payment
	ProceedToPayment(ctx context.Context, sessionID string, slot *models.BookingSlot) (*models.FlowState, error)

	// ScheduleContinue applies the scheduled flow's draft and moves to its
	// payment screen
	ScheduleContinue(ctx context.Context, sessionID string, draft *models.BookingDraft) (*models.FlowState, error)

	// ConfirmBooking routes the shared confirm action: a fully scheduled
	// draft goes to payment, anything else returns home
	ConfirmBooking(ctx context.Context, sessionID string) (*models.FlowState, error)

	// CompletePayment books with the backend and, on success, lands on the
	// confirmation screen matching where payment was entered from
	CompletePayment(ctx context.Context, sessionID string, req *models.PaymentRequest) (*models.FlowState, error)

	// BookingHistory lists the session's completed bookings, optionally
	// refreshing from the backend first
	BookingHistory(ctx context.Context, sessionID string, forceRefresh bool) ([]*models.BookingRecord, error)

	// SetTheme persists the client's theme flag on the session
	SetTheme(ctx context.Context, sessionID string, dark bool) error
}
