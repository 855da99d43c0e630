package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/services/flow"
)

// preAuthScreens are reachable before login
var preAuthScreens = map[models.Screen]bool{
	models.ScreenOnboarding: true,
	models.ScreenUserChoice: true,
	models.ScreenAuth:       true,
}

// NewSession creates a fresh anonymous session on the onboarding screen
func (uc *FlowUC) NewSession(ctx context.Context) (string, *models.FlowState, error) {
	sessionID := uuid.New().String()

	uc.mu.Lock()
	state := &flowState{screen: models.ScreenOnboarding}
	uc.states[sessionID] = state
	view := state.view()
	uc.mu.Unlock()

	now := models.Now()
	session := &models.Session{
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.flowRepo.SaveSession(ctx, session); err != nil {
		logger.WarnCtx(ctx, "Failed to persist new session",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Session created", logger.String("session_id", sessionID))
	return sessionID, view, nil
}

// State returns the session's current flow state
func (uc *FlowUC) State(ctx context.Context, sessionID string) (*models.FlowState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return state.view(), nil
}

// NavigateTo moves the session to an explicitly named screen. Screens past
// the auth gate require a login; the two home screens additionally require
// the matching role and discard the booking draft on arrival.
func (uc *FlowUC) NavigateTo(ctx context.Context, sessionID string, screen models.Screen) (*models.FlowState, error) {
	if !screen.Valid() {
		return nil, fmt.Errorf("%w: %q", flow.ErrInvalidScreen, screen)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}

	if !preAuthScreens[screen] && !state.authenticated {
		return nil, flow.ErrNotAuthenticated
	}
	if screen == models.ScreenOwnerHome && state.role != models.RoleOwner {
		return nil, fmt.Errorf("%w: owner role required", flow.ErrTransitionRefused)
	}
	if screen == models.ScreenCustomerHome && state.role != models.RoleCustomer {
		return nil, fmt.Errorf("%w: customer role required", flow.ErrTransitionRefused)
	}

	if screen == models.ScreenCustomerHome || screen == models.ScreenOwnerHome {
		state.booking = models.BookingContext{}
		state.candidates = nil
		state.paymentEntry = ""
	}
	state.screen = screen
	return state.view(), nil
}

// ChooseRole records which subtree the session is heading into and moves to
// the auth screen (or straight home when already logged in)
func (uc *FlowUC) ChooseRole(ctx context.Context, sessionID string, role models.Role) (*models.FlowState, error) {
	if role != models.RoleCustomer && role != models.RoleOwner {
		return nil, fmt.Errorf("%w: unknown role %q", flow.ErrTransitionRefused, role)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}

	state.role = role
	if state.authenticated {
		state.screen = homeScreen(role)
	} else {
		state.screen = models.ScreenAuth
	}
	return state.view(), nil
}

// StartBooking resets the booking draft and enters the booking flow
func (uc *FlowUC) StartBooking(ctx context.Context, sessionID string) (*models.FlowState, error) {
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
	if state.role != models.RoleCustomer {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: customer role required", flow.ErrTransitionRefused)
	}

	state.booking = models.BookingContext{}
	state.candidates = nil
	state.paymentEntry = ""
	state.screen = models.ScreenBookWash
	userID := state.userID
	view := state.view()
	uc.mu.Unlock()

	event := &models.BookingStartedEvent{
		SessionID: sessionID,
		UserID:    userID,
		Timestamp: models.Now(),
	}
	if err := uc.flowGW.PublishBookingStarted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish booking started event",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}
	return view, nil
}

// ConfirmInstantBroadcast records the candidate set and moves to the
// broadcast screen as one atomic update. The set is stored verbatim: nil
// means the full directory is loaded at broadcast time, a non-nil empty set
// means exactly zero candidates.
func (uc *FlowUC) ConfirmInstantBroadcast(ctx context.Context, sessionID string, candidates models.CandidateCenterSet, vehicle *models.Vehicle) (*models.FlowState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if state.screen != models.ScreenBookWash {
		return nil, fmt.Errorf("%w: broadcast starts from the booking screen", flow.ErrTransitionRefused)
	}

	if vehicle != nil {
		state.booking = state.booking.Merge(models.BookingContext{Vehicle: vehicle})
	}

	if candidates != nil {
		stored := make(models.CandidateCenterSet, len(candidates))
		copy(stored, candidates)
		state.candidates = stored
	} else {
		state.candidates = nil
	}
	state.screen = models.ScreenFindingCenter
	return state.view(), nil
}

// Candidates returns the candidate set recorded for the session
func (uc *FlowUC) Candidates(ctx context.Context, sessionID string) (models.CandidateCenterSet, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if state.candidates == nil {
		return nil, nil
	}
	candidates := make(models.CandidateCenterSet, len(state.candidates))
	copy(candidates, state.candidates)
	return candidates, nil
}

// CenterAccepted applies a broadcast acceptance. A late acceptance that
// arrives after the user navigated away must not touch the booking draft or
// force a navigation, so anything off the broadcast screen is dropped.
func (uc *FlowUC) CenterAccepted(ctx context.Context, sessionID string, center models.ServiceCenter) (*models.FlowState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if state.screen != models.ScreenFindingCenter {
		logger.DebugCtx(ctx, "Dropping stale center acceptance",
			logger.String("session_id", sessionID),
			logger.String("center_id", center.ID),
			logger.String("screen", string(state.screen)))
		return state.view(), nil
	}

	state.booking = state.booking.Merge(models.BookingContext{Center: &center})
	state.screen = models.ScreenBookingConfirmed
	return state.view(), nil
}

// ProceedToPayment moves from the confirmation screen into payment. An
// instant slot fills date/time only where the draft has none.
func (uc *FlowUC) ProceedToPayment(ctx context.Context, sessionID string, slot *models.BookingSlot) (*models.FlowState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if state.screen != models.ScreenBookingConfirmed {
		return nil, fmt.Errorf("%w: payment follows booking confirmation", flow.ErrTransitionRefused)
	}

	if slot != nil {
		state.booking = state.booking.WithSlotDefaults(*slot)
	}
	state.paymentEntry = models.ScreenPayment
	state.screen = models.ScreenPayment
	return state.view(), nil
}

// ScheduleContinue applies the scheduled flow's draft and moves to its
// payment screen
func (uc *FlowUC) ScheduleContinue(ctx context.Context, sessionID string, draft *models.BookingDraft) (*models.FlowState, error) {
	if draft == nil || draft.Center == nil {
		return nil, flow.ErrMissingCenter
	}
	if draft.Date == "" || draft.Time == "" {
		return nil, flow.ErrInvalidSlot
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	switch state.screen {
	case models.ScreenScheduleForLater, models.ScreenScheduleBooking, models.ScreenConfirmBooking:
	default:
		return nil, fmt.Errorf("%w: not in the scheduled flow", flow.ErrTransitionRefused)
	}

	state.booking = state.booking.Merge(draft.Context())
	state.paymentEntry = models.ScreenSchedulePayment
	state.screen = models.ScreenSchedulePayment
	return state.view(), nil
}

// ConfirmBooking routes the shared confirm action by data shape: a draft
// with center, date and time all collected goes to scheduled payment,
// anything else returns to the dashboard
func (uc *FlowUC) ConfirmBooking(ctx context.Context, sessionID string) (*models.FlowState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if state.screen != models.ScreenConfirmBooking {
		return nil, fmt.Errorf("%w: not on the confirmation screen", flow.ErrTransitionRefused)
	}

	if state.booking.IsScheduled() {
		state.paymentEntry = models.ScreenSchedulePayment
		state.screen = models.ScreenSchedulePayment
	} else {
		state.booking = models.BookingContext{}
		state.candidates = nil
		state.paymentEntry = ""
		state.screen = models.ScreenCustomerHome
	}
	return state.view(), nil
}

func homeScreen(role models.Role) models.Screen {
	if role == models.RoleOwner {
		return models.ScreenOwnerHome
	}
	return models.ScreenCustomerHome
}
