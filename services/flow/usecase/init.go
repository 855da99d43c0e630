package usecase

import (
	"sync"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/services/flow"
)

// flowState is the per-session state the router owns. The booking draft is
// mutated only here: screens request transitions with payloads, the router
// applies the merge.
type flowState struct {
	screen        models.Screen
	booking       models.BookingContext
	candidates    models.CandidateCenterSet
	paymentEntry  models.Screen
	role          models.Role
	authenticated bool
	userID        string
}

// view snapshots the state for the client. Candidates are copied so the
// caller can never alias the router's slice; nil stays nil because it means
// "all centers" downstream.
func (s *flowState) view() *models.FlowState {
	out := &models.FlowState{
		Screen:  s.screen,
		Booking: s.booking,
	}
	if s.candidates != nil {
		candidates := make(models.CandidateCenterSet, len(s.candidates))
		copy(candidates, s.candidates)
		out.Candidates = candidates
	}
	if s.booking.IsScheduled() && s.booking.Date != nil {
		out.DayChip = models.DayChip(*s.booking.Date, models.Now())
	}
	return out
}

// FlowUC implements the flow use case interface. A single mutex guards the
// session map and every state mutation, so a booking write and the screen
// change it triggers are one atomic update: no reader can observe the new
// screen with a stale candidate set.
type FlowUC struct {
	cfg      *models.Config
	flowRepo flow.FlowRepo
	flowGW   flow.FlowGW

	mu     sync.Mutex
	states map[string]*flowState
}

// NewFlowUC creates a new flow use case
func NewFlowUC(
	cfg *models.Config,
	flowRepo flow.FlowRepo,
	flowGW flow.FlowGW,
) *FlowUC {
	return &FlowUC{
		cfg:      cfg,
		flowRepo: flowRepo,
		flowGW:   flowGW,
		states:   make(map[string]*flowState),
	}
}

// stateLocked returns the session's state. Caller holds uc.mu.
func (uc *FlowUC) stateLocked(sessionID string) (*flowState, error) {
	state, ok := uc.states[sessionID]
	if !ok {
		return nil, flow.ErrSessionNotFound
	}
	return state, nil
}
