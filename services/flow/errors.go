package flow

import "errors"

// Flow errors fall into three groups the handlers map to different HTTP
// codes: unknown sessions, refused transitions (the machine never moves on
// an unmet precondition) and input errors caught before any backend call.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrTransitionRefused = errors.New("transition refused")
	ErrInvalidScreen     = errors.New("unknown screen")

	ErrMissingCenter  = errors.New("no service center selected")
	ErrMissingVehicle = errors.New("vehicle number required")
	ErrInvalidVehicle = errors.New("invalid vehicle number")
	ErrMissingService = errors.New("service selection required")
	ErrInvalidSlot    = errors.New("invalid booking slot")
)
