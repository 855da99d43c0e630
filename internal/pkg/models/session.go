package models

import "time"

// Role selects which subtree of screens a session can reach
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// UserProfile is the serialized profile the auth collaborator owns
type UserProfile struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

// Session is the persisted per-client session state: who is logged in,
// which role subtree is active and the theme flag the client reads back.
type Session struct {
	SessionID     string       `json:"session_id"`
	UserID        string       `json:"user_id,omitempty"`
	Authenticated bool         `json:"authenticated"`
	Role          Role         `json:"role,omitempty"`
	Profile       *UserProfile `json:"profile,omitempty"`
	DarkTheme     bool         `json:"dark_theme"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// LoginRequest carries the credentials forwarded to the backend
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful login
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	Profile   *UserProfile `json:"profile"`
}

// LogoutEvent is published on NATS after a local logout. The publish is
// fire-and-forget: the session is already gone locally by the time it goes out.
type LogoutEvent struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// FlowState is the client-visible snapshot of a session's flow: the current
// screen plus the booking draft it should render with.
type FlowState struct {
	Screen     Screen             `json:"screen"`
	Booking    BookingContext     `json:"booking"`
	Candidates CandidateCenterSet `json:"candidates,omitempty"`
	DayChip    string             `json:"day_chip,omitempty"`
}

// BookingStartedEvent is published when a session enters the booking flow
type BookingStartedEvent struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingPaidEvent is published after a booking's payment succeeds
type BookingPaidEvent struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Flow      FlowKind  `json:"flow"`
	Timestamp time.Time `json:"timestamp"`
}
