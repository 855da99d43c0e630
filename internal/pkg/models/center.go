package models

import "time"

// WashService represents a single service a center offers
type WashService struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	OfferPrice *float64 `json:"offer_price,omitempty"`
}

// ServiceCenter represents a car-wash service center from the directory
type ServiceCenter struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Address         string        `json:"address,omitempty"`
	Location        Location      `json:"location"`
	DistanceKm      float64       `json:"distance_km"`
	ServicesOffered []WashService `json:"services_offered,omitempty"`
}

// CandidateCenterSet is the set of centers a broadcast run fans out to.
//
// A nil set means "broadcast to all available centers, loaded from the
// directory at broadcast time". A non-nil empty set means "broadcast to
// exactly these zero centers". The two are never interchangeable: an empty
// set must not fall back to loading the full directory.
type CandidateCenterSet []ServiceCenter

// BroadcastStatus is the per-center state of a broadcast run
type BroadcastStatus string

const (
	BroadcastStatusWaiting      BroadcastStatus = "waiting"
	BroadcastStatusNotAvailable BroadcastStatus = "not-available"
	BroadcastStatusAccepted     BroadcastStatus = "accepted"
)

// BroadcastCenter is one row of a broadcast run. Rows are created with
// status waiting and flipped once, as a batch, when the run resolves.
type BroadcastCenter struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	DistanceKm float64         `json:"distance_km"`
	Status     BroadcastStatus `json:"status"`
}

// BroadcastEventType tags events emitted by a broadcast run
type BroadcastEventType string

const (
	BroadcastEventTick      BroadcastEventType = "tick"
	BroadcastEventResolved  BroadcastEventType = "resolved"
	BroadcastEventCancelled BroadcastEventType = "cancelled"
)

// BroadcastEvent is pushed to the client while a broadcast run is live
type BroadcastEvent struct {
	Type           BroadcastEventType `json:"type"`
	RunID          string             `json:"run_id"`
	ElapsedSeconds int                `json:"elapsed_seconds,omitempty"`
	Centers        []BroadcastCenter  `json:"centers,omitempty"`
	Accepted       *ServiceCenter     `json:"accepted,omitempty"`
}

// CenterAcceptedEvent is published on NATS when a broadcast run resolves
// to an acceptance
type CenterAcceptedEvent struct {
	SessionID string        `json:"session_id"`
	RunID     string        `json:"run_id"`
	Center    ServiceCenter `json:"center"`
}

// BroadcastStartedEvent is published on NATS when a broadcast run begins
type BroadcastStartedEvent struct {
	SessionID      string    `json:"session_id"`
	RunID          string    `json:"run_id"`
	CandidateCount int       `json:"candidate_count"`
	LocationLabel  string    `json:"location_label,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// BroadcastRunState is the persisted snapshot of a broadcast run, kept in
// Redis so a remounted broadcast screen can re-fetch what it missed.
type BroadcastRunState struct {
	RunID     string            `json:"run_id"`
	SessionID string            `json:"session_id"`
	Resolved  bool              `json:"resolved"`
	Centers   []BroadcastCenter `json:"centers"`
	Accepted  *ServiceCenter    `json:"accepted,omitempty"`
}
