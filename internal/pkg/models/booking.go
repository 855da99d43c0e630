package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle identifies the customer's car for a booking
type Vehicle struct {
	PlateNumber string `json:"plate_number"`
	Model       string `json:"model,omitempty"`
}

// BookingSlot is a date/time pair for a booking. Date is an ISO date string
// (2006-01-02) and Time is either 24-hour "15:04" or 12-hour "3:04 PM";
// conversion to the backend's wire format happens at the gateway boundary.
type BookingSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// BookingContext accumulates the draft of the booking currently in progress.
// All fields are optional; nil means "not collected yet". The instant and
// scheduled flows fill different subsets of the fields in different orders,
// and every update goes through Merge.
type BookingContext struct {
	Center        *ServiceCenter `json:"center,omitempty"`
	Date          *string        `json:"date,omitempty"`
	Time          *string        `json:"time,omitempty"`
	Vehicle       *Vehicle       `json:"vehicle,omitempty"`
	BookingID     *string        `json:"booking_id,omitempty"`
	PaymentAmount *float64       `json:"payment_amount,omitempty"`
}

// Merge combines incoming into b field by field. An incoming non-nil value
// wins; an incoming nil leaves the existing value untouched. A field that
// was set once can therefore never regress to unset, regardless of which
// flow produced the incoming update.
func (b BookingContext) Merge(incoming BookingContext) BookingContext {
	out := b
	if incoming.Center != nil {
		out.Center = incoming.Center
	}
	if incoming.Date != nil {
		out.Date = incoming.Date
	}
	if incoming.Time != nil {
		out.Time = incoming.Time
	}
	if incoming.Vehicle != nil {
		out.Vehicle = incoming.Vehicle
	}
	if incoming.BookingID != nil {
		out.BookingID = incoming.BookingID
	}
	if incoming.PaymentAmount != nil {
		out.PaymentAmount = incoming.PaymentAmount
	}
	return out
}

// WithSlotDefaults fills Date and Time from slot only where they are still
// unset. Payment completion passes the "pay now" slot through here, so a
// slot picked earlier by the scheduled flow always survives it.
func (b BookingContext) WithSlotDefaults(slot BookingSlot) BookingContext {
	out := b
	if out.Date == nil && slot.Date != "" {
		date := slot.Date
		out.Date = &date
	}
	if out.Time == nil && slot.Time != "" {
		t := slot.Time
		out.Time = &t
	}
	return out
}

// IsScheduled reports whether the context was produced by the scheduled
// flow: center, date and time were all collected up front. The instant flow
// only learns its slot at payment time, so this predicate is what routes
// the shared confirm action between the two flows.
func (b BookingContext) IsScheduled() bool {
	return b.Center != nil && b.Date != nil && b.Time != nil
}

// BookingDraft is the payload of the scheduled flow's continue action
type BookingDraft struct {
	Center  *ServiceCenter `json:"center"`
	Date    string         `json:"date"`
	Time    string         `json:"time"`
	Vehicle *Vehicle       `json:"vehicle,omitempty"`
}

// Context converts the draft into a BookingContext update
func (d BookingDraft) Context() BookingContext {
	ctx := BookingContext{Center: d.Center, Vehicle: d.Vehicle}
	if d.Date != "" {
		date := d.Date
		ctx.Date = &date
	}
	if d.Time != "" {
		t := d.Time
		ctx.Time = &t
	}
	return ctx
}

// FlowKind distinguishes how a completed booking was produced
type FlowKind string

const (
	FlowKindInstant   FlowKind = "instant"
	FlowKindScheduled FlowKind = "scheduled"
)

// BookingRecord is one completed booking, persisted for the history screen
type BookingRecord struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	BookingID   string    `json:"booking_id" db:"booking_id"`
	CenterID    string    `json:"center_id" db:"center_id"`
	CenterName  string    `json:"center_name" db:"center_name"`
	BookingDate string    `json:"booking_date" db:"booking_date"`
	BookingTime string    `json:"booking_time" db:"booking_time"`
	VehicleNo   string    `json:"vehicle_no" db:"vehicle_no"`
	Amount      float64   `json:"amount" db:"amount"`
	Flow        FlowKind  `json:"flow" db:"flow"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// BookNowRequest is the backend's booking payload. BookingDate is DD-MM-YYYY
// and BookingTime is 24-hour HH:MM; the gateway converts before sending.
type BookNowRequest struct {
	ServiceCentreID string `json:"service_centre_id"`
	BookingDate     string `json:"booking_date"`
	BookingTime     string `json:"booking_time"`
	VehicleNo       string `json:"vehicle_no"`
	ServiceID       string `json:"service_id"`
	Notes           string `json:"notes,omitempty"`
}

// PaymentRequest is the payload of the payment completion action
type PaymentRequest struct {
	Amount    float64      `json:"amount"`
	ServiceID string       `json:"service_id"`
	Slot      *BookingSlot `json:"slot,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}
