package constants

// NATS Subjects
const (
	// Flow service
	SubjectBookingStarted = "booking.started"
	SubjectBookingPaid    = "booking.paid"
	SubjectUserLogout     = "user.logout"

	// Broadcast service
	SubjectBroadcastStarted = "broadcast.started"
	SubjectCenterAccepted   = "center.accepted"
)
