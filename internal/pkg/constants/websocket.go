package constants

// WebSocket event types pushed to the mobile client
const (
	EventScreenChanged     = "screen_changed"
	EventBroadcastTick     = "broadcast_tick"
	EventBroadcastResolved = "broadcast_resolved"
	EventError             = "error"
)
