package constants

// Redis key formats
const (
	// Flow service
	KeySession = "flow:session:%s" // Format: flow:session:{session_id}

	// Broadcast service
	KeyBroadcastRun        = "broadcast:run:%s"     // Format: broadcast:run:{run_id}
	KeyBroadcastRunSession = "broadcast:session:%s" // Format: broadcast:session:{session_id}
)
