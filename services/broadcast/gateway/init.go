package gateway

import (
	"time"

	natspkg "github.com/krypton4149/washnow/internal/pkg/nats"
	"github.com/krypton4149/washnow/services/broadcast"
	gateway_nats "github.com/krypton4149/washnow/services/broadcast/gateway/nats"
)

// BroadcastGW handles broadcast gateway operations
type BroadcastGW struct {
	natsGateway *gateway_nats.NATSGateway
	httpGateway *HTTPGateway
}

// NewBroadcastGW creates a new unified gateway instance with NATS and backend HTTP clients
func NewBroadcastGW(natsClient *natspkg.Client, backendURL string, timeout time.Duration) broadcast.BroadcastGW {
	return &BroadcastGW{
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
		httpGateway: NewHTTPGateway(backendURL, timeout),
	}
}
