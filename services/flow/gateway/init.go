package gateway

import (
	"time"

	natspkg "github.com/krypton4149/washnow/internal/pkg/nats"
	"github.com/krypton4149/washnow/services/flow"
	gateway_nats "github.com/krypton4149/washnow/services/flow/gateway/nats"
)

// FlowGW handles flow gateway operations
type FlowGW struct {
	natsGateway *gateway_nats.NATSGateway
	httpGateway *HTTPGateway
}

// NewFlowGW creates a new unified gateway instance with NATS and backend HTTP clients
func NewFlowGW(natsClient *natspkg.Client, backendURL string, timeout time.Duration) flow.FlowGW {
	return &FlowGW{
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
		httpGateway: NewHTTPGateway(backendURL, timeout),
	}
}
