package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/krypton4149/washnow/internal/pkg/constants"
	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
	natspkg "github.com/krypton4149/washnow/internal/pkg/nats"
	"github.com/krypton4149/washnow/internal/pkg/websocket"
	"github.com/krypton4149/washnow/services/flow"
)

// NatsHandler handles NATS subscriptions for the flow service
type NatsHandler struct {
	flowUC     flow.FlowUC
	wsManager  *websocket.Manager
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new flow NATS handler
func NewNatsHandler(flowUC flow.FlowUC, wsManager *websocket.Manager, client *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		flowUC:     flowUC,
		wsManager:  wsManager,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the flow service
func (h *NatsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectCenterAccepted, func(msg *nats.Msg) {
		if err := h.handleCenterAccepted(msg.Data); err != nil {
			logger.Error("Error handling center accepted event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to center accepted events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleCenterAccepted applies a broadcast acceptance to the session's flow
// and pushes the resulting screen change to the client
func (h *NatsHandler) handleCenterAccepted(msg []byte) error {
	var event models.CenterAcceptedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to unmarshal center accepted event", logger.Err(err))
		return err
	}

	logger.InfoCtx(context.Background(), "Received center accepted event",
		logger.String("session_id", event.SessionID),
		logger.String("run_id", event.RunID),
		logger.String("center_id", event.Center.ID))

	ctx := context.Background()
	state, err := h.flowUC.CenterAccepted(ctx, event.SessionID, event.Center)
	if err != nil {
		// A session that logged out or navigated away mid-run is not an
		// error worth retrying.
		if errors.Is(err, flow.ErrSessionNotFound) {
			logger.WarnCtx(ctx, "Dropping acceptance for unknown session",
				logger.String("session_id", event.SessionID))
			return nil
		}
		return err
	}

	h.wsManager.NotifyClient(event.SessionID, constants.EventScreenChanged, state)
	return nil
}
