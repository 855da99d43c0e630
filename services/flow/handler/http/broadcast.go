package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krypton4149/washnow/internal/pkg/constants"
	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/internal/pkg/websocket"
	"github.com/krypton4149/washnow/internal/utils"
	"github.com/krypton4149/washnow/services/broadcast"
	"github.com/krypton4149/washnow/services/flow"
)

// BroadcastHandler drives broadcast runs for the finding-center screen. Run
// events are pushed to the session's WebSocket as they happen; the acceptance
// itself travels through NATS back into the flow use case.
type BroadcastHandler struct {
	flowUC      flow.FlowUC
	broadcastUC broadcast.BroadcastUC
	wsManager   *websocket.Manager
}

// NewBroadcastHandler creates a new broadcast HTTP handler
func NewBroadcastHandler(flowUC flow.FlowUC, broadcastUC broadcast.BroadcastUC, wsManager *websocket.Manager) *BroadcastHandler {
	return &BroadcastHandler{
		flowUC:      flowUC,
		broadcastUC: broadcastUC,
		wsManager:   wsManager,
	}
}

type startBroadcastRequest struct {
	Origin models.Location `json:"origin"`
}

// StartBroadcast starts a run over the session's recorded candidate set and
// streams its events to the session's WebSocket connection
func (h *BroadcastHandler) StartBroadcast(c echo.Context) error {
	var req startBroadcastRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	sid := sessionID(c)
	candidates, err := h.flowUC.Candidates(c.Request().Context(), sid)
	if err != nil {
		return flowError(c, err)
	}

	run, events, err := h.broadcastUC.Start(c.Request().Context(), sid, req.Origin, candidates)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}

	go h.forwardRunEvents(sid, events)

	return utils.SuccessResponse(c, http.StatusOK, "Broadcast started", run)
}

// forwardRunEvents drains a run's event channel into the session's WebSocket.
// The channel is closed by the use case when the run ends, so the goroutine
// never outlives the run.
func (h *BroadcastHandler) forwardRunEvents(sessionID string, events <-chan models.BroadcastEvent) {
	for event := range events {
		switch event.Type {
		case models.BroadcastEventTick:
			h.wsManager.NotifyClient(sessionID, constants.EventBroadcastTick, event)
		case models.BroadcastEventResolved, models.BroadcastEventCancelled:
			h.wsManager.NotifyClient(sessionID, constants.EventBroadcastResolved, event)
		}
	}
}

// CancelBroadcast ends the session's run and returns the flow to the
// booking screen
func (h *BroadcastHandler) CancelBroadcast(c echo.Context) error {
	sid := sessionID(c)
	if err := h.broadcastUC.Cancel(c.Request().Context(), sid); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}

	state, err := h.flowUC.NavigateTo(c.Request().Context(), sid, models.ScreenBookWash)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Broadcast cancelled", state)
}

// GetBroadcast returns the session's active or last stored run snapshot
func (h *BroadcastHandler) GetBroadcast(c echo.Context) error {
	run, err := h.broadcastUC.ActiveRun(c.Request().Context(), sessionID(c))
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}
	if run == nil {
		return utils.NotFoundResponse(c, "No broadcast run for session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Broadcast run", run)
}
