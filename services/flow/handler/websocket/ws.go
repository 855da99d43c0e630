package websocket

import (
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/internal/pkg/websocket"
)

// FlowWebSocketHandler keeps one push connection per session. The client
// never drives state over the socket; actions arrive over REST and the
// socket only carries screen changes and broadcast events back.
type FlowWebSocketHandler struct {
	manager *websocket.Manager
}

// NewFlowWebSocketHandler creates a new WebSocket handler
func NewFlowWebSocketHandler(manager *websocket.Manager) *FlowWebSocketHandler {
	return &FlowWebSocketHandler{manager: manager}
}

// HandleWebSocket authenticates, registers the session's connection and
// blocks until the client goes away
func (h *FlowWebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *FlowWebSocketHandler) handleClient(client *models.WebSocketClient, conn *gorilla.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.SessionID)

	logger.Info("WebSocket client connected",
		logger.String("session_id", client.SessionID),
		logger.String("user_id", client.UserID))

	// Read pump: the client sends nothing meaningful, but reading is what
	// detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Info("WebSocket client disconnected",
				logger.String("session_id", client.SessionID))
			return nil
		}
	}
}
