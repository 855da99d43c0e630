package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/krypton4149/washnow/internal/pkg/constants"
	"github.com/krypton4149/washnow/internal/pkg/jwt"
	"github.com/krypton4149/washnow/internal/pkg/logger"
	"github.com/krypton4149/washnow/internal/pkg/models"
)

// Manager manages WebSocket connections and client state, one connection per
// session. Screen changes and broadcast events are pushed through it.
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwt.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	sessionID, _ := (*claims)["session_id"].(string)
	if sessionID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Token carries no session")
	}
	userID, _ := (*claims)["user_id"].(string)
	role, _ := (*claims)["role"].(string)

	return &models.WebSocketClient{
		SessionID: sessionID,
		UserID:    userID,
		Role:      models.Role(role),
	}, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.SessionID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(sessionID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, sessionID)
}

// GetClient returns a client by session ID
func (m *Manager) GetClient(sessionID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[sessionID]
	return client, exists
}

// SendMessage sends an event to a WebSocket connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // nil connections show up in tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error event to a WebSocket connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends an event to the session's client, if connected
func (m *Manager) NotifyClient(sessionID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[sessionID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("session_id", sessionID),
			logger.String("event", event),
			logger.Err(err))
	}
}
