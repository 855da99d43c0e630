package models

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// WSMessage is the envelope for every message pushed to the mobile client
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage is the payload of an error event
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is one connected mobile client, keyed by session
type WebSocketClient struct {
	SessionID string
	UserID    string
	Role      Role
	Conn      *websocket.Conn
}
