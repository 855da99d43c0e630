package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/krypton4149/washnow/internal/pkg/middleware"
	"github.com/krypton4149/washnow/internal/pkg/models"
	natspkg "github.com/krypton4149/washnow/internal/pkg/nats"
	wspkg "github.com/krypton4149/washnow/internal/pkg/websocket"
	"github.com/krypton4149/washnow/services/broadcast"
	"github.com/krypton4149/washnow/services/flow"
	httpHandler "github.com/krypton4149/washnow/services/flow/handler/http"
	natsHandler "github.com/krypton4149/washnow/services/flow/handler/nats"
	wsHandler "github.com/krypton4149/washnow/services/flow/handler/websocket"
)

// Handler coordinates all protocol handlers for the flow service
type Handler struct {
	flowHTTP      *httpHandler.FlowHandler
	broadcastHTTP *httpHandler.BroadcastHandler
	flowWS        *wsHandler.FlowWebSocketHandler
	flowNATS      *natsHandler.NatsHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	flowUC flow.FlowUC,
	broadcastUC broadcast.BroadcastUC,
	wsManager *wspkg.Manager,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		flowHTTP:      httpHandler.NewFlowHandler(flowUC),
		broadcastHTTP: httpHandler.NewBroadcastHandler(flowUC, broadcastUC, wsManager),
		flowWS:        wsHandler.NewFlowWebSocketHandler(wsManager),
		flowNATS:      natsHandler.NewNatsHandler(flowUC, wsManager, natsClient),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Pre-auth screens identify their
// session via the X-Session-ID header; everything past login carries a JWT.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes: session bootstrap and the onboarding subtree
	e.POST("/sessions", h.flowHTTP.CreateSession)
	e.GET("/flow/state", h.flowHTTP.GetState)
	e.POST("/flow/navigate", h.flowHTTP.Navigate)
	e.POST("/flow/role", h.flowHTTP.ChooseRole)
	e.POST("/auth/login", h.flowHTTP.Login)

	// Protected routes with JWT middleware
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	protected.POST("/auth/logout", h.flowHTTP.Logout)
	protected.PUT("/settings/theme", h.flowHTTP.SetTheme)

	bookingGroup := protected.Group("/flow/booking")
	bookingGroup.POST("/start", h.flowHTTP.StartBooking)
	bookingGroup.POST("/instant", h.flowHTTP.ConfirmInstantBroadcast)
	bookingGroup.POST("/payment/proceed", h.flowHTTP.ProceedToPayment)
	bookingGroup.POST("/schedule", h.flowHTTP.ScheduleContinue)
	bookingGroup.POST("/confirm", h.flowHTTP.ConfirmBooking)
	bookingGroup.POST("/payment", h.flowHTTP.CompletePayment)

	protected.GET("/flow/bookings", h.flowHTTP.BookingHistory)

	broadcastGroup := protected.Group("/flow/broadcast")
	broadcastGroup.POST("/start", h.broadcastHTTP.StartBroadcast)
	broadcastGroup.POST("/cancel", h.broadcastHTTP.CancelBroadcast)
	broadcastGroup.GET("", h.broadcastHTTP.GetBroadcast)

	// WebSocket route authenticates inside the manager
	e.GET("/ws", h.flowWS.HandleWebSocket)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.flowNATS.InitNATSConsumers()
}
