package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/internal/utils"
	"github.com/krypton4149/washnow/services/flow"
)

// FlowHandler handles HTTP requests for the flow service
type FlowHandler struct {
	flowUC flow.FlowUC
}

// NewFlowHandler creates a new flow HTTP handler
func NewFlowHandler(flowUC flow.FlowUC) *FlowHandler {
	return &FlowHandler{flowUC: flowUC}
}

// sessionID resolves the caller's session: the JWT middleware puts it in the
// echo context, pre-auth routes carry it in a header instead.
func sessionID(c echo.Context) string {
	if id, ok := c.Get("session_id").(string); ok && id != "" {
		return id
	}
	return c.Request().Header.Get("X-Session-ID")
}

// flowError maps use case errors onto HTTP codes: unknown sessions are 404,
// refused transitions 409, bad input 400 and backend failures 502
func flowError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, flow.ErrSessionNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, flow.ErrNotAuthenticated):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, flow.ErrTransitionRefused):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, flow.ErrInvalidScreen),
		errors.Is(err, flow.ErrMissingCenter),
		errors.Is(err, flow.ErrMissingVehicle),
		errors.Is(err, flow.ErrInvalidVehicle),
		errors.Is(err, flow.ErrMissingService),
		errors.Is(err, flow.ErrInvalidSlot):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}
}

// CreateSession starts a fresh anonymous session
func (h *FlowHandler) CreateSession(c echo.Context) error {
	id, state, err := h.flowUC.NewSession(c.Request().Context())
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Session created", map[string]interface{}{
		"session_id": id,
		"flow":       state,
	})
}

// GetState returns the session's current flow state
func (h *FlowHandler) GetState(c echo.Context) error {
	state, err := h.flowUC.State(c.Request().Context(), sessionID(c))
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Flow state", state)
}

type navigateRequest struct {
	Screen models.Screen `json:"screen"`
}

// Navigate moves the session to a named screen
func (h *FlowHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.flowUC.NavigateTo(c.Request().Context(), sessionID(c), req.Screen)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Screen changed", state)
}

type roleRequest struct {
	Role models.Role `json:"role"`
}

// ChooseRole records the chosen role subtree
func (h *FlowHandler) ChooseRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.flowUC.ChooseRole(c.Request().Context(), sessionID(c), req.Role)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Role chosen", state)
}

// StartBooking enters the booking flow with a clean draft
func (h *FlowHandler) StartBooking(c echo.Context) error {
	state, err := h.flowUC.StartBooking(c.Request().Context(), sessionID(c))
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking started", state)
}

type instantBroadcastRequest struct {
	// Candidates is deliberately a pointer-free slice: absent means "all
	// centers", present-but-empty means zero candidates.
	Candidates models.CandidateCenterSet `json:"candidates"`
	Vehicle    *models.Vehicle           `json:"vehicle,omitempty"`
}

// ConfirmInstantBroadcast records candidates and moves to the broadcast screen
func (h *FlowHandler) ConfirmInstantBroadcast(c echo.Context) error {
	var req instantBroadcastRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.flowUC.ConfirmInstantBroadcast(c.Request().Context(), sessionID(c), req.Candidates, req.Vehicle)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Broadcast confirmed", state)
}

type proceedToPaymentRequest struct {
	Slot *models.BookingSlot `json:"slot,omitempty"`
}

// ProceedToPayment moves into the payment screen
func (h *FlowHandler) ProceedToPayment(c echo.Context) error {
	var req proceedToPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.flowUC.ProceedToPayment(c.Request().Context(), sessionID(c), req.Slot)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Proceeding to payment", state)
}

// ScheduleContinue applies the scheduled flow's draft
func (h *FlowHandler) ScheduleContinue(c echo.Context) error {
	var draft models.BookingDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.flowUC.ScheduleContinue(c.Request().Context(), sessionID(c), &draft)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedule confirmed", state)
}

// ConfirmBooking routes the shared confirm action
func (h *FlowHandler) ConfirmBooking(c echo.Context) error {
	state, err := h.flowUC.ConfirmBooking(c.Request().Context(), sessionID(c))
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking confirmed", state)
}

// CompletePayment books with the backend and finishes the flow
func (h *FlowHandler) CompletePayment(c echo.Context) error {
	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	state, err := h.flowUC.CompletePayment(c.Request().Context(), sessionID(c), &req)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment completed", state)
}

// BookingHistory lists the session's completed bookings. The scheduled rows
// carry a day chip the confirmation screens reuse.
func (h *FlowHandler) BookingHistory(c echo.Context) error {
	forceRefresh := c.QueryParam("refresh") == "true"

	records, err := h.flowUC.BookingHistory(c.Request().Context(), sessionID(c), forceRefresh)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking history", records)
}
