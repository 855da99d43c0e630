package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/internal/utils"
)

// Login authenticates against the backend and returns a token plus the
// resulting flow state
func (h *FlowHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	auth, state, err := h.flowUC.Login(c.Request().Context(), sessionID(c), &req)
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged in", map[string]interface{}{
		"auth": auth,
		"flow": state,
	})
}

// Logout clears the session locally; the response does not wait for the
// backend
func (h *FlowHandler) Logout(c echo.Context) error {
	state, err := h.flowUC.Logout(c.Request().Context(), sessionID(c))
	if err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", state)
}

type themeRequest struct {
	Dark bool `json:"dark"`
}

// SetTheme persists the client's theme flag
func (h *FlowHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.flowUC.SetTheme(c.Request().Context(), sessionID(c), req.Dark); err != nil {
		return flowError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Theme updated", map[string]bool{"dark": req.Dark})
}
