package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/krypton4149/washnow/services/flow"
	"github.com/krypton4149/washnow/services/flow/mocks"
)

func newFlowContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	e := echo.New()
	request := httptest.NewRequest(method, target, &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	return c, recorder
}

func TestCreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	state := &models.FlowState{Screen: models.ScreenOnboarding}
	mockFlowUC.EXPECT().
		NewSession(gomock.Any()).
		Return("session-1", state, nil)

	c, recorder := newFlowContext(t, http.MethodPost, "/sessions", nil)
	err := handler.CreateSession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "session-1", data["session_id"])
}

func TestGetStateUsesHeaderSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	mockFlowUC.EXPECT().
		State(gomock.Any(), "header-session").
		Return(&models.FlowState{Screen: models.ScreenUserChoice}, nil)

	c, recorder := newFlowContext(t, http.MethodGet, "/flow/state", nil)
	c.Request().Header.Set("X-Session-ID", "header-session")

	assert.NoError(t, handler.GetState(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetStatePrefersContextSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	mockFlowUC.EXPECT().
		State(gomock.Any(), "jwt-session").
		Return(&models.FlowState{Screen: models.ScreenCustomerHome}, nil)

	c, recorder := newFlowContext(t, http.MethodGet, "/flow/state", nil)
	c.Request().Header.Set("X-Session-ID", "header-session")
	c.Set("session_id", "jwt-session")

	assert.NoError(t, handler.GetState(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestFlowErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown session", flow.ErrSessionNotFound, http.StatusNotFound},
		{"not authenticated", flow.ErrNotAuthenticated, http.StatusUnauthorized},
		{"refused transition", flow.ErrTransitionRefused, http.StatusConflict},
		{"invalid screen", flow.ErrInvalidScreen, http.StatusBadRequest},
		{"missing center", flow.ErrMissingCenter, http.StatusBadRequest},
		{"backend failure", assert.AnError, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFlowUC := mocks.NewMockFlowUC(ctrl)
			handler := NewFlowHandler(mockFlowUC)

			mockFlowUC.EXPECT().
				State(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			c, recorder := newFlowContext(t, http.MethodGet, "/flow/state", nil)
			assert.NoError(t, handler.GetState(c))
			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestNavigate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	mockFlowUC.EXPECT().
		NavigateTo(gomock.Any(), "s1", models.ScreenSettings).
		Return(&models.FlowState{Screen: models.ScreenSettings}, nil)

	c, recorder := newFlowContext(t, http.MethodPost, "/flow/navigate", map[string]string{"screen": "settings"})
	c.Request().Header.Set("X-Session-ID", "s1")

	assert.NoError(t, handler.Navigate(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestConfirmInstantBroadcastPassesCandidatesVerbatim(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.CandidateCenterSet
	}{
		{"absent means all centers", `{}`, nil},
		{"empty means zero candidates", `{"candidates": []}`, models.CandidateCenterSet{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFlowUC := mocks.NewMockFlowUC(ctrl)
			handler := NewFlowHandler(mockFlowUC)

			mockFlowUC.EXPECT().
				ConfirmInstantBroadcast(gomock.Any(), "s1", gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ interface{}, _ string, candidates models.CandidateCenterSet, _ *models.Vehicle) (*models.FlowState, error) {
					if tt.want == nil {
						assert.Nil(t, candidates)
					} else {
						assert.NotNil(t, candidates)
						assert.Len(t, candidates, len(tt.want))
					}
					return &models.FlowState{Screen: models.ScreenFindingCenter}, nil
				})

			e := echo.New()
			request := httptest.NewRequest(http.MethodPost, "/flow/booking/instant", bytes.NewBufferString(tt.body))
			request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			request.Header.Set("X-Session-ID", "s1")
			recorder := httptest.NewRecorder()
			c := e.NewContext(request, recorder)

			assert.NoError(t, handler.ConfirmInstantBroadcast(c))
			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestCompletePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	mockFlowUC.EXPECT().
		CompletePayment(gomock.Any(), "s1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *models.PaymentRequest) (*models.FlowState, error) {
			assert.Equal(t, "svc-basic", req.ServiceID)
			assert.Equal(t, 25.0, req.Amount)
			return &models.FlowState{Screen: models.ScreenPaymentConfirmed}, nil
		})

	body := map[string]interface{}{"amount": 25.0, "service_id": "svc-basic"}
	c, recorder := newFlowContext(t, http.MethodPost, "/flow/booking/payment", body)
	c.Request().Header.Set("X-Session-ID", "s1")

	assert.NoError(t, handler.CompletePayment(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBookingHistoryRefreshFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	mockFlowUC.EXPECT().
		BookingHistory(gomock.Any(), "s1", true).
		Return([]*models.BookingRecord{}, nil)

	c, recorder := newFlowContext(t, http.MethodGet, "/flow/bookings?refresh=true", nil)
	c.Request().Header.Set("X-Session-ID", "s1")

	assert.NoError(t, handler.BookingHistory(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLoginRequiresCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	c, recorder := newFlowContext(t, http.MethodPost, "/auth/login", map[string]string{"email": "user@example.com"})
	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginReturnsAuthAndFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlowUC := mocks.NewMockFlowUC(ctrl)
	handler := NewFlowHandler(mockFlowUC)

	auth := &models.AuthResponse{Token: "jwt-token", ExpiresAt: 1234}
	state := &models.FlowState{Screen: models.ScreenCustomerHome}
	mockFlowUC.EXPECT().
		Login(gomock.Any(), "s1", gomock.Any()).
		Return(auth, state, nil)

	body := map[string]string{"email": "user@example.com", "password": "secret"}
	c, recorder := newFlowContext(t, http.MethodPost, "/auth/login", body)
	c.Request().Header.Set("X-Session-ID", "s1")

	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	authData := data["auth"].(map[string]interface{})
	assert.Equal(t, "jwt-token", authData["token"])
}
