package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/krypton4149/washnow/internal/pkg/http"
	"github.com/krypton4149/washnow/internal/pkg/models"
)

// HTTPGateway wraps the backend API client for directory lookups
type HTTPGateway struct {
	backendClient *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway for the backend API
func NewHTTPGateway(backendURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		backendClient: httpclient.NewClient(backendURL, timeout),
	}
}

type serviceCenterListResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Data    []models.ServiceCenter `json:"data"`
}

// GetServiceCenters loads the full center directory from the backend
func (gw *HTTPGateway) GetServiceCenters(ctx context.Context) ([]models.ServiceCenter, error) {
	var response serviceCenterListResponse
	if err := gw.backendClient.GetJSON(ctx, "/api/customer/service-centres", &response); err != nil {
		return nil, fmt.Errorf("failed to load service center directory: %w", err)
	}
	return response.Data, nil
}
