package handler

import (
	"net/http"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthResponse is the body of both health endpoints.
type HealthResponse struct {
	Status   string             `json:"status"`
	Tables   []string           `json:"tables,omitempty"`
	Message  string             `json:"message,omitempty"`
	Required []string           `json:"required,omitempty"`
	Error    string             `json:"error,omitempty"`
	Meta     *response.MetaInfo `json:"meta"`
}

// HealthHandler serves liveness and store readiness checks
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		healthUC: params.HealthUC,
	}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Meta: meta(c)})
}

// DatabaseHealthCheck handles GET /health/db
func (h *HealthHandler) DatabaseHealthCheck(c echo.Context) error {
	health, err := h.healthUC.CheckDatabase(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, HealthResponse{
			Status:  "error",
			Message: "Database health check failed",
			Error:   err.Error(),
			Meta:    meta(c),
		})
	}

	if !health.Healthy {
		return c.JSON(http.StatusInternalServerError, HealthResponse{
			Status:   "unhealthy",
			Tables:   health.Tables,
			Message:  "Missing required tables",
			Required: usecase.RequiredTables,
			Meta:     meta(c),
		})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Tables:  health.Tables,
		Message: "Database tables are ready",
		Meta:    meta(c),
	})
}

func meta(c echo.Context) *response.MetaInfo {
	return &response.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
