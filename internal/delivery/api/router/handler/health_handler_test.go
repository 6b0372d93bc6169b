package handler

import (
	"net/http"
	"testing"

	"crm/internal/errors"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	handler := NewHealthHandler(HealthHandlerParams{HealthUC: mockUsecase.NewMockHealthUsecase(t)})

	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestHealthHandler_DatabaseHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		health     *usecase.DatabaseHealth
		err        error
		wantStatus int
		want       map[string]any
	}{
		{
			name:       "healthy",
			health:     &usecase.DatabaseHealth{Healthy: true, Tables: []string{"customers", "addresses"}},
			wantStatus: http.StatusOK,
			want: map[string]any{
				"status":  "healthy",
				"tables":  []any{"customers", "addresses"},
				"message": "Database tables are ready",
			},
		},
		{
			name:       "missing tables",
			health:     &usecase.DatabaseHealth{Tables: []string{"customers"}, Missing: []string{"addresses"}},
			wantStatus: http.StatusInternalServerError,
			want: map[string]any{
				"status":   "unhealthy",
				"tables":   []any{"customers"},
				"message":  "Missing required tables",
				"required": []any{"customers", "addresses"},
			},
		},
		{
			name:       "store unreachable",
			err:        errors.New("database is closed"),
			wantStatus: http.StatusInternalServerError,
			want: map[string]any{
				"status":  "error",
				"message": "Database health check failed",
				"error":   "database is closed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthUC := mockUsecase.NewMockHealthUsecase(t)
			healthUC.EXPECT().CheckDatabase(mock.Anything).Return(tt.health, tt.err).Once()
			handler := NewHealthHandler(HealthHandlerParams{HealthUC: healthUC})

			c, rec := newTestContext(http.MethodGet, "/health/db", "")

			require.NoError(t, handler.DatabaseHealthCheck(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeBody(t, rec)
			delete(body, "meta")
			assert.Equal(t, tt.want, body)
		})
	}
}
