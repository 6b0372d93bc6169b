package impl

import (
	"context"
	"testing"

	"crm/internal/errors"
	mockRepo "crm/internal/mocks/repository"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_CheckDatabase(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		wantHealthy bool
		wantMissing []string
	}{
		{"all tables", []string{"customers", "addresses"}, true, []string{}},
		{"addresses missing", []string{"customers"}, false, []string{"addresses"}},
		{"empty store", []string{}, false, []string{"customers", "addresses"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := mockRepo.NewMockHealthRepository(t)
			repo.EXPECT().Ping(ctx).Return(nil)
			repo.EXPECT().ExistingTables(ctx, usecase.RequiredTables).Return(tt.existing, nil)

			health, err := NewHealthService(repo, discardLogger()).CheckDatabase(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.wantHealthy, health.Healthy)
			assert.Equal(t, tt.existing, health.Tables)
			assert.Equal(t, tt.wantMissing, health.Missing)
		})
	}
}

func TestHealthService_CheckDatabase_PingFails(t *testing.T) {
	ctx := context.Background()
	pingErr := errors.New("connection refused")
	repo := mockRepo.NewMockHealthRepository(t)
	repo.EXPECT().Ping(ctx).Return(pingErr)

	health, err := NewHealthService(repo, discardLogger()).CheckDatabase(ctx)

	assert.Nil(t, health)
	assert.True(t, errors.Is(err, pingErr))
}
