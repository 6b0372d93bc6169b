package sqldb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewHealthRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	tables, err := repo.ExistingTables(ctx, []string{"customers", "orders", "addresses"})
	require.NoError(t, err)
	assert.Equal(t, []string{"customers", "addresses"}, tables)

	require.NoError(t, db.Migrator().DropTable("addresses"))
	tables, err = repo.ExistingTables(ctx, []string{"customers", "addresses"})
	require.NoError(t, err)
	assert.Equal(t, []string{"customers"}, tables)
}
