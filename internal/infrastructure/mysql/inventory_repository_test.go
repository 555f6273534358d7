package mysql_test

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/entity"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/mysql"
)

func newTestRepo(t *testing.T) *mysql.InventoryRepo {
	t.Helper()
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN no definido")
	}
	ctx := context.Background()
	db, err := mysql.NewDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile("migrations/001_inventory_items.sql")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, string(schema))
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "DELETE FROM inventory_items")
	require.NoError(t, err)

	return mysql.NewInventoryRepository(db)
}

func TestInventoryRepo_UpsertYListItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	items := []entity.InventoryItem{
		{ProductID: "P2", Brand: "Zeta", AvailableQuantity: decimal.NewFromInt(3)},
		{ProductID: "P1", Brand: "Acme", AverageSellingPrice: decimal.RequireFromString("9.99")},
	}
	n, err := repo.UpsertItems(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items[0].AvailableQuantity = decimal.NewFromInt(8)
	_, err = repo.UpsertItems(ctx, items[:1])
	require.NoError(t, err)

	got, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "P1", got[0].ProductID)
	assert.True(t, got[0].AverageSellingPrice.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, got[1].AvailableQuantity.Equal(decimal.NewFromInt(8)))
}

func TestInventoryRepo_UpsertRechazaProductIDRepetidos(t *testing.T) {
	// La validación ocurre antes de abrir la transacción: no requiere base de datos.
	repo := mysql.NewInventoryRepository(nil)
	n, err := repo.UpsertItems(context.Background(), []entity.InventoryItem{
		{ProductID: "A2", Brand: "Acme"},
		{ProductID: "A2", Brand: "Acme"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, n)
}
