package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/entity"
	"github.com/jhoicas/inventory-insight/internal/domain/repository"
)

var _ repository.InventoryStore = (*InventoryRepo)(nil)

const selectItems = `
	SELECT
	    product_id, product_name, brand, category,
	    available_quantity, average_selling_price, average_buying_price,
	    total_incoming, total_outgoing, defective_stock,
	    total_sold, monthly_sale_quantity, holding_cost, average_stock_level,
	    profit_per_unit, profit_after_hc, updated_at
	FROM inventory_items
	ORDER BY product_id`

const upsertItem = `
	INSERT INTO inventory_items (
	    id, product_id, product_name, brand, category,
	    available_quantity, average_selling_price, average_buying_price,
	    total_incoming, total_outgoing, defective_stock,
	    total_sold, monthly_sale_quantity, holding_cost, average_stock_level,
	    profit_per_unit, profit_after_hc, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	ON CONFLICT (product_id) DO UPDATE SET
	    product_name          = EXCLUDED.product_name,
	    brand                 = EXCLUDED.brand,
	    category              = EXCLUDED.category,
	    available_quantity    = EXCLUDED.available_quantity,
	    average_selling_price = EXCLUDED.average_selling_price,
	    average_buying_price  = EXCLUDED.average_buying_price,
	    total_incoming        = EXCLUDED.total_incoming,
	    total_outgoing        = EXCLUDED.total_outgoing,
	    defective_stock       = EXCLUDED.defective_stock,
	    total_sold            = EXCLUDED.total_sold,
	    monthly_sale_quantity = EXCLUDED.monthly_sale_quantity,
	    holding_cost          = EXCLUDED.holding_cost,
	    average_stock_level   = EXCLUDED.average_stock_level,
	    profit_per_unit       = EXCLUDED.profit_per_unit,
	    profit_after_hc       = EXCLUDED.profit_after_hc,
	    updated_at            = EXCLUDED.updated_at`

// InventoryRepo implementación de InventoryStore sobre PostgreSQL.
type InventoryRepo struct {
	q  Querier
	tx *TxRunner
}

// NewInventoryRepository construye el adaptador de inventario.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{q: pool, tx: NewTxRunner(pool)}
}

// ListItems devuelve toda la tabla inventory_items ordenada por product_id.
func (r *InventoryRepo) ListItems(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, selectItems)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListItems: %w", err)
	}
	defer rows.Close()

	items := []entity.InventoryItem{}
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ProductID, &it.ProductName, &it.Brand, &it.Category,
			&it.AvailableQuantity, &it.AverageSellingPrice, &it.AverageBuyingPrice,
			&it.TotalIncoming, &it.TotalOutgoing, &it.DefectiveStock,
			&it.TotalSold, &it.MonthlySaleQuantity, &it.HoldingCost, &it.AverageStockLevel,
			&it.ProfitPerUnit, &it.ProfitAfterHC, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("inventory.ListItems scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory.ListItems rows: %w", err)
	}
	return items, nil
}

// UpsertItems escribe todos los ítems en un batch dentro de una transacción.
func (r *InventoryRepo) UpsertItems(ctx context.Context, items []entity.InventoryItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if dups := entity.DuplicateProductIDs(items); len(dups) > 0 {
		return 0, fmt.Errorf("%w: product_id repetidos: %s", domain.ErrInvalidInput, strings.Join(dups, ", "))
	}
	now := time.Now()
	written := 0
	err := r.tx.Run(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, it := range items {
			batch.Queue(upsertItem,
				uuid.New(), it.ProductID, it.ProductName, it.Brand, it.Category,
				it.AvailableQuantity, it.AverageSellingPrice, it.AverageBuyingPrice,
				it.TotalIncoming, it.TotalOutgoing, it.DefectiveStock,
				it.TotalSold, it.MonthlySaleQuantity, it.HoldingCost, it.AverageStockLevel,
				it.ProfitPerUnit, it.ProfitAfterHC, now,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for i := range items {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return fmt.Errorf("inventory.UpsertItems fila %s: %w", items[i].ProductID, err)
			}
			written += int(tag.RowsAffected())
		}
		return br.Close()
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
