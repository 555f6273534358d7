package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	    product_name          = VALUES(product_name),
	    brand                 = VALUES(brand),
	    category              = VALUES(category),
	    available_quantity    = VALUES(available_quantity),
	    average_selling_price = VALUES(average_selling_price),
	    average_buying_price  = VALUES(average_buying_price),
	    total_incoming        = VALUES(total_incoming),
	    total_outgoing        = VALUES(total_outgoing),
	    defective_stock       = VALUES(defective_stock),
	    total_sold            = VALUES(total_sold),
	    monthly_sale_quantity = VALUES(monthly_sale_quantity),
	    holding_cost          = VALUES(holding_cost),
	    average_stock_level   = VALUES(average_stock_level),
	    profit_per_unit       = VALUES(profit_per_unit),
	    profit_after_hc       = VALUES(profit_after_hc),
	    updated_at            = VALUES(updated_at)`

// InventoryRepo implementación de InventoryStore sobre MySQL (database/sql).
type InventoryRepo struct {
	db *sql.DB
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// ListItems devuelve toda la tabla inventory_items ordenada por product_id.
func (r *InventoryRepo) ListItems(ctx context.Context) ([]entity.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, selectItems)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
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
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpsertItems inserta o actualiza por product_id en una sola transacción.
func (r *InventoryRepo) UpsertItems(ctx context.Context, items []entity.InventoryItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if dups := entity.DuplicateProductIDs(items); len(dups) > 0 {
		return 0, fmt.Errorf("%w: product_id repetidos: %s", domain.ErrInvalidInput, strings.Join(dups, ", "))
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertItem)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, it := range items {
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(), it.ProductID, it.ProductName, it.Brand, it.Category,
			it.AvailableQuantity, it.AverageSellingPrice, it.AverageBuyingPrice,
			it.TotalIncoming, it.TotalOutgoing, it.DefectiveStock,
			it.TotalSold, it.MonthlySaleQuantity, it.HoldingCost, it.AverageStockLevel,
			it.ProfitPerUnit, it.ProfitAfterHC, now,
		); err != nil {
			return 0, fmt.Errorf("upsert %s: %w", it.ProductID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(items), nil
}
