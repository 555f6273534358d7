package repository

import (
	"context"

	"github.com/jhoicas/inventory-insight/internal/domain/entity"
)

// InventoryRepository define el puerto de lectura del inventario (DIP).
// Lo implementan la fuente CSV y los adaptadores SQL; el analizador solo conoce este contrato.
type InventoryRepository interface {
	// ListItems devuelve la tabla completa de inventario.
	ListItems(ctx context.Context) ([]entity.InventoryItem, error)
}

// InventoryWriter puerto de escritura usado por la importación (CSV → base de datos).
type InventoryWriter interface {
	// UpsertItems inserta o actualiza por product_id dentro de una sola transacción y
	// devuelve cuántas filas se escribieron.
	UpsertItems(ctx context.Context, items []entity.InventoryItem) (int, error)
}

// InventoryStore combina lectura y escritura (adaptadores SQL).
type InventoryStore interface {
	InventoryRepository
	InventoryWriter
}
