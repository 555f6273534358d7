package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa una fila del inventario tal como llega de la fuente (CSV o base de datos).
// Las cantidades y precios se guardan como decimal para no perder precisión en sumas por marca.
type InventoryItem struct {
	ProductID   string
	ProductName string
	Brand       string // vacío es un grupo válido en el resumen por marca
	Category    string

	AvailableQuantity   decimal.Decimal
	AverageSellingPrice decimal.Decimal // precio unitario de venta
	AverageBuyingPrice  decimal.Decimal // costo unitario
	TotalIncoming       decimal.Decimal
	TotalOutgoing       decimal.Decimal
	DefectiveStock      decimal.Decimal
	TotalSold           decimal.Decimal
	MonthlySaleQuantity decimal.Decimal
	HoldingCost         decimal.Decimal
	AverageStockLevel   decimal.Decimal
	ProfitPerUnit       decimal.Decimal
	ProfitAfterHC       decimal.Decimal

	UpdatedAt time.Time // cero cuando la fuente es un CSV
}

// UnitMargin devuelve precio de venta - costo.
func (i InventoryItem) UnitMargin() decimal.Decimal {
	return i.AverageSellingPrice.Sub(i.AverageBuyingPrice)
}

// DuplicateProductIDs devuelve los product_id que aparecen más de una vez, en orden de
// primera repetición. Los almacenes SQL usan product_id como clave única.
func DuplicateProductIDs(items []InventoryItem) []string {
	seen := make(map[string]int, len(items))
	var dups []string
	for _, it := range items {
		seen[it.ProductID]++
		if seen[it.ProductID] == 2 {
			dups = append(dups, it.ProductID)
		}
	}
	return dups
}
