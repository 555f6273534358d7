package insight

import (
	"github.com/jhoicas/inventory-insight/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Row es un ítem de inventario enriquecido con sus métricas derivadas.
type Row struct {
	Item            entity.InventoryItem
	Profit          decimal.Decimal
	StockValue      decimal.Decimal
	ProfitMargin    decimal.NullDecimal // Valid=false si el costo es cero
	SellThroughRate decimal.NullDecimal // Valid=false si el stock promedio no es positivo
}

// Derive calcula las métricas derivadas de un ítem.
func Derive(item entity.InventoryItem) Row {
	unitMargin := item.UnitMargin()
	row := Row{
		Item:       item,
		Profit:     unitMargin.Mul(item.TotalSold),
		StockValue: item.AvailableQuantity.Mul(item.AverageBuyingPrice),
	}
	if !item.AverageBuyingPrice.IsZero() {
		row.ProfitMargin = decimal.NewNullDecimal(unitMargin.Div(item.AverageBuyingPrice).Mul(hundred))
	}
	if item.AverageStockLevel.IsPositive() {
		row.SellThroughRate = decimal.NewNullDecimal(item.TotalSold.Div(item.AverageStockLevel))
	}
	return row
}

// DeriveAll aplica Derive a toda la tabla conservando el orden de entrada.
func DeriveAll(items []entity.InventoryItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Derive(it))
	}
	return rows
}

// TotalStockValue suma StockValue de las filas dadas.
func TotalStockValue(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.StockValue)
	}
	return total
}
