package insight

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BrandValue valor de inventario de una marca.
type BrandValue struct {
	Brand      string
	StockValue decimal.Decimal
}

// Highlights resumen rápido de rentabilidad del inventario completo.
type Highlights struct {
	TopProfitable     []Row
	StockValueByBrand []BrandValue // orden: valor desc, marca asc
	TotalStockValue   decimal.Decimal
	ItemCount         int
}

// ProfitHighlights calcula los topN productos por profit, el valor de inventario por marca
// y el valor total del inventario.
func ProfitHighlights(rows []Row, topN int) Highlights {
	byBrand := make(map[string]decimal.Decimal)
	for _, r := range rows {
		byBrand[r.Item.Brand] = byBrand[r.Item.Brand].Add(r.StockValue)
	}
	values := make([]BrandValue, 0, len(byBrand))
	for brand, v := range byBrand {
		values = append(values, BrandValue{Brand: brand, StockValue: v})
	}
	sort.Slice(values, func(i, j int) bool {
		if c := values[i].StockValue.Cmp(values[j].StockValue); c != 0 {
			return c > 0
		}
		return values[i].Brand < values[j].Brand
	})

	return Highlights{
		TopProfitable:     TopByProfit(rows, topN),
		StockValueByBrand: values,
		TotalStockValue:   TotalStockValue(rows),
		ItemCount:         len(rows),
	}
}
