package insight

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BrandTotals agregado de una marca.
type BrandTotals struct {
	Brand           string
	TotalProfit     decimal.Decimal
	TotalStockValue decimal.Decimal     // Σ costo * cantidad: inversión en inventario de la marca
	AvgProfitMargin decimal.NullDecimal // media de los márgenes definidos; inválido si ninguno lo está
	SKUCount        int                 // product_id distintos
}

// BrandSummary agrupa por marca. Cada fila cuenta exactamente en una marca; la marca vacía
// forma su propio grupo. Orden: profit total desc, marca asc.
func BrandSummary(rows []Row) []BrandTotals {
	type acc struct {
		totals      BrandTotals
		marginSum   decimal.Decimal
		marginCount int64
		skus        map[string]struct{}
	}

	groups := make(map[string]*acc)
	for _, r := range rows {
		brand := r.Item.Brand
		g, ok := groups[brand]
		if !ok {
			g = &acc{
				totals: BrandTotals{Brand: brand, TotalProfit: decimal.Zero, TotalStockValue: decimal.Zero},
				skus:   make(map[string]struct{}),
			}
			groups[brand] = g
		}
		g.totals.TotalProfit = g.totals.TotalProfit.Add(r.Profit)
		g.totals.TotalStockValue = g.totals.TotalStockValue.Add(r.StockValue)
		if r.ProfitMargin.Valid {
			g.marginSum = g.marginSum.Add(r.ProfitMargin.Decimal)
			g.marginCount++
		}
		g.skus[r.Item.ProductID] = struct{}{}
	}

	out := make([]BrandTotals, 0, len(groups))
	for _, g := range groups {
		t := g.totals
		t.SKUCount = len(g.skus)
		if g.marginCount > 0 {
			t.AvgProfitMargin = decimal.NewNullDecimal(g.marginSum.Div(decimal.NewFromInt(g.marginCount)))
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalProfit.Cmp(out[j].TotalProfit); c != 0 {
			return c > 0
		}
		return out[i].Brand < out[j].Brand
	})
	return out
}
