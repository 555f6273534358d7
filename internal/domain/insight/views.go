package insight

import "sort"

// LowStockProfitable devuelve los ítems rentables que se están quedando sin existencias:
// cantidad <= QuantityThreshold y margen >= MarginThreshold.
// Orden: margen desc, profit desc, product_id asc.
func LowStockProfitable(rows []Row, p LowStockParams) []Row {
	out := make([]Row, 0)
	for _, r := range rows {
		if !r.ProfitMargin.Valid {
			continue
		}
		if r.Item.AvailableQuantity.LessThanOrEqual(p.QuantityThreshold) &&
			r.ProfitMargin.Decimal.GreaterThanOrEqual(p.MarginThreshold) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.ProfitMargin.Decimal.Cmp(b.ProfitMargin.Decimal); c != 0 {
			return c > 0
		}
		if c := a.Profit.Cmp(b.Profit); c != 0 {
			return c > 0
		}
		return a.Item.ProductID < b.Item.ProductID
	})
	return out
}

// OverstockLowProfit devuelve los ítems que ocupan espacio sin dar retorno:
// cantidad >= QuantityThreshold y margen <= MarginThreshold.
// Orden: cantidad desc, margen asc, product_id asc.
func OverstockLowProfit(rows []Row, p OverstockParams) []Row {
	out := make([]Row, 0)
	for _, r := range rows {
		if !r.ProfitMargin.Valid {
			continue
		}
		if r.Item.AvailableQuantity.GreaterThanOrEqual(p.QuantityThreshold) &&
			r.ProfitMargin.Decimal.LessThanOrEqual(p.MarginThreshold) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Item.AvailableQuantity.Cmp(b.Item.AvailableQuantity); c != 0 {
			return c > 0
		}
		if c := a.ProfitMargin.Decimal.Cmp(b.ProfitMargin.Decimal); c != 0 {
			return c < 0
		}
		return a.Item.ProductID < b.Item.ProductID
	})
	return out
}

// FastMoving devuelve los productos con alta rotación: stock promedio > 0,
// ventas mensuales >= MinMonthlySales y sell-through >= VelocityThreshold.
// Orden: sell-through desc, product_id asc.
func FastMoving(rows []Row, p FastMovingParams) []Row {
	out := make([]Row, 0)
	for _, r := range rows {
		if !r.SellThroughRate.Valid {
			continue
		}
		if r.Item.MonthlySaleQuantity.GreaterThanOrEqual(p.MinMonthlySales) &&
			r.SellThroughRate.Decimal.GreaterThanOrEqual(p.VelocityThreshold) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.SellThroughRate.Decimal.Cmp(b.SellThroughRate.Decimal); c != 0 {
			return c > 0
		}
		return a.Item.ProductID < b.Item.ProductID
	})
	return out
}

// TopByProfit devuelve hasta n filas ordenadas por profit desc (product_id asc en empates).
// n <= 0 devuelve todas.
func TopByProfit(rows []Row, n int) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Profit.Cmp(out[j].Profit); c != 0 {
			return c > 0
		}
		return out[i].Item.ProductID < out[j].Item.ProductID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
