package insights

import (
	"fmt"

	"github.com/jhoicas/inventory-insight/internal/domain/insight"
	"github.com/jhoicas/inventory-insight/pkg/format"
)

const noBrand = "(no brand)"

// summarize frase de una línea que acompaña cada vista.
func summarize(ev *evaluation) string {
	switch ev.def.key {
	case ViewLowStock:
		if len(ev.rows) == 0 {
			return "No low-stock items clear the margin threshold."
		}
		top := ev.rows[0]
		return fmt.Sprintf("Top restock candidate: %s (%s margin, %s units left).",
			itemLabel(top), format.Percent(top.ProfitMargin), format.Number(top.Item.AvailableQuantity, 0))
	case ViewOverstock:
		if len(ev.rows) == 0 {
			return "No over-stocked low-margin items."
		}
		return fmt.Sprintf("%s tied up in %d over-stocked low-margin items.",
			format.Money(insight.TotalStockValue(ev.rows)), len(ev.rows))
	case ViewFastMoving:
		if len(ev.rows) == 0 {
			return "No items exceed the velocity threshold."
		}
		top := ev.rows[0]
		return fmt.Sprintf("Fastest mover: %s (sell-through %s).", itemLabel(top), format.Ratio(top.SellThroughRate))
	case ViewBrandSummary:
		if len(ev.brands) == 1 {
			return "1 brand analysed."
		}
		return fmt.Sprintf("%d brands analysed.", len(ev.brands))
	}
	return ""
}

func itemLabel(r insight.Row) string {
	if r.Item.ProductName != "" {
		return r.Item.ProductName
	}
	return r.Item.ProductID
}

func brandLabel(brand string) string {
	if brand == "" {
		return noBrand
	}
	return brand
}
