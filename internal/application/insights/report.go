package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/pkg/format"
)

var itemColumns = []string{
	"Product ID", "Product", "Brand", "Available", "Sell Price", "Buy Price",
	"Profit", "Stock Value", "Margin", "Sell-through",
}

var brandColumns = []string{"Brand", "Total Profit", "Stock Value", "Avg Margin", "SKUs"}

// buildReport aplana una evaluación en filas de texto listas para PDF o XML.
func buildReport(ev *evaluation, version string, now time.Time) *dto.InsightReportDTO {
	report := &dto.InsightReportDTO{
		View:           ev.def.key,
		Title:          ev.def.label,
		Summary:        ev.summary,
		GeneratedAt:    now,
		DatasetVersion: version,
		Total:          ev.total(),
	}
	for _, name := range ev.def.params {
		report.Params = append(report.Params, dto.ReportParamDTO{
			Name:  name,
			Value: ev.params.applied[name].String(),
		})
	}

	if ev.def.key == ViewBrandSummary {
		report.Columns = brandColumns
		for _, b := range ev.brands {
			report.Rows = append(report.Rows, []string{
				brandLabel(b.Brand),
				format.Money(b.TotalProfit),
				format.Money(b.TotalStockValue),
				format.Percent(b.AvgProfitMargin),
				format.Number(decimal.NewFromInt(int64(b.SKUCount)), 0),
			})
		}
		return report
	}

	report.Columns = itemColumns
	for _, r := range ev.rows {
		it := r.Item
		report.Rows = append(report.Rows, []string{
			it.ProductID,
			it.ProductName,
			brandLabel(it.Brand),
			format.Number(it.AvailableQuantity, 0),
			format.Money(it.AverageSellingPrice),
			format.Money(it.AverageBuyingPrice),
			format.Money(r.Profit),
			format.Money(r.StockValue),
			format.Percent(r.ProfitMargin),
			format.Ratio(r.SellThroughRate),
		})
	}
	return report
}
