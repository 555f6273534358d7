package insights

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/domain/insight"
)

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func roundNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(2))
}

func toRowDTO(r insight.Row) dto.InsightRowDTO {
	it := r.Item
	return dto.InsightRowDTO{
		ProductID:           it.ProductID,
		ProductName:         it.ProductName,
		Brand:               it.Brand,
		Category:            it.Category,
		AvailableQuantity:   it.AvailableQuantity,
		AverageSellingPrice: round2(it.AverageSellingPrice),
		AverageBuyingPrice:  round2(it.AverageBuyingPrice),
		TotalSold:           it.TotalSold,
		MonthlySaleQuantity: it.MonthlySaleQuantity,
		AverageStockLevel:   it.AverageStockLevel,
		Profit:              round2(r.Profit),
		StockValue:          round2(r.StockValue),
		ProfitMargin:        roundNull(r.ProfitMargin),
		SellThroughRate:     roundNull(r.SellThroughRate),
	}
}

func toRowDTOs(rows []insight.Row) []dto.InsightRowDTO {
	out := make([]dto.InsightRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRowDTO(r))
	}
	return out
}

func toBrandDTOs(brands []insight.BrandTotals) []dto.BrandSummaryDTO {
	out := make([]dto.BrandSummaryDTO, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.BrandSummaryDTO{
			Brand:           b.Brand,
			TotalProfit:     round2(b.TotalProfit),
			TotalStockValue: round2(b.TotalStockValue),
			AvgProfitMargin: roundNull(b.AvgProfitMargin),
			SKUCount:        b.SKUCount,
		})
	}
	return out
}

func toHighlightsDTO(h insight.Highlights, version string) dto.HighlightsDTO {
	values := make([]dto.BrandValueDTO, 0, len(h.StockValueByBrand))
	for _, v := range h.StockValueByBrand {
		values = append(values, dto.BrandValueDTO{Brand: v.Brand, StockValue: round2(v.StockValue)})
	}
	return dto.HighlightsDTO{
		TopProfitable:     toRowDTOs(h.TopProfitable),
		StockValueByBrand: values,
		TotalStockValue:   round2(h.TotalStockValue),
		ItemCount:         h.ItemCount,
		DatasetVersion:    version,
	}
}
