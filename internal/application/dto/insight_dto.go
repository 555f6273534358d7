package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightQuery parámetros opcionales de una vista. Un campo no válido (Valid=false) toma el
// valor por defecto configurado.
type InsightQuery struct {
	QuantityThreshold decimal.NullDecimal `json:"quantity_threshold"`
	MarginThreshold   decimal.NullDecimal `json:"margin_threshold"`
	VelocityThreshold decimal.NullDecimal `json:"velocity_threshold"`
	MinMonthlySales   decimal.NullDecimal `json:"min_monthly_sales"`
	Limit             int                 `json:"limit"`
}

// InsightRowDTO ítem de inventario con sus métricas derivadas.
type InsightRowDTO struct {
	ProductID           string              `json:"product_id"`
	ProductName         string              `json:"product_name"`
	Brand               string              `json:"brand"`
	Category            string              `json:"category,omitempty"`
	AvailableQuantity   decimal.Decimal     `json:"available_quantity"`
	AverageSellingPrice decimal.Decimal     `json:"average_selling_price"`
	AverageBuyingPrice  decimal.Decimal     `json:"average_buying_price"`
	TotalSold           decimal.Decimal     `json:"total_sold"`
	MonthlySaleQuantity decimal.Decimal     `json:"monthly_sale_quantity"`
	AverageStockLevel   decimal.Decimal     `json:"average_stock_level"`
	Profit              decimal.Decimal     `json:"profit"`
	StockValue          decimal.Decimal     `json:"stock_value"`
	ProfitMargin        decimal.NullDecimal `json:"profit_margin"`     // null si el costo es cero
	SellThroughRate     decimal.NullDecimal `json:"sell_through_rate"` // null si no hay stock promedio
}

// BrandSummaryDTO fila de la vista brand-summary.
type BrandSummaryDTO struct {
	Brand           string              `json:"brand"`
	TotalProfit     decimal.Decimal     `json:"total_profit"`
	TotalStockValue decimal.Decimal     `json:"total_stock_value"`
	AvgProfitMargin decimal.NullDecimal `json:"avg_profit_margin"`
	SKUCount        int                 `json:"sku_count"`
}

// InsightViewDTO respuesta de GET /api/insights/:view.
// Rows se llena en las vistas por ítem; Brands solo en brand-summary.
type InsightViewDTO struct {
	View           string                     `json:"view"`
	Label          string                     `json:"label"`
	Params         map[string]decimal.Decimal `json:"params"`
	Total          int                        `json:"total"` // coincidencias totales, sin límite
	Limit          int                        `json:"limit"`
	Summary        string                     `json:"summary"`
	Rows           []InsightRowDTO            `json:"rows,omitempty"`
	Brands         []BrandSummaryDTO          `json:"brands,omitempty"`
	DatasetVersion string                     `json:"dataset_version"`
}

// ViewInfoDTO describe una vista disponible.
type ViewInfoDTO struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Params      []string `json:"params"`
}

// ChartPointDTO punto de un gráfico. Margin solo aplica a barras de ítems.
type ChartPointDTO struct {
	Label  string              `json:"label"`
	Value  decimal.Decimal     `json:"value"`
	Margin decimal.NullDecimal `json:"margin,omitempty"`
}

// ChartDTO serie lista para graficar en el cliente.
type ChartDTO struct {
	View   string          `json:"view"`
	Kind   string          `json:"kind"` // bar | pie
	Title  string          `json:"title"`
	Points []ChartPointDTO `json:"points"`
}

// BrandValueDTO valor de inventario por marca.
type BrandValueDTO struct {
	Brand      string          `json:"brand"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// HighlightsDTO respuesta de GET /api/insights/highlights.
type HighlightsDTO struct {
	TopProfitable     []InsightRowDTO `json:"top_profitable"`
	StockValueByBrand []BrandValueDTO `json:"stock_value_by_brand"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
	ItemCount         int             `json:"item_count"`
	DatasetVersion    string          `json:"dataset_version"`
}

// ViewCountDTO conteo de una vista para el overview.
type ViewCountDTO struct {
	View    string `json:"view"`
	Label   string `json:"label"`
	Total   int    `json:"total"`
	Summary string `json:"summary"`
}

// OverviewDTO respuesta de GET /api/insights/overview.
type OverviewDTO struct {
	Views          []ViewCountDTO `json:"views"`
	Highlights     HighlightsDTO  `json:"highlights"`
	DatasetVersion string         `json:"dataset_version"`
}

// ItemsPageDTO listado paginado del inventario.
type ItemsPageDTO struct {
	Items []InsightRowDTO `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ReloadResultDTO respuesta de POST /api/inventory/reload.
type ReloadResultDTO struct {
	Items          int       `json:"items"`
	DatasetVersion string    `json:"dataset_version"`
	LoadedAt       time.Time `json:"loaded_at"`
}

// ReportParamDTO parámetro aplicado, ya formateado.
type ReportParamDTO struct {
	Name  string
	Value string
}

// InsightReportDTO reporte tabular independiente del formato de salida (PDF, XML).
type InsightReportDTO struct {
	View           string
	Title          string
	Summary        string
	GeneratedAt    time.Time
	DatasetVersion string
	Params         []ReportParamDTO
	Columns        []string
	Rows           [][]string
	Total          int
}

// ExportResult documento generado.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}
