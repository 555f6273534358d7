package insights_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/insights"
	"github.com/jhoicas/inventory-insight/internal/application/inventory"
	"github.com/jhoicas/inventory-insight/internal/application/ports"
	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/entity"
	"github.com/jhoicas/inventory-insight/internal/domain/insight"
	"github.com/jhoicas/inventory-insight/pkg/config"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeStore struct {
	snap *inventory.Snapshot
}

func (f *fakeStore) Snapshot() (*inventory.Snapshot, error) {
	if f.snap == nil {
		return nil, domain.ErrDatasetNotReady
	}
	return f.snap, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
	return nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}
func (brokenCache) Set(context.Context, string, []byte) error { return errors.New("connection refused") }

type fakeExporter struct {
	last *dto.InsightReportDTO
}

func (f *fakeExporter) Export(_ context.Context, r *dto.InsightReportDTO) ([]byte, error) {
	f.last = r
	return []byte("<report/>"), nil
}
func (f *fakeExporter) ContentType() string { return "application/xml" }
func (f *fakeExporter) Extension() string   { return "xml" }

// ── Fixtures ──────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(id, name, brand, qty, sell, buy, sold, monthly, avgStock string) entity.InventoryItem {
	return entity.InventoryItem{
		ProductID: id, ProductName: name, Brand: brand,
		AvailableQuantity:   d(qty),
		AverageSellingPrice: d(sell),
		AverageBuyingPrice:  d(buy),
		TotalSold:           d(sold),
		MonthlySaleQuantity: d(monthly),
		AverageStockLevel:   d(avgStock),
	}
}

func fixtureItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		item("L1", "Linterna", "Acme", "10", "15", "10", "5", "3", "0"),   // margen 50, profit 25
		item("L2", "Lámpara", "Acme", "50", "12", "10", "10", "3", "0"),   // margen 20, profit 20
		item("O1", "Olla", "Bolt", "300", "10.5", "10", "2", "1", "0"),    // margen 5, valor 3000
		item("F1", "Filtro", "", "100", "11.5", "10", "130", "45", "100"), // rate 1.3, profit 195
		item("Z1", "Regalo", "Acme", "5", "3", "0", "0", "0", "0"),        // margen indefinido
	}
}

func defaults() config.InsightConfig {
	return config.InsightConfig{
		LowStockQuantity: 60, LowStockMargin: 20,
		OverstockQuantity: 200, OverstockMargin: 10,
		Velocity: 1.2, MinMonthlySales: 40,
	}
}

func newUseCase(cache ports.InsightCache, exporters map[string]ports.ReportExporter) *insights.UseCase {
	items := fixtureItems()
	store := &fakeStore{snap: &inventory.Snapshot{Items: items, Rows: insight.DeriveAll(items), Version: "v1"}}
	return insights.NewUseCase(store, cache, exporters, defaults(), nil)
}

func rowIDs(rows []dto.InsightRowDTO) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ProductID)
	}
	return out
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestListViews(t *testing.T) {
	views := newUseCase(nil, nil).ListViews()
	require.Len(t, views, 4)
	assert.Equal(t, insights.ViewLowStock, views[0].Key)
	assert.Equal(t, "Low-Stock Profitable", views[0].Label)
	assert.Equal(t, []string{"velocity_threshold", "min_monthly_sales"}, views[2].Params)
}

func TestGetView_LowStockConValoresPorDefecto(t *testing.T) {
	out, err := newUseCase(nil, nil).GetView(context.Background(), insights.ViewLowStock, dto.InsightQuery{})
	require.NoError(t, err)

	assert.Equal(t, "Low-Stock Profitable", out.Label)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 20, out.Limit)
	assert.Equal(t, []string{"L1", "L2"}, rowIDs(out.Rows))
	assert.True(t, out.Params["quantity_threshold"].Equal(decimal.NewFromInt(60)))
	assert.Contains(t, out.Summary, "Linterna")
	assert.Equal(t, "v1", out.DatasetVersion)
	assert.Nil(t, out.Brands)
}

func TestGetView_UmbralesDeLaQuery(t *testing.T) {
	q := dto.InsightQuery{MarginThreshold: decimal.NewNullDecimal(d("30"))}
	out, err := newUseCase(nil, nil).GetView(context.Background(), insights.ViewLowStock, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"L1"}, rowIDs(out.Rows))
	assert.True(t, out.Params["margin_threshold"].Equal(d("30")))
}

func TestGetView_LimitCortaFilasPeroNoElTotal(t *testing.T) {
	out, err := newUseCase(nil, nil).GetView(context.Background(), insights.ViewLowStock, dto.InsightQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, out.Rows, 1)
	assert.Equal(t, 2, out.Total)

	out, err = newUseCase(nil, nil).GetView(context.Background(), insights.ViewLowStock, dto.InsightQuery{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 200, out.Limit)
}

func TestGetView_OverstockYFastMoving(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()

	over, err := uc.GetView(ctx, insights.ViewOverstock, dto.InsightQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"O1"}, rowIDs(over.Rows))
	assert.Contains(t, over.Summary, "$3,000.00")

	fast, err := uc.GetView(ctx, insights.ViewFastMoving, dto.InsightQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"F1"}, rowIDs(fast.Rows))
	require.True(t, fast.Rows[0].SellThroughRate.Valid)
	assert.True(t, fast.Rows[0].SellThroughRate.Decimal.Equal(d("1.3")))
	assert.Contains(t, fast.Summary, "1.30x")
}

func TestGetView_BrandSummary(t *testing.T) {
	out, err := newUseCase(nil, nil).GetView(context.Background(), insights.ViewBrandSummary, dto.InsightQuery{})
	require.NoError(t, err)
	require.Len(t, out.Brands, 3)
	assert.Nil(t, out.Rows)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, "3 brands analysed.", out.Summary)
	// Profit: "" = 195, Acme = 45, Bolt = 1.
	assert.Equal(t, "", out.Brands[0].Brand)
	assert.Equal(t, "Acme", out.Brands[1].Brand)
	assert.Equal(t, 3, out.Brands[1].SKUCount)
	assert.True(t, out.Brands[1].AvgProfitMargin.Decimal.Equal(d("35")))
}

func TestGetView_Errores(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()

	_, err := uc.GetView(ctx, "dead-stock", dto.InsightQuery{})
	assert.ErrorIs(t, err, domain.ErrUnknownView)

	_, err = uc.GetView(ctx, insights.ViewFastMoving, dto.InsightQuery{VelocityThreshold: decimal.NewNullDecimal(decimal.Zero)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetView(ctx, insights.ViewOverstock, dto.InsightQuery{QuantityThreshold: decimal.NewNullDecimal(d("-1"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetView(ctx, insights.ViewLowStock, dto.InsightQuery{Limit: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	empty := insights.NewUseCase(&fakeStore{}, nil, nil, defaults(), nil)
	_, err = empty.GetView(ctx, insights.ViewLowStock, dto.InsightQuery{})
	assert.ErrorIs(t, err, domain.ErrDatasetNotReady)
}

func TestGetView_UsaLaCache(t *testing.T) {
	cache := newMemCache()
	uc := newUseCase(cache, nil)
	ctx := context.Background()

	first, err := uc.GetView(ctx, insights.ViewLowStock, dto.InsightQuery{})
	require.NoError(t, err)
	second, err := uc.GetView(ctx, insights.ViewLowStock, dto.InsightQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, rowIDs(first.Rows), rowIDs(second.Rows))
	assert.Equal(t, first.Summary, second.Summary)

	// Otros umbrales, otra clave.
	_, err = uc.GetView(ctx, insights.ViewLowStock, dto.InsightQuery{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
}

func TestGetView_FalloDeCacheNoRompeLaVista(t *testing.T) {
	out, err := newUseCase(brokenCache{}, nil).GetView(context.Background(), insights.ViewLowStock, dto.InsightQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}

func TestGetChart(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()

	pie, err := uc.GetChart(ctx, insights.ViewBrandSummary, dto.InsightQuery{})
	require.NoError(t, err)
	assert.Equal(t, "pie", pie.Kind)
	assert.Equal(t, "Inventory Value by Brand", pie.Title)
	require.Len(t, pie.Points, 3)
	assert.Equal(t, "(no brand)", pie.Points[0].Label)

	bar, err := uc.GetChart(ctx, insights.ViewLowStock, dto.InsightQuery{})
	require.NoError(t, err)
	assert.Equal(t, "bar", bar.Kind)
	require.Len(t, bar.Points, 2)
	assert.Equal(t, "Linterna", bar.Points[0].Label)
	assert.True(t, bar.Points[0].Margin.Decimal.Equal(d("50")))

	_, err = uc.GetChart(ctx, "nope", dto.InsightQuery{})
	assert.ErrorIs(t, err, domain.ErrUnknownView)
}

func TestGetChart_BarrasSiguenElOrdenDeLaVista(t *testing.T) {
	// 20 coincidencias low-stock: el margen baja y el profit sube con el índice.
	items := make([]entity.InventoryItem, 0, 20)
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("P%02d", i)
		sell := decimal.NewFromInt(int64(50 - i)).String()
		sold := decimal.NewFromInt(int64((i + 1) * 10)).String()
		items = append(items, item(id, id, "Acme", "10", sell, "10", sold, "1", "0"))
	}
	store := &fakeStore{snap: &inventory.Snapshot{Items: items, Rows: insight.DeriveAll(items), Version: "v1"}}
	uc := insights.NewUseCase(store, nil, nil, defaults(), nil)
	ctx := context.Background()

	view, err := uc.GetView(ctx, insights.ViewLowStock, dto.InsightQuery{Limit: 15})
	require.NoError(t, err)
	assert.Equal(t, 20, view.Total)
	require.Len(t, view.Rows, 15)

	bar, err := uc.GetChart(ctx, insights.ViewLowStock, dto.InsightQuery{})
	require.NoError(t, err)
	require.Len(t, bar.Points, 15)

	labels := make([]string, 0, len(bar.Points))
	for _, p := range bar.Points {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, rowIDs(view.Rows), labels)
	assert.Equal(t, "P00", labels[0])
	assert.Equal(t, "P14", labels[14])
	assert.True(t, bar.Points[0].Value.LessThan(bar.Points[14].Value))
}

func TestGetHighlights(t *testing.T) {
	uc := newUseCase(nil, nil)
	h, err := uc.GetHighlights(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "L1"}, rowIDs(h.TopProfitable))
	assert.Equal(t, 5, h.ItemCount)
	// 100 + 500 + 3000 + 1000 + 0
	assert.True(t, h.TotalStockValue.Equal(d("4600")))
	assert.Equal(t, "Bolt", h.StockValueByBrand[0].Brand)

	def, err := uc.GetHighlights(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, def.TopProfitable, 5)

	_, err = uc.GetHighlights(context.Background(), -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetOverview_CalculaLasCuatroVistas(t *testing.T) {
	out, err := newUseCase(nil, nil).GetOverview(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, out.Views, 4)

	totals := map[string]int{}
	for _, v := range out.Views {
		totals[v.View] = v.Total
		assert.NotEmpty(t, v.Summary)
	}
	assert.Equal(t, map[string]int{
		insights.ViewLowStock:     2,
		insights.ViewOverstock:    1,
		insights.ViewFastMoving:   1,
		insights.ViewBrandSummary: 3,
	}, totals)
	assert.Equal(t, insights.ViewLowStock, out.Views[0].View)
	assert.Len(t, out.Highlights.TopProfitable, 3)
	assert.Equal(t, "v1", out.DatasetVersion)
}

func TestListItems_Paginacion(t *testing.T) {
	uc := newUseCase(nil, nil)
	page, err := uc.ListItems(context.Background(), dto.PageRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"Z1"}, rowIDs(page.Items))
	assert.Equal(t, 5, page.Page.Total)
	assert.False(t, page.Items[0].ProfitMargin.Valid)

	page, err = uc.ListItems(context.Background(), dto.PageRequest{Offset: 50})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 20, page.Page.Limit)
}

func TestExport(t *testing.T) {
	exp := &fakeExporter{}
	uc := newUseCase(nil, map[string]ports.ReportExporter{"xml": exp})
	ctx := context.Background()

	res, err := uc.Export(ctx, insights.ViewLowStock, dto.InsightQuery{Limit: 1}, "XML")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Filename, "low-stock-"))
	assert.True(t, strings.HasSuffix(res.Filename, ".xml"))
	assert.Equal(t, "application/xml", res.ContentType)

	require.NotNil(t, exp.last)
	assert.Len(t, exp.last.Rows, 2, "el reporte incluye todas las coincidencias")
	assert.Equal(t, "Low-Stock Profitable", exp.last.Title)
	assert.Equal(t, "$25.00", exp.last.Rows[0][6])
	assert.Equal(t, "50.00%", exp.last.Rows[0][8])

	_, err = uc.Export(ctx, insights.ViewLowStock, dto.InsightQuery{}, "pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupported)

	_, err = uc.Export(ctx, "nope", dto.InsightQuery{}, "xml")
	assert.ErrorIs(t, err, domain.ErrUnknownView)
}
