// Package insights expone las vistas de análisis del inventario (stock bajo rentable,
// sobre-stock de bajo margen, alta rotación y resumen por marca) sobre el snapshot vigente.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/inventory"
	"github.com/jhoicas/inventory-insight/internal/application/ports"
	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/insight"
	"github.com/jhoicas/inventory-insight/pkg/config"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

const (
	chartTopN         = 15 // barras en el gráfico de profit
	DefaultHighlights = 5
)

// SnapshotProvider fuente del dataset vigente (inventory.Store).
type SnapshotProvider interface {
	Snapshot() (*inventory.Snapshot, error)
}

// UseCase caso de uso de las vistas de análisis.
type UseCase struct {
	store     SnapshotProvider
	cache     ports.InsightCache
	exporters map[string]ports.ReportExporter
	defaults  config.InsightConfig
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso. cache puede ser nil (sin caché); exporters se indexa
// por formato ("pdf", "xml").
func NewUseCase(
	store SnapshotProvider,
	cache ports.InsightCache,
	exporters map[string]ports.ReportExporter,
	defaults config.InsightConfig,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if exporters == nil {
		exporters = map[string]ports.ReportExporter{}
	}
	return &UseCase{
		store:     store,
		cache:     cache,
		exporters: exporters,
		defaults:  defaults,
		log:       log.Named("insights"),
		now:       time.Now,
	}
}

// viewParams umbrales resueltos (query o valores por defecto) de una vista.
type viewParams struct {
	low     insight.LowStockParams
	over    insight.OverstockParams
	fast    insight.FastMovingParams
	applied map[string]decimal.Decimal
}

// evaluation resultado completo (sin límite) de una vista.
type evaluation struct {
	def     viewDef
	params  viewParams
	rows    []insight.Row
	brands  []insight.BrandTotals
	summary string
}

func (e *evaluation) total() int {
	if e.def.key == ViewBrandSummary {
		return len(e.brands)
	}
	return len(e.rows)
}

// ListViews devuelve el catálogo de vistas.
func (uc *UseCase) ListViews() []dto.ViewInfoDTO {
	out := make([]dto.ViewInfoDTO, 0, len(registry))
	for _, v := range registry {
		out = append(out, dto.ViewInfoDTO{
			Key:         v.key,
			Label:       v.label,
			Description: v.description,
			Params:      append([]string{}, v.params...),
		})
	}
	return out
}

// GetView calcula una vista. Rows se corta en limit (20 por defecto, máximo 200); Total
// siempre es el número completo de coincidencias.
func (uc *UseCase) GetView(ctx context.Context, key string, q dto.InsightQuery) (*dto.InsightViewDTO, error) {
	def, ok := lookupView(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, key)
	}
	limit, err := normalizeLimit(q.Limit)
	if err != nil {
		return nil, err
	}
	params, err := uc.resolveParams(def, q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("view:%s:%s:%s:%d", snap.Version, def.key, paramsKey(def, params), limit)
	var cached dto.InsightViewDTO
	if uc.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	ev := evaluate(def, snap.Rows, params)
	out := &dto.InsightViewDTO{
		View:           def.key,
		Label:          def.label,
		Params:         params.applied,
		Total:          ev.total(),
		Limit:          limit,
		Summary:        ev.summary,
		DatasetVersion: snap.Version,
	}
	if def.key == ViewBrandSummary {
		out.Brands = toBrandDTOs(capSlice(ev.brands, limit))
	} else {
		out.Rows = toRowDTOs(capSlice(ev.rows, limit))
	}

	uc.log.Info().Str("view", def.key).Int("matches", out.Total).Msg("vista calculada")
	uc.cacheSet(ctx, cacheKey, out)
	return out, nil
}

// GetChart devuelve la serie para graficar una vista: torta de valor de inventario por marca
// para brand-summary; barras de profit de los 15 primeros ítems de la vista, en el orden
// de la tabla, para las demás.
func (uc *UseCase) GetChart(ctx context.Context, key string, q dto.InsightQuery) (*dto.ChartDTO, error) {
	def, ok := lookupView(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, key)
	}
	params, err := uc.resolveParams(def, q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("chart:%s:%s:%s", snap.Version, def.key, paramsKey(def, params))
	var cached dto.ChartDTO
	if uc.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	ev := evaluate(def, snap.Rows, params)
	chart := &dto.ChartDTO{View: def.key, Points: []dto.ChartPointDTO{}}
	if def.key == ViewBrandSummary {
		chart.Kind = "pie"
		chart.Title = "Inventory Value by Brand"
		for _, b := range ev.brands {
			chart.Points = append(chart.Points, dto.ChartPointDTO{
				Label: brandLabel(b.Brand),
				Value: round2(b.TotalStockValue),
			})
		}
	} else {
		chart.Kind = "bar"
		chart.Title = "Top Items by Profit"
		for _, r := range capSlice(ev.rows, chartTopN) {
			chart.Points = append(chart.Points, dto.ChartPointDTO{
				Label:  itemLabel(r),
				Value:  round2(r.Profit),
				Margin: roundNull(r.ProfitMargin),
			})
		}
	}

	uc.cacheSet(ctx, cacheKey, chart)
	return chart, nil
}

// GetHighlights top-N por profit, valor por marca y valor total del inventario.
func (uc *UseCase) GetHighlights(ctx context.Context, topN int) (*dto.HighlightsDTO, error) {
	n, err := normalizeTopN(topN)
	if err != nil {
		return nil, err
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("highlights:%s:%d", snap.Version, n)
	var cached dto.HighlightsDTO
	if uc.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	out := toHighlightsDTO(insight.ProfitHighlights(snap.Rows, n), snap.Version)
	uc.cacheSet(ctx, cacheKey, out)
	return &out, nil
}

// GetOverview conteos de las cuatro vistas con los umbrales por defecto más los highlights.
// Cada vista se calcula en su propia goroutine sobre el mismo snapshot.
func (uc *UseCase) GetOverview(ctx context.Context, topN int) (*dto.OverviewDTO, error) {
	n, err := normalizeTopN(topN)
	if err != nil {
		return nil, err
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}

	type countResult struct {
		idx   int
		count dto.ViewCountDTO
		err   error
	}
	countsCh := make(chan countResult, len(registry))
	highlightsCh := make(chan dto.HighlightsDTO, 1)

	for i, def := range registry {
		go func(i int, def viewDef) {
			params, err := uc.resolveParams(def, dto.InsightQuery{})
			if err != nil {
				countsCh <- countResult{idx: i, err: err}
				return
			}
			ev := evaluate(def, snap.Rows, params)
			countsCh <- countResult{idx: i, count: dto.ViewCountDTO{
				View:    def.key,
				Label:   def.label,
				Total:   ev.total(),
				Summary: ev.summary,
			}}
		}(i, def)
	}
	go func() {
		highlightsCh <- toHighlightsDTO(insight.ProfitHighlights(snap.Rows, n), snap.Version)
	}()

	views := make([]dto.ViewCountDTO, len(registry))
	for range registry {
		r := <-countsCh
		if r.err != nil {
			return nil, fmt.Errorf("overview: %s: %w", registry[r.idx].key, r.err)
		}
		views[r.idx] = r.count
	}
	highlights := <-highlightsCh

	return &dto.OverviewDTO{
		Views:          views,
		Highlights:     highlights,
		DatasetVersion: snap.Version,
	}, nil
}

// ListItems listado paginado del inventario con sus métricas derivadas.
func (uc *UseCase) ListItems(ctx context.Context, page dto.PageRequest) (*dto.ItemsPageDTO, error) {
	page.DefaultPage()
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	total := len(snap.Rows)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)
	return &dto.ItemsPageDTO{
		Items: toRowDTOs(snap.Rows[start:end]),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Export genera el documento de una vista con todas sus coincidencias.
func (uc *UseCase) Export(ctx context.Context, key string, q dto.InsightQuery, format string) (*dto.ExportResult, error) {
	def, ok := lookupView(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, key)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "pdf"
	}
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación %q", domain.ErrUnsupported, format)
	}
	params, err := uc.resolveParams(def, q)
	if err != nil {
		return nil, err
	}
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	ev := evaluate(def, snap.Rows, params)
	report := buildReport(ev, snap.Version, now)
	data, err := exporter.Export(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("exportar %s a %s: %w", def.key, format, err)
	}

	uc.log.Info().Str("view", def.key).Str("format", format).Int("rows", len(report.Rows)).Msg("reporte exportado")
	return &dto.ExportResult{
		Filename:    fmt.Sprintf("%s-%s.%s", def.key, now.Format("20060102-150405"), exporter.Extension()),
		ContentType: exporter.ContentType(),
		Data:        data,
	}, nil
}

func (uc *UseCase) resolveParams(def viewDef, q dto.InsightQuery) (viewParams, error) {
	p := viewParams{applied: map[string]decimal.Decimal{}}
	switch def.key {
	case ViewLowStock:
		p.low = insight.LowStockParams{
			QuantityThreshold: pick(q.QuantityThreshold, uc.defaults.LowStockQuantity),
			MarginThreshold:   pick(q.MarginThreshold, uc.defaults.LowStockMargin),
		}
		if err := p.low.Validate(); err != nil {
			return p, err
		}
		p.applied[ParamQuantityThreshold] = p.low.QuantityThreshold
		p.applied[ParamMarginThreshold] = p.low.MarginThreshold
	case ViewOverstock:
		p.over = insight.OverstockParams{
			QuantityThreshold: pick(q.QuantityThreshold, uc.defaults.OverstockQuantity),
			MarginThreshold:   pick(q.MarginThreshold, uc.defaults.OverstockMargin),
		}
		if err := p.over.Validate(); err != nil {
			return p, err
		}
		p.applied[ParamQuantityThreshold] = p.over.QuantityThreshold
		p.applied[ParamMarginThreshold] = p.over.MarginThreshold
	case ViewFastMoving:
		p.fast = insight.FastMovingParams{
			VelocityThreshold: pick(q.VelocityThreshold, uc.defaults.Velocity),
			MinMonthlySales:   pick(q.MinMonthlySales, uc.defaults.MinMonthlySales),
		}
		if err := p.fast.Validate(); err != nil {
			return p, err
		}
		p.applied[ParamVelocityThreshold] = p.fast.VelocityThreshold
		p.applied[ParamMinMonthlySales] = p.fast.MinMonthlySales
	}
	return p, nil
}

func evaluate(def viewDef, rows []insight.Row, p viewParams) *evaluation {
	ev := &evaluation{def: def, params: p}
	switch def.key {
	case ViewLowStock:
		ev.rows = insight.LowStockProfitable(rows, p.low)
	case ViewOverstock:
		ev.rows = insight.OverstockLowProfit(rows, p.over)
	case ViewFastMoving:
		ev.rows = insight.FastMoving(rows, p.fast)
	case ViewBrandSummary:
		ev.brands = insight.BrandSummary(rows)
	}
	ev.summary = summarize(ev)
	return ev
}

func (uc *UseCase) cacheGet(ctx context.Context, key string, out any) bool {
	if uc.cache == nil {
		return false
	}
	raw, hit, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché no disponible")
		return false
	}
	if !hit {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta")
		return false
	}
	return true
}

func (uc *UseCase) cacheSet(ctx context.Context, key string, v any) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo serializar para caché")
		return
	}
	if err := uc.cache.Set(ctx, key, raw); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché no disponible")
	}
}

func pick(v decimal.NullDecimal, def float64) decimal.Decimal {
	if v.Valid {
		return v.Decimal
	}
	return decimal.NewFromFloat(def)
}

func paramsKey(def viewDef, p viewParams) string {
	parts := make([]string, 0, len(def.params))
	for _, name := range def.params {
		parts = append(parts, name+"="+p.applied[name].String())
	}
	return strings.Join(parts, ",")
}

func normalizeLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: limit no puede ser negativo", domain.ErrInvalidInput)
	case limit == 0:
		return dto.DefaultPageLimit, nil
	case limit > dto.MaxPageLimit:
		return dto.MaxPageLimit, nil
	}
	return limit, nil
}

func normalizeTopN(n int) (int, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: top_n no puede ser negativo", domain.ErrInvalidInput)
	case n == 0:
		return DefaultHighlights, nil
	case n > dto.MaxPageLimit:
		return dto.MaxPageLimit, nil
	}
	return n, nil
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
