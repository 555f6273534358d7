package bootstrap_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/bootstrap"
	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/cache"
	"github.com/jhoicas/inventory-insight/pkg/config"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: "test", Name: "inventory-insight"},
		Data: config.DataConfig{Source: config.SourceCSV, CSVPath: filepath.Join("..", "..", "data", "inventory.csv"), CSVEncoding: "utf-8"},
		Insight: config.InsightConfig{
			LowStockQuantity: 60, LowStockMargin: 20,
			OverstockQuantity: 200, OverstockMargin: 10,
			Velocity: 1.2, MinMonthlySales: 40,
		},
	}
}

func TestNewInsights_DesdeCSV(t *testing.T) {
	deps, err := bootstrap.NewInsights(context.Background(), testConfig(), logger.Nop())
	require.NoError(t, err)
	defer deps.Close()

	snap, err := deps.Store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Items, 13)

	views := deps.UseCase.ListViews()
	assert.Len(t, views, 4)
	for _, v := range views {
		_, err := deps.UseCase.GetView(context.Background(), v.Key, dto.InsightQuery{})
		assert.NoError(t, err, v.Key)
	}

	res, err := deps.UseCase.Export(context.Background(), "brand-summary", dto.InsightQuery{}, "xml")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Data)
}

func TestNewInsights_ArchivoInexistente(t *testing.T) {
	cfg := testConfig()
	cfg.Data.CSVPath = "no-existe.csv"
	_, err := bootstrap.NewInsights(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewCache_SinRedisEsNoop(t *testing.T) {
	c, closeFn := bootstrap.NewCache(context.Background(), testConfig(), logger.Nop())
	defer closeFn()
	assert.IsType(t, cache.Noop{}, c)
}

func TestOpenSQLStore_RechazaCSV(t *testing.T) {
	_, closeFn, err := bootstrap.OpenSQLStore(context.Background(), testConfig())
	defer closeFn()
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestExporters(t *testing.T) {
	ex := bootstrap.Exporters(testConfig())
	assert.Contains(t, ex, "pdf")
	assert.Contains(t, ex, "xml")
}
