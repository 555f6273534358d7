// Package bootstrap arma las dependencias compartidas por la API, la CLI y el servidor MCP
// a partir de la configuración: fuente de datos, caché, exportadores y caso de uso.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-insight/internal/application/insights"
	"github.com/jhoicas/inventory-insight/internal/application/inventory"
	"github.com/jhoicas/inventory-insight/internal/application/ports"
	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/repository"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/cache"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/csvsource"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/mysql"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/xmlexport"
	"github.com/jhoicas/inventory-insight/pkg/config"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

// Closer libera los recursos abiertos (pool, conexión, cliente Redis).
type Closer func()

func noop() {}

// CSVLoader fuente CSV según la configuración.
func CSVLoader(cfg *config.Config, log *logger.Logger) *csvsource.Loader {
	return csvsource.NewLoader(csvsource.Options{Path: cfg.Data.CSVPath, Encoding: cfg.Data.CSVEncoding}, log)
}

// OpenSource abre la fuente de inventario indicada por DATA_SOURCE.
func OpenSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.InventoryRepository, Closer, error) {
	switch cfg.Data.Source {
	case config.SourceCSV:
		return CSVLoader(cfg, log), noop, nil
	case config.SourcePostgres, config.SourceMySQL:
		return OpenSQLStore(ctx, cfg)
	}
	return nil, noop, fmt.Errorf("%w: fuente %q", domain.ErrUnsupported, cfg.Data.Source)
}

// OpenSQLStore abre el almacén SQL (lectura y upsert). Con DATA_SOURCE=csv no hay almacén.
func OpenSQLStore(ctx context.Context, cfg *config.Config) (repository.InventoryStore, Closer, error) {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		return postgres.NewInventoryRepository(pool), pool.Close, nil
	case config.SourceMySQL:
		db, err := mysql.NewDB(ctx, cfg.MySQL.DSN)
		if err != nil {
			return nil, noop, err
		}
		return mysql.NewInventoryRepository(db), func() { _ = db.Close() }, nil
	}
	return nil, noop, fmt.Errorf("%w: DATA_SOURCE=%s no es un almacén SQL (postgres o mysql)", domain.ErrUnsupported, cfg.Data.Source)
}

// NewCache Redis si REDIS_ADDR está definido y responde; si no, caché deshabilitada.
func NewCache(ctx context.Context, cfg *config.Config, log *logger.Logger) (ports.InsightCache, Closer) {
	if cfg.Redis.Addr == "" {
		return cache.Noop{}, noop
	}
	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, se continúa sin caché")
		return cache.Noop{}, noop
	}
	log.Info().Str("addr", cfg.Redis.Addr).Int("ttl_seconds", cfg.Redis.TTLSeconds).Msg("caché Redis habilitada")
	ttl := time.Duration(cfg.Redis.TTLSeconds) * time.Second
	return cache.NewRedisCache(client, ttl), func() { _ = client.Close() }
}

// Exporters formatos de exportación disponibles.
func Exporters(cfg *config.Config) map[string]ports.ReportExporter {
	return map[string]ports.ReportExporter{
		"pdf": pdf.NewMarotoPDFGenerator(cfg.App.Name),
		"xml": xmlexport.NewExporter(),
	}
}

// Insights dependencias listas para servir vistas.
type Insights struct {
	UseCase *insights.UseCase
	Store   *inventory.Store
	Close   Closer
}

// NewInsights abre la fuente, carga el dataset y construye el caso de uso.
func NewInsights(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Insights, error) {
	source, closeSource, err := OpenSource(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("abrir fuente %s: %w", cfg.Data.Source, err)
	}
	store := inventory.NewStore(source, log)
	if _, err := store.Reload(ctx); err != nil {
		closeSource()
		return nil, err
	}

	insightCache, closeCache := NewCache(ctx, cfg, log)
	uc := insights.NewUseCase(store, insightCache, Exporters(cfg), cfg.Insight, log)
	return &Insights{
		UseCase: uc,
		Store:   store,
		Close: func() {
			closeCache()
			closeSource()
		},
	}, nil
}
