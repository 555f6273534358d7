// Package inventory mantiene el snapshot del inventario en memoria y la importación a SQL.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/entity"
	"github.com/jhoicas/inventory-insight/internal/domain/insight"
	"github.com/jhoicas/inventory-insight/internal/domain/repository"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

// Snapshot vista inmutable del dataset cargado. Los consumidores no deben modificar los slices.
type Snapshot struct {
	Items    []entity.InventoryItem
	Rows     []insight.Row // métricas derivadas, mismo orden que Items
	Version  string
	LoadedAt time.Time
}

// Store conserva el dataset actual. Se carga una vez al arrancar y se reemplaza completo en
// cada Reload; los lectores concurrentes siempre ven un snapshot consistente.
type Store struct {
	source repository.InventoryRepository
	log    *logger.Logger

	mu     sync.RWMutex
	snap   *Snapshot
	loadMu sync.Mutex // serializa recargas
}

// NewStore construye el store sobre la fuente indicada (CSV, PostgreSQL o MySQL).
func NewStore(source repository.InventoryRepository, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{source: source, log: log.Named("inventory_store")}
}

// Snapshot devuelve el dataset vigente o ErrDatasetNotReady si aún no se ha cargado.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, domain.ErrDatasetNotReady
	}
	return s.snap, nil
}

// Reload vuelve a leer la fuente y publica un snapshot con nueva versión.
// Si la lectura falla se conserva el snapshot anterior.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	start := time.Now()
	items, err := s.source.ListItems(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudo cargar el inventario")
		return nil, fmt.Errorf("cargar inventario: %w", err)
	}

	snap := &Snapshot{
		Items:    items,
		Rows:     insight.DeriveAll(items),
		Version:  uuid.NewString(),
		LoadedAt: time.Now(),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.log.Info().
		Int("items", len(items)).
		Str("version", snap.Version).
		Dur("elapsed", time.Since(start)).
		Msg("inventario cargado")
	return snap, nil
}
