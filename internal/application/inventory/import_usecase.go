package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/entity"
	"github.com/jhoicas/inventory-insight/internal/domain/repository"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

// ImportResult resultado de una importación.
type ImportResult struct {
	Read    int
	Written int
}

// ImportUseCase copia el inventario de una fuente (normalmente el CSV) a un almacén SQL.
// El upsert es por product_id y el adaptador lo ejecuta en una sola transacción; una fuente
// con product_id repetidos se rechaza antes de escribir.
type ImportUseCase struct {
	source repository.InventoryRepository
	writer repository.InventoryWriter
	log    *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(source repository.InventoryRepository, writer repository.InventoryWriter, log *logger.Logger) *ImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{source: source, writer: writer, log: log.Named("inventory_import")}
}

// Execute lee la fuente completa y la escribe en el destino.
func (uc *ImportUseCase) Execute(ctx context.Context) (*ImportResult, error) {
	items, err := uc.source.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("importar: leer fuente: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: la fuente no tiene filas válidas", domain.ErrInvalidInput)
	}
	if dups := entity.DuplicateProductIDs(items); len(dups) > 0 {
		uc.log.Warn().Strs("product_ids", dups).Msg("importación rechazada: product_id repetidos")
		return nil, fmt.Errorf("%w: product_id repetidos en la fuente: %s", domain.ErrInvalidInput, strings.Join(dups, ", "))
	}
	written, err := uc.writer.UpsertItems(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("importar: escribir destino: %w", err)
	}
	uc.log.Info().Int("read", len(items)).Int("written", written).Msg("importación completada")
	return &ImportResult{Read: len(items), Written: written}, nil
}
