package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/insights"
	"github.com/jhoicas/inventory-insight/internal/application/inventory"
)

// InventoryHandler listado del dataset y recarga desde la fuente.
type InventoryHandler struct {
	uc    *insights.UseCase
	store *inventory.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *insights.UseCase, store *inventory.Store) *InventoryHandler {
	return &InventoryHandler{uc: uc, store: store}
}

// ListItems godoc
// @Summary      Listar ítems del inventario con métricas derivadas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ItemsPageDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidParams(c, "limit y offset deben ser enteros")
	}
	out, err := h.uc.ListItems(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reload godoc
// @Summary      Recargar el inventario desde la fuente configurada
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReloadResultDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/reload [post]
func (h *InventoryHandler) Reload(c *fiber.Ctx) error {
	snap, err := h.store.Reload(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReloadResultDTO{
		Items:          len(snap.Items),
		DatasetVersion: snap.Version,
		LoadedAt:       snap.LoadedAt,
	})
}
