package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-insight/internal/application/insights"
	"github.com/jhoicas/inventory-insight/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InsightUC *insights.UseCase
	Store     *inventory.Store
	JWTSecret string // vacío = API sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Insights (las rutas fijas van antes de /:view)
	insightHandler := NewInsightHandler(deps.InsightUC)
	ins := api.Group("/insights")
	ins.Get("/views", insightHandler.ListViews)
	ins.Get("/overview", insightHandler.Overview)
	ins.Get("/highlights", insightHandler.Highlights)
	ins.Get("/:view", insightHandler.GetView)
	ins.Get("/:view/chart", insightHandler.GetChart)
	ins.Get("/:view/export", insightHandler.Export)

	// Inventory (la recarga requiere scope admin)
	inventoryHandler := NewInventoryHandler(deps.InsightUC, deps.Store)
	inv := api.Group("/inventory")
	inv.Get("/items", inventoryHandler.ListItems)
	inv.Post("/reload", RequireScope(ScopeAdmin), inventoryHandler.Reload)
}
