package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/insights"
)

// InsightHandler maneja los endpoints de las vistas de análisis.
type InsightHandler struct {
	uc *insights.UseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *insights.UseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// ListViews godoc
// @Summary      Listar vistas de análisis
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ViewInfoDTO
// @Router       /api/insights/views [get]
func (h *InsightHandler) ListViews(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListViews())
}

// Overview godoc
// @Summary      Conteos de las cuatro vistas y highlights de rentabilidad
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        top_n  query  int  false  "Productos en el top por profit"  default(5)
// @Success      200    {object}  dto.OverviewDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      503    {object}  dto.ErrorResponse
// @Router       /api/insights/overview [get]
func (h *InsightHandler) Overview(c *fiber.Ctx) error {
	topN, err := queryInt(c, "top_n")
	if err != nil {
		return invalidParams(c, err.Error())
	}
	out, err := h.uc.GetOverview(c.Context(), topN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Highlights godoc
// @Summary      Top productos por profit y valor de inventario por marca
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        top_n  query  int  false  "Productos en el top"  default(5)
// @Success      200    {object}  dto.HighlightsDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/insights/highlights [get]
func (h *InsightHandler) Highlights(c *fiber.Ctx) error {
	topN, err := queryInt(c, "top_n")
	if err != nil {
		return invalidParams(c, err.Error())
	}
	out, err := h.uc.GetHighlights(c.Context(), topN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetView godoc
// @Summary      Calcular una vista de análisis
// @Description  Vistas: low-stock, over-stock, fast-moving, brand-summary. Los umbrales omitidos toman el valor configurado.
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        view                path   string  true   "Clave de la vista"
// @Param        quantity_threshold  query  number  false  "Umbral de cantidad disponible"
// @Param        margin_threshold    query  number  false  "Umbral de margen (%)"
// @Param        velocity_threshold  query  number  false  "Sell-through mínimo"
// @Param        min_monthly_sales   query  number  false  "Ventas mensuales mínimas"
// @Param        limit               query  int     false  "Máximo de filas"  default(20)
// @Success      200  {object}  dto.InsightViewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insights/{view} [get]
func (h *InsightHandler) GetView(c *fiber.Ctx) error {
	q, err := parseInsightQuery(c)
	if err != nil {
		return invalidParams(c, err.Error())
	}
	out, err := h.uc.GetView(c.Context(), c.Params("view"), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetChart godoc
// @Summary      Serie para graficar una vista
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        view  path  string  true  "Clave de la vista"
// @Success      200   {object}  dto.ChartDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/insights/{view}/chart [get]
func (h *InsightHandler) GetChart(c *fiber.Ctx) error {
	q, err := parseInsightQuery(c)
	if err != nil {
		return invalidParams(c, err.Error())
	}
	out, err := h.uc.GetChart(c.Context(), c.Params("view"), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar una vista como PDF o XML
// @Tags         insights
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/xml
// @Param        view    path   string  true   "Clave de la vista"
// @Param        format  query  string  false  "pdf o xml"  default(pdf)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insights/{view}/export [get]
func (h *InsightHandler) Export(c *fiber.Ctx) error {
	q, err := parseInsightQuery(c)
	if err != nil {
		return invalidParams(c, err.Error())
	}
	out, err := h.uc.Export(c.Context(), c.Params("view"), q, c.Query("format", "pdf"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	return c.Send(out.Data)
}

// parseInsightQuery lee los umbrales opcionales de la query string.
func parseInsightQuery(c *fiber.Ctx) (dto.InsightQuery, error) {
	var q dto.InsightQuery
	fields := []struct {
		name string
		dst  *decimal.NullDecimal
	}{
		{insights.ParamQuantityThreshold, &q.QuantityThreshold},
		{insights.ParamMarginThreshold, &q.MarginThreshold},
		{insights.ParamVelocityThreshold, &q.VelocityThreshold},
		{insights.ParamMinMonthlySales, &q.MinMonthlySales},
	}
	for _, f := range fields {
		raw := c.Query(f.name)
		if raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return q, fmt.Errorf("%s debe ser numérico", f.name)
		}
		*f.dst = decimal.NewNullDecimal(v)
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return q, err
	}
	q.Limit = limit
	return q, nil
}

// queryInt devuelve 0 si el parámetro no viene.
func queryInt(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser entero", name)
	}
	return n, nil
}
