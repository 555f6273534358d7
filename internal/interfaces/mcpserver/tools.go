// Package mcpserver publica las vistas de análisis como herramientas MCP (Model Context Protocol)
// para que un agente pueda consultarlas por stdio.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/insights"
	"github.com/jhoicas/inventory-insight/internal/interfaces/render"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

// Nombres de las herramientas.
const (
	ToolLowStock     = "low_stock_profitable"
	ToolOverstock    = "overstock_low_profit"
	ToolFastMoving   = "fast_moving_products"
	ToolBrandSummary = "brand_summary"
	ToolHighlights   = "profit_highlights"
)

// Tools handlers de las herramientas sobre el caso de uso de insights.
type Tools struct {
	uc  *insights.UseCase
	log *logger.Logger
}

// NewTools construye los handlers.
func NewTools(uc *insights.UseCase, log *logger.Logger) *Tools {
	if log == nil {
		log = logger.Nop()
	}
	return &Tools{uc: uc, log: log.Named("mcp")}
}

// NewServer crea el servidor MCP con las cinco herramientas registradas.
func NewServer(uc *insights.UseCase, version string, log *logger.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"InventoryInsight",
		version,
		server.WithLogging(),
		server.WithRecovery(),
	)
	t := NewTools(uc, log)
	s.AddTool(lowStockTool(), t.HandleLowStock)
	s.AddTool(overstockTool(), t.HandleOverstock)
	s.AddTool(fastMovingTool(), t.HandleFastMoving)
	s.AddTool(brandSummaryTool(), t.HandleBrandSummary)
	s.AddTool(highlightsTool(), t.HandleHighlights)
	return s
}

// ── Definiciones ──────────────────────────────────────────────────────────────

func outputFormatOption() mcp.ToolOption {
	return mcp.WithString("output_format",
		mcp.Description("Formato del resultado."),
		mcp.DefaultString(render.FormatText),
		mcp.Enum(render.Formats...),
	)
}

func limitOption() mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.Description("Máximo de filas a devolver (máx. 200)."),
		mcp.DefaultNumber(20),
	)
}

func lowStockTool() mcp.Tool {
	return mcp.NewTool(ToolLowStock,
		mcp.WithDescription("Productos con poco stock y buen margen: candidatos a reabastecer. Orden: margen desc, profit desc."),
		mcp.WithNumber(insights.ParamQuantityThreshold,
			mcp.Description("Cantidad disponible máxima (por defecto 60)."),
		),
		mcp.WithNumber(insights.ParamMarginThreshold,
			mcp.Description("Margen mínimo en % sobre el costo (por defecto 20)."),
		),
		limitOption(),
		outputFormatOption(),
	)
}

func overstockTool() mcp.Tool {
	return mcp.NewTool(ToolOverstock,
		mcp.WithDescription("Productos con mucho stock y margen bajo: capital inmovilizado. Orden: cantidad desc, margen asc."),
		mcp.WithNumber(insights.ParamQuantityThreshold,
			mcp.Description("Cantidad disponible mínima (por defecto 200)."),
		),
		mcp.WithNumber(insights.ParamMarginThreshold,
			mcp.Description("Margen máximo en % sobre el costo (por defecto 10)."),
		),
		limitOption(),
		outputFormatOption(),
	)
}

func fastMovingTool() mcp.Tool {
	return mcp.NewTool(ToolFastMoving,
		mcp.WithDescription("Productos de alta rotación (total vendido / stock promedio). Orden: rotación desc."),
		mcp.WithNumber(insights.ParamVelocityThreshold,
			mcp.Description("Sell-through mínimo (por defecto 1.2)."),
		),
		mcp.WithNumber(insights.ParamMinMonthlySales,
			mcp.Description("Ventas mensuales mínimas (por defecto 40)."),
		),
		limitOption(),
		outputFormatOption(),
	)
}

func brandSummaryTool() mcp.Tool {
	return mcp.NewTool(ToolBrandSummary,
		mcp.WithDescription("Profit total, valor de inventario, margen promedio y número de SKUs por marca."),
		limitOption(),
		outputFormatOption(),
	)
}

func highlightsTool() mcp.Tool {
	return mcp.NewTool(ToolHighlights,
		mcp.WithDescription("Top productos por profit, valor de inventario por marca y valor total."),
		mcp.WithNumber("top_n",
			mcp.Description("Productos en el top (por defecto 5)."),
			mcp.DefaultNumber(5),
		),
		outputFormatOption(),
	)
}

// ── Handlers ──────────────────────────────────────────────────────────────────

func (t *Tools) HandleLowStock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.handleView(ctx, insights.ViewLowStock, request)
}

func (t *Tools) HandleOverstock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.handleView(ctx, insights.ViewOverstock, request)
}

func (t *Tools) HandleFastMoving(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.handleView(ctx, insights.ViewFastMoving, request)
}

func (t *Tools) HandleBrandSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.handleView(ctx, insights.ViewBrandSummary, request)
}

func (t *Tools) HandleHighlights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments
	outputFormat := stringArg(args, "output_format", render.FormatText)
	topN, err := intArg(args, "top_n")
	if err != nil {
		return nil, err
	}

	t.log.Info().Str("tool", ToolHighlights).Int("top_n", topN).Str("format", outputFormat).Msg("llamada a herramienta")
	h, err := t.uc.GetHighlights(ctx, topN)
	if err != nil {
		return nil, err
	}
	out, err := render.Highlights(h, outputFormat)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}

func (t *Tools) handleView(ctx context.Context, view string, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments
	outputFormat := stringArg(args, "output_format", render.FormatText)

	var q dto.InsightQuery
	for name, dst := range map[string]*decimal.NullDecimal{
		insights.ParamQuantityThreshold: &q.QuantityThreshold,
		insights.ParamMarginThreshold:   &q.MarginThreshold,
		insights.ParamVelocityThreshold: &q.VelocityThreshold,
		insights.ParamMinMonthlySales:   &q.MinMonthlySales,
	} {
		v, err := decimalArg(args, name)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	limit, err := intArg(args, "limit")
	if err != nil {
		return nil, err
	}
	q.Limit = limit

	t.log.Info().Str("view", view).Str("format", outputFormat).Msg("llamada a herramienta")
	v, err := t.uc.GetView(ctx, view, q)
	if err != nil {
		return nil, err
	}
	out, err := render.View(v, outputFormat)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}

// ── Argumentos ────────────────────────────────────────────────────────────────
// JSON entrega los números como float64; también se aceptan strings numéricos.

func stringArg(args map[string]interface{}, name, def string) string {
	if s, ok := args[name].(string); ok && s != "" {
		return s
	}
	return def
}

func decimalArg(args map[string]interface{}, name string) (decimal.NullDecimal, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return decimal.NullDecimal{}, nil
	}
	switch v := raw.(type) {
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(v)), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.NullDecimal{}, fmt.Errorf("argumento %s inválido: %q", name, v)
		}
		return decimal.NewNullDecimal(d), nil
	}
	return decimal.NullDecimal{}, fmt.Errorf("argumento %s debe ser numérico", name)
}

func intArg(args map[string]interface{}, name string) (int, error) {
	d, err := decimalArg(args, name)
	if err != nil || !d.Valid {
		return 0, err
	}
	if !d.Decimal.Equal(d.Decimal.Truncate(0)) {
		return 0, fmt.Errorf("argumento %s debe ser entero", name)
	}
	return int(d.Decimal.IntPart()), nil
}
