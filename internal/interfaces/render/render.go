// Package render convierte las respuestas de análisis en tablas de texto, Markdown o JSON
// para la CLI y el servidor MCP.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/pkg/format"
)

// Formatos de salida.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats formatos aceptados.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON}

const noBrand = "(no brand)"

// ValidateFormat devuelve ErrUnsupported para formatos desconocidos.
func ValidateFormat(f string) error {
	for _, ok := range Formats {
		if f == ok {
			return nil
		}
	}
	return fmt.Errorf("%w: formato de salida %q (text, markdown o json)", domain.ErrUnsupported, f)
}

// View renderiza una vista.
func View(v *dto.InsightViewDTO, f string) (string, error) {
	if err := ValidateFormat(f); err != nil {
		return "", err
	}
	if f == FormatJSON {
		return toJSON(v)
	}

	t := newTable(v.Label)
	if v.View == "brand-summary" {
		t.AppendHeader(table.Row{"Brand", "Total Profit", "Stock Value", "Avg Margin", "SKUs"})
		for _, b := range v.Brands {
			t.AppendRow(table.Row{
				brandLabel(b.Brand),
				format.Money(b.TotalProfit),
				format.Money(b.TotalStockValue),
				format.Percent(b.AvgProfitMargin),
				b.SKUCount,
			})
		}
		rightAlign(t, 2, 3, 4, 5)
	} else {
		t.AppendHeader(table.Row{"Product ID", "Product", "Brand", "Available", "Profit", "Stock Value", "Margin", "Sell-through"})
		for _, r := range v.Rows {
			t.AppendRow(table.Row{
				r.ProductID,
				r.ProductName,
				brandLabel(r.Brand),
				format.Number(r.AvailableQuantity, 0),
				format.Money(r.Profit),
				format.Money(r.StockValue),
				format.Percent(r.ProfitMargin),
				format.Ratio(r.SellThroughRate),
			})
		}
		rightAlign(t, 4, 5, 6, 7, 8)
	}
	shown := len(v.Rows) + len(v.Brands)
	t.SetCaption("%s  Showing %d of %d.%s", v.Summary, shown, v.Total, paramsCaption(v.Params))
	return finish(t, v.Label, v.Summary, f), nil
}

// Highlights renderiza el top por profit y el valor por marca.
func Highlights(h *dto.HighlightsDTO, f string) (string, error) {
	if err := ValidateFormat(f); err != nil {
		return "", err
	}
	if f == FormatJSON {
		return toJSON(h)
	}

	top := newTable("Top Products by Profit")
	top.AppendHeader(table.Row{"#", "Product ID", "Product", "Brand", "Profit", "Margin"})
	for i, r := range h.TopProfitable {
		top.AppendRow(table.Row{i + 1, r.ProductID, r.ProductName, brandLabel(r.Brand), format.Money(r.Profit), format.Percent(r.ProfitMargin)})
	}
	rightAlign(top, 5, 6)

	brands := newTable("Stock Value by Brand")
	brands.AppendHeader(table.Row{"Brand", "Stock Value"})
	for _, b := range h.StockValueByBrand {
		brands.AppendRow(table.Row{brandLabel(b.Brand), format.Money(b.StockValue)})
	}
	brands.AppendFooter(table.Row{"Total", format.Money(h.TotalStockValue)})
	rightAlign(brands, 2)

	total := fmt.Sprintf("Total inventory value: %s across %d items.", format.Money(h.TotalStockValue), h.ItemCount)
	return finish(top, "Top Products by Profit", "", f) + "\n\n" + finish(brands, "Stock Value by Brand", total, f), nil
}

// Overview renderiza los conteos de las cuatro vistas.
func Overview(o *dto.OverviewDTO, f string) (string, error) {
	if err := ValidateFormat(f); err != nil {
		return "", err
	}
	if f == FormatJSON {
		return toJSON(o)
	}
	t := newTable("Inventory Overview")
	t.AppendHeader(table.Row{"View", "Matches", "Summary"})
	for _, v := range o.Views {
		t.AppendRow(table.Row{v.Label, v.Total, v.Summary})
	}
	rightAlign(t, 2)
	return finish(t, "Inventory Overview", "", f), nil
}

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s", title)
	return t
}

func rightAlign(t table.Writer, cols ...int) {
	configs := make([]table.ColumnConfig, 0, len(cols))
	for _, n := range cols {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(configs)
}

// finish: en Markdown el título y el resumen van fuera de la tabla.
func finish(t table.Writer, title, summary string, f string) string {
	if f != FormatMarkdown {
		out := t.Render()
		if summary != "" && !strings.Contains(out, summary) {
			out += "\n" + summary
		}
		return out
	}
	t.SetTitle("")
	t.SetCaption("")
	var b strings.Builder
	b.WriteString("### " + title + "\n\n")
	b.WriteString(t.RenderMarkdown())
	if summary != "" {
		b.WriteString("\n\n_" + summary + "_")
	}
	return b.String()
}

// paramsCaption " Params: margin_threshold=20, quantity_threshold=60" en orden alfabético.
func paramsCaption(params map[string]decimal.Decimal) string {
	if len(params) == 0 {
		return ""
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+params[name].String())
	}
	return "  Params: " + strings.Join(parts, ", ")
}

func toJSON(v any) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render json: %w", err)
	}
	return string(raw), nil
}

func brandLabel(brand string) string {
	if brand == "" {
		return noBrand
	}
	return brand
}
