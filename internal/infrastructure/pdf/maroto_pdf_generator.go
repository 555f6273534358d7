// Package pdf genera el reporte de una vista de análisis en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la vista      │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN + parámetros aplicados                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por campo del reporte                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de coincidencias + versión del dataset       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/ports"
)

const gridSize = 12

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Anchos (sobre 12) de las tablas conocidas: vistas por ítem y resumen por marca.
var (
	itemWidths  = []int{1, 2, 1, 1, 1, 1, 1, 2, 1, 1}
	brandWidths = []int{4, 2, 3, 2, 1}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportExporter = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.ReportExporter usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

func (g *MarotoPDFGenerator) ContentType() string { return "application/pdf" }
func (g *MarotoPDFGenerator) Extension() string   { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Export(_ context.Context, report *dto.InsightReportDTO) ([]byte, error) {
	if len(report.Columns) == 0 {
		return nil, fmt.Errorf("pdf: el reporte no tiene columnas")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	widths := columnWidths(len(report.Columns))

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableRow(report.Columns, widths, true))
	for _, r := range report.Rows {
		m.AddRows(tableRow(r, widths, false))
	}
	if len(report.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(gridSize).Add(
			text.New("Sin coincidencias para los parámetros aplicados.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la vista (izq) y fecha de generación (der).
func headerRow(report *dto.InsightReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventory Insight", props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRows: frase resumen y parámetros aplicados.
func summaryRows(report *dto.InsightReportDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(gridSize).Add(
			text.New(report.Summary, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		)),
	}
	if len(report.Params) > 0 {
		parts := make([]string, 0, len(report.Params))
		for _, p := range report.Params {
			parts = append(parts, p.Name+": "+p.Value)
		}
		rows = append(rows, row.New(6).Add(col.New(gridSize).Add(
			text.New(strings.Join(parts, "   |   "), props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// tableRow: cabecera (negrita, color primario) o fila de datos.
func tableRow(cells []string, widths []int, header bool) core.Row {
	cols := make([]core.Col, 0, len(widths))
	for i, w := range widths {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		p := props.Text{Size: 7, Top: 1, Left: 0.5, Right: 0.5, Align: cellAlign(i)}
		if header {
			p.Style = fontstyle.Bold
			p.Color = colorPrimary
		}
		cols = append(cols, col.New(w).Add(text.New(value, p)))
	}
	h := 6.0
	if header {
		h = 7
	}
	return row.New(h).Add(cols...)
}

// footerRow: total de coincidencias y versión del dataset.
func footerRow(report *dto.InsightReportDTO) core.Row {
	return row.New(8).Add(col.New(gridSize).Add(
		text.New(fmt.Sprintf("Coincidencias: %d   |   Dataset: %s", report.Total, report.DatasetVersion), props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWidths reparte la grilla de 12 entre n columnas.
func columnWidths(n int) []int {
	switch n {
	case len(itemWidths):
		return itemWidths
	case len(brandWidths):
		return brandWidths
	}
	if n > gridSize {
		n = gridSize
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = gridSize / n
	}
	widths[n-1] += gridSize % n
	return widths
}

// cellAlign: textos a la izquierda en las primeras columnas, cifras a la derecha.
func cellAlign(i int) align.Type {
	if i < 3 {
		return align.Left
	}
	return align.Right
}
