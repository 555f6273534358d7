// Package xmlexport serializa reportes de análisis como XML.
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/ports"
)

var _ ports.ReportExporter = (*Exporter)(nil)

// Exporter implementa ports.ReportExporter con beevik/etree.
//
//	<InsightReport view="low-stock" total="2" ...>
//	  <Title/> <Summary/>
//	  <Params><Param name="quantity_threshold">60</Param></Params>
//	  <Rows><Row><Cell column="Product ID">SKU-1</Cell>...</Row></Rows>
//	</InsightReport>
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

func (e *Exporter) ContentType() string { return "application/xml" }
func (e *Exporter) Extension() string   { return "xml" }

func (e *Exporter) Export(_ context.Context, report *dto.InsightReportDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("InsightReport")
	root.CreateAttr("view", report.View)
	root.CreateAttr("total", strconv.Itoa(report.Total))
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	if report.DatasetVersion != "" {
		root.CreateAttr("datasetVersion", report.DatasetVersion)
	}
	root.CreateElement("Title").SetText(report.Title)
	root.CreateElement("Summary").SetText(report.Summary)

	params := root.CreateElement("Params")
	for _, p := range report.Params {
		el := params.CreateElement("Param")
		el.CreateAttr("name", p.Name)
		el.SetText(p.Value)
	}

	rows := root.CreateElement("Rows")
	for i, r := range report.Rows {
		if len(r) != len(report.Columns) {
			return nil, fmt.Errorf("xml: fila %d tiene %d celdas, se esperaban %d", i, len(r), len(report.Columns))
		}
		rowEl := rows.CreateElement("Row")
		for j, v := range r {
			cell := rowEl.CreateElement("Cell")
			cell.CreateAttr("column", report.Columns[j])
			cell.SetText(v)
		}
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out.Bytes(), nil
}
