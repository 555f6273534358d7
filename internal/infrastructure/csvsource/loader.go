// Package csvsource lee el inventario desde un archivo CSV con las columnas de la exportación
// de inventario (Product_ID, Product_Name, Product_Brand, Available_Quantity, ...).
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/domain/entity"
	"github.com/jhoicas/inventory-insight/internal/domain/repository"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

var _ repository.InventoryRepository = (*Loader)(nil)

// Nombres de columna del CSV.
const (
	colProductID    = "Product_ID"
	colProductName  = "Product_Name"
	colBrand        = "Product_Brand"
	colCategory     = "Product_Category"
	colAvailableQty = "Available_Quantity"
	colSellPrice    = "Average_Selling_Price"
	colBuyPrice     = "Average_Buying_Price"
	colIncoming     = "Total_Incoming"
	colOutgoing     = "Total_Outgoing"
	colDefective    = "Defective_Stock"
	colTotalSold    = "Total_Sold"
	colMonthlySales = "Monthly_Sale_Quantity"
	colHoldingCost  = "Holding_Cost"
	colAvgStock     = "Average_Stock_Level"
	colProfitUnit   = "Profit_Per_Unit"
	colProfitAfter  = "Profit_After_HC"
)

var requiredColumns = []string{
	colProductID, colProductName, colBrand,
	colAvailableQty, colSellPrice, colBuyPrice,
	colTotalSold, colMonthlySales, colAvgStock,
}

// Options configuración del loader.
type Options struct {
	Path     string
	Encoding string // utf-8 (por defecto) | latin1
}

// LoadReport resumen de la lectura: filas aceptadas y descartadas.
type LoadReport struct {
	Rows         int
	Skipped      int
	SkippedLines []int // número de línea (1 = encabezado) de cada fila descartada
}

// Loader implementa repository.InventoryRepository sobre un archivo CSV.
type Loader struct {
	opts Options
	log  *logger.Logger
}

// NewLoader construye el loader. log puede ser nil.
func NewLoader(opts Options, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{opts: opts, log: log.Named("csvsource")}
}

// ListItems lee el archivo completo en cada llamada.
func (l *Loader) ListItems(ctx context.Context) ([]entity.InventoryItem, error) {
	items, _, err := l.Load(ctx)
	return items, err
}

// Load abre el archivo, lo decodifica y devuelve los ítems junto con el reporte de lectura.
func (l *Loader) Load(ctx context.Context) ([]entity.InventoryItem, LoadReport, error) {
	abs, err := filepath.Abs(l.opts.Path)
	if err != nil {
		abs = l.opts.Path
	}
	f, err := os.Open(l.opts.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, LoadReport{}, fmt.Errorf("%w: no se encontró el inventario en %s", domain.ErrNotFound, abs)
		}
		return nil, LoadReport{}, fmt.Errorf("csvsource: abrir %s: %w", abs, err)
	}
	defer f.Close()

	r, err := decodeReader(f, l.opts.Encoding)
	if err != nil {
		return nil, LoadReport{}, err
	}

	items, report, err := Parse(ctx, r)
	if err != nil {
		return nil, report, err
	}
	if report.Skipped > 0 {
		l.log.Warn().
			Str("path", abs).
			Int("skipped", report.Skipped).
			Ints("lines", report.SkippedLines).
			Msg("filas descartadas por valores numéricos inválidos")
	}
	l.log.Info().Str("path", abs).Int("rows", report.Rows).Msg("inventario cargado")
	return items, report, nil
}

// decodeReader envuelve r con el decodificador de la codificación indicada.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: codificación no soportada %q", domain.ErrInvalidInput, encoding)
	}
}

// Parse lee un CSV ya decodificado. Las celdas de texto se recortan; una fila cuyo valor
// numérico obligatorio esté vacío o no sea un número se descarta y se cuenta en el reporte.
// Los numéricos opcionales inválidos quedan en cero.
func Parse(ctx context.Context, r io.Reader) ([]entity.InventoryItem, LoadReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, LoadReport{}, fmt.Errorf("%w: CSV vacío", domain.ErrInvalidInput)
		}
		return nil, LoadReport{}, fmt.Errorf("csvsource: leer encabezado: %w", err)
	}
	idx := indexHeader(header)
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, LoadReport{}, fmt.Errorf("%w: faltan columnas %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	var (
		items  []entity.InventoryItem
		report LoadReport
		line   = 1
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, report, fmt.Errorf("csvsource: línea %d: %w", line, err)
		}
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, report, err
			}
		}
		if isBlank(record) {
			continue
		}

		it, ok := parseRecord(record, idx)
		if !ok {
			report.Skipped++
			report.SkippedLines = append(report.SkippedLines, line)
			continue
		}
		items = append(items, it)
	}
	report.Rows = len(items)
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return items, report, nil
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return idx
}

func parseRecord(record []string, idx map[string]int) (entity.InventoryItem, bool) {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	required := func(col string, ok *bool) decimal.Decimal {
		v, err := decimal.NewFromString(cell(col))
		if err != nil {
			*ok = false
			return decimal.Zero
		}
		return v
	}
	optional := func(col string) decimal.Decimal {
		v, err := decimal.NewFromString(cell(col))
		if err != nil {
			return decimal.Zero
		}
		return v
	}

	ok := true
	it := entity.InventoryItem{
		ProductID:           cell(colProductID),
		ProductName:         cell(colProductName),
		Brand:               cell(colBrand),
		Category:            cell(colCategory),
		AvailableQuantity:   required(colAvailableQty, &ok),
		AverageSellingPrice: required(colSellPrice, &ok),
		AverageBuyingPrice:  required(colBuyPrice, &ok),
		TotalIncoming:       optional(colIncoming),
		TotalOutgoing:       optional(colOutgoing),
		DefectiveStock:      optional(colDefective),
		TotalSold:           required(colTotalSold, &ok),
		MonthlySaleQuantity: required(colMonthlySales, &ok),
		HoldingCost:         optional(colHoldingCost),
		AverageStockLevel:   required(colAvgStock, &ok),
		ProfitPerUnit:       optional(colProfitUnit),
		ProfitAfterHC:       optional(colProfitAfter),
	}
	if it.ProductID == "" {
		ok = false
	}
	return it, ok
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
