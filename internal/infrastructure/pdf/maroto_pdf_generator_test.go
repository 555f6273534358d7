package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
)

func TestMarotoPDFGenerator_Export(t *testing.T) {
	g := NewMarotoPDFGenerator("inventory-insight")
	report := &dto.InsightReportDTO{
		View:        "brand-summary",
		Title:       "Brand Summary",
		Summary:     "2 brands analysed.",
		GeneratedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Columns:     []string{"Brand", "Total Profit", "Stock Value", "Avg Margin", "SKUs"},
		Rows: [][]string{
			{"Acme", "$45.00", "$600.00", "35.00%", "3"},
			{"Bolt", "$1.00", "$3,000.00", "5.00%", "1"},
		},
		Total: 2,
	}

	data, err := g.Export(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}

func TestMarotoPDFGenerator_SinColumnas(t *testing.T) {
	_, err := NewMarotoPDFGenerator("x").Export(context.Background(), &dto.InsightReportDTO{})
	assert.Error(t, err)
}

func TestColumnWidths_SumanLaGrilla(t *testing.T) {
	for n := 1; n <= 12; n++ {
		sum := 0
		widths := columnWidths(n)
		require.Len(t, widths, n)
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, gridSize, sum, "n=%d", n)
	}
}
