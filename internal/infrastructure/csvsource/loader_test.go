package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/jhoicas/inventory-insight/internal/infrastructure/csvsource"
)

const header = "Product_ID,Product_Name,Product_Brand,Available_Quantity,Average_Selling_Price," +
	"Average_Buying_Price,Total_Sold,Monthly_Sale_Quantity,Average_Stock_Level,Holding_Cost\n"

func TestParse_RecortaTextoYConvierteNumeros(t *testing.T) {
	in := header +
		"  P1 , Café molido ,  Acme  ,10,15.50,10,100,30,50,2\n" +
		"P2,Té,Zeta,5,12,10,1e2,40,20,abc\n"

	items, report, err := csvsource.Parse(context.Background(), strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, 0, report.Skipped)

	assert.Equal(t, "P1", items[0].ProductID)
	assert.Equal(t, "Café molido", items[0].ProductName)
	assert.Equal(t, "Acme", items[0].Brand)
	assert.True(t, items[0].AverageSellingPrice.Equal(decimal.RequireFromString("15.5")))
	assert.True(t, items[0].HoldingCost.Equal(decimal.NewFromInt(2)))

	assert.True(t, items[1].TotalSold.Equal(decimal.NewFromInt(100)), "notación exponencial")
	assert.True(t, items[1].HoldingCost.IsZero(), "opcional inválido queda en cero")
}

func TestParse_DescartaFilasConNumericosObligatoriosInvalidos(t *testing.T) {
	in := header +
		"P1,A,Acme,10,15,10,100,30,50,0\n" +
		"P2,B,Acme,,15,10,100,30,50,0\n" +
		"P3,C,Acme,10,n/a,10,100,30,50,0\n" +
		",D,Acme,10,15,10,100,30,50,0\n"

	items, report, err := csvsource.Parse(context.Background(), strings.NewReader(in))
	require.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Equal(t, 3, report.Skipped)
	assert.Equal(t, []int{3, 4, 5}, report.SkippedLines)
}

func TestParse_FaltanColumnasObligatorias(t *testing.T) {
	in := "Product_ID,Product_Name\nP1,A\n"

	_, _, err := csvsource.Parse(context.Background(), strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Average_Buying_Price")
}

func TestParse_EncabezadoConBOM(t *testing.T) {
	in := "\ufeff" + header + "P1,A,Acme,10,15,10,100,30,50,0\n"

	items, _, err := csvsource.Parse(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "P1", items[0].ProductID)
}

func TestParse_CSVVacio(t *testing.T) {
	_, _, err := csvsource.Parse(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoader_ArchivoInexistente(t *testing.T) {
	l := csvsource.NewLoader(csvsource.Options{Path: filepath.Join(t.TempDir(), "nope.csv")}, nil)

	_, err := l.ListItems(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoader_DecodificaLatin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(header + "P1,Jalapeño,Señor,1,2,1,3,4,5,0\n")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o600))

	l := csvsource.NewLoader(csvsource.Options{Path: path, Encoding: "latin1"}, nil)
	items, report, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, report.Rows)
	assert.Equal(t, "Jalapeño", items[0].ProductName)
	assert.Equal(t, "Señor", items[0].Brand)
}

func TestLoader_CodificacionNoSoportada(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(header), 0o600))

	l := csvsource.NewLoader(csvsource.Options{Path: path, Encoding: "utf-16"}, nil)
	_, err := l.ListItems(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
