// Package format da formato legible a cantidades decimales (separador de miles).
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number redondea a places decimales y agrupa la parte entera por miles: 1234567.891 -> "1,234,567.89".
func Number(d decimal.Decimal, places int32) string {
	r := d.Round(places)
	neg := r.IsNegative()
	r = r.Abs()

	out := printer.Sprintf("%d", r.IntPart())
	if places > 0 {
		_, frac, _ := strings.Cut(r.StringFixed(places), ".")
		out += "." + frac
	}
	if neg {
		return "-" + out
	}
	return out
}

// Money formatea un importe con símbolo y dos decimales: "$1,234.50", "-$3.00".
func Money(d decimal.Decimal) string {
	s := Number(d, 2)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// Percent formatea un porcentaje con dos decimales. Un valor nulo se muestra como "n/a".
func Percent(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}
	return Number(d.Decimal, 2) + "%"
}

// Ratio formatea una tasa como "1.35x". Un valor nulo se muestra como "n/a".
func Ratio(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}
	return d.Decimal.StringFixed(2) + "x"
}
