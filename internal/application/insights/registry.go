package insights

// Claves de las vistas publicadas.
const (
	ViewLowStock     = "low-stock"
	ViewOverstock    = "over-stock"
	ViewFastMoving   = "fast-moving"
	ViewBrandSummary = "brand-summary"
)

// Nombres de parámetros aceptados por las vistas.
const (
	ParamQuantityThreshold = "quantity_threshold"
	ParamMarginThreshold   = "margin_threshold"
	ParamVelocityThreshold = "velocity_threshold"
	ParamMinMonthlySales   = "min_monthly_sales"
)

type viewDef struct {
	key         string
	label       string
	description string
	params      []string
}

// El orden del registro es el orden en que se listan y se muestran en el overview.
var registry = []viewDef{
	{
		key:         ViewLowStock,
		label:       "Low-Stock Profitable",
		description: "Items running low on stock that still earn a healthy margin: restock candidates.",
		params:      []string{ParamQuantityThreshold, ParamMarginThreshold},
	},
	{
		key:         ViewOverstock,
		label:       "Over-Stocked Low-Profit",
		description: "Items with plenty of stock and a thin margin: capital tied up in slow earners.",
		params:      []string{ParamQuantityThreshold, ParamMarginThreshold},
	},
	{
		key:         ViewFastMoving,
		label:       "Fast-Moving",
		description: "Items whose sell-through rate and monthly sales exceed the thresholds.",
		params:      []string{ParamVelocityThreshold, ParamMinMonthlySales},
	},
	{
		key:         ViewBrandSummary,
		label:       "Brand Summary",
		description: "Profit, stock value, average margin and SKU count per brand.",
		params:      []string{},
	},
}

func lookupView(key string) (viewDef, bool) {
	for _, v := range registry {
		if v.key == key {
			return v, true
		}
	}
	return viewDef{}, false
}
