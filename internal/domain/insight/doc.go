// Package insight es el analizador de inventario: consultas puras, sin estado y de solo lectura
// sobre una tabla de entity.InventoryItem.
//
// Métricas derivadas por fila:
//
//	Profit          = (precio_venta - costo) * total_vendido
//	StockValue      = cantidad_disponible * costo           (inversión en inventario)
//	ProfitMargin    = (precio_venta - costo) / costo * 100  (indefinido si costo = 0)
//	SellThroughRate = total_vendido / stock_promedio         (indefinido si stock_promedio <= 0)
//
// Vistas: LowStockProfitable, OverstockLowProfit, FastMoving y BrandSummary, más
// ProfitHighlights para el resumen general. Ninguna función modifica la entrada.
package insight
