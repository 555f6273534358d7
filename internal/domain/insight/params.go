package insight

import (
	"fmt"

	"github.com/jhoicas/inventory-insight/internal/domain"
	"github.com/shopspring/decimal"
)

// LowStockParams umbrales de la vista "Low-Stock Profitable".
type LowStockParams struct {
	QuantityThreshold decimal.Decimal // cantidad disponible <= umbral
	MarginThreshold   decimal.Decimal // margen % >= umbral
}

// OverstockParams umbrales de la vista "Over-Stocked Low-Profit".
type OverstockParams struct {
	QuantityThreshold decimal.Decimal // cantidad disponible >= umbral
	MarginThreshold   decimal.Decimal // margen % <= umbral
}

// FastMovingParams umbrales de la vista "Fast-Moving".
type FastMovingParams struct {
	VelocityThreshold decimal.Decimal // sell-through >= umbral
	MinMonthlySales   decimal.Decimal // ventas mensuales >= mínimo
}

// Valores por defecto de las vistas.
func DefaultLowStockParams() LowStockParams {
	return LowStockParams{QuantityThreshold: decimal.NewFromInt(60), MarginThreshold: decimal.NewFromInt(20)}
}

func DefaultOverstockParams() OverstockParams {
	return OverstockParams{QuantityThreshold: decimal.NewFromInt(200), MarginThreshold: decimal.NewFromInt(10)}
}

func DefaultFastMovingParams() FastMovingParams {
	return FastMovingParams{VelocityThreshold: decimal.RequireFromString("1.2"), MinMonthlySales: decimal.NewFromInt(40)}
}

// Validate exige umbral de cantidad no negativo. El margen puede ser negativo.
func (p LowStockParams) Validate() error {
	if p.QuantityThreshold.IsNegative() {
		return fmt.Errorf("%w: quantity_threshold no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func (p OverstockParams) Validate() error {
	if p.QuantityThreshold.IsNegative() {
		return fmt.Errorf("%w: quantity_threshold no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func (p FastMovingParams) Validate() error {
	if !p.VelocityThreshold.IsPositive() {
		return fmt.Errorf("%w: velocity_threshold debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if p.MinMonthlySales.IsNegative() {
		return fmt.Errorf("%w: min_monthly_sales no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
