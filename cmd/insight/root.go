package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/bootstrap"
	"github.com/jhoicas/inventory-insight/internal/interfaces/render"
	"github.com/jhoicas/inventory-insight/pkg/config"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

// app estado compartido por los subcomandos.
type app struct {
	format   string
	logLevel string
	out      io.Writer

	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{out: os.Stdout}

	root := &cobra.Command{
		Use:           "insight",
		Short:         "Análisis de inventario desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := render.ValidateFormat(a.format); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.App.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: os.Stderr})
			a.out = cmd.OutOrStdout()
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.format, "format", "f", render.FormatText, "formato de salida: text, markdown o json")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")

	root.AddCommand(
		newViewCmd(a),
		newHighlightsCmd(a),
		newOverviewCmd(a),
		newExportCmd(a),
		newShellCmd(a),
		newSeedCmd(a),
		newTokenCmd(a),
	)
	return root
}

// insights carga el inventario y devuelve los casos de uso listos.
func (a *app) insights(ctx context.Context) (*bootstrap.Insights, error) {
	return bootstrap.NewInsights(ctx, a.cfg, a.log)
}

func (a *app) print(s string) {
	fmt.Fprintln(a.out, s)
}

// thresholdFlags umbrales opcionales; los no indicados toman el valor configurado.
type thresholdFlags struct {
	quantity float64
	margin   float64
	velocity float64
	minSales float64
	limit    int
}

func (t *thresholdFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&t.quantity, "quantity", 0, "umbral de cantidad disponible")
	f.Float64Var(&t.margin, "margin", 0, "umbral de margen (%)")
	f.Float64Var(&t.velocity, "velocity", 0, "sell-through mínimo")
	f.Float64Var(&t.minSales, "min-sales", 0, "ventas mensuales mínimas")
	f.IntVar(&t.limit, "limit", dto.DefaultPageLimit, "máximo de filas")
}

func (t *thresholdFlags) query(cmd *cobra.Command) dto.InsightQuery {
	f := cmd.Flags()
	q := dto.InsightQuery{Limit: t.limit}
	if f.Changed("quantity") {
		q.QuantityThreshold = nullDecimal(t.quantity)
	}
	if f.Changed("margin") {
		q.MarginThreshold = nullDecimal(t.margin)
	}
	if f.Changed("velocity") {
		q.VelocityThreshold = nullDecimal(t.velocity)
	}
	if f.Changed("min-sales") {
		q.MinMonthlySales = nullDecimal(t.minSales)
	}
	return q
}

func nullDecimal(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}
