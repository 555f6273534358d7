package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-insight/internal/application/inventory"
	"github.com/jhoicas/inventory-insight/internal/bootstrap"
	"github.com/jhoicas/inventory-insight/internal/interfaces/render"
	"github.com/jhoicas/inventory-insight/pkg/jwt"
)

func newViewCmd(a *app) *cobra.Command {
	var th thresholdFlags
	cmd := &cobra.Command{
		Use:   "view <low-stock|over-stock|fast-moving|brand-summary>",
		Short: "Calcula una vista de análisis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := a.insights(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			v, err := deps.UseCase.GetView(ctx, args[0], th.query(cmd))
			if err != nil {
				return err
			}
			s, err := render.View(v, a.format)
			if err != nil {
				return err
			}
			a.print(s)
			return nil
		},
	}
	th.bind(cmd)
	return cmd
}

func newHighlightsCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "highlights",
		Short: "Top productos por profit y valor de inventario por marca",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			deps, err := a.insights(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			h, err := deps.UseCase.GetHighlights(ctx, top)
			if err != nil {
				return err
			}
			s, err := render.Highlights(h, a.format)
			if err != nil {
				return err
			}
			a.print(s)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "productos en el top")
	return cmd
}

func newOverviewCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Conteos de las cuatro vistas con los umbrales por defecto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			deps, err := a.insights(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			o, err := deps.UseCase.GetOverview(ctx, top)
			if err != nil {
				return err
			}
			s, err := render.Overview(o, a.format)
			if err != nil {
				return err
			}
			a.print(s)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "productos en el top")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		th     thresholdFlags
		as     string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export <view>",
		Short: "Genera el reporte PDF o XML de una vista",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := a.insights(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			res, err := deps.UseCase.Export(ctx, args[0], th.query(cmd), as)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, res.Filename)
			if err := os.WriteFile(path, res.Data, 0o644); err != nil {
				return fmt.Errorf("escribir reporte: %w", err)
			}
			a.print(path)
			return nil
		},
	}
	th.bind(cmd)
	cmd.Flags().StringVar(&as, "as", "pdf", "formato del reporte: pdf o xml")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directorio de salida")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Importa el CSV de inventario a la base configurada (postgres o mysql)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if csvPath != "" {
				a.cfg.Data.CSVPath = csvPath
			}
			store, closeStore, err := bootstrap.OpenSQLStore(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			uc := inventory.NewImportUseCase(bootstrap.CSVLoader(a.cfg, a.log), store, a.log)
			res, err := uc.Execute(ctx)
			if err != nil {
				return err
			}
			a.print(fmt.Sprintf("%d filas leídas, %d escritas en %s", res.Read, res.Written, a.cfg.Data.Source))
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "ruta del CSV (por defecto DATA_CSV_PATH)")
	return cmd
}

func newTokenCmd(a *app) *cobra.Command {
	var (
		subject string
		scope   string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT para la API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.JWT.Secret == "" {
				return fmt.Errorf("JWT_SECRET no configurado")
			}
			if scope != "read" && scope != "admin" {
				return fmt.Errorf("scope inválido %q (read o admin)", scope)
			}
			minutes := a.cfg.JWT.Expiration
			if cmd.Flags().Changed("ttl") {
				minutes = int(ttl / time.Minute)
			}
			if minutes <= 0 {
				return fmt.Errorf("ttl debe ser de al menos un minuto")
			}
			tok, err := jwt.Generate(a.cfg.JWT.Secret, subject, scope, a.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			a.print(tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "cli", "sujeto del token")
	cmd.Flags().StringVar(&scope, "scope", "read", "scope: read o admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "vigencia (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
