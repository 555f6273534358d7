package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
	"github.com/jhoicas/inventory-insight/internal/application/insights"
	"github.com/jhoicas/inventory-insight/internal/bootstrap"
	"github.com/jhoicas/inventory-insight/internal/interfaces/render"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Sesión interactiva sobre el inventario cargado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			deps, err := a.insights(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			sh, err := newShell(a, deps)
			if err != nil {
				return err
			}
			defer sh.rl.Close()
			return sh.run(ctx)
		},
	}
}

// shell lazo interactivo; reutiliza el snapshot cargado entre comandos.
type shell struct {
	app  *app
	deps *bootstrap.Insights
	rl   *readline.Instance
}

func newShell(a *app, deps *bootstrap.Insights) (*shell, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[1;36minsight>\033[0m ",
		HistoryFile:       home + "/.inventory_insight_history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("inicializar readline: %w", err)
	}
	return &shell{app: a, deps: deps, rl: rl}, nil
}

func (s *shell) run(ctx context.Context) error {
	fmt.Fprintln(s.rl.Stdout(), "Inventory Insight shell. Escriba 'help' para ver los comandos o 'exit' para salir.")
	for {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd := strings.ToLower(fields[0])
		if cmd == "exit" || cmd == "quit" || cmd == `\q` {
			return nil
		}

		start := time.Now()
		out, err := s.exec(ctx, cmd, fields[1:])
		if err != nil {
			fmt.Fprintf(s.rl.Stderr(), "\033[1;31mError:\033[0m %v\n", err)
			continue
		}
		fmt.Fprintln(s.rl.Stdout(), out)
		if s.app.format != render.FormatJSON {
			fmt.Fprintf(s.rl.Stdout(), "\033[1;32m(%v)\033[0m\n", time.Since(start).Round(time.Microsecond))
		}
	}
}

func (s *shell) exec(ctx context.Context, cmd string, args []string) (string, error) {
	uc := s.deps.UseCase
	switch cmd {
	case "help", `\h`, `\?`:
		return s.help(), nil
	case "views":
		var b strings.Builder
		for _, v := range uc.ListViews() {
			fmt.Fprintf(&b, "%-14s %s\n", v.Key, v.Description)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	case "format":
		if len(args) != 1 {
			return "", fmt.Errorf("uso: format <text|markdown|json>")
		}
		if err := render.ValidateFormat(args[0]); err != nil {
			return "", err
		}
		s.app.format = args[0]
		return "formato: " + args[0], nil
	case "highlights", "overview":
		top := 5
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("top inválido %q", args[0])
			}
			top = n
		}
		if cmd == "highlights" {
			h, err := uc.GetHighlights(ctx, top)
			if err != nil {
				return "", err
			}
			return render.Highlights(h, s.app.format)
		}
		o, err := uc.GetOverview(ctx, top)
		if err != nil {
			return "", err
		}
		return render.Overview(o, s.app.format)
	case "reload":
		snap, err := s.deps.Store.Reload(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d ítems cargados (versión %s)", len(snap.Items), snap.Version), nil
	}

	q, err := parseShellQuery(args)
	if err != nil {
		return "", err
	}
	v, err := uc.GetView(ctx, cmd, q)
	if err != nil {
		return "", err
	}
	return render.View(v, s.app.format)
}

func (s *shell) help() string {
	var keys []string
	for _, v := range s.deps.UseCase.ListViews() {
		keys = append(keys, v.Key)
	}
	return strings.Join([]string{
		"Comandos:",
		"  <vista> [param=valor ...]  vistas: " + strings.Join(keys, ", "),
		"                             params: quantity, margin, velocity, min-sales, limit",
		"  views                      lista las vistas disponibles",
		"  highlights [n]             top n productos por profit",
		"  overview [n]               conteos con los umbrales por defecto",
		"  reload                     vuelve a leer la fuente de datos",
		"  format <f>                 text, markdown o json",
		"  exit                       salir",
	}, "\n")
}

// parseShellQuery interpreta argumentos "clave=valor".
func parseShellQuery(args []string) (dto.InsightQuery, error) {
	q := dto.InsightQuery{Limit: dto.DefaultPageLimit}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return q, fmt.Errorf("argumento %q: se espera param=valor", arg)
		}
		if k == "limit" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return q, fmt.Errorf("limit inválido %q", v)
			}
			q.Limit = n
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return q, fmt.Errorf("%s inválido %q", k, v)
		}
		nd := decimal.NewNullDecimal(d)
		switch k {
		case "quantity", insights.ParamQuantityThreshold:
			q.QuantityThreshold = nd
		case "margin", insights.ParamMarginThreshold:
			q.MarginThreshold = nd
		case "velocity", insights.ParamVelocityThreshold:
			q.VelocityThreshold = nd
		case "min-sales", insights.ParamMinMonthlySales:
			q.MinMonthlySales = nd
		default:
			return q, fmt.Errorf("parámetro desconocido %q", k)
		}
	}
	return q, nil
}
