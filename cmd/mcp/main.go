package main

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jhoicas/inventory-insight/internal/bootstrap"
	"github.com/jhoicas/inventory-insight/internal/interfaces/mcpserver"
	"github.com/jhoicas/inventory-insight/pkg/config"
	"github.com/jhoicas/inventory-insight/pkg/logger"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// stdout es el canal del protocolo; los logs van a stderr.
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
		Output:  os.Stderr,
	})

	deps, err := bootstrap.NewInsights(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("carga inicial del inventario")
	}
	defer deps.Close()

	s := mcpserver.NewServer(deps.UseCase, version, log)

	log.Info().Str("source", cfg.Data.Source).Msg("servidor MCP escuchando por stdio")
	if err := server.ServeStdio(s); err != nil {
		log.Error().Err(err).Msg("servidor MCP finalizado")
		os.Exit(1)
	}
}
