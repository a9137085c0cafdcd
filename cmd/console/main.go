package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/autoflexhq/inventory-console/api/routes"
	"github.com/autoflexhq/inventory-console/internal/bom"
	"github.com/autoflexhq/inventory-console/internal/production"
	"github.com/autoflexhq/inventory-console/internal/products"
	"github.com/autoflexhq/inventory-console/internal/rawmaterials"
	"github.com/autoflexhq/inventory-console/pkg/config"
	"github.com/autoflexhq/inventory-console/pkg/inventory"
	"github.com/autoflexhq/inventory-console/pkg/logger"
	"github.com/autoflexhq/inventory-console/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "console"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "console",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	client, err := inventory.NewClient(cfg.Inventory.BaseURL, inventory.WithTimeout(cfg.Inventory.RequestTimeout))
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory client", err)
		os.Exit(1)
	}

	productService, err := products.NewService(client)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}
	rawMaterialService, err := rawmaterials.NewService(client)
	if err != nil {
		logg.Error(context.Background(), "failed to create raw material service", err)
		os.Exit(1)
	}
	productionService, err := production.NewService(client)
	if err != nil {
		logg.Error(context.Background(), "failed to create production service", err)
		os.Exit(1)
	}

	registry := bom.NewRegistry(client, cfg.Session.IdleTTL, logg)
	registry.StartSweeper(context.Background(), cfg.Session.SweepInterval)

	promRegistry := prometheus.NewRegistry()
	var httpMetrics *metrics.HTTPMetrics
	if cfg.Metrics.Enabled {
		httpMetrics = metrics.NewHTTPMetrics(promRegistry)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting console server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			httpMetrics,
			promRegistry,
			productService,
			rawMaterialService,
			productionService,
			registry,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "console server stopped unexpectedly", err)
		os.Exit(1)
	}
}
