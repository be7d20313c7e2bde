package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"backoffice/internal/account"
	"backoffice/internal/api"
	"backoffice/internal/catalog"
	"backoffice/internal/commons"
	"backoffice/internal/config"
	"backoffice/internal/infrastructure/logger"
	"backoffice/internal/order"
	"backoffice/internal/payment"
	"backoffice/internal/shell"

	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	client := api.NewClient(cfg.HTTP.Timeout, zapLogger)

	accountsPanel := account.NewPanel(client, cfg.Services.Accounts, zapLogger)
	catalogPanel := catalog.NewPanel(client, cfg.Services.CatalogItems, zapLogger)
	ordersPanel := order.NewPanel(client, cfg.Services.Orders, zapLogger)
	paymentsPanel := payment.NewPanel(client, cfg.Services.Payments, zapLogger)

	console := shell.New(os.Stdin, os.Stdout, zapLogger,
		accountsPanel, catalogPanel, ordersPanel, paymentsPanel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := console.Run(ctx); err != nil && ctx.Err() == nil {
		zapLogger.Fatal("console error", zap.Error(err))
	}

	zapLogger.Info("console stopped")
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
