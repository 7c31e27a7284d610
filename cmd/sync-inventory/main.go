// Reconciles absolute on-hand inventory quantities from a CSV table against
// the Shopify Admin API, one row at a time, and writes a per-row report.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopify-reconciler/internal/adapters/shopify"
	"shopify-reconciler/internal/app/usecases"
	"shopify-reconciler/internal/config"
	"shopify-reconciler/internal/infra/csvio"
	infrahttp "shopify-reconciler/internal/infra/http"
	"shopify-reconciler/internal/logging"
)

func main() {
	cfg, err := config.LoadForInventorySync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.LogLevel,
		zap.String("job", "sync-inventory"),
		zap.String("run_id", uuid.NewString()),
	)

	rows, err := csvio.LoadInventoryRows(cfg.Batch.InputPath)
	if err != nil {
		logger.LogError("failed to load inventory rows", err, zap.String("path", cfg.Batch.InputPath))
		os.Exit(1)
	}

	httpClient := infrahttp.NewClient(cfg.Shopify.Timeout)
	shopifyClient := shopify.NewClient(cfg.Shopify, httpClient, logger)
	reconciler := usecases.NewReconcileInventory(shopifyClient, logger, cfg.Batch)

	outcomes := reconciler.Run(context.Background(), rows)

	reportPath := csvio.ReportPath(cfg.Batch.ReportDir, "inventory-report", time.Now())
	if err := csvio.WriteInventoryReport(reportPath, outcomes); err != nil {
		logger.LogError("failed to write report", err, zap.String("path", reportPath))
		os.Exit(1)
	}
	logger.LogSuccess("report written", zap.String("path", reportPath))
}
