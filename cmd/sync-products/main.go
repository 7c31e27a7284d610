// Upserts products, variants and images from a product table (CSV or MySQL)
// into Shopify, one row at a time, and writes a per-row report.
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
	"shopify-reconciler/internal/domain/model"
	"shopify-reconciler/internal/infra/csvio"
	infrahttp "shopify-reconciler/internal/infra/http"
	"shopify-reconciler/internal/infra/mysql"
	"shopify-reconciler/internal/logging"
)

func main() {
	cfg, err := config.LoadForProductSync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.LogLevel,
		zap.String("job", "sync-products"),
		zap.String("run_id", uuid.NewString()),
	)

	ctx := context.Background()
	rows, err := loadProductRows(ctx, cfg)
	if err != nil {
		logger.LogError("failed to load product rows", err)
		os.Exit(1)
	}

	httpClient := infrahttp.NewClient(cfg.Shopify.Timeout)
	shopifyClient := shopify.NewClient(cfg.Shopify, httpClient, logger)
	syncer := usecases.NewSyncProducts(shopifyClient, logger, cfg.Batch)

	outcomes := syncer.Run(ctx, rows)

	reportPath := csvio.ReportPath(cfg.Batch.ReportDir, "products-report", time.Now())
	if err := csvio.WriteProductReport(reportPath, outcomes); err != nil {
		logger.LogError("failed to write report", err, zap.String("path", reportPath))
		os.Exit(1)
	}
	logger.LogSuccess("report written", zap.String("path", reportPath))
}

func loadProductRows(ctx context.Context, cfg *config.Config) ([]model.ProductRow, error) {
	if cfg.Batch.ProductsSource == "mysql" {
		db, err := mysql.New(cfg.Mysql)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return mysql.NewProductSource(db).LoadProducts(ctx)
	}
	return csvio.LoadProductRows(cfg.Batch.InputPath)
}
