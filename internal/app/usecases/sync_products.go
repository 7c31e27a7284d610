package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"shopify-reconciler/internal/adapters/shopify"
	"shopify-reconciler/internal/config"
	"shopify-reconciler/internal/domain/model"
	"shopify-reconciler/internal/logging"
)

// SyncProductsService upserts product rows one at a time, producing one
// outcome per row in input order, with the same pacing contract as the
// inventory job.
type SyncProductsService interface {
	Run(ctx context.Context, rows []model.ProductRow) []model.ProductOutcome
}

type productSyncer struct {
	shopifyClient shopify.ProductService
	logger        logging.LoggerService
	paceDelay     time.Duration
	sleep         func(time.Duration)
}

func NewSyncProducts(shopifyClient shopify.ProductService, logger logging.LoggerService, batch config.BatchConfig) SyncProductsService {
	return &productSyncer{
		shopifyClient: shopifyClient,
		logger:        logger,
		paceDelay:     batch.PaceDelay,
		sleep:         time.Sleep,
	}
}

func (s *productSyncer) Run(ctx context.Context, rows []model.ProductRow) []model.ProductOutcome {
	if s.logger != nil {
		s.logger.Log("product sync started", zap.Int("rows", len(rows)))
	}

	outcomes := make([]model.ProductOutcome, 0, len(rows))
	created, updated := 0, 0
	for _, row := range rows {
		outcome, wasCreated := s.upsertRow(ctx, row)
		outcomes = append(outcomes, outcome)
		if outcome.Result == model.ResultSuccess {
			if wasCreated {
				created++
			} else {
				updated++
			}
		}
	}

	if s.logger != nil {
		s.logger.LogSuccess("product sync completed",
			zap.Int("rows", len(rows)),
			zap.Int("created", created),
			zap.Int("updated", updated),
			zap.Int("failed", len(rows)-created-updated),
		)
	}
	return outcomes
}

func (s *productSyncer) upsertRow(ctx context.Context, row model.ProductRow) (outcome model.ProductOutcome, created bool) {
	defer s.sleep(s.paceDelay)

	sku := strings.TrimSpace(row.SKU)
	if sku == "" {
		return model.ProductOutcome{SKU: row.SKU, Result: model.ResultError, Message: "invalid row: empty sku"}, false
	}
	if strings.TrimSpace(row.Title) == "" {
		return model.ProductOutcome{SKU: sku, Result: model.ResultError, Message: "invalid row: empty title"}, false
	}

	exists, productGID, err := s.shopifyClient.CheckExistProductBySKU(ctx, sku)
	if err != nil {
		return model.ProductOutcome{SKU: sku, Result: model.ResultError, Message: fmt.Sprintf("resolve sku: %v", err)}, false
	}

	if exists {
		if err := s.shopifyClient.UpdateProduct(ctx, row, productGID); err != nil {
			return model.ProductOutcome{SKU: sku, Result: model.ResultError, Message: fmt.Sprintf("update product: %v", err)}, false
		}
	} else {
		productGID, err = s.shopifyClient.CreateProduct(ctx, row)
		if err != nil {
			return model.ProductOutcome{SKU: sku, Result: model.ResultError, Message: fmt.Sprintf("create product: %v", err)}, false
		}
		created = true
	}

	if err := s.shopifyClient.EnsureProductImage(ctx, productGID, row.ImageURL); err != nil {
		// The product itself landed; report the image problem without
		// failing the row retroactively on a later re-run.
		if s.logger != nil {
			s.logger.LogWarning("image attach failed", zap.String("sku", sku), zap.Error(err))
		}
		return model.ProductOutcome{SKU: sku, Result: model.ResultSuccess, Message: fmt.Sprintf("%s, image attach failed: %v", upsertVerb(created), err)}, created
	}

	return model.ProductOutcome{SKU: sku, Result: model.ResultSuccess, Message: upsertVerb(created)}, created
}

func upsertVerb(created bool) string {
	if created {
		return "created"
	}
	return "updated"
}
