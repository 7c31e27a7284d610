package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"shopify-reconciler/internal/adapters/shopify"
	"shopify-reconciler/internal/config"
	"shopify-reconciler/internal/domain/model"
	"shopify-reconciler/internal/logging"
)

// ReconcileInventoryService processes inventory rows strictly in input order
// and returns exactly one outcome per row.
type ReconcileInventoryService interface {
	Run(ctx context.Context, rows []model.InventoryRow) []model.RowOutcome
}

type inventoryReconciler struct {
	shopifyClient shopify.InventoryService
	logger        logging.LoggerService
	paceDelay     time.Duration
	propagation   time.Duration
	sleep         func(time.Duration)
}

func NewReconcileInventory(shopifyClient shopify.InventoryService, logger logging.LoggerService, batch config.BatchConfig) ReconcileInventoryService {
	return &inventoryReconciler{
		shopifyClient: shopifyClient,
		logger:        logger,
		paceDelay:     batch.PaceDelay,
		propagation:   batch.PropagationDelay,
		sleep:         time.Sleep,
	}
}

// Run never aborts on a row failure: each row's fate lands in its own outcome
// and the batch moves on. Rows are processed one at a time, so at most one
// request is in flight against the Admin API.
func (r *inventoryReconciler) Run(ctx context.Context, rows []model.InventoryRow) []model.RowOutcome {
	if r.logger != nil {
		r.logger.Log("inventory reconciliation started", zap.Int("rows", len(rows)))
	}

	outcomes := make([]model.RowOutcome, 0, len(rows))
	succeeded := 0
	for i, row := range rows {
		outcome := r.reconcileRow(ctx, row)
		outcomes = append(outcomes, outcome)
		if outcome.Result == model.ResultSuccess {
			succeeded++
			continue
		}
		if r.logger != nil {
			r.logger.LogWarning("row failed",
				zap.Int("row", i+1),
				zap.String("sku", row.SKU),
				zap.String("location", row.LocationName),
				zap.String("message", outcome.Message),
			)
		}
	}

	if r.logger != nil {
		r.logger.LogSuccess("inventory reconciliation completed",
			zap.Int("rows", len(rows)),
			zap.Int("succeeded", succeeded),
			zap.Int("failed", len(rows)-succeeded),
		)
	}
	return outcomes
}

// reconcileRow runs the per-row stages in order, short-circuiting on the
// first failure: validate, resolve SKU, resolve location, ensure the
// inventory link, set the absolute quantity. The inter-row pacing delay is
// deferred so it runs on every exit path.
func (r *inventoryReconciler) reconcileRow(ctx context.Context, row model.InventoryRow) model.RowOutcome {
	defer r.sleep(r.paceDelay)

	sku := strings.TrimSpace(row.SKU)
	locationName := strings.TrimSpace(row.LocationName)
	if sku == "" {
		return model.ErrorOutcome(row, "invalid row: empty sku")
	}
	if locationName == "" {
		return model.ErrorOutcome(row, "invalid row: empty location_name")
	}
	available, err := strconv.Atoi(strings.TrimSpace(row.Available))
	if err != nil || available < 0 {
		return model.ErrorOutcome(row, fmt.Sprintf("invalid row: available %q is not a non-negative integer", row.Available))
	}

	variant, err := r.shopifyClient.FindVariantBySKU(ctx, sku)
	if err != nil {
		if shopify.IsNotFound(err) {
			return model.ErrorOutcome(row, fmt.Sprintf("SKU %q not found", sku))
		}
		return model.ErrorOutcome(row, fmt.Sprintf("resolve sku: %v", err))
	}
	if variant.InventoryItemID == 0 {
		return model.ErrorOutcome(row, fmt.Sprintf("variant %q has no inventory item (not inventory-tracked)", sku))
	}

	location, err := r.shopifyClient.FindLocationByName(ctx, locationName)
	if err != nil {
		if shopify.IsNotFound(err) {
			return model.ErrorOutcome(row, fmt.Sprintf("Location %q not found or inactive", locationName))
		}
		return model.ErrorOutcome(row, fmt.Sprintf("resolve location: %v", err))
	}

	prior, err := r.ensureInventoryLink(ctx, variant.InventoryItemID, location.ID)
	if err != nil {
		return model.ErrorOutcome(row, fmt.Sprintf("connect inventory level: %v", err))
	}

	if err := r.shopifyClient.SetOnHandQuantity(ctx, variant.InventoryItemID, location.ID, available); err != nil {
		if userErrs, ok := shopify.AsUserErrors(err); ok {
			return model.ErrorOutcome(row, fmt.Sprintf("set on-hand rejected: %v", userErrs))
		}
		return model.ErrorOutcome(row, fmt.Sprintf("set on-hand: %v", err))
	}

	message := fmt.Sprintf("on-hand set %d -> %d", prior, available)
	if !location.IsActive {
		message += fmt.Sprintf(" (location %q is inactive)", location.Name)
	}
	return model.SuccessOutcome(row, message)
}

// ensureInventoryLink guarantees an inventory level exists for the pair and
// returns the prior available quantity. A level that stays unreadable after a
// connect attempt is tolerated: some locations, inactive ones in particular,
// never surface a readable level even though the subsequent set-quantity call
// can still succeed. The prior quantity defaults to 0 in that case.
func (r *inventoryReconciler) ensureInventoryLink(ctx context.Context, inventoryItemID int64, locationID string) (int, error) {
	available, found, err := r.shopifyClient.GetInventoryLevel(ctx, inventoryItemID, locationID)
	if err == nil && found {
		return available, nil
	}

	if err := r.shopifyClient.ConnectInventory(ctx, inventoryItemID, locationID); err != nil {
		return 0, err
	}

	// Give the backend a beat to surface the new level before re-reading.
	r.sleep(r.propagation)

	available, found, err = r.shopifyClient.GetInventoryLevel(ctx, inventoryItemID, locationID)
	if err != nil || !found {
		return 0, nil
	}
	return available, nil
}
