package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shopify-reconciler/internal/domain/model"
)

// ReportPath builds a report file path under dir, stamped with the local time
// so consecutive runs never clobber each other.
func ReportPath(dir, prefix string, now time.Time) string {
	name := fmt.Sprintf("%s-%s.csv", prefix, now.Format("20060102-150405"))
	return filepath.Join(dir, name)
}

// WriteInventoryReport writes one line per outcome, preserving input order.
func WriteInventoryReport(path string, outcomes []model.RowOutcome) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"sku", "location_name", "result", "message"}); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, o := range outcomes {
		if err := writer.Write([]string{o.SKU, o.LocationName, o.Result, o.Message}); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return file.Close()
}

// WriteProductReport is the product-job counterpart of WriteInventoryReport.
func WriteProductReport(path string, outcomes []model.ProductOutcome) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"sku", "result", "message"}); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, o := range outcomes {
		if err := writer.Write([]string{o.SKU, o.Result, o.Message}); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return file.Close()
}
