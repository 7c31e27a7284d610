package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shopify-reconciler/internal/domain/model"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInventoryRowsPreservesOrderAndRawCells(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"SKU,Location_Name,Available",
		"A-1,Main Warehouse,5",
		"B-2,East Annex,not-a-number",
		",Main Warehouse,1",
	}, "\n"))

	rows, err := LoadInventoryRows(path)
	if err != nil {
		t.Fatalf("LoadInventoryRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].SKU != "A-1" || rows[0].Available != "5" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	// Bad cells pass through untouched; validation is the reconciler's job.
	if rows[1].Available != "not-a-number" {
		t.Errorf("row 1 available = %q", rows[1].Available)
	}
	if rows[2].SKU != "" {
		t.Errorf("row 2 sku = %q", rows[2].SKU)
	}
}

func TestLoadInventoryRowsColumnOrderIndependent(t *testing.T) {
	path := writeTempCSV(t, "available,sku,location_name\n7,A-1,Main\n")

	rows, err := LoadInventoryRows(path)
	if err != nil {
		t.Fatalf("LoadInventoryRows: %v", err)
	}
	if rows[0].SKU != "A-1" || rows[0].Available != "7" || rows[0].LocationName != "Main" {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestLoadInventoryRowsMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "sku,available\nA-1,5\n")

	if _, err := LoadInventoryRows(path); err == nil {
		t.Fatal("expected error for missing location_name column")
	}
}

func TestLoadProductRowsParsesPrice(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"sku,title,price,barcode,image_url,published",
		"A-1,Widget,19.90,123456,https://cdn.example/widget.png,true",
	}, "\n"))

	rows, err := LoadProductRows(path)
	if err != nil {
		t.Fatalf("LoadProductRows: %v", err)
	}
	if rows[0].Price.StringFixed(2) != "19.90" {
		t.Errorf("price = %s", rows[0].Price)
	}
	if !rows[0].IsPublished {
		t.Error("expected published row")
	}
}

func TestLoadProductRowsBadPriceFailsLoad(t *testing.T) {
	path := writeTempCSV(t, "sku,title,price\nA-1,Widget,free\n")

	if _, err := LoadProductRows(path); err == nil {
		t.Fatal("expected error for bad price")
	}
}

func TestReportPathIsTimestamped(t *testing.T) {
	now := time.Date(2026, 8, 27, 14, 5, 9, 0, time.Local)
	got := ReportPath("/tmp/reports", "inventory-report", now)
	want := filepath.Join("/tmp/reports", "inventory-report-20260827-140509.csv")
	if got != want {
		t.Errorf("ReportPath = %q, want %q", got, want)
	}
}

func TestWriteInventoryReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	outcomes := []model.RowOutcome{
		{SKU: "A-1", LocationName: "Main", Result: model.ResultSuccess, Message: "on-hand set 0 -> 5"},
		{SKU: "B-2", LocationName: "East", Result: model.ResultError, Message: `Location "East" not found or inactive`},
	}

	if err := WriteInventoryReport(path, outcomes); err != nil {
		t.Fatalf("WriteInventoryReport: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if records[0][3] != "message" {
		t.Errorf("header = %v", records[0])
	}
	if records[2][2] != model.ResultError {
		t.Errorf("row 2 result = %q", records[2][2])
	}
}
