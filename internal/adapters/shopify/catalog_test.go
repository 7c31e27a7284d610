package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopify-reconciler/internal/config"
	"shopify-reconciler/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.ShopifyConfig{
		ShopDomain: srv.URL,
		Token:      "test-token",
		APIVer:     "2024-10",
		Timeout:    5 * time.Second,
	}
	return NewClient(cfg, srv.Client(), logging.NewNopLogger()), srv
}

func restPage(products ...map[string]any) []byte {
	body, _ := json.Marshal(map[string]any{"products": products})
	return body
}

func TestFindVariantBySKUPaginates(t *testing.T) {
	var srv *httptest.Server
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/api/2024-10/products.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Shopify-Access-Token"); got != "test-token" {
			t.Errorf("missing access token header, got %q", got)
		}

		if r.URL.Query().Get("page_info") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/admin/api/2024-10/products.json?limit=250&page_info=cursor2>; rel="next"`, srv.URL))
			w.Write(restPage(map[string]any{
				"id": 1,
				"variants": []map[string]any{
					{"id": 11, "product_id": 1, "sku": "ALPHA", "inventory_item_id": 111},
				},
			}))
			return
		}
		w.Write(restPage(map[string]any{
			"id": 2,
			"variants": []map[string]any{
				{"id": 22, "product_id": 2, "sku": "BRAVO", "inventory_item_id": 222},
			},
		}))
	})
	client, server := newTestClient(t, handler)
	srv = server

	variant, err := client.FindVariantBySKU(context.Background(), "BRAVO")
	if err != nil {
		t.Fatalf("FindVariantBySKU: %v", err)
	}
	if variant.InventoryItemID != 222 {
		t.Errorf("inventory item id = %d, want 222", variant.InventoryItemID)
	}
	if variant.ProductID != 2 {
		t.Errorf("product id = %d, want 2", variant.ProductID)
	}
}

func TestFindVariantBySKUNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(restPage(map[string]any{
			"id": 1,
			"variants": []map[string]any{
				{"id": 11, "product_id": 1, "sku": "ALPHA", "inventory_item_id": 111},
			},
		}))
	})
	client, _ := newTestClient(t, handler)

	_, err := client.FindVariantBySKU(context.Background(), "MISSING")
	if err == nil {
		t.Fatal("expected error for missing sku")
	}
	if !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestFindVariantBySKUFirstMatchWins(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(restPage(map[string]any{
			"id": 1,
			"variants": []map[string]any{
				{"id": 11, "product_id": 1, "sku": "DUP", "inventory_item_id": 111},
				{"id": 12, "product_id": 1, "sku": "DUP", "inventory_item_id": 112},
			},
		}))
	})
	client, _ := newTestClient(t, handler)

	variant, err := client.FindVariantBySKU(context.Background(), "DUP")
	if err != nil {
		t.Fatalf("FindVariantBySKU: %v", err)
	}
	if variant.InventoryItemID != 111 {
		t.Errorf("inventory item id = %d, want first match 111", variant.InventoryItemID)
	}
}
