package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"shopify-reconciler/internal/adapters/shopify/dto"
)

func TestNextPageInfo(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "next link present",
			header: `<https://shop.myshopify.com/admin/api/2024-10/products.json?limit=250&page_info=abc123>; rel="next"`,
			want:   "abc123",
		},
		{
			name:   "previous and next",
			header: `<https://x/products.json?page_info=prev>; rel="previous", <https://x/products.json?page_info=nxt>; rel="next"`,
			want:   "nxt",
		},
		{
			name:   "only previous",
			header: `<https://x/products.json?page_info=prev>; rel="previous"`,
			want:   "",
		},
		{name: "empty", header: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nextPageInfo(tc.header); got != tc.want {
				t.Errorf("nextPageInfo(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestRetryDelayIsBoundedExponential(t *testing.T) {
	if retryDelay(0) != 500*time.Millisecond {
		t.Errorf("retryDelay(0) = %v", retryDelay(0))
	}
	if retryDelay(1) != time.Second {
		t.Errorf("retryDelay(1) = %v", retryDelay(1))
	}
	if retryDelay(20) != graphqlRetryMaxDelay {
		t.Errorf("retryDelay(20) = %v, want cap %v", retryDelay(20), graphqlRetryMaxDelay)
	}
}

func TestIsRetryableHTTPError(t *testing.T) {
	if !isRetryableHTTPError(newHTTPStatusError(http.StatusTooManyRequests, "429 Too Many Requests", nil)) {
		t.Error("429 must be retryable")
	}
	if isRetryableHTTPError(newHTTPStatusError(http.StatusUnauthorized, "401 Unauthorized", nil)) {
		t.Error("401 must not be retryable")
	}
}

func TestUserErrorsToError(t *testing.T) {
	if err := userErrorsToError("x", nil); err != nil {
		t.Errorf("no user errors must map to nil, got %v", err)
	}
	err := userErrorsToError("inventoryActivate", []dto.ShopifyUserError{
		{Field: []string{"locationId"}, Message: "Location can't be found"},
	})
	userErrs, ok := AsUserErrors(err)
	if !ok {
		t.Fatalf("expected UserErrorsError, got %v", err)
	}
	if userErrs.Errors[0].Field != "locationId" {
		t.Errorf("field = %q", userErrs.Errors[0].Field)
	}
}

func TestGraphqlRequestSurfacesHTTPStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})
	client, _ := newTestClient(t, handler)

	err := client.graphqlRequest(context.Background(), `query { shop { name } }`, nil, nil)
	if err == nil {
		t.Fatal("expected error for 401")
	}
}

func TestGraphqlRequestRetriesThrottled(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			json.NewEncoder(w).Encode(map[string]any{
				"errors": []map[string]any{
					{"message": "Throttled", "extensions": map[string]any{"code": "THROTTLED"}},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"ok": true}})
	})
	client, _ := newTestClient(t, handler)

	var out struct {
		OK bool `json:"ok"`
	}
	if err := client.graphqlRequest(context.Background(), `query { ok }`, nil, &out); err != nil {
		t.Fatalf("throttled request should retry and succeed: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if !out.OK {
		t.Error("expected decoded data")
	}
}
