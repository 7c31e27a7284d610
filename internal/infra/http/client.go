package http

import (
	"net/http"
	"time"
)

const defaultTimeout = 20 * time.Second

// NewClient returns the shared outbound HTTP client. The timeout bounds the
// whole request, body read included, so a stalled remote never hangs a batch.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
