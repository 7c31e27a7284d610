package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopify-reconciler/internal/adapters/shopify/dto"
	"shopify-reconciler/internal/config"
	"shopify-reconciler/internal/logging"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type Client struct {
	config     config.ShopifyConfig
	httpClient *http.Client
	logger     logging.LoggerService
}

func NewClient(cfg config.ShopifyConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) baseURL() (string, error) {
	domain := strings.TrimSpace(c.config.ShopDomain)
	if domain == "" {
		return "", errors.New("shopify shop domain is empty")
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	domain = strings.TrimRight(domain, "/")
	if c.config.APIVer == "" {
		return "", errors.New("shopify api version is empty")
	}
	return domain + "/admin/api/" + c.config.APIVer, nil
}

func (c *Client) shopifyAPIRequest(ctx context.Context, method string, endpoint string, body io.Reader) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.config.Token)

	client := c.httpClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, newHTTPStatusError(resp.StatusCode, resp.Status, respBody)
	}

	return respBody, resp.Header, nil
}

// restGet issues a GET against the REST surface and returns the decoded body
// plus the page_info cursor from the Link header, if any. Retries transient
// HTTP failures with bounded backoff.
func (c *Client) restGet(ctx context.Context, path string, query url.Values, out any) (string, error) {
	base, err := c.baseURL()
	if err != nil {
		return "", err
	}
	endpoint := base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var (
		raw    []byte
		header http.Header
	)
	for attempt := 0; ; attempt++ {
		raw, header, err = c.shopifyAPIRequest(ctx, http.MethodGet, endpoint, nil)
		if err == nil {
			break
		}
		if attempt >= restRetryMax || !isRetryableHTTPError(err) {
			return "", err
		}
		if err := sleepWithContext(ctx, retryDelay(attempt)); err != nil {
			return "", err
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return "", fmt.Errorf("shopify rest response decode: %w", err)
		}
	}
	return nextPageInfo(header.Get("Link")), nil
}

func (c *Client) graphqlRequest(ctx context.Context, query string, variables map[string]any, out any) error {
	base, err := c.baseURL()
	if err != nil {
		return err
	}
	endpoint := base + "/graphql.json"

	payload := graphQLRequest{
		Query:     strings.TrimSpace(query),
		Variables: variables,
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		raw, _, err := c.shopifyAPIRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
		if err != nil {
			if attempt < graphqlRetryMax && isRetryableHTTPError(err) {
				if err := sleepWithContext(ctx, retryDelay(attempt)); err != nil {
					return err
				}
				continue
			}
			return err
		}

		var resp dto.GraphQLResponse[json.RawMessage]
		if err := json.Unmarshal(raw, &resp); err != nil {
			return fmt.Errorf("shopify graphql response decode: %w", err)
		}
		if len(resp.Errors) > 0 {
			if attempt < graphqlRetryMax && isThrottleGraphQLError(resp.Errors) {
				if err := sleepWithContext(ctx, retryDelay(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("shopify graphql errors: %s", formatGraphQLErrors(resp.Errors))
		}
		if out == nil {
			return nil
		}
		if len(resp.Data) == 0 {
			return errors.New("shopify graphql response missing data")
		}
		return json.Unmarshal(resp.Data, out)
	}
}

func formatGraphQLErrors(errs []dto.GraphQLError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return "unknown error"
	}
	return strings.Join(parts, "; ")
}

// nextPageInfo extracts the page_info cursor of the rel="next" link from a
// Shopify REST Link header. Empty means no further pages.
func nextPageInfo(linkHeader string) string {
	for _, link := range strings.Split(linkHeader, ",") {
		if !strings.Contains(link, `rel="next"`) {
			continue
		}
		start := strings.Index(link, "<")
		end := strings.Index(link, ">")
		if start < 0 || end < 0 || end <= start {
			continue
		}
		u, err := url.Parse(strings.TrimSpace(link[start+1 : end]))
		if err != nil {
			continue
		}
		return u.Query().Get("page_info")
	}
	return ""
}

func (c *Client) logWarning(msg string) {
	if c.logger != nil {
		c.logger.LogWarning(msg)
	}
}
