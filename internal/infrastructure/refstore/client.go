package refstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labelproof/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxAttempts = 3

var _ domain.ReferenceSource = (*Client)(nil)

// Client reads the regulatory reference tables from the upstream data store
// over its paginated REST API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a reference store client. requestsPerHour bounds the
// upstream request budget; a zero value uses the store's documented default
// of 1000 requests per hour.
func NewClient(apiKey, baseURL string, requestsPerHour int, logger *zap.Logger) *Client {
	if requestsPerHour <= 0 {
		requestsPerHour = 1000
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger,
	}
}

// FetchPage reads one page of active rows from a reference table.
func (c *Client) FetchPage(ctx context.Context, table string, offset, limit int) ([]domain.ReferenceEntry, error) {
	body, err := c.fetchRaw(ctx, table, offset, limit)
	if err != nil {
		return nil, err
	}

	var page referencePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode %s page: %w", table, err)
	}

	return mapReferenceRows(page.Rows), nil
}

// FetchDocumentPage reads one page of the active regulatory document set.
func (c *Client) FetchDocumentPage(ctx context.Context, offset, limit int) ([]domain.RegulatoryDocument, error) {
	body, err := c.fetchRaw(ctx, domain.TableRegulatoryDocs, offset, limit)
	if err != nil {
		return nil, err
	}

	var page documentPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode document page: %w", err)
	}

	return mapDocumentRows(page.Rows), nil
}

// fetchRaw executes the paginated read with rate limiting and bounded retry.
func (c *Client) fetchRaw(ctx context.Context, table string, offset, limit int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/v1/reference/%s", c.baseURL, table)
	params := url.Values{}
	params.Add("offset", strconv.Itoa(offset))
	params.Add("limit", strconv.Itoa(limit))
	params.Add("active", "true")
	if c.apiKey != "" {
		params.Add("api_key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.logger.Warn("reference store request failed",
				zap.String("table", table),
				zap.Int("attempt", attempt),
				zap.Error(err))
			lastErr = err
			sleep(ctx, exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrTableNotFound, table)
		}
		if resp.StatusCode != http.StatusOK {
			c.logger.Warn("reference store returned error status",
				zap.String("table", table),
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
			sleep(ctx, exponentialBackoff(attempt))
			continue
		}

		return body, nil
	}

	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "LabelProof/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return resp, nil
}

// exponentialBackoff returns the retry delay for the given attempt:
// 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
