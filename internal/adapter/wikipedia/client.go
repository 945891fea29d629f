package wikipedia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/worldcup-dashboard/internal/domain"
	"github.com/couchcryptid/worldcup-dashboard/internal/observability"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultURL is the article listing every World Cup final.
const DefaultURL = "https://en.wikipedia.org/wiki/List_of_FIFA_World_Cup_finals"

// Client fetches the finals article and extracts the finals table.
type Client struct {
	url        string
	userAgent  string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Wikipedia client for the given page URL.
func NewClient(url, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		url:       url,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metrics: metrics,
		logger:  logger,
	}
}

// URL is the page this client reads.
func (c *Client) URL() string { return c.url }

// FetchTable downloads the page and returns the first table with a "Year" column.
func (c *Client) FetchTable(ctx context.Context) (domain.Table, error) {
	start := time.Now()
	table, err := c.fetchTable(ctx)
	c.metrics.SourceFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.SourceFetchErrors.Inc()
		return domain.Table{}, err
	}

	c.logger.Info("finals table extracted",
		"url", c.url,
		"columns", len(table.Headers),
		"rows", len(table.Rows),
		"duration", time.Since(start),
	)
	return table, nil
}

// FetchPage downloads the raw page.
func (c *Client) FetchPage(ctx context.Context) ([]byte, error) {
	start := time.Now()
	page, err := c.fetchPage(ctx)
	c.metrics.SourceFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.SourceFetchErrors.Inc()
		return nil, err
	}
	return page, nil
}

func (c *Client) fetchTable(ctx context.Context) (domain.Table, error) {
	page, err := c.fetchPage(ctx)
	if err != nil {
		return domain.Table{}, err
	}

	table, err := ExtractTable(bytes.NewReader(page), domain.ColumnYear)
	if err != nil {
		return domain.Table{}, fmt.Errorf("extract table from %s: %w", c.url, err)
	}
	return table, nil
}

func (c *Client) fetchPage(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch %s: status %d: %s", c.url, resp.StatusCode, body)
	}

	page, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.url, err)
	}
	return page, nil
}
