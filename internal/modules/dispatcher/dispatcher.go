package dispatcher

import (
	"context"
	"encoding/json"
	"firecrawl-cli/internal/models"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 60 * time.Second

// Client issues crawl requests against the remote API.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client for the given endpoint. The API key may be empty.
func New(apiURL, apiKey string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Crawl performs one GET against the crawl API and decodes the JSON body.
// Any transport error or non-2xx status is returned as an error; the caller
// decides whether that terminates the process. There is no retry.
func (c *Client) Crawl(ctx context.Context, crawlReq models.CrawlRequest, logger *zap.Logger) (models.CrawlResult, error) {
	var result models.CrawlResult

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return result, fmt.Errorf("building request: %v", err)
	}

	query := url.Values{}
	query.Set("url", crawlReq.URL)
	query.Set("depth", strconv.Itoa(crawlReq.Depth))
	query.Set("dataType", string(crawlReq.DataType))
	query.Set("limit", strconv.Itoa(crawlReq.Limit))
	req.URL.RawQuery = query.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logger.Info("sending crawl request",
		zap.String("endpoint", c.apiURL),
		zap.String("url", crawlReq.URL),
		zap.String("data_type", string(crawlReq.DataType)))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("crawl request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return result, fmt.Errorf("crawl request returned status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decoding response: %v", err)
	}

	logger.Debug("crawl request completed", zap.Duration("duration", time.Since(start)))
	return result, nil
}
