package broker

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"trade-journal-go/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ClientInterface defines the interface for the broker trade-history client.
type ClientInterface interface {
	Ping() error
	GetTradeHistory(ctx context.Context, since time.Time, limit int) ([]BrokerTrade, error)
}

// BrokerTrade is a completed (or still-open) trade as reported by the broker
// API. It is converted to a journal trade before being imported.
type BrokerTrade struct {
	TradeID    string  `json:"tradeId"`
	Symbol     string  `json:"symbol"`
	Side       string  `json:"side"` // "BUY" or "SELL"
	EntryPrice float64 `json:"entryPrice"`
	ExitPrice  float64 `json:"exitPrice"`
	Quantity   float64 `json:"quantity"`
	Commission float64 `json:"commission"`
	OpenedAt   int64   `json:"openedAt"` // unix millis
	ClosedAt   int64   `json:"closedAt"` // unix millis, 0 while open
}

// Client is a client for the broker trade-history REST API.
// It implements the ClientInterface.
type Client struct {
	client  *resty.Client
	apiKey  string
	logger  *zap.Logger
	limiter *rate.Limiter
}

// ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)

// NewClient creates a new broker API client.
func NewClient(cfg *config.Broker, logger *zap.Logger) *Client {
	client := resty.New().SetBaseURL(cfg.BaseURL)

	// rate.Limit is requests per second.
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	return &Client{
		client:  client,
		apiKey:  cfg.ApiKey,
		logger:  logger,
		limiter: limiter,
	}
}

// Ping checks connectivity and credentials against the broker API.
func (c *Client) Ping() error {
	req := c.client.R().
		SetHeader("X-API-Key", c.apiKey)

	if _, err := c.doRequest(context.Background(), "GET", "/v1/ping", req); err != nil {
		return fmt.Errorf("broker ping failed: %w", err)
	}
	return nil
}

// GetTradeHistory fetches trades opened at or after the given time, newest
// last, up to the given limit.
func (c *Client) GetTradeHistory(ctx context.Context, since time.Time, limit int) ([]BrokerTrade, error) {
	var trades []BrokerTrade

	req := c.client.R().
		SetHeader("X-API-Key", c.apiKey).
		SetQueryParam("since", strconv.FormatInt(since.UnixMilli(), 10)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&trades)

	resp, err := c.doRequest(ctx, "GET", "/v1/trades", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade history: %w", err)
	}

	result := resp.Result().(*[]BrokerTrade)
	return *result, nil
}

// doRequest handles the actual request execution with rate limiting and retry logic.
func (c *Client) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		// Wait for the rate limiter
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
		resp, err = req.Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil // Success
		}

		// Analyze error and decide whether to retry
		shouldRetry := false
		var retryAfter time.Duration

		if resp != nil {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				retryAfterHeader := resp.Header().Get("Retry-After")
				if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 { // Server errors
				shouldRetry = true
			}
		} else { // Network or other client-side errors
			shouldRetry = true
		}

		if !shouldRetry {
			return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), resp.String())
		}

		// If we should retry, calculate wait time
		if retryAfter == 0 {
			// Exponential backoff: 1s, 2s, 4s
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
}
