package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"manajet-client/internal/config"
	"manajet-client/internal/history"
	"manajet-client/internal/metrics"
	"manajet-client/internal/model"
	"manajet-client/pkg/logger"
)

// Client is a typed HTTP client for the Manajet backend. All requests go
// through one shared cookie-persisting session so the cookie issued at
// login is replayed on every subsequent call. The cookie jar and the
// cached current user are the only state mutated across calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logger.Logger
	metrics    *metrics.Metrics
	history    *history.Log

	mu            sync.RWMutex
	authenticated bool
	currentUser   *model.User
}

// New creates a client for the configured deployment. The configuration
// is resolved once; there is no runtime override of the base URL.
func New(cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (*Client, error) {
	parsed, err := url.Parse(cfg.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, cfg.API.BaseURL)
	}

	// cookiejar.New only fails for a non-nil PublicSuffixList.
	jar, _ := cookiejar.New(nil)

	var limiter *rate.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: cfg.API.RequestTimeout,
		},
		limiter: limiter,
		logger:  log,
		metrics: m,
		history: history.NewLog(cfg.History.Size),
	}

	log.Debug("resolved configuration: environment=%s base_url=%s timeout=%v rate_limit=%v",
		cfg.Environment, c.baseURL, cfg.API.RequestTimeout, cfg.RateLimit.Enabled)

	return c, nil
}

// History returns the bounded log of recent requests.
func (c *Client) History() *history.Log {
	return c.history
}

// do executes one request against the backend and returns the status code
// and raw body. Transport-level failures map to ErrNetwork; status codes
// are not interpreted here.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		c.logger.Error("Failed to create request for %s: %v", path, err)
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "manajet-client/1.0")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.metrics != nil {
		c.metrics.IncrementAPIRequests()
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(startTime)

	if err != nil {
		c.logger.Error("Request %s %s failed: %v", method, path, err)
		if c.metrics != nil {
			c.metrics.IncrementAPIErrors()
		}
		c.record(history.Entry{
			RequestID: requestID,
			Method:    method,
			Path:      path,
			Err:       err.Error(),
			Latency:   latency,
			At:        startTime,
		})
		return 0, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if c.metrics != nil {
		c.metrics.RecordAPILatency(latency.Milliseconds())
	}
	c.record(history.Entry{
		RequestID: requestID,
		Method:    method,
		Path:      path,
		Status:    resp.StatusCode,
		Latency:   latency,
		At:        startTime,
	})

	if err != nil {
		c.logger.Error("Failed to read response body from %s: %v", path, err)
		if c.metrics != nil {
			c.metrics.IncrementAPIErrors()
		}
		return resp.StatusCode, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	c.logger.Debug("%s %s -> %d (%dms)", method, path, resp.StatusCode, latency.Milliseconds())

	return resp.StatusCode, data, nil
}

func (c *Client) record(e history.Entry) {
	if c.history != nil {
		c.history.Record(e)
	}
}

// getJSON issues a GET and decodes a 200 response into dest.
func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	status, data, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		if c.metrics != nil {
			c.metrics.IncrementAPIErrors()
		}
		return &APIError{StatusCode: status, Path: path}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Error("Failed to parse JSON from %s: %v", path, err)
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return nil
}

// postJSON issues a POST with a JSON body. A nil dest skips decoding.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	status, data, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(encoded), "application/json")
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		if c.metrics != nil {
			c.metrics.IncrementAPIErrors()
		}
		return &APIError{StatusCode: status, Path: path}
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Error("Failed to parse JSON from %s: %v", path, err)
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return nil
}

// postForm issues a POST with a form-urlencoded body and returns the raw
// status for the caller to interpret.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (int, []byte, error) {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, body, "application/x-www-form-urlencoded")
}
