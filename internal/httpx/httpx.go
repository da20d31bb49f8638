package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPError carries status/body for non-2xx responses.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 600))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// RetryConfig controls retry behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// Statuses retried besides 5xx.
	RetryStatuses map[int]bool
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    15 * time.Second,
		RetryStatuses: map[int]bool{
			http.StatusTooManyRequests: true,
			http.StatusRequestTimeout:  true,
		},
	}
}

// Client issues JSON requests with retries and a fixed set of headers.
type Client struct {
	HTTP   *http.Client
	Retry  RetryConfig
	Header http.Header
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: timeout},
		Retry:  DefaultRetryConfig(),
		Header: http.Header{"Accept": []string{"application/json"}},
	}
}

// GetJSON fetches rawURL and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpx: decode %s: %w body=%s", rawURL, err, snippet(body, 600))
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	cfg := c.Retry
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, backoff(attempt, cfg, lastErr)); err != nil {
				return nil, err
			}
		}

		body, retry, err := c.getOnce(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("httpx: giving up after %d attempts: %w", cfg.MaxAttempts, lastErr)
}

func (c *Client) getOnce(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("httpx: build request: %w", err)
	}
	for k, vs := range c.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, isRetryableNetErr(err), err
	}
	defer resp.Body.Close()

	// always drain so the connection can be reused
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, isRetryableNetErr(err), err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, false, nil
	}

	herr := &retryAfterError{
		HTTPError: &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       body,
		},
		after: ParseRetryAfter(resp),
	}
	return nil, isRetryableStatus(resp.StatusCode, c.Retry), herr
}

// retryAfterError remembers the server's Retry-After hint between attempts.
type retryAfterError struct {
	*HTTPError
	after time.Duration
}

func (e *retryAfterError) Unwrap() error { return e.HTTPError }

func isRetryableStatus(code int, cfg RetryConfig) bool {
	return cfg.RetryStatuses[code] || code >= 500
}

func isRetryableNetErr(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe") || strings.Contains(msg, "eof")
}

func backoff(attempt int, cfg RetryConfig, lastErr error) time.Duration {
	var ra *retryAfterError
	if errors.As(lastErr, &ra) && ra.after > 0 {
		if cfg.MaxDelay > 0 && ra.after > cfg.MaxDelay {
			return cfg.MaxDelay
		}
		return ra.after
	}

	d := cfg.BaseDelay * time.Duration(1<<(attempt-2))
	if cfg.MaxDelay > 0 && d > cfg.MaxDelay {
		d = cfg.MaxDelay
	}
	if d <= 0 {
		return 0
	}
	// up to 20% jitter
	return d + rand.N(d/5+1)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ParseRetryAfter parses the Retry-After header (seconds or HTTP date).
// Returns 0 when the header is missing or invalid.
func ParseRetryAfter(resp *http.Response) time.Duration {
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
