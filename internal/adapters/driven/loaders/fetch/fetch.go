// Package fetch provides the HTTP client shared by the remote document
// loaders. A single politeness limiter spans every outbound request so
// that multi-request loads cannot hammer a host.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// PolitenessRate is the proactive throttle rate (requests/sec).
	PolitenessRate = 2

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes = 10 << 20

	userAgent = "oracle-cli/1.0"
)

// Client is a rate-limited HTTP fetcher.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a fetch client. A non-positive timeout selects
// DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(PolitenessRate), 1),
	}
}

// Get fetches the URL and returns the response body.
// Bodies larger than MaxBodyBytes are truncated rather than rejected.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSource, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
