package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v60/github"
)

const (
	// DefaultBaseURL is the public GitHub REST API root.
	DefaultBaseURL = "https://api.github.com/"

	// DefaultTimeout bounds each API call.
	DefaultTimeout = 30 * time.Second
)

// Client queries the GitHub REST API without authentication. Every public
// method is best-effort: failures are logged and reported as no results.
type Client struct {
	gh      *gogithub.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request and failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client rooted at baseURL. An empty baseURL selects
// DefaultBaseURL. httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	gh := gogithub.NewClient(httpClient)

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}
	gh.BaseURL = u

	c := &Client{
		gh:      gh,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// bestEffort runs fn under the per-call timeout and collapses any failure
// into an empty result.
func (c *Client) bestEffort(ctx context.Context, op string, fn func(context.Context) ([]Result, error)) []Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	results, err := fn(ctx)
	if err != nil {
		attrs := []any{"op", op, "error", err}
		var rle *gogithub.RateLimitError
		if errors.As(err, &rle) {
			attrs = append(attrs, "rate_limited", true, "rate_reset", rle.Rate.Reset.Time)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			attrs = append(attrs, "timeout", c.timeout)
		}
		c.logger.Debug("github call failed, treating as no results", attrs...)
		return nil
	}
	return results
}

// logResponse records status and remaining rate limit for a response.
func (c *Client) logResponse(op string, resp *gogithub.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.logger.Debug("github response",
		"op", op,
		"status", resp.StatusCode,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)
}
