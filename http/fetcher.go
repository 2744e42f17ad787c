// Package http provides the HTTP implementations of pbinfo.Fetcher and
// pbinfo.Searcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pbinfo"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to the site.
const DefaultUserAgent = "pbinfo-fetch/1.0 (+https://github.com/fwojciec/pbinfo)"

// Ensure Fetcher implements pbinfo.Fetcher at compile time.
var _ pbinfo.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages from the site with plain GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit spaces requests at most rps per second, with no bursting.
// A non-positive rps disables limiting, which is the default.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the page at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", networkError(url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pbinfo.Errorf(pbinfo.EINVALID, "invalid request URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", networkError(url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", pbinfo.Errorf(pbinfo.ENOTFOUND, "HTTP 404 for %s", url)
	default:
		return "", pbinfo.Errorf(pbinfo.ENETWORK, "encountered an error when trying to fetch %s: HTTP status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", networkError(url, err)
	}

	return string(body), nil
}

// networkError wraps a transport failure as ENETWORK. Timeouts are named
// as such so callers can tell them apart from refused connections.
func networkError(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pbinfo.Errorf(pbinfo.ENETWORK, "timed out fetching %s", url)
	}
	var te interface{ Timeout() bool }
	if errors.As(err, &te) && te.Timeout() {
		return pbinfo.Errorf(pbinfo.ENETWORK, "timed out fetching %s", url)
	}
	return pbinfo.Errorf(pbinfo.ENETWORK, "fetch %s: %v", url, err)
}
