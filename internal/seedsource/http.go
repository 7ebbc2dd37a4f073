package seedsource

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/hol-api/internal/errors"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	maxSeedBytes       = 16 << 20
)

// HTTPConfig configures an HTTP seed source
type HTTPConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate ensures the base URL is usable
func (c *HTTPConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.InvalidArgumentf("invalid seed base URL %q", c.BaseURL)
	}
	return nil
}

// HTTPFetcher fetches seed files relative to a base URL
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTP creates an HTTP fetcher
func NewHTTP(cfg *HTTPConfig) (*HTTPFetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, _ := url.Parse(cfg.BaseURL)
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPFetcher{base: base, client: client}, nil
}

// Fetch GETs path resolved against the base URL
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	target, err := f.resolve(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", target)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", target)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("seed file %s not found", target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Unavailablef("fetching %s returned status %d", target, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSeedBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", target)
	}
	return data, nil
}

// resolve maps a relative seed path to a URL under the base. Absolute URLs
// and paths that climb out of the base path are rejected.
func (f *HTTPFetcher) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid seed path %q", path)
	}
	if ref.Scheme != "" || ref.Host != "" || ref.Opaque != "" || ref.User != nil {
		return nil, errors.InvalidArgumentf("seed path %q must be relative to the seed base", path).
			WithMeta("seed_path", path)
	}

	target := f.base.ResolveReference(ref)
	if target.Scheme != f.base.Scheme || target.Host != f.base.Host || !strings.HasPrefix(target.Path, f.base.Path) {
		return nil, errors.InvalidArgumentf("seed path %q escapes the seed base", path).
			WithMeta("seed_path", path)
	}
	return target, nil
}
