package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserAgent = "marquee/0.1"
	fetchTimeout     = 10 * time.Second
	maxCatalogBytes  = 8 << 20
)

// Fetch downloads a JSON catalog from rawURL.
func Fetch(ctx context.Context, rawURL string) (*Store, error) {
	return fetchWith(ctx, &http.Client{Timeout: fetchTimeout}, rawURL)
}

func fetchWith(ctx context.Context, client *http.Client, rawURL string) (*Store, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported catalog url scheme: %s", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog %s returned status %d", u.Redacted(), resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	items, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return New(items)
}
