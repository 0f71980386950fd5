package publisher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lepinkainen/gamecrawl/internal/ratelimit"
)

// DefaultUserAgent is sent by HTTPSource. Search engines serve the lightweight
// result markup ExtractPublisher understands to plain desktop browsers.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

const maxPageBytes = 4 << 20

// PageSource fetches the HTML of a page.
type PageSource interface {
	FetchHTML(ctx context.Context, url string) ([]byte, error)
}

// HTTPSource fetches pages with a plain HTTP GET.
type HTTPSource struct {
	client    *http.Client
	userAgent string
	limiter   *ratelimit.Limiter
}

// NewHTTPSource creates an HTTPSource. A nil client gets a 30 second timeout
// and a nil limiter disables request pacing.
func NewHTTPSource(client *http.Client, limiter *ratelimit.Limiter) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if limiter == nil {
		limiter = ratelimit.New("publisher search", 0)
	}
	return &HTTPSource{
		client:    client,
		userAgent: DefaultUserAgent,
		limiter:   limiter,
	}
}

// FetchHTML implements PageSource.
func (s *HTTPSource) FetchHTML(ctx context.Context, url string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	return body, nil
}
