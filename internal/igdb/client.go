// Package igdb is a small client for the IGDB v4 API: the paginated games
// catalog plus the age rating and company lookups used during enrichment.
package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lepinkainen/gamecrawl/internal/cache"
	"github.com/lepinkainen/gamecrawl/internal/catalog"
	"github.com/lepinkainen/gamecrawl/internal/errors"
	"github.com/lepinkainen/gamecrawl/internal/metrics"
	"github.com/lepinkainen/gamecrawl/internal/ratelimit"
)

// DefaultBaseURL is the IGDB v4 API root.
const DefaultBaseURL = "https://api.igdb.com/v4"

const (
	endpointGames             = "games"
	endpointAgeRatings        = "age_ratings"
	endpointInvolvedCompanies = "involved_companies"
	endpointCompanies         = "companies"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	ClientID   string
	Token      string
	HTTPClient *http.Client
	// Limiter is shared by every request of the client. Defaults to IGDB's 4 req/s.
	Limiter *ratelimit.Limiter
	// Cache memoizes secondary lookups. Nil disables caching.
	Cache *cache.CacheDB
}

// Client issues apicalypse queries against IGDB.
type Client struct {
	baseURL  string
	clientID string
	token    string
	http     *http.Client
	limiter  *ratelimit.Limiter
	cache    *cache.CacheDB
}

// NewClient creates a Client, filling unset options with defaults.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Limiter == nil {
		opts.Limiter = ratelimit.New("IGDB", ratelimit.IGDBRequestsPerSecond)
	}

	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		clientID: opts.ClientID,
		token:    opts.Token,
		http:     opts.HTTPClient,
		limiter:  opts.Limiter,
		cache:    opts.Cache,
	}
}

// Games returns up to limit games matching filter, starting at offset.
func (c *Client) Games(ctx context.Context, filter GameFilter, limit, offset int) ([]catalog.RawRecord, error) {
	q := Query{
		Fields: GameFields,
		Where:  filter.Conditions(),
		Limit:  limit,
		Offset: offset,
	}

	var games []catalog.RawRecord
	if err := c.post(ctx, endpointGames, q, &games); err != nil {
		return nil, err
	}
	return games, nil
}

type lookupResult[T any] struct {
	Value T    `json:"value"`
	Found bool `json:"found"`
}

// AgeRating returns the numeric rating enum of the age_ratings entry id.
// The bool is false when the entry does not exist or carries no rating.
func (c *Client) AgeRating(ctx context.Context, id int64) (int64, bool, error) {
	res, _, err := cache.GetOrFetch(c.cache, cache.AgeRatingTable, strconv.FormatInt(id, 10),
		func() (lookupResult[int64], error) {
			var rows []struct {
				ID       int64 `json:"id"`
				Category int64 `json:"category"`
				Rating   int64 `json:"rating"`
			}
			if err := c.post(ctx, endpointAgeRatings, byID(id, "id", "category", "rating"), &rows); err != nil {
				return lookupResult[int64]{}, err
			}
			if len(rows) == 0 || rows[0].Rating == 0 {
				return lookupResult[int64]{}, nil
			}
			return lookupResult[int64]{Value: rows[0].Rating, Found: true}, nil
		})
	if err != nil {
		return 0, false, err
	}
	return res.Value, res.Found, nil
}

// InvolvedCompany returns the company id referenced by an involved_companies entry.
func (c *Client) InvolvedCompany(ctx context.Context, id int64) (int64, bool, error) {
	res, _, err := cache.GetOrFetch(c.cache, cache.InvolvedCompanyTable, strconv.FormatInt(id, 10),
		func() (lookupResult[int64], error) {
			var rows []struct {
				ID      int64 `json:"id"`
				Company int64 `json:"company"`
			}
			if err := c.post(ctx, endpointInvolvedCompanies, byID(id, "id", "company"), &rows); err != nil {
				return lookupResult[int64]{}, err
			}
			if len(rows) == 0 || rows[0].Company == 0 {
				return lookupResult[int64]{}, nil
			}
			return lookupResult[int64]{Value: rows[0].Company, Found: true}, nil
		})
	if err != nil {
		return 0, false, err
	}
	return res.Value, res.Found, nil
}

// CompanyName returns the name of company id.
func (c *Client) CompanyName(ctx context.Context, id int64) (string, bool, error) {
	res, _, err := cache.GetOrFetch(c.cache, cache.CompanyTable, strconv.FormatInt(id, 10),
		func() (lookupResult[string], error) {
			var rows []struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			}
			if err := c.post(ctx, endpointCompanies, byID(id, "id", "name"), &rows); err != nil {
				return lookupResult[string]{}, err
			}
			if len(rows) == 0 || rows[0].Name == "" {
				return lookupResult[string]{}, nil
			}
			return lookupResult[string]{Value: rows[0].Name, Found: true}, nil
		})
	if err != nil {
		return "", false, err
	}
	return res.Value, res.Found, nil
}

// post sends q to endpoint and decodes the JSON array response into out.
func (c *Client) post(ctx context.Context, endpoint string, q Query, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body := q.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", bearer(c.token))

	slog.Debug("IGDB request", "endpoint", endpoint, "query", body)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.IGDBRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.IGDBRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("IGDB %s request failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.IGDBRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return errors.NewRateLimitErrorWithRetry(
			fmt.Sprintf("IGDB %s rate limit reached", endpoint),
			parseRetryAfter(resp.Header.Get("Retry-After")))
	case resp.StatusCode != http.StatusOK:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("IGDB %s returned status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode IGDB %s response: %w", endpoint, err)
	}
	return nil
}

func bearer(token string) string {
	if token == "" || strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}

func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
