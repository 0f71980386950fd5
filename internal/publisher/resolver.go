package publisher

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/lepinkainen/gamecrawl/internal/cache"
)

// DefaultSearchURL is the search endpoint queried with the game name.
const DefaultSearchURL = "https://www.google.com/search"

// Resolver looks up a game's publisher from a search result page.
type Resolver struct {
	source    PageSource
	searchURL string
	cache     *cache.CacheDB
}

// NewResolver creates a Resolver. An empty searchURL uses DefaultSearchURL
// and a nil cache disables memoization.
func NewResolver(source PageSource, searchURL string, c *cache.CacheDB) *Resolver {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	return &Resolver{source: source, searchURL: searchURL, cache: c}
}

type publisherResult struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
}

// LookupPublisher returns the publisher scraped for name. The bool is false
// when the page has no publisher field.
func (r *Resolver) LookupPublisher(ctx context.Context, name string) (string, bool, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	res, _, err := cache.GetOrFetch(r.cache, cache.PublisherTable, key, func() (publisherResult, error) {
		page, err := r.source.FetchHTML(ctx, r.SearchURL(name))
		if err != nil {
			return publisherResult{}, err
		}
		publisher, err := ExtractPublisher(bytes.NewReader(page))
		if err != nil {
			return publisherResult{}, err
		}
		return publisherResult{Name: publisher, Found: publisher != ""}, nil
	})
	if err != nil {
		return "", false, err
	}
	return res.Name, res.Found, nil
}

// SearchURL builds the search page URL for a game name.
func (r *Resolver) SearchURL(name string) string {
	return r.searchURL + "?" + url.Values{"q": {name}}.Encode()
}
