package igdb

import (
	"context"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
)

// Catalog pages through the games matching a fixed filter.
type Catalog struct {
	client *Client
	filter GameFilter
}

// NewCatalog returns a Catalog issuing filtered games queries through client.
func NewCatalog(client *Client, filter GameFilter) *Catalog {
	return &Catalog{client: client, filter: filter}
}

// FetchBatch returns the page of games at offset. An empty slice means the
// catalog is exhausted.
func (c *Catalog) FetchBatch(ctx context.Context, offset, limit int) ([]catalog.RawRecord, error) {
	return c.client.Games(ctx, c.filter, limit, offset)
}
