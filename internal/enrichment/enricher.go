// Package enrichment turns raw catalog records into enriched records by
// running the attribute resolvers in a fixed order.
package enrichment

import (
	"context"
	"log/slog"
	"time"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
	crawlerrors "github.com/lepinkainen/gamecrawl/internal/errors"
	"github.com/lepinkainen/gamecrawl/internal/metrics"
)

// Resolver names used in logs, errors and metrics.
const (
	ResolverAgeRating = "age_rating"
	ResolverDeveloper = "developer"
	ResolverPublisher = "publisher"
)

// Options tunes the Enricher.
type Options struct {
	// StrictDeveloper makes a total developer lookup failure abort the crawl
	// instead of leaving the field absent.
	StrictDeveloper bool
	// Location renders release dates. Nil uses the host's local zone.
	Location *time.Location
}

// Enricher assembles EnrichedRecords.
type Enricher struct {
	lookups    Lookups
	publishers PublisherLookup
	opts       Options
}

// NewEnricher creates an Enricher. A nil publishers lookup leaves the
// publisher field absent.
func NewEnricher(lookups Lookups, publishers PublisherLookup, opts Options) *Enricher {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Enricher{lookups: lookups, publishers: publishers, opts: opts}
}

// Enrich resolves every attribute of raw, one resolver at a time. Resolver
// failures degrade to an absent field; the returned error is non-nil only
// when ctx is done or a strict developer lookup fails.
func (e *Enricher) Enrich(ctx context.Context, raw catalog.RawRecord) (catalog.EnrichedRecord, error) {
	if err := ctx.Err(); err != nil {
		return catalog.EnrichedRecord{}, err
	}

	rec := catalog.EnrichedRecord{GameName: raw.Name}

	ageRating, found, err := ResolveAgeRating(ctx, e.lookups, raw.AgeRatings)
	if err != nil {
		if err := e.degrade(ctx, ResolverAgeRating, raw, err); err != nil {
			return catalog.EnrichedRecord{}, err
		}
	} else if found {
		rec.AgeRating = catalog.StringPtr(ageRating)
	}

	developer, found, err := ResolveDeveloper(ctx, e.lookups, raw.ID, raw.InvolvedCompanies)
	if err != nil {
		if e.opts.StrictDeveloper && crawlerrors.IsLookupError(err) {
			return catalog.EnrichedRecord{}, err
		}
		if err := e.degrade(ctx, ResolverDeveloper, raw, err); err != nil {
			return catalog.EnrichedRecord{}, err
		}
	} else if found {
		rec.Developers = catalog.StringPtr(developer)
	}

	publisher, found, err := ResolvePublisher(ctx, e.publishers, raw.Name)
	if err != nil {
		if err := e.degrade(ctx, ResolverPublisher, raw, err); err != nil {
			return catalog.EnrichedRecord{}, err
		}
	} else if found {
		rec.Publishers = catalog.StringPtr(publisher)
	}

	rec.Platforms, _ = PlatformNames(raw.Platforms)
	rec.Genres, _ = GenreNames(raw.Genres)
	rec.ReleaseDate, _ = FormatReleaseDate(raw.FirstReleaseDate, e.opts.Location)
	rec.Description = raw.Summary

	return rec, nil
}

// degrade records a resolver failure. It returns ctx's error when the failure
// was caused by cancellation, since that must stop the crawl.
func (e *Enricher) degrade(ctx context.Context, resolver string, raw catalog.RawRecord, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	metrics.ResolverDegraded.WithLabelValues(resolver).Inc()
	slog.Warn("Resolver failed, leaving field empty",
		"game", raw.Name,
		"id", raw.ID,
		"error", crawlerrors.NewResolveError(resolver, err))
	return nil
}
