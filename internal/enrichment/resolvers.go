package enrichment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/iter"

	crawlerrors "github.com/lepinkainen/gamecrawl/internal/errors"
	"github.com/lepinkainen/gamecrawl/internal/lookup"
)

// releaseDateLayout renders M/D/YYYY without zero padding.
const releaseDateLayout = "1/2/2006"

// Lookups is the subset of the IGDB client the resolvers need.
type Lookups interface {
	AgeRating(ctx context.Context, id int64) (int64, bool, error)
	InvolvedCompany(ctx context.Context, id int64) (int64, bool, error)
	CompanyName(ctx context.Context, id int64) (string, bool, error)
}

// PublisherLookup finds a game's publisher by name.
type PublisherLookup interface {
	LookupPublisher(ctx context.Context, name string) (string, bool, error)
}

// PlatformNames joins the names of the given platform ids.
func PlatformNames(ids []int64) (string, bool) {
	return lookup.Platforms.JoinNames(ids)
}

// GenreNames joins the names of the given genre ids.
func GenreNames(ids []int64) (string, bool) {
	return lookup.Genres.JoinNames(ids)
}

// ResolveAgeRating labels the first age rating reference. Only the first id is
// consulted; an empty list makes no lookup.
func ResolveAgeRating(ctx context.Context, l Lookups, ids []int64) (string, bool, error) {
	if len(ids) == 0 {
		return "", false, nil
	}

	rating, found, err := l.AgeRating(ctx, ids[0])
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	return lookup.AgeRatingLabel(rating), true, nil
}

type developerChain struct {
	name  string
	found bool
	err   error
}

// ResolveDeveloper runs the involved company -> company chain for every id
// concurrently and returns the name from the first id, in input order, whose
// chain produced one. When every chain fails the errors are joined into a
// LookupError; chains that only find nothing leave the developer absent.
func ResolveDeveloper(ctx context.Context, l Lookups, gameID int64, ids []int64) (string, bool, error) {
	if len(ids) == 0 {
		return "", false, nil
	}

	chains := iter.Map(ids, func(id *int64) developerChain {
		companyID, found, err := l.InvolvedCompany(ctx, *id)
		if err != nil {
			return developerChain{err: fmt.Errorf("involved company %d: %w", *id, err)}
		}
		if !found {
			return developerChain{}
		}

		name, found, err := l.CompanyName(ctx, companyID)
		if err != nil {
			return developerChain{err: fmt.Errorf("company %d: %w", companyID, err)}
		}
		return developerChain{name: name, found: found}
	})

	var errs []error
	for _, c := range chains {
		if c.err != nil {
			errs = append(errs, c.err)
			continue
		}
		if c.found {
			return c.name, true, nil
		}
	}

	if len(errs) == len(chains) {
		return "", false, crawlerrors.NewLookupError(gameID, errors.Join(errs...))
	}
	return "", false, nil
}

// ResolvePublisher scrapes the publisher for a game name.
func ResolvePublisher(ctx context.Context, p PublisherLookup, name string) (string, bool, error) {
	if p == nil || name == "" {
		return "", false, nil
	}
	return p.LookupPublisher(ctx, name)
}

// FormatReleaseDate renders unix seconds as M/D/YYYY in loc. Zero is absent.
func FormatReleaseDate(unix int64, loc *time.Location) (string, bool) {
	if unix == 0 {
		return "", false
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(unix, 0).In(loc).Format(releaseDateLayout), true
}
