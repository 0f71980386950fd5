package crawl

import "time"

// Defaults of the catalog query and pacing.
const (
	DefaultPageSize         = 500
	DefaultReleaseDateFloor = 1577836800 // 2020-01-01T00:00:00Z
	DefaultRatingFloor      = 85
	DefaultBatchDelay       = 250 * time.Millisecond
)

// Config holds the parameters of a crawl run.
type Config struct {
	// PageSize is the number of records requested per batch.
	PageSize int
	// MaxBatches bounds the number of non-empty batches. Zero is unbounded.
	MaxBatches int
	// ReleaseDateFloor selects games first released strictly after this unix time.
	ReleaseDateFloor int64
	// RatingFloor selects games with a total rating strictly above this value.
	RatingFloor float64
	// BatchDelay is the pause between finishing one batch and fetching the next.
	BatchDelay time.Duration
	// StrictDeveloper aborts the crawl when every developer chain of a record fails.
	StrictDeveloper bool
	// Location renders release dates. Nil means host local time.
	Location *time.Location
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		PageSize:         DefaultPageSize,
		ReleaseDateFloor: DefaultReleaseDateFloor,
		RatingFloor:      DefaultRatingFloor,
		BatchDelay:       DefaultBatchDelay,
		Location:         time.Local,
	}
}
