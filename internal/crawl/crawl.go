// Package crawl drives the paginated catalog crawl: fetch a batch, enrich
// its records one by one, persist the accumulator, wait, repeat until the
// catalog runs dry.
package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
	"github.com/lepinkainen/gamecrawl/internal/errors"
	"github.com/lepinkainen/gamecrawl/internal/metrics"
	"github.com/lepinkainen/gamecrawl/internal/ratelimit"
)

// CatalogSource returns up to limit raw records starting at offset.
type CatalogSource interface {
	FetchBatch(ctx context.Context, offset, limit int) ([]catalog.RawRecord, error)
}

// RecordEnricher turns one raw record into an enriched record.
type RecordEnricher interface {
	Enrich(ctx context.Context, raw catalog.RawRecord) (catalog.EnrichedRecord, error)
}

// Sink writes the full accumulator.
type Sink interface {
	Persist(ctx context.Context, records []catalog.EnrichedRecord) error
}

// Progress receives user-facing crawl events.
type Progress interface {
	BatchStarted(batch, limit, offset int)
	BatchFetched(batch, count int)
	// RecordAdded reports the n-th record of the run, 1-based.
	RecordAdded(n int, raw catalog.RawRecord)
	BatchFinished(batch int, elapsed time.Duration)
	Completed(total int)
}

// State is the crawl position threaded through Step.
type State struct {
	// Offset of the next batch.
	Offset int
	// BatchIndex is the 1-based number of the next batch.
	BatchIndex int
	// Records is the append-only accumulator.
	Records []catalog.EnrichedRecord
	// BatchesDone counts processed non-empty batches.
	BatchesDone int
}

// NewState returns the state of a crawl that has not fetched anything yet.
func NewState() State {
	return State{BatchIndex: 1}
}

// Crawler runs the pagination loop.
type Crawler struct {
	cfg      Config
	source   CatalogSource
	enricher RecordEnricher
	sink     Sink
	progress Progress
}

// New creates a Crawler. A nil progress reports nothing.
func New(cfg Config, source CatalogSource, enricher RecordEnricher, sink Sink, progress Progress) *Crawler {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if progress == nil {
		progress = nopProgress{}
	}
	return &Crawler{
		cfg:      cfg,
		source:   source,
		enricher: enricher,
		sink:     sink,
		progress: progress,
	}
}

// Run crawls until the catalog returns an empty batch, MaxBatches is reached,
// a fatal error occurs or ctx is done. It returns the last completed state.
func (c *Crawler) Run(ctx context.Context) (State, error) {
	delay := ratelimit.Delay(c.cfg.BatchDelay)
	state := NewState()

	for {
		next, done, err := c.Step(ctx, state)
		if err != nil {
			return state, err
		}
		state = next
		if done {
			return state, nil
		}

		if err := delay.Wait(ctx); err != nil {
			slog.Info("Crawl interrupted", "offset", state.Offset, "records", len(state.Records))
			return state, err
		}
	}
}

// Step fetches and processes one batch. On error the input state is returned
// unchanged. Persistence failures are logged and do not stop the crawl.
func (c *Crawler) Step(ctx context.Context, s State) (State, bool, error) {
	c.progress.BatchStarted(s.BatchIndex, c.cfg.PageSize, s.Offset)
	slog.Debug("Fetching batch", "batch", s.BatchIndex, "offset", s.Offset, "limit", c.cfg.PageSize)

	batch, err := c.source.FetchBatch(ctx, s.Offset, c.cfg.PageSize)
	if err != nil {
		return s, false, errors.NewFetchError(s.Offset, err)
	}
	metrics.BatchesTotal.Inc()
	c.progress.BatchFetched(s.BatchIndex, len(batch))

	start := time.Now()
	next := s
	for _, raw := range batch {
		rec, err := c.enricher.Enrich(ctx, raw)
		if err != nil {
			return s, false, err
		}
		next.Records = append(next.Records, rec)
		metrics.RecordsEnriched.Inc()
		c.progress.RecordAdded(len(next.Records), raw)
	}

	c.persist(ctx, next)

	if len(batch) == 0 {
		next.BatchIndex++
		c.progress.Completed(len(next.Records))
		return next, true, nil
	}

	next.BatchesDone++
	next.Offset += c.cfg.PageSize
	next.BatchIndex++
	c.progress.BatchFinished(s.BatchIndex, time.Since(start))

	if c.cfg.MaxBatches > 0 && next.BatchesDone >= c.cfg.MaxBatches {
		slog.Info("Batch limit reached", "max_batches", c.cfg.MaxBatches)
		c.progress.Completed(len(next.Records))
		return next, true, nil
	}
	return next, false, nil
}

func (c *Crawler) persist(ctx context.Context, s State) {
	if err := c.sink.Persist(ctx, s.Records); err != nil {
		slog.Error("Failed to persist records", "batch", s.BatchIndex, "records", len(s.Records), "error", err)
		return
	}
	slog.Debug("Records persisted", "batch", s.BatchIndex, "records", len(s.Records))
}

type nopProgress struct{}

func (nopProgress) BatchStarted(int, int, int) {}
func (nopProgress) BatchFetched(int, int) {}
func (nopProgress) RecordAdded(int, catalog.RawRecord) {}
func (nopProgress) BatchFinished(int, time.Duration) {}
func (nopProgress) Completed(int) {}
