// Package sink persists the crawl accumulator after every batch: the JSON
// file first, then the workbook regenerated from that file, then the optional
// table export.
package sink

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
	"github.com/lepinkainen/gamecrawl/internal/datastore"
	crawlerrors "github.com/lepinkainen/gamecrawl/internal/errors"
	"github.com/lepinkainen/gamecrawl/internal/fileutil"
	"github.com/lepinkainen/gamecrawl/internal/metrics"
)

// Default output paths.
const (
	DefaultJSONPath = "gameData.json"
	DefaultXLSXPath = "gameData.xlsx"
)

// Output labels used in metrics.
const (
	outputJSON     = "json"
	outputWorkbook = "xlsx"
	outputTable    = "table"
)

// Options configures a FileSink.
type Options struct {
	JSONPath string
	XLSXPath string
	// Store receives the games table after the files. Nil disables the export.
	Store datastore.Store
	// StoreName identifies the store in errors and logs.
	StoreName string
}

// FileSink rewrites every output from the full accumulator.
type FileSink struct {
	opts Options
}

// New creates a FileSink, filling empty paths with the defaults.
func New(opts Options) *FileSink {
	if opts.JSONPath == "" {
		opts.JSONPath = DefaultJSONPath
	}
	if opts.XLSXPath == "" {
		opts.XLSXPath = DefaultXLSXPath
	}
	if opts.StoreName == "" {
		opts.StoreName = datastore.GamesTable
	}
	return &FileSink{opts: opts}
}

// Persist writes records to every output. Failures come back as joined
// PersistenceErrors; a failed JSON write skips the workbook since it is built
// from that file.
func (s *FileSink) Persist(ctx context.Context, records []catalog.EnrichedRecord) error {
	if err := ctx.Err(); err != nil {
		return crawlerrors.NewPersistenceError(s.opts.JSONPath, err)
	}
	if records == nil {
		records = []catalog.EnrichedRecord{}
	}

	var errs []error

	if err := fileutil.WriteJSONFile(records, s.opts.JSONPath); err != nil {
		errs = append(errs, s.fail(outputJSON, s.opts.JSONPath, err))
	} else if err := s.regenerateWorkbook(); err != nil {
		errs = append(errs, s.fail(outputWorkbook, s.opts.XLSXPath, err))
	}

	if s.opts.Store != nil {
		if err := s.opts.Store.ReplaceRows(datastore.GamesTable, datastore.GameRows(records)); err != nil {
			errs = append(errs, s.fail(outputTable, s.opts.StoreName, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	slog.Debug("Outputs written", "records", len(records), "json", s.opts.JSONPath, "xlsx", s.opts.XLSXPath)
	return nil
}

func (s *FileSink) regenerateWorkbook() error {
	records, err := fileutil.ReadJSONFile[[]catalog.EnrichedRecord](s.opts.JSONPath)
	if err != nil {
		return err
	}
	return WriteWorkbook(s.opts.XLSXPath, records)
}

func (s *FileSink) fail(output, path string, err error) error {
	metrics.PersistFailures.WithLabelValues(output).Inc()
	return crawlerrors.NewPersistenceError(path, err)
}
