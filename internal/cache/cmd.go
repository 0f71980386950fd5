package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// ClearCmd deletes every cached entry of one lookup source.
type ClearCmd struct {
	Source string `arg:"" help:"Cache source to clear: age_rating, involved_company, company, publisher" required:""`
}

// PruneCmd deletes expired entries from every cache table.
type PruneCmd struct{}

func (c *ClearCmd) Run() (err error) {
	tableName, ok := SourceTables[c.Source]
	if !ok {
		return fmt.Errorf("invalid cache source '%s'; valid sources are: %s",
			c.Source, strings.Join(slices.Sorted(maps.Keys(SourceTables)), ", "))
	}

	cacheDB, err := openConfigured()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, cacheDB.Close()) }()

	slog.Info("Clearing cache", "source", c.Source, "database", cacheDB.Path())
	rowsDeleted, err := cacheDB.InvalidateSource(tableName)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	slog.Info("Cache cleared", "source", c.Source, "rows_deleted", rowsDeleted)
	return nil
}

func (p *PruneCmd) Run() (err error) {
	cacheDB, err := openConfigured()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, cacheDB.Close()) }()

	var total int64
	for _, tableName := range slices.Sorted(maps.Keys(ValidCacheTableNames)) {
		rows, err := cacheDB.ClearExpired(tableName, cacheDB.ttl)
		if err != nil {
			return err
		}
		total += rows
	}

	slog.Info("Cache pruned", "database", cacheDB.Path(), "rows_deleted", total)
	return nil
}

func openConfigured() (*CacheDB, error) {
	dbPath := viper.GetString("cache.dbfile")
	if dbPath == "" {
		dbPath = "./cache.db"
	}
	ttl := viper.GetDuration("cache.ttl")

	cacheDB, err := Open(dbPath, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	return cacheDB, nil
}
