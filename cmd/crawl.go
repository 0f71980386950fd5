package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/gamecrawl/internal/cache"
	"github.com/lepinkainen/gamecrawl/internal/config"
	"github.com/lepinkainen/gamecrawl/internal/crawl"
	"github.com/lepinkainen/gamecrawl/internal/datastore"
	"github.com/lepinkainen/gamecrawl/internal/enrichment"
	"github.com/lepinkainen/gamecrawl/internal/igdb"
	"github.com/lepinkainen/gamecrawl/internal/progress"
	"github.com/lepinkainen/gamecrawl/internal/publisher"
	"github.com/lepinkainen/gamecrawl/internal/ratelimit"
	"github.com/lepinkainen/gamecrawl/internal/sink"
)

const httpTimeout = 30 * time.Second

var runCrawl = crawlWithSettings

// CrawlCmd represents the crawl command. Flags left at their zero value fall
// back to the config file and its defaults.
type CrawlCmd struct {
	PageSize     int     `name:"page-size" help:"Records requested per batch (default 500)"`
	MaxBatches   int     `name:"max-batches" help:"Stop after this many non-empty batches (default unbounded)"`
	ReleaseAfter int64   `name:"release-after" help:"Only games first released after this unix time (default 1577836800)"`
	RatingAbove  float64 `name:"rating-above" help:"Only games with a total rating above this value (default 85)"`
	BatchDelay   string  `name:"batch-delay" help:"Pause between batches, e.g. 250ms"`

	JSONOutput string `name:"json-output" help:"Path of the JSON output file (default gameData.json)"`
	XLSXOutput string `name:"xlsx-output" help:"Path of the workbook output file (default gameData.xlsx)"`
	SQLite     string `name:"sqlite" help:"Also write a games table to this SQLite database"`
	Datasette  string `name:"datasette" help:"Also upsert the games table to this Datasette instance URL"`

	Cache    bool   `name:"cache" help:"Cache secondary lookups in SQLite"`
	CacheDB  string `name:"cache-db" help:"Path to the cache SQLite database file"`
	CacheTTL string `name:"cache-ttl" help:"Cache time-to-live duration (e.g., 720h for 30 days)"`

	StrictDeveloper bool   `name:"strict-developer" help:"Abort when every developer lookup of a game fails"`
	Timezone        string `name:"timezone" help:"Timezone for release dates (default host local), e.g. UTC"`
	Browser         bool   `name:"browser" help:"Fetch publisher search pages with headless Chrome"`
	MetricsAddr     string `name:"metrics-addr" help:"Serve Prometheus metrics on this address, e.g. :9090"`
}

// applyFlags copies explicitly given flags over the configured values
func (c *CrawlCmd) applyFlags() {
	setIf := func(key string, value any, given bool) {
		if given {
			viper.Set(key, value)
		}
	}

	setIf("crawl.page_size", c.PageSize, c.PageSize != 0)
	setIf("crawl.max_batches", c.MaxBatches, c.MaxBatches != 0)
	setIf("crawl.release_after", c.ReleaseAfter, c.ReleaseAfter != 0)
	setIf("crawl.rating_above", c.RatingAbove, c.RatingAbove != 0)
	setIf("crawl.batch_delay", c.BatchDelay, c.BatchDelay != "")
	setIf("crawl.strict_developer", true, c.StrictDeveloper)
	setIf("crawl.timezone", c.Timezone, c.Timezone != "")

	setIf("output.json", c.JSONOutput, c.JSONOutput != "")
	setIf("output.xlsx", c.XLSXOutput, c.XLSXOutput != "")
	setIf("output.sqlite", c.SQLite, c.SQLite != "")
	setIf("datasette.url", c.Datasette, c.Datasette != "")

	setIf("cache.enabled", true, c.Cache)
	setIf("cache.dbfile", c.CacheDB, c.CacheDB != "")
	setIf("cache.ttl", c.CacheTTL, c.CacheTTL != "")

	setIf("publisher.browser", true, c.Browser)
	setIf("metrics.addr", c.MetricsAddr, c.MetricsAddr != "")
}

func (c *CrawlCmd) Run() error {
	c.applyFlags()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCrawl(ctx, settings, os.Stdout)
}

// crawlWithSettings wires the IGDB client, resolvers, sink and progress
// reporter together and runs the crawl to completion.
func crawlWithSettings(ctx context.Context, s config.Settings, out io.Writer) (err error) {
	if err := s.Validate(); err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: httpTimeout}

	token, err := resolveToken(ctx, httpClient, s.IGDB)
	if err != nil {
		return err
	}

	var cacheDB *cache.CacheDB
	if s.Cache.Enabled {
		cacheDB, err = cache.Open(s.Cache.DBFile, s.Cache.TTL)
		if err != nil {
			return fmt.Errorf("failed to open cache database: %w", err)
		}
		defer func() { err = errors.Join(err, cacheDB.Close()) }()
		slog.Info("Lookup cache enabled", "database", cacheDB.Path(), "ttl", s.Cache.TTL)
	}

	store, storeName, err := openStore(s)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() { err = errors.Join(err, store.Close()) }()
	}

	if s.MetricsAddr != "" {
		srv, err := startMetricsServer(s.MetricsAddr)
		if err != nil {
			return err
		}
		defer shutdownMetricsServer(srv)
	}

	client := igdb.NewClient(igdb.Options{
		BaseURL:    s.IGDB.BaseURL,
		ClientID:   s.IGDB.ClientID,
		Token:      token,
		HTTPClient: httpClient,
		Limiter:    ratelimit.New("IGDB", s.IGDB.RequestsPerSecond),
		Cache:      cacheDB,
	})

	var pages publisher.PageSource = publisher.NewHTTPSource(httpClient, nil)
	if s.Publisher.Browser {
		browser := publisher.NewBrowserSource(publisher.BrowserOptions{Headless: s.Publisher.Headless})
		defer browser.Close()
		pages = browser
	}

	enricher := enrichment.NewEnricher(client,
		publisher.NewResolver(pages, s.Publisher.SearchURL, cacheDB),
		enrichment.Options{
			StrictDeveloper: s.Crawl.StrictDeveloper,
			Location:        s.Crawl.Location,
		})

	outputs := sink.New(sink.Options{
		JSONPath:  s.Output.JSON,
		XLSXPath:  s.Output.XLSX,
		Store:     store,
		StoreName: storeName,
	})

	source := igdb.NewCatalog(client, igdb.GameFilter{
		ReleasedAfter: s.Crawl.ReleaseDateFloor,
		RatingAbove:   s.Crawl.RatingFloor,
	})

	slog.Info("Starting crawl",
		"page_size", s.Crawl.PageSize,
		"max_batches", s.Crawl.MaxBatches,
		"json", s.Output.JSON,
		"xlsx", s.Output.XLSX)

	state, err := crawl.New(s.Crawl, source, enricher, outputs, progress.NewConsole(out)).Run(ctx)
	slog.Info("Crawl finished", "records", len(state.Records), "batches", state.BatchesDone)

	if errors.Is(err, context.Canceled) {
		slog.Warn("Crawl interrupted, outputs hold the records of completed batches")
		return nil
	}
	return err
}

func resolveToken(ctx context.Context, httpClient *http.Client, s config.IGDBSettings) (string, error) {
	if s.Token != "" {
		return s.Token, nil
	}

	token, err := igdb.FetchAppToken(ctx, httpClient, s.TokenURL, s.ClientID, s.ClientSecret)
	if err != nil {
		return "", fmt.Errorf("failed to obtain IGDB token: %w", err)
	}
	slog.Info("Obtained IGDB app token", "expires_in", time.Duration(token.ExpiresIn)*time.Second)
	return token.AccessToken, nil
}

// openStore returns the configured table export, or nil when none is set.
func openStore(s config.Settings) (datastore.Store, string, error) {
	var store datastore.Store
	var name string

	switch {
	case s.Output.SQLite != "" && s.Datasette.URL != "":
		return nil, "", errors.New("choose either a SQLite or a Datasette export, not both")
	case s.Output.SQLite != "":
		store, name = datastore.NewSQLiteStore(s.Output.SQLite), s.Output.SQLite
	case s.Datasette.URL != "":
		store, name = datastore.NewDatasetteClient(s.Datasette.URL, s.Datasette.Database, s.Datasette.Token), s.Datasette.URL
	default:
		return nil, "", nil
	}

	if err := store.Connect(); err != nil {
		return nil, "", fmt.Errorf("failed to connect to %s: %w", name, err)
	}
	if err := store.CreateTable(datastore.GamesSchema); err != nil {
		return nil, "", errors.Join(err, store.Close())
	}
	return store, name, nil
}
