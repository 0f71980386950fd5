// Package config turns viper state into the settings of a crawl run.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/gamecrawl/internal/cache"
	"github.com/lepinkainen/gamecrawl/internal/crawl"
	"github.com/lepinkainen/gamecrawl/internal/igdb"
	"github.com/lepinkainen/gamecrawl/internal/publisher"
	"github.com/lepinkainen/gamecrawl/internal/ratelimit"
	"github.com/lepinkainen/gamecrawl/internal/sink"
)

// Settings is the complete configuration of a crawl run.
type Settings struct {
	Crawl     crawl.Config
	Output    OutputSettings
	IGDB      IGDBSettings
	Cache     CacheSettings
	Publisher PublisherSettings
	Datasette DatasetteSettings
	// MetricsAddr serves /metrics when non-empty.
	MetricsAddr string
}

// OutputSettings names the output artifacts.
type OutputSettings struct {
	JSON   string
	XLSX   string
	SQLite string
}

// IGDBSettings holds the API credentials and endpoints.
type IGDBSettings struct {
	ClientID     string
	ClientSecret string
	// Token is a ready app access token. When empty it is requested with the client secret.
	Token             string
	BaseURL           string
	TokenURL          string
	RequestsPerSecond int
}

// CacheSettings controls the lookup cache.
type CacheSettings struct {
	Enabled bool
	DBFile  string
	TTL     time.Duration
}

// PublisherSettings controls how search pages are fetched.
type PublisherSettings struct {
	Browser   bool
	Headless  bool
	SearchURL string
}

// DatasetteSettings configures the optional remote table export.
type DatasetteSettings struct {
	URL      string
	Database string
	Token    string
}

// SetDefaults registers the default of every key.
func SetDefaults() {
	viper.SetDefault("crawl.page_size", crawl.DefaultPageSize)
	viper.SetDefault("crawl.max_batches", 0)
	viper.SetDefault("crawl.release_after", crawl.DefaultReleaseDateFloor)
	viper.SetDefault("crawl.rating_above", crawl.DefaultRatingFloor)
	viper.SetDefault("crawl.batch_delay", crawl.DefaultBatchDelay.String())
	viper.SetDefault("crawl.strict_developer", false)
	viper.SetDefault("crawl.timezone", "")

	viper.SetDefault("output.json", sink.DefaultJSONPath)
	viper.SetDefault("output.xlsx", sink.DefaultXLSXPath)
	viper.SetDefault("output.sqlite", "")

	viper.SetDefault("igdb.base_url", igdb.DefaultBaseURL)
	viper.SetDefault("igdb.token_url", igdb.DefaultTokenURL)
	viper.SetDefault("igdb.requests_per_second", ratelimit.IGDBRequestsPerSecond)

	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", cache.DefaultCacheTTL.String())

	viper.SetDefault("publisher.browser", false)
	viper.SetDefault("publisher.headless", true)
	viper.SetDefault("publisher.search_url", publisher.DefaultSearchURL)

	viper.SetDefault("datasette.database", "gamecrawl")
}

// envBindings maps config keys to environment variables, preferred name first.
var envBindings = map[string][]string{
	"igdb.client_id":     {"IGDB_CLIENT_ID", "CLIENT_ID"},
	"igdb.client_secret": {"IGDB_CLIENT_SECRET", "CLIENT_SECRET"},
	"igdb.token":         {"IGDB_API_KEY", "API_KEY"},
	"datasette.token":    {"DATASETTE_TOKEN"},
}

// BindEnv binds the credential keys to their environment variables.
func BindEnv() error {
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := viper.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}
	return nil
}

// Load reads the current viper state into Settings.
func Load() (Settings, error) {
	loc, err := loadLocation(viper.GetString("crawl.timezone"))
	if err != nil {
		return Settings{}, err
	}

	batchDelay, err := parseDuration("crawl.batch_delay")
	if err != nil {
		return Settings{}, err
	}
	if batchDelay < 0 {
		return Settings{}, fmt.Errorf("crawl.batch_delay must not be negative, got %s", batchDelay)
	}

	cacheTTL, err := parseDuration("cache.ttl")
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Crawl: crawl.Config{
			PageSize:         viper.GetInt("crawl.page_size"),
			MaxBatches:       viper.GetInt("crawl.max_batches"),
			ReleaseDateFloor: viper.GetInt64("crawl.release_after"),
			RatingFloor:      viper.GetFloat64("crawl.rating_above"),
			BatchDelay:       batchDelay,
			StrictDeveloper:  viper.GetBool("crawl.strict_developer"),
			Location:         loc,
		},
		Output: OutputSettings{
			JSON:   viper.GetString("output.json"),
			XLSX:   viper.GetString("output.xlsx"),
			SQLite: viper.GetString("output.sqlite"),
		},
		IGDB: IGDBSettings{
			ClientID:          viper.GetString("igdb.client_id"),
			ClientSecret:      viper.GetString("igdb.client_secret"),
			Token:             viper.GetString("igdb.token"),
			BaseURL:           viper.GetString("igdb.base_url"),
			TokenURL:          viper.GetString("igdb.token_url"),
			RequestsPerSecond: viper.GetInt("igdb.requests_per_second"),
		},
		Cache: CacheSettings{
			Enabled: viper.GetBool("cache.enabled"),
			DBFile:  viper.GetString("cache.dbfile"),
			TTL:     cacheTTL,
		},
		Publisher: PublisherSettings{
			Browser:   viper.GetBool("publisher.browser"),
			Headless:  viper.GetBool("publisher.headless"),
			SearchURL: viper.GetString("publisher.search_url"),
		},
		Datasette: DatasetteSettings{
			URL:      viper.GetString("datasette.url"),
			Database: viper.GetString("datasette.database"),
			Token:    viper.GetString("datasette.token"),
		},
		MetricsAddr: viper.GetString("metrics.addr"),
	}

	if s.Crawl.PageSize <= 0 {
		return Settings{}, fmt.Errorf("crawl.page_size must be positive, got %d", s.Crawl.PageSize)
	}
	if s.Crawl.MaxBatches < 0 {
		return Settings{}, fmt.Errorf("crawl.max_batches must not be negative, got %d", s.Crawl.MaxBatches)
	}

	return s, nil
}

// Validate reports missing credentials needed to talk to IGDB.
func (s Settings) Validate() error {
	if s.IGDB.ClientID == "" {
		return fmt.Errorf("IGDB client ID is required (set IGDB_CLIENT_ID or igdb.client_id in config)")
	}
	if s.IGDB.Token == "" && s.IGDB.ClientSecret == "" {
		return fmt.Errorf("IGDB access token or client secret is required (set IGDB_API_KEY or IGDB_CLIENT_SECRET)")
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid crawl.timezone %q: %w", name, err)
	}
	slog.Debug("Release dates pinned to timezone", "timezone", loc.String())
	return loc, nil
}

func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
