package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/gamecrawl/internal/cache"
	"github.com/lepinkainen/gamecrawl/internal/config"
)

// CLI represents the complete command structure for the gamecrawl application
type CLI struct {
	// Global flags
	Debug      bool   `help:"Enable debug logging"`
	ConfigFile string `name:"config-file" help:"Path to a YAML config file (defaults to ./config.yaml when present)" type:"path"`

	Crawl CrawlCmd `cmd:"" help:"Crawl the IGDB catalog and write the enriched game list"`
	Cache CacheCmd `cmd:"" help:"Manage the lookup cache"`
}

// CacheCmd groups the lookup cache maintenance commands
type CacheCmd struct {
	Clear cache.ClearCmd `cmd:"" help:"Delete every cached entry of one lookup source"`
	Prune cache.PruneCmd `cmd:"" help:"Delete expired entries from every cache table"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(false)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gamecrawl"),
		kong.Description("Crawl the IGDB games catalog, enrich every title and write it to JSON and XLSX."),
		kong.UsageOnError(),
	)

	if cli.Debug {
		initLogging(true)
	}

	if err := initConfig(cli.ConfigFile); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// initConfig registers defaults and environment bindings and reads the
// config file. A missing default config file is not an error.
func initConfig(configFile string) error {
	config.SetDefaults()

	if err := config.BindEnv(); err != nil {
		return err
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults and environment")
			return nil
		}
		return err
	}

	slog.Debug("Loaded config file", "path", viper.ConfigFileUsed())
	return nil
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
