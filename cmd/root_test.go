package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
	"github.com/lepinkainen/gamecrawl/internal/config"
	"github.com/lepinkainen/gamecrawl/internal/crawl"
	"github.com/lepinkainen/gamecrawl/internal/fileutil"
	"github.com/lepinkainen/gamecrawl/internal/testutil"
)

func resetCmdState(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gamecrawl"),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, ctx
}

func TestCrawlCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, ctx := parseCLI(t, "--debug", "crawl",
		"--page-size", "100",
		"--max-batches", "2",
		"--rating-above", "90",
		"--batch-delay", "1s",
		"--json-output", "out/games.json",
		"--sqlite", "games.db",
		"--strict-developer",
		"--timezone", "UTC",
	)

	assert.Equal(t, "crawl", ctx.Command())
	assert.True(t, cli.Debug)
	assert.Equal(t, 100, cli.Crawl.PageSize)
	assert.Equal(t, 2, cli.Crawl.MaxBatches)
	assert.Equal(t, 90.0, cli.Crawl.RatingAbove)
	assert.Equal(t, "out/games.json", cli.Crawl.JSONOutput)
	assert.Equal(t, "games.db", cli.Crawl.SQLite)
	assert.True(t, cli.Crawl.StrictDeveloper)
}

func TestCacheClearParsing(t *testing.T) {
	resetCmdState(t)

	cli, ctx := parseCLI(t, "cache", "clear", "publisher")
	assert.Equal(t, "cache clear <source>", ctx.Command())
	assert.Equal(t, "publisher", cli.Cache.Clear.Source)
}

func TestApplyFlags_OnlyGivenFlagsOverride(t *testing.T) {
	resetCmdState(t)
	viper.Set("output.xlsx", "from-config.xlsx")

	cmd := &CrawlCmd{PageSize: 50, JSONOutput: "flag.json", Cache: true}
	cmd.applyFlags()

	s, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 50, s.Crawl.PageSize)
	assert.Equal(t, int64(crawl.DefaultReleaseDateFloor), s.Crawl.ReleaseDateFloor)
	assert.Equal(t, "flag.json", s.Output.JSON)
	assert.Equal(t, "from-config.xlsx", s.Output.XLSX)
	assert.True(t, s.Cache.Enabled)
	assert.False(t, s.Crawl.StrictDeveloper)
}

func TestCrawlCmdRun_UsesLoadedSettings(t *testing.T) {
	resetCmdState(t)

	var got config.Settings
	orig := runCrawl
	runCrawl = func(_ context.Context, s config.Settings, _ io.Writer) error {
		got = s
		return nil
	}
	t.Cleanup(func() { runCrawl = orig })

	cmd := &CrawlCmd{MaxBatches: 1, Timezone: "UTC"}
	require.NoError(t, cmd.Run())
	assert.Equal(t, 1, got.Crawl.MaxBatches)
	assert.Equal(t, "UTC", got.Crawl.Location.String())
}

func TestCrawlCmdRun_InvalidConfig(t *testing.T) {
	resetCmdState(t)

	err := (&CrawlCmd{Timezone: "Nowhere/Special"}).Run()
	assert.Error(t, err)
}

func TestInitConfig_ExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	env := testutil.NewTestEnv(t)
	env.WriteFile("crawl.yaml", []byte("crawl:\n  page_size: 25\n  timezone: UTC\noutput:\n  json: custom.json\n"))

	require.NoError(t, initConfig(env.Path("crawl.yaml")))
	s, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 25, s.Crawl.PageSize)
	assert.Equal(t, "custom.json", s.Output.JSON)
	assert.Equal(t, "gameData.xlsx", s.Output.XLSX)
}

func TestInitConfig_MissingDefaultFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	env := testutil.NewTestEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(env.RootDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, initConfig(""))
	assert.Equal(t, 500, viper.GetInt("crawl.page_size"))
}

func TestOpenStore(t *testing.T) {
	env := testutil.NewTestEnv(t)

	store, name, err := openStore(config.Settings{})
	require.NoError(t, err)
	assert.Zero(t, store)
	assert.Equal(t, "", name)

	store, name, err = openStore(config.Settings{Output: config.OutputSettings{SQLite: env.Path("games.db")}})
	require.NoError(t, err)
	assert.Equal(t, env.Path("games.db"), name)
	require.NoError(t, store.Close())

	_, _, err = openStore(config.Settings{
		Output:    config.OutputSettings{SQLite: "games.db"},
		Datasette: config.DatasetteSettings{URL: "http://127.0.0.1:8001"},
	})
	assert.Error(t, err)
}

const searchPage = `<html><body>
<div class="BNeawe s3v9rd AP7Wnd">Publisher:
  <span class="BNeawe tAd8D AP7Wnd"><a href="/p"><span class="XLloXe AP7Wnd">Supergiant Games</span></a></span>
</div></body></html>`

type fakeIGDB struct {
	server      *httptest.Server
	gameQueries []string
}

func newFakeIGDB(t *testing.T) *fakeIGDB {
	t.Helper()

	s := &fakeIGDB{}
	s.server = testutil.NewIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		q := string(body)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v4/games":
			s.gameQueries = append(s.gameQueries, q)
			if strings.Contains(q, "offset 2;") {
				_, _ = w.Write([]byte(`[]`))
				return
			}
			_, _ = w.Write([]byte(`[
				{"id": 1, "name": "Hades", "platforms": [6, 130], "genres": [12, 31],
				 "first_release_date": 1600387200, "involved_companies": [101],
				 "summary": "Defy the god of the dead.", "age_ratings": [7]},
				{"id": 2, "name": "Quiet Game", "platforms": [6]}
			]`))
		case "/v4/age_ratings":
			_, _ = w.Write([]byte(`[{"id": 7, "category": 2, "rating": 3}]`))
		case "/v4/involved_companies":
			_, _ = w.Write([]byte(`[{"id": 101, "company": 70}]`))
		case "/v4/companies":
			_, _ = w.Write([]byte(`[{"id": 70, "name": "Supergiant Games"}]`))
		case "/search":
			w.Header().Set("Content-Type", "text/html")
			if r.URL.Query().Get("q") == "Hades" {
				_, _ = w.Write([]byte(searchPage))
				return
			}
			_, _ = w.Write([]byte(`<html><body>nothing</body></html>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return s
}

func TestCrawlWithSettings_EndToEnd(t *testing.T) {
	resetCmdState(t)
	env := testutil.NewTestEnv(t)
	fake := newFakeIGDB(t)
	srvURL := fake.server.URL

	settings := config.Settings{
		Crawl: crawl.Config{
			PageSize:         2,
			ReleaseDateFloor: crawl.DefaultReleaseDateFloor,
			RatingFloor:      crawl.DefaultRatingFloor,
			Location:         time.UTC,
		},
		Output: config.OutputSettings{
			JSON:   env.Path("gameData.json"),
			XLSX:   env.Path("gameData.xlsx"),
			SQLite: env.Path("games.db"),
		},
		IGDB: config.IGDBSettings{
			ClientID: "client",
			Token:    "token",
			BaseURL:  srvURL + "/v4",
		},
		Cache: config.CacheSettings{
			Enabled: true,
			DBFile:  env.Path("cache.db"),
			TTL:     time.Hour,
		},
		Publisher: config.PublisherSettings{SearchURL: srvURL + "/search"},
	}

	var out bytes.Buffer
	require.NoError(t, crawlWithSettings(context.Background(), settings, &out))

	records, err := fileutil.ReadJSONFile[[]catalog.EnrichedRecord](env.Path("gameData.json"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	hades := records[0]
	assert.Equal(t, "Hades", hades.GameName)
	require.NotNil(t, hades.AgeRating)
	assert.Equal(t, "PEGI 12", *hades.AgeRating)
	require.NotNil(t, hades.Developers)
	assert.Equal(t, "Supergiant Games", *hades.Developers)
	require.NotNil(t, hades.Publishers)
	assert.Equal(t, "Supergiant Games", *hades.Publishers)
	assert.Equal(t, "9/18/2020", hades.ReleaseDate)
	assert.Equal(t, "Role-playing (RPG), Adventure", hades.Genres)

	quiet := records[1]
	assert.Zero(t, quiet.AgeRating)
	assert.Zero(t, quiet.Developers)
	assert.Zero(t, quiet.Publishers)
	assert.Equal(t, "", quiet.ReleaseDate)

	assert.Equal(t, 2, len(fake.gameQueries))
	assert.True(t, env.FileExists("gameData.xlsx"))
	assert.True(t, env.FileExists("games.db"))
	assert.Contains(t, out.String(), "Completed - added")
}

func TestCrawlWithSettings_MissingCredentials(t *testing.T) {
	err := crawlWithSettings(context.Background(), config.Settings{}, io.Discard)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "client ID is required")
}

func TestMetricsServer(t *testing.T) {
	srv, err := startMetricsServer("127.0.0.1:0")
	require.NoError(t, err)
	shutdownMetricsServer(srv)

	_, err = startMetricsServer("256.0.0.1:bad")
	assert.Error(t, err)
}
