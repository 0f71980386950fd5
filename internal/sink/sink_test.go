package sink

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
	"github.com/lepinkainen/gamecrawl/internal/datastore"
	crawlerrors "github.com/lepinkainen/gamecrawl/internal/errors"
	"github.com/lepinkainen/gamecrawl/internal/fileutil"
	"github.com/lepinkainen/gamecrawl/internal/testutil"
)

func sampleRecords(n int) []catalog.EnrichedRecord {
	records := make([]catalog.EnrichedRecord, n)
	for i := range records {
		records[i] = catalog.EnrichedRecord{
			GameName:  fmt.Sprintf("Game %d", i+1),
			Platforms: "PC (Microsoft Windows)",
		}
	}
	records[0].AgeRating = catalog.StringPtr("PEGI 18")
	return records
}

func readSheet(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

type fakeStore struct {
	rows [][]map[string]any
	err  error
}

func (f *fakeStore) Connect() error { return nil }
func (f *fakeStore) CreateTable(string) error { return nil }
func (f *fakeStore) Close() error { return nil }
func (f *fakeStore) ReplaceRows(_ string, rows []map[string]any) error {
	f.rows = append(f.rows, rows)
	return f.err
}

func TestPersist_RoundTrip(t *testing.T) {
	env := testutil.NewTestEnv(t)
	s := New(Options{
		JSONPath: env.Path("out", "gameData.json"),
		XLSXPath: env.Path("out", "gameData.xlsx"),
	})

	records := sampleRecords(3)
	require.NoError(t, s.Persist(context.Background(), records))

	fromJSON, err := fileutil.ReadJSONFile[[]catalog.EnrichedRecord](env.Path("out", "gameData.json"))
	require.NoError(t, err)
	assert.Equal(t, records, fromJSON)

	rows := readSheet(t, env.Path("out", "gameData.xlsx"))
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, catalog.Columns(), rows[0])
	assert.Equal(t, "Game 1", rows[1][0])
	assert.Equal(t, "PEGI 18", rows[1][1])
	assert.Equal(t, "Game 3", rows[3][0])
}

func TestPersist_FullRewrite(t *testing.T) {
	env := testutil.NewTestEnv(t)
	s := New(Options{JSONPath: env.Path("gameData.json"), XLSXPath: env.Path("gameData.xlsx")})

	require.NoError(t, s.Persist(context.Background(), sampleRecords(5)))
	require.NoError(t, s.Persist(context.Background(), sampleRecords(2)))

	rows := readSheet(t, env.Path("gameData.xlsx"))
	assert.Len(t, rows, 3)
}

func TestPersist_EmptyAccumulator(t *testing.T) {
	env := testutil.NewTestEnv(t)
	s := New(Options{JSONPath: env.Path("gameData.json"), XLSXPath: env.Path("gameData.xlsx")})

	require.NoError(t, s.Persist(context.Background(), nil))

	assert.Equal(t, "[]", string(env.ReadFile("gameData.json")))
	rows := readSheet(t, env.Path("gameData.xlsx"))
	assert.Equal(t, [][]string{catalog.Columns()}, rows)
}

func TestPersist_JSONFailureSkipsWorkbook(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFile("blocker", []byte("x"))
	s := New(Options{
		JSONPath: env.Path("blocker", "gameData.json"),
		XLSXPath: env.Path("gameData.xlsx"),
	})

	err := s.Persist(context.Background(), sampleRecords(1))
	require.Error(t, err)
	assert.True(t, crawlerrors.IsPersistenceError(err))
	assert.Contains(t, err.Error(), "gameData.json")
	assert.False(t, env.FileExists("gameData.xlsx"))
}

func TestPersist_WorkbookFailure(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFile("blocker", []byte("x"))
	s := New(Options{
		JSONPath: env.Path("gameData.json"),
		XLSXPath: env.Path("blocker", "gameData.xlsx"),
	})

	err := s.Persist(context.Background(), sampleRecords(1))
	require.Error(t, err)
	assert.True(t, crawlerrors.IsPersistenceError(err))
	assert.Contains(t, err.Error(), "gameData.xlsx")
	env.RequireFileExists("gameData.json")
}

func TestPersist_Store(t *testing.T) {
	env := testutil.NewTestEnv(t)
	store := &fakeStore{}
	s := New(Options{
		JSONPath: env.Path("gameData.json"),
		XLSXPath: env.Path("gameData.xlsx"),
		Store:    store,
	})

	require.NoError(t, s.Persist(context.Background(), sampleRecords(2)))
	require.Len(t, store.rows, 1)
	assert.Len(t, store.rows[0], 2)
	assert.Equal(t, "Game 2", store.rows[0][1]["gameName"])

	store.err = errors.New("database is locked")
	err := s.Persist(context.Background(), sampleRecords(2))
	require.Error(t, err)
	assert.True(t, crawlerrors.IsPersistenceError(err))
	assert.Contains(t, err.Error(), datastore.GamesTable)
	env.RequireFileExists("gameData.xlsx")
}

func TestPersist_SQLiteStore(t *testing.T) {
	env := testutil.NewTestEnv(t)
	store := datastore.NewSQLiteStore(env.Path("games.db"))
	require.NoError(t, store.Connect())
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.CreateTable(datastore.GamesSchema))

	s := New(Options{
		JSONPath:  env.Path("gameData.json"),
		XLSXPath:  env.Path("gameData.xlsx"),
		Store:     store,
		StoreName: env.Path("games.db"),
	})
	require.NoError(t, s.Persist(context.Background(), sampleRecords(4)))
}

func TestNew_Defaults(t *testing.T) {
	s := New(Options{})
	assert.Equal(t, DefaultJSONPath, s.opts.JSONPath)
	assert.Equal(t, DefaultXLSXPath, s.opts.XLSXPath)
}
