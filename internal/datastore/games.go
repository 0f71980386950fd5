package datastore

import "github.com/lepinkainen/gamecrawl/internal/catalog"

// GamesTable holds one row per enriched record, keyed by accumulator position.
const GamesTable = "games"

// GamesPrimaryKey is the column identifying a row across rewrites.
const GamesPrimaryKey = "position"

// GamesSchema creates the games table. Absent optional fields are NULL.
const GamesSchema = `CREATE TABLE IF NOT EXISTS games (
	position INTEGER PRIMARY KEY,
	gameName TEXT NOT NULL,
	ageRating TEXT,
	developers TEXT,
	publishers TEXT,
	platforms TEXT,
	genres TEXT,
	releaseDate TEXT,
	description TEXT
)`

// GameRows converts records to table rows. Position is 1-based.
func GameRows(records []catalog.EnrichedRecord) []map[string]any {
	rows := make([]map[string]any, len(records))
	for i, r := range records {
		rows[i] = map[string]any{
			GamesPrimaryKey: i + 1,
			"gameName":      r.GameName,
			"ageRating":     nullable(r.AgeRating),
			"developers":    nullable(r.Developers),
			"publishers":    nullable(r.Publishers),
			"platforms":     r.Platforms,
			"genres":        r.Genres,
			"releaseDate":   r.ReleaseDate,
			"description":   r.Description,
		}
	}
	return rows
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
