package cache

import "fmt"

// Cache table names. All cache tables share the cache_key/data/cached_at layout.
const (
	AgeRatingTable       = "igdb_age_rating_cache"
	InvolvedCompanyTable = "igdb_involved_company_cache"
	CompanyTable         = "igdb_company_cache"
	PublisherTable       = "publisher_search_cache"
)

func tableSchema(tableName string) string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_%[1]s_cached_at ON %[1]s(cached_at);
`, tableName)
}

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	tableSchema(AgeRatingTable),
	tableSchema(InvolvedCompanyTable),
	tableSchema(CompanyTable),
	tableSchema(PublisherTable),
}

// ValidCacheTableNames is the whitelist of allowed cache table names
// Used to prevent SQL injection when interpolating table names
var ValidCacheTableNames = map[string]bool{
	AgeRatingTable:       true,
	InvolvedCompanyTable: true,
	CompanyTable:         true,
	PublisherTable:       true,
}

// SourceTables maps the user-facing source names of `cache clear` to tables.
var SourceTables = map[string]string{
	"age_rating":       AgeRatingTable,
	"involved_company": InvolvedCompanyTable,
	"company":          CompanyTable,
	"publisher":        PublisherTable,
}
