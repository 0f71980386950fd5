package datastore

// Store defines the interface for the optional tabular export of crawl results
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// ReplaceRows makes the table hold exactly the given rows
	ReplaceRows(table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
