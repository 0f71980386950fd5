// Package lookup holds the static IGDB id -> name tables. The tables are built
// once at package init and are safe for concurrent reads.
package lookup

import "strings"

// Entry is one (id, name) pair of a lookup table.
type Entry struct {
	ID   int64
	Name string
}

// Table is an immutable id -> name mapping.
type Table struct {
	names map[int64]string
}

// NewTable builds a Table from entries. Later duplicates win.
func NewTable(entries []Entry) Table {
	names := make(map[int64]string, len(entries))
	for _, e := range entries {
		names[e.ID] = e.Name
	}
	return Table{names: names}
}

var (
	// Platforms maps IGDB platform ids to platform names.
	Platforms = NewTable(platformEntries)
	// Genres maps IGDB genre ids to genre names.
	Genres = NewTable(genreEntries)
	// AgeRatings maps the numeric age rating enum to a display label.
	AgeRatings = NewTable(ageRatingEntries)
)

// Name returns the name for id.
func (t Table) Name(id int64) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t.names)
}

// JoinNames resolves ids in input order and joins the known names with ", ".
// Unknown ids are skipped. The bool is false when ids is empty.
func (t Table) JoinNames(ids []int64) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := t.names[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", "), true
}

// AgeRatingLabel maps a numeric rating to its label, falling back to UnknownAgeRating.
func AgeRatingLabel(rating int64) string {
	if label, ok := AgeRatings.Name(rating); ok {
		return label
	}
	return UnknownAgeRating
}
