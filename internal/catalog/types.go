// Package catalog defines the game records moving through a crawl.
package catalog

import (
	"reflect"
	"strings"
)

// RawRecord is a single game as returned by the IGDB games endpoint.
type RawRecord struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Platforms         []int64 `json:"platforms"`
	Genres            []int64 `json:"genres"`
	TotalRating       float64 `json:"total_rating"`
	FirstReleaseDate  int64   `json:"first_release_date"`
	InvolvedCompanies []int64 `json:"involved_companies"`
	Summary           string  `json:"summary"`
	URL               string  `json:"url"`
	AgeRatings        []int64 `json:"age_ratings"`
}

// EnrichedRecord is a RawRecord with every resolver field attached or left absent.
// Field order is the column order of the workbook.
type EnrichedRecord struct {
	GameName    string  `json:"gameName"`
	AgeRating   *string `json:"ageRating,omitempty"`
	Developers  *string `json:"developers,omitempty"`
	Publishers  *string `json:"publishers,omitempty"`
	Platforms   string  `json:"platforms,omitempty"`
	Genres      string  `json:"genres,omitempty"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Columns returns the JSON field names of EnrichedRecord in declaration order.
func Columns() []string {
	t := reflect.TypeOf(EnrichedRecord{})
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = t.Field(i).Name
		}
		columns = append(columns, name)
	}
	return columns
}

// Row returns the record's values in Columns order. Absent fields are empty strings.
func (r EnrichedRecord) Row() []string {
	return []string{
		r.GameName,
		deref(r.AgeRating),
		deref(r.Developers),
		deref(r.Publishers),
		r.Platforms,
		r.Genres,
		r.ReleaseDate,
		r.Description,
	}
}

// StringPtr returns a pointer to s, for populating optional fields.
func StringPtr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
