package igdb

import (
	"fmt"
	"strings"
)

// Query is an apicalypse request body: fields, where, limit and offset clauses.
type Query struct {
	Fields []string
	Where  []string
	Limit  int
	Offset int
}

// String renders the query in the textual grammar IGDB expects.
// Where conditions are combined with "&".
func (q Query) String() string {
	var sb strings.Builder

	fields := "*"
	if len(q.Fields) > 0 {
		fields = strings.Join(q.Fields, ", ")
	}
	fmt.Fprintf(&sb, "fields %s;", fields)

	if len(q.Where) > 0 {
		fmt.Fprintf(&sb, " where %s;", strings.Join(q.Where, " & "))
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " limit %d;", q.Limit)
	}
	if q.Offset > 0 {
		fmt.Fprintf(&sb, " offset %d;", q.Offset)
	}

	return sb.String()
}

// GameFields are the games fields the crawler reads.
var GameFields = []string{
	"id",
	"name",
	"platforms",
	"total_rating",
	"first_release_date",
	"genres",
	"involved_companies",
	"summary",
	"url",
	"age_ratings",
}

// GameFilter holds the fixed catalog filters of a crawl.
type GameFilter struct {
	ReleasedAfter int64
	RatingAbove   float64
}

// Conditions returns the where conditions for the filter.
func (f GameFilter) Conditions() []string {
	return []string{
		fmt.Sprintf("first_release_date > %d", f.ReleasedAfter),
		fmt.Sprintf("total_rating > %s", formatNumber(f.RatingAbove)),
		"name != null",
		"platforms != null",
	}
}

// byID builds a single-entity lookup query.
func byID(id int64, fields ...string) Query {
	return Query{
		Fields: fields,
		Where:  []string{fmt.Sprintf("id = %d", id)},
	}
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
