package datatable

import (
	"maps"
	"net/url"
)

// All is the filter sentinel that disables a categorical filter
const All = "all"

// Reserved URL keys used by Query.Values
const (
	SearchKey    = "q"
	SortKey      = "sort"
	DirectionKey = "dir"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection maps "desc" to Descending and anything else to Ascending
func ParseDirection(value string) Direction {
	if value == string(Descending) {
		return Descending
	}
	return Ascending
}

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Sort selects the field a view is ordered by
type Sort struct {
	Field     string    `json:"field,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Query is the complete, serializable description of a derived view.
// Filters maps a field name to the value it must equal; "" and All disable a filter.
type Query struct {
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Sort    Sort              `json:"sort"`
}

// Filter returns the active value of a filter, or All when it is disabled
func (q Query) Filter(field string) string {
	if value := q.Filters[field]; value != "" {
		return value
	}
	return All
}

// WithFilter returns a copy of q with the filter on field set to value
func (q Query) WithFilter(field, value string) Query {
	next := q.clone()
	if next.Filters == nil {
		next.Filters = make(map[string]string)
	}
	next.Filters[field] = value
	return next
}

// WithSearch returns a copy of q searching for term
func (q Query) WithSearch(term string) Query {
	next := q.clone()
	next.Search = term
	return next
}

// ToggleSort is the sort-header click: the current field flips direction,
// any other field becomes the ascending sort key.
func (q Query) ToggleSort(field string) Query {
	next := q.clone()
	if q.Sort.Field == field {
		next.Sort.Direction = ParseDirection(string(q.Sort.Direction)).Flip()
		return next
	}
	next.Sort = Sort{Field: field, Direction: Ascending}
	return next
}

// Values serializes q into URL query values, omitting disabled parts
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set(SearchKey, q.Search)
	}
	for field, value := range q.Filters {
		if value != "" && value != All {
			values.Set(field, value)
		}
	}
	if q.Sort.Field != "" {
		values.Set(SortKey, q.Sort.Field)
		values.Set(DirectionKey, string(ParseDirection(string(q.Sort.Direction))))
	}
	return values
}

// Encode returns the URL-encoded form of q
func (q Query) Encode() string {
	return q.Values().Encode()
}

func (q Query) clone() Query {
	q.Filters = maps.Clone(q.Filters)
	return q
}
