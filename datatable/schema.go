// Package datatable derives filtered, searched and sorted views from an
// in-memory record collection. Derivation is pure: the canonical collection is
// only read, and every call returns a fresh slice.
package datatable

import (
	"fmt"
	"slices"
	"strings"
)

// Schema is the declared set of fields for one record type
type Schema[T any] struct {
	fields     []Field[T]
	index      map[string]int
	searchable []int
}

// NewSchema declares the fields of a record type. Every field is searchable
// until Searching narrows the set. Field names must be unique.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		if _, dup := s.index[field.Name]; dup {
			panic(fmt.Sprintf("datatable: duplicate field %q", field.Name))
		}
		s.index[field.Name] = i
		s.searchable = append(s.searchable, i)
	}
	return s
}

// Searching restricts free-text search to the named fields. It panics on an
// unknown name since schemas are declared once at package init.
func (s *Schema[T]) Searching(names ...string) *Schema[T] {
	searchable := make([]int, 0, len(names))
	for _, name := range names {
		i, ok := s.index[name]
		if !ok {
			panic(fmt.Sprintf("datatable: unknown searchable field %q", name))
		}
		searchable = append(searchable, i)
	}
	s.searchable = searchable
	return s
}

// Field looks up a field by name
func (s *Schema[T]) Field(name string) (Field[T], bool) {
	i, ok := s.index[name]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[i], true
}

// Fields returns the declared fields in order
func (s *Schema[T]) Fields() []Field[T] {
	return slices.Clone(s.fields)
}

// SearchableFields returns the names search looks at
func (s *Schema[T]) SearchableFields() []string {
	names := make([]string, len(s.searchable))
	for i, idx := range s.searchable {
		names[i] = s.fields[idx].Name
	}
	return names
}

// Matches reports whether any searchable field of record contains term,
// case-insensitively. An empty term matches every record.
func (s *Schema[T]) Matches(record T, term string) bool {
	if term == "" {
		return true
	}
	return s.matchesLower(record, strings.ToLower(term))
}

func (s *Schema[T]) matchesLower(record T, term string) bool {
	for _, idx := range s.searchable {
		if strings.Contains(strings.ToLower(s.fields[idx].Text(record)), term) {
			return true
		}
	}
	return false
}

type activeFilter[T any] struct {
	field Field[T]
	value string
}

func (s *Schema[T]) activeFilters(q Query) []activeFilter[T] {
	var active []activeFilter[T]
	for name, value := range q.Filters {
		if value == "" || value == All {
			continue
		}
		field, ok := s.Field(name)
		if !ok {
			continue
		}
		active = append(active, activeFilter[T]{field: field, value: value})
	}
	return active
}

// Derive computes the view of records selected by q: search AND every active
// filter, then the requested sort. Unknown filter fields are ignored, and an
// unknown or unsortable sort field keeps the input order.
func (s *Schema[T]) Derive(records []T, q Query) []T {
	term := strings.ToLower(q.Search)
	filters := s.activeFilters(q)

	view := make([]T, 0, len(records))
records:
	for _, record := range records {
		if term != "" && !s.matchesLower(record, term) {
			continue
		}
		for _, f := range filters {
			if !f.field.matches(record, f.value) {
				continue records
			}
		}
		view = append(view, record)
	}

	if compare := s.comparator(q.Sort); compare != nil {
		slices.SortStableFunc(view, compare)
	}
	return view
}

func (s *Schema[T]) comparator(sort Sort) func(a, b T) int {
	if sort.Field == "" {
		return nil
	}
	field, ok := s.Field(sort.Field)
	if !ok || !field.Sortable() {
		return nil
	}
	if ParseDirection(string(sort.Direction)) == Descending {
		return func(a, b T) int {
			return field.Compare(b, a)
		}
	}
	return field.Compare
}

// Derive is shorthand for schema.Derive(records, q)
func Derive[T any](records []T, schema *Schema[T], q Query) []T {
	return schema.Derive(records, q)
}
