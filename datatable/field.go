package datatable

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Field declares one column of a record type: how it reads as text for
// search and filtering, and how two records compare when sorting by it.
type Field[T any] struct {
	Name string
	// Text renders the field for search and the default exact-match filter.
	Text func(T) string
	// Match overrides exact-match filtering when set.
	Match func(T, string) bool
	// Compare orders two records by this field. Nil means not sortable.
	Compare func(a, b T) int
}

// Sortable reports whether the field has a comparator
func (f Field[T]) Sortable() bool {
	return f.Compare != nil
}

// WithCompare returns a copy of f ordered by compare
func (f Field[T]) WithCompare(compare func(a, b T) int) Field[T] {
	f.Compare = compare
	return f
}

// Unsortable returns a copy of f without a comparator
func (f Field[T]) Unsortable() Field[T] {
	f.Compare = nil
	return f
}

func (f Field[T]) matches(record T, value string) bool {
	if f.Match != nil {
		return f.Match(record, value)
	}
	return f.Text(record) == value
}

// TextField declares a string field ordered lexicographically
func TextField[T any](name string, get func(T) string) Field[T] {
	return Field[T]{
		Name: name,
		Text: get,
		Compare: func(a, b T) int {
			return strings.Compare(get(a), get(b))
		},
	}
}

// IntField declares an integer field ordered numerically
func IntField[T any](name string, get func(T) int) Field[T] {
	return Field[T]{
		Name: name,
		Text: func(record T) string {
			return strconv.Itoa(get(record))
		},
		Compare: func(a, b T) int {
			return cmp.Compare(get(a), get(b))
		},
	}
}

// TimeField declares a time field rendered with layout and ordered chronologically
func TimeField[T any](name string, get func(T) time.Time, layout string) Field[T] {
	return Field[T]{
		Name: name,
		Text: func(record T) string {
			return get(record).Format(layout)
		},
		Compare: func(a, b T) int {
			return get(a).Compare(get(b))
		},
	}
}

// ListField declares a multi-valued field. It searches as the comma-joined
// values and a filter matches when the list contains the selected value.
func ListField[T any](name string, get func(T) []string) Field[T] {
	return Field[T]{
		Name: name,
		Text: func(record T) string {
			return strings.Join(get(record), ",")
		},
		Match: func(record T, value string) bool {
			return slices.Contains(get(record), value)
		},
	}
}
