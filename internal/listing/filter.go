// Package listing applies the search and ordering the list views offer
// on top of normalized snapshot records. Both operations are pure: they
// return new slices and never mutate or reorder the input.
package listing

import "strings"

// Searchable is implemented by snapshot view records; SearchFields lists
// the stringified fields a search query is matched against.
type Searchable interface {
	SearchFields() []string
}

// Filter returns the records whose searchable fields contain query as a
// case-insensitive substring. An empty (or all-whitespace) query matches
// everything; relative order is always preserved.
func Filter[T Searchable](items []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range it.SearchFields() {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
