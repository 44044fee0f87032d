// Package query implements the list pipeline shared by every admin screen:
// filter, then sort, then paginate, as a pure function of the records and an
// explicit view state. The pipeline never fails on malformed input; values
// that do not parse as numbers fall back to string comparison and missing
// columns compare as the empty string.
package query

import (
	"sort"
	"strconv"
	"strings"
)

// Direction of a sort.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// DefaultPageSize is used when the view state carries no usable page size.
const DefaultPageSize = 10

// Getter extracts one column of a record as its display string. Numeric
// columns return their decimal representation so that substring search and
// numeric-aware sorting both work from the same value.
type Getter[T any] func(T) string

// Columns describes how a record type exposes its fields to the pipeline:
// a named getter per sortable/filterable column and the subset of column
// names included in the free-text search.
type Columns[T any] struct {
	Fields map[string]Getter[T]
	Search []string
}

// State is the view state of one list screen, passed into and returned from
// every pipeline run. An empty Search, an empty filter value, or an empty
// SortColumn is a no-op.
type State struct {
	Search     string
	Filters    map[string]string
	SortColumn string
	SortDir    Direction
	Page       int
	PageSize   int
}

// Page is the result of a pipeline run: the records of the requested page,
// the total filtered count (not the raw collection count), and the
// normalized state that produced it.
type Page[T any] struct {
	Records []T
	Total   int
	State   State
}

// Exact is a single equality criterion. An empty Value always matches.
type Exact[T any] struct {
	Value string
	Get   Getter[T]
}

// Criteria is a conjunction of a case-insensitive substring search over the
// searchable columns and zero or more exact-match filters.
type Criteria[T any] struct {
	Search       string
	SearchFields []Getter[T]
	Exact        []Exact[T]
}

// Matches reports whether a record satisfies every non-empty criterion.
func (c Criteria[T]) Matches(rec T) bool {
	if needle := strings.ToLower(strings.TrimSpace(c.Search)); needle != "" {
		found := false
		for _, get := range c.SearchFields {
			if strings.Contains(strings.ToLower(get(rec)), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, e := range c.Exact {
		if e.Value == "" {
			continue
		}
		if e.Get(rec) != e.Value {
			return false
		}
	}
	return true
}

// Filter returns the records matching the criteria, preserving input order.
// All-empty criteria return a copy of the input.
func Filter[T any](records []T, c Criteria[T]) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if c.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Sort returns a new ordered slice; the input is left untouched because
// callers keep re-deriving pages from the same source array. The sort is
// stable: equal keys keep their original relative order. Values that both
// parse as numbers compare numerically, anything else compares
// case-insensitively.
func Sort[T any](records []T, get Getter[T], dir Direction) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(get(out[i]), get(out[j]))
		if dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// compareValues orders two column values: numerically when both parse as
// numbers, case-insensitive lexicographically otherwise.
func compareValues(a, b string) int {
	na, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	nb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Paginate slices one 1-indexed page out of the records and returns it with
// the total count. A page past the end yields an empty slice; there is no
// clamping back to the last valid page. A page or size below 1 also yields
// an empty slice rather than failing.
func Paginate[T any](records []T, page, size int) ([]T, int) {
	total := len(records)
	if page < 1 || size < 1 {
		return []T{}, total
	}
	start := (page - 1) * size
	if start >= total {
		return []T{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, records[start:end])
	return out, total
}

// Run executes the full pipeline for one view state: filter, then sort,
// then paginate against the filtered-and-sorted set. Page and PageSize are
// normalized (page defaults to 1, size to DefaultPageSize) and the
// normalized state is returned with the page.
func Run[T any](records []T, st State, cols Columns[T]) Page[T] {
	crit := Criteria[T]{Search: st.Search}
	for _, name := range cols.Search {
		if get, ok := cols.Fields[name]; ok {
			crit.SearchFields = append(crit.SearchFields, get)
		}
	}
	for name, want := range st.Filters {
		if get, ok := cols.Fields[name]; ok {
			crit.Exact = append(crit.Exact, Exact[T]{Value: want, Get: get})
		}
	}

	out := Filter(records, crit)

	if st.SortColumn != "" {
		if get, ok := cols.Fields[st.SortColumn]; ok {
			if st.SortDir == "" {
				st.SortDir = Ascending
			}
			out = Sort(out, get, st.SortDir)
		}
	}

	if st.Page < 1 {
		st.Page = 1
	}
	if st.PageSize < 1 {
		st.PageSize = DefaultPageSize
	}
	recs, total := Paginate(out, st.Page, st.PageSize)
	return Page[T]{Records: recs, Total: total, State: st}
}
