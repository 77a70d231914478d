// Package table implements the filter, sort and page projection shared by
// every list surface.
package table

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize is used when a query does not specify a positive page size.
const DefaultPageSize = 10

// SortConfig names the active sort key and its direction.
type SortConfig struct {
	Key       string
	Direction Direction
}

// Toggle returns the config produced by clicking key: the same key flips
// direction, a new key starts ascending.
func (c SortConfig) Toggle(key string) SortConfig {
	if c.Key == key && c.Direction == Asc {
		return SortConfig{Key: key, Direction: Desc}
	}
	return SortConfig{Key: key, Direction: Asc}
}

// Key describes one sortable column. Present reports whether an item has a
// value for the column; items without one always sort last.
type Key[T any] struct {
	Compare func(a, b T) int
	Present func(T) bool
}

// Spec configures a projection for one item type.
type Spec[T any] struct {
	// Search returns the text fields matched by the search term.
	Search func(T) []string
	Keys   map[string]Key[T]
	// TieBreak orders items whose active key compares equal. Always ascending.
	TieBreak func(a, b T) int
}

type Query struct {
	Search   string
	Sort     SortConfig
	Page     int
	PageSize int
}

type Page[T any] struct {
	Items     []T
	Total     int
	Page      int
	PageSize  int
	PageCount int
}

// Project filters, sorts and slices items. The input slice is not modified.
func Project[T any](items []T, spec Spec[T], q Query) Page[T] {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := q.Page
	if page < 0 {
		page = 0
	}

	filtered := Filter(items, spec.Search, q.Search)
	Sort(filtered, spec, q.Sort)

	total := len(filtered)
	// Compared by division so huge page numbers cannot overflow.
	start := total
	if page <= total/size {
		start = min(page*size, total)
	}
	end := total
	if size < total-start {
		end = start + size
	}

	return Page[T]{
		Items:     filtered[start:end:end],
		Total:     total,
		Page:      page,
		PageSize:  size,
		PageCount: pageCount(total, size),
	}
}

func pageCount(total, size int) int {
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// Filter keeps items where any search field contains term, case-insensitively.
// An empty term keeps everything. The result is always a fresh slice.
func Filter[T any](items []T, fields func(T) []string, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if term == "" || fields == nil || matches(fields(it), term) {
			out = append(out, it)
		}
	}
	return out
}

func matches(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Sort orders items in place by the configured key. Unknown keys leave only
// the tie-break in effect.
func Sort[T any](items []T, spec Spec[T], cfg SortConfig) {
	key, hasKey := spec.Keys[cfg.Key]
	slices.SortStableFunc(items, func(a, b T) int {
		if hasKey {
			if key.Present != nil {
				pa, pb := key.Present(a), key.Present(b)
				if pa != pb {
					if pa {
						return -1
					}
					return 1
				}
				if !pa {
					return tieBreak(spec, a, b)
				}
			}
			c := key.Compare(a, b)
			if cfg.Direction == Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return tieBreak(spec, a, b)
	})
}

func tieBreak[T any](spec Spec[T], a, b T) int {
	if spec.TieBreak == nil {
		return 0
	}
	return spec.TieBreak(a, b)
}

// StringKey sorts case-insensitively by a text field. Empty strings count as missing.
func StringKey[T any](get func(T) string) Key[T] {
	return Key[T]{
		Compare: func(a, b T) int {
			return cmp.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		},
		Present: func(t T) bool { return get(t) != "" },
	}
}

// NumberKey sorts by a numeric field that is always present.
func NumberKey[T any, N cmp.Ordered](get func(T) N) Key[T] {
	return Key[T]{
		Compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

// TimeKey sorts by an optional timestamp; nil values are missing.
func TimeKey[T any](get func(T) *time.Time) Key[T] {
	return Key[T]{
		Compare: func(a, b T) int { return get(a).Compare(*get(b)) },
		Present: func(t T) bool { return get(t) != nil },
	}
}

// Pager tracks page position for one list surface.
type Pager struct {
	Page     int
	PageSize int
}

// SetPageSize changes the page size and returns to the first page.
func (p *Pager) SetPageSize(size int) {
	p.PageSize = size
	p.Page = 0
}

// Next advances one page if more pages remain.
func (p *Pager) Next(total int) {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if p.Page < pageCount(total, size)-1 {
		p.Page++
	}
}

// Prev moves back one page, stopping at the first.
func (p *Pager) Prev() {
	if p.Page > 0 {
		p.Page--
	}
}

// Reset returns to the first page, used when the search term changes.
func (p *Pager) Reset() {
	p.Page = 0
}
