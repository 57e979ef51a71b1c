// Package listing holds the list screen state: the authoritative items as
// last fetched and the projection left after search and filters.
package listing

import (
	"strings"

	"go-medical-console/internal/domain/entity"
)

// Field extracts one searchable string from an item.
type Field[T any] func(item *T) string

// Predicate keeps an item when it returns true.
type Predicate[T any] func(item *T) bool

type View[T any] struct {
	Items    []T
	Filtered []T
}

func NewView[T any](items []T) *View[T] {
	if items == nil {
		items = []T{}
	}
	v := &View[T]{Items: items}
	v.Reset()
	return v
}

// Reset restores Filtered to the full item list.
func (v *View[T]) Reset() *View[T] {
	v.Filtered = append(make([]T, 0, len(v.Items)), v.Items...)
	return v
}

// Search keeps the filtered items where term occurs, ignoring case and
// accents, in at least one of fields. An empty term keeps everything.
func (v *View[T]) Search(term string, fields ...Field[T]) *View[T] {
	needle := entity.Fold(strings.TrimSpace(term))
	if needle == "" {
		return v
	}
	return v.Filter(func(item *T) bool {
		for _, f := range fields {
			if strings.Contains(entity.Fold(f(item)), needle) {
				return true
			}
		}
		return false
	})
}

// Filter narrows the current projection with each predicate in turn.
func (v *View[T]) Filter(preds ...Predicate[T]) *View[T] {
	for _, keep := range preds {
		if keep == nil {
			continue
		}
		out := v.Filtered[:0:0]
		for i := range v.Filtered {
			if keep(&v.Filtered[i]) {
				out = append(out, v.Filtered[i])
			}
		}
		v.Filtered = out
	}
	return v
}

// Page is one client-side slice of the filtered items.
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// Page cuts page (1-based) out of Filtered. perPage <= 0 returns
// everything as a single page; out of range pages are empty.
func (v *View[T]) Page(page, perPage int) Page[T] {
	total := len(v.Filtered)
	if perPage <= 0 {
		return Page[T]{Items: v.Filtered, Page: 1, PerPage: total, Total: total, TotalPages: 1}
	}
	if page < 1 {
		page = 1
	}

	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	// Bounds are checked before multiplying so huge page numbers cannot wrap.
	start, end := total, total
	if page <= totalPages {
		start = (page - 1) * perPage
		end = total
		if perPage < total-start {
			end = start + perPage
		}
	}

	return Page[T]{
		Items:      v.Filtered[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
