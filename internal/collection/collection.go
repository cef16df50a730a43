// Package collection is the one shared implementation of the
// list/filter/paginate pattern the public catalog pages repeat: compute the
// distinct values of one or two facet fields, apply a conjunction of a
// free-text match and exact facet matches, then slice the result into
// fixed-size pages.
package collection

import (
	"sort"
	"strings"
)

// Page is one window over a filtered result set. TotalPages is derived from
// TotalItems, never from the slice length of Items.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// FacetValues returns the distinct non-empty values extract yields, sorted
// ascending, for populating a filter dropdown.
func FacetValues[T any](items []T, extract func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	values := make([]string, 0, len(items))
	for _, item := range items {
		v := strings.TrimSpace(extract(item))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Filter keeps the items every predicate accepts. Nil predicates are
// ignored, so callers can pass the result of FacetPredicate("") directly.
func Filter[T any](items []T, predicates ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range predicates {
			if pred == nil {
				continue
			}
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// TextPredicate matches when any extracted field contains the query,
// case-insensitively. An empty query returns nil (match everything).
func TextPredicate[T any](query string, extract func(T) []string) func(T) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range extract(item) {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// FacetPredicate matches items whose facet equals the selected value. An
// empty or "all" selection returns nil (match everything).
func FacetPredicate[T any](selected string, extract func(T) string) func(T) bool {
	v := strings.TrimSpace(selected)
	if v == "" || strings.EqualFold(v, "all") {
		return nil
	}
	return func(item T) bool {
		return strings.EqualFold(strings.TrimSpace(extract(item)), v)
	}
}

// Paginate slices items into the requested fixed-size page. Page numbers are
// 1-based; out-of-range pages return an empty item list with the totals
// intact. A non-positive size falls back to the whole set as one page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = len(items)
		if size == 0 {
			size = 1
		}
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
