// Package listfilter implements the shared list filtering and summary
// pattern used by the queue, prior-authorization, and visit trackers:
// a set of independent field predicates is ANDed together in a single
// order-preserving pass, and aggregate counts are derived from the
// filtered result.
package listfilter

import (
	"math"
	"sort"
	"strings"
	"time"
)

// All is the sentinel dropdown value meaning "no filtering on this field".
const All = "all"

// Predicate reports whether a record passes a single filter.
type Predicate[T any] func(T) bool

// Apply returns the subsequence of items satisfying every predicate, in
// the original order. The input slice is never mutated.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, p := range preds {
			if !p(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// TextSearch matches when any of the record's searchable fields contains
// term as a case-insensitive substring. An empty term matches everything.
func TextSearch[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(item T) bool {
		if term == "" {
			return true
		}
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// Equals matches when the record's field equals value exactly. An empty
// value or the All sentinel matches everything.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		if value == "" || value == All {
			return true
		}
		return field(item) == value
	}
}

// DateRange matches when the record's date falls within [from, to]
// inclusive. A nil bound is not checked; two nil bounds match everything.
func DateRange[T any](from, to *time.Time, date func(T) time.Time) Predicate[T] {
	return func(item T) bool {
		d := date(item)
		if from != nil && d.Before(*from) {
			return false
		}
		if to != nil && d.After(*to) {
			return false
		}
		return true
	}
}

// CountBy counts items per key, typically the status field.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// Rate returns subset as a rounded percentage of total, or 0 when total
// is 0.
func Rate(subset, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(subset) / float64(total) * 100))
}

// Distinct returns the sorted distinct values of a field across the
// unfiltered collection, for populating filter dropdowns. Empty values
// are skipped.
func Distinct[T any](items []T, field func(T) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		v := field(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
