// Package search implements the fuzzy query engine used to filter a directory
// listing: a case-sensitive subsequence matcher plus the ordering policy applied
// to the kept names.
package search

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Match reports whether every rune of query occurs in name, in order, with any
// number of runes before, between and after them. Positions are the rune indexes
// of the leftmost match. The query is plain text: no character has pattern meaning.
func Match(name, query string) ([]int, bool) {
	if query == "" {
		return nil, true
	}

	want := []rune(query)
	positions := make([]int, 0, len(want))
	next := 0
	idx := 0
	for _, r := range name {
		if r == want[next] {
			positions = append(positions, idx)
			next++
			if next == len(want) {
				return positions, true
			}
		}
		idx++
	}
	return nil, false
}

// Matches is Match without the positions.
func Matches(name, query string) bool {
	_, ok := Match(name, query)
	return ok
}

// Rank returns the indexes of names kept by query, in display order.
//
// With a non-empty query the kept names are ordered by ascending rune length,
// equal lengths keeping their input order. With an empty query every name is kept
// and ordered lexicographically; duplicates stay in input order.
func Rank(names []string, query string) []int {
	order := make([]int, 0, len(names))
	for i, name := range names {
		if Matches(name, query) {
			order = append(order, i)
		}
	}

	if query == "" {
		slices.SortStableFunc(order, func(a, b int) int {
			return strings.Compare(names[a], names[b])
		})
		return order
	}

	lengths := make(map[int]int, len(order))
	for _, i := range order {
		lengths[i] = utf8.RuneCountInString(names[i])
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return lengths[a] - lengths[b]
	})
	return order
}

// FilterAndSort returns the names kept by query in display order. It is pure:
// the result depends only on its arguments.
func FilterAndSort(names []string, query string) []string {
	order := Rank(names, query)
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = names[idx]
	}
	return out
}
