package curate

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/wordhunt/search"
)

// Curate deduplicates discoveries by word and orders the survivors.
//
// For each word the first discovery in input order is kept; search emits
// discoveries in a deterministic enumeration order, so the surviving path is
// reproducible. When sortByLength is true the list is ordered by descending
// word length with ties in ascending lexicographic order; otherwise it is
// ordered lexicographically ascending.
//
// The input slice is not modified. The result is never nil.
// Complexity: O(n log n).
func Curate(discoveries []search.Discovery, sortByLength bool) []search.Discovery {
	// 1. Deduplicate, first occurrence wins
	seen := make(map[string]struct{}, len(discoveries))
	out := make([]search.Discovery, 0, len(discoveries))
	for _, d := range discoveries {
		if _, dup := seen[d.Word]; dup {
			continue
		}
		seen[d.Word] = struct{}{}
		out = append(out, d)
	}

	// 2. Order; words are unique now, so the comparators are total
	if sortByLength {
		slices.SortFunc(out, byLength)
	} else {
		slices.SortFunc(out, byWord)
	}

	return out
}

func byWord(a, b search.Discovery) int {
	return cmp.Compare(a.Word, b.Word)
}

func byLength(a, b search.Discovery) int {
	if c := cmp.Compare(len(b.Word), len(a.Word)); c != 0 {
		return c
	}

	return byWord(a, b)
}

// Top returns the first n entries of list, or all of them when n <= 0 or n
// exceeds the list length. The returned slice shares list's backing array.
func Top(list []search.Discovery, n int) []search.Discovery {
	if n <= 0 || n >= len(list) {
		return list
	}

	return list[:n]
}
