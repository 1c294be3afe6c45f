// Package curate turns raw search discoveries into the final result list:
// one entry per distinct word, ordered by a deterministic policy.
//
// What:
//
//   - Curate(discoveries, sortByLength): keeps the first discovery of each
//     word, then orders longest-first (ties alphabetical) or alphabetically.
//   - Top(list, n): the first n entries, for "show top N" listings.
//
// Complexity:
//
//   - Curate: Time O(n log n), Memory O(n)
//   - Top:    Time O(1)
package curate
