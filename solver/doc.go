// Package solver wires the word-discovery pipeline together:
// dictionary index build → grid traversal → curation.
//
// Configuration is an explicit Config value passed per call; there is no
// package-level mutable state. Configuration errors are always returned to
// the caller and never turned into an empty result, while a board with no
// findable words yields a Result with an empty, non-nil Words slice.
package solver
