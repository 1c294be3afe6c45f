// Package wordhunt finds every dictionary word on a word-hunt letter board
// and can replay the discovered words as pointer gestures.
//
// What is inside?
//
//	trie/        — dictionary index: prefix tree over A–Z, O(1) edge lookup
//	grid/        — immutable square letter board, 8-directional neighbors
//	search/      — depth-first traversal producing every (word, path) find
//	curate/      — deduplication and longest-first / alphabetical ordering
//	wordsource/  — word list loading and normalization
//	solver/      — the pipeline: index → traversal → curation
//	replay/      — screen calibration and timed press/drag/release gestures
//	cmd/wordhunt — command-line front end (solve, play)
//
// Quick ASCII example:
//
//	T O
//	P S
//
// yields SPOT, STOP, TOPS, POT and TOP with a dictionary containing them:
// every word is traced through adjacent cells (diagonals included) without
// reusing a cell.
//
//	go install github.com/katalvlaran/wordhunt/cmd/wordhunt@latest
package wordhunt
