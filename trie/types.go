package trie

import "errors"

// AlphabetSize is the number of edge labels a node can carry (A–Z).
const AlphabetSize = 26

// ErrInvalidMinLength indicates a non-positive minimum word length.
var ErrInvalidMinLength = errors.New("trie: minimum word length must be >= 1")

// Node is a single prefix-tree vertex. Children are indexed by letter-'A'.
// A terminal node stores the complete word spelled from the root to it.
type Node struct {
	children [AlphabetSize]*Node
	terminal bool
	word     string
}

// Index is an immutable prefix tree over a filtered word set.
type Index struct {
	root       *Node
	minLength  int
	words      int // distinct terminal words
	nodes      int // total nodes including root
	maxWordLen int
	skipped    int // words rejected for length or alphabet
}
