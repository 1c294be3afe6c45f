// Package trie implements the dictionary index used by the word search:
// a prefix tree over the uppercase alphabet A–Z.
//
// What:
//
//   - Build(words, minLength): inserts every word with len ≥ minLength.
//     Shorter words never become terminals, although their letters may still
//     appear as internal prefix nodes of longer inserted words.
//   - Node.Child(letter): O(1) edge lookup through a fixed [26] array.
//   - Node.IsTerminal / Node.Word: test and retrieve a completed word.
//   - Index.Contains / Index.HasPrefix: O(len) lookups from the root.
//
// The index is build-once / read-many. It has no removal operation and is
// never mutated after Build returns, so a single *Index may be shared by any
// number of concurrent searches.
//
// Complexity:
//
//   - Build:    Time O(Σ len(w)), Memory O(nodes × 26 pointers)
//   - Child:    Time O(1)
//   - Contains: Time O(len(word))
//
// Errors:
//
//   - ErrInvalidMinLength  minLength < 1
package trie
