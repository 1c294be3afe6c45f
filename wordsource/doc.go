// Package wordsource loads and normalizes candidate dictionary words.
//
// Input is plain text with one word per line. Blank lines and lines starting
// with '#' are ignored. Words are trimmed and uppercased; any word containing
// a character outside A–Z after uppercasing (apostrophes, digits, accents) is
// dropped, as is any word shorter than the requested minimum. The result is
// deduplicated and sorted, ready for trie.Build.
package wordsource
