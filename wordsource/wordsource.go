package wordsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// ErrInvalidMinLength indicates a non-positive minimum word length.
var ErrInvalidMinLength = errors.New("wordsource: minimum word length must be >= 1")

// Read parses words from r.
func Read(r io.Reader, minLength int) ([]string, error) {
	if minLength < 1 {
		return nil, ErrInvalidMinLength
	}
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") { // blank or comment
			continue
		}
		if w, ok := normalize(line, minLength); ok {
			seen[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordsource: scan: %w", err)
	}

	return sortedKeys(seen), nil
}

// Load opens path and parses it with Read.
func Load(path string, minLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordsource: open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Read(f, minLength)
	if err != nil {
		return nil, fmt.Errorf("wordsource: read %s: %w", path, err)
	}

	return words, nil
}

// FromSlice applies the same normalization as Read to an in-memory list.
// Words failing normalization are dropped silently.
func FromSlice(words []string, minLength int) []string {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if n, ok := normalize(strings.TrimSpace(w), minLength); ok {
			seen[n] = struct{}{}
		}
	}

	return sortedKeys(seen)
}

func normalize(w string, minLength int) (string, bool) {
	if w == "" || len(w) < minLength {
		return "", false
	}
	w = strings.ToUpper(w)
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", false
		}
	}

	return w, true
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	slices.Sort(out)

	return out
}
