package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordhunt/grid"
	"github.com/katalvlaran/wordhunt/search"
	"github.com/katalvlaran/wordhunt/trie"
)

// catsRows is the reference 4×4 board used across tests.
var catsRows = []string{"CATS", "AREA", "TOPS", "SETS"}

// catsWords mixes words present on the catsRows board with absent ones.
var catsWords = []string{
	"CAT", "CATS", "ARE", "AREA", "AREAS", "TOP", "TOPS", "STOP", "POTS",
	"SET", "SETS", "REST", "EAT", "EATS", "SEAT", "TEA", "TEAS", "ART",
	"ARTS", "RAT", "RATS", "TAR", "TARO", "PEST", "PESTS", "STEP", "DOG",
	"ZEBRA", "CARE", "CARES", "RACE", "ROPE", "ROPES", "TOE", "TOES",
}

func mustBoard(tb testing.TB, rows ...string) *grid.Board {
	tb.Helper()
	b, err := grid.Parse(rows...)
	require.NoError(tb, err)

	return b
}

func mustIndex(tb testing.TB, words []string, minLen int) *trie.Index {
	tb.Helper()
	idx, err := trie.Build(words, minLen)
	require.NoError(tb, err)

	return idx
}

// randomBoard returns a side×side board of letters drawn from a small
// alphabet so that dictionary words actually occur.
func randomBoard(tb testing.TB, r *rand.Rand, side int) *grid.Board {
	tb.Helper()
	const letters = "AEIOSTRNPL"
	rows := make([]string, side)
	for i := range rows {
		buf := make([]byte, side)
		for j := range buf {
			buf[j] = letters[r.Intn(len(letters))]
		}
		rows[i] = string(buf)
	}

	return mustBoard(tb, rows...)
}

// randomWords returns n random words of length 2..maxLen over the same
// alphabet as randomBoard.
func randomWords(r *rand.Rand, n, maxLen int) []string {
	const letters = "AEIOSTRNPL"
	out := make([]string, n)
	for i := range out {
		l := 2 + r.Intn(maxLen-1)
		buf := make([]byte, l)
		for j := range buf {
			buf[j] = letters[r.Intn(len(letters))]
		}
		out[i] = string(buf)
	}

	return out
}

// spellable is an independent brute-force check that word can be traced on b
// along a simple 8-adjacent path.
func spellable(b *grid.Board, word string) bool {
	var try func(c grid.Coord, i int, used map[grid.Coord]bool) bool
	try = func(c grid.Coord, i int, used map[grid.Coord]bool) bool {
		if b.At(c) != word[i] {
			return false
		}
		if i == len(word)-1 {
			return true
		}
		used[c] = true
		defer delete(used, c)
		for _, n := range b.Neighbors(nil, c) {
			if !used[n] && try(n, i+1, used) {
				return true
			}
		}

		return false
	}
	for i := 0; i < b.Cells(); i++ {
		if try(b.CoordOf(i), 0, map[grid.Coord]bool{}) {
			return true
		}
	}

	return false
}

// assertValidDiscovery checks path fidelity, distinctness and adjacency.
func assertValidDiscovery(t *testing.T, b *grid.Board, d search.Discovery, minLen int) {
	t.Helper()
	require.GreaterOrEqual(t, len(d.Word), minLen, d.Word)
	require.Equal(t, d.Word, b.Spell(d.Path), "path must spell the word")
	seen := make(map[grid.Coord]bool, len(d.Path))
	for i, c := range d.Path {
		require.True(t, b.InBounds(c))
		require.False(t, seen[c], "cell %v repeated in %q", c, d.Word)
		seen[c] = true
		if i > 0 {
			require.True(t, d.Path[i-1].Adjacent(c), "%v and %v not adjacent in %q", d.Path[i-1], c, d.Word)
		}
	}
}
