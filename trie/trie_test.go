package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordhunt/trie"
)

func TestBuild_InvalidMinLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		idx, err := trie.Build([]string{"CAT"}, n)
		assert.Nil(t, idx)
		assert.ErrorIs(t, err, trie.ErrInvalidMinLength)
	}
}

func TestBuild_Empty(t *testing.T) {
	idx, err := trie.Build(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 1, idx.Nodes())
	assert.Equal(t, 0, idx.MaxWordLen())
	assert.False(t, idx.HasPrefix(""))
	for c := byte('A'); c <= 'Z'; c++ {
		assert.Nil(t, idx.Root().Child(c))
	}
}

// TestBuild_ShortWordIsPrefixOnly checks that a word below the minimum is
// never a terminal even when it is a prefix of an accepted word.
func TestBuild_ShortWordIsPrefixOnly(t *testing.T) {
	idx, err := trie.Build([]string{"AB", "ABC"}, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, 1, idx.Skipped())
	assert.True(t, idx.Contains("ABC"))
	assert.False(t, idx.Contains("AB"))
	assert.True(t, idx.HasPrefix("AB"))

	ab := idx.Root().Child('A').Child('B')
	require.NotNil(t, ab)
	assert.False(t, ab.IsTerminal())
	assert.Equal(t, "", ab.Word())

	abc := ab.Child('C')
	require.NotNil(t, abc)
	assert.True(t, abc.IsTerminal())
	assert.Equal(t, "ABC", abc.Word())
}

func TestBuild_SkipsNonAlphabetic(t *testing.T) {
	idx, err := trie.Build([]string{"CAT", "can't", "DOG1", "cow", "ÉTÉ"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, 4, idx.Skipped())
	assert.False(t, idx.HasPrefix("D"))
}

func TestBuild_DuplicatesAndStats(t *testing.T) {
	idx, err := trie.Build([]string{"CAT", "CATS", "CAT", "CAR"}, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Len())
	// root, C, A, T, S, R
	assert.Equal(t, 6, idx.Nodes())
	assert.Equal(t, 4, idx.MaxWordLen())
	assert.Equal(t, 3, idx.MinLength())
}

func TestLookups(t *testing.T) {
	idx, err := trie.Build([]string{"TOP", "TOPS", "STOP"}, 3)
	require.NoError(t, err)

	cases := []struct {
		in       string
		contains bool
		prefix   bool
	}{
		{"TOP", true, true},
		{"TOPS", true, true},
		{"TO", false, true},
		{"ST", false, true},
		{"STOPS", false, false},
		{"X", false, false},
		{"top", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.contains, idx.Contains(tc.in))
			assert.Equal(t, tc.prefix, idx.HasPrefix(tc.in))
		})
	}
}

func TestChild_OutOfAlphabet(t *testing.T) {
	idx, err := trie.Build([]string{"CAT"}, 1)
	require.NoError(t, err)
	assert.Nil(t, idx.Root().Child('c'))
	assert.Nil(t, idx.Root().Child('@'))
	assert.Nil(t, idx.Root().Child('['))
	assert.NotNil(t, idx.Root().Child('C'))
}
