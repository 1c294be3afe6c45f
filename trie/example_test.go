package trie_test

import (
	"fmt"

	"github.com/katalvlaran/wordhunt/trie"
)

// ExampleBuild shows that words below the minimum length stay out of the
// index as lookup targets while still existing as prefixes.
func ExampleBuild() {
	idx, _ := trie.Build([]string{"AB", "ABC", "ABCD"}, 3)

	fmt.Println("words:", idx.Len())
	fmt.Println("AB is word:", idx.Contains("AB"))
	fmt.Println("AB is prefix:", idx.HasPrefix("AB"))
	fmt.Println("ABC is word:", idx.Contains("ABC"))

	// Output:
	// words: 2
	// AB is word: false
	// AB is prefix: true
	// ABC is word: true
}
