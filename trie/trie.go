package trie

// Build constructs an Index from words, inserting only those whose length is
// at least minLength and whose letters are all in A–Z. Rejected words are
// counted in Skipped. Duplicate words are inserted once.
// Returns ErrInvalidMinLength if minLength < 1.
func Build(words []string, minLength int) (*Index, error) {
	if minLength < 1 {
		return nil, ErrInvalidMinLength
	}
	idx := &Index{
		root:      &Node{},
		minLength: minLength,
		nodes:     1,
	}
	for _, w := range words {
		if len(w) < minLength || !validWord(w) {
			idx.skipped++
			continue
		}
		idx.insert(w)
	}

	return idx, nil
}

// insert walks or creates the chain of nodes for w and marks the last one.
func (idx *Index) insert(w string) {
	n := idx.root
	for i := 0; i < len(w); i++ {
		k := w[i] - 'A'
		next := n.children[k]
		if next == nil {
			next = &Node{}
			n.children[k] = next
			idx.nodes++
		}
		n = next
	}
	if n.terminal {
		return
	}
	n.terminal = true
	n.word = w
	idx.words++
	if len(w) > idx.maxWordLen {
		idx.maxWordLen = len(w)
	}
}

func validWord(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}

	return true
}

// Root returns the root node. It is never nil for a built Index.
func (idx *Index) Root() *Node { return idx.root }

// Len returns the number of distinct words stored.
func (idx *Index) Len() int { return idx.words }

// Nodes returns the total node count, root included.
func (idx *Index) Nodes() int { return idx.nodes }

// MaxWordLen returns the length of the longest stored word, 0 when empty.
// It bounds the depth of any search driven by this index.
func (idx *Index) MaxWordLen() int { return idx.maxWordLen }

// MinLength returns the minimum word length the index was built with.
func (idx *Index) MinLength() int { return idx.minLength }

// Skipped returns how many input words were rejected during Build.
func (idx *Index) Skipped() int { return idx.skipped }

// Contains reports whether word is stored as a complete word.
func (idx *Index) Contains(word string) bool {
	n := idx.walk(word)
	return n != nil && n.terminal
}

// HasPrefix reports whether some stored word starts with prefix.
// The empty prefix is reported present only for a non-empty index.
func (idx *Index) HasPrefix(prefix string) bool {
	if prefix == "" {
		return idx.words > 0
	}

	return idx.walk(prefix) != nil
}

func (idx *Index) walk(s string) *Node {
	n := idx.root
	for i := 0; i < len(s) && n != nil; i++ {
		n = n.Child(s[i])
	}

	return n
}

// Child returns the node reached through the edge labeled letter, or nil if
// no such edge exists or letter is outside A–Z.
// Complexity: O(1).
func (n *Node) Child(letter byte) *Node {
	if letter < 'A' || letter > 'Z' {
		return nil
	}

	return n.children[letter-'A']
}

// IsTerminal reports whether the node completes a stored word.
func (n *Node) IsTerminal() bool { return n.terminal }

// Word returns the word completed at this node, or "" for a non-terminal.
func (n *Node) Word() string { return n.word }
