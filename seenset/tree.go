package seenset

import "sort"

// Comparer orders two keys the way gridstate.State.Compare does: negative
// if a < b, zero if equal, positive if a > b.
type Comparer[T any] func(a, b T) int

type entry[T any] struct {
	key T
	tag int
}

// Tree is an ordered set of keys, each remembering the tag (vertex number)
// it was assigned on first insertion. It is safe for a single goroutine
// only; the BFS layer driver that owns a Tree never shares it.
type Tree[T any] struct {
	cmp     Comparer[T]
	entries []entry[T]
}

// New builds an empty Tree ordered by cmp.
func New[T any](cmp Comparer[T]) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

func (t *Tree[T]) search(key T) (int, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.cmp(t.entries[i].key, key) >= 0
	})
	if i < len(t.entries) && t.cmp(t.entries[i].key, key) == 0 {
		return i, true
	}
	return i, false
}

// Contains reports whether key has already been inserted.
func (t *Tree[T]) Contains(key T) bool {
	_, found := t.search(key)
	return found
}

// Tag returns the vertex number assigned to key, and whether it was found.
func (t *Tree[T]) Tag(key T) (int, bool) {
	i, found := t.search(key)
	if !found {
		return 0, false
	}
	return t.entries[i].tag, true
}

// Insert records key with tag if it is not already present. It returns the
// tag actually associated with key (the new one on first insertion, the
// existing one otherwise) and whether this call inserted it.
func (t *Tree[T]) Insert(key T, tag int) (int, bool) {
	i, found := t.search(key)
	if found {
		return t.entries[i].tag, false
	}
	t.entries = append(t.entries, entry[T]{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = entry[T]{key: key, tag: tag}
	return tag, true
}

// Len reports the number of distinct keys inserted so far.
func (t *Tree[T]) Len() int {
	return len(t.entries)
}
