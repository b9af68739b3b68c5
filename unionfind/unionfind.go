// Package unionfind implements a disjoint-set forest over a fixed universe of
// string identifiers, with union by rank and path compression.
//
// The universe is fixed at construction. Asking about an identifier outside
// it is a programming error (the caller built a graph whose edges reference
// unknown nodes) and panics with ErrUnknownElement rather than silently
// producing a wrong partition.
//
// Complexity: Find and Union run in O(α(n)) amortized; New is O(n).
package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is the panic value (wrapped) for identifiers outside the universe.
var ErrUnknownElement = errors.New("unionfind: element outside universe")

// UnionFind is a disjoint-set forest stored as parallel arrays indexed by the
// position of each identifier in the universe.
type UnionFind struct {
	index  map[string]int
	ids    []string
	parent []int
	rank   []int
	sets   int
}

// New returns a UnionFind with every id in its own singleton set (rank 0).
// Duplicate ids are collapsed onto their first occurrence.
func New(ids []string) *UnionFind {
	uf := &UnionFind{
		index:  make(map[string]int, len(ids)),
		ids:    make([]string, 0, len(ids)),
		parent: make([]int, 0, len(ids)),
		rank:   make([]int, 0, len(ids)),
	}
	for _, id := range ids {
		if _, dup := uf.index[id]; dup {
			continue
		}
		i := len(uf.ids)
		uf.index[id] = i
		uf.ids = append(uf.ids, id)
		uf.parent = append(uf.parent, i)
		uf.rank = append(uf.rank, 0)
	}
	uf.sets = len(uf.ids)

	return uf
}

// Find returns the representative of x's set.
//
// Two passes, no recursion: walk to the root, then re-point every node on the
// walked path directly at it.
func (uf *UnionFind) Find(x string) string {
	return uf.ids[uf.root(uf.mustIndex(x))]
}

// Union merges the sets of x and y. It returns false when they already share
// a set. The lower-rank root goes under the higher-rank root; on equal ranks
// y's root goes under x's root and x's root gains one rank.
func (uf *UnionFind) Union(x, y string) bool {
	rx := uf.root(uf.mustIndex(x))
	ry := uf.root(uf.mustIndex(y))
	if rx == ry {
		return false
	}

	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	uf.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y string) bool {
	return uf.root(uf.mustIndex(x)) == uf.root(uf.mustIndex(y))
}

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Len returns the size of the universe.
func (uf *UnionFind) Len() int { return len(uf.ids) }

// Contains reports whether x belongs to the universe.
func (uf *UnionFind) Contains(x string) bool {
	_, ok := uf.index[x]

	return ok
}

func (uf *UnionFind) root(i int) int {
	r := i
	for uf.parent[r] != r {
		r = uf.parent[r]
	}
	for uf.parent[i] != r {
		next := uf.parent[i]
		uf.parent[i] = r
		i = next
	}

	return r
}

func (uf *UnionFind) mustIndex(x string) int {
	i, ok := uf.index[x]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownElement, x))
	}

	return i
}
