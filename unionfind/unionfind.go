// Package unionfind provides a disjoint-set forest over the integers [0, n).
//
// It is used by the 1-tree builder to decide whether an edge joins two
// different components (tree edge) or closes a cycle (rejected edge).
//
// Find uses iterative path halving, Union merges by rank; both run in
// amortized O(α(n)). The zero value is not usable: call New.
package unionfind

// UnionFind is a disjoint-set forest. It is not safe for concurrent use.
type UnionFind struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns n singleton sets {0}, {1}, …, {n−1}.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]uint8, n),
	}
	uf.Reset()

	return uf
}

// Reset turns every element back into its own singleton set without
// reallocating.
func (uf *UnionFind) Reset() {
	var i int
	for i = range uf.parent {
		uf.parent[i] = i
		uf.rank[i] = 0
	}
	uf.sets = len(uf.parent)
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the representative of x's set.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}

	return x
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Union merges the sets of x and y. It returns false when they were already
// the same set, i.e. when an edge {x, y} would close a cycle.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper one.
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
