package onetree

import (
	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/unionfind"
)

// OneTree tracks the edge list and node degrees of a (partial) 1-tree.
// Invariant: Σ Degree(v) == 2·NumEdges().
type OneTree struct {
	deg   []int
	edges []instance.EdgeID
}

// New returns an empty tree over n nodes with room for a complete 1-tree.
func New(n int) *OneTree {
	return &OneTree{
		deg:   make([]int, n),
		edges: make([]instance.EdgeID, 0, n),
	}
}

// AddEdge appends {i, j} and increments both degrees.
//
// Errors: instance.ErrSelfLoop when i == j, instance.ErrNodeOutOfRange for
// indices outside the tree.
func (t *OneTree) AddEdge(i, j int) error {
	if i >= len(t.deg) || j >= len(t.deg) {
		return instance.ErrNodeOutOfRange
	}
	e, err := instance.Edge(i, j)
	if err != nil {
		return err
	}
	t.push(e, i, j)

	return nil
}

// AddEdgeID appends an already encoded edge.
//
// Errors: instance.ErrNodeOutOfRange for a negative id or an edge whose
// endpoints lie outside the tree.
func (t *OneTree) AddEdgeID(e instance.EdgeID) error {
	if e < 0 {
		return instance.ErrNodeOutOfRange
	}
	i, j := e.Nodes()
	if j >= len(t.deg) {
		return instance.ErrNodeOutOfRange
	}
	t.push(e, i, j)

	return nil
}

func (t *OneTree) push(e instance.EdgeID, i, j int) {
	t.edges = append(t.edges, e)
	t.deg[i]++
	t.deg[j]++
}

// Clear removes all edges, keeping capacity.
func (t *OneTree) Clear() {
	var v int
	for v = range t.deg {
		t.deg[v] = 0
	}
	t.edges = t.edges[:0]
}

// Size returns the node count the tree was created for.
func (t *OneTree) Size() int { return len(t.deg) }

// Degree returns the degree of node v.
func (t *OneTree) Degree(v int) int { return t.deg[v] }

// Degrees returns a copy of the degree vector.
func (t *OneTree) Degrees() []int {
	out := make([]int, len(t.deg))
	copy(out, t.deg)

	return out
}

// Edges returns a copy of the edge list in insertion order.
func (t *OneTree) Edges() []instance.EdgeID {
	out := make([]instance.EdgeID, len(t.edges))
	copy(out, t.edges)

	return out
}

// NumEdges returns the number of edges added since the last Clear.
func (t *OneTree) NumEdges() int { return len(t.edges) }

// Clone returns an independent copy.
func (t *OneTree) Clone() *OneTree {
	c := &OneTree{
		deg:   make([]int, len(t.deg)),
		edges: make([]instance.EdgeID, len(t.edges), cap(t.edges)),
	}
	copy(c.deg, t.deg)
	copy(c.edges, t.edges)

	return c
}

// CopyFrom overwrites t with the contents of src, reusing t's storage.
func (t *OneTree) CopyFrom(src *OneTree) {
	if len(t.deg) != len(src.deg) {
		t.deg = make([]int, len(src.deg))
	}
	copy(t.deg, src.deg)
	t.edges = append(t.edges[:0], src.edges...)
}

// Weight returns the sum of the original (unshifted) costs of the tree edges.
func (t *OneTree) Weight(in *instance.Instance) int64 {
	var (
		sum int64
		e   instance.EdgeID
	)
	for _, e = range t.edges {
		sum += in.Weight(e)
	}

	return sum
}

// TwoRegular reports whether every node has degree exactly 2. A complete
// 1-tree with this property is a Hamiltonian cycle.
func (t *OneTree) TwoRegular() bool {
	var d int
	for _, d = range t.deg {
		if d != 2 {
			return false
		}
	}

	return true
}

// Validate checks the complete 1-tree invariant: exactly N edges, node 0 of
// degree 2, and the edges avoiding node 0 forming a spanning tree on {1..N−1}.
//
// Complexity: O(N·α(N)).
func (t *OneTree) Validate() error {
	var n = len(t.deg)
	if n < instance.MinNodes || len(t.edges) != n || t.deg[0] != 2 {
		return ErrInvalid
	}
	var (
		uf    = unionfind.New(n)
		roots int
		d     int
		i, j  int
		e     instance.EdgeID
	)
	for _, d = range t.deg {
		if d == 0 {
			return ErrInvalid // isolated node
		}
	}
	for _, e = range t.edges {
		i, j = e.Nodes()
		if j >= n {
			return ErrInvalid
		}
		if i == 0 {
			roots++
			continue
		}
		if !uf.Union(i, j) {
			return ErrInvalid // cycle inside {1..N−1}
		}
	}
	if roots != 2 {
		return ErrInvalid
	}

	return nil
}
