package onetree

import (
	"math"
	"sort"

	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/unionfind"
)

// Builder computes minimum 1-trees for one instance. It owns scratch buffers
// that are reused across calls, so repeated builds (one per subgradient
// iteration) do not allocate. A Builder is not safe for concurrent use;
// create one per goroutine.
type Builder struct {
	inst  *instance.Instance
	n     int
	lo    []int32 // lo[e], hi[e]: endpoints of edge e, lo < hi
	hi    []int32
	key   []float64         // modified cost per edge id
	req   []bool            // req[e]: edge e is required in the current build
	order []instance.EdgeID // candidate edges, sorted by key
	uf    *unionfind.UnionFind
}

// NewBuilder prepares a builder for in.
//
// Complexity: O(N²) time and memory (endpoint tables).
func NewBuilder(in *instance.Instance) *Builder {
	var (
		m    = in.NumEdges()
		b    = &Builder{inst: in, n: in.Size()}
		i, j int
	)
	b.lo = make([]int32, m)
	b.hi = make([]int32, m)
	b.key = make([]float64, m)
	b.req = make([]bool, m)
	b.order = make([]instance.EdgeID, 0, m)
	b.uf = unionfind.New(b.n)
	for j = 1; j < b.n; j++ {
		for i = 0; i < j; i++ {
			e := instance.MustEdge(i, j)
			b.lo[e], b.hi[e] = int32(i), int32(j)
		}
	}

	return b
}

// Instance returns the instance the builder was prepared for.
func (b *Builder) Instance() *instance.Instance { return b.inst }

// Build clears tree and fills it with a minimum 1-tree with respect to the
// modified costs c(i,j)+λi+λj, honouring cons. A nil cons means no constraints.
//
// Errors:
//   - ErrSizeMismatch if len(lambda) or tree.Size() differ from N.
//   - ErrInfeasible if no 1-tree satisfies cons.
//
// Complexity: O(E log E) with E = N·(N−1)/2.
func (b *Builder) Build(lambda []float64, cons Constraints, tree *OneTree) error {
	if len(lambda) != b.n || tree.Size() != b.n {
		return ErrSizeMismatch
	}
	if cons == nil {
		cons = Unconstrained{}
	}
	tree.Clear()

	// Collect candidates with their keys; forbidden edges never enter.
	var (
		m     = len(b.key)
		e     instance.EdgeID
		state EdgeState
	)
	b.order = b.order[:0]
	for e = 0; e < instance.EdgeID(m); e++ {
		state = cons.State(e)
		b.req[e] = state == Required
		switch state {
		case Forbidden:
			continue
		case Required:
			b.key[e] = math.Inf(-1)
		default:
			b.key[e] = float64(b.inst.Weight(e)) + lambda[b.lo[e]] + lambda[b.hi[e]]
		}
		b.order = append(b.order, e)
	}

	// Stable: equal keys keep ascending EdgeID order.
	sort.SliceStable(b.order, func(x, y int) bool {
		return b.key[b.order[x]] < b.key[b.order[y]]
	})

	// Kruskal on {1..N−1}; node-0 edges are only collected.
	var (
		need     = b.n - 2
		added    int
		root     [2]instance.EdgeID
		nRoot    int
		reqRoot  int
		i, j     int
		required bool
	)
	b.uf.Reset()
	for _, e = range b.order {
		i, j = int(b.lo[e]), int(b.hi[e])
		required = b.req[e]
		if i == 0 {
			if required {
				reqRoot++
			}
			if nRoot < 2 {
				root[nRoot] = e
				nRoot++
			}
		} else if added < need && b.uf.Union(i, j) {
			tree.push(e, i, j)
			added++
		} else if required {
			// A required edge that closes a cycle (or overfills the tree).
			tree.Clear()
			return ErrInfeasible
		}
		// Required edges sort first, so past a free edge nothing is left to check.
		if !required && added == need && nRoot == 2 {
			break
		}
	}
	if added < need || nRoot < 2 || reqRoot > 2 {
		tree.Clear()
		return ErrInfeasible
	}
	for i = 0; i < 2; i++ {
		tree.push(root[i], 0, int(b.hi[root[i]]))
	}

	return nil
}

// Build is a one-shot convenience wrapper around NewBuilder(in).Build.
func Build(in *instance.Instance, lambda []float64, cons Constraints, tree *OneTree) error {
	return NewBuilder(in).Build(lambda, cons, tree)
}
