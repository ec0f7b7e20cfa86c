package bnb

import (
	"sync"

	"github.com/katalvlaran/hkbb/heldkarp"
	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/onetree"
)

// shared is the read-only context of one search tree. The engine pool hands
// each goroutine its own builder scratch space.
type shared struct {
	inst *instance.Instance
	hk   heldkarp.Config
	pool sync.Pool
}

func newShared(in *instance.Instance, cfg heldkarp.Config) *shared {
	sh := &shared{inst: in, hk: cfg}
	sh.pool.New = func() any { return heldkarp.NewEngine(in) }

	return sh
}

// Node is one branch-and-bound subproblem.
type Node struct {
	sh     *shared
	state  []onetree.EdgeState // indexed by EdgeID
	reqDeg []int               // required edges incident to each node
	lambda []float64
	tree   *onetree.OneTree
	bound  int64
	depth  int
	seq    uint64 // frontier tie-break, set on enqueue
}

// NewRoot creates the unconstrained root subproblem and computes its bound
// with the full iteration budget and zero initial multipliers.
//
// Errors: onetree.ErrInfeasible cannot occur for a complete instance but is
// passed through from the bound computation.
func NewRoot(in *instance.Instance, cfg heldkarp.Config) (*Node, error) {
	var n = in.Size()
	nd := &Node{
		sh:     newShared(in, cfg),
		state:  make([]onetree.EdgeState, in.NumEdges()),
		reqDeg: make([]int, n),
		lambda: make([]float64, n),
		tree:   onetree.New(n),
	}
	if err := nd.evaluate(true); err != nil {
		return nil, err
	}

	return nd, nil
}

// child copies every mutable field of nd.
func (nd *Node) child() *Node {
	c := &Node{
		sh:     nd.sh,
		state:  make([]onetree.EdgeState, len(nd.state)),
		reqDeg: make([]int, len(nd.reqDeg)),
		lambda: make([]float64, len(nd.lambda)),
		tree:   onetree.New(len(nd.reqDeg)),
		depth:  nd.depth + 1,
	}
	copy(c.state, nd.state)
	copy(c.reqDeg, nd.reqDeg)
	copy(c.lambda, nd.lambda)

	return c
}

// evaluate runs the Held–Karp ascent for nd's constraints, warm-started from
// nd.lambda, and stores the bound and witness.
func (nd *Node) evaluate(root bool) error {
	eng := nd.sh.pool.Get().(*heldkarp.Engine)
	defer nd.sh.pool.Put(eng)

	b, err := eng.Bound(nd.lambda, nd.tree, nd, root, nd.sh.hk)
	if err != nil {
		return err
	}
	nd.bound = b

	return nil
}

// State returns the constraint state of e. It makes *Node an
// onetree.Constraints.
func (nd *Node) State(e instance.EdgeID) onetree.EdgeState { return nd.state[e] }

// IsRequired reports whether e must be in every tour of this subproblem.
func (nd *Node) IsRequired(e instance.EdgeID) bool {
	return nd.contains(e) && nd.state[e] == onetree.Required
}

// IsForbidden reports whether e may not be in any tour of this subproblem.
func (nd *Node) IsForbidden(e instance.EdgeID) bool {
	return nd.contains(e) && nd.state[e] == onetree.Forbidden
}

func (nd *Node) contains(e instance.EdgeID) bool { return nd.sh.inst.Contains(e) }

// PushRequired marks e as required.
//
//   - Already required: no-op.
//   - Already forbidden: ErrContradiction.
//   - Otherwise e becomes required, and every endpoint that now has two
//     required edges gets all its other free edges forbidden.
//
// A free edge therefore never touches a node with two required edges, and
// requiring any other edge at such a node is ErrContradiction.
func (nd *Node) PushRequired(e instance.EdgeID) error {
	if !nd.contains(e) {
		return ErrEdgeOutOfRange
	}
	switch nd.state[e] {
	case onetree.Required:
		return nil
	case onetree.Forbidden:
		return ErrContradiction
	}
	i, j := e.Nodes()
	nd.state[e] = onetree.Required
	nd.reqDeg[i]++
	nd.reqDeg[j]++
	if nd.reqDeg[i] == 2 {
		nd.saturate(i)
	}
	if nd.reqDeg[j] == 2 {
		nd.saturate(j)
	}

	return nil
}

// saturate forbids every free edge at v.
func (nd *Node) saturate(v int) {
	var (
		n = len(nd.reqDeg)
		u int
		f instance.EdgeID
	)
	for u = 0; u < n; u++ {
		if u == v {
			continue
		}
		f = instance.MustEdge(u, v)
		if nd.state[f] == onetree.Free {
			nd.state[f] = onetree.Forbidden
		}
	}
}

// PushForbidden marks e as forbidden. Already forbidden: no-op; already
// required: ErrContradiction. Forbidding never forces other edges.
func (nd *Node) PushForbidden(e instance.EdgeID) error {
	if !nd.contains(e) {
		return ErrEdgeOutOfRange
	}
	switch nd.state[e] {
	case onetree.Forbidden:
		return nil
	case onetree.Required:
		return ErrContradiction
	}
	nd.state[e] = onetree.Forbidden

	return nil
}

// TwoRegular reports whether the witness 1-tree is a Hamiltonian cycle, in
// which case Bound is the exact length of that tour.
func (nd *Node) TwoRegular() bool { return nd.tree.TwoRegular() }

// Bound returns the Held–Karp bound (rounded up).
func (nd *Node) Bound() int64 { return nd.bound }

// Depth returns the distance from the root.
func (nd *Node) Depth() int { return nd.depth }

// Instance returns the shared instance.
func (nd *Node) Instance() *instance.Instance { return nd.sh.inst }

// Tree returns a copy of the witness 1-tree.
func (nd *Node) Tree() *onetree.OneTree { return nd.tree.Clone() }

// Lambda returns a copy of the multipliers of the witness iteration.
func (nd *Node) Lambda() []float64 {
	out := make([]float64, len(nd.lambda))
	copy(out, nd.lambda)

	return out
}

// RequiredDegree returns the number of required edges at v.
func (nd *Node) RequiredDegree(v int) int { return nd.reqDeg[v] }

// Counts returns the number of required and forbidden edges.
func (nd *Node) Counts() (required, forbidden int) {
	for _, s := range nd.state {
		switch s {
		case onetree.Required:
			required++
		case onetree.Forbidden:
			forbidden++
		}
	}

	return required, forbidden
}
