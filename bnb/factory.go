package bnb

import (
	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/onetree"
)

// ForbidOne returns the child with e forbidden, bounded with the reduced
// budget and nd's multipliers as the starting point.
//
// Errors: ErrContradiction, ErrEdgeOutOfRange, onetree.ErrInfeasible.
func (nd *Node) ForbidOne(e instance.EdgeID) (*Node, error) {
	c := nd.child()
	if err := c.PushForbidden(e); err != nil {
		return nil, err
	}

	return c.finish()
}

// RequireForbid returns the child with req required and forb forbidden.
// req is pushed first, so forb may already be forbidden by its cascade.
func (nd *Node) RequireForbid(req, forb instance.EdgeID) (*Node, error) {
	c := nd.child()
	if err := c.PushRequired(req); err != nil {
		return nil, err
	}
	if err := c.PushForbidden(forb); err != nil {
		return nil, err
	}

	return c.finish()
}

// RequireBoth returns the child with e1 and e2 required.
func (nd *Node) RequireBoth(e1, e2 instance.EdgeID) (*Node, error) {
	c := nd.child()
	if err := c.PushRequired(e1); err != nil {
		return nil, err
	}
	if err := c.PushRequired(e2); err != nil {
		return nil, err
	}

	return c.finish()
}

func (nd *Node) finish() (*Node, error) {
	if err := nd.evaluate(false); err != nil {
		return nil, err
	}

	return nd, nil
}

// BranchEdges picks the branching pivot: the lowest-index node whose witness
// degree exceeds 2, and its first two free witness edges in tree order.
// ok is false for a two-regular witness.
//
// A 1-tree has Σdeg = 2N with every degree ≥ 1, so any non-tour witness has
// a node of degree > 2; at most two of its edges are required and the
// saturation cascade forbids the rest once two are, so two free edges exist.
func (nd *Node) BranchEdges() (pivot int, e1, e2 instance.EdgeID, ok bool) {
	var (
		n     = nd.tree.Size()
		v     int
		found int
		pick  [2]instance.EdgeID
	)
	for v = 0; v < n; v++ {
		if nd.tree.Degree(v) > 2 {
			break
		}
	}
	if v == n {
		return -1, 0, 0, false
	}
	for _, e := range nd.tree.Edges() {
		if found == 2 {
			break
		}
		if e.Has(v) && nd.state[e] == onetree.Free {
			pick[found] = e
			found++
		}
	}
	if found < 2 {
		return v, 0, 0, false
	}

	return v, pick[0], pick[1], true
}
