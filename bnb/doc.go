// Package bnb solves the symmetric TSP exactly by best-first branch-and-bound
// over Held–Karp 1-tree bounds.
//
// # Branching nodes
//
// A Node is one subproblem: a tri-state per edge (free, required, forbidden),
// the Lagrangian multipliers it inherited and refined, the witness 1-tree of
// its best bound iteration, and the bound itself. Nodes are created only by
// factories that compute the bound before returning:
//
//   - NewRoot: no constraints, λ = 0, full iteration budget.
//   - (*Node).ForbidOne: parent constraints plus one forbidden edge.
//   - (*Node).RequireForbid: plus one required and one forbidden edge.
//   - (*Node).RequireBoth: plus two required edges.
//
// A factory returns onetree.ErrInfeasible for a subproblem without any 1-tree.
// Children own independent copies of every mutable field; only the instance
// is shared. The search never pushes constraints onto a node after its
// factory returns.
//
// # Propagation
//
//   - PushRequired never lets a node collect a third required edge: once a
//     node has two, every other free edge at it is forbidden.
//   - PushForbidden is monotone and does not cascade.
//   - Contradicting an earlier decision returns ErrContradiction.
//
// # Search
//
// Solve keeps a frontier ordered by (bound, creation order). The lowest bound
// is popped; it is pruned when the bound cannot beat the incumbent, accepted
// when its witness is a tour, and otherwise split on two free witness edges
// at the lowest-index node of witness degree > 2:
//
//	forbid e1  |  require e1, forbid e2  |  require e1 and e2
//
// The third child is only generated while the pivot has no required edge.
// The three subproblems partition the tours of the parent. An empty frontier
// proves the incumbent optimal.
//
// Solve is single-threaded unless Options.Workers > 1, in which case the
// children of one expansion are bounded concurrently and enqueued in the
// fixed order above, so results do not depend on scheduling.
package bnb
