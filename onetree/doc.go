// Package onetree builds minimum-cost 1-trees under edge constraints and
// Lagrangian-shifted costs.
//
// A 1-tree over nodes {0..N−1} is a spanning tree on {1..N−1} plus two edges
// incident to the distinguished node 0. Every Hamiltonian cycle is a 1-tree in
// which every node has degree 2, so the cheapest 1-tree is a lower bound on
// the cheapest tour.
//
// # Builder
//
//   - Modified cost c'(i,j) = c(i,j) + λi + λj for every free edge.
//   - Forbidden edges are never considered; required edges are ranked ahead of
//     every free edge (a −∞ key).
//   - Edges are ordered by a stable sort over the canonical EdgeID order, so
//     equal keys are always resolved the same way.
//   - Kruskal builds the spanning tree on {1..N−1}; node 0 is skipped there and
//     receives the first two eligible incident edges of the same order.
//
// Infeasible constraint sets (a required cycle, forbidden edges cutting
// {1..N−1} apart, fewer than two usable node-0 edges, more than two required
// node-0 edges) are reported as ErrInfeasible, never as a panic.
//
// OneTree itself is a plain container (degrees + edge list) and performs no
// validation on insert; Validate checks the complete 1-tree invariant.
package onetree
