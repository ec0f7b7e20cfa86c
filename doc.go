// Package hkbb solves the symmetric travelling salesman problem exactly.
//
// What is hkbb?
//
//	An exact TSP solver built on two classical ideas:
//		• Held–Karp 1-tree bound: a minimum spanning tree on nodes 1..N−1 plus
//		  the two cheapest edges at node 0, tightened by Lagrangian
//		  multipliers on the node degrees (subgradient ascent).
//		• Best-first branch-and-bound: subproblems fix edges as required or
//		  forbidden, are ordered by their bound, and are split on a node of
//		  witness degree > 2 until every remaining bound reaches the best tour.
//
// Packages:
//
//	instance/  complete weighted graph, triangular edge ids, tour lengths
//	unionfind/ disjoint sets for Kruskal
//	onetree/   1-tree structure, tour extraction, constrained minimal 1-tree builder
//	heldkarp/  subgradient ascent producing integral lower bounds
//	bnb/       branching nodes with constraint propagation, the search itself
//	tsplib/    TSPLIB instance parser, tour reader and writer
//	metrics/   Prometheus observer for search progress
//	config/    YAML settings validated with struct tags
//	cmd/hkbb   command-line front end
//
// Quick start:
//
//	prob, _ := tsplib.ParseFile("berlin52.tsp")
//	in, _ := prob.Instance()
//	res, err := bnb.Solve(ctx, in, bnb.Options{SeedTour: true})
//	// res.Tour starts at 0, res.Length is optimal when err == nil.
//
// All algorithm packages are deterministic: equal input gives equal trees,
// bounds and tours, independent of Options.Workers.
package hkbb
