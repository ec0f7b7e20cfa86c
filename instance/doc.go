// Package instance holds the immutable input of a symmetric TSP: the number
// of points N and an integral cost for every unordered pair of distinct points.
//
// # Edge encoding
//
//   - Every unordered pair {i, j}, i ≠ j, maps to exactly one EdgeID:
//     id = j·(j−1)/2 + i for i < j (lower-triangular, row-major).
//   - The map is a total bijection onto [0, N·(N−1)/2); Edge(i, j) == Edge(j, i).
//   - EdgeID.Nodes always returns the pair ordered as (min, max).
//   - Self-loops are never encoded: Edge(i, i) returns ErrSelfLoop.
//
// The ascending EdgeID order, (0,1), (0,2), (1,2), (0,3), (1,3), (2,3), …, is the
// canonical enumeration order of edges. Solvers use it as their deterministic
// tie-break.
//
// Constructors:
//
//   - New(n, cost)      : cost callback for every i < j.
//   - FromMatrix(rows)  : dense square matrix, validated for symmetry.
//   - Euclidean(points) : TSPLIB EUC_2D (nearest integer) distances.
//   - CeilEuclidean(pts): TSPLIB CEIL_2D (ceiling) distances.
//
// An *Instance is read-only after construction and safe for concurrent use.
package instance
