package bnb

import (
	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/onetree"
)

// InitialTour returns a nearest-neighbour tour from node 0 improved by
// deterministic first-improvement 2-opt, and its length. The tour is open
// (no closing repeat) and canonically oriented.
//
// Nearest-neighbour ties go to the smallest node index. 2-opt scans cut pairs
// 1 ≤ i < k ≤ N−1 in order and restarts after every accepted reversal; moves
// are only accepted on a strict decrease, so the loop terminates on integer
// weights.
//
// Complexity: O(N²) construction; O(N²) per 2-opt pass.
func InitialTour(in *instance.Instance) ([]int, int64) {
	var (
		n       = in.Size()
		tour    = make([]int, 1, n)
		visited = make([]bool, n)
		w       = func(i, j int) int64 { return in.Weight(instance.MustEdge(i, j)) }
		cur     int
		v, best int
		bw, x   int64
	)
	visited[0] = true
	for len(tour) < n {
		best = -1
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			x = w(cur, v)
			if best == -1 || x < bw {
				best, bw = v, x
			}
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
	}

	twoOpt(tour, w)
	onetree.CanonicalizeOrientation(tour)

	length, _ := in.TourLength(tour)

	return tour, length
}

// twoOpt improves the closed cycle tour[0..n−1] in place. tour[0] is fixed.
func twoOpt(tour []int, w func(i, j int) int64) {
	var (
		n          = len(tour)
		i, k       int
		a, b, c, d int
		delta      int64
		improved   = true
	)
	for improved {
		improved = false
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = tour[i-1], tour[i], tour[k], tour[(k+1)%n]
				if a == d {
					continue // reversing everything but tour[0] is the same cycle
				}
				delta = w(a, c) + w(b, d) - w(a, b) - w(c, d)
				if delta < 0 {
					reverse(tour, i, k)
					improved = true
					break
				}
			}
		}
	}
}

// reverse reverses tour[i..k] in place.
func reverse(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
