package onetree

// Tour walks the Hamiltonian cycle of a two-regular complete 1-tree starting
// at node 0 and returns the visiting order (length N, no closing repeat) in
// canonical orientation: tour[1] < tour[N−1].
//
// Errors: ErrNotTour when the tree is not two-regular or does not form a
// single cycle through all nodes.
//
// Complexity: O(N).
func (t *OneTree) Tour() ([]int, error) {
	var n = len(t.deg)
	if n < 3 || len(t.edges) != n || !t.TwoRegular() {
		return nil, ErrNotTour
	}

	// Two neighbours per node; -1 marks an empty slot.
	adj := make([][2]int, n)
	var v, i, j int
	for v = range adj {
		adj[v] = [2]int{-1, -1}
	}
	link := func(a, b int) {
		if adj[a][0] == -1 {
			adj[a][0] = b
		} else {
			adj[a][1] = b
		}
	}
	for _, e := range t.edges {
		i, j = e.Nodes()
		link(i, j)
		link(j, i)
	}

	var (
		tour    = make([]int, 0, n)
		visited = make([]bool, n)
		prev    = -1
		cur     = 0
		next    int
	)
	for len(tour) < n {
		if visited[cur] {
			return nil, ErrNotTour // closed a sub-cycle early
		}
		visited[cur] = true
		tour = append(tour, cur)
		next = adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		prev, cur = cur, next
	}
	if cur != 0 {
		return nil, ErrNotTour
	}
	CanonicalizeOrientation(tour)

	return tour, nil
}

// CanonicalizeOrientation fixes the direction of an open tour whose first
// element is the start: if tour[1] > tour[len−1] the segment tour[1:] is
// reversed in place. Both directions of the same cycle map to one sequence.
//
// Complexity: O(N) time, O(1) space.
func CanonicalizeOrientation(tour []int) {
	var n = len(tour)
	if n < 3 || tour[1] < tour[n-1] {
		return
	}
	var i, k = 1, n - 1
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
