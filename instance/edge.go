package instance

import (
	"fmt"
	"math"
)

// EdgeID is the canonical identifier of an unordered pair of distinct nodes.
type EdgeID int

// Edge returns the canonical id of {i, j}. The result does not depend on the
// argument order. Negative indices yield ErrNodeOutOfRange and i == j yields
// ErrSelfLoop.
//
// Complexity: O(1).
func Edge(i, j int) (EdgeID, error) {
	if i < 0 || j < 0 {
		return 0, ErrNodeOutOfRange
	}
	if i == j {
		return 0, ErrSelfLoop
	}
	if i > j {
		i, j = j, i
	}

	return EdgeID(j*(j-1)/2 + i), nil
}

// MustEdge is like Edge but panics if the pair is invalid. It is meant for
// loops that only ever pair distinct, in-range nodes.
func MustEdge(i, j int) EdgeID {
	e, err := Edge(i, j)
	if err != nil {
		panic(fmt.Sprintf("instance: edge {%d,%d}: %v", i, j, err))
	}

	return e
}

// Nodes decodes e into its endpoints (i, j) with i < j. A negative id has no
// endpoints and decodes to (-1, -1).
//
// Complexity: O(1).
func (e EdgeID) Nodes() (i, j int) {
	if e < 0 {
		return -1, -1
	}
	var id = int(e)
	// Largest j with j·(j−1)/2 ≤ id; the float estimate is corrected both ways.
	j = int((1 + math.Sqrt(float64(1+8*id))) / 2)
	for j*(j-1)/2 > id {
		j--
	}
	for (j+1)*j/2 <= id {
		j++
	}
	i = id - j*(j-1)/2

	return i, j
}

// Has reports whether v is an endpoint of e.
func (e EdgeID) Has(v int) bool {
	if e < 0 {
		return false
	}
	i, j := e.Nodes()

	return i == v || j == v
}

// Other returns the endpoint of e that is not v. The result is undefined when
// v is not an endpoint of e.
func (e EdgeID) Other(v int) int {
	i, j := e.Nodes()
	if i == v {
		return j
	}

	return i
}

// String renders e as "{i,j}".
func (e EdgeID) String() string {
	i, j := e.Nodes()

	return fmt.Sprintf("{%d,%d}", i, j)
}

// NumEdges returns N·(N−1)/2, the number of unordered pairs over n nodes.
func NumEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
