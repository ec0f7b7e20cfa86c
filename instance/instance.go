package instance

import "math"

// Instance is an immutable symmetric cost matrix over N nodes.
// Costs are stored once per unordered pair, indexed by EdgeID.
type Instance struct {
	n int
	w []int64
}

// New builds an instance of dimension n, querying cost(i, j) once for every
// pair i < j.
//
// Errors:
//   - ErrTooFewNodes when n < MinNodes.
//   - ErrNegativeWeight when cost returns a negative value.
//
// Complexity: O(n²).
func New(n int, cost func(i, j int) int64) (*Instance, error) {
	if n < MinNodes {
		return nil, ErrTooFewNodes
	}
	var (
		w    = make([]int64, NumEdges(n))
		i, j int
		c    int64
	)
	for j = 1; j < n; j++ {
		for i = 0; i < j; i++ {
			c = cost(i, j)
			if c < 0 {
				return nil, ErrNegativeWeight
			}
			w[j*(j-1)/2+i] = c // same formula as Edge(i, j) for i < j
		}
	}

	return &Instance{n: n, w: w}, nil
}

// FromMatrix builds an instance from a dense square matrix.
// The matrix must be symmetric with a zero diagonal and non-negative entries.
//
// Complexity: O(n²).
func FromMatrix(rows [][]int64) (*Instance, error) {
	var n = len(rows)
	if n < MinNodes {
		return nil, ErrTooFewNodes
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
	}
	for i = 0; i < n; i++ {
		if rows[i][i] != 0 {
			return nil, ErrNonZeroDiagonal
		}
		for j = i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, ErrAsymmetric
			}
		}
	}

	return New(n, func(i, j int) int64 { return rows[i][j] })
}

// Euclidean builds an instance with TSPLIB EUC_2D costs: the Euclidean
// distance rounded to the nearest integer.
func Euclidean(points []Point) (*Instance, error) {
	return New(len(points), func(i, j int) int64 {
		return int64(math.Round(dist(points[i], points[j])))
	})
}

// CeilEuclidean builds an instance with TSPLIB CEIL_2D costs: the Euclidean
// distance rounded up.
func CeilEuclidean(points []Point) (*Instance, error) {
	return New(len(points), func(i, j int) int64 {
		return int64(math.Ceil(dist(points[i], points[j])))
	})
}

func dist(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Size returns the number of nodes N.
func (in *Instance) Size() int { return in.n }

// NumEdges returns N·(N−1)/2.
func (in *Instance) NumEdges() int { return len(in.w) }

// Weight returns the cost of edge e. It panics if e is out of range, like a
// slice index would.
func (in *Instance) Weight(e EdgeID) int64 { return in.w[e] }

// Weights returns a copy of all costs indexed by EdgeID.
func (in *Instance) Weights() []int64 {
	out := make([]int64, len(in.w))
	copy(out, in.w)

	return out
}

// Cost returns c(i, j); the diagonal is zero.
//
// Errors: ErrNodeOutOfRange for indices outside [0, N).
func (in *Instance) Cost(i, j int) (int64, error) {
	if i < 0 || j < 0 || i >= in.n || j >= in.n {
		return 0, ErrNodeOutOfRange
	}
	if i == j {
		return 0, nil
	}

	return in.w[MustEdge(i, j)], nil
}

// Contains reports whether both endpoints of e are nodes of this instance.
func (in *Instance) Contains(e EdgeID) bool {
	return e >= 0 && int(e) < len(in.w)
}

// TourLength sums the closed-cycle cost of a permutation of all N nodes.
//
// Errors: ErrNodeOutOfRange for a malformed permutation (wrong length,
// out-of-range or repeated node).
//
// Complexity: O(n).
func (in *Instance) TourLength(tour []int) (int64, error) {
	if len(tour) != in.n {
		return 0, ErrNodeOutOfRange
	}
	var (
		seen  = make([]bool, in.n)
		total int64
		k, v  int
	)
	for _, v = range tour {
		if v < 0 || v >= in.n || seen[v] {
			return 0, ErrNodeOutOfRange
		}
		seen[v] = true
	}
	for k, v = range tour {
		total += in.w[MustEdge(v, tour[(k+1)%in.n])]
	}

	return total, nil
}
