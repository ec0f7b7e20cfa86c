package instance

import "errors"

var (
	// ErrSelfLoop is returned when an edge is requested between a node and itself.
	ErrSelfLoop = errors.New("instance: self-loops are not edges")

	// ErrNodeOutOfRange indicates a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("instance: node index out of range")

	// ErrTooFewNodes is returned for instances with fewer than MinNodes points.
	ErrTooFewNodes = errors.New("instance: at least 3 nodes are required")

	// ErrNonSquare indicates a cost matrix whose rows differ in length from its order.
	ErrNonSquare = errors.New("instance: cost matrix is not square")

	// ErrAsymmetric indicates c(i,j) ≠ c(j,i) for some pair.
	ErrAsymmetric = errors.New("instance: cost matrix is not symmetric")

	// ErrNonZeroDiagonal indicates c(i,i) ≠ 0 for some i.
	ErrNonZeroDiagonal = errors.New("instance: cost matrix diagonal must be zero")

	// ErrNegativeWeight indicates a negative edge cost.
	ErrNegativeWeight = errors.New("instance: negative edge cost")
)

// MinNodes is the smallest dimension for which a Hamiltonian cycle on
// distinct edges exists.
const MinNodes = 3

// Point is a planar coordinate as found in a TSPLIB NODE_COORD_SECTION.
type Point struct {
	X, Y float64
}
