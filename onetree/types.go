package onetree

import (
	"errors"

	"github.com/katalvlaran/hkbb/instance"
)

var (
	// ErrInfeasible reports a constraint set that admits no 1-tree.
	ErrInfeasible = errors.New("onetree: no 1-tree satisfies the constraints")

	// ErrNotTour is returned by Tour when the tree is not a Hamiltonian cycle.
	ErrNotTour = errors.New("onetree: tree is not a Hamiltonian cycle")

	// ErrSizeMismatch reports a tree or multiplier vector sized for another instance.
	ErrSizeMismatch = errors.New("onetree: size does not match the instance")

	// ErrInvalid is returned by Validate for a structure that is not a complete 1-tree.
	ErrInvalid = errors.New("onetree: not a complete 1-tree")
)

// EdgeState is the branching status of one edge.
type EdgeState uint8

const (
	// Free edges may or may not be used.
	Free EdgeState = iota
	// Required edges must appear in every tour of the subproblem.
	Required
	// Forbidden edges may not appear in any tour of the subproblem.
	Forbidden
)

// String returns the lower-case state name.
func (s EdgeState) String() string {
	switch s {
	case Free:
		return "free"
	case Required:
		return "required"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Constraints exposes per-edge states to the builder.
type Constraints interface {
	State(e instance.EdgeID) EdgeState
}

// Unconstrained is a Constraints with every edge free.
type Unconstrained struct{}

// State always returns Free.
func (Unconstrained) State(instance.EdgeID) EdgeState { return Free }
