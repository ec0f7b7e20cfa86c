package bnb

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/hkbb/heldkarp"
)

var (
	// ErrContradiction reports a branching request that reverses an earlier
	// decision (requiring a forbidden edge or forbidding a required one).
	ErrContradiction = errors.New("bnb: contradictory edge constraint")

	// ErrEdgeOutOfRange reports an edge id outside the instance.
	ErrEdgeOutOfRange = errors.New("bnb: edge out of range")

	// ErrNodeLimit is returned with a partial Result when Options.NodeLimit is reached.
	ErrNodeLimit = errors.New("bnb: node limit reached")

	// ErrNoTour means the search ended without any feasible tour.
	ErrNoTour = errors.New("bnb: no tour found")

	// ErrNoBranch means a non-tour witness offered no free edge to branch on.
	ErrNoBranch = errors.New("bnb: no branching edge")

	// ErrInvalidOptions reports negative limits or worker counts.
	ErrInvalidOptions = errors.New("bnb: invalid options")
)

// Options configures Solve. The zero value is a valid single-threaded,
// unlimited search with a discarded log.
type Options struct {
	// HeldKarp tunes the bound computation at every node. Its Trace hook is
	// called from several goroutines when Workers > 1.
	HeldKarp heldkarp.Config

	// NodeLimit caps the number of nodes popped from the frontier (0 = no cap).
	NodeLimit int

	// Workers > 1 bounds sibling children concurrently.
	Workers int

	// SeedTour starts the search with a nearest-neighbour + 2-opt incumbent
	// instead of an infinite one.
	SeedTour bool

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger

	// Observer receives one Event per node outcome. Nil disables events.
	Observer Observer
}

func (o Options) validate() error {
	if o.NodeLimit < 0 || o.Workers < 0 {
		return ErrInvalidOptions
	}

	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is a permutation of all nodes starting at 0, with Tour[1] < Tour[N−1].
	Tour []int
	// Length is the closed-cycle cost of Tour.
	Length int64
	// RootBound is the Held–Karp bound of the unconstrained root.
	RootBound int64
	// Optimal is true when the frontier was exhausted.
	Optimal bool
	// Stats counts node outcomes.
	Stats Stats
}

// Stats counts search events.
type Stats struct {
	Evaluated  int // nodes whose bound was computed (root included)
	Infeasible int // children without any 1-tree
	Pruned     int // nodes discarded because bound ≥ incumbent
	Accepted   int // nodes whose witness was a tour
	Expanded   int // nodes split into children
	Popped     int // frontier pops
	MaxDepth   int
	MaxQueue   int
}

// EventKind classifies an Event.
type EventKind uint8

const (
	// EventEvaluated: a node's bound was computed.
	EventEvaluated EventKind = iota
	// EventInfeasible: a child had no 1-tree and was dropped.
	EventInfeasible
	// EventPruned: a node's bound could not beat the incumbent.
	EventPruned
	// EventAccepted: a node's witness was a tour.
	EventAccepted
	// EventExpanded: a node was split into children.
	EventExpanded
	// EventIncumbent: the incumbent improved.
	EventIncumbent
)

// String returns the lower-case event name used as a metrics label.
func (k EventKind) String() string {
	switch k {
	case EventEvaluated:
		return "evaluated"
	case EventInfeasible:
		return "infeasible"
	case EventPruned:
		return "pruned"
	case EventAccepted:
		return "accepted"
	case EventExpanded:
		return "expanded"
	case EventIncumbent:
		return "incumbent"
	default:
		return "unknown"
	}
}

// Event describes one node outcome.
type Event struct {
	Kind     EventKind
	Depth    int
	Bound    int64 // node bound, or the new incumbent length for EventIncumbent
	Frontier int   // frontier size after the event
}

// Observer consumes search events. Calls come from the search goroutine only.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) { f(ev) }
