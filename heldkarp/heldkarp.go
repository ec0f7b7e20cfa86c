package heldkarp

import (
	"math"

	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/onetree"
)

// boundEps absorbs floating-point noise before the ceiling so that a bound
// equal to an integer tour cost is never rounded past it.
const boundEps = 1e-6

// Momentum weights of the smoothed subgradient.
const (
	currentWeight  = 0.6
	previousWeight = 0.4
)

// Config tunes the ascent. The zero value uses the standard schedule.
type Config struct {
	// RootIterations overrides the root iteration budget when > 0.
	RootIterations int
	// ChildIterations overrides the non-root iteration budget when > 0.
	ChildIterations int
	// Trace, if set, is called after every iteration with the iteration index,
	// the bound of that iteration and the best bound so far.
	Trace func(iter int, value, best float64)
}

// Iterations returns the standard iteration budget for a subproblem of size n.
func Iterations(n int, root bool) int {
	if root {
		return int(math.Ceil(float64(n*n)/50)) + n + 15
	}

	return int(math.Ceil(float64(n)/4)) + 5
}

func (c Config) iterations(n int, root bool) int {
	switch {
	case root && c.RootIterations > 0:
		return c.RootIterations
	case !root && c.ChildIterations > 0:
		return c.ChildIterations
	default:
		return Iterations(n, root)
	}
}

// Engine owns the builder and work vectors for one instance. It is not safe
// for concurrent use; use one Engine per goroutine.
type Engine struct {
	b       *onetree.Builder
	n       int
	tree    *onetree.OneTree
	cur     []float64
	bestLam []float64
	prevDeg []int
}

// NewEngine prepares an engine for in.
func NewEngine(in *instance.Instance) *Engine {
	n := in.Size()

	return &Engine{
		b:       onetree.NewBuilder(in),
		n:       n,
		tree:    onetree.New(n),
		cur:     make([]float64, n),
		bestLam: make([]float64, n),
		prevDeg: make([]int, n),
	}
}

// Instance returns the instance the engine was prepared for.
func (e *Engine) Instance() *instance.Instance { return e.b.Instance() }

// Bound runs the subgradient ascent starting from lambda under cons.
//
// On success out holds the 1-tree of the best iteration, lambda is overwritten
// with the multipliers that produced it, and the ceiling of the best bound is
// returned. root selects the iteration budget and the initial step rule.
//
// Errors:
//   - onetree.ErrInfeasible when cons admits no 1-tree (lambda and out untouched).
//   - onetree.ErrSizeMismatch for vectors sized for another instance.
//
// Complexity: O(N · E log E) for N iterations and E = n·(n−1)/2 edges.
func (e *Engine) Bound(lambda []float64, out *onetree.OneTree, cons onetree.Constraints, root bool, cfg Config) (int64, error) {
	if len(lambda) != e.n || out.Size() != e.n {
		return 0, onetree.ErrSizeMismatch
	}
	var (
		in     = e.b.Instance()
		iters  = cfg.iterations(e.n, root)
		best   = math.Inf(-1)
		step   float64 // t
		del    float64 // Δ
		deldel float64 // ΔΔ
		value  float64
		two    bool
		k, v   int
		d      int
		err    error
	)
	copy(e.cur, lambda)

	for k = 0; k < iters; k++ {
		if err = e.b.Build(e.cur, cons, e.tree); err != nil {
			return 0, err
		}

		weight := e.tree.Weight(in)
		if k == 0 {
			step = initialStep(lambda, weight, e.n, root)
			del = 1.5 * step / float64(iters)
			if iters > 1 {
				deldel = step / float64(iters*iters-iters)
			}
		}

		// L(λ) = W(T) + Σ λv·(deg(v) − 2).
		value = float64(weight)
		for v = 0; v < e.n; v++ {
			value += e.cur[v] * float64(e.tree.Degree(v)-2)
		}
		two = e.tree.TwoRegular()
		if value > best || (two && value >= best-boundEps) {
			// A tour reaching the best value becomes the witness.
			best = math.Max(best, value)
			copy(e.bestLam, e.cur)
			out.CopyFrom(e.tree)
		}
		if cfg.Trace != nil {
			cfg.Trace(k, value, best)
		}
		if two {
			break // zero subgradient: T(λ) is optimal for this subproblem
		}

		for v = 0; v < e.n; v++ {
			d = e.tree.Degree(v) - 2
			if k == 0 {
				e.cur[v] += step * float64(d)
			} else {
				e.cur[v] += step * (currentWeight*float64(d) + previousWeight*float64(e.prevDeg[v]-2))
			}
			e.prevDeg[v] = e.tree.Degree(v)
		}
		step -= del
		del -= deldel
	}
	copy(lambda, e.bestLam)

	return int64(math.Ceil(best - boundEps)), nil
}

// initialStep is W(T₀)/(2n) at the root and mean |λ| otherwise, falling back
// to the root rule when the inherited multipliers are all zero.
func initialStep(lambda []float64, weight int64, n int, root bool) float64 {
	var fromWeight = float64(weight) / float64(2*n)
	if root {
		return fromWeight
	}
	var sum float64
	for _, l := range lambda {
		sum += math.Abs(l)
	}
	if sum == 0 {
		return fromWeight
	}

	return sum / float64(n)
}

// Bound is a one-shot convenience wrapper around NewEngine(in).Bound.
func Bound(in *instance.Instance, lambda []float64, out *onetree.OneTree, cons onetree.Constraints, root bool, cfg Config) (int64, error) {
	return NewEngine(in).Bound(lambda, out, cons, root, cfg)
}
