package bnb

import (
	"context"
	"errors"
	"log/slog"
	"math"

	pq "github.com/emirpasic/gods/queues/priorityqueue"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hkbb/instance"
	"github.com/katalvlaran/hkbb/onetree"
)

// byBoundThenSeq orders the frontier: lowest bound first, then creation order.
func byBoundThenSeq(a, b interface{}) int {
	x, y := a.(*Node), b.(*Node)
	switch {
	case x.bound < y.bound:
		return -1
	case x.bound > y.bound:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}

// searcher holds the state of one Solve call. Only the search goroutine
// touches it.
type searcher struct {
	in    *instance.Instance
	opts  Options
	log   *slog.Logger
	queue *pq.Queue
	seq   uint64

	bestTour []int
	bestLen  int64
	stats    Stats
}

// Solve finds a minimum-length tour of in by best-first branch-and-bound.
//
// Contract:
//   - On a nil error Result.Optimal is true and Result.Tour is optimal.
//   - With ErrNodeLimit or ctx.Err() the Result carries the best tour found so
//     far (possibly none) and Optimal false.
//   - The result is the same for every Options.Workers value.
//
// Errors: ErrInvalidOptions, ErrNodeLimit, ErrNoTour, context errors, and
// ErrContradiction / ErrNoBranch, which indicate an internal inconsistency.
func Solve(ctx context.Context, in *instance.Instance, opts Options) (Result, error) {
	if in == nil {
		return Result{}, instance.ErrTooFewNodes
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	s := &searcher{
		in:      in,
		opts:    opts,
		log:     opts.logger(),
		queue:   pq.NewWith(byBoundThenSeq),
		bestLen: math.MaxInt64,
	}
	if opts.SeedTour {
		tour, length := InitialTour(in)
		s.improve(tour, length, 0)
		s.log.Info("seed tour", slog.Int64("length", length))
	}

	root, err := NewRoot(in, opts.HeldKarp)
	if err != nil {
		return Result{}, err
	}
	s.evaluated(root)
	s.log.Info("root bound",
		slog.Int("n", in.Size()),
		slog.Int64("bound", root.bound),
		slog.Bool("tour", root.TwoRegular()))
	s.push(root)

	err = s.run(ctx)
	res := s.result(root.bound, err == nil)
	s.log.Info("search finished",
		slog.Bool("optimal", res.Optimal),
		slog.Int64("length", res.Length),
		slog.Int64("root_bound", res.RootBound),
		slog.Int("popped", s.stats.Popped),
		slog.Int("evaluated", s.stats.Evaluated),
		slog.Int("max_depth", s.stats.MaxDepth))
	if err != nil {
		return res, err
	}
	if res.Tour == nil {
		return res, ErrNoTour
	}

	return res, nil
}

func (s *searcher) run(ctx context.Context) error {
	var (
		v        interface{}
		nd       *Node
		children []*Node
		err      error
	)
	for !s.queue.Empty() {
		if err = ctx.Err(); err != nil {
			return err
		}
		if s.opts.NodeLimit > 0 && s.stats.Popped >= s.opts.NodeLimit {
			return ErrNodeLimit
		}
		v, _ = s.queue.Dequeue()
		nd = v.(*Node)
		s.stats.Popped++

		if nd.bound >= s.bestLen {
			s.pruned(nd)
			continue
		}
		if nd.TwoRegular() {
			if err = s.accept(nd); err != nil {
				return err
			}
			continue
		}

		if children, err = s.expand(nd); err != nil {
			return err
		}
		s.stats.Expanded++
		s.emit(EventExpanded, nd.depth, nd.bound)
		for _, c := range children {
			if c.bound >= s.bestLen {
				s.pruned(c)
				continue
			}
			s.push(c)
		}
	}

	return nil
}

// expand builds the children of nd in fixed order, dropping infeasible ones.
func (s *searcher) expand(nd *Node) ([]*Node, error) {
	pivot, e1, e2, ok := nd.BranchEdges()
	if !ok {
		return nil, ErrNoBranch
	}
	builds := []func() (*Node, error){
		func() (*Node, error) { return nd.ForbidOne(e1) },
		func() (*Node, error) { return nd.RequireForbid(e1, e2) },
	}
	if nd.reqDeg[pivot] == 0 {
		builds = append(builds, func() (*Node, error) { return nd.RequireBoth(e1, e2) })
	}

	var (
		nodes = make([]*Node, len(builds))
		errs  = make([]error, len(builds))
	)
	if s.opts.Workers > 1 {
		g := new(errgroup.Group)
		g.SetLimit(s.opts.Workers)
		for i, build := range builds {
			i, build := i, build
			g.Go(func() error {
				nodes[i], errs[i] = build()
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, build := range builds {
			nodes[i], errs[i] = build()
		}
	}

	out := nodes[:0]
	for i, err := range errs {
		switch {
		case err == nil:
			s.evaluated(nodes[i])
			out = append(out, nodes[i])
		case errors.Is(err, onetree.ErrInfeasible):
			s.stats.Infeasible++
			s.emit(EventInfeasible, nd.depth+1, 0)
		default:
			return nil, err
		}
	}

	return out, nil
}

func (s *searcher) accept(nd *Node) error {
	tour, err := nd.tree.Tour()
	if err != nil {
		return err
	}
	length, err := s.in.TourLength(tour)
	if err != nil {
		return err
	}
	s.stats.Accepted++
	s.emit(EventAccepted, nd.depth, nd.bound)
	s.improve(tour, length, nd.depth)

	return nil
}

// improve replaces the incumbent when length beats it.
func (s *searcher) improve(tour []int, length int64, depth int) {
	if length >= s.bestLen {
		return
	}
	s.bestTour, s.bestLen = tour, length
	s.emit(EventIncumbent, depth, length)
	s.log.Debug("new incumbent", slog.Int64("length", length), slog.Int("depth", depth))
}

func (s *searcher) push(nd *Node) {
	s.seq++
	nd.seq = s.seq
	s.queue.Enqueue(nd)
	if q := s.queue.Size(); q > s.stats.MaxQueue {
		s.stats.MaxQueue = q
	}
}

func (s *searcher) evaluated(nd *Node) {
	s.stats.Evaluated++
	if nd.depth > s.stats.MaxDepth {
		s.stats.MaxDepth = nd.depth
	}
	s.emit(EventEvaluated, nd.depth, nd.bound)
}

func (s *searcher) pruned(nd *Node) {
	s.stats.Pruned++
	s.emit(EventPruned, nd.depth, nd.bound)
}

func (s *searcher) emit(kind EventKind, depth int, bound int64) {
	if s.opts.Observer == nil {
		return
	}
	s.opts.Observer.Observe(Event{Kind: kind, Depth: depth, Bound: bound, Frontier: s.queue.Size()})
}

func (s *searcher) result(rootBound int64, optimal bool) Result {
	res := Result{RootBound: rootBound, Stats: s.stats}
	if s.bestTour != nil {
		res.Tour = s.bestTour
		res.Length = s.bestLen
		res.Optimal = optimal
	}

	return res
}
