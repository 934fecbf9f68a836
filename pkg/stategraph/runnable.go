package stategraph

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-stategraph/pkg/stategraph/model"
)

// Runnable is a compiled state graph.
type Runnable[S any] struct {
	graph *Graph[S]
}

// Invoke walks the graph with the given initial state and returns the state
// produced by the finish node. The walk is sequential: every node receives the
// state returned by its predecessor. The first node error aborts the walk.
func (r *Runnable[S]) Invoke(ctx context.Context, state S) (S, error) {
	if r == nil {
		var zero S
		return zero, ErrGraphMustBeSet
	}

	parent := model.StartNode
	current := r.graph.entry
	lastDone := time.Now()

	// The topology is acyclic, so a walk can never visit more nodes than
	// were registered.
	for visited := 0; visited < len(r.graph.nodes); visited++ {
		select {
		case <-ctx.Done():
			return state, errors.Wrapf(ctx.Err(), "node %s", current)
		default:
		}

		nd := r.graph.nodes[current]
		transition := time.Since(lastDone)

		startFn := time.Now()
		out, err := nd.fn(ctx, state)
		if err != nil {
			return state, errors.Wrapf(err, "node %s", current)
		}
		state = out
		endFn := time.Since(startFn)
		lastDone = time.Now()

		for _, opt := range r.graph.opts {
			err := opt.OnNodeResult(parent, nd.details, transition, endFn)
			if err != nil {
				return state, errors.Wrapf(err, "unable to record result of node %s", current)
			}
		}

		if current == r.graph.finish {
			return state, r.finishWalk()
		}

		next, err := r.next(current)
		if err != nil {
			return state, err
		}
		parent = nd.details
		current = next
	}

	return state, errors.Wrapf(ErrFinishNotReached, "finish point %s", r.graph.finish)
}

// InvokeEach walks the graph once per initial state, running at most
// concurrent walks in parallel. Results are positionally aligned with the
// inputs. Each walk is independent; the first failure cancels the rest.
func (r *Runnable[S]) InvokeEach(ctx context.Context, states []S, concurrent int) ([]S, error) {
	if r == nil {
		return nil, ErrGraphMustBeSet
	}
	if concurrent <= 0 {
		concurrent = 1
	}

	results := make([]S, len(states))
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrent)

	for idx := range states {
		localIdx := idx
		errGrp.Go(func() error {
			out, err := r.Invoke(dCtx, states[localIdx])
			if err != nil {
				return errors.Wrapf(err, "state %d", localIdx)
			}
			results[localIdx] = out

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Nodes returns the registered node names in registration order.
func (r *Runnable[S]) Nodes() []string {
	names := make([]string, len(r.graph.order))
	copy(names, r.graph.order)

	return names
}

func (r *Runnable[S]) next(current string) (string, error) {
	targets := r.graph.succ[current]
	switch len(targets) {
	case 0:
		return "", errors.Wrapf(ErrNoTransition, "node %s", current)
	case 1:
		return targets[0], nil
	default:
		return "", errors.Wrapf(ErrAmbiguousTransition, "node %s", current)
	}
}

func (r *Runnable[S]) finishWalk() error {
	for _, opt := range r.graph.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish graph option")
		}
	}

	return nil
}
