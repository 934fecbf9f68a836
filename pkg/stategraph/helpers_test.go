package stategraph_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/askiada/go-stategraph/pkg/stategraph"
	"github.com/askiada/go-stategraph/pkg/stategraph/model"
)

// appendNode returns a node function that appends its own name to the state.
func appendNode(name string) stategraph.NodeFn[[]string] {
	return func(ctx context.Context, state []string) ([]string, error) {
		return append(state, name), nil
	}
}

// recordingOption records every lifecycle hook invocation in order.
type recordingOption struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingOption) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingOption) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string{}, r.events...)
}

func (r *recordingOption) New() error {
	r.record("new")

	return nil
}

func (r *recordingOption) PrepareNode(node *model.NodeInfo) error {
	r.record("node " + node.Name)

	return nil
}

func (r *recordingOption) PrepareTransition(from, to *model.NodeInfo) error {
	r.record("transition " + from.Name + " " + to.Name)

	return nil
}

func (r *recordingOption) PrepareEntry(node *model.NodeInfo) error {
	r.record("entry " + node.Name)

	return nil
}

func (r *recordingOption) PrepareFinish(node *model.NodeInfo) error {
	r.record("finish " + node.Name)

	return nil
}

func (r *recordingOption) OnNodeResult(parent, node *model.NodeInfo, transitionDuration, computationDuration time.Duration) error {
	r.record("result " + parent.Name + " " + node.Name)

	return nil
}

func (r *recordingOption) Finish() error {
	r.record("done")

	return nil
}

var _ model.GraphOption = (*recordingOption)(nil)

// buildChain wires the given nodes linearly and compiles the graph.
func buildChain(t *testing.T, names []string, opts ...model.GraphOption) *stategraph.Runnable[[]string] {
	t.Helper()

	g, err := stategraph.New[[]string](opts...)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := g.AddNode(name, appendNode(name)); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i < len(names); i++ {
		if err := g.AddEdge(names[i-1], names[i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.SetEntryPoint(names[0]); err != nil {
		t.Fatal(err)
	}
	if err := g.SetFinishPoint(names[len(names)-1]); err != nil {
		t.Fatal(err)
	}

	run, err := g.Compile()
	if err != nil {
		t.Fatal(err)
	}

	return run
}
