package stategraph

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-stategraph/internal/store"
	"github.com/askiada/go-stategraph/pkg/stategraph/model"
)

// Graph is a builder for a state graph. Register nodes with AddNode, wire them
// with AddEdge, designate the entry and finish points and call Compile to
// obtain a Runnable.
type Graph[S any] struct {
	topology graph.Graph[string, string]
	nodes    map[string]*node[S]
	succ     map[string][]string
	order    []string
	entry    string
	finish   string
	opts     []model.GraphOption
}

// New creates a new state graph.
func New[S any](opts ...model.GraphOption) (*Graph[S], error) {
	g := &Graph[S]{
		topology: graph.NewWithStore[string, string](
			graph.StringHash,
			store.NewMemoryStore[string, string](),
			graph.Directed(),
			graph.PreventCycles(),
		),
		nodes: make(map[string]*node[S]),
		succ:  make(map[string][]string),
		opts:  opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply graph option")
		}
	}

	return g, nil
}

// AddNode registers a named node.
func (g *Graph[S]) AddNode(name string, fn NodeFn[S]) error {
	if g == nil {
		return ErrGraphMustBeSet
	}
	if name == "" {
		return ErrNodeMustBeNamed
	}
	if fn == nil {
		return ErrNodeFnMustBeSet
	}

	err := g.topology.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add node %s", name)
	}

	nd := &node[S]{
		details: &model.NodeInfo{Name: name},
		fn:      fn,
	}
	g.nodes[name] = nd
	g.order = append(g.order, name)

	for _, opt := range g.opts {
		err := opt.PrepareNode(nd.details)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare node %s", name)
		}
	}

	return nil
}

// AddEdge registers a directed transition between two registered nodes.
// Edges to unknown nodes and edges that would introduce a cycle are rejected.
func (g *Graph[S]) AddEdge(from, to string) error {
	if g == nil {
		return ErrGraphMustBeSet
	}

	err := g.topology.AddEdge(from, to)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", from, to)
	}

	g.succ[from] = append(g.succ[from], to)

	for _, opt := range g.opts {
		err := opt.PrepareTransition(g.nodes[from].details, g.nodes[to].details)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare transition from %s to %s", from, to)
		}
	}

	return nil
}

// SetEntryPoint designates the node executed first when the graph is invoked.
func (g *Graph[S]) SetEntryPoint(name string) error {
	if g == nil {
		return ErrGraphMustBeSet
	}

	nd, ok := g.nodes[name]
	if !ok {
		return errors.Wrapf(ErrNodeNotFound, "entry point %s", name)
	}
	g.entry = name

	for _, opt := range g.opts {
		err := opt.PrepareEntry(nd.details)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare entry point %s", name)
		}
	}

	return nil
}

// SetFinishPoint designates the node whose completion ends a walk.
func (g *Graph[S]) SetFinishPoint(name string) error {
	if g == nil {
		return ErrGraphMustBeSet
	}

	nd, ok := g.nodes[name]
	if !ok {
		return errors.Wrapf(ErrNodeNotFound, "finish point %s", name)
	}
	g.finish = name

	for _, opt := range g.opts {
		err := opt.PrepareFinish(nd.details)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare finish point %s", name)
		}
	}

	return nil
}

// Compile validates the declared structure and returns the executable graph.
func (g *Graph[S]) Compile() (*Runnable[S], error) {
	if g == nil {
		return nil, ErrGraphMustBeSet
	}
	if g.entry == "" {
		return nil, ErrEntryNotSet
	}
	if g.finish == "" {
		return nil, ErrFinishNotSet
	}

	return &Runnable[S]{graph: g}, nil
}
