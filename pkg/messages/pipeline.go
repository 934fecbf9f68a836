package messages

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-stategraph/pkg/stategraph"
	"github.com/askiada/go-stategraph/pkg/stategraph/model"
)

// Node names of the workflow.
const (
	NodeProcess  = "process"
	NodeFinalize = "finalize"
)

// Process appends the processed record to the state.
func Process(ctx context.Context, state State) (State, error) {
	return state.Append(Message{
		Content: "Processed message",
		Status:  StatusProcessed,
	}), nil
}

// Finalize appends the finalized record to the state. It runs after Process
// and does not inspect the records already present.
func Finalize(ctx context.Context, state State) (State, error) {
	return state.Append(Message{
		Content: "Finalized message",
		Status:  StatusFinalized,
	}), nil
}

// BuildPipeline wires the process and finalize nodes into a compiled graph.
// The entry point is the process node and the walk ends when the finalize
// node completes.
func BuildPipeline(opts ...model.GraphOption) (*stategraph.Runnable[State], error) {
	g, err := stategraph.New[State](opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create graph")
	}

	err = g.AddNode(NodeProcess, Process)
	if err != nil {
		return nil, errors.Wrap(err, "unable to add process node")
	}

	err = g.AddNode(NodeFinalize, Finalize)
	if err != nil {
		return nil, errors.Wrap(err, "unable to add finalize node")
	}

	err = g.AddEdge(NodeProcess, NodeFinalize)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect process to finalize")
	}

	err = g.SetEntryPoint(NodeProcess)
	if err != nil {
		return nil, errors.Wrap(err, "unable to set entry point")
	}

	err = g.SetFinishPoint(NodeFinalize)
	if err != nil {
		return nil, errors.Wrap(err, "unable to set finish point")
	}

	return g.Compile()
}
