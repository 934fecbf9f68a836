package model

import "time"

// GraphOption defines the interface for graph options.
type GraphOption interface {
	// New initialises the graph option.
	New() error

	graphNodeOption
	graphWiringOption

	// Finish runs after a walk of the graph completes.
	Finish() error
}

// graphNodeOption defines the hooks fired for individual nodes.
type graphNodeOption interface {
	// PrepareNode runs when a node is registered.
	PrepareNode(node *NodeInfo) error
	// OnNodeResult runs after a node function returns during a walk.
	// transitionDuration covers the time spent since the previous node
	// completed, computationDuration the node function itself.
	OnNodeResult(parent, node *NodeInfo, transitionDuration, computationDuration time.Duration) error
}

// graphWiringOption defines the hooks fired as the topology is declared.
type graphWiringOption interface {
	// PrepareTransition runs when an edge between two registered nodes is added.
	PrepareTransition(from, to *NodeInfo) error
	// PrepareEntry runs when a node is designated as the entry point.
	PrepareEntry(node *NodeInfo) error
	// PrepareFinish runs when a node is designated as the finish point.
	PrepareFinish(node *NodeInfo) error
}
