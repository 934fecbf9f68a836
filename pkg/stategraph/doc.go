// Package stategraph provides a typed state graph for sequential workflows.
//
// A graph is built from named nodes, each a function that receives the current
// state and returns the next one. Directed edges connect the nodes, one node is
// designated as the entry point and one as the finish point, and compiling the
// graph produces a runnable value that can be invoked with an initial state.
//
// Execution is a synchronous walk: the entry node runs first, then the single
// outgoing edge of each node is followed until the finish node completes, at
// which point the accumulated state is returned to the caller. The walk stops
// on the first error, wrapped with the name of the node that produced it.
//
// The topology is held in a directed acyclic graph, so wiring mistakes such as
// edges to unregistered nodes or edges that would introduce a cycle are
// rejected when they are declared rather than at run time. Observability is
// layered on through options: the drawer subpackage renders the compiled graph
// to a DOT/SVG file and the measure subpackage records per-node durations.
package stategraph
