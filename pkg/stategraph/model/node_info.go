package model

// NodeInfo describes a registered node. It is the value handed to every
// lifecycle hook so options never touch the node function itself.
type NodeInfo struct {
	Name string
}

// StartNode and EndNode are virtual markers framing a run. They are never
// registered on a graph; options use them to anchor the entry and finish nodes.
var (
	StartNode = &NodeInfo{Name: "start"}
	EndNode   = &NodeInfo{Name: "end"}
)
