// Package model provides the data structures shared between the stategraph package
// and its option subpackages. It defines the node descriptors exchanged with
// lifecycle hooks and the GraphOption interface every option implements.
package model
