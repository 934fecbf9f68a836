package stategraph

import "github.com/pkg/errors"

var (
	ErrGraphMustBeSet      = errors.New("graph must be set")
	ErrNodeMustBeNamed     = errors.New("node name must not be empty")
	ErrNodeFnMustBeSet     = errors.New("node function must be set")
	ErrNodeNotFound        = errors.New("node is not registered")
	ErrEntryNotSet         = errors.New("entry point must be set before compiling")
	ErrFinishNotSet        = errors.New("finish point must be set before compiling")
	ErrNoTransition        = errors.New("node has no outgoing transition")
	ErrAmbiguousTransition = errors.New("node has more than one outgoing transition")
	ErrFinishNotReached    = errors.New("walk ended without reaching the finish node")
)
