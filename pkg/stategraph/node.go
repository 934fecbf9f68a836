package stategraph

import (
	"context"

	"github.com/askiada/go-stategraph/pkg/stategraph/model"
)

// NodeFn transforms a state value. It receives the state produced by the
// previous node and returns the state handed to the next one.
type NodeFn[S any] func(ctx context.Context, state S) (S, error)

type node[S any] struct {
	details *model.NodeInfo
	fn      NodeFn[S]
}
