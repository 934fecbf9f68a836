package stategraph

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	tcs := map[string]struct {
		targets     []string
		want        string
		expectedErr error
	}{
		"single":    {targets: []string{"b"}, want: "b"},
		"none":      {targets: nil, expectedErr: ErrNoTransition},
		"ambiguous": {targets: []string{"b", "c"}, expectedErr: ErrAmbiguousTransition},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := &Runnable[int]{graph: &Graph[int]{
				succ: map[string][]string{"a": tc.targets},
			}}
			got, err := r.next("a")
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvokeCancelledContext(t *testing.T) {
	g, err := New[int]()
	require.NoError(t, err)
	require.NoError(t, g.AddNode("only", func(ctx context.Context, state int) (int, error) {
		return state + 1, nil
	}))
	require.NoError(t, g.SetEntryPoint("only"))
	require.NoError(t, g.SetFinishPoint("only"))

	run, err := g.Compile()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = run.Invoke(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvokeNodeErrorKeepsState(t *testing.T) {
	boom := errors.New("boom")

	g, err := New[[]string]()
	require.NoError(t, err)
	require.NoError(t, g.AddNode("first", func(ctx context.Context, state []string) ([]string, error) {
		return append(state, "first"), nil
	}))
	require.NoError(t, g.AddNode("second", func(ctx context.Context, state []string) ([]string, error) {
		return nil, boom
	}))
	require.NoError(t, g.AddEdge("first", "second"))
	require.NoError(t, g.SetEntryPoint("first"))
	require.NoError(t, g.SetFinishPoint("second"))

	run, err := g.Compile()
	require.NoError(t, err)

	got, err := run.Invoke(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "node second")
	// The state produced before the failure is still returned.
	assert.Equal(t, []string{"first"}, got)
}
