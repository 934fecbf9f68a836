package messages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-stategraph/pkg/messages"
)

func TestBuildPipeline(t *testing.T) {
	t.Parallel()

	pipe, err := messages.BuildPipeline()
	require.NoError(t, err)
	assert.Equal(t, []string{"process", "finalize"}, pipe.Nodes())
}

func TestInvokeEmptyState(t *testing.T) {
	t.Parallel()

	pipe, err := messages.BuildPipeline()
	require.NoError(t, err)

	final, err := pipe.Invoke(context.Background(), messages.State{Messages: []messages.Message{}})
	require.NoError(t, err)

	expected := messages.State{Messages: []messages.Message{
		{Content: "Processed message", Status: messages.StatusProcessed},
		{Content: "Finalized message", Status: messages.StatusFinalized},
	}}
	assert.Equal(t, expected, final)
}

func TestInvokeSeededState(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		seed []messages.Message
	}{
		"one record": {seed: []messages.Message{
			{Content: "seed", Status: "seed"},
		}},
		"three records": {seed: []messages.Message{
			{Content: "one", Status: "seed"},
			{Content: "two", Status: "seed"},
			{Content: "three", Status: "seed"},
		}},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pipe, err := messages.BuildPipeline()
			require.NoError(t, err)

			seed := append([]messages.Message{}, tc.seed...)
			final, err := pipe.Invoke(context.Background(), messages.State{Messages: seed})
			require.NoError(t, err)

			require.Len(t, final.Messages, len(tc.seed)+2)
			// Seeded records are untouched, in their original order.
			assert.Equal(t, tc.seed, final.Messages[:len(tc.seed)])
			assert.Equal(t, messages.Message{
				Content: "Processed message",
				Status:  messages.StatusProcessed,
			}, final.Messages[len(tc.seed)])
			assert.Equal(t, messages.Message{
				Content: "Finalized message",
				Status:  messages.StatusFinalized,
			}, final.Messages[len(tc.seed)+1])
		})
	}
}

func TestProcessedPrecedesFinalized(t *testing.T) {
	t.Parallel()

	pipe, err := messages.BuildPipeline()
	require.NoError(t, err)

	final, err := pipe.Invoke(context.Background(), messages.State{})
	require.NoError(t, err)

	processedIdx, finalizedIdx := -1, -1
	for i, msg := range final.Messages {
		switch msg.Status {
		case messages.StatusProcessed:
			processedIdx = i
		case messages.StatusFinalized:
			finalizedIdx = i
		}
	}
	require.NotEqual(t, -1, processedIdx)
	require.NotEqual(t, -1, finalizedIdx)
	assert.Less(t, processedIdx, finalizedIdx)
}

func TestNodesAppendIdenticalRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	first, err := messages.Process(ctx, messages.State{})
	require.NoError(t, err)
	second, err := messages.Process(ctx, messages.State{Messages: []messages.Message{
		{Content: "irrelevant", Status: "seed"},
	}})
	require.NoError(t, err)

	// The appended record never depends on the incoming state.
	assert.Equal(t, first.Messages[len(first.Messages)-1], second.Messages[len(second.Messages)-1])

	firstFinal, err := messages.Finalize(ctx, messages.State{})
	require.NoError(t, err)
	secondFinal, err := messages.Finalize(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, firstFinal.Messages[len(firstFinal.Messages)-1], secondFinal.Messages[len(secondFinal.Messages)-1])
}

func TestInvokeTwice(t *testing.T) {
	t.Parallel()

	pipe, err := messages.BuildPipeline()
	require.NoError(t, err)

	first, err := pipe.Invoke(context.Background(), messages.State{})
	require.NoError(t, err)
	second, err := pipe.Invoke(context.Background(), messages.State{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second.Messages, 2)
}
