package ladder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/ladder"
)

func TestBatch_PreservesOrder(t *testing.T) {
	d := ladder.NewDictionary("cat", "cot", "cog", "dog")
	queries := []ladder.Query{
		{Begin: "cat", End: "dog"},
		{Begin: "dog", End: "cat"},
		{Begin: "cat", End: "cat"},
		{Begin: "cat", End: "emu"},
		{Begin: "cog", End: "dog"},
	}

	for _, workers := range []int{0, 1, 3, 16} {
		got, err := ladder.Batch(context.Background(), d, queries, workers)
		require.NoError(t, err)
		require.Len(t, got, len(queries))
		for i, a := range got {
			assert.Equal(t, queries[i], a.Query)
			assert.Equal(t, ladder.ShortestLadder(queries[i].Begin, queries[i].End, d), a.Ladder)
		}
	}
}

func TestBatch_Errors(t *testing.T) {
	_, err := ladder.Batch(context.Background(), nil, nil, 1)
	require.ErrorIs(t, err, ladder.ErrNilDictionary)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := ladder.NewDictionary("cat", "cot")
	_, err = ladder.Batch(ctx, d, []ladder.Query{{Begin: "cat", End: "cot"}}, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBatch_Empty(t *testing.T) {
	got, err := ladder.Batch(context.Background(), ladder.NewDictionary(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}
