package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/ladder"
)

func TestVerify(t *testing.T) {
	d := ladder.NewDictionary("cat", "cot", "cog", "dog")
	checks := []ladder.Check{
		{Begin: "cat", End: "dog", Want: 4},
		{Begin: "cat", End: "cog", Want: 2}, // wrong on purpose, real answer is 3
		{Begin: "cat", End: "bird", Want: 0},
	}

	res := ladder.Verify(d, checks)
	require.Len(t, res, 3)
	assert.True(t, res[0].Passed)
	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, res[0].Got)
	assert.False(t, res[1].Passed)
	assert.Len(t, res[1].Got, 3)
	assert.True(t, res[2].Passed)
	assert.False(t, ladder.AllPassed(res))
	assert.True(t, ladder.AllPassed(res[:1]))
}

func TestDefaultChecks(t *testing.T) {
	require.Len(t, ladder.DefaultChecks, 6)
	for _, c := range ladder.DefaultChecks {
		assert.NotEqual(t, c.Begin, c.End)
		assert.Positive(t, c.Want)
	}
}
