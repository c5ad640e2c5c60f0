package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("parallelism=4, randomness = 0.5,verbose,name=a=b")
	assert.Equal(t, Params{"parallelism": "4", "randomness": "0.5", "verbose": "", "name": "a=b"}, params)
	assert.Equal(t, []string{"name", "parallelism", "randomness", "verbose"}, params.Keys())
	assert.Empty(t, NewFromConfigString(""))
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("parallelism=4,randomness=0.5,verbose,cache=false,bad=x")

	parallelism, err := PopParamOr(params, "parallelism", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, parallelism)

	randomness, err := PopParamOr(params, "randomness", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), randomness)

	verbose, err := PopParamOr(params, "verbose", false)
	require.NoError(t, err)
	assert.True(t, verbose)

	useCache, err := PopParamOr(params, "cache", true)
	require.NoError(t, err)
	assert.False(t, useCache)

	missing, err := PopParamOr(params, "max_move_randomness", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	_, err = PopParamOr(params, "bad", 1)
	assert.Error(t, err)
	_, err = GetParamOr(params, "bad", true)
	assert.Error(t, err)
	name, err := GetParamOr(params, "bad", "")
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	// "bad" failed to parse, so it was not popped.
	err = params.CheckAllUsed()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
	delete(params, "bad")
	assert.NoError(t, params.CheckAllUsed())
}
