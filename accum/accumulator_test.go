package accum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/accum"
)

func TestAccumulator_AliasesSingleChunk(t *testing.T) {
	var a accum.Accumulator
	require.NoError(t, a.Append([]byte("hello"), true))
	assert.True(t, a.IsAliasing())
	assert.Equal(t, "hello", string(a.Get()))
}

func TestAccumulator_PromotesOnSeam(t *testing.T) {
	var a accum.Accumulator
	require.NoError(t, a.Append([]byte("hel"), true))
	assert.True(t, a.IsAliasing())
	require.NoError(t, a.Append([]byte("lo"), true))
	assert.False(t, a.IsAliasing())
	assert.Equal(t, "hello", string(a.Get()))
}

func TestAccumulator_ClearReusesBuffer(t *testing.T) {
	var a accum.Accumulator
	require.NoError(t, a.Append([]byte("a"), true))
	require.NoError(t, a.Append([]byte("b"), true)) // forces promotion
	a.Clear()
	assert.Equal(t, 0, a.Len())
	require.NoError(t, a.Append([]byte("x"), true))
	assert.Equal(t, "x", string(a.Get()))
}

func TestAccumulator_NoAliasWhenCanAliasFalse(t *testing.T) {
	var a accum.Accumulator
	require.NoError(t, a.Append([]byte("hi"), false))
	assert.False(t, a.IsAliasing())
	assert.Equal(t, "hi", string(a.Get()))
}

func TestAccumulator_GrowsPastFloor(t *testing.T) {
	var a accum.Accumulator
	big := make([]byte, 500)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	require.NoError(t, a.Append(big, false))
	require.NoError(t, a.Append(big, false))
	assert.Equal(t, 1000, a.Len())
}
