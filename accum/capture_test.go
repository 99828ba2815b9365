package accum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/accum"
)

func TestCapture_BeginEnd(t *testing.T) {
	var c accum.Capture
	chunk := []byte(`"hello"`)
	c.Begin(1)
	span := c.End(chunk, 6)
	assert.Equal(t, "hello", string(span))
	assert.False(t, c.Active())
}

func TestCapture_SuspendResume(t *testing.T) {
	var c accum.Capture
	chunk1 := []byte(`"hel`)
	c.Begin(1)
	partial, ok := c.Suspend(chunk1)
	require.True(t, ok)
	assert.Equal(t, "hel", string(partial))
	assert.Equal(t, accum.CaptureSuspended, c.State())

	chunk2 := []byte(`lo"`)
	c.Resume(0)
	span := c.End(chunk2, 2)
	assert.Equal(t, "lo", string(span))
}

func TestCapture_EndWithoutBeginPanics(t *testing.T) {
	var c accum.Capture
	assert.Panics(t, func() { c.End([]byte("x"), 1) })
}

func TestCapture_SuspendWithNoActiveCaptureIsNoop(t *testing.T) {
	var c accum.Capture
	_, ok := c.Suspend([]byte("x"))
	assert.False(t, ok)
}
