package accum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/accum"
)

func TestMultipart_Accumulate(t *testing.T) {
	var m accum.Multipart
	m.StartAccumulate()
	require.NoError(t, m.Feed([]byte("12"), true))
	require.NoError(t, m.Feed([]byte("3"), true))
	assert.Equal(t, "123", string(m.Bytes()))
	m.End()
	assert.Equal(t, accum.ModeInactive, m.Mode())
}

func TestMultipart_PushEagerly(t *testing.T) {
	var pushed []byte
	var m accum.Multipart
	m.StartPush(func(b []byte) { pushed = append(pushed, b...) })
	require.NoError(t, m.Feed([]byte("hel"), true))
	require.NoError(t, m.Feed([]byte("lo"), true))
	assert.Equal(t, "hello", string(pushed))
	m.End()
}

func TestMultipart_FeedWhileInactivePanics(t *testing.T) {
	var m accum.Multipart
	assert.Panics(t, func() { m.Feed([]byte("x"), true) })
}

func TestMultipart_DoubleStartPanics(t *testing.T) {
	var m accum.Multipart
	m.StartAccumulate()
	assert.Panics(t, func() { m.StartAccumulate() })
}
