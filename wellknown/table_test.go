package wellknown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/wellknown"
)

func TestByFullName(t *testing.T) {
	k, ok := wellknown.ByFullName("google.protobuf.Duration")
	require.True(t, ok)
	assert.Equal(t, wellknown.KindDuration, k)

	_, ok = wellknown.ByFullName("my.pkg.NotWellKnown")
	assert.False(t, ok)
}

func TestKind_IsWrapper(t *testing.T) {
	assert.True(t, wellknown.KindDoubleValue.IsWrapper())
	assert.True(t, wellknown.KindBytesValue.IsWrapper())
	assert.False(t, wellknown.KindStruct.IsWrapper())
	assert.False(t, wellknown.KindDuration.IsWrapper())
	assert.False(t, wellknown.KindNone.IsWrapper())
}

func TestByDescriptor_Nil(t *testing.T) {
	k, ok := wellknown.ByDescriptor(nil)
	assert.False(t, ok)
	assert.Equal(t, wellknown.KindNone, k)
}
