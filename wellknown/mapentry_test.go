package wellknown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/schema"
	"github.com/flitsinc/go-jsonpb/wellknown"
)

func TestDecodeMapKey_String(t *testing.T) {
	v, err := wellknown.DecodeMapKey("hello", schema.KindString)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestDecodeMapKey_Bool(t *testing.T) {
	v, err := wellknown.DecodeMapKey("true", schema.KindBool)
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestDecodeMapKey_Int32(t *testing.T) {
	v, err := wellknown.DecodeMapKey("42", schema.KindInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
}

func TestDecodeMapKey_Uint64(t *testing.T) {
	v, err := wellknown.DecodeMapKey("18446744073709551615", schema.KindUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)
}

func TestDecodeMapKey_UnsupportedKind(t *testing.T) {
	_, err := wellknown.DecodeMapKey("1.5", schema.KindDouble)
	assert.Error(t, err)
}
