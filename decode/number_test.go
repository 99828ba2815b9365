package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/decode"
	"github.com/flitsinc/go-jsonpb/schema"
)

func TestNumber_QuotedInt32Boundaries(t *testing.T) {
	v, err := decode.Number("2147483647", true, schema.KindInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(2147483647), v)

	_, err = decode.Number("2147483648", true, schema.KindInt32)
	assert.Error(t, err)

	_, err = decode.Number("-2147483649", true, schema.KindInt32)
	assert.Error(t, err)

	_, err = decode.Number("3.14", true, schema.KindInt32)
	assert.Error(t, err)
}

func TestNumber_UnquotedInt32(t *testing.T) {
	v, err := decode.Number("42", false, schema.KindInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
}

func TestNumber_Uint32Range(t *testing.T) {
	v, err := decode.Number("4294967295", false, schema.KindUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), v)

	_, err = decode.Number("4294967296", false, schema.KindUint32)
	assert.Error(t, err)

	_, err = decode.Number("-1", false, schema.KindUint32)
	assert.Error(t, err)
}

func TestNumber_Int64Uint64(t *testing.T) {
	v, err := decode.Number("9223372036854775807", false, schema.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), v)

	v2, err := decode.Number("18446744073709551615", false, schema.KindUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v2)
}

func TestNumber_Infinity(t *testing.T) {
	v, err := decode.Number("Infinity", false, schema.KindDouble)
	require.NoError(t, err)
	assert.True(t, v.(float64) > 0)

	v2, err := decode.Number("-Infinity", false, schema.KindFloat)
	require.NoError(t, err)
	assert.True(t, v2.(float32) < 0)

	_, err = decode.Number("infinity", false, schema.KindDouble)
	assert.Error(t, err, "case variations must be rejected")

	_, err = decode.Number("INFINITY", false, schema.KindDouble)
	assert.Error(t, err)
}

func TestNumber_FloatRange(t *testing.T) {
	_, err := decode.Number("1e400", false, schema.KindFloat)
	assert.Error(t, err)

	v, err := decode.Number("1e40", false, schema.KindDouble)
	require.NoError(t, err)
	assert.InDelta(t, 1e40, v.(float64), 1e30)
}

func TestNumber_EmptyAndSpacedRejected(t *testing.T) {
	_, err := decode.Number("", false, schema.KindInt32)
	assert.Error(t, err)

	_, err = decode.Number(" 1", false, schema.KindInt32)
	assert.Error(t, err)
}

func TestNumber_Enum(t *testing.T) {
	v, err := decode.Number("2", false, schema.KindEnum)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}
