package wellknown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/wellknown"
)

func TestDecodeTimestamp_Basic(t *testing.T) {
	secs, nanos, err := wellknown.DecodeTimestamp("1970-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.EqualValues(t, 0, secs)
	assert.EqualValues(t, 0, nanos)
}

func TestDecodeTimestamp_MinAccepted(t *testing.T) {
	secs, _, err := wellknown.DecodeTimestamp("0001-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.EqualValues(t, -62135596800, secs)
}

func TestDecodeTimestamp_BeforeMinRejected(t *testing.T) {
	_, _, err := wellknown.DecodeTimestamp("0000-12-31T23:59:59Z")
	require.Error(t, err)
	var rangeErr *wellknown.ErrTimestampRange
	assert.ErrorAs(t, err, &rangeErr)
}

func TestDecodeTimestamp_Fraction(t *testing.T) {
	secs, nanos, err := wellknown.DecodeTimestamp("1970-01-01T00:00:00.25Z")
	require.NoError(t, err)
	assert.EqualValues(t, 0, secs)
	assert.EqualValues(t, 250000000, nanos)
}

func TestDecodeTimestamp_FractionTooLong(t *testing.T) {
	_, _, err := wellknown.DecodeTimestamp("1970-01-01T00:00:00.1234567890Z")
	assert.Error(t, err)
}

func TestDecodeTimestamp_OffsetZone(t *testing.T) {
	secs, _, err := wellknown.DecodeTimestamp("1970-01-01T01:30:00+01:30")
	require.NoError(t, err)
	assert.EqualValues(t, 0, secs)
}

func TestDecodeTimestamp_NegativeOffsetZone(t *testing.T) {
	secs, _, err := wellknown.DecodeTimestamp("1969-12-31T22:30:00-01:30")
	require.NoError(t, err)
	assert.EqualValues(t, 0, secs)
}

func TestDecodeTimestamp_NonZeroMinuteOffsetAccepted(t *testing.T) {
	_, _, err := wellknown.DecodeTimestamp("1970-01-01T00:45:00+00:45")
	assert.NoError(t, err)
}

func TestDecodeTimestamp_TooShort(t *testing.T) {
	_, _, err := wellknown.DecodeTimestamp("1970-01-01")
	assert.Error(t, err)
}

func TestDecodeTimestamp_BadZone(t *testing.T) {
	_, _, err := wellknown.DecodeTimestamp("1970-01-01T00:00:00+0130")
	assert.Error(t, err)
}

func TestEncodeTimestamp_RoundTrip(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00Z", wellknown.EncodeTimestamp(0, 0))
}
