package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flitsinc/go-jsonpb/decode"
)

func TestBase64_Roundtrip(t *testing.T) {
	out, err := decode.Base64("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestBase64_PartialGroups(t *testing.T) {
	out, err := decode.Base64("Zm8=")
	require.NoError(t, err)
	assert.Equal(t, "fo", string(out))

	out2, err := decode.Base64("Zm9v")
	require.NoError(t, err)
	assert.Equal(t, "foo", string(out2))
}

func TestBase64_BadLength(t *testing.T) {
	_, err := decode.Base64("abc")
	assert.Error(t, err)
}

func TestBase64_BadCharacter(t *testing.T) {
	_, err := decode.Base64("ab!=")
	assert.Error(t, err)
}
