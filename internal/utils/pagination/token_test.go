package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimCursorRoundTrip(t *testing.T) {
	token := EncodeClaimCursor("bob", "PTS")
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	beneficiary, code, err := DecodeClaimCursor(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", beneficiary)
	assert.Equal(t, "PTS", code)
}

func TestDecodeClaimCursorErrors(t *testing.T) {
	_, _, err := DecodeClaimCursor("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeClaimCursor(EncodeMultiFieldToken("bob"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 fields")

	_, _, err = DecodeClaimCursor(EncodeMultiFieldToken("", "PTS"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty field")
}

func TestDecodeMultiFieldToken(t *testing.T) {
	fields, err := DecodeMultiFieldToken(EncodeMultiFieldToken("a", "b|c", "d"), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b|c", "d"}, fields)
}
