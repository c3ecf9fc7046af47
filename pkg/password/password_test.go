package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAndVerify(t *testing.T) {
	hash, err := Encode("s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, Verify("s3cret-pw", hash))
	assert.False(t, Verify("wrong-pw", hash))
}

func TestEncodeIsSalted(t *testing.T) {
	first, err := Encode("same-password")
	require.NoError(t, err)
	second, err := Encode("same-password")
	require.NoError(t, err)

	// Each encode uses a fresh salt, both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}
