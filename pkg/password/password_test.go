package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	// MinCost keeps the test fast
	hash, err := Hash("correct horse battery staple", 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestHash_SaltedPerCall(t *testing.T) {
	h1, err := Hash("same password", 4)
	require.NoError(t, err)
	h2, err := Hash("same password", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHash_ZeroCostUsesDefault(t *testing.T) {
	hash, err := Hash("some password", 0)
	require.NoError(t, err)
	assert.True(t, Verify("some password", hash))
}

func TestVerify_InvalidHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("longenough"))
	assert.False(t, Validate("short"))
}
