package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt prefix, got %q", hash)
	assert.True(t, CompareHashAndPassword(hash, "secret1"))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	h1, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CompareHashAndPassword(h1, "secret1"))
	assert.True(t, CompareHashAndPassword(h2, "secret1"))
}

func TestCompareHashAndPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)

	assert.False(t, CompareHashAndPassword(hash, "wrong"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "secret1"))
}
