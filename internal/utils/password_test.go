package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdfaizanashrafi/sovereon/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}

func TestHashPassword_SamePasswordDifferentHashes(t *testing.T) {
	h1, err := utils.HashPassword("password123")
	require.NoError(t, err)
	h2, err := utils.HashPassword("password123")
	require.NoError(t, err)

	// Salted: two hashes of the same input must differ, and both verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, utils.CheckPasswordHash("password123", h1))
	assert.True(t, utils.CheckPasswordHash("password123", h2))
}

func TestCheckPasswordHash_EmptyHashNeverMatches(t *testing.T) {
	// Accounts bridged from an OAuth provider store an empty hash; no
	// password may ever verify against them.
	assert.False(t, utils.CheckPasswordHash("", ""))
	assert.False(t, utils.CheckPasswordHash("anything", ""))
}
