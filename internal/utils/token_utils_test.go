package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdfaizanashrafi/sovereon/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "user@example.com", "user", testSecret, 15*time.Minute, "sovereon-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "sovereon-test", claims.Issuer)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "user@example.com", "user", testSecret, -1*time.Minute, "sovereon-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "user@example.com", "user", testSecret, 15*time.Minute, "sovereon-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Tampered(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "user@example.com", "user", testSecret, 15*time.Minute, "sovereon-test")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = utils.ParseAndValidateJWT(string(tampered), testSecret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	_, err := utils.ParseAndValidateJWT("not-a-jwt", testSecret)
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT("", testSecret)
	assert.Error(t, err)
}

func TestGenerateSecureRandomString_Unique(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(16)
	require.NoError(t, err)
	b, err := utils.GenerateSecureRandomString(16)
	require.NoError(t, err)

	assert.Len(t, a, 32) // hex doubles the byte length
	assert.NotEqual(t, a, b)
}
