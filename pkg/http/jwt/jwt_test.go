package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenAndParseToken(t *testing.T) {
	aToken, rToken, err := GenToken("u-123", "admin", []byte(testSecret), 30, 60)
	require.NoError(t, err)
	require.NotEmpty(t, aToken)
	require.NotEmpty(t, rToken)

	claims, err := ParseToken(aToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.UserId)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "careconnect", claims.Issuer)
}

func TestParseTokenWrongSecret(t *testing.T) {
	aToken, _, err := GenToken("u-123", "user", []byte(testSecret), 30, 60)
	require.NoError(t, err)

	_, err = ParseToken(aToken, "another-secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	_, rToken, err := GenToken("u-123", "user", []byte(testSecret), 30, 60)
	require.NoError(t, err)

	tokens, err := RefreshToken(testSecret, 30, 60, "u-123", "user", rToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens["accessToken"])
	assert.NotEmpty(t, tokens["refreshToken"])

	claims, err := ParseToken(tokens["accessToken"], testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.UserId)
}

func TestRefreshTokenInvalid(t *testing.T) {
	_, err := RefreshToken(testSecret, 30, 60, "u-123", "user", "junk")
	assert.Error(t, err)

	// expired refresh token must be rejected
	_, rToken, err2 := GenToken("u-123", "user", []byte(testSecret), 30, -1)
	require.NoError(t, err2)
	time.Sleep(10 * time.Millisecond)
	_, err = RefreshToken(testSecret, 30, 60, "u-123", "user", rToken)
	assert.Error(t, err)
}
