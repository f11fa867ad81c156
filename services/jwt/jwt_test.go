package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "secret")
	require.NoError(t, err)

	claims, err := ValidateAndGetClaims(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["id"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "secret")
	require.NoError(t, err)

	_, err = ValidateAndGetClaims(token, "other-secret")
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ValidateAndGetClaims("not.a.token", "secret")
	assert.Error(t, err)
}
